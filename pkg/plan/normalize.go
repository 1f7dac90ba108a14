// Package plan validates and normalizes execution plans at admission time.
//
// Normalization canonicalizes the two ways a plan encodes dependencies:
// explicit dependsOn lists and sentinel strings inside params ($id, from-id,
// _imageJobDependency:id). Nested operation descriptors in params are lifted
// into sibling jobs so the DAG stays flat and the dispatch-time resolver only
// ever substitutes strings.
package plan

import (
	"fmt"
	"sort"
	"strings"

	"github.com/mediaforge/mediaforge/pkg/models"
)

// DependencySentinel is the param value written in place of a lifted nested
// operation descriptor. The resolver substitutes it like $id.
const DependencySentinel = "_imageJobDependency:"

// Reference prefixes recognized in string param values.
const (
	refDollar = "$"
	refFrom   = "from-"
)

// Normalize lifts nested operation descriptors into sibling jobs, merges
// param references into each job's dependsOn set, and validates the result
// (unique ids, known operations, resolvable references, acyclic).
// The returned plan is a deep-rewritten copy; the input is not modified.
func Normalize(p models.ExecutionPlan) (models.ExecutionPlan, error) {
	if len(p.Jobs) == 0 {
		return models.ExecutionPlan{}, NewValidationError("jobs", "plan must contain at least one job")
	}

	seen := make(map[string]bool, len(p.Jobs))
	for _, job := range p.Jobs {
		if job.ID == "" {
			return models.ExecutionPlan{}, NewValidationError("jobs", "every job must have an id")
		}
		if seen[job.ID] {
			return models.ExecutionPlan{}, NewValidationError("jobs", fmt.Sprintf("duplicate job id %q", job.ID))
		}
		seen[job.ID] = true
	}

	normalized := models.ExecutionPlan{BaseExecutionID: p.BaseExecutionID}
	for _, job := range p.Jobs {
		lifted, rewritten, err := liftNestedOperations(job, seen)
		if err != nil {
			return models.ExecutionPlan{}, err
		}
		// Lifted siblings precede the parent so insertion order tracks
		// execution order for chains.
		normalized.Jobs = append(normalized.Jobs, lifted...)
		normalized.Jobs = append(normalized.Jobs, rewritten)
	}

	for i := range normalized.Jobs {
		job := &normalized.Jobs[i]
		if !models.KnownOperations[job.Operation] {
			return models.ExecutionPlan{}, NewValidationError("operation",
				fmt.Sprintf("job %q: unknown operation %q", job.ID, job.Operation))
		}
		refs := collectReferences(job.Params)
		job.DependsOn = mergeDependencies(job.DependsOn, refs)
		for _, dep := range job.DependsOn {
			if !seen[dep] {
				return models.ExecutionPlan{}, NewValidationError("dependsOn",
					fmt.Sprintf("job %q references unknown job %q", job.ID, dep))
			}
			if dep == job.ID {
				return models.ExecutionPlan{}, NewValidationError("dependsOn",
					fmt.Sprintf("job %q depends on itself", job.ID))
			}
		}
	}

	if _, err := TopologicalOrder(normalized.Jobs); err != nil {
		return models.ExecutionPlan{}, err
	}

	return normalized, nil
}

// liftNestedOperations extracts operation descriptors embedded in params
// ({type: ..., params: {...}}) into standalone sibling jobs, rewriting the
// parent param to a dependency sentinel. Lifting recurses, so descriptors
// nested inside descriptors also become siblings.
func liftNestedOperations(job models.JobSpec, ids map[string]bool) ([]models.JobSpec, models.JobSpec, error) {
	var lifted []models.JobSpec

	rewritten := job
	rewritten.Params = make(map[string]interface{}, len(job.Params))
	rewritten.DependsOn = append([]string(nil), job.DependsOn...)

	for key, value := range job.Params {
		desc, ok := asOperationDescriptor(value)
		if !ok {
			rewritten.Params[key] = value
			continue
		}

		childID := allocateJobID(ids, job.ID, key)
		child := models.JobSpec{
			ID:        childID,
			Operation: desc.operation,
			Params:    desc.params,
		}
		// The child may itself embed descriptors.
		grandchildren, child, err := liftNestedOperations(child, ids)
		if err != nil {
			return nil, models.JobSpec{}, err
		}
		lifted = append(lifted, grandchildren...)
		lifted = append(lifted, child)

		rewritten.Params[key] = DependencySentinel + childID
		rewritten.DependsOn = append(rewritten.DependsOn, childID)
	}

	return lifted, rewritten, nil
}

type operationDescriptor struct {
	operation string
	params    map[string]interface{}
}

// asOperationDescriptor reports whether a param value is a nested operation
// descriptor: a map with a known operation "type" and a "params" map.
func asOperationDescriptor(value interface{}) (operationDescriptor, bool) {
	m, ok := value.(map[string]interface{})
	if !ok {
		return operationDescriptor{}, false
	}
	op, ok := m["type"].(string)
	if !ok || !models.KnownOperations[op] {
		return operationDescriptor{}, false
	}
	params, ok := m["params"].(map[string]interface{})
	if !ok {
		return operationDescriptor{}, false
	}
	return operationDescriptor{operation: op, params: params}, true
}

// allocateJobID generates a plan-local id for a lifted job that does not
// collide with submitter-assigned ids, and registers it.
func allocateJobID(ids map[string]bool, parentID, paramKey string) string {
	base := fmt.Sprintf("%s-%s", parentID, paramKey)
	id := base
	for n := 2; ids[id]; n++ {
		id = fmt.Sprintf("%s-%d", base, n)
	}
	ids[id] = true
	return id
}

// collectReferences walks params recursively and returns the plan-local ids
// referenced by sentinel string values.
func collectReferences(value interface{}) []string {
	var refs []string
	walkStrings(value, func(s string) {
		if id, ok := ParseReference(s); ok {
			refs = append(refs, id)
		}
	})
	sort.Strings(refs)
	return refs
}

// ParseReference extracts the plan-local job id from a sentinel string value.
// Recognized forms: $id, from-id, _imageJobDependency:id.
func ParseReference(s string) (string, bool) {
	switch {
	case strings.HasPrefix(s, DependencySentinel):
		return s[len(DependencySentinel):], true
	case strings.HasPrefix(s, refDollar) && len(s) > len(refDollar):
		return s[len(refDollar):], true
	case strings.HasPrefix(s, refFrom) && len(s) > len(refFrom):
		return s[len(refFrom):], true
	}
	return "", false
}

// walkStrings visits every string value reachable through nested maps and lists.
func walkStrings(value interface{}, visit func(string)) {
	switch v := value.(type) {
	case string:
		visit(v)
	case map[string]interface{}:
		for _, item := range v {
			walkStrings(item, visit)
		}
	case []interface{}:
		for _, item := range v {
			walkStrings(item, visit)
		}
	}
}

// mergeDependencies unions declared and referenced ids, preserving declared
// order and deduplicating.
func mergeDependencies(declared, referenced []string) []string {
	if len(declared) == 0 && len(referenced) == 0 {
		return nil
	}
	out := make([]string, 0, len(declared)+len(referenced))
	seen := make(map[string]bool, len(declared)+len(referenced))
	for _, id := range declared {
		if !seen[id] {
			seen[id] = true
			out = append(out, id)
		}
	}
	for _, id := range referenced {
		if !seen[id] {
			seen[id] = true
			out = append(out, id)
		}
	}
	return out
}
