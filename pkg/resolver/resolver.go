// Package resolver substitutes upstream-output references in job params at
// dispatch time. Reference rewriting happens at plan admission (pkg/plan);
// here only string sentinels remain, so workers stay stateless with respect
// to DAG topology.
package resolver

import (
	"fmt"

	"github.com/mediaforge/mediaforge/pkg/models"
	"github.com/mediaforge/mediaforge/pkg/plan"
)

// UpstreamOutputs maps plan-local job ids to the outputs of completed
// upstream jobs.
type UpstreamOutputs map[string][]models.MediaOutput

// ResolveError reports which reference could not be substituted.
type ResolveError struct {
	JobID  string
	Reason string
}

func (e *ResolveError) Error() string {
	return fmt.Sprintf("resolve reference to job %q: %s", e.JobID, e.Reason)
}

// Resolve returns a copy of params with every sentinel reference ($id,
// from-id, _imageJobDependency:id) replaced by the referenced job's primary
// output URL. A reference to a job that is absent from upstream (not a
// sibling, or not completed) or whose output list is empty is a hard failure.
func Resolve(params map[string]interface{}, upstream UpstreamOutputs) (map[string]interface{}, error) {
	resolved, err := resolveValue(params, upstream)
	if err != nil {
		return nil, err
	}
	return resolved.(map[string]interface{}), nil
}

func resolveValue(value interface{}, upstream UpstreamOutputs) (interface{}, error) {
	switch v := value.(type) {
	case string:
		id, ok := plan.ParseReference(v)
		if !ok {
			return v, nil
		}
		return primaryOutput(id, upstream)
	case map[string]interface{}:
		out := make(map[string]interface{}, len(v))
		for key, item := range v {
			resolved, err := resolveValue(item, upstream)
			if err != nil {
				return nil, err
			}
			out[key] = resolved
		}
		return out, nil
	case []interface{}:
		out := make([]interface{}, len(v))
		for i, item := range v {
			resolved, err := resolveValue(item, upstream)
			if err != nil {
				return nil, err
			}
			out[i] = resolved
		}
		return out, nil
	default:
		return v, nil
	}
}

// primaryOutput is the first element of the upstream job's output list.
func primaryOutput(jobID string, upstream UpstreamOutputs) (string, error) {
	outputs, ok := upstream[jobID]
	if !ok {
		return "", &ResolveError{JobID: jobID, Reason: "job has no completed output"}
	}
	if len(outputs) == 0 {
		return "", &ResolveError{JobID: jobID, Reason: "job completed with an empty output list"}
	}
	return outputs[0].URL, nil
}
