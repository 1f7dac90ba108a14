package plan

import (
	"fmt"
	"sort"

	"github.com/mediaforge/mediaforge/pkg/models"
)

// TopologicalOrder returns a topological rank for every job id (rank 0 for
// roots, rank of a job = 1 + max rank of its dependencies) or a validation
// error if the dependency graph contains a cycle.
func TopologicalOrder(jobs []models.JobSpec) (map[string]int, error) {
	indegree := make(map[string]int, len(jobs))
	dependents := make(map[string][]string, len(jobs))
	for _, job := range jobs {
		indegree[job.ID] = len(job.DependsOn)
		for _, dep := range job.DependsOn {
			dependents[dep] = append(dependents[dep], job.ID)
		}
	}

	ranks := make(map[string]int, len(jobs))
	var frontier []string
	for id, deg := range indegree {
		if deg == 0 {
			frontier = append(frontier, id)
			ranks[id] = 0
		}
	}

	processed := 0
	for len(frontier) > 0 {
		id := frontier[0]
		frontier = frontier[1:]
		processed++
		for _, dep := range dependents[id] {
			if r := ranks[id] + 1; r > ranks[dep] {
				ranks[dep] = r
			}
			indegree[dep]--
			if indegree[dep] == 0 {
				frontier = append(frontier, dep)
			}
		}
	}

	if processed != len(jobs) {
		var stuck []string
		for id, deg := range indegree {
			if deg > 0 {
				stuck = append(stuck, id)
			}
		}
		sort.Strings(stuck)
		return nil, NewValidationError("dependsOn",
			fmt.Sprintf("dependency cycle involving jobs %v", stuck))
	}

	return ranks, nil
}

// JobRef is the slice of job state needed for result-job selection.
type JobRef struct {
	PlanLocalID    string
	DependsOn      []string
	InsertionIndex int
}

// ResultJob picks the execution's designated result job: the job with no
// dependents that sorts last by topological rank, tie-broken by insertion
// order. Deterministic for any completion order of independent jobs.
func ResultJob(jobs []JobRef) (string, bool) {
	if len(jobs) == 0 {
		return "", false
	}

	specs := make([]models.JobSpec, len(jobs))
	hasDependents := make(map[string]bool, len(jobs))
	for i, j := range jobs {
		specs[i] = models.JobSpec{ID: j.PlanLocalID, DependsOn: j.DependsOn}
		for _, dep := range j.DependsOn {
			hasDependents[dep] = true
		}
	}
	ranks, err := TopologicalOrder(specs)
	if err != nil {
		// Stored plans are validated at admission; a cycle here means
		// corrupted state, treat as no result.
		return "", false
	}

	best := -1
	for i, j := range jobs {
		if hasDependents[j.PlanLocalID] {
			continue
		}
		if best == -1 {
			best = i
			continue
		}
		br, jr := ranks[jobs[best].PlanLocalID], ranks[j.PlanLocalID]
		if jr > br || (jr == br && j.InsertionIndex > jobs[best].InsertionIndex) {
			best = i
		}
	}
	if best == -1 {
		return "", false
	}
	return jobs[best].PlanLocalID, true
}
