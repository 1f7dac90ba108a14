package api

import (
	"time"

	"github.com/mediaforge/mediaforge/ent"
)

// ExecuteResponse acknowledges an admitted execution.
type ExecuteResponse struct {
	ExecutionID string `json:"executionId"`
	Status      string `json:"status"`
	CreatedAt   string `json:"createdAt"`
}

// JobStatus is one job within a StatusResponse.
type JobStatus struct {
	ID        string                   `json:"id"`
	Operation string                   `json:"operation"`
	Status    string                   `json:"status"`
	Result    []map[string]interface{} `json:"result,omitempty"`
	Error     string                   `json:"error,omitempty"`
}

// StatusResponse is the body of GET /execute/:id/status.
type StatusResponse struct {
	ID          string                   `json:"id"`
	Status      string                   `json:"status"`
	Jobs        []JobStatus              `json:"jobs"`
	Result      []map[string]interface{} `json:"result,omitempty"`
	Error       string                   `json:"error,omitempty"`
	CreatedAt   string                   `json:"createdAt"`
	CompletedAt string                   `json:"completedAt,omitempty"`
}

// ExecutionSummary is one row of GET /executions.
type ExecutionSummary struct {
	ID          string `json:"id"`
	Status      string `json:"status"`
	CreatedAt   string `json:"createdAt"`
	CompletedAt string `json:"completedAt,omitempty"`
}

// newStatusResponse maps an execution row (jobs edge loaded, insertion order)
// to the status DTO.
func newStatusResponse(exec *ent.Execution) StatusResponse {
	resp := StatusResponse{
		ID:        exec.ID,
		Status:    string(exec.Status),
		Jobs:      make([]JobStatus, 0, len(exec.Edges.Jobs)),
		Result:    exec.Result,
		CreatedAt: exec.CreatedAt.UTC().Format(time.RFC3339),
	}
	if exec.ErrorMessage != nil {
		resp.Error = *exec.ErrorMessage
	}
	if exec.CompletedAt != nil {
		resp.CompletedAt = exec.CompletedAt.UTC().Format(time.RFC3339)
	}
	for _, job := range exec.Edges.Jobs {
		js := JobStatus{
			ID:        job.PlanLocalID,
			Operation: job.Operation,
			Status:    string(job.Status),
			Result:    job.Result,
		}
		if job.ErrorMessage != nil {
			js.Error = *job.ErrorMessage
		}
		resp.Jobs = append(resp.Jobs, js)
	}
	return resp
}
