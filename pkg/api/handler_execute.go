package api

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/mediaforge/mediaforge/pkg/orchestrator"
)

// executeHandler handles POST /execute.
// Admits the plan and returns immediately; jobs run via the worker pool.
func (s *Server) executeHandler(c *gin.Context) {
	var req ExecuteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	exec, err := s.orch.CreateExecution(c.Request.Context(), orchestrator.CreateInput{
		TenantID: tenantID(c),
		Plan:     req.ExecutionPlan,
		Options:  req.Options,
	})
	if err != nil {
		status, body := mapServiceError(err)
		c.JSON(status, body)
		return
	}

	c.JSON(http.StatusAccepted, &ExecuteResponse{
		ExecutionID: exec.ID,
		Status:      string(exec.Status),
		CreatedAt:   exec.CreatedAt.UTC().Format(time.RFC3339),
	})
}
