package api

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

// statusHandler handles GET /execute/:id/status.
func (s *Server) statusHandler(c *gin.Context) {
	exec, err := s.executions.GetExecution(c.Request.Context(), tenantID(c), c.Param("id"))
	if err != nil {
		status, body := mapServiceError(err)
		c.JSON(status, body)
		return
	}
	c.JSON(http.StatusOK, newStatusResponse(exec))
}

// listExecutionsHandler handles GET /executions.
func (s *Server) listExecutionsHandler(c *gin.Context) {
	execs, err := s.executions.ListExecutions(c.Request.Context(), tenantID(c), 0)
	if err != nil {
		status, body := mapServiceError(err)
		c.JSON(status, body)
		return
	}

	summaries := make([]ExecutionSummary, 0, len(execs))
	for _, exec := range execs {
		summary := ExecutionSummary{
			ID:        exec.ID,
			Status:    string(exec.Status),
			CreatedAt: exec.CreatedAt.UTC().Format(time.RFC3339),
		}
		if exec.CompletedAt != nil {
			summary.CompletedAt = exec.CompletedAt.UTC().Format(time.RFC3339)
		}
		summaries = append(summaries, summary)
	}
	c.JSON(http.StatusOK, gin.H{"executions": summaries})
}
