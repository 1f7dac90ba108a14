package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// cancelHandler handles POST /execute/:id/cancel.
func (s *Server) cancelHandler(c *gin.Context) {
	executionID := c.Param("id")

	// Ownership check first: a foreign execution must 404, not 409.
	if err := s.executions.OwnsExecution(c.Request.Context(), tenantID(c), executionID); err != nil {
		status, body := mapServiceError(err)
		c.JSON(status, body)
		return
	}

	if err := s.orch.CancelExecution(c.Request.Context(), executionID); err != nil {
		status, body := mapServiceError(err)
		c.JSON(status, body)
		return
	}

	// Abort any dispatch running on this pod. Claims on other pods settle
	// via the already-terminal rows.
	if s.pool != nil {
		exec, err := s.executions.GetExecution(c.Request.Context(), tenantID(c), executionID)
		if err == nil {
			for _, job := range exec.Edges.Jobs {
				s.pool.CancelJob(job.ID)
			}
		}
	}

	c.JSON(http.StatusOK, gin.H{"status": "cancelled"})
}
