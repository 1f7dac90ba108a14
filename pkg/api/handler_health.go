package api

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/mediaforge/mediaforge/pkg/database"
)

// healthHandler handles GET /health.
func (s *Server) healthHandler(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
	defer cancel()

	body := gin.H{"status": "healthy"}
	status := http.StatusOK

	dbHealth, err := database.Health(ctx, s.db.DB())
	body["database"] = dbHealth
	if err != nil {
		body["status"] = "unhealthy"
		body["error"] = err.Error()
		status = http.StatusServiceUnavailable
	}

	if s.pool != nil {
		pool := s.pool.Health()
		body["queue"] = pool
		if !pool.IsHealthy {
			body["status"] = "unhealthy"
			status = http.StatusServiceUnavailable
		}
	}

	c.JSON(status, body)
}
