package api

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
)

// tenantIDKey is the gin context key the auth middleware stores the resolved
// tenant under.
const tenantIDKey = "tenant_id"

// requireAPIKey authenticates the Authorization bearer key and binds the
// resolved tenant to the request context.
func (s *Server) requireAPIKey() gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		rawKey, ok := strings.CutPrefix(header, "Bearer ")
		if !ok || rawKey == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "missing API key"})
			return
		}

		tenantID, err := s.apiKeys.Authenticate(c.Request.Context(), rawKey)
		if err != nil {
			status, body := mapServiceError(err)
			c.AbortWithStatusJSON(status, body)
			return
		}

		c.Set(tenantIDKey, tenantID)
		c.Next()
	}
}

// tenantID returns the authenticated tenant bound by requireAPIKey.
func tenantID(c *gin.Context) string {
	return c.GetString(tenantIDKey)
}
