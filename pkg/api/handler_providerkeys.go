package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// setProviderKeyHandler handles PUT /providers/:provider/key.
func (s *Server) setProviderKeyHandler(c *gin.Context) {
	var req SetProviderKeyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	record, err := s.providerKeys.SetKey(c.Request.Context(), tenantID(c), c.Param("provider"), req.Key)
	if err != nil {
		status, body := mapServiceError(err)
		c.JSON(status, body)
		return
	}
	c.JSON(http.StatusOK, gin.H{"provider": record.Provider})
}

// listProviderKeysHandler handles GET /providers.
func (s *Server) listProviderKeysHandler(c *gin.Context) {
	providers, err := s.providerKeys.ListProviders(c.Request.Context(), tenantID(c))
	if err != nil {
		status, body := mapServiceError(err)
		c.JSON(status, body)
		return
	}
	c.JSON(http.StatusOK, gin.H{"providers": providers})
}

// deleteProviderKeyHandler handles DELETE /providers/:provider/key.
func (s *Server) deleteProviderKeyHandler(c *gin.Context) {
	if err := s.providerKeys.DeleteKey(c.Request.Context(), tenantID(c), c.Param("provider")); err != nil {
		status, body := mapServiceError(err)
		c.JSON(status, body)
		return
	}
	c.Status(http.StatusNoContent)
}
