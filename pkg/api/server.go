// Package api is the HTTP ingress: execution submission, status, cancel,
// provider credential management, and the inbound async webhook endpoint.
package api

import (
	"github.com/gin-gonic/gin"
	"github.com/mediaforge/mediaforge/pkg/database"
	"github.com/mediaforge/mediaforge/pkg/orchestrator"
	"github.com/mediaforge/mediaforge/pkg/provider"
	"github.com/mediaforge/mediaforge/pkg/queue"
	"github.com/mediaforge/mediaforge/pkg/services"
)

// Server holds the handler dependencies.
type Server struct {
	db           *database.Client
	executions   *services.ExecutionService
	apiKeys      *services.APIKeyService
	providerKeys *services.ProviderKeyService
	orch         *orchestrator.Orchestrator
	registry     *provider.Registry
	pool         *queue.WorkerPool
}

// NewServer creates the API server.
func NewServer(
	db *database.Client,
	executions *services.ExecutionService,
	apiKeys *services.APIKeyService,
	providerKeys *services.ProviderKeyService,
	orch *orchestrator.Orchestrator,
	registry *provider.Registry,
	pool *queue.WorkerPool,
) *Server {
	if db == nil {
		panic("api.NewServer: db must not be nil")
	}
	if executions == nil {
		panic("api.NewServer: execution service must not be nil")
	}
	if apiKeys == nil {
		panic("api.NewServer: api key service must not be nil")
	}
	if providerKeys == nil {
		panic("api.NewServer: provider key service must not be nil")
	}
	if orch == nil {
		panic("api.NewServer: orchestrator must not be nil")
	}
	if registry == nil {
		panic("api.NewServer: registry must not be nil")
	}
	return &Server{
		db:           db,
		executions:   executions,
		apiKeys:      apiKeys,
		providerKeys: providerKeys,
		orch:         orch,
		registry:     registry,
		pool:         pool,
	}
}

// Router builds the gin engine with all routes registered.
func (s *Server) Router() *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery(), securityHeaders())

	router.GET("/health", s.healthHandler)

	// Provider callbacks authenticate by the unguessable job record id.
	router.POST("/webhook/job/:jobRecordId", s.jobWebhookHandler)

	authed := router.Group("/", s.requireAPIKey())
	authed.POST("/execute", s.executeHandler)
	authed.GET("/executions", s.listExecutionsHandler)
	authed.GET("/execute/:id/status", s.statusHandler)
	authed.POST("/execute/:id/cancel", s.cancelHandler)

	authed.GET("/providers", s.listProviderKeysHandler)
	authed.PUT("/providers/:provider/key", s.setProviderKeyHandler)
	authed.DELETE("/providers/:provider/key", s.deleteProviderKeyHandler)

	return router
}
