// MediaForge orchestrator server — provides the HTTP API, manages queue
// workers, and drives media-generation executions to completion.
package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/mediaforge/mediaforge/pkg/api"
	"github.com/mediaforge/mediaforge/pkg/config"
	"github.com/mediaforge/mediaforge/pkg/credentials"
	"github.com/mediaforge/mediaforge/pkg/database"
	"github.com/mediaforge/mediaforge/pkg/delivery"
	"github.com/mediaforge/mediaforge/pkg/orchestrator"
	"github.com/mediaforge/mediaforge/pkg/poller"
	"github.com/mediaforge/mediaforge/pkg/provider"
	"github.com/mediaforge/mediaforge/pkg/queue"
	"github.com/mediaforge/mediaforge/pkg/secrets"
	"github.com/mediaforge/mediaforge/pkg/services"
	"github.com/mediaforge/mediaforge/pkg/usage"
)

// resolvePodID determines the pod identifier for multi-replica coordination.
// Priority: POD_ID env > HOSTNAME env > "local"
func resolvePodID() string {
	if id := os.Getenv("POD_ID"); id != "" {
		return id
	}
	if hostname := os.Getenv("HOSTNAME"); hostname != "" {
		return hostname
	}
	return "local"
}

func main() {
	if err := godotenv.Load(); err != nil {
		slog.Debug("No .env file, continuing with existing environment", "error", err)
	}

	podID := resolvePodID()
	ctx := context.Background()

	// 1. Configuration
	cfg, err := config.Load()
	if err != nil {
		slog.Error("Failed to load configuration", "error", err)
		os.Exit(1)
	}

	slog.Info("Starting MediaForge",
		"http_port", cfg.HTTPPort,
		"pod_id", podID)

	// 2. Database
	dbConfig, err := database.LoadConfigFromEnv()
	if err != nil {
		slog.Error("Failed to load database config", "error", err)
		os.Exit(1)
	}

	dbClient, err := database.NewClient(ctx, dbConfig)
	if err != nil {
		slog.Error("Failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer func() {
		if err := dbClient.Close(); err != nil {
			slog.Error("Error closing database client", "error", err)
		}
	}()
	slog.Info("Connected to PostgreSQL database")

	// 3. One-time startup orphan recovery
	if err := queue.RequeueStartupOrphans(ctx, dbClient.Client, podID); err != nil {
		slog.Error("Failed to requeue startup orphans", "error", err)
		// Non-fatal — the periodic scan catches stragglers
	}

	// 4. Crypto and domain services
	cipher, err := secrets.NewCipher(cfg.APIKeyEncryptionSecret)
	if err != nil {
		slog.Error("Failed to initialize cipher", "error", err)
		os.Exit(1)
	}

	usageService := usage.NewService(dbClient.Client)
	orch := orchestrator.New(dbClient.Client, usageService, cipher)
	executionService := services.NewExecutionService(dbClient.Client)
	apiKeyService := services.NewAPIKeyService(dbClient.Client, cipher)
	providerKeyService := services.NewProviderKeyService(dbClient.Client, cipher)
	creds := credentials.NewResolver(dbClient.Client, cipher)
	slog.Info("Services initialized")

	// 5. Provider adapters
	// Note: grpc.NewClient dials lazily; the transform service is reached on
	// the first deterministic-operation dispatch.
	transformAdapter, err := provider.NewTransformAdapter(cfg.TransformServiceAddr)
	if err != nil {
		slog.Error("Failed to initialize transform adapter",
			"addr", cfg.TransformServiceAddr, "error", err)
		os.Exit(1)
	}
	defer func() {
		if err := transformAdapter.Close(); err != nil {
			slog.Error("Error closing transform adapter", "error", err)
		}
	}()
	registry := provider.NewDefaultRegistry(transformAdapter)
	slog.Info("Provider adapters registered", "transform_addr", cfg.TransformServiceAddr)

	if cfg.WebhookBaseURL == "" {
		slog.Warn("WEBHOOK_BASE_URL not set — async jobs will wait via polling only")
	}

	// 6. Worker pool (before HTTP server)
	executor := queue.NewExecutor(dbClient.Client, orch, registry, creds, cfg.WebhookBaseURL, cfg.Poller)
	workerPool := queue.NewWorkerPool(podID, dbClient.Client, cfg.Queue, executor, orch)
	if err := workerPool.Start(ctx); err != nil {
		slog.Error("Failed to start worker pool", "error", err)
		os.Exit(1)
	}

	// 7. Background loops: polling coordinator, webhook deliverer, period reset
	pollLoop := poller.New(dbClient.Client, orch, registry, creds, cfg.Poller)
	pollLoop.Start(ctx)
	defer pollLoop.Stop()

	deliverer := delivery.New(dbClient.Client, cfg.Delivery)
	deliverer.Start(ctx)
	defer deliverer.Stop()

	resetTask := usage.NewResetTask(usageService)
	resetTask.Start(ctx)
	defer resetTask.Stop()

	// 8. HTTP server
	server := api.NewServer(dbClient, executionService, apiKeyService, providerKeyService, orch, registry, workerPool)
	httpServer := &http.Server{
		Addr:              ":" + cfg.HTTPPort,
		Handler:           server.Router(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		slog.Info("HTTP server listening", "addr", httpServer.Addr)
		if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			slog.Error("HTTP server error", "error", err)
			errCh <- err
		}
	}()

	slog.Info("MediaForge started successfully",
		"pod_id", podID,
		"workers", cfg.Queue.WorkerCount)

	// 9. Wait for shutdown signal or server error
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGTERM, syscall.SIGINT)

	select {
	case sig := <-sigCh:
		slog.Info("Shutdown signal received", "signal", sig)
	case err := <-errCh:
		slog.Error("Server error triggered shutdown", "error", err)
	}

	// 10. Graceful shutdown: workers first so in-flight launches settle,
	// then the HTTP surface.
	workerShutdownCtx, workerCancel := context.WithTimeout(ctx, cfg.Queue.GracefulShutdownTimeout)
	defer workerCancel()

	done := make(chan struct{})
	go func() {
		workerPool.Stop()
		close(done)
	}()

	select {
	case <-done:
		slog.Info("Worker pool stopped gracefully")
	case <-workerShutdownCtx.Done():
		slog.Warn("Shutdown timeout exceeded — incomplete dispatches will be orphan-recovered")
	}

	httpShutdownCtx, httpCancel := context.WithTimeout(ctx, 5*time.Second)
	defer httpCancel()
	if err := httpServer.Shutdown(httpShutdownCtx); err != nil {
		slog.Error("HTTP server shutdown error", "error", err)
	}

	slog.Info("Shutdown complete")
}
