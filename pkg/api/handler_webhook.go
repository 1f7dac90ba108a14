package api

import (
	"io"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/mediaforge/mediaforge/ent/executionjob"
	"github.com/mediaforge/mediaforge/pkg/orchestrator"
	"github.com/mediaforge/mediaforge/pkg/provider"
)

// maxWebhookBody caps inbound provider payloads at 4 MiB.
const maxWebhookBody = 4 << 20

// jobWebhookHandler handles POST /webhook/job/:jobRecordId — the webhook half
// of the async wait coordinator. Always 200 once the job is located: the
// provider must not retry on our processing outcome. Late or duplicate
// webhooks find the job already terminal and are discarded.
func (s *Server) jobWebhookHandler(c *gin.Context) {
	job, err := s.executions.GetJobRecord(c.Request.Context(), c.Param("jobRecordId"))
	if err != nil {
		status, body := mapServiceError(err)
		c.JSON(status, body)
		return
	}

	log := slog.With("job_id", job.ID, "execution_id", job.ExecutionID, "operation", job.Operation)

	if job.Status != executionjob.StatusWaiting {
		log.Info("Webhook for non-waiting job discarded", "status", job.Status)
		c.JSON(http.StatusOK, gin.H{"status": "ignored"})
		return
	}

	payload, err := io.ReadAll(io.LimitReader(c.Request.Body, maxWebhookBody))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "failed to read payload"})
		return
	}

	adapter, err := s.registry.Lookup(job.Operation, provider.ModelID(job.Params))
	if err != nil {
		log.Error("No adapter for waiting job", "error", err)
		s.applyOutcome(c, job.ID, orchestrator.FailedOutcome(err.Error()), log)
		return
	}

	status, err := adapter.ParseStatus(payload)
	if err != nil {
		log.Warn("Webhook payload parse failed", "provider", adapter.Provider(), "error", err)
		s.applyOutcome(c, job.ID, orchestrator.FailedOutcome("webhook payload parse failed: "+err.Error()), log)
		return
	}

	switch status.State {
	case provider.StatusCompleted:
		s.applyOutcome(c, job.ID, orchestrator.CompletedOutcome(status.Outputs), log)
	case provider.StatusFailed:
		s.applyOutcome(c, job.ID, orchestrator.FailedOutcome(status.Error), log)
	case provider.StatusProcessing:
		log.Debug("Webhook reported job still processing")
		c.JSON(http.StatusOK, gin.H{"status": "processing"})
	}
}

// applyOutcome reports a terminal outcome and acknowledges the provider.
// OnJobTerminal is idempotent, so a poll transaction racing this webhook is
// harmless — first committer wins.
func (s *Server) applyOutcome(c *gin.Context, jobRecordID string, outcome orchestrator.Outcome, log *slog.Logger) {
	if err := s.orch.OnJobTerminal(c.Request.Context(), jobRecordID, outcome); err != nil {
		log.Error("Failed to apply webhook outcome", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "accepted"})
}
