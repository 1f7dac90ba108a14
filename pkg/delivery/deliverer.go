// Package delivery sends terminal-execution webhooks to submitter endpoints.
// Deliveries are swept from the executions table (scheduled by the
// orchestrator's roll-up), leased under FOR UPDATE SKIP LOCKED, signed with
// the per-execution secret, and retried with exponential backoff.
package delivery

import (
	"bytes"
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/mediaforge/mediaforge/ent"
	"github.com/mediaforge/mediaforge/ent/execution"
	"github.com/mediaforge/mediaforge/pkg/config"
)

const (
	userAgent       = "MediaForge-Webhooks/1.0"
	signatureHeader = "X-Webhook-Signature"
)

// Payload is the webhook body sent to the submitter's endpoint.
type Payload struct {
	ExecutionID string                   `json:"executionId"`
	Status      string                   `json:"status"`
	Result      []map[string]interface{} `json:"result,omitempty"`
	Error       string                   `json:"error,omitempty"`
	CompletedAt string                   `json:"completedAt,omitempty"`
}

// Deliverer is the outbound webhook sweeper.
type Deliverer struct {
	client     *ent.Client
	config     *config.DeliveryConfig
	httpClient *http.Client

	cancel context.CancelFunc
	done   chan struct{}
}

// New creates a deliverer.
func New(client *ent.Client, cfg *config.DeliveryConfig) *Deliverer {
	if client == nil {
		panic("delivery.New: client must not be nil")
	}
	if cfg == nil {
		panic("delivery.New: config must not be nil")
	}
	return &Deliverer{
		client:     client,
		config:     cfg,
		httpClient: &http.Client{Timeout: cfg.RequestTimeout},
	}
}

// Start launches the background sweep loop.
func (d *Deliverer) Start(ctx context.Context) {
	if d.cancel != nil {
		return
	}
	ctx, d.cancel = context.WithCancel(ctx)
	d.done = make(chan struct{})

	go d.run(ctx)

	slog.Info("Webhook deliverer started",
		"sweep_interval", d.config.SweepInterval,
		"max_attempts", d.config.MaxAttempts)
}

// Stop signals the sweep loop to exit and waits for it to finish.
func (d *Deliverer) Stop() {
	if d.cancel == nil {
		return
	}
	d.cancel()
	<-d.done
	slog.Info("Webhook deliverer stopped")
}

func (d *Deliverer) run(ctx context.Context) {
	defer close(d.done)

	ticker := time.NewTicker(d.config.SweepInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if err := d.Sweep(ctx); err != nil {
				slog.Error("Webhook sweep failed", "error", err)
			}
		}
	}
}

// Sweep leases every due delivery and attempts each once.
func (d *Deliverer) Sweep(ctx context.Context) error {
	execs, err := d.leaseDue(ctx)
	if err != nil {
		return err
	}
	for _, exec := range execs {
		d.attempt(ctx, exec)
	}
	return nil
}

// leaseDue claims due deliveries: the attempt counter is bumped and the next
// retry time written inside the locking transaction, so a replica crashing
// mid-send costs one attempt, never a duplicate burst.
func (d *Deliverer) leaseDue(ctx context.Context) ([]*ent.Execution, error) {
	tx, err := d.client.Tx(ctx)
	if err != nil {
		return nil, fmt.Errorf("start transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	now := time.Now()
	due, err := tx.Execution.Query().
		Where(
			execution.StatusIn(
				execution.StatusCompleted,
				execution.StatusFailed,
				execution.StatusCancelled,
			),
			execution.WebhookURLNotNil(),
			execution.WebhookDeliveredAtIsNil(),
			execution.WebhookNextAttemptAtNotNil(),
			execution.WebhookNextAttemptAtLTE(now),
			execution.WebhookDeliveryAttemptsLT(d.config.MaxAttempts),
		).
		Order(ent.Asc(execution.FieldWebhookNextAttemptAt)).
		ForUpdate(sql.WithLockAction(sql.SkipLocked)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query due deliveries: %w", err)
	}
	if len(due) == 0 {
		return nil, nil
	}

	leased := make([]*ent.Execution, 0, len(due))
	for _, exec := range due {
		attempts := exec.WebhookDeliveryAttempts + 1
		updated, err := exec.Update().
			SetWebhookDeliveryAttempts(attempts).
			SetWebhookNextAttemptAt(now.Add(d.retryDelay(attempts))).
			Save(ctx)
		if err != nil {
			return nil, fmt.Errorf("lease delivery for %s: %w", exec.ID, err)
		}
		leased = append(leased, updated)
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("commit delivery lease: %w", err)
	}
	return leased, nil
}

// attempt sends one webhook and records the result.
func (d *Deliverer) attempt(ctx context.Context, exec *ent.Execution) {
	log := slog.With(
		"execution_id", exec.ID,
		"attempt", exec.WebhookDeliveryAttempts,
		"max_attempts", d.config.MaxAttempts)

	err := d.send(ctx, exec)
	if err == nil {
		if updErr := d.client.Execution.UpdateOneID(exec.ID).
			SetWebhookDeliveredAt(time.Now()).
			ClearWebhookLastError().
			Exec(ctx); updErr != nil {
			log.Error("Failed to record webhook delivery", "error", updErr)
			return
		}
		log.Info("Webhook delivered")
		return
	}

	if updErr := d.client.Execution.UpdateOneID(exec.ID).
		SetWebhookLastError(err.Error()).
		Exec(ctx); updErr != nil {
		log.Error("Failed to record webhook error", "error", updErr)
	}
	if exec.WebhookDeliveryAttempts >= d.config.MaxAttempts {
		log.Warn("Webhook delivery abandoned", "error", err)
		return
	}
	log.Warn("Webhook delivery failed, will retry", "error", err)
}

// send performs the HTTP POST. Any non-2xx response is a failed attempt.
func (d *Deliverer) send(ctx context.Context, exec *ent.Execution) error {
	body, err := json.Marshal(buildPayload(exec))
	if err != nil {
		return fmt.Errorf("marshal payload: %w", err)
	}

	reqCtx, cancel := context.WithTimeout(ctx, d.config.RequestTimeout)
	defer cancel()
	req, err := http.NewRequestWithContext(reqCtx, http.MethodPost, *exec.WebhookURL, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("User-Agent", userAgent)
	if exec.WebhookSecret != nil && *exec.WebhookSecret != "" {
		req.Header.Set(signatureHeader, Sign(body, *exec.WebhookSecret))
	}

	resp, err := d.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("post webhook: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()
	_, _ = io.Copy(io.Discard, resp.Body)

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return fmt.Errorf("endpoint returned status %d", resp.StatusCode)
	}
	return nil
}

// buildPayload maps an execution row to the webhook body.
func buildPayload(exec *ent.Execution) Payload {
	p := Payload{
		ExecutionID: exec.ID,
		Status:      string(exec.Status),
		Result:      exec.Result,
	}
	if exec.ErrorMessage != nil {
		p.Error = *exec.ErrorMessage
	}
	if exec.CompletedAt != nil {
		p.CompletedAt = exec.CompletedAt.UTC().Format(time.RFC3339)
	}
	return p
}

// Sign computes the payload signature: "sha256=" + hex(HMAC-SHA256(body)).
// Exported so receivers in tests verify the same way submitters do.
func Sign(body []byte, secret string) string {
	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write(body)
	return "sha256=" + hex.EncodeToString(mac.Sum(nil))
}

// retryDelay grows exponentially: initial × 2^(attempts-1), capped.
func (d *Deliverer) retryDelay(attempts int) time.Duration {
	if attempts < 1 {
		attempts = 1
	}
	delay := d.config.InitialRetryDelay << (attempts - 1)
	if delay > d.config.MaxRetryDelay || delay <= 0 {
		delay = d.config.MaxRetryDelay
	}
	return delay
}
