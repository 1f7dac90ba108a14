// Package poller drives polling-strategy async jobs to a terminal state.
// Waiting jobs whose next_poll_at is due are leased in batches (FOR UPDATE
// SKIP LOCKED, due time pushed forward before the network call), so multiple
// replicas can run the coordinator concurrently without double-polling.
package poller

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math"
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/mediaforge/mediaforge/ent"
	"github.com/mediaforge/mediaforge/ent/executionjob"
	"github.com/mediaforge/mediaforge/pkg/config"
	"github.com/mediaforge/mediaforge/pkg/credentials"
	"github.com/mediaforge/mediaforge/pkg/orchestrator"
	"github.com/mediaforge/mediaforge/pkg/provider"
)

// Poller is the polling half of the async wait coordinator (the webhook half
// lives in the API layer). One provider status request per leased job per
// tick; terminal results converge on the orchestrator.
type Poller struct {
	client   *ent.Client
	orch     *orchestrator.Orchestrator
	registry *provider.Registry
	creds    *credentials.Resolver
	config   *config.PollerConfig

	cancel context.CancelFunc
	done   chan struct{}
}

// New creates a poller.
func New(client *ent.Client, orch *orchestrator.Orchestrator, registry *provider.Registry, creds *credentials.Resolver, cfg *config.PollerConfig) *Poller {
	if client == nil {
		panic("poller.New: client must not be nil")
	}
	if orch == nil {
		panic("poller.New: orchestrator must not be nil")
	}
	if registry == nil {
		panic("poller.New: registry must not be nil")
	}
	if creds == nil {
		panic("poller.New: credentials resolver must not be nil")
	}
	if cfg == nil {
		panic("poller.New: config must not be nil")
	}
	return &Poller{
		client:   client,
		orch:     orch,
		registry: registry,
		creds:    creds,
		config:   cfg,
	}
}

// Start launches the background polling loop.
func (p *Poller) Start(ctx context.Context) {
	if p.cancel != nil {
		return
	}
	ctx, p.cancel = context.WithCancel(ctx)
	p.done = make(chan struct{})

	go p.run(ctx)

	slog.Info("Poller started",
		"interval", p.config.Interval,
		"batch_size", p.config.BatchSize,
		"max_poll_attempts", p.config.MaxPollAttempts)
}

// Stop signals the polling loop to exit and waits for it to finish.
func (p *Poller) Stop() {
	if p.cancel == nil {
		return
	}
	p.cancel()
	<-p.done
	slog.Info("Poller stopped")
}

func (p *Poller) run(ctx context.Context) {
	defer close(p.done)

	ticker := time.NewTicker(p.config.Interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if err := p.Tick(ctx); err != nil {
				slog.Error("Poll tick failed", "error", err)
			}
		}
	}
}

// Tick leases one batch of due jobs and polls each provider once.
func (p *Poller) Tick(ctx context.Context) error {
	jobs, err := p.leaseDueJobs(ctx)
	if err != nil {
		return err
	}
	for _, job := range jobs {
		p.pollJob(ctx, job)
	}
	return nil
}

// leaseDueJobs claims a batch of due polling jobs. The lease is the pushed
// next_poll_at written inside the locking transaction: once committed, other
// replicas skip these rows until the new due time.
func (p *Poller) leaseDueJobs(ctx context.Context) ([]*ent.ExecutionJob, error) {
	tx, err := p.client.Tx(ctx)
	if err != nil {
		return nil, fmt.Errorf("start transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	now := time.Now()
	due, err := tx.ExecutionJob.Query().
		Where(
			executionjob.StatusEQ(executionjob.StatusWaiting),
			executionjob.WaitStrategyEQ(executionjob.WaitStrategyPolling),
			executionjob.NextPollAtNotNil(),
			executionjob.NextPollAtLTE(now),
		).
		Order(ent.Asc(executionjob.FieldNextPollAt)).
		Limit(p.config.BatchSize).
		ForUpdate(sql.WithLockAction(sql.SkipLocked)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query due jobs: %w", err)
	}
	if len(due) == 0 {
		return nil, nil
	}

	leased := make([]*ent.ExecutionJob, 0, len(due))
	for _, job := range due {
		// Attempts are burned only by polls that leave the job waiting (see
		// deferRetry); the lease just pushes the due time far enough that no
		// other replica re-leases the row mid-request.
		updated, err := job.Update().
			SetNextPollAt(now.Add(p.backoffDelay(job.PollAttempts + 1))).
			Save(ctx)
		if err != nil {
			return nil, fmt.Errorf("lease job %s: %w", job.ID, err)
		}
		leased = append(leased, updated)
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("commit lease: %w", err)
	}
	return leased, nil
}

// pollJob makes one status request for a leased job and applies the result.
// Transient errors are recorded and burn an attempt; the job stays waiting.
func (p *Poller) pollJob(ctx context.Context, job *ent.ExecutionJob) {
	log := slog.With(
		"job_id", job.ID,
		"execution_id", job.ExecutionID,
		"operation", job.Operation,
		"poll_attempts", job.PollAttempts)

	if job.PollAttempts >= p.config.MaxPollAttempts {
		p.terminal(ctx, job, orchestrator.FailedOutcome(
			fmt.Sprintf("exceeded polling attempts (%d)", p.config.MaxPollAttempts)), log)
		return
	}
	if job.ProviderJobID == nil || *job.ProviderJobID == "" {
		p.terminal(ctx, job, orchestrator.FailedOutcome("waiting job has no provider job id"), log)
		return
	}

	status, err := p.fetchStatus(ctx, job)
	if err != nil {
		var credErr *credentials.NotConfiguredError
		if errors.As(err, &credErr) || errors.Is(err, provider.ErrNoAdapter) {
			p.terminal(ctx, job, orchestrator.FailedOutcome(err.Error()), log)
			return
		}
		p.deferRetry(ctx, job, err, log)
		return
	}

	switch status.State {
	case provider.StatusCompleted:
		p.terminal(ctx, job, orchestrator.CompletedOutcome(status.Outputs), log)
	case provider.StatusFailed:
		p.terminal(ctx, job, orchestrator.FailedOutcome(status.Error), log)
	case provider.StatusProcessing:
		p.deferRetry(ctx, job, nil, log)
	}
}

// fetchStatus resolves the adapter and credential, then asks the provider.
func (p *Poller) fetchStatus(ctx context.Context, job *ent.ExecutionJob) (provider.StatusResult, error) {
	exec, err := p.client.Execution.Get(ctx, job.ExecutionID)
	if err != nil {
		return provider.StatusResult{}, fmt.Errorf("load execution: %w", err)
	}
	adapter, err := p.registry.Lookup(job.Operation, provider.ModelID(job.Params))
	if err != nil {
		return provider.StatusResult{}, err
	}
	apiKey, err := p.creds.Resolve(ctx, exec, adapter.Provider(), adapter.Capabilities().RequiresAPIKey)
	if err != nil {
		return provider.StatusResult{}, err
	}

	reqCtx, cancel := context.WithTimeout(ctx, p.config.RequestTimeout)
	defer cancel()
	return adapter.PollStatus(reqCtx, *job.ProviderJobID, apiKey)
}

// terminal reports a terminal outcome; idempotent against webhook races.
func (p *Poller) terminal(ctx context.Context, job *ent.ExecutionJob, outcome orchestrator.Outcome, log *slog.Logger) {
	if err := p.orch.OnJobTerminal(ctx, job.ID, outcome); err != nil {
		log.Error("Failed to apply poll outcome", "error", err)
		return
	}
	log.Info("Poll resolved job", "completed", outcome.Completed)
}

// deferRetry burns a poll attempt and schedules the next one; pollErr, when
// set, is a transient provider error kept on the row for operators. The
// update is conditional on the row still waiting: a webhook may have landed
// while the status request ran.
func (p *Poller) deferRetry(ctx context.Context, job *ent.ExecutionJob, pollErr error, log *slog.Logger) {
	attempts := job.PollAttempts + 1
	update := p.client.ExecutionJob.Update().
		Where(
			executionjob.IDEQ(job.ID),
			executionjob.StatusEQ(executionjob.StatusWaiting),
		).
		SetPollAttempts(attempts).
		SetNextPollAt(time.Now().Add(p.backoffDelay(attempts)))
	if pollErr != nil {
		log.Warn("Poll request failed", "error", pollErr)
		update.SetPollError(pollErr.Error())
	} else {
		log.Debug("Job still processing at provider")
	}
	if _, err := update.Save(ctx); err != nil {
		log.Error("Failed to schedule next poll", "error", err)
	}
}

// backoffDelay grows exponentially with the attempt count:
// initial × multiplier^(attempts-1), capped.
func (p *Poller) backoffDelay(attempts int) time.Duration {
	if attempts < 1 {
		attempts = 1
	}
	delay := time.Duration(float64(p.config.InitialBackoff) *
		math.Pow(p.config.BackoffMultiplier, float64(attempts-1)))
	if delay > p.config.MaxBackoff || delay <= 0 {
		delay = p.config.MaxBackoff
	}
	return delay
}
