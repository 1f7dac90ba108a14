package queue

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math/rand/v2"
	"sync"
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/mediaforge/mediaforge/ent"
	"github.com/mediaforge/mediaforge/ent/execution"
	"github.com/mediaforge/mediaforge/ent/executionjob"
	"github.com/mediaforge/mediaforge/pkg/config"
	"github.com/mediaforge/mediaforge/pkg/orchestrator"
)

// WorkerStatus represents the current state of a worker.
type WorkerStatus string

// Worker status constants.
const (
	WorkerStatusIdle    WorkerStatus = "idle"
	WorkerStatusWorking WorkerStatus = "working"
)

// claimBatchSize is how many ready candidates one claim transaction inspects
// before concluding every eligible operation is at capacity.
const claimBatchSize = 10

// Worker is a single queue worker that polls for and dispatches jobs.
type Worker struct {
	id       string
	podID    string
	client   *ent.Client
	config   *config.QueueConfig
	executor JobExecutor
	orch     *orchestrator.Orchestrator
	pool     JobRegistry
	stopCh   chan struct{}
	stopOnce sync.Once
	wg       sync.WaitGroup

	// Health tracking
	mu            sync.RWMutex
	status        WorkerStatus
	currentJobID  string
	jobsProcessed int
	lastActivity  time.Time
}

// JobRegistry is the subset of WorkerPool used by Worker for cancel
// registration.
type JobRegistry interface {
	RegisterJob(jobID string, cancel context.CancelFunc)
	UnregisterJob(jobID string)
}

// NewWorker creates a new queue worker.
func NewWorker(id, podID string, client *ent.Client, cfg *config.QueueConfig, executor JobExecutor, orch *orchestrator.Orchestrator, pool JobRegistry) *Worker {
	return &Worker{
		id:           id,
		podID:        podID,
		client:       client,
		config:       cfg,
		executor:     executor,
		orch:         orch,
		pool:         pool,
		stopCh:       make(chan struct{}),
		status:       WorkerStatusIdle,
		lastActivity: time.Now(),
	}
}

// Start begins the worker polling loop in a goroutine.
func (w *Worker) Start(ctx context.Context) {
	w.wg.Add(1)
	go w.run(ctx)
}

// Stop signals the worker to stop and waits for it to finish.
// It is safe to call Stop multiple times.
func (w *Worker) Stop() {
	w.stopOnce.Do(func() { close(w.stopCh) })
	w.wg.Wait()
}

// Health returns the current worker health status.
func (w *Worker) Health() WorkerHealth {
	w.mu.RLock()
	defer w.mu.RUnlock()
	return WorkerHealth{
		ID:            w.id,
		Status:        string(w.status),
		CurrentJobID:  w.currentJobID,
		JobsProcessed: w.jobsProcessed,
		LastActivity:  w.lastActivity,
	}
}

// run is the main worker loop.
func (w *Worker) run(ctx context.Context) {
	defer w.wg.Done()

	log := slog.With("worker_id", w.id, "pod_id", w.podID)
	log.Info("Worker started")

	for {
		select {
		case <-w.stopCh:
			log.Info("Worker shutting down")
			return
		case <-ctx.Done():
			log.Info("Context cancelled, worker shutting down")
			return
		default:
			if err := w.pollAndProcess(ctx); err != nil {
				if errors.Is(err, ErrNoJobsAvailable) || errors.Is(err, ErrAtCapacity) {
					w.sleep(w.pollInterval())
					continue
				}
				log.Error("Error processing job", "error", err)
				w.sleep(time.Second) // Brief backoff on error
			}
		}
	}
}

// sleep waits for the given duration or until stop is signalled.
func (w *Worker) sleep(d time.Duration) {
	select {
	case <-w.stopCh:
	case <-time.After(d):
	}
}

// pollAndProcess checks capacity, claims a job, and dispatches it.
func (w *Worker) pollAndProcess(ctx context.Context) error {
	// 1. Check global capacity (best-effort; racy with concurrent workers but
	//    bounded by WorkerCount and mitigated by poll jitter).
	activeCount, err := w.client.ExecutionJob.Query().
		Where(executionjob.StatusEQ(executionjob.StatusProcessing)).
		Count(ctx)
	if err != nil {
		return fmt.Errorf("checking active jobs: %w", err)
	}
	if activeCount >= w.config.MaxConcurrentJobs {
		return ErrAtCapacity
	}

	// 2. Claim next ready job
	job, err := w.claimNextJob(ctx)
	if err != nil {
		return err
	}

	log := slog.With(
		"job_id", job.ID,
		"execution_id", job.ExecutionID,
		"operation", job.Operation,
		"worker_id", w.id)
	log.Info("Job claimed")

	w.setStatus(WorkerStatusWorking, job.ID)
	defer w.setStatus(WorkerStatusIdle, "")

	// 3. Bound one dispatch: reference resolution plus the provider launch call.
	jobCtx, cancelJob := context.WithTimeout(ctx, w.config.LaunchTimeout)
	defer cancelJob()

	// 4. Register cancel function for API-triggered cancellation
	w.pool.RegisterJob(job.ID, cancelJob)
	defer w.pool.UnregisterJob(job.ID)

	// 5. Dispatch. The executor writes the waiting or terminal transition
	//    itself, including terminal failure for launch-level errors. An error
	//    here is infrastructure trouble (DB read, orchestrator transaction):
	//    the provider call may already have succeeded, so the row stays in
	//    processing and orphan recovery requeues it rather than recording a
	//    failure the provider never produced.
	if err := w.executor.Execute(jobCtx, job); err != nil {
		return fmt.Errorf("dispatch job %s: %w", job.ID, err)
	}

	w.mu.Lock()
	w.jobsProcessed++
	w.mu.Unlock()

	log.Info("Job dispatch complete")
	return nil
}

// claimNextJob atomically claims the next ready job using FOR UPDATE SKIP
// LOCKED. Candidates are ordered by ready_at for FIFO dispatch; a candidate
// whose operation is at its concurrency cap is skipped, still locked, so a
// sibling worker does not pick it up in the same instant.
func (w *Worker) claimNextJob(ctx context.Context) (*ent.ExecutionJob, error) {
	tx, err := w.client.Tx(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to start transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	candidates, err := tx.ExecutionJob.Query().
		Where(
			executionjob.StatusEQ(executionjob.StatusPending),
			executionjob.ReadyAtNotNil(),
		).
		Order(ent.Asc(executionjob.FieldReadyAt), ent.Asc(executionjob.FieldInsertionIndex)).
		Limit(claimBatchSize).
		ForUpdate(sql.WithLockAction(sql.SkipLocked)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to query ready jobs: %w", err)
	}
	if len(candidates) == 0 {
		return nil, ErrNoJobsAvailable
	}

	job, err := w.pickWithinOperationCaps(ctx, candidates)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	job, err = job.Update().
		SetStatus(executionjob.StatusProcessing).
		SetClaimedBy(w.podID).
		SetClaimedAt(now).
		SetStartedAt(now).
		Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to claim job: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit claim: %w", err)
	}

	// First claim moves the execution out of pending. Conditional update:
	// later claims for the same execution are no-ops. Outside the claim
	// transaction on purpose — the terminal path locks the execution row
	// before job rows, so a claim must not wait on the execution row while
	// holding job row locks.
	if _, err := w.client.Execution.Update().
		Where(
			execution.IDEQ(job.ExecutionID),
			execution.StatusEQ(execution.StatusPending),
		).
		SetStatus(execution.StatusProcessing).
		Save(ctx); err != nil {
		// The claim stands; the terminal roll-up promotes the execution too.
		slog.Warn("Failed to mark execution processing",
			"execution_id", job.ExecutionID, "error", err)
	}

	return job, nil
}

// pickWithinOperationCaps returns the first candidate whose operation is under
// its configured concurrency cap.
func (w *Worker) pickWithinOperationCaps(ctx context.Context, candidates []*ent.ExecutionJob) (*ent.ExecutionJob, error) {
	counts := make(map[string]int)
	for _, candidate := range candidates {
		limit, capped := w.config.OperationConcurrency[candidate.Operation]
		if !capped || limit <= 0 {
			return candidate, nil
		}
		active, counted := counts[candidate.Operation]
		if !counted {
			var err error
			active, err = w.client.ExecutionJob.Query().
				Where(
					executionjob.StatusEQ(executionjob.StatusProcessing),
					executionjob.OperationEQ(candidate.Operation),
				).
				Count(ctx)
			if err != nil {
				return nil, fmt.Errorf("checking %q concurrency: %w", candidate.Operation, err)
			}
			counts[candidate.Operation] = active
		}
		if active < limit {
			return candidate, nil
		}
	}
	return nil, ErrAtCapacity
}

// pollInterval returns the poll duration with jitter.
func (w *Worker) pollInterval() time.Duration {
	base := w.config.PollInterval
	jitter := w.config.PollIntervalJitter
	if jitter <= 0 {
		return base
	}
	// Range: [base - jitter, base + jitter]
	offset := time.Duration(rand.Int64N(int64(2 * jitter)))
	return base - jitter + offset
}

// setStatus updates the worker's health tracking state.
func (w *Worker) setStatus(status WorkerStatus, jobID string) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.status = status
	w.currentJobID = jobID
	w.lastActivity = time.Now()
}
