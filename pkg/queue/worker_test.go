package queue

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mediaforge/mediaforge/ent"
	"github.com/mediaforge/mediaforge/ent/execution"
	"github.com/mediaforge/mediaforge/ent/executionjob"
	"github.com/mediaforge/mediaforge/pkg/config"
	"github.com/mediaforge/mediaforge/pkg/models"
	"github.com/mediaforge/mediaforge/pkg/orchestrator"
	"github.com/mediaforge/mediaforge/pkg/secrets"
	"github.com/mediaforge/mediaforge/pkg/usage"
	"github.com/mediaforge/mediaforge/test/util"
)

// stubExecutor lets tests script the dispatch outcome.
type stubExecutor struct {
	fn func(ctx context.Context, job *ent.ExecutionJob) error
}

func (s *stubExecutor) Execute(ctx context.Context, job *ent.ExecutionJob) error {
	if s.fn == nil {
		return nil
	}
	return s.fn(ctx, job)
}

// noopRegistry satisfies JobRegistry for workers tested without a pool.
type noopRegistry struct{}

func (noopRegistry) RegisterJob(string, context.CancelFunc) {}
func (noopRegistry) UnregisterJob(string)                   {}

func newTestOrchestrator(t *testing.T, client *ent.Client) *orchestrator.Orchestrator {
	t.Helper()
	cipher, err := secrets.NewCipher("test-secret")
	require.NoError(t, err)
	return orchestrator.New(client, usage.NewService(client), cipher)
}

func newTestWorker(t *testing.T, client *ent.Client, cfg *config.QueueConfig, exec JobExecutor) *Worker {
	t.Helper()
	if cfg == nil {
		cfg = config.DefaultQueueConfig()
	}
	return NewWorker("test-worker-0", "test-pod", client, cfg, exec, newTestOrchestrator(t, client), noopRegistry{})
}

func createExecution(t *testing.T, client *ent.Client, tenantID string) *ent.Execution {
	t.Helper()
	exec, err := client.Execution.Create().
		SetID(uuid.New().String()).
		SetTenantID(tenantID).
		SetPlan(map[string]interface{}{"jobs": []interface{}{}}).
		SetStatus(execution.StatusPending).
		Save(context.Background())
	require.NoError(t, err)
	return exec
}

type jobOpts struct {
	operation string
	status    executionjob.Status
	readyAt   *time.Time
	claimedBy string
	claimedAt *time.Time
	index     int
	localID   string
	params    map[string]interface{}
	dependsOn []string
	result    []models.MediaOutput
}

func createJob(t *testing.T, client *ent.Client, executionID string, opts jobOpts) *ent.ExecutionJob {
	t.Helper()
	if opts.operation == "" {
		opts.operation = models.OpGenerateImage
	}
	if opts.status == "" {
		opts.status = executionjob.StatusPending
	}
	if opts.localID == "" {
		opts.localID = uuid.New().String()[:8]
	}
	if opts.params == nil {
		opts.params = map[string]interface{}{}
	}
	create := client.ExecutionJob.Create().
		SetID(uuid.New().String()).
		SetExecutionID(executionID).
		SetPlanLocalID(opts.localID).
		SetOperation(opts.operation).
		SetParams(opts.params).
		SetStatus(opts.status).
		SetInsertionIndex(opts.index)
	if opts.readyAt != nil {
		create.SetReadyAt(*opts.readyAt)
	}
	if opts.claimedBy != "" {
		create.SetClaimedBy(opts.claimedBy)
	}
	if opts.claimedAt != nil {
		create.SetClaimedAt(*opts.claimedAt)
	}
	if opts.dependsOn != nil {
		create.SetDependsOn(opts.dependsOn)
	}
	if opts.result != nil {
		create.SetResult(models.OutputsToJSON(opts.result))
	}
	job, err := create.Save(context.Background())
	require.NoError(t, err)
	return job
}

func timePtr(t time.Time) *time.Time { return &t }

func TestClaimNextJob_FIFOByReadyAt(t *testing.T) {
	client, _ := util.SetupTestDatabase(t)
	worker := newTestWorker(t, client, nil, &stubExecutor{})
	ctx := context.Background()

	exec := createExecution(t, client, "tenant-a")
	later := createJob(t, client, exec.ID, jobOpts{readyAt: timePtr(time.Now()), index: 1})
	earlier := createJob(t, client, exec.ID, jobOpts{readyAt: timePtr(time.Now().Add(-time.Minute)), index: 0})

	claimed, err := worker.claimNextJob(ctx)
	require.NoError(t, err)
	assert.Equal(t, earlier.ID, claimed.ID)
	assert.Equal(t, executionjob.StatusProcessing, claimed.Status)
	require.NotNil(t, claimed.ClaimedBy)
	assert.Equal(t, "test-pod", *claimed.ClaimedBy)
	assert.NotNil(t, claimed.ClaimedAt)
	assert.NotNil(t, claimed.StartedAt)

	// The other job is untouched.
	remaining, err := client.ExecutionJob.Get(ctx, later.ID)
	require.NoError(t, err)
	assert.Equal(t, executionjob.StatusPending, remaining.Status)
}

func TestClaimNextJob_IgnoresUnreadyAndNonPending(t *testing.T) {
	client, _ := util.SetupTestDatabase(t)
	worker := newTestWorker(t, client, nil, &stubExecutor{})

	exec := createExecution(t, client, "tenant-a")
	createJob(t, client, exec.ID, jobOpts{index: 0}) // pending, no ready_at
	createJob(t, client, exec.ID, jobOpts{status: executionjob.StatusWaiting, readyAt: timePtr(time.Now()), index: 1})
	createJob(t, client, exec.ID, jobOpts{status: executionjob.StatusCompleted, readyAt: timePtr(time.Now()), index: 2})

	_, err := worker.claimNextJob(context.Background())
	assert.ErrorIs(t, err, ErrNoJobsAvailable)
}

func TestClaimNextJob_MarksExecutionProcessingOnFirstClaim(t *testing.T) {
	client, _ := util.SetupTestDatabase(t)
	worker := newTestWorker(t, client, nil, &stubExecutor{})
	ctx := context.Background()

	exec := createExecution(t, client, "tenant-a")
	createJob(t, client, exec.ID, jobOpts{readyAt: timePtr(time.Now()), index: 0})
	createJob(t, client, exec.ID, jobOpts{readyAt: timePtr(time.Now()), index: 1})

	_, err := worker.claimNextJob(ctx)
	require.NoError(t, err)

	stored, err := client.Execution.Get(ctx, exec.ID)
	require.NoError(t, err)
	assert.Equal(t, execution.StatusProcessing, stored.Status)

	// Second claim for the same execution is a no-op on the execution row.
	_, err = worker.claimNextJob(ctx)
	require.NoError(t, err)

	stored, err = client.Execution.Get(ctx, exec.ID)
	require.NoError(t, err)
	assert.Equal(t, execution.StatusProcessing, stored.Status)
}

func TestClaimNextJob_OperationCapSkipsToNextCandidate(t *testing.T) {
	client, _ := util.SetupTestDatabase(t)
	cfg := config.DefaultQueueConfig()
	cfg.OperationConcurrency = map[string]int{models.OpGenerateVideo: 1}
	worker := newTestWorker(t, client, cfg, &stubExecutor{})
	ctx := context.Background()

	exec := createExecution(t, client, "tenant-a")
	// One video job already in flight: the video cap is saturated.
	createJob(t, client, exec.ID, jobOpts{operation: models.OpGenerateVideo, status: executionjob.StatusProcessing, index: 0})
	createJob(t, client, exec.ID, jobOpts{operation: models.OpGenerateVideo, readyAt: timePtr(time.Now().Add(-time.Minute)), index: 1})
	image := createJob(t, client, exec.ID, jobOpts{operation: models.OpGenerateImage, readyAt: timePtr(time.Now()), index: 2})

	claimed, err := worker.claimNextJob(ctx)
	require.NoError(t, err)
	assert.Equal(t, image.ID, claimed.ID)
}

func TestClaimNextJob_AllCandidatesCapped(t *testing.T) {
	client, _ := util.SetupTestDatabase(t)
	cfg := config.DefaultQueueConfig()
	cfg.OperationConcurrency = map[string]int{models.OpGenerateVideo: 1}
	worker := newTestWorker(t, client, cfg, &stubExecutor{})

	exec := createExecution(t, client, "tenant-a")
	createJob(t, client, exec.ID, jobOpts{operation: models.OpGenerateVideo, status: executionjob.StatusProcessing, index: 0})
	createJob(t, client, exec.ID, jobOpts{operation: models.OpGenerateVideo, readyAt: timePtr(time.Now()), index: 1})

	_, err := worker.claimNextJob(context.Background())
	assert.ErrorIs(t, err, ErrAtCapacity)
}

func TestPollAndProcess_GlobalCapacity(t *testing.T) {
	client, _ := util.SetupTestDatabase(t)
	cfg := config.DefaultQueueConfig()
	cfg.MaxConcurrentJobs = 1
	worker := newTestWorker(t, client, cfg, &stubExecutor{})

	exec := createExecution(t, client, "tenant-a")
	createJob(t, client, exec.ID, jobOpts{status: executionjob.StatusProcessing, index: 0})
	createJob(t, client, exec.ID, jobOpts{readyAt: timePtr(time.Now()), index: 1})

	err := worker.pollAndProcess(context.Background())
	assert.ErrorIs(t, err, ErrAtCapacity)
}

func TestPollAndProcess_DispatchesClaimedJob(t *testing.T) {
	client, _ := util.SetupTestDatabase(t)
	orch := newTestOrchestrator(t, client)

	var dispatched *ent.ExecutionJob
	executor := &stubExecutor{fn: func(ctx context.Context, job *ent.ExecutionJob) error {
		dispatched = job
		// A real executor writes the next transition itself.
		return orch.OnJobTerminal(ctx, job.ID, orchestrator.CompletedOutcome(nil))
	}}
	worker := NewWorker("w0", "test-pod", client, config.DefaultQueueConfig(), executor, orch, noopRegistry{})
	ctx := context.Background()

	exec := createExecution(t, client, "tenant-a")
	job := createJob(t, client, exec.ID, jobOpts{readyAt: timePtr(time.Now()), index: 0})

	require.NoError(t, worker.pollAndProcess(ctx))
	require.NotNil(t, dispatched)
	assert.Equal(t, job.ID, dispatched.ID)

	stored, err := client.ExecutionJob.Get(ctx, job.ID)
	require.NoError(t, err)
	assert.Equal(t, executionjob.StatusCompleted, stored.Status)
}

func TestPollAndProcess_DispatchErrorLeavesJobForRecovery(t *testing.T) {
	client, _ := util.SetupTestDatabase(t)
	orch := newTestOrchestrator(t, client)

	// First dispatch dies after the provider call would already have gone out;
	// the retry after requeue finds the provider's result.
	outputs := []models.MediaOutput{{Type: "image", URL: "https://cdn.example.com/i.png"}}
	calls := 0
	executor := &stubExecutor{fn: func(ctx context.Context, job *ent.ExecutionJob) error {
		calls++
		if calls == 1 {
			return errors.New("record outcome: connection reset")
		}
		return orch.OnJobTerminal(ctx, job.ID, orchestrator.CompletedOutcome(outputs))
	}}
	worker := NewWorker("w0", "test-pod", client, config.DefaultQueueConfig(), executor, orch, noopRegistry{})
	ctx := context.Background()

	exec := createExecution(t, client, "tenant-a")
	job := createJob(t, client, exec.ID, jobOpts{readyAt: timePtr(time.Now()), index: 0})

	err := worker.pollAndProcess(ctx)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "connection reset")

	// The row is not failed: it stays claimed until orphan recovery requeues it.
	stored, err := client.ExecutionJob.Get(ctx, job.ID)
	require.NoError(t, err)
	assert.Equal(t, executionjob.StatusProcessing, stored.Status)
	assert.Nil(t, stored.ErrorMessage)

	// Orphan recovery hands the job back to the queue.
	_, err = client.ExecutionJob.UpdateOneID(job.ID).
		SetStatus(executionjob.StatusPending).
		SetReadyAt(time.Now()).
		ClearClaimedBy().
		ClearClaimedAt().
		Save(ctx)
	require.NoError(t, err)

	require.NoError(t, worker.pollAndProcess(ctx))
	assert.Equal(t, 2, calls)

	stored, err = client.ExecutionJob.Get(ctx, job.ID)
	require.NoError(t, err)
	assert.Equal(t, executionjob.StatusCompleted, stored.Status)
	require.Len(t, stored.Result, 1)
	assert.Equal(t, "https://cdn.example.com/i.png", stored.Result[0]["url"])
}

func TestDetectAndRecoverOrphans(t *testing.T) {
	client, _ := util.SetupTestDatabase(t)
	cfg := config.DefaultQueueConfig()
	cfg.OrphanThreshold = 10 * time.Minute
	pool := NewWorkerPool("test-pod", client, cfg, &stubExecutor{}, newTestOrchestrator(t, client))
	ctx := context.Background()

	exec := createExecution(t, client, "tenant-a")
	stale := createJob(t, client, exec.ID, jobOpts{
		status:    executionjob.StatusProcessing,
		claimedBy: "dead-pod",
		claimedAt: timePtr(time.Now().Add(-time.Hour)),
		index:     0,
	})
	fresh := createJob(t, client, exec.ID, jobOpts{
		status:    executionjob.StatusProcessing,
		claimedBy: "live-pod",
		claimedAt: timePtr(time.Now()),
		index:     1,
	})

	require.NoError(t, pool.detectAndRecoverOrphans(ctx))

	recovered, err := client.ExecutionJob.Get(ctx, stale.ID)
	require.NoError(t, err)
	assert.Equal(t, executionjob.StatusPending, recovered.Status)
	assert.NotNil(t, recovered.ReadyAt)
	assert.Nil(t, recovered.ClaimedBy)
	assert.Nil(t, recovered.ClaimedAt)

	untouched, err := client.ExecutionJob.Get(ctx, fresh.ID)
	require.NoError(t, err)
	assert.Equal(t, executionjob.StatusProcessing, untouched.Status)
}

func TestRequeueStartupOrphans(t *testing.T) {
	client, _ := util.SetupTestDatabase(t)
	ctx := context.Background()

	exec := createExecution(t, client, "tenant-a")
	mine := createJob(t, client, exec.ID, jobOpts{
		status:    executionjob.StatusProcessing,
		claimedBy: "test-pod",
		claimedAt: timePtr(time.Now()),
		index:     0,
	})
	other := createJob(t, client, exec.ID, jobOpts{
		status:    executionjob.StatusProcessing,
		claimedBy: "other-pod",
		claimedAt: timePtr(time.Now()),
		index:     1,
	})

	require.NoError(t, RequeueStartupOrphans(ctx, client, "test-pod"))

	recovered, err := client.ExecutionJob.Get(ctx, mine.ID)
	require.NoError(t, err)
	assert.Equal(t, executionjob.StatusPending, recovered.Status)
	assert.NotNil(t, recovered.ReadyAt)
	assert.Nil(t, recovered.ClaimedBy)

	untouched, err := client.ExecutionJob.Get(ctx, other.ID)
	require.NoError(t, err)
	assert.Equal(t, executionjob.StatusProcessing, untouched.Status)
}
