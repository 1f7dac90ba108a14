package poller

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
	"github.com/mediaforge/mediaforge/pkg/credentials"
	"github.com/mediaforge/mediaforge/pkg/models"
	"github.com/mediaforge/mediaforge/pkg/orchestrator"
	"github.com/mediaforge/mediaforge/pkg/provider"
	"github.com/mediaforge/mediaforge/pkg/secrets"
	"github.com/mediaforge/mediaforge/pkg/usage"
	"github.com/mediaforge/mediaforge/test/util"
)

// pollAdapter scripts PollStatus for coordinator tests.
type pollAdapter struct {
	slug  string
	caps  provider.Capabilities
	poll  func(ctx context.Context, providerJobID, apiKey string) (provider.StatusResult, error)
	polls int
}

func (a *pollAdapter) Provider() string                    { return a.slug }
func (a *pollAdapter) Capabilities() provider.Capabilities { return a.caps }
func (a *pollAdapter) Launch(context.Context, provider.LaunchInput) (provider.LaunchResult, error) {
	return provider.LaunchResult{}, nil
}
func (a *pollAdapter) ParseStatus([]byte) (provider.StatusResult, error) {
	return provider.StatusResult{}, nil
}
func (a *pollAdapter) PollStatus(ctx context.Context, providerJobID, apiKey string) (provider.StatusResult, error) {
	a.polls++
	return a.poll(ctx, providerJobID, apiKey)
}

type pollerFixture struct {
	client   *ent.Client
	poller   *Poller
	registry *provider.Registry
	config   *config.PollerConfig
}

func newPollerFixture(t *testing.T) *pollerFixture {
	t.Helper()
	client, _ := util.SetupTestDatabase(t)
	cipher, err := secrets.NewCipher("test-secret")
	require.NoError(t, err)
	orch := orchestrator.New(client, usage.NewService(client), cipher)
	registry := provider.NewRegistry()
	cfg := config.DefaultPollerConfig()
	cfg.MaxPollAttempts = 3
	return &pollerFixture{
		client:   client,
		poller:   New(client, orch, registry, credentials.NewResolver(client, cipher), cfg),
		registry: registry,
		config:   cfg,
	}
}

type waitingJobOpts struct {
	providerJobID string
	nextPollAt    time.Time
	pollAttempts  int
	strategy      executionjob.WaitStrategy
}

func (f *pollerFixture) createWaitingJob(t *testing.T, opts waitingJobOpts) *ent.ExecutionJob {
	t.Helper()
	ctx := context.Background()

	execID := uuid.New().String()
	_, err := f.client.Execution.Create().
		SetID(execID).
		SetTenantID("tenant-a").
		SetPlan(map[string]interface{}{"jobs": []interface{}{}}).
		SetStatus(execution.StatusProcessing).
		Save(ctx)
	require.NoError(t, err)

	if opts.strategy == "" {
		opts.strategy = executionjob.WaitStrategyPolling
	}
	create := f.client.ExecutionJob.Create().
		SetID(uuid.New().String()).
		SetExecutionID(execID).
		SetPlanLocalID("vid").
		SetOperation(models.OpGenerateVideo).
		SetParams(map[string]interface{}{}).
		SetStatus(executionjob.StatusWaiting).
		SetWaitStrategy(opts.strategy).
		SetNextPollAt(opts.nextPollAt).
		SetPollAttempts(opts.pollAttempts).
		SetInsertionIndex(0)
	if opts.providerJobID != "" {
		create.SetProviderJobID(opts.providerJobID)
	}
	job, err := create.Save(ctx)
	require.NoError(t, err)
	return job
}

func TestTick_CompletedPollResolvesJob(t *testing.T) {
	f := newPollerFixture(t)
	ctx := context.Background()

	outputs := []models.MediaOutput{{Type: "video", URL: "https://cdn.example.com/v.mp4"}}
	adapter := &pollAdapter{
		slug: "replicate",
		caps: provider.Capabilities{SupportsPolling: true},
		poll: func(_ context.Context, providerJobID, _ string) (provider.StatusResult, error) {
			assert.Equal(t, "pred-1", providerJobID)
			return provider.StatusResult{State: provider.StatusCompleted, Outputs: outputs}, nil
		},
	}
	f.registry.Register(models.OpGenerateVideo, "", adapter)

	job := f.createWaitingJob(t, waitingJobOpts{
		providerJobID: "pred-1",
		nextPollAt:    time.Now().Add(-time.Second),
	})

	require.NoError(t, f.poller.Tick(ctx))
	assert.Equal(t, 1, adapter.polls)

	stored, err := f.client.ExecutionJob.Get(ctx, job.ID)
	require.NoError(t, err)
	assert.Equal(t, executionjob.StatusCompleted, stored.Status)
	require.Len(t, stored.Result, 1)
	assert.Equal(t, "https://cdn.example.com/v.mp4", stored.Result[0]["url"])
	// A poll that resolves the job does not count against the attempt cap.
	assert.Equal(t, 0, stored.PollAttempts)
}

func TestTick_FailedPollFailsJob(t *testing.T) {
	f := newPollerFixture(t)
	ctx := context.Background()

	adapter := &pollAdapter{
		slug: "replicate",
		caps: provider.Capabilities{SupportsPolling: true},
		poll: func(context.Context, string, string) (provider.StatusResult, error) {
			return provider.StatusResult{State: provider.StatusFailed, Error: "prediction failed"}, nil
		},
	}
	f.registry.Register(models.OpGenerateVideo, "", adapter)

	job := f.createWaitingJob(t, waitingJobOpts{
		providerJobID: "pred-1",
		nextPollAt:    time.Now().Add(-time.Second),
	})

	require.NoError(t, f.poller.Tick(ctx))

	stored, err := f.client.ExecutionJob.Get(ctx, job.ID)
	require.NoError(t, err)
	assert.Equal(t, executionjob.StatusFailed, stored.Status)
	require.NotNil(t, stored.ErrorMessage)
	assert.Equal(t, "prediction failed", *stored.ErrorMessage)
}

func TestTick_InFlightKeepsWaitingWithBackoff(t *testing.T) {
	f := newPollerFixture(t)
	ctx := context.Background()

	adapter := &pollAdapter{
		slug: "replicate",
		caps: provider.Capabilities{SupportsPolling: true},
		poll: func(context.Context, string, string) (provider.StatusResult, error) {
			return provider.StatusResult{State: provider.StatusProcessing}, nil
		},
	}
	f.registry.Register(models.OpGenerateVideo, "", adapter)

	job := f.createWaitingJob(t, waitingJobOpts{
		providerJobID: "pred-1",
		nextPollAt:    time.Now().Add(-time.Second),
	})

	require.NoError(t, f.poller.Tick(ctx))

	stored, err := f.client.ExecutionJob.Get(ctx, job.ID)
	require.NoError(t, err)
	assert.Equal(t, executionjob.StatusWaiting, stored.Status)
	assert.Equal(t, 1, stored.PollAttempts)
	// The next due time follows the backoff schedule.
	require.NotNil(t, stored.NextPollAt)
	assert.True(t, stored.NextPollAt.After(time.Now()))
}

func TestTick_SkipsJobsNotDueOrNotPolling(t *testing.T) {
	f := newPollerFixture(t)
	ctx := context.Background()

	adapter := &pollAdapter{
		slug: "replicate",
		caps: provider.Capabilities{SupportsPolling: true},
		poll: func(context.Context, string, string) (provider.StatusResult, error) {
			return provider.StatusResult{State: provider.StatusCompleted}, nil
		},
	}
	f.registry.Register(models.OpGenerateVideo, "", adapter)

	notDue := f.createWaitingJob(t, waitingJobOpts{
		providerJobID: "pred-1",
		nextPollAt:    time.Now().Add(time.Hour),
	})
	webhookJob := f.createWaitingJob(t, waitingJobOpts{
		providerJobID: "pred-2",
		nextPollAt:    time.Now().Add(-time.Second),
		strategy:      executionjob.WaitStrategyWebhook,
	})

	require.NoError(t, f.poller.Tick(ctx))
	assert.Equal(t, 0, adapter.polls)

	for _, id := range []string{notDue.ID, webhookJob.ID} {
		stored, err := f.client.ExecutionJob.Get(ctx, id)
		require.NoError(t, err)
		assert.Equal(t, executionjob.StatusWaiting, stored.Status)
	}
}

func TestTick_TransientErrorRecordedJobStaysWaiting(t *testing.T) {
	f := newPollerFixture(t)
	ctx := context.Background()

	adapter := &pollAdapter{
		slug: "replicate",
		caps: provider.Capabilities{SupportsPolling: true},
		poll: func(context.Context, string, string) (provider.StatusResult, error) {
			return provider.StatusResult{}, errors.New("replicate returned HTTP 500 polling pred-1")
		},
	}
	f.registry.Register(models.OpGenerateVideo, "", adapter)

	job := f.createWaitingJob(t, waitingJobOpts{
		providerJobID: "pred-1",
		nextPollAt:    time.Now().Add(-time.Second),
	})

	require.NoError(t, f.poller.Tick(ctx))

	stored, err := f.client.ExecutionJob.Get(ctx, job.ID)
	require.NoError(t, err)
	assert.Equal(t, executionjob.StatusWaiting, stored.Status)
	require.NotNil(t, stored.PollError)
	assert.Contains(t, *stored.PollError, "HTTP 500")
	assert.Equal(t, 1, stored.PollAttempts)
}

func TestTick_OnlyInFlightPollsBurnAttempts(t *testing.T) {
	f := newPollerFixture(t)
	f.config.MaxPollAttempts = 10
	ctx := context.Background()

	// Two polls find the job still running; the third resolves it.
	adapter := &pollAdapter{
		slug: "replicate",
		caps: provider.Capabilities{SupportsPolling: true},
		poll: func(context.Context, string, string) (provider.StatusResult, error) {
			return provider.StatusResult{State: provider.StatusProcessing}, nil
		},
	}
	f.registry.Register(models.OpGenerateVideo, "", adapter)

	job := f.createWaitingJob(t, waitingJobOpts{
		providerJobID: "pred-1",
		nextPollAt:    time.Now().Add(-time.Second),
	})

	for i := 0; i < 3; i++ {
		if i == 2 {
			adapter.poll = func(context.Context, string, string) (provider.StatusResult, error) {
				return provider.StatusResult{State: provider.StatusCompleted}, nil
			}
		}
		require.NoError(t, f.poller.Tick(ctx))
		// Pull the backoff-scheduled due time back so the next tick leases it.
		_, err := f.client.ExecutionJob.Update().
			Where(executionjob.IDEQ(job.ID), executionjob.StatusEQ(executionjob.StatusWaiting)).
			SetNextPollAt(time.Now().Add(-time.Second)).
			Save(ctx)
		require.NoError(t, err)
	}

	stored, err := f.client.ExecutionJob.Get(ctx, job.ID)
	require.NoError(t, err)
	assert.Equal(t, executionjob.StatusCompleted, stored.Status)
	// Two in-flight polls burned attempts; the resolving poll did not.
	assert.Equal(t, 2, stored.PollAttempts)
}

func TestTick_ExceededAttemptsFailsJob(t *testing.T) {
	f := newPollerFixture(t)
	ctx := context.Background()

	adapter := &pollAdapter{
		slug: "replicate",
		caps: provider.Capabilities{SupportsPolling: true},
		poll: func(context.Context, string, string) (provider.StatusResult, error) {
			return provider.StatusResult{State: provider.StatusProcessing}, nil
		},
	}
	f.registry.Register(models.OpGenerateVideo, "", adapter)

	// Already at the cap: failed without another provider request.
	job := f.createWaitingJob(t, waitingJobOpts{
		providerJobID: "pred-1",
		nextPollAt:    time.Now().Add(-time.Second),
		pollAttempts:  f.config.MaxPollAttempts,
	})

	require.NoError(t, f.poller.Tick(ctx))
	assert.Equal(t, 0, adapter.polls)

	stored, err := f.client.ExecutionJob.Get(ctx, job.ID)
	require.NoError(t, err)
	assert.Equal(t, executionjob.StatusFailed, stored.Status)
	require.NotNil(t, stored.ErrorMessage)
	assert.Equal(t, "exceeded polling attempts (3)", *stored.ErrorMessage)
}

func TestTick_MissingProviderJobIDFailsJob(t *testing.T) {
	f := newPollerFixture(t)
	ctx := context.Background()

	job := f.createWaitingJob(t, waitingJobOpts{
		nextPollAt: time.Now().Add(-time.Second),
	})

	require.NoError(t, f.poller.Tick(ctx))

	stored, err := f.client.ExecutionJob.Get(ctx, job.ID)
	require.NoError(t, err)
	assert.Equal(t, executionjob.StatusFailed, stored.Status)
	require.NotNil(t, stored.ErrorMessage)
	assert.Contains(t, *stored.ErrorMessage, "no provider job id")
}

func TestBackoffDelay(t *testing.T) {
	cfg := &config.PollerConfig{
		Interval:          10 * time.Second,
		InitialBackoff:    5 * time.Second,
		BackoffMultiplier: 2,
		MaxBackoff:        time.Minute,
	}
	p := &Poller{config: cfg}

	// 5s doubles per attempt, capped at max.
	assert.Equal(t, 5*time.Second, p.backoffDelay(1))
	assert.Equal(t, 10*time.Second, p.backoffDelay(2))
	assert.Equal(t, 20*time.Second, p.backoffDelay(3))
	assert.Equal(t, 40*time.Second, p.backoffDelay(4))
	assert.Equal(t, time.Minute, p.backoffDelay(5)) // 80s → cap
	assert.Equal(t, time.Minute, p.backoffDelay(50))
	assert.Equal(t, 5*time.Second, p.backoffDelay(0))
}
