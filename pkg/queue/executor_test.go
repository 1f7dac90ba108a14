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
	"github.com/mediaforge/mediaforge/ent/executionjob"
	"github.com/mediaforge/mediaforge/pkg/config"
	"github.com/mediaforge/mediaforge/pkg/credentials"
	"github.com/mediaforge/mediaforge/pkg/models"
	"github.com/mediaforge/mediaforge/pkg/provider"
	"github.com/mediaforge/mediaforge/pkg/secrets"
	"github.com/mediaforge/mediaforge/test/util"
)

// fakeAdapter scripts one provider integration for executor tests and records
// the launch input it received.
type fakeAdapter struct {
	slug      string
	caps      provider.Capabilities
	launch    func(ctx context.Context, input provider.LaunchInput) (provider.LaunchResult, error)
	lastInput provider.LaunchInput
}

func (f *fakeAdapter) Provider() string                    { return f.slug }
func (f *fakeAdapter) Capabilities() provider.Capabilities { return f.caps }
func (f *fakeAdapter) Launch(ctx context.Context, input provider.LaunchInput) (provider.LaunchResult, error) {
	f.lastInput = input
	return f.launch(ctx, input)
}
func (f *fakeAdapter) ParseStatus([]byte) (provider.StatusResult, error) {
	return provider.StatusResult{}, nil
}
func (f *fakeAdapter) PollStatus(context.Context, string, string) (provider.StatusResult, error) {
	return provider.StatusResult{}, nil
}

type executorFixture struct {
	client   *ent.Client
	executor *Executor
	registry *provider.Registry
	cipher   *secrets.Cipher
}

func newExecutorFixture(t *testing.T, webhookBaseURL string) *executorFixture {
	t.Helper()
	client, _ := util.SetupTestDatabase(t)
	cipher, err := secrets.NewCipher("test-secret")
	require.NoError(t, err)
	orch := newTestOrchestrator(t, client)
	registry := provider.NewRegistry()
	creds := credentials.NewResolver(client, cipher)
	return &executorFixture{
		client:   client,
		executor: NewExecutor(client, orch, registry, creds, webhookBaseURL, config.DefaultPollerConfig()),
		registry: registry,
		cipher:   cipher,
	}
}

// claimedJob inserts a job already in processing, the state Execute sees.
func claimedJob(t *testing.T, client *ent.Client, executionID string, opts jobOpts) *ent.ExecutionJob {
	t.Helper()
	opts.status = executionjob.StatusProcessing
	if opts.claimedBy == "" {
		opts.claimedBy = "test-pod"
	}
	opts.claimedAt = timePtr(time.Now())
	return createJob(t, client, executionID, opts)
}

func (f *executorFixture) storeTenantKey(t *testing.T, tenantID, providerSlug, key string) {
	t.Helper()
	encrypted, err := f.cipher.Encrypt(key)
	require.NoError(t, err)
	_, err = f.client.ProviderAPIKey.Create().
		SetID(uuid.New().String()).
		SetTenantID(tenantID).
		SetProvider(providerSlug).
		SetEncryptedKey(encrypted).
		Save(context.Background())
	require.NoError(t, err)
}

func TestExecute_SyncCompletion(t *testing.T) {
	f := newExecutorFixture(t, "")
	ctx := context.Background()

	outputs := []models.MediaOutput{{Type: "video", URL: "https://cdn.example.com/v.mp4"}}
	adapter := &fakeAdapter{
		slug: "transform",
		caps: provider.Capabilities{SupportsPolling: true},
		launch: func(context.Context, provider.LaunchInput) (provider.LaunchResult, error) {
			return provider.SyncResult(outputs), nil
		},
	}
	f.registry.Register(models.OpMerge, "", adapter)

	exec := createExecution(t, f.client, "tenant-a")
	job := claimedJob(t, f.client, exec.ID, jobOpts{operation: models.OpMerge})

	require.NoError(t, f.executor.Execute(ctx, job))

	stored, err := f.client.ExecutionJob.Get(ctx, job.ID)
	require.NoError(t, err)
	assert.Equal(t, executionjob.StatusCompleted, stored.Status)
	require.Len(t, stored.Result, 1)
	assert.Equal(t, "https://cdn.example.com/v.mp4", stored.Result[0]["url"])
}

func TestExecute_AsyncWebhook(t *testing.T) {
	f := newExecutorFixture(t, "https://api.example.com")
	ctx := context.Background()

	adapter := &fakeAdapter{
		slug: "replicate",
		caps: provider.Capabilities{SupportsWebhook: true, SupportsPolling: true, RequiresAPIKey: true},
		launch: func(_ context.Context, input provider.LaunchInput) (provider.LaunchResult, error) {
			return provider.AsyncResult("pred-123", provider.WaitWebhook), nil
		},
	}
	f.registry.Register(models.OpGenerateImage, "", adapter)
	f.storeTenantKey(t, "tenant-a", "replicate", "r8_stored")

	exec := createExecution(t, f.client, "tenant-a")
	job := claimedJob(t, f.client, exec.ID, jobOpts{operation: models.OpGenerateImage})

	require.NoError(t, f.executor.Execute(ctx, job))

	assert.Equal(t, "https://api.example.com/webhook/job/"+job.ID, adapter.lastInput.WebhookURL)
	assert.Equal(t, "r8_stored", adapter.lastInput.APIKey)

	stored, err := f.client.ExecutionJob.Get(ctx, job.ID)
	require.NoError(t, err)
	assert.Equal(t, executionjob.StatusWaiting, stored.Status)
	require.NotNil(t, stored.ProviderJobID)
	assert.Equal(t, "pred-123", *stored.ProviderJobID)
	require.NotNil(t, stored.WaitStrategy)
	assert.Equal(t, executionjob.WaitStrategyWebhook, *stored.WaitStrategy)
	assert.Nil(t, stored.NextPollAt)
}

func TestExecute_AsyncPollingSchedulesFirstPoll(t *testing.T) {
	f := newExecutorFixture(t, "")
	ctx := context.Background()

	adapter := &fakeAdapter{
		slug: "replicate",
		caps: provider.Capabilities{SupportsPolling: true},
		launch: func(context.Context, provider.LaunchInput) (provider.LaunchResult, error) {
			return provider.AsyncResult("pred-456", provider.WaitPolling), nil
		},
	}
	f.registry.Register(models.OpGenerateVideo, "", adapter)

	exec := createExecution(t, f.client, "tenant-a")
	job := claimedJob(t, f.client, exec.ID, jobOpts{operation: models.OpGenerateVideo})

	require.NoError(t, f.executor.Execute(ctx, job))

	// No public base URL: adapter must not receive a callback.
	assert.Empty(t, adapter.lastInput.WebhookURL)

	stored, err := f.client.ExecutionJob.Get(ctx, job.ID)
	require.NoError(t, err)
	assert.Equal(t, executionjob.StatusWaiting, stored.Status)
	require.NotNil(t, stored.WaitStrategy)
	assert.Equal(t, executionjob.WaitStrategyPolling, *stored.WaitStrategy)
	require.NotNil(t, stored.NextPollAt)
	assert.True(t, stored.NextPollAt.After(time.Now()))
	// The first check is due at the initial backoff, sooner than a full scan
	// interval out.
	assert.True(t, stored.NextPollAt.Before(time.Now().Add(config.DefaultPollerConfig().Interval)))
}

func TestExecute_UpstreamOutputsResolvedIntoParams(t *testing.T) {
	f := newExecutorFixture(t, "")
	ctx := context.Background()

	adapter := &fakeAdapter{
		slug: "transform",
		caps: provider.Capabilities{SupportsPolling: true},
		launch: func(context.Context, provider.LaunchInput) (provider.LaunchResult, error) {
			return provider.SyncResult(nil), nil
		},
	}
	f.registry.Register(models.OpGenerateVideo, "", adapter)

	exec := createExecution(t, f.client, "tenant-a")
	createJob(t, f.client, exec.ID, jobOpts{
		localID:   "img",
		operation: models.OpGenerateImage,
		status:    executionjob.StatusCompleted,
		result:    []models.MediaOutput{{Type: "image", URL: "https://cdn.example.com/i.png"}},
		index:     0,
	})
	job := claimedJob(t, f.client, exec.ID, jobOpts{
		operation: models.OpGenerateVideo,
		params:    map[string]interface{}{"image": "$img", "prompt": "animate"},
		dependsOn: []string{"img"},
		index:     1,
	})

	require.NoError(t, f.executor.Execute(ctx, job))

	assert.Equal(t, "https://cdn.example.com/i.png", adapter.lastInput.Params["image"])
	assert.Equal(t, "animate", adapter.lastInput.Params["prompt"])
}

func TestExecute_UnresolvableReferenceFailsJob(t *testing.T) {
	f := newExecutorFixture(t, "")
	ctx := context.Background()

	exec := createExecution(t, f.client, "tenant-a")
	// Dependency row exists but is not completed, so no upstream output.
	createJob(t, f.client, exec.ID, jobOpts{
		localID:   "img",
		operation: models.OpGenerateImage,
		status:    executionjob.StatusFailed,
		index:     0,
	})
	job := claimedJob(t, f.client, exec.ID, jobOpts{
		operation: models.OpGenerateVideo,
		params:    map[string]interface{}{"image": "$img"},
		dependsOn: []string{"img"},
		index:     1,
	})

	require.NoError(t, f.executor.Execute(ctx, job))

	stored, err := f.client.ExecutionJob.Get(ctx, job.ID)
	require.NoError(t, err)
	assert.Equal(t, executionjob.StatusFailed, stored.Status)
	require.NotNil(t, stored.ErrorMessage)
	assert.Contains(t, *stored.ErrorMessage, `resolve reference to job "img"`)
}

func TestExecute_NoAdapterFailsJob(t *testing.T) {
	f := newExecutorFixture(t, "")
	ctx := context.Background()

	exec := createExecution(t, f.client, "tenant-a")
	job := claimedJob(t, f.client, exec.ID, jobOpts{operation: models.OpGenerateAudio})

	require.NoError(t, f.executor.Execute(ctx, job))

	stored, err := f.client.ExecutionJob.Get(ctx, job.ID)
	require.NoError(t, err)
	assert.Equal(t, executionjob.StatusFailed, stored.Status)
	require.NotNil(t, stored.ErrorMessage)
	assert.Contains(t, *stored.ErrorMessage, "no adapter registered")
}

func TestExecute_MissingRequiredKeyFailsJob(t *testing.T) {
	f := newExecutorFixture(t, "")
	ctx := context.Background()

	adapter := &fakeAdapter{
		slug: "replicate",
		caps: provider.Capabilities{SupportsPolling: true, RequiresAPIKey: true},
		launch: func(context.Context, provider.LaunchInput) (provider.LaunchResult, error) {
			t.Fatal("launch must not be reached without a credential")
			return provider.LaunchResult{}, nil
		},
	}
	f.registry.Register(models.OpGenerateImage, "", adapter)

	exec := createExecution(t, f.client, "tenant-a")
	job := claimedJob(t, f.client, exec.ID, jobOpts{operation: models.OpGenerateImage})

	require.NoError(t, f.executor.Execute(ctx, job))

	stored, err := f.client.ExecutionJob.Get(ctx, job.ID)
	require.NoError(t, err)
	assert.Equal(t, executionjob.StatusFailed, stored.Status)
	require.NotNil(t, stored.ErrorMessage)
	assert.Contains(t, *stored.ErrorMessage, `no API key configured for provider "replicate"`)
}

func TestExecute_RequestKeyOverrideWinsOverStoredKey(t *testing.T) {
	f := newExecutorFixture(t, "")
	ctx := context.Background()

	adapter := &fakeAdapter{
		slug: "replicate",
		caps: provider.Capabilities{SupportsPolling: true, RequiresAPIKey: true},
		launch: func(context.Context, provider.LaunchInput) (provider.LaunchResult, error) {
			return provider.SyncResult(nil), nil
		},
	}
	f.registry.Register(models.OpGenerateImage, "", adapter)
	f.storeTenantKey(t, "tenant-a", "replicate", "r8_stored")

	override, err := f.cipher.Encrypt("r8_override")
	require.NoError(t, err)
	exec, err := f.client.Execution.Create().
		SetID(uuid.New().String()).
		SetTenantID("tenant-a").
		SetPlan(map[string]interface{}{"jobs": []interface{}{}}).
		SetProviderKeyOverrides(map[string]string{"replicate": override}).
		Save(ctx)
	require.NoError(t, err)

	job := claimedJob(t, f.client, exec.ID, jobOpts{operation: models.OpGenerateImage})

	require.NoError(t, f.executor.Execute(ctx, job))
	assert.Equal(t, "r8_override", adapter.lastInput.APIKey)
}

func TestExecute_ProviderRejectionFailsJob(t *testing.T) {
	f := newExecutorFixture(t, "")
	ctx := context.Background()

	adapter := &fakeAdapter{
		slug: "transform",
		caps: provider.Capabilities{SupportsPolling: true},
		launch: func(context.Context, provider.LaunchInput) (provider.LaunchResult, error) {
			return provider.FailedResult("unsupported aspect ratio"), nil
		},
	}
	f.registry.Register(models.OpReframe, "", adapter)

	exec := createExecution(t, f.client, "tenant-a")
	job := claimedJob(t, f.client, exec.ID, jobOpts{operation: models.OpReframe})

	require.NoError(t, f.executor.Execute(ctx, job))

	stored, err := f.client.ExecutionJob.Get(ctx, job.ID)
	require.NoError(t, err)
	assert.Equal(t, executionjob.StatusFailed, stored.Status)
	require.NotNil(t, stored.ErrorMessage)
	assert.Equal(t, "unsupported aspect ratio", *stored.ErrorMessage)
}

func TestExecute_AdapterErrorFailsJob(t *testing.T) {
	f := newExecutorFixture(t, "")
	ctx := context.Background()

	adapter := &fakeAdapter{
		slug: "replicate",
		caps: provider.Capabilities{SupportsPolling: true},
		launch: func(context.Context, provider.LaunchInput) (provider.LaunchResult, error) {
			return provider.LaunchResult{}, errors.New("connection refused")
		},
	}
	f.registry.Register(models.OpGenerateImage, "", adapter)

	exec := createExecution(t, f.client, "tenant-a")
	job := claimedJob(t, f.client, exec.ID, jobOpts{operation: models.OpGenerateImage})

	require.NoError(t, f.executor.Execute(ctx, job))

	stored, err := f.client.ExecutionJob.Get(ctx, job.ID)
	require.NoError(t, err)
	assert.Equal(t, executionjob.StatusFailed, stored.Status)
	require.NotNil(t, stored.ErrorMessage)
	assert.Equal(t, "replicate launch failed: connection refused", *stored.ErrorMessage)
}

func TestExecute_CancelledDuringLaunchSkipsWaitingTransition(t *testing.T) {
	f := newExecutorFixture(t, "")
	ctx := context.Background()

	exec := createExecution(t, f.client, "tenant-a")
	var job *ent.ExecutionJob

	adapter := &fakeAdapter{
		slug: "replicate",
		caps: provider.Capabilities{SupportsPolling: true},
		launch: func(context.Context, provider.LaunchInput) (provider.LaunchResult, error) {
			// A cancel lands while the provider call is in flight.
			err := f.client.ExecutionJob.UpdateOneID(job.ID).
				SetStatus(executionjob.StatusCancelled).
				Exec(ctx)
			require.NoError(t, err)
			return provider.AsyncResult("pred-late", provider.WaitPolling), nil
		},
	}
	f.registry.Register(models.OpGenerateImage, "", adapter)

	job = claimedJob(t, f.client, exec.ID, jobOpts{operation: models.OpGenerateImage})

	require.NoError(t, f.executor.Execute(ctx, job))

	stored, err := f.client.ExecutionJob.Get(ctx, job.ID)
	require.NoError(t, err)
	assert.Equal(t, executionjob.StatusCancelled, stored.Status)
	assert.Nil(t, stored.ProviderJobID)
}
