package orchestrator_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mediaforge/mediaforge/ent"
	"github.com/mediaforge/mediaforge/ent/execution"
	"github.com/mediaforge/mediaforge/ent/executionjob"
	"github.com/mediaforge/mediaforge/ent/usagelimit"
	"github.com/mediaforge/mediaforge/pkg/models"
	"github.com/mediaforge/mediaforge/pkg/orchestrator"
	"github.com/mediaforge/mediaforge/pkg/plan"
	"github.com/mediaforge/mediaforge/pkg/secrets"
	"github.com/mediaforge/mediaforge/pkg/usage"
	"github.com/mediaforge/mediaforge/test/util"
)

func newOrchestrator(t *testing.T) (*orchestrator.Orchestrator, *ent.Client) {
	t.Helper()
	client, _ := util.SetupTestDatabase(t)
	cipher, err := secrets.NewCipher("test-secret")
	require.NoError(t, err)
	return orchestrator.New(client, usage.NewService(client), cipher), client
}

func chainPlan() models.ExecutionPlan {
	return models.ExecutionPlan{
		Jobs: []models.JobSpec{
			{ID: "img", Operation: models.OpGenerateImage, Params: map[string]interface{}{"prompt": "a cat"}},
			{ID: "vid", Operation: models.OpGenerateVideo, Params: map[string]interface{}{"image": "$img"}},
		},
	}
}

func jobByLocalID(t *testing.T, client *ent.Client, executionID, localID string) *ent.ExecutionJob {
	t.Helper()
	job, err := client.ExecutionJob.Query().
		Where(
			executionjob.ExecutionIDEQ(executionID),
			executionjob.PlanLocalIDEQ(localID),
		).
		Only(context.Background())
	require.NoError(t, err)
	return job
}

func TestCreateExecution_RootsReadyDependentsNot(t *testing.T) {
	orch, client := newOrchestrator(t)
	ctx := context.Background()

	exec, err := orch.CreateExecution(ctx, orchestrator.CreateInput{
		TenantID: "tenant-a",
		Plan:     chainPlan(),
	})
	require.NoError(t, err)
	assert.Equal(t, execution.StatusPending, exec.Status)

	img := jobByLocalID(t, client, exec.ID, "img")
	vid := jobByLocalID(t, client, exec.ID, "vid")

	assert.Equal(t, executionjob.StatusPending, img.Status)
	assert.NotNil(t, img.ReadyAt)

	assert.Equal(t, executionjob.StatusPending, vid.Status)
	assert.Nil(t, vid.ReadyAt)
	assert.Equal(t, []string{"img"}, vid.DependsOn)
	assert.Equal(t, 1, vid.InsertionIndex)
}

func TestCreateExecution_InvalidPlanRejected(t *testing.T) {
	orch, _ := newOrchestrator(t)

	_, err := orch.CreateExecution(context.Background(), orchestrator.CreateInput{
		TenantID: "tenant-a",
		Plan: models.ExecutionPlan{Jobs: []models.JobSpec{
			{ID: "a", Operation: "teleport", Params: map[string]interface{}{}},
		}},
	})
	require.Error(t, err)
	assert.True(t, plan.IsValidationError(err))
}

func TestCreateExecution_QuotaDenied(t *testing.T) {
	orch, client := newOrchestrator(t)
	ctx := context.Background()

	_, err := client.UsageLimit.Create().
		SetID(uuid.New().String()).
		SetTenantID("tenant-capped").
		SetPlan(usagelimit.PlanFree).
		SetMonthlyActionLimit(1).
		SetActionsUsedThisPeriod(1).
		SetPeriodStart(time.Now()).
		SetPeriodEnd(time.Now().Add(usage.PeriodLength)).
		Save(ctx)
	require.NoError(t, err)

	_, err = orch.CreateExecution(ctx, orchestrator.CreateInput{
		TenantID: "tenant-capped",
		Plan:     chainPlan(),
	})
	require.Error(t, err)

	var qe *usage.QuotaError
	assert.ErrorAs(t, err, &qe)
}

func TestCreateExecution_ProviderKeyOverridesStoredEncrypted(t *testing.T) {
	orch, client := newOrchestrator(t)
	ctx := context.Background()

	exec, err := orch.CreateExecution(ctx, orchestrator.CreateInput{
		TenantID: "tenant-a",
		Plan:     chainPlan(),
		Options: models.ExecutionOptions{
			ProviderAPIKeys: map[string]string{"replicate": "r8_plaintext"},
		},
	})
	require.NoError(t, err)

	stored, err := client.Execution.Get(ctx, exec.ID)
	require.NoError(t, err)
	require.Contains(t, stored.ProviderKeyOverrides, "replicate")
	assert.NotEqual(t, "r8_plaintext", stored.ProviderKeyOverrides["replicate"])
	assert.NotContains(t, stored.ProviderKeyOverrides["replicate"], "r8_plaintext")
}

func TestOnJobTerminal_FanOutAndRollUp(t *testing.T) {
	orch, client := newOrchestrator(t)
	ctx := context.Background()

	exec, err := orch.CreateExecution(ctx, orchestrator.CreateInput{
		TenantID: "tenant-a",
		Plan:     chainPlan(),
	})
	require.NoError(t, err)

	img := jobByLocalID(t, client, exec.ID, "img")
	imgOutputs := []models.MediaOutput{{Type: "image", URL: "https://cdn.example.com/i.png"}}
	require.NoError(t, orch.OnJobTerminal(ctx, img.ID, orchestrator.CompletedOutcome(imgOutputs)))

	// Dependent becomes ready, execution moves to processing.
	vid := jobByLocalID(t, client, exec.ID, "vid")
	assert.Equal(t, executionjob.StatusPending, vid.Status)
	assert.NotNil(t, vid.ReadyAt)

	stored, err := client.Execution.Get(ctx, exec.ID)
	require.NoError(t, err)
	assert.Equal(t, execution.StatusProcessing, stored.Status)

	// Final job completes: execution completes with the sink job's outputs.
	vidOutputs := []models.MediaOutput{{Type: "video", URL: "https://cdn.example.com/v.mp4"}}
	require.NoError(t, orch.OnJobTerminal(ctx, vid.ID, orchestrator.CompletedOutcome(vidOutputs)))

	stored, err = client.Execution.Get(ctx, exec.ID)
	require.NoError(t, err)
	assert.Equal(t, execution.StatusCompleted, stored.Status)
	assert.NotNil(t, stored.CompletedAt)
	require.Len(t, stored.Result, 1)
	assert.Equal(t, "https://cdn.example.com/v.mp4", stored.Result[0]["url"])

	// One billable action per completed job.
	count, err := client.ActionLog.Query().Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, count)
}

func TestOnJobTerminal_PartialReadiness(t *testing.T) {
	orch, client := newOrchestrator(t)
	ctx := context.Background()

	exec, err := orch.CreateExecution(ctx, orchestrator.CreateInput{
		TenantID: "tenant-a",
		Plan: models.ExecutionPlan{Jobs: []models.JobSpec{
			{ID: "a", Operation: models.OpGenerateImage, Params: map[string]interface{}{}},
			{ID: "b", Operation: models.OpGenerateAudio, Params: map[string]interface{}{}},
			{ID: "c", Operation: models.OpMerge, Params: map[string]interface{}{}, DependsOn: []string{"a", "b"}},
		}},
	})
	require.NoError(t, err)

	a := jobByLocalID(t, client, exec.ID, "a")
	require.NoError(t, orch.OnJobTerminal(ctx, a.ID, orchestrator.CompletedOutcome(nil)))

	// One of two dependencies done: c stays unready.
	c := jobByLocalID(t, client, exec.ID, "c")
	assert.Nil(t, c.ReadyAt)

	b := jobByLocalID(t, client, exec.ID, "b")
	require.NoError(t, orch.OnJobTerminal(ctx, b.ID, orchestrator.CompletedOutcome(nil)))

	c = jobByLocalID(t, client, exec.ID, "c")
	assert.NotNil(t, c.ReadyAt)
}

func TestOnJobTerminal_FailureCascadesAndRollsUp(t *testing.T) {
	orch, client := newOrchestrator(t)
	ctx := context.Background()

	exec, err := orch.CreateExecution(ctx, orchestrator.CreateInput{
		TenantID: "tenant-a",
		Plan: models.ExecutionPlan{Jobs: []models.JobSpec{
			{ID: "img", Operation: models.OpGenerateImage, Params: map[string]interface{}{}},
			{ID: "vid", Operation: models.OpGenerateVideo, Params: map[string]interface{}{"image": "$img"}},
			{ID: "sub", Operation: models.OpAddSubtitles, Params: map[string]interface{}{"video": "$vid"}},
		}},
	})
	require.NoError(t, err)

	img := jobByLocalID(t, client, exec.ID, "img")
	require.NoError(t, orch.OnJobTerminal(ctx, img.ID, orchestrator.FailedOutcome("NSFW content detected")))

	// Transitive dependents cancelled.
	for _, localID := range []string{"vid", "sub"} {
		job := jobByLocalID(t, client, exec.ID, localID)
		assert.Equal(t, executionjob.StatusCancelled, job.Status, "job %s", localID)
		require.NotNil(t, job.ErrorMessage)
		assert.Equal(t, "upstream failure", *job.ErrorMessage)
	}

	stored, err := client.Execution.Get(ctx, exec.ID)
	require.NoError(t, err)
	assert.Equal(t, execution.StatusFailed, stored.Status)
	require.NotNil(t, stored.ErrorMessage)
	assert.Contains(t, *stored.ErrorMessage, "generateImage: NSFW content detected")

	// Failed jobs bill nothing.
	count, err := client.ActionLog.Query().Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 0, count)
}

func TestOnJobTerminal_IndependentBranchKeepsRunningAfterFailure(t *testing.T) {
	orch, client := newOrchestrator(t)
	ctx := context.Background()

	exec, err := orch.CreateExecution(ctx, orchestrator.CreateInput{
		TenantID: "tenant-a",
		Plan: models.ExecutionPlan{Jobs: []models.JobSpec{
			{ID: "a", Operation: models.OpGenerateImage, Params: map[string]interface{}{}},
			{ID: "b", Operation: models.OpGenerateAudio, Params: map[string]interface{}{}},
		}},
	})
	require.NoError(t, err)

	a := jobByLocalID(t, client, exec.ID, "a")
	require.NoError(t, orch.OnJobTerminal(ctx, a.ID, orchestrator.FailedOutcome("boom")))

	// b has no dependency on a: still runnable, execution not yet terminal.
	b := jobByLocalID(t, client, exec.ID, "b")
	assert.Equal(t, executionjob.StatusPending, b.Status)

	stored, err := client.Execution.Get(ctx, exec.ID)
	require.NoError(t, err)
	assert.Equal(t, execution.StatusProcessing, stored.Status)

	// Once the surviving branch finishes, the execution fails.
	require.NoError(t, orch.OnJobTerminal(ctx, b.ID, orchestrator.CompletedOutcome(nil)))

	stored, err = client.Execution.Get(ctx, exec.ID)
	require.NoError(t, err)
	assert.Equal(t, execution.StatusFailed, stored.Status)
}

func TestOnJobTerminal_IdempotentReentry(t *testing.T) {
	orch, client := newOrchestrator(t)
	ctx := context.Background()

	exec, err := orch.CreateExecution(ctx, orchestrator.CreateInput{
		TenantID: "tenant-a",
		Plan: models.ExecutionPlan{Jobs: []models.JobSpec{
			{ID: "img", Operation: models.OpGenerateImage, Params: map[string]interface{}{}},
		}},
	})
	require.NoError(t, err)

	img := jobByLocalID(t, client, exec.ID, "img")
	outputs := []models.MediaOutput{{Type: "image", URL: "https://cdn.example.com/i.png"}}
	require.NoError(t, orch.OnJobTerminal(ctx, img.ID, orchestrator.CompletedOutcome(outputs)))

	// A late polling result after the webhook already committed.
	require.NoError(t, orch.OnJobTerminal(ctx, img.ID, orchestrator.FailedOutcome("late duplicate")))

	job, err := client.ExecutionJob.Get(ctx, img.ID)
	require.NoError(t, err)
	assert.Equal(t, executionjob.StatusCompleted, job.Status)

	count, err := client.ActionLog.Query().Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, count)
}

func TestOnJobTerminal_UnknownJob(t *testing.T) {
	orch, _ := newOrchestrator(t)

	err := orch.OnJobTerminal(context.Background(), uuid.New().String(), orchestrator.CompletedOutcome(nil))
	require.Error(t, err)
	assert.ErrorIs(t, err, orchestrator.ErrNotFound)
}

func TestOnJobTerminal_SchedulesWebhookDelivery(t *testing.T) {
	orch, client := newOrchestrator(t)
	ctx := context.Background()

	exec, err := orch.CreateExecution(ctx, orchestrator.CreateInput{
		TenantID: "tenant-a",
		Plan: models.ExecutionPlan{Jobs: []models.JobSpec{
			{ID: "img", Operation: models.OpGenerateImage, Params: map[string]interface{}{}},
		}},
		Options: models.ExecutionOptions{
			Webhook: &models.WebhookConfig{URL: "https://client.example.com/hook", Secret: "s3cret"},
		},
	})
	require.NoError(t, err)

	img := jobByLocalID(t, client, exec.ID, "img")
	require.NoError(t, orch.OnJobTerminal(ctx, img.ID, orchestrator.CompletedOutcome(nil)))

	stored, err := client.Execution.Get(ctx, exec.ID)
	require.NoError(t, err)
	assert.NotNil(t, stored.WebhookNextAttemptAt)
	assert.Nil(t, stored.WebhookDeliveredAt)
}

func TestCancelExecution(t *testing.T) {
	orch, client := newOrchestrator(t)
	ctx := context.Background()

	exec, err := orch.CreateExecution(ctx, orchestrator.CreateInput{
		TenantID: "tenant-a",
		Plan:     chainPlan(),
	})
	require.NoError(t, err)

	require.NoError(t, orch.CancelExecution(ctx, exec.ID))

	stored, err := client.Execution.Get(ctx, exec.ID)
	require.NoError(t, err)
	assert.Equal(t, execution.StatusCancelled, stored.Status)

	jobs, err := client.ExecutionJob.Query().
		Where(executionjob.ExecutionIDEQ(exec.ID)).
		All(ctx)
	require.NoError(t, err)
	for _, job := range jobs {
		assert.Equal(t, executionjob.StatusCancelled, job.Status)
	}

	// Second cancel finds the execution already terminal.
	err = orch.CancelExecution(ctx, exec.ID)
	assert.ErrorIs(t, err, orchestrator.ErrNotCancellable)
}

func TestCancelExecution_NotFound(t *testing.T) {
	orch, _ := newOrchestrator(t)

	err := orch.CancelExecution(context.Background(), uuid.New().String())
	assert.ErrorIs(t, err, orchestrator.ErrNotFound)
}

func TestCancelExecution_CompletedJobsKeepResults(t *testing.T) {
	orch, client := newOrchestrator(t)
	ctx := context.Background()

	exec, err := orch.CreateExecution(ctx, orchestrator.CreateInput{
		TenantID: "tenant-a",
		Plan:     chainPlan(),
	})
	require.NoError(t, err)

	img := jobByLocalID(t, client, exec.ID, "img")
	outputs := []models.MediaOutput{{Type: "image", URL: "https://cdn.example.com/i.png"}}
	require.NoError(t, orch.OnJobTerminal(ctx, img.ID, orchestrator.CompletedOutcome(outputs)))

	require.NoError(t, orch.CancelExecution(ctx, exec.ID))

	img = jobByLocalID(t, client, exec.ID, "img")
	assert.Equal(t, executionjob.StatusCompleted, img.Status)
	require.Len(t, img.Result, 1)

	vid := jobByLocalID(t, client, exec.ID, "vid")
	assert.Equal(t, executionjob.StatusCancelled, vid.Status)
}

func TestOnJobTerminal_ConcurrentSiblingCompletions(t *testing.T) {
	orch, client := newOrchestrator(t)
	ctx := context.Background()

	fanIn := models.ExecutionPlan{
		Jobs: []models.JobSpec{
			{ID: "a", Operation: models.OpGenerateImage, Params: map[string]interface{}{"prompt": "a cat"}},
			{ID: "b", Operation: models.OpGenerateImage, Params: map[string]interface{}{"prompt": "a dog"}},
			{ID: "c", Operation: models.OpGenerateVideo, Params: map[string]interface{}{"image": "$a", "style": "$b"}},
		},
	}

	// Both roots finish at the same instant; neither transition may abort,
	// whichever order the transactions collide in.
	for i := 0; i < 10; i++ {
		exec, err := orch.CreateExecution(ctx, orchestrator.CreateInput{
			TenantID: "tenant-a",
			Plan:     fanIn,
		})
		require.NoError(t, err)

		a := jobByLocalID(t, client, exec.ID, "a")
		b := jobByLocalID(t, client, exec.ID, "b")

		errs := make(chan error, 2)
		for _, id := range []string{a.ID, b.ID} {
			go func(jobID string) {
				errs <- orch.OnJobTerminal(ctx, jobID, orchestrator.CompletedOutcome(nil))
			}(id)
		}
		require.NoError(t, <-errs)
		require.NoError(t, <-errs)

		c := jobByLocalID(t, client, exec.ID, "c")
		assert.Equal(t, executionjob.StatusPending, c.Status)
		assert.NotNil(t, c.ReadyAt)

		require.NoError(t, orch.OnJobTerminal(ctx, c.ID, orchestrator.CompletedOutcome(nil)))
		stored, err := client.Execution.Get(ctx, exec.ID)
		require.NoError(t, err)
		assert.Equal(t, execution.StatusCompleted, stored.Status)
	}
}
