package usage_test

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
	"github.com/mediaforge/mediaforge/pkg/usage"
	"github.com/mediaforge/mediaforge/test/util"
)

func TestCheckAllowed_CreatesDefaultFreePlanRow(t *testing.T) {
	client, _ := util.SetupTestDatabase(t)
	svc := usage.NewService(client)
	ctx := context.Background()

	decision, err := svc.CheckAllowed(ctx, "tenant-new")
	require.NoError(t, err)
	assert.True(t, decision.Allowed)
	assert.False(t, decision.IsOverage)

	limits, err := client.UsageLimit.Query().
		Where(usagelimit.TenantIDEQ("tenant-new")).
		Only(ctx)
	require.NoError(t, err)
	assert.Equal(t, usagelimit.PlanFree, limits.Plan)
	assert.Equal(t, usage.DefaultFreeMonthlyActions, limits.MonthlyActionLimit)
	assert.Equal(t, 0, limits.ActionsUsedThisPeriod)
}

func TestCheckAllowed_DeniedAtCap(t *testing.T) {
	client, _ := util.SetupTestDatabase(t)
	svc := usage.NewService(client)
	ctx := context.Background()

	createLimits(t, client, "tenant-capped", func(c *ent.UsageLimitCreate) {
		c.SetMonthlyActionLimit(10).SetActionsUsedThisPeriod(10)
	})

	decision, err := svc.CheckAllowed(ctx, "tenant-capped")
	require.NoError(t, err)
	assert.False(t, decision.Allowed)
	assert.Contains(t, decision.Reason, "monthly action limit of 10 reached")
	assert.Contains(t, decision.Reason, "resets")
}

func TestCheckAllowed_OverageAdmitsPastCap(t *testing.T) {
	client, _ := util.SetupTestDatabase(t)
	svc := usage.NewService(client)
	ctx := context.Background()

	createLimits(t, client, "tenant-overage", func(c *ent.UsageLimitCreate) {
		c.SetMonthlyActionLimit(10).
			SetActionsUsedThisPeriod(10).
			SetOverageAllowed(true).
			SetOveragePriceCents(5)
	})

	decision, err := svc.CheckAllowed(ctx, "tenant-overage")
	require.NoError(t, err)
	assert.True(t, decision.Allowed)
	assert.True(t, decision.IsOverage)
}

func TestCheckAllowed_UnlimitedTenant(t *testing.T) {
	client, _ := util.SetupTestDatabase(t)
	svc := usage.NewService(client)
	ctx := context.Background()

	createLimits(t, client, "tenant-unlimited", func(c *ent.UsageLimitCreate) {
		c.SetUnlimited(true).SetMonthlyActionLimit(1).SetActionsUsedThisPeriod(999)
	})

	decision, err := svc.CheckAllowed(ctx, "tenant-unlimited")
	require.NoError(t, err)
	assert.True(t, decision.Allowed)
	assert.False(t, decision.IsOverage)
}

func TestRecordAction_IncrementsCounterAndFlagsJob(t *testing.T) {
	client, _ := util.SetupTestDatabase(t)
	svc := usage.NewService(client)
	ctx := context.Background()

	createLimits(t, client, "tenant-a", nil)
	job := createCompletableJob(t, client, "tenant-a")

	tx, err := client.Tx(ctx)
	require.NoError(t, err)
	require.NoError(t, svc.RecordAction(ctx, tx, job, "tenant-a"))
	require.NoError(t, tx.Commit())

	limits, err := client.UsageLimit.Query().
		Where(usagelimit.TenantIDEQ("tenant-a")).
		Only(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, limits.ActionsUsedThisPeriod)
	assert.Equal(t, 0, limits.OverageActionsThisPeriod)

	logs, err := client.ActionLog.Query().All(ctx)
	require.NoError(t, err)
	require.Len(t, logs, 1)
	assert.Equal(t, job.ID, logs[0].JobID)
	assert.Equal(t, job.Operation, logs[0].Action)
	assert.False(t, logs[0].IsOverage)

	reloaded, err := client.ExecutionJob.Get(ctx, job.ID)
	require.NoError(t, err)
	assert.True(t, reloaded.ActionLogged)
}

func TestRecordAction_IdempotentOnceLogged(t *testing.T) {
	client, _ := util.SetupTestDatabase(t)
	svc := usage.NewService(client)
	ctx := context.Background()

	createLimits(t, client, "tenant-a", nil)
	job := createCompletableJob(t, client, "tenant-a")

	tx, err := client.Tx(ctx)
	require.NoError(t, err)
	require.NoError(t, svc.RecordAction(ctx, tx, job, "tenant-a"))
	require.NoError(t, tx.Commit())

	// Second delivery of the same terminal event sees action_logged set.
	reloaded, err := client.ExecutionJob.Get(ctx, job.ID)
	require.NoError(t, err)

	tx, err = client.Tx(ctx)
	require.NoError(t, err)
	require.NoError(t, svc.RecordAction(ctx, tx, reloaded, "tenant-a"))
	require.NoError(t, tx.Commit())

	limits, err := client.UsageLimit.Query().
		Where(usagelimit.TenantIDEQ("tenant-a")).
		Only(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, limits.ActionsUsedThisPeriod)

	count, err := client.ActionLog.Query().Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, count)
}

func TestRecordAction_OveragePastCap(t *testing.T) {
	client, _ := util.SetupTestDatabase(t)
	svc := usage.NewService(client)
	ctx := context.Background()

	createLimits(t, client, "tenant-over", func(c *ent.UsageLimitCreate) {
		c.SetMonthlyActionLimit(1).
			SetActionsUsedThisPeriod(1).
			SetOverageAllowed(true).
			SetOveragePriceCents(7)
	})
	job := createCompletableJob(t, client, "tenant-over")

	tx, err := client.Tx(ctx)
	require.NoError(t, err)
	require.NoError(t, svc.RecordAction(ctx, tx, job, "tenant-over"))
	require.NoError(t, tx.Commit())

	limits, err := client.UsageLimit.Query().
		Where(usagelimit.TenantIDEQ("tenant-over")).
		Only(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, limits.ActionsUsedThisPeriod)
	assert.Equal(t, 1, limits.OverageActionsThisPeriod)

	log, err := client.ActionLog.Query().Only(ctx)
	require.NoError(t, err)
	assert.True(t, log.IsOverage)
	assert.Equal(t, 7, log.EstimatedCostCents)
}

func TestResetDuePeriods(t *testing.T) {
	client, _ := util.SetupTestDatabase(t)
	svc := usage.NewService(client)
	ctx := context.Background()

	// Elapsed free-plan period: reset.
	createLimits(t, client, "tenant-due", func(c *ent.UsageLimitCreate) {
		c.SetActionsUsedThisPeriod(42).
			SetOverageActionsThisPeriod(3).
			SetPeriodStart(time.Now().Add(-2 * usage.PeriodLength)).
			SetPeriodEnd(time.Now().Add(-time.Hour))
	})
	// Current period: untouched.
	createLimits(t, client, "tenant-current", func(c *ent.UsageLimitCreate) {
		c.SetActionsUsedThisPeriod(5)
	})
	// Elapsed pro-plan period: left to the billing provider.
	createLimits(t, client, "tenant-pro", func(c *ent.UsageLimitCreate) {
		c.SetPlan(usagelimit.PlanPro).
			SetActionsUsedThisPeriod(42).
			SetPeriodEnd(time.Now().Add(-time.Hour))
	})

	count, err := svc.ResetDuePeriods(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, count)

	due, err := client.UsageLimit.Query().
		Where(usagelimit.TenantIDEQ("tenant-due")).
		Only(ctx)
	require.NoError(t, err)
	assert.Equal(t, 0, due.ActionsUsedThisPeriod)
	assert.Equal(t, 0, due.OverageActionsThisPeriod)
	assert.True(t, due.PeriodEnd.After(time.Now()))

	current, err := client.UsageLimit.Query().
		Where(usagelimit.TenantIDEQ("tenant-current")).
		Only(ctx)
	require.NoError(t, err)
	assert.Equal(t, 5, current.ActionsUsedThisPeriod)

	pro, err := client.UsageLimit.Query().
		Where(usagelimit.TenantIDEQ("tenant-pro")).
		Only(ctx)
	require.NoError(t, err)
	assert.Equal(t, 42, pro.ActionsUsedThisPeriod)
}

// createLimits inserts a usage row with sane defaults, customized by mutate.
func createLimits(t *testing.T, client *ent.Client, tenantID string, mutate func(*ent.UsageLimitCreate)) {
	t.Helper()
	create := client.UsageLimit.Create().
		SetID(uuid.New().String()).
		SetTenantID(tenantID).
		SetPlan(usagelimit.PlanFree).
		SetMonthlyActionLimit(usage.DefaultFreeMonthlyActions).
		SetPeriodStart(time.Now()).
		SetPeriodEnd(time.Now().Add(usage.PeriodLength))
	if mutate != nil {
		mutate(create)
	}
	_, err := create.Save(context.Background())
	require.NoError(t, err)
}

// createCompletableJob inserts an execution with one job about to be billed.
func createCompletableJob(t *testing.T, client *ent.Client, tenantID string) *ent.ExecutionJob {
	t.Helper()
	ctx := context.Background()

	execID := uuid.New().String()
	_, err := client.Execution.Create().
		SetID(execID).
		SetTenantID(tenantID).
		SetPlan(map[string]interface{}{"jobs": []interface{}{}}).
		SetStatus(execution.StatusProcessing).
		Save(ctx)
	require.NoError(t, err)

	job, err := client.ExecutionJob.Create().
		SetID(uuid.New().String()).
		SetExecutionID(execID).
		SetPlanLocalID("img").
		SetOperation(models.OpGenerateImage).
		SetParams(map[string]interface{}{"prompt": "a cat"}).
		SetStatus(executionjob.StatusProcessing).
		SetInsertionIndex(0).
		Save(ctx)
	require.NoError(t, err)
	return job
}
