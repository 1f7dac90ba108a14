package services_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mediaforge/mediaforge/ent"
	"github.com/mediaforge/mediaforge/ent/execution"
	"github.com/mediaforge/mediaforge/pkg/models"
	"github.com/mediaforge/mediaforge/pkg/services"
	"github.com/mediaforge/mediaforge/test/util"
)

func seedExecution(t *testing.T, client *ent.Client, tenantID string, jobLocalIDs ...string) *ent.Execution {
	t.Helper()
	ctx := context.Background()

	exec, err := client.Execution.Create().
		SetID(uuid.New().String()).
		SetTenantID(tenantID).
		SetPlan(map[string]interface{}{"jobs": []interface{}{}}).
		SetStatus(execution.StatusPending).
		Save(ctx)
	require.NoError(t, err)

	for i, localID := range jobLocalIDs {
		_, err := client.ExecutionJob.Create().
			SetID(uuid.New().String()).
			SetExecutionID(exec.ID).
			SetPlanLocalID(localID).
			SetOperation(models.OpGenerateImage).
			SetParams(map[string]interface{}{}).
			SetInsertionIndex(i).
			Save(ctx)
		require.NoError(t, err)
	}
	return exec
}

func TestGetExecution_JobsInInsertionOrder(t *testing.T) {
	client, _ := util.SetupTestDatabase(t)
	svc := services.NewExecutionService(client)
	ctx := context.Background()

	exec := seedExecution(t, client, "tenant-a", "first", "second", "third")

	got, err := svc.GetExecution(ctx, "tenant-a", exec.ID)
	require.NoError(t, err)
	require.Len(t, got.Edges.Jobs, 3)
	assert.Equal(t, "first", got.Edges.Jobs[0].PlanLocalID)
	assert.Equal(t, "second", got.Edges.Jobs[1].PlanLocalID)
	assert.Equal(t, "third", got.Edges.Jobs[2].PlanLocalID)
}

func TestGetExecution_ForeignTenantReadsAsMissing(t *testing.T) {
	client, _ := util.SetupTestDatabase(t)
	svc := services.NewExecutionService(client)
	ctx := context.Background()

	exec := seedExecution(t, client, "tenant-a", "img")

	_, err := svc.GetExecution(ctx, "tenant-b", exec.ID)
	assert.ErrorIs(t, err, services.ErrNotFound)

	_, err = svc.GetExecution(ctx, "tenant-a", uuid.New().String())
	assert.ErrorIs(t, err, services.ErrNotFound)
}

func TestOwnsExecution(t *testing.T) {
	client, _ := util.SetupTestDatabase(t)
	svc := services.NewExecutionService(client)
	ctx := context.Background()

	exec := seedExecution(t, client, "tenant-a", "img")

	assert.NoError(t, svc.OwnsExecution(ctx, "tenant-a", exec.ID))
	assert.ErrorIs(t, svc.OwnsExecution(ctx, "tenant-b", exec.ID), services.ErrNotFound)
}

func TestGetJobRecord(t *testing.T) {
	client, _ := util.SetupTestDatabase(t)
	svc := services.NewExecutionService(client)
	ctx := context.Background()

	exec := seedExecution(t, client, "tenant-a", "img")
	seeded, err := client.ExecutionJob.Query().All(ctx)
	require.NoError(t, err)
	require.Len(t, seeded, 1)

	job, err := svc.GetJobRecord(ctx, seeded[0].ID)
	require.NoError(t, err)
	assert.Equal(t, exec.ID, job.ExecutionID)

	_, err = svc.GetJobRecord(ctx, uuid.New().String())
	assert.ErrorIs(t, err, services.ErrNotFound)
}

func TestListExecutions(t *testing.T) {
	client, _ := util.SetupTestDatabase(t)
	svc := services.NewExecutionService(client)
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		seedExecution(t, client, "tenant-a")
	}
	seedExecution(t, client, "tenant-b")

	execs, err := svc.ListExecutions(ctx, "tenant-a", 0)
	require.NoError(t, err)
	assert.Len(t, execs, 3)

	execs, err = svc.ListExecutions(ctx, "tenant-a", 2)
	require.NoError(t, err)
	assert.Len(t, execs, 2)
}
