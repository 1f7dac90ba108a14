package services

import (
	"context"
	"fmt"

	"github.com/mediaforge/mediaforge/ent"
	"github.com/mediaforge/mediaforge/ent/execution"
	"github.com/mediaforge/mediaforge/ent/executionjob"
)

// ExecutionService answers execution status queries. Reads are tenant-scoped:
// a foreign execution id behaves exactly like a missing one.
type ExecutionService struct {
	client *ent.Client
}

// NewExecutionService creates a new ExecutionService.
func NewExecutionService(client *ent.Client) *ExecutionService {
	if client == nil {
		panic("NewExecutionService: client must not be nil")
	}
	return &ExecutionService{client: client}
}

// GetExecution returns one execution with its jobs in plan insertion order.
func (s *ExecutionService) GetExecution(ctx context.Context, tenantID, executionID string) (*ent.Execution, error) {
	exec, err := s.client.Execution.Query().
		Where(
			execution.IDEQ(executionID),
			execution.TenantIDEQ(tenantID),
		).
		WithJobs(func(q *ent.ExecutionJobQuery) {
			q.Order(ent.Asc(executionjob.FieldInsertionIndex))
		}).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to query execution: %w", err)
	}
	return exec, nil
}

// OwnsExecution reports whether the execution exists and belongs to the
// tenant. Used to scope mutations that run outside this service.
func (s *ExecutionService) OwnsExecution(ctx context.Context, tenantID, executionID string) error {
	exists, err := s.client.Execution.Query().
		Where(
			execution.IDEQ(executionID),
			execution.TenantIDEQ(tenantID),
		).
		Exist(ctx)
	if err != nil {
		return fmt.Errorf("failed to check execution ownership: %w", err)
	}
	if !exists {
		return ErrNotFound
	}
	return nil
}

// GetJobRecord loads one job by its globally unique record id. Used by the
// inbound webhook path, where the unguessable id is the authentication.
func (s *ExecutionService) GetJobRecord(ctx context.Context, jobRecordID string) (*ent.ExecutionJob, error) {
	job, err := s.client.ExecutionJob.Get(ctx, jobRecordID)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to query job: %w", err)
	}
	return job, nil
}

// ListExecutions returns the tenant's most recent executions, newest first.
func (s *ExecutionService) ListExecutions(ctx context.Context, tenantID string, limit int) ([]*ent.Execution, error) {
	if limit <= 0 || limit > 100 {
		limit = 50
	}
	execs, err := s.client.Execution.Query().
		Where(execution.TenantIDEQ(tenantID)).
		Order(ent.Desc(execution.FieldCreatedAt)).
		Limit(limit).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list executions: %w", err)
	}
	return execs, nil
}
