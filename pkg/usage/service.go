// Package usage meters billable actions against per-tenant quotas.
// One action is recorded per successful job, at most once, in the same
// transaction that marks the job completed.
package usage

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/mediaforge/mediaforge/ent"
	"github.com/mediaforge/mediaforge/ent/usagelimit"
)

// DefaultFreeMonthlyActions is the free-plan cap applied when a usage row is
// created lazily on first admission.
const DefaultFreeMonthlyActions = 100

// PeriodLength is how far a free-plan period advances on reset.
const PeriodLength = 30 * 24 * time.Hour

// Decision is the outcome of an admission check.
type Decision struct {
	Allowed   bool
	IsOverage bool
	Reason    string
}

// QuotaError is returned to callers when admission is denied.
type QuotaError struct {
	Reason string
}

func (e *QuotaError) Error() string { return e.Reason }

// Service implements usage accounting on top of the usage_limits table and
// the action_logs ledger.
type Service struct {
	client *ent.Client
}

// NewService creates a usage accounting service.
func NewService(client *ent.Client) *Service {
	if client == nil {
		panic("usage.NewService: client must not be nil")
	}
	return &Service{client: client}
}

// CheckAllowed decides whether a tenant may admit a new execution.
// Unlimited tenants and tenants under their cap are admitted in-quota;
// capped tenants with overage enabled are admitted as overage; everyone else
// is denied with the period end in the reason.
func (s *Service) CheckAllowed(ctx context.Context, tenantID string) (Decision, error) {
	limits, err := s.getOrCreate(ctx, tenantID)
	if err != nil {
		return Decision{}, err
	}

	switch {
	case limits.Unlimited:
		return Decision{Allowed: true}, nil
	case limits.ActionsUsedThisPeriod < limits.MonthlyActionLimit:
		return Decision{Allowed: true}, nil
	case limits.OverageAllowed:
		return Decision{Allowed: true, IsOverage: true}, nil
	default:
		return Decision{
			Allowed: false,
			Reason: fmt.Sprintf("monthly action limit of %d reached; resets %s",
				limits.MonthlyActionLimit, limits.PeriodEnd.UTC().Format(time.RFC3339)),
		}, nil
	}
}

// RecordAction appends the billing ledger row for a completed job and flips
// the job's action_logged flag, all inside the caller's transaction (the same
// one that writes the terminal job status). Re-entry is a no-op once
// action_logged is set, which makes webhook/polling double-fires safe.
//
// Overage is determined from the counter immediately before the increment:
// actions_used >= monthly limit means this action is overage.
func (s *Service) RecordAction(ctx context.Context, tx *ent.Tx, job *ent.ExecutionJob, tenantID string) error {
	if job.ActionLogged {
		return nil
	}

	limits, err := lockLimits(ctx, tx, tenantID)
	if err != nil {
		return err
	}

	isOverage := !limits.Unlimited && limits.ActionsUsedThisPeriod >= limits.MonthlyActionLimit
	cost := 0
	if isOverage {
		cost = limits.OveragePriceCents
	}

	_, err = tx.ActionLog.Create().
		SetID(uuid.New().String()).
		SetTenantID(tenantID).
		SetExecutionID(job.ExecutionID).
		SetJobID(job.ID).
		SetAction(job.Operation).
		SetCount(1).
		SetIsOverage(isOverage).
		SetEstimatedCostCents(cost).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("append action log: %w", err)
	}

	update := limits.Update()
	if isOverage {
		update.AddOverageActionsThisPeriod(1)
	} else {
		update.AddActionsUsedThisPeriod(1)
	}
	if err := update.Exec(ctx); err != nil {
		return fmt.Errorf("increment usage counter: %w", err)
	}

	if err := tx.ExecutionJob.UpdateOneID(job.ID).
		SetActionLogged(true).
		Exec(ctx); err != nil {
		return fmt.Errorf("flag action logged: %w", err)
	}

	return nil
}

// lockLimits loads the tenant's usage row under FOR UPDATE, creating the
// default free-plan row if the tenant was never onboarded.
func lockLimits(ctx context.Context, tx *ent.Tx, tenantID string) (*ent.UsageLimit, error) {
	limits, err := tx.UsageLimit.Query().
		Where(usagelimit.TenantIDEQ(tenantID)).
		ForUpdate().
		Only(ctx)
	if err == nil {
		return limits, nil
	}
	if !ent.IsNotFound(err) {
		return nil, fmt.Errorf("lock usage limits: %w", err)
	}

	limits, err = tx.UsageLimit.Create().
		SetID(uuid.New().String()).
		SetTenantID(tenantID).
		SetPlan(usagelimit.PlanFree).
		SetMonthlyActionLimit(DefaultFreeMonthlyActions).
		SetPeriodStart(time.Now()).
		SetPeriodEnd(time.Now().Add(PeriodLength)).
		Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("create usage limits: %w", err)
	}
	return limits, nil
}

// getOrCreate returns the tenant's usage row, creating the default free-plan
// row lazily on first admission.
func (s *Service) getOrCreate(ctx context.Context, tenantID string) (*ent.UsageLimit, error) {
	limits, err := s.client.UsageLimit.Query().
		Where(usagelimit.TenantIDEQ(tenantID)).
		Only(ctx)
	if err == nil {
		return limits, nil
	}
	if !ent.IsNotFound(err) {
		return nil, fmt.Errorf("query usage limits: %w", err)
	}

	limits, err = s.client.UsageLimit.Create().
		SetID(uuid.New().String()).
		SetTenantID(tenantID).
		SetPlan(usagelimit.PlanFree).
		SetMonthlyActionLimit(DefaultFreeMonthlyActions).
		SetPeriodStart(time.Now()).
		SetPeriodEnd(time.Now().Add(PeriodLength)).
		Save(ctx)
	if err != nil {
		// Lost a creation race with a concurrent admission.
		if ent.IsConstraintError(err) {
			return s.client.UsageLimit.Query().
				Where(usagelimit.TenantIDEQ(tenantID)).
				Only(ctx)
		}
		return nil, fmt.Errorf("create usage limits: %w", err)
	}
	return limits, nil
}
