// Package orchestrator owns execution lifecycle: plan admission, readiness
// fan-out after each job terminates, terminal-state roll-up, and outbound
// webhook scheduling. All coordination happens through database transactions;
// the orchestrator holds no in-process state.
package orchestrator

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/mediaforge/mediaforge/ent"
	"github.com/mediaforge/mediaforge/ent/execution"
	"github.com/mediaforge/mediaforge/pkg/models"
	"github.com/mediaforge/mediaforge/pkg/plan"
	"github.com/mediaforge/mediaforge/pkg/secrets"
	"github.com/mediaforge/mediaforge/pkg/usage"
)

// Sentinel errors.
var (
	// ErrNotFound is returned when an execution does not exist.
	ErrNotFound = errors.New("execution not found")

	// ErrNotCancellable is returned when cancelling an already-terminal
	// execution.
	ErrNotCancellable = errors.New("execution is not in a cancellable state")
)

// Orchestrator coordinates executions and their jobs.
type Orchestrator struct {
	client *ent.Client
	usage  *usage.Service
	cipher *secrets.Cipher
}

// New creates an orchestrator.
func New(client *ent.Client, usageService *usage.Service, cipher *secrets.Cipher) *Orchestrator {
	if client == nil {
		panic("orchestrator.New: client must not be nil")
	}
	if usageService == nil {
		panic("orchestrator.New: usageService must not be nil")
	}
	if cipher == nil {
		panic("orchestrator.New: cipher must not be nil")
	}
	return &Orchestrator{client: client, usage: usageService, cipher: cipher}
}

// CreateInput is the domain-level input for plan admission.
type CreateInput struct {
	TenantID string
	Plan     models.ExecutionPlan
	Options  models.ExecutionOptions
}

// CreateExecution validates and normalizes the plan, gates admission on the
// tenant's quota, persists the execution with all jobs pending, and marks the
// root jobs (empty dependency set) ready for the worker pool.
func (o *Orchestrator) CreateExecution(ctx context.Context, input CreateInput) (*ent.Execution, error) {
	normalized, err := plan.Normalize(input.Plan)
	if err != nil {
		return nil, err
	}

	decision, err := o.usage.CheckAllowed(ctx, input.TenantID)
	if err != nil {
		return nil, fmt.Errorf("check usage: %w", err)
	}
	if !decision.Allowed {
		return nil, &usage.QuotaError{Reason: decision.Reason}
	}

	planJSON, err := planToJSON(normalized)
	if err != nil {
		return nil, err
	}

	tx, err := o.client.Tx(ctx)
	if err != nil {
		return nil, fmt.Errorf("start transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	executionID := uuid.New().String()
	builder := tx.Execution.Create().
		SetID(executionID).
		SetTenantID(input.TenantID).
		SetPlan(planJSON).
		SetStatus(execution.StatusPending)
	if input.Options.Webhook != nil {
		builder.SetWebhookURL(input.Options.Webhook.URL)
		if input.Options.Webhook.Secret != "" {
			builder.SetWebhookSecret(input.Options.Webhook.Secret)
		}
	}
	if len(input.Options.ProviderAPIKeys) > 0 {
		overrides := make(map[string]string, len(input.Options.ProviderAPIKeys))
		for provider, key := range input.Options.ProviderAPIKeys {
			encrypted, err := o.cipher.Encrypt(key)
			if err != nil {
				return nil, fmt.Errorf("encrypt provider key for %q: %w", provider, err)
			}
			overrides[provider] = encrypted
		}
		builder.SetProviderKeyOverrides(overrides)
	}
	exec, err := builder.Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("create execution: %w", err)
	}

	now := time.Now()
	for i, spec := range normalized.Jobs {
		create := tx.ExecutionJob.Create().
			SetID(uuid.New().String()).
			SetExecutionID(executionID).
			SetPlanLocalID(spec.ID).
			SetOperation(spec.Operation).
			SetParams(spec.Params).
			SetDependsOn(spec.DependsOn).
			SetInsertionIndex(i)
		if len(spec.DependsOn) == 0 {
			create.SetReadyAt(now)
		}
		if _, err := create.Save(ctx); err != nil {
			return nil, fmt.Errorf("create job %q: %w", spec.ID, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("commit execution: %w", err)
	}

	return exec, nil
}

// planToJSON round-trips the normalized plan into the generic map shape
// stored in the execution row.
func planToJSON(p models.ExecutionPlan) (map[string]interface{}, error) {
	raw, err := json.Marshal(p)
	if err != nil {
		return nil, fmt.Errorf("marshal plan: %w", err)
	}
	var m map[string]interface{}
	if err := json.Unmarshal(raw, &m); err != nil {
		return nil, fmt.Errorf("convert plan: %w", err)
	}
	return m, nil
}
