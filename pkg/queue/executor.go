package queue

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/mediaforge/mediaforge/ent"
	"github.com/mediaforge/mediaforge/ent/executionjob"
	"github.com/mediaforge/mediaforge/pkg/config"
	"github.com/mediaforge/mediaforge/pkg/credentials"
	"github.com/mediaforge/mediaforge/pkg/models"
	"github.com/mediaforge/mediaforge/pkg/orchestrator"
	"github.com/mediaforge/mediaforge/pkg/provider"
	"github.com/mediaforge/mediaforge/pkg/resolver"
)

// Executor dispatches claimed jobs to provider adapters. It implements
// JobExecutor.
type Executor struct {
	client         *ent.Client
	orch           *orchestrator.Orchestrator
	registry       *provider.Registry
	creds          *credentials.Resolver
	webhookBaseURL string
	pollerConfig   *config.PollerConfig
}

// NewExecutor creates a job executor. webhookBaseURL may be empty — async
// jobs then always wait via polling.
func NewExecutor(client *ent.Client, orch *orchestrator.Orchestrator, registry *provider.Registry, creds *credentials.Resolver, webhookBaseURL string, pollerCfg *config.PollerConfig) *Executor {
	if client == nil {
		panic("queue.NewExecutor: client must not be nil")
	}
	if orch == nil {
		panic("queue.NewExecutor: orchestrator must not be nil")
	}
	if registry == nil {
		panic("queue.NewExecutor: registry must not be nil")
	}
	if creds == nil {
		panic("queue.NewExecutor: credentials resolver must not be nil")
	}
	if pollerCfg == nil {
		panic("queue.NewExecutor: poller config must not be nil")
	}
	return &Executor{
		client:         client,
		orch:           orch,
		registry:       registry,
		creds:          creds,
		webhookBaseURL: webhookBaseURL,
		pollerConfig:   pollerCfg,
	}
}

// Execute runs one claimed job: upstream output lookup, reference resolution,
// adapter selection, credential resolution, and the provider launch. Business
// failures (unresolvable reference, unknown model, provider rejection) become
// terminal job failures here; only infrastructure errors are returned.
func (e *Executor) Execute(ctx context.Context, job *ent.ExecutionJob) error {
	log := slog.With("job_id", job.ID, "execution_id", job.ExecutionID, "operation", job.Operation)

	exec, err := e.client.Execution.Get(ctx, job.ExecutionID)
	if err != nil {
		return fmt.Errorf("load execution: %w", err)
	}

	upstream, err := e.loadUpstreamOutputs(ctx, job)
	if err != nil {
		return err
	}

	resolved, err := resolver.Resolve(job.Params, upstream)
	if err != nil {
		var resolveErr *resolver.ResolveError
		if errors.As(err, &resolveErr) {
			return e.orch.OnJobTerminal(ctx, job.ID, orchestrator.FailedOutcome(err.Error()))
		}
		return fmt.Errorf("resolve params: %w", err)
	}

	adapter, err := e.registry.Lookup(job.Operation, provider.ModelID(resolved))
	if err != nil {
		if errors.Is(err, provider.ErrNoAdapter) {
			return e.orch.OnJobTerminal(ctx, job.ID, orchestrator.FailedOutcome(err.Error()))
		}
		return fmt.Errorf("lookup adapter: %w", err)
	}

	apiKey, err := e.creds.Resolve(ctx, exec, adapter.Provider(), adapter.Capabilities().RequiresAPIKey)
	if err != nil {
		var credErr *credentials.NotConfiguredError
		if errors.As(err, &credErr) {
			return e.orch.OnJobTerminal(ctx, job.ID, orchestrator.FailedOutcome(err.Error()))
		}
		return err
	}

	input := provider.LaunchInput{
		JobRecordID: job.ID,
		Operation:   job.Operation,
		Params:      resolved,
		APIKey:      apiKey,
		WebhookURL:  e.callbackURL(job.ID),
	}

	result, err := adapter.Launch(ctx, input)
	if err != nil {
		// Adapter-level errors (rejections, timeouts) are terminal for the
		// job, not for the worker. The launch context may already be expired
		// or cancelled, so the failure is recorded without it.
		log.Warn("Provider launch errored", "provider", adapter.Provider(), "error", err)
		return e.orch.OnJobTerminal(context.WithoutCancel(ctx), job.ID,
			orchestrator.FailedOutcome(fmt.Sprintf("%s launch failed: %v", adapter.Provider(), err)))
	}

	switch result.Kind {
	case provider.LaunchSync:
		log.Info("Job completed synchronously", "provider", adapter.Provider())
		return e.orch.OnJobTerminal(ctx, job.ID, orchestrator.CompletedOutcome(result.Outputs))
	case provider.LaunchFailed:
		log.Info("Job rejected by provider", "provider", adapter.Provider())
		return e.orch.OnJobTerminal(ctx, job.ID, orchestrator.FailedOutcome(result.Error))
	case provider.LaunchAsync:
		return e.markWaiting(ctx, job, result, log)
	default:
		return fmt.Errorf("unexpected launch result kind %d", result.Kind)
	}
}

// markWaiting parks an async job for the wait coordinator: webhook jobs sit
// until the provider calls back, polling jobs get their first due time.
func (e *Executor) markWaiting(ctx context.Context, job *ent.ExecutionJob, result provider.LaunchResult, log *slog.Logger) error {
	update := e.client.ExecutionJob.Update().
		Where(
			executionjob.IDEQ(job.ID),
			// A cancel or late failure may have raced the launch; leave
			// terminal rows untouched.
			executionjob.StatusEQ(executionjob.StatusProcessing),
		).
		SetStatus(executionjob.StatusWaiting).
		SetProviderJobID(result.ProviderJobID).
		SetWaitStrategy(executionjob.WaitStrategy(result.WaitStrategy))
	if result.WaitStrategy == provider.WaitPolling {
		update.SetNextPollAt(time.Now().Add(e.pollerConfig.InitialBackoff))
	}
	updated, err := update.Save(ctx)
	if err != nil {
		return fmt.Errorf("mark job waiting: %w", err)
	}
	if updated == 0 {
		log.Info("Job no longer processing after launch, skipping waiting transition")
		return nil
	}
	log.Info("Job waiting",
		"provider_job_id", result.ProviderJobID,
		"wait_strategy", result.WaitStrategy)
	return nil
}

// loadUpstreamOutputs collects the outputs of the job's completed
// dependencies, keyed by plan-local id.
func (e *Executor) loadUpstreamOutputs(ctx context.Context, job *ent.ExecutionJob) (resolver.UpstreamOutputs, error) {
	upstream := make(resolver.UpstreamOutputs, len(job.DependsOn))
	if len(job.DependsOn) == 0 {
		return upstream, nil
	}
	deps, err := e.client.ExecutionJob.Query().
		Where(
			executionjob.ExecutionIDEQ(job.ExecutionID),
			executionjob.PlanLocalIDIn(job.DependsOn...),
			executionjob.StatusEQ(executionjob.StatusCompleted),
		).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("load upstream outputs: %w", err)
	}
	for _, dep := range deps {
		upstream[dep.PlanLocalID] = models.OutputsFromJSON(dep.Result)
	}
	return upstream, nil
}

// callbackURL builds the async provider callback for a job record, empty when
// no public base URL is configured.
func (e *Executor) callbackURL(jobRecordID string) string {
	if e.webhookBaseURL == "" {
		return ""
	}
	return fmt.Sprintf("%s/webhook/job/%s", e.webhookBaseURL, jobRecordID)
}
