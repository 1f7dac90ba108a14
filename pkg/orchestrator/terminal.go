package orchestrator

import (
	"context"
	"fmt"
	"log/slog"
	"sort"
	"time"

	"github.com/mediaforge/mediaforge/ent"
	"github.com/mediaforge/mediaforge/ent/execution"
	"github.com/mediaforge/mediaforge/ent/executionjob"
	"github.com/mediaforge/mediaforge/pkg/models"
	"github.com/mediaforge/mediaforge/pkg/plan"
)

// Outcome is a job's terminal result, reported by the job worker or the async
// wait coordinator.
type Outcome struct {
	Completed bool
	Outputs   []models.MediaOutput
	Error     string
}

// CompletedOutcome builds a successful outcome.
func CompletedOutcome(outputs []models.MediaOutput) Outcome {
	return Outcome{Completed: true, Outputs: outputs}
}

// FailedOutcome builds a failed outcome.
func FailedOutcome(message string) Outcome {
	return Outcome{Error: message}
}

const upstreamFailureReason = "upstream failure"

// OnJobTerminal applies a job's terminal outcome under one transaction:
// terminal status write, billing ledger append, readiness fan-out to
// dependents, failure cascade, and execution roll-up. It is the convergence
// point of the webhook and polling paths and is idempotent — re-entry for an
// already-terminal job is a no-op, so whichever path commits first wins.
func (o *Orchestrator) OnJobTerminal(ctx context.Context, jobRecordID string, outcome Outcome) error {
	tx, err := o.client.Tx(ctx)
	if err != nil {
		return fmt.Errorf("start transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	// Unlocked read to resolve the execution id; the authoritative terminal
	// check happens below under the execution lock.
	ref, err := tx.ExecutionJob.Query().
		Where(executionjob.IDEQ(jobRecordID)).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return fmt.Errorf("job %s: %w", jobRecordID, ErrNotFound)
		}
		return fmt.Errorf("load job %s: %w", jobRecordID, err)
	}
	if isTerminalJobStatus(ref.Status) {
		return nil
	}

	// Lock the execution row first, then every job row: the readiness test,
	// cascade and roll-up below must see a consistent view. The fixed
	// execution-before-jobs order (shared with CancelExecution) serializes
	// concurrent terminal transitions within one execution on the execution
	// lock; taking job locks first can cycle with the sibling scan and
	// deadlock.
	exec, err := tx.Execution.Query().
		Where(execution.IDEQ(ref.ExecutionID)).
		ForUpdate().
		Only(ctx)
	if err != nil {
		return fmt.Errorf("load execution %s: %w", ref.ExecutionID, err)
	}
	siblings, err := tx.ExecutionJob.Query().
		Where(executionjob.ExecutionIDEQ(ref.ExecutionID)).
		Order(ent.Asc(executionjob.FieldInsertionIndex)).
		ForUpdate().
		All(ctx)
	if err != nil {
		return fmt.Errorf("load sibling jobs: %w", err)
	}

	var job *ent.ExecutionJob
	for _, s := range siblings {
		if s.ID == jobRecordID {
			job = s
			break
		}
	}
	if job == nil {
		return fmt.Errorf("job %s: %w", jobRecordID, ErrNotFound)
	}
	// Re-check now that the lock is held: a concurrent transition may have
	// won the race against the unlocked read above.
	if isTerminalJobStatus(job.Status) {
		return nil
	}

	now := time.Now()
	statuses := make(map[string]executionjob.Status, len(siblings))
	for _, s := range siblings {
		statuses[s.PlanLocalID] = s.Status
	}

	if outcome.Completed {
		if err := tx.ExecutionJob.UpdateOneID(job.ID).
			SetStatus(executionjob.StatusCompleted).
			SetResult(models.OutputsToJSON(outcome.Outputs)).
			SetCompletedAt(now).
			Exec(ctx); err != nil {
			return fmt.Errorf("mark job completed: %w", err)
		}
		statuses[job.PlanLocalID] = executionjob.StatusCompleted

		if err := o.usage.RecordAction(ctx, tx, job, exec.TenantID); err != nil {
			return fmt.Errorf("record action: %w", err)
		}

		if err := fanOutReady(ctx, tx, siblings, statuses, job.PlanLocalID, now); err != nil {
			return err
		}
	} else {
		if err := tx.ExecutionJob.UpdateOneID(job.ID).
			SetStatus(executionjob.StatusFailed).
			SetErrorMessage(outcome.Error).
			SetCompletedAt(now).
			Exec(ctx); err != nil {
			return fmt.Errorf("mark job failed: %w", err)
		}
		statuses[job.PlanLocalID] = executionjob.StatusFailed

		if err := cascadeCancel(ctx, tx, siblings, statuses, job.PlanLocalID, now); err != nil {
			return err
		}
	}

	if err := o.rollUp(ctx, tx, exec, siblings, statuses, outcome, job, now); err != nil {
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit terminal transition: %w", err)
	}
	return nil
}

// fanOutReady marks dependents of the just-completed job runnable when their
// whole dependency set is completed.
func fanOutReady(ctx context.Context, tx *ent.Tx, siblings []*ent.ExecutionJob, statuses map[string]executionjob.Status, completedID string, now time.Time) error {
	for _, sibling := range siblings {
		if sibling.Status != executionjob.StatusPending || sibling.ReadyAt != nil {
			continue
		}
		if !contains(sibling.DependsOn, completedID) {
			continue
		}
		ready := true
		for _, dep := range sibling.DependsOn {
			if statuses[dep] != executionjob.StatusCompleted {
				ready = false
				break
			}
		}
		if !ready {
			continue
		}
		if err := tx.ExecutionJob.UpdateOneID(sibling.ID).
			SetReadyAt(now).
			Exec(ctx); err != nil {
			return fmt.Errorf("mark job %q ready: %w", sibling.PlanLocalID, err)
		}
		slog.Debug("Job ready",
			"execution_id", sibling.ExecutionID,
			"plan_local_id", sibling.PlanLocalID)
	}
	return nil
}

// cascadeCancel marks the failed job's direct and transitive dependents
// cancelled. Dependents cannot have started (they were never ready), so only
// pending rows are touched.
func cascadeCancel(ctx context.Context, tx *ent.Tx, siblings []*ent.ExecutionJob, statuses map[string]executionjob.Status, failedID string, now time.Time) error {
	dependents := make(map[string][]*ent.ExecutionJob)
	for _, s := range siblings {
		for _, dep := range s.DependsOn {
			dependents[dep] = append(dependents[dep], s)
		}
	}

	frontier := []string{failedID}
	visited := map[string]bool{failedID: true}
	for len(frontier) > 0 {
		id := frontier[0]
		frontier = frontier[1:]
		for _, dep := range dependents[id] {
			if visited[dep.PlanLocalID] {
				continue
			}
			visited[dep.PlanLocalID] = true
			frontier = append(frontier, dep.PlanLocalID)

			if isTerminalJobStatus(statuses[dep.PlanLocalID]) {
				continue
			}
			if err := tx.ExecutionJob.UpdateOneID(dep.ID).
				SetStatus(executionjob.StatusCancelled).
				SetErrorMessage(upstreamFailureReason).
				SetCompletedAt(now).
				Exec(ctx); err != nil {
				return fmt.Errorf("cancel dependent %q: %w", dep.PlanLocalID, err)
			}
			statuses[dep.PlanLocalID] = executionjob.StatusCancelled
		}
	}
	return nil
}

// rollUp recomputes the execution's state after a job terminal transition:
// completed when every job completed; failed when any job failed and none is
// runnable; otherwise processing. When the execution just became terminal and
// a webhook is configured, the outbound delivery is scheduled for the sweeper.
func (o *Orchestrator) rollUp(ctx context.Context, tx *ent.Tx, exec *ent.Execution, siblings []*ent.ExecutionJob, statuses map[string]executionjob.Status, outcome Outcome, job *ent.ExecutionJob, now time.Time) error {
	allCompleted := true
	anyFailed := false
	anyRunnable := false
	for _, status := range statuses {
		switch status {
		case executionjob.StatusCompleted:
		case executionjob.StatusFailed:
			allCompleted = false
			anyFailed = true
		case executionjob.StatusCancelled:
			allCompleted = false
		default:
			allCompleted = false
			anyRunnable = true
		}
	}

	update := tx.Execution.UpdateOneID(exec.ID)
	switch {
	case allCompleted:
		result, err := resultOutputs(siblings, statuses, outcome, job)
		if err != nil {
			return err
		}
		update.SetStatus(execution.StatusCompleted).
			SetResult(result).
			SetCompletedAt(now)
	case anyFailed && !anyRunnable:
		update.SetStatus(execution.StatusFailed).
			SetErrorMessage(aggregateError(siblings, statuses, outcome, job)).
			SetCompletedAt(now)
	default:
		if exec.Status != execution.StatusProcessing {
			update.SetStatus(execution.StatusProcessing)
		}
		return update.Exec(ctx)
	}

	if exec.WebhookURL != nil && *exec.WebhookURL != "" {
		update.SetWebhookNextAttemptAt(now)
	}
	if err := update.Exec(ctx); err != nil {
		return fmt.Errorf("roll up execution: %w", err)
	}

	slog.Info("Execution terminal",
		"execution_id", exec.ID,
		"completed", allCompleted)
	return nil
}

// resultOutputs aggregates the execution result from the designated result
// job: the last topologically ordered job with no dependents, tie-broken by
// plan insertion order.
func resultOutputs(siblings []*ent.ExecutionJob, statuses map[string]executionjob.Status, outcome Outcome, terminal *ent.ExecutionJob) ([]map[string]interface{}, error) {
	refs := make([]plan.JobRef, len(siblings))
	for i, s := range siblings {
		refs[i] = plan.JobRef{
			PlanLocalID:    s.PlanLocalID,
			DependsOn:      s.DependsOn,
			InsertionIndex: s.InsertionIndex,
		}
	}
	resultID, ok := plan.ResultJob(refs)
	if !ok {
		return nil, fmt.Errorf("no result job for execution %s", terminal.ExecutionID)
	}

	// The result job may be the one terminating in this very transaction, in
	// which case its row still holds the pre-update result.
	if resultID == terminal.PlanLocalID {
		return models.OutputsToJSON(outcome.Outputs), nil
	}
	for _, s := range siblings {
		if s.PlanLocalID == resultID {
			return s.Result, nil
		}
	}
	return nil, fmt.Errorf("result job %q not among execution jobs", resultID)
}

// aggregateError concatenates "operation: error" pairs from failed jobs in
// insertion order.
func aggregateError(siblings []*ent.ExecutionJob, statuses map[string]executionjob.Status, outcome Outcome, terminal *ent.ExecutionJob) string {
	type failure struct {
		index     int
		operation string
		message   string
	}
	var failures []failure
	for _, s := range siblings {
		if statuses[s.PlanLocalID] != executionjob.StatusFailed {
			continue
		}
		msg := ""
		if s.ID == terminal.ID {
			msg = outcome.Error
		} else if s.ErrorMessage != nil {
			msg = *s.ErrorMessage
		}
		failures = append(failures, failure{index: s.InsertionIndex, operation: s.Operation, message: msg})
	}
	sort.Slice(failures, func(i, j int) bool { return failures[i].index < failures[j].index })

	out := ""
	for i, f := range failures {
		if i > 0 {
			out += "; "
		}
		out += fmt.Sprintf("%s: %s", f.operation, f.message)
	}
	return out
}

func isTerminalJobStatus(s executionjob.Status) bool {
	switch s {
	case executionjob.StatusCompleted, executionjob.StatusFailed, executionjob.StatusCancelled:
		return true
	}
	return false
}

func contains(list []string, s string) bool {
	for _, item := range list {
		if item == s {
			return true
		}
	}
	return false
}
