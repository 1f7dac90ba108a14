package orchestrator

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/mediaforge/mediaforge/ent"
	"github.com/mediaforge/mediaforge/ent/execution"
	"github.com/mediaforge/mediaforge/ent/executionjob"
)

const executionCancelledReason = "execution cancelled"

// CancelExecution transitions every non-terminal job and the execution itself
// to cancelled. In-flight async jobs are not aborted at the provider —
// cancellation is best-effort: the orchestrator simply stops tracking them
// (a late webhook or poll result finds the job terminal and is discarded).
func (o *Orchestrator) CancelExecution(ctx context.Context, executionID string) error {
	tx, err := o.client.Tx(ctx)
	if err != nil {
		return fmt.Errorf("start transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	exec, err := tx.Execution.Query().
		Where(execution.IDEQ(executionID)).
		ForUpdate().
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return ErrNotFound
		}
		return fmt.Errorf("load execution: %w", err)
	}
	if isTerminalExecutionStatus(exec.Status) {
		return ErrNotCancellable
	}

	now := time.Now()
	cancelled, err := tx.ExecutionJob.Update().
		Where(
			executionjob.ExecutionIDEQ(executionID),
			executionjob.StatusIn(
				executionjob.StatusPending,
				executionjob.StatusProcessing,
				executionjob.StatusWaiting,
			),
		).
		SetStatus(executionjob.StatusCancelled).
		SetErrorMessage(executionCancelledReason).
		SetCompletedAt(now).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("cancel jobs: %w", err)
	}

	update := tx.Execution.UpdateOneID(executionID).
		SetStatus(execution.StatusCancelled).
		SetCompletedAt(now)
	if exec.WebhookURL != nil && *exec.WebhookURL != "" {
		update.SetWebhookNextAttemptAt(now)
	}
	if err := update.Exec(ctx); err != nil {
		return fmt.Errorf("cancel execution: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit cancellation: %w", err)
	}

	slog.Info("Execution cancelled",
		"execution_id", executionID,
		"jobs_cancelled", cancelled)
	return nil
}

func isTerminalExecutionStatus(s execution.Status) bool {
	switch s {
	case execution.StatusCompleted, execution.StatusFailed, execution.StatusCancelled:
		return true
	}
	return false
}
