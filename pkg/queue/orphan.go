package queue

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/mediaforge/mediaforge/ent"
	"github.com/mediaforge/mediaforge/ent/executionjob"
)

// orphanState tracks orphan detection metrics (thread-safe).
type orphanState struct {
	mu               sync.Mutex
	lastOrphanScan   time.Time
	orphansRecovered int
}

// runOrphanDetection periodically scans for orphaned jobs.
// All pods run this independently — operations are idempotent.
func (p *WorkerPool) runOrphanDetection(ctx context.Context) {
	ticker := time.NewTicker(p.config.OrphanDetectionInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-p.stopCh:
			return
		case <-ticker.C:
			if err := p.detectAndRecoverOrphans(ctx); err != nil {
				slog.Error("Orphan detection failed", "error", err)
			}
		}
	}
}

// detectAndRecoverOrphans finds processing jobs whose claim is older than the
// orphan threshold — the claiming pod died mid-dispatch — and puts them back
// on the queue. Dispatch is idempotent enough for at-least-once delivery: a
// relaunch at worst duplicates a provider call, and the terminal transition
// is first-committer-wins.
func (p *WorkerPool) detectAndRecoverOrphans(ctx context.Context) error {
	threshold := time.Now().Add(-p.config.OrphanThreshold)

	orphans, err := p.client.ExecutionJob.Query().
		Where(
			executionjob.StatusEQ(executionjob.StatusProcessing),
			executionjob.ClaimedAtNotNil(),
			executionjob.ClaimedAtLT(threshold),
		).
		All(ctx)
	if err != nil {
		return fmt.Errorf("failed to query orphaned jobs: %w", err)
	}

	if len(orphans) == 0 {
		p.orphans.mu.Lock()
		p.orphans.lastOrphanScan = time.Now()
		p.orphans.mu.Unlock()
		return nil
	}

	slog.Warn("Detected orphaned jobs", "count", len(orphans))

	recovered := 0
	for _, job := range orphans {
		if err := requeueOrphanedJob(ctx, p.client, job); err != nil {
			slog.Error("Failed to requeue orphaned job",
				"job_id", job.ID,
				"error", err)
			continue
		}
		recovered++
	}

	p.orphans.mu.Lock()
	p.orphans.lastOrphanScan = time.Now()
	p.orphans.orphansRecovered += recovered
	p.orphans.mu.Unlock()

	return nil
}

// requeueOrphanedJob puts a single orphaned job back into the ready queue.
// Conditional on the row still being processing, so a recovery racing the
// original pod (slow, not dead) or another replica's scan is harmless.
func requeueOrphanedJob(ctx context.Context, client *ent.Client, job *ent.ExecutionJob) error {
	podID := "unknown"
	if job.ClaimedBy != nil {
		podID = *job.ClaimedBy
	}

	updated, err := client.ExecutionJob.Update().
		Where(
			executionjob.IDEQ(job.ID),
			executionjob.StatusEQ(executionjob.StatusProcessing),
		).
		SetStatus(executionjob.StatusPending).
		SetReadyAt(time.Now()).
		ClearClaimedBy().
		ClearClaimedAt().
		ClearStartedAt().
		Save(ctx)
	if err != nil {
		return fmt.Errorf("failed to requeue job: %w", err)
	}
	if updated > 0 {
		slog.Warn("Orphaned job requeued", "job_id", job.ID, "old_pod_id", podID)
	}
	return nil
}

// RequeueStartupOrphans performs a one-time recovery of jobs claimed by this
// pod that were in processing when the pod previously crashed.
// Called once during startup, before the worker pool begins processing.
func RequeueStartupOrphans(ctx context.Context, client *ent.Client, podID string) error {
	orphans, err := client.ExecutionJob.Query().
		Where(
			executionjob.StatusEQ(executionjob.StatusProcessing),
			executionjob.ClaimedByEQ(podID),
		).
		All(ctx)
	if err != nil {
		return fmt.Errorf("failed to query startup orphans: %w", err)
	}

	if len(orphans) == 0 {
		return nil
	}

	slog.Warn("Found startup orphans from previous run",
		"pod_id", podID,
		"count", len(orphans))

	for _, job := range orphans {
		if err := requeueOrphanedJob(ctx, client, job); err != nil {
			slog.Error("Failed to requeue startup orphan",
				"job_id", job.ID,
				"error", err)
			continue
		}
		slog.Info("Startup orphan recovered", "job_id", job.ID)
	}

	return nil
}
