// Package queue provides the database-backed job queue and worker pool.
// Ready jobs are claimed with FOR UPDATE SKIP LOCKED, so any number of
// replicas can poll the same table without double-dispatch.
package queue

import (
	"context"
	"errors"
	"time"

	"github.com/mediaforge/mediaforge/ent"
)

// Sentinel errors for queue operations.
var (
	// ErrNoJobsAvailable indicates no ready jobs are in the queue.
	ErrNoJobsAvailable = errors.New("no jobs available")

	// ErrAtCapacity indicates a concurrency limit (global or per-operation)
	// has been reached.
	ErrAtCapacity = errors.New("at capacity")
)

// JobExecutor is the interface for dispatching one claimed job.
//
// The executor owns the full dispatch path: loading upstream outputs,
// resolving parameter references, selecting the provider adapter, and
// launching. Terminal transitions (sync completion, launch failure) and the
// waiting transition (async launch) are written internally; a returned error
// means the job could not be advanced at all and its row was left in
// processing for the worker to fail.
type JobExecutor interface {
	Execute(ctx context.Context, job *ent.ExecutionJob) error
}

// PoolHealth contains health information for the entire worker pool.
type PoolHealth struct {
	IsHealthy        bool           `json:"is_healthy"`
	DBReachable      bool           `json:"db_reachable"`
	DBError          string         `json:"db_error,omitempty"`
	PodID            string         `json:"pod_id"`
	ActiveWorkers    int            `json:"active_workers"`
	TotalWorkers     int            `json:"total_workers"`
	ActiveJobs       int            `json:"active_jobs"`
	MaxConcurrent    int            `json:"max_concurrent"`
	QueueDepth       int            `json:"queue_depth"`
	WorkerStats      []WorkerHealth `json:"worker_stats"`
	LastOrphanScan   time.Time      `json:"last_orphan_scan"`
	OrphansRecovered int            `json:"orphans_recovered"`
}

// WorkerHealth contains health information for a single worker.
type WorkerHealth struct {
	ID            string    `json:"id"`
	Status        string    `json:"status"` // "idle" or "working"
	CurrentJobID  string    `json:"current_job_id,omitempty"`
	JobsProcessed int       `json:"jobs_processed"`
	LastActivity  time.Time `json:"last_activity"`
}
