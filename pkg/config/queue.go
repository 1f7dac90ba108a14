package config

import "time"

// QueueConfig controls how jobs are polled, claimed, and processed by the
// worker pool.
type QueueConfig struct {
	// WorkerCount is the number of worker goroutines per replica/pod.
	WorkerCount int

	// MaxConcurrentJobs is the global limit of jobs in processing across ALL
	// replicas. Enforced by a database COUNT(*) check at claim time.
	MaxConcurrentJobs int

	// OperationConcurrency caps simultaneous jobs per operation kind, to
	// protect provider rate limits. Zero or absent means uncapped.
	OperationConcurrency map[string]int

	// PollInterval is the base interval for checking ready jobs.
	PollInterval time.Duration

	// PollIntervalJitter is the random jitter added to PollInterval.
	// Actual interval: PollInterval ± PollIntervalJitter.
	PollIntervalJitter time.Duration

	// LaunchTimeout bounds one job's resolve + provider launch.
	LaunchTimeout time.Duration

	// GracefulShutdownTimeout is the max time to wait for in-flight jobs
	// during shutdown.
	GracefulShutdownTimeout time.Duration

	// OrphanDetectionInterval is how often to scan for jobs whose claiming
	// pod crashed.
	OrphanDetectionInterval time.Duration

	// OrphanThreshold is how long a claimed job may sit in processing before
	// it is considered orphaned and re-queued.
	OrphanThreshold time.Duration
}

// DefaultQueueConfig returns the built-in queue defaults.
func DefaultQueueConfig() *QueueConfig {
	return &QueueConfig{
		WorkerCount:       5,
		MaxConcurrentJobs: 20,
		OperationConcurrency: map[string]int{
			"generateVideo": 5,
		},
		PollInterval:            1 * time.Second,
		PollIntervalJitter:      500 * time.Millisecond,
		LaunchTimeout:           5 * time.Minute,
		GracefulShutdownTimeout: 5 * time.Minute,
		OrphanDetectionInterval: 5 * time.Minute,
		OrphanThreshold:         10 * time.Minute,
	}
}
