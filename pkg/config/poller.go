package config

import "time"

// PollerConfig controls the async wait coordinator's polling loop.
type PollerConfig struct {
	// Interval is how often the coordinator scans for due jobs.
	Interval time.Duration

	// BatchSize is the max number of due jobs leased per scan.
	BatchSize int

	// InitialBackoff is the delay before a freshly parked polling job is
	// first checked; later delays grow from it.
	InitialBackoff time.Duration

	// BackoffMultiplier grows the delay per attempt.
	BackoffMultiplier float64

	// MaxBackoff caps the per-job poll delay.
	MaxBackoff time.Duration

	// MaxPollAttempts fails the job once exceeded, so a provider that never
	// answers cannot pin a job in waiting forever.
	MaxPollAttempts int

	// RequestTimeout bounds one provider status request.
	RequestTimeout time.Duration
}

// DefaultPollerConfig returns the built-in poller defaults.
func DefaultPollerConfig() *PollerConfig {
	return &PollerConfig{
		Interval:          10 * time.Second,
		BatchSize:         50,
		InitialBackoff:    5 * time.Second,
		BackoffMultiplier: 2,
		MaxBackoff:        5 * time.Minute,
		MaxPollAttempts:   100,
		RequestTimeout:    30 * time.Second,
	}
}
