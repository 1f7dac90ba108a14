package config

import "time"

// DeliveryConfig controls the outbound webhook deliverer.
type DeliveryConfig struct {
	// SweepInterval is how often terminal executions with undelivered
	// webhooks are scanned.
	SweepInterval time.Duration

	// MaxAttempts is the delivery attempt cap; after it the webhook is
	// abandoned and only the last error is kept.
	MaxAttempts int

	// InitialRetryDelay is the delay after the first failed attempt.
	InitialRetryDelay time.Duration

	// MaxRetryDelay caps the exponential retry delay.
	MaxRetryDelay time.Duration

	// RequestTimeout bounds one delivery request.
	RequestTimeout time.Duration
}

// DefaultDeliveryConfig returns the built-in delivery defaults.
func DefaultDeliveryConfig() *DeliveryConfig {
	return &DeliveryConfig{
		SweepInterval:     30 * time.Second,
		MaxAttempts:       5,
		InitialRetryDelay: 30 * time.Second,
		MaxRetryDelay:     time.Hour,
		RequestTimeout:    30 * time.Second,
	}
}
