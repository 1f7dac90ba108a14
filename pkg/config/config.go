// Package config holds runtime configuration for the orchestrator service.
// Values come from the environment (optionally via a .env file loaded in
// main); each subsystem gets a typed struct with built-in defaults.
package config

import (
	"fmt"
	"os"
)

// Config is the root configuration assembled at startup.
type Config struct {
	// APIKeyEncryptionSecret derives the key-encryption key for stored
	// credentials. Required.
	APIKeyEncryptionSecret string

	// WebhookBaseURL is the public base URL for provider callbacks, e.g.
	// "https://api.example.com". When empty, the webhook wait strategy is
	// disabled and async jobs fall back to polling.
	WebhookBaseURL string

	// TransformServiceAddr is the gRPC address of the media-transform service.
	TransformServiceAddr string

	HTTPPort string

	Queue    *QueueConfig
	Poller   *PollerConfig
	Delivery *DeliveryConfig
}

// Load reads configuration from the environment.
func Load() (*Config, error) {
	secret := os.Getenv("API_KEY_ENCRYPTION_SECRET")
	if secret == "" {
		return nil, fmt.Errorf("API_KEY_ENCRYPTION_SECRET is required")
	}

	return &Config{
		APIKeyEncryptionSecret: secret,
		WebhookBaseURL:         os.Getenv("WEBHOOK_BASE_URL"),
		TransformServiceAddr:   getEnvOrDefault("TRANSFORM_SERVICE_ADDR", "localhost:50051"),
		HTTPPort:               getEnvOrDefault("PORT", "8080"),
		Queue:                  DefaultQueueConfig(),
		Poller:                 DefaultPollerConfig(),
		Delivery:               DefaultDeliveryConfig(),
	}, nil
}

func getEnvOrDefault(key, defaultVal string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return defaultVal
}
