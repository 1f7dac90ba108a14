// Package provider contains the adapters that couple the orchestrator core to
// external AI providers and the media-transform service. An adapter is the
// only place provider specifics live: a launch call, a status parser, and a
// capability descriptor. Everything upstream deals in these variants only.
package provider

import (
	"context"
	"errors"

	"github.com/mediaforge/mediaforge/pkg/models"
)

// WaitStrategy selects how a waiting job is driven to a terminal state.
type WaitStrategy string

// Wait strategies.
const (
	WaitWebhook WaitStrategy = "webhook"
	WaitPolling WaitStrategy = "polling"
)

// LaunchKind tags the variant of a LaunchResult.
type LaunchKind int

// Launch result variants.
const (
	LaunchSync LaunchKind = iota
	LaunchAsync
	LaunchFailed
)

// LaunchResult is the outcome of an adapter launch call.
// Exactly one variant's fields are meaningful, selected by Kind.
type LaunchResult struct {
	Kind LaunchKind

	// LaunchSync
	Outputs []models.MediaOutput

	// LaunchAsync
	ProviderJobID string
	WaitStrategy  WaitStrategy

	// LaunchFailed
	Error string
}

// SyncResult builds a synchronous completion.
func SyncResult(outputs []models.MediaOutput) LaunchResult {
	return LaunchResult{Kind: LaunchSync, Outputs: outputs}
}

// AsyncResult builds an asynchronous handle.
func AsyncResult(providerJobID string, strategy WaitStrategy) LaunchResult {
	return LaunchResult{Kind: LaunchAsync, ProviderJobID: providerJobID, WaitStrategy: strategy}
}

// FailedResult builds a permanent launch failure.
func FailedResult(message string) LaunchResult {
	return LaunchResult{Kind: LaunchFailed, Error: message}
}

// StatusState tags the variant of a StatusResult.
type StatusState int

// Status result variants.
const (
	StatusProcessing StatusState = iota
	StatusCompleted
	StatusFailed
)

// StatusResult is a parsed provider status payload.
type StatusResult struct {
	State   StatusState
	Outputs []models.MediaOutput
	Error   string
}

// Capabilities describes the wait strategies an adapter supports and whether
// dispatch must carry a tenant credential.
type Capabilities struct {
	SupportsWebhook bool
	SupportsPolling bool
	RequiresAPIKey  bool
	Default         WaitStrategy
}

// LaunchInput is everything an adapter needs to start one job.
type LaunchInput struct {
	// JobRecordID is the globally unique job id; async providers deliver
	// webhooks to <base>/webhook/job/<JobRecordID>.
	JobRecordID string
	Operation   string
	Params      map[string]interface{}
	// APIKey is the decrypted tenant credential (or request override) for the
	// adapter's provider. Never logged.
	APIKey string
	// WebhookURL is the full callback URL, empty when the installation has no
	// public base URL; adapters must then fall back to polling.
	WebhookURL string
}

// Adapter is one provider integration.
type Adapter interface {
	// Provider returns the credential slug, e.g. "replicate".
	Provider() string
	Capabilities() Capabilities
	// Launch starts the job. Returned errors are adapter exceptions and are
	// translated into terminal job failures by the worker.
	Launch(ctx context.Context, input LaunchInput) (LaunchResult, error)
	// ParseStatus interprets an opaque provider payload (webhook body or poll
	// response body).
	ParseStatus(payload []byte) (StatusResult, error)
	// PollStatus fetches current provider state and feeds it to ParseStatus.
	PollStatus(ctx context.Context, providerJobID, apiKey string) (StatusResult, error)
}

// ErrNoAdapter is returned when no adapter is registered for an
// (operation, modelId) pair.
var ErrNoAdapter = errors.New("no adapter registered")

// chooseStrategy picks the wait strategy honoring adapter capabilities and
// whether a public webhook URL is configured.
func chooseStrategy(caps Capabilities, webhookURL string) WaitStrategy {
	if caps.SupportsWebhook && webhookURL != "" {
		return WaitWebhook
	}
	return WaitPolling
}
