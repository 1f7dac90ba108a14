package provider

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/mediaforge/mediaforge/pkg/models"
)

const elevenLabsAPIBase = "https://api.elevenlabs.io/v1"

// ElevenLabsAdapter generates audio. The provider completes speech synthesis
// within the request and returns a hosted audio URL, so launches finish
// synchronously even though the adapter is polling-capable for long renders.
type ElevenLabsAdapter struct {
	httpClient *http.Client
}

// NewElevenLabsAdapter creates the audio generation adapter.
func NewElevenLabsAdapter() *ElevenLabsAdapter {
	return &ElevenLabsAdapter{
		httpClient: &http.Client{Timeout: 120 * time.Second},
	}
}

// Provider returns the credential slug.
func (a *ElevenLabsAdapter) Provider() string { return "elevenlabs" }

// Capabilities reports polling-only async support.
func (a *ElevenLabsAdapter) Capabilities() Capabilities {
	return Capabilities{
		SupportsWebhook: false,
		SupportsPolling: true,
		RequiresAPIKey:  true,
		Default:         WaitPolling,
	}
}

// elevenLabsResponse is the subset of the synthesis response we consume.
type elevenLabsResponse struct {
	Status   string `json:"status"`
	AudioURL string `json:"audio_url"`
	Detail   string `json:"detail"`
}

// Launch synthesizes audio and returns the hosted URL synchronously.
func (a *ElevenLabsAdapter) Launch(ctx context.Context, input LaunchInput) (LaunchResult, error) {
	payload, err := json.Marshal(stripModelID(input.Params))
	if err != nil {
		return LaunchResult{}, fmt.Errorf("marshal synthesis request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost,
		elevenLabsAPIBase+"/text-to-speech", bytes.NewReader(payload))
	if err != nil {
		return LaunchResult{}, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("xi-api-key", input.APIKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := a.httpClient.Do(req)
	if err != nil {
		return LaunchResult{}, fmt.Errorf("synthesize audio: %w", err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return LaunchResult{}, fmt.Errorf("read synthesis response: %w", err)
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return FailedResult(fmt.Sprintf("elevenlabs returned HTTP %d: %s", resp.StatusCode, truncate(raw, 512))), nil
	}

	status, err := a.ParseStatus(raw)
	if err != nil {
		return LaunchResult{}, err
	}
	switch status.State {
	case StatusCompleted:
		return SyncResult(status.Outputs), nil
	case StatusFailed:
		return FailedResult(status.Error), nil
	default:
		return LaunchResult{}, fmt.Errorf("elevenlabs returned a non-terminal synthesis response")
	}
}

// ParseStatus interprets a synthesis response payload.
func (a *ElevenLabsAdapter) ParseStatus(payload []byte) (StatusResult, error) {
	var resp elevenLabsResponse
	if err := json.Unmarshal(payload, &resp); err != nil {
		return StatusResult{}, fmt.Errorf("decode synthesis payload: %w", err)
	}
	switch {
	case resp.AudioURL != "":
		return StatusResult{
			State: StatusCompleted,
			Outputs: []models.MediaOutput{
				{Type: "audio", URL: resp.AudioURL, MimeType: "audio/mpeg"},
			},
		}, nil
	case resp.Status == "processing":
		return StatusResult{State: StatusProcessing}, nil
	default:
		msg := resp.Detail
		if msg == "" {
			msg = "synthesis returned no audio"
		}
		return StatusResult{State: StatusFailed, Error: msg}, nil
	}
}

// PollStatus is not reachable in practice because launches complete
// synchronously, but the contract requires it for polling-capable adapters.
func (a *ElevenLabsAdapter) PollStatus(ctx context.Context, providerJobID, apiKey string) (StatusResult, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet,
		fmt.Sprintf("%s/history/%s", elevenLabsAPIBase, providerJobID), nil)
	if err != nil {
		return StatusResult{}, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("xi-api-key", apiKey)

	resp, err := a.httpClient.Do(req)
	if err != nil {
		return StatusResult{}, fmt.Errorf("poll synthesis %s: %w", providerJobID, err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return StatusResult{}, fmt.Errorf("read poll response: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return StatusResult{}, fmt.Errorf("elevenlabs returned HTTP %d polling %s", resp.StatusCode, providerJobID)
	}
	return a.ParseStatus(raw)
}
