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

const replicateAPIBase = "https://api.replicate.com/v1"

// ReplicateAdapter launches predictions against Replicate-hosted models for
// image and video generation. Predictions are asynchronous: Replicate either
// calls our webhook or we poll the prediction resource.
type ReplicateAdapter struct {
	model      string // e.g. "black-forest-labs/flux-schnell"
	mediaType  string // "image" or "video", for typing outputs
	mimeType   string
	httpClient *http.Client
}

// NewReplicateAdapter creates an adapter bound to one Replicate model.
func NewReplicateAdapter(model, mediaType, mimeType string) *ReplicateAdapter {
	return &ReplicateAdapter{
		model:      model,
		mediaType:  mediaType,
		mimeType:   mimeType,
		httpClient: &http.Client{Timeout: 60 * time.Second},
	}
}

// Provider returns the credential slug.
func (a *ReplicateAdapter) Provider() string { return "replicate" }

// Capabilities reports webhook-preferred async support.
func (a *ReplicateAdapter) Capabilities() Capabilities {
	return Capabilities{
		SupportsWebhook: true,
		SupportsPolling: true,
		RequiresAPIKey:  true,
		Default:         WaitWebhook,
	}
}

// replicatePrediction is the subset of the prediction resource we consume.
type replicatePrediction struct {
	ID     string          `json:"id"`
	Status string          `json:"status"`
	Output json.RawMessage `json:"output"`
	Error  string          `json:"error"`
}

// Launch creates a prediction. If Replicate reports the prediction already
// terminal in the create response (small models finish inline), the launch
// completes synchronously; otherwise an async handle is returned.
func (a *ReplicateAdapter) Launch(ctx context.Context, input LaunchInput) (LaunchResult, error) {
	strategy := chooseStrategy(a.Capabilities(), input.WebhookURL)

	body := map[string]interface{}{
		"input": stripModelID(input.Params),
	}
	if strategy == WaitWebhook {
		body["webhook"] = input.WebhookURL
		body["webhook_events_filter"] = []string{"completed"}
	}
	payload, err := json.Marshal(body)
	if err != nil {
		return LaunchResult{}, fmt.Errorf("marshal prediction request: %w", err)
	}

	url := fmt.Sprintf("%s/models/%s/predictions", replicateAPIBase, a.model)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(payload))
	if err != nil {
		return LaunchResult{}, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+input.APIKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := a.httpClient.Do(req)
	if err != nil {
		return LaunchResult{}, fmt.Errorf("create prediction: %w", err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return LaunchResult{}, fmt.Errorf("read prediction response: %w", err)
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return FailedResult(fmt.Sprintf("replicate returned HTTP %d: %s", resp.StatusCode, truncate(raw, 512))), nil
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
	}

	var pred replicatePrediction
	if err := json.Unmarshal(raw, &pred); err != nil {
		return LaunchResult{}, fmt.Errorf("decode prediction: %w", err)
	}
	if pred.ID == "" {
		return LaunchResult{}, fmt.Errorf("prediction response missing id")
	}
	return AsyncResult(pred.ID, strategy), nil
}

// ParseStatus interprets a prediction payload from a webhook delivery or a
// poll response.
func (a *ReplicateAdapter) ParseStatus(payload []byte) (StatusResult, error) {
	var pred replicatePrediction
	if err := json.Unmarshal(payload, &pred); err != nil {
		return StatusResult{}, fmt.Errorf("decode prediction payload: %w", err)
	}

	switch pred.Status {
	case "succeeded":
		outputs, err := a.parseOutputs(pred.Output)
		if err != nil {
			return StatusResult{}, err
		}
		return StatusResult{State: StatusCompleted, Outputs: outputs}, nil
	case "failed", "canceled":
		msg := pred.Error
		if msg == "" {
			msg = "prediction " + pred.Status
		}
		return StatusResult{State: StatusFailed, Error: msg}, nil
	default:
		// starting, processing, or anything unrecognized: still in flight.
		return StatusResult{State: StatusProcessing}, nil
	}
}

// PollStatus fetches the prediction resource and parses it.
func (a *ReplicateAdapter) PollStatus(ctx context.Context, providerJobID, apiKey string) (StatusResult, error) {
	url := fmt.Sprintf("%s/predictions/%s", replicateAPIBase, providerJobID)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return StatusResult{}, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+apiKey)

	resp, err := a.httpClient.Do(req)
	if err != nil {
		return StatusResult{}, fmt.Errorf("poll prediction %s: %w", providerJobID, err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return StatusResult{}, fmt.Errorf("read poll response: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return StatusResult{}, fmt.Errorf("replicate returned HTTP %d polling %s", resp.StatusCode, providerJobID)
	}
	return a.ParseStatus(raw)
}

// parseOutputs normalizes Replicate's output field, which is either a single
// URL string or a list of URL strings depending on the model.
func (a *ReplicateAdapter) parseOutputs(raw json.RawMessage) ([]models.MediaOutput, error) {
	if len(raw) == 0 || string(raw) == "null" {
		return nil, nil
	}

	var single string
	if err := json.Unmarshal(raw, &single); err == nil {
		return []models.MediaOutput{{Type: a.mediaType, URL: single, MimeType: a.mimeType}}, nil
	}

	var list []string
	if err := json.Unmarshal(raw, &list); err != nil {
		return nil, fmt.Errorf("unexpected prediction output shape: %s", truncate(raw, 256))
	}
	outputs := make([]models.MediaOutput, 0, len(list))
	for _, url := range list {
		outputs = append(outputs, models.MediaOutput{Type: a.mediaType, URL: url, MimeType: a.mimeType})
	}
	return outputs, nil
}

func stripModelID(params map[string]interface{}) map[string]interface{} {
	if _, ok := params["modelId"]; !ok {
		return params
	}
	out := make(map[string]interface{}, len(params))
	for k, v := range params {
		if k == "modelId" {
			continue
		}
		out[k] = v
	}
	return out
}

func truncate(b []byte, n int) string {
	if len(b) <= n {
		return string(b)
	}
	return string(b[:n]) + "..."
}
