package delivery

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mediaforge/mediaforge/ent"
	"github.com/mediaforge/mediaforge/ent/execution"
	"github.com/mediaforge/mediaforge/pkg/config"
	"github.com/mediaforge/mediaforge/test/util"
)

func newDeliverer(t *testing.T) (*Deliverer, *ent.Client) {
	t.Helper()
	client, _ := util.SetupTestDatabase(t)
	return New(client, config.DefaultDeliveryConfig()), client
}

type execOpts struct {
	status        execution.Status
	webhookURL    string
	webhookSecret string
	attempts      int
	nextAttemptAt *time.Time
	deliveredAt   *time.Time
	result        []map[string]interface{}
	errorMessage  string
}

func createTerminalExecution(t *testing.T, client *ent.Client, opts execOpts) *ent.Execution {
	t.Helper()
	if opts.status == "" {
		opts.status = execution.StatusCompleted
	}
	create := client.Execution.Create().
		SetID(uuid.New().String()).
		SetTenantID("tenant-a").
		SetPlan(map[string]interface{}{"jobs": []interface{}{}}).
		SetStatus(opts.status).
		SetWebhookDeliveryAttempts(opts.attempts).
		SetCompletedAt(time.Now())
	if opts.webhookURL != "" {
		create.SetWebhookURL(opts.webhookURL)
	}
	if opts.webhookSecret != "" {
		create.SetWebhookSecret(opts.webhookSecret)
	}
	if opts.nextAttemptAt != nil {
		create.SetWebhookNextAttemptAt(*opts.nextAttemptAt)
	}
	if opts.deliveredAt != nil {
		create.SetWebhookDeliveredAt(*opts.deliveredAt)
	}
	if opts.result != nil {
		create.SetResult(opts.result)
	}
	if opts.errorMessage != "" {
		create.SetErrorMessage(opts.errorMessage)
	}
	exec, err := create.Save(context.Background())
	require.NoError(t, err)
	return exec
}

func timePtr(t time.Time) *time.Time { return &t }

func TestSweep_DeliversSignedPayload(t *testing.T) {
	d, client := newDeliverer(t)
	ctx := context.Background()

	var gotBody []byte
	var gotHeaders http.Header
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotBody, _ = io.ReadAll(r.Body)
		gotHeaders = r.Header.Clone()
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	exec := createTerminalExecution(t, client, execOpts{
		webhookURL:    server.URL,
		webhookSecret: "s3cret",
		nextAttemptAt: timePtr(time.Now().Add(-time.Second)),
		result:        []map[string]interface{}{{"type": "video", "url": "https://cdn.example.com/v.mp4"}},
	})

	require.NoError(t, d.Sweep(ctx))

	require.NotNil(t, gotBody)
	assert.Equal(t, "application/json", gotHeaders.Get("Content-Type"))
	assert.Equal(t, "MediaForge-Webhooks/1.0", gotHeaders.Get("User-Agent"))
	assert.Equal(t, Sign(gotBody, "s3cret"), gotHeaders.Get("X-Webhook-Signature"))

	var payload Payload
	require.NoError(t, json.Unmarshal(gotBody, &payload))
	assert.Equal(t, exec.ID, payload.ExecutionID)
	assert.Equal(t, "completed", payload.Status)
	require.Len(t, payload.Result, 1)
	assert.Equal(t, "https://cdn.example.com/v.mp4", payload.Result[0]["url"])
	assert.NotEmpty(t, payload.CompletedAt)

	stored, err := client.Execution.Get(ctx, exec.ID)
	require.NoError(t, err)
	assert.NotNil(t, stored.WebhookDeliveredAt)
	assert.Equal(t, 1, stored.WebhookDeliveryAttempts)
	assert.Nil(t, stored.WebhookLastError)
}

func TestSweep_NoSecretOmitsSignature(t *testing.T) {
	d, client := newDeliverer(t)

	var signature string
	var called bool
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		called = true
		signature = r.Header.Get("X-Webhook-Signature")
		w.WriteHeader(http.StatusNoContent)
	}))
	defer server.Close()

	createTerminalExecution(t, client, execOpts{
		webhookURL:    server.URL,
		nextAttemptAt: timePtr(time.Now().Add(-time.Second)),
	})

	require.NoError(t, d.Sweep(context.Background()))
	assert.True(t, called)
	assert.Empty(t, signature)
}

func TestSweep_FailedExecutionPayloadCarriesError(t *testing.T) {
	d, client := newDeliverer(t)

	var payload Payload
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, _ := io.ReadAll(r.Body)
		require.NoError(t, json.Unmarshal(body, &payload))
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	createTerminalExecution(t, client, execOpts{
		status:        execution.StatusFailed,
		webhookURL:    server.URL,
		nextAttemptAt: timePtr(time.Now().Add(-time.Second)),
		errorMessage:  "generateImage: NSFW content detected",
	})

	require.NoError(t, d.Sweep(context.Background()))
	assert.Equal(t, "failed", payload.Status)
	assert.Equal(t, "generateImage: NSFW content detected", payload.Error)
	assert.Empty(t, payload.Result)
}

func TestSweep_EndpointErrorSchedulesRetry(t *testing.T) {
	d, client := newDeliverer(t)
	ctx := context.Background()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer server.Close()

	exec := createTerminalExecution(t, client, execOpts{
		webhookURL:    server.URL,
		nextAttemptAt: timePtr(time.Now().Add(-time.Second)),
	})

	require.NoError(t, d.Sweep(ctx))

	stored, err := client.Execution.Get(ctx, exec.ID)
	require.NoError(t, err)
	assert.Nil(t, stored.WebhookDeliveredAt)
	assert.Equal(t, 1, stored.WebhookDeliveryAttempts)
	require.NotNil(t, stored.WebhookLastError)
	assert.Contains(t, *stored.WebhookLastError, "endpoint returned status 502")
	// Retry scheduled in the future; the next sweep skips it until due.
	require.NotNil(t, stored.WebhookNextAttemptAt)
	assert.True(t, stored.WebhookNextAttemptAt.After(time.Now()))
}

func TestSweep_SkipsDeliveredNotDueAndExhausted(t *testing.T) {
	d, client := newDeliverer(t)

	var calls int
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	createTerminalExecution(t, client, execOpts{
		webhookURL:    server.URL,
		nextAttemptAt: timePtr(time.Now().Add(-time.Second)),
		deliveredAt:   timePtr(time.Now()),
	})
	createTerminalExecution(t, client, execOpts{
		webhookURL:    server.URL,
		nextAttemptAt: timePtr(time.Now().Add(time.Hour)),
	})
	createTerminalExecution(t, client, execOpts{
		webhookURL:    server.URL,
		nextAttemptAt: timePtr(time.Now().Add(-time.Second)),
		attempts:      config.DefaultDeliveryConfig().MaxAttempts,
	})
	// Still-running execution: not swept even with a webhook configured.
	createTerminalExecution(t, client, execOpts{
		status:        execution.StatusProcessing,
		webhookURL:    server.URL,
		nextAttemptAt: timePtr(time.Now().Add(-time.Second)),
	})

	require.NoError(t, d.Sweep(context.Background()))
	assert.Equal(t, 0, calls)
}

func TestSweep_NoWebhookConfigured(t *testing.T) {
	d, client := newDeliverer(t)

	createTerminalExecution(t, client, execOpts{
		nextAttemptAt: timePtr(time.Now().Add(-time.Second)),
	})

	require.NoError(t, d.Sweep(context.Background()))
}

func TestSign(t *testing.T) {
	sig := Sign([]byte(`{"executionId":"e1"}`), "secret")
	assert.Regexp(t, `^sha256=[0-9a-f]{64}$`, sig)
	// Deterministic for the same body and secret, distinct otherwise.
	assert.Equal(t, sig, Sign([]byte(`{"executionId":"e1"}`), "secret"))
	assert.NotEqual(t, sig, Sign([]byte(`{"executionId":"e2"}`), "secret"))
	assert.NotEqual(t, sig, Sign([]byte(`{"executionId":"e1"}`), "other"))
}

func TestRetryDelay(t *testing.T) {
	d := &Deliverer{config: &config.DeliveryConfig{
		InitialRetryDelay: 30 * time.Second,
		MaxRetryDelay:     time.Hour,
	}}

	assert.Equal(t, 30*time.Second, d.retryDelay(1))
	assert.Equal(t, time.Minute, d.retryDelay(2))
	assert.Equal(t, 8*time.Minute, d.retryDelay(5))
	assert.Equal(t, time.Hour, d.retryDelay(8)) // 64m → cap
	assert.Equal(t, time.Hour, d.retryDelay(60))
	assert.Equal(t, 30*time.Second, d.retryDelay(0))
}
