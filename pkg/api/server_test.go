package api_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mediaforge/mediaforge/ent"
	"github.com/mediaforge/mediaforge/ent/execution"
	"github.com/mediaforge/mediaforge/ent/executionjob"
	"github.com/mediaforge/mediaforge/ent/usagelimit"
	"github.com/mediaforge/mediaforge/pkg/api"
	"github.com/mediaforge/mediaforge/pkg/models"
	"github.com/mediaforge/mediaforge/pkg/orchestrator"
	"github.com/mediaforge/mediaforge/pkg/provider"
	"github.com/mediaforge/mediaforge/pkg/secrets"
	"github.com/mediaforge/mediaforge/pkg/services"
	"github.com/mediaforge/mediaforge/pkg/usage"
	testdb "github.com/mediaforge/mediaforge/test/database"
)

// statusAdapter scripts ParseStatus for inbound webhook tests.
type statusAdapter struct {
	slug   string
	parse  func(payload []byte) (provider.StatusResult, error)
	parsed int
}

func (a *statusAdapter) Provider() string                    { return a.slug }
func (a *statusAdapter) Capabilities() provider.Capabilities { return provider.Capabilities{} }
func (a *statusAdapter) Launch(context.Context, provider.LaunchInput) (provider.LaunchResult, error) {
	return provider.LaunchResult{}, nil
}
func (a *statusAdapter) ParseStatus(payload []byte) (provider.StatusResult, error) {
	a.parsed++
	return a.parse(payload)
}
func (a *statusAdapter) PollStatus(context.Context, string, string) (provider.StatusResult, error) {
	return provider.StatusResult{}, nil
}

type apiFixture struct {
	router   *gin.Engine
	client   *ent.Client
	orch     *orchestrator.Orchestrator
	registry *provider.Registry
	rawKey   string
}

func newAPIFixture(t *testing.T) *apiFixture {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db := testdb.NewTestClient(t)
	client := db.Client

	cipher, err := secrets.NewCipher("test-secret")
	require.NoError(t, err)
	orch := orchestrator.New(client, usage.NewService(client), cipher)
	registry := provider.NewRegistry()

	apiKeys := services.NewAPIKeyService(client, cipher)
	server := api.NewServer(
		db,
		services.NewExecutionService(client),
		apiKeys,
		services.NewProviderKeyService(client, cipher),
		orch,
		registry,
		nil,
	)

	rawKey, _, err := apiKeys.CreateKey(context.Background(), "tenant-a")
	require.NoError(t, err)

	return &apiFixture{
		router:   server.Router(),
		client:   client,
		orch:     orch,
		registry: registry,
		rawKey:   rawKey,
	}
}

func (f *apiFixture) request(t *testing.T, method, path string, body interface{}, authed bool) *httptest.ResponseRecorder {
	t.Helper()
	var reader *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}

	req, err := http.NewRequest(method, path, reader)
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")
	if authed {
		req.Header.Set("Authorization", "Bearer "+f.rawKey)
	}

	rec := httptest.NewRecorder()
	f.router.ServeHTTP(rec, req)
	return rec
}

func decodeBody(t *testing.T, rec *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	return body
}

func executeBody(jobs ...map[string]interface{}) map[string]interface{} {
	return map[string]interface{}{
		"executionPlan": map[string]interface{}{"jobs": jobs},
	}
}

func TestAuth(t *testing.T) {
	f := newAPIFixture(t)

	t.Run("missing header", func(t *testing.T) {
		rec := f.request(t, http.MethodGet, "/executions", nil, false)
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("invalid key", func(t *testing.T) {
		req, err := http.NewRequest(http.MethodGet, "/executions", nil)
		require.NoError(t, err)
		req.Header.Set("Authorization", "Bearer mf_not_a_real_key")
		rec := httptest.NewRecorder()
		f.router.ServeHTTP(rec, req)
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("valid key", func(t *testing.T) {
		rec := f.request(t, http.MethodGet, "/executions", nil, true)
		assert.Equal(t, http.StatusOK, rec.Code)
	})
}

func TestExecuteEndpoint(t *testing.T) {
	f := newAPIFixture(t)

	t.Run("valid plan accepted", func(t *testing.T) {
		rec := f.request(t, http.MethodPost, "/execute", executeBody(
			map[string]interface{}{"id": "img", "operation": models.OpGenerateImage, "params": map[string]interface{}{"prompt": "a cat"}},
			map[string]interface{}{"id": "vid", "operation": models.OpGenerateVideo, "params": map[string]interface{}{"image": "$img"}},
		), true)
		require.Equal(t, http.StatusAccepted, rec.Code, rec.Body.String())

		body := decodeBody(t, rec)
		assert.NotEmpty(t, body["executionId"])
		assert.Equal(t, "pending", body["status"])
		assert.NotEmpty(t, body["createdAt"])

		// Root job is queued ready.
		ready, err := f.client.ExecutionJob.Query().
			Where(executionjob.ReadyAtNotNil()).
			Count(context.Background())
		require.NoError(t, err)
		assert.Equal(t, 1, ready)
	})

	t.Run("invalid plan rejected", func(t *testing.T) {
		rec := f.request(t, http.MethodPost, "/execute", executeBody(
			map[string]interface{}{"id": "a", "operation": "teleport", "params": map[string]interface{}{}},
		), true)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("malformed json rejected", func(t *testing.T) {
		req, err := http.NewRequest(http.MethodPost, "/execute", bytes.NewReader([]byte("{not json")))
		require.NoError(t, err)
		req.Header.Set("Authorization", "Bearer "+f.rawKey)
		rec := httptest.NewRecorder()
		f.router.ServeHTTP(rec, req)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestExecuteEndpoint_QuotaExceeded(t *testing.T) {
	f := newAPIFixture(t)

	_, err := f.client.UsageLimit.Create().
		SetID(uuid.New().String()).
		SetTenantID("tenant-a").
		SetPlan(usagelimit.PlanFree).
		SetMonthlyActionLimit(1).
		SetActionsUsedThisPeriod(1).
		SetPeriodStart(time.Now()).
		SetPeriodEnd(time.Now().Add(usage.PeriodLength)).
		Save(context.Background())
	require.NoError(t, err)

	rec := f.request(t, http.MethodPost, "/execute", executeBody(
		map[string]interface{}{"id": "img", "operation": models.OpGenerateImage, "params": map[string]interface{}{}},
	), true)
	require.Equal(t, http.StatusTooManyRequests, rec.Code)

	body := decodeBody(t, rec)
	assert.Equal(t, "RATE_LIMIT_EXCEEDED", body["code"])
	assert.Contains(t, body["message"], "monthly action limit")
}

func TestStatusEndpoint(t *testing.T) {
	f := newAPIFixture(t)
	ctx := context.Background()

	rec := f.request(t, http.MethodPost, "/execute", executeBody(
		map[string]interface{}{"id": "img", "operation": models.OpGenerateImage, "params": map[string]interface{}{}},
		map[string]interface{}{"id": "vid", "operation": models.OpGenerateVideo, "params": map[string]interface{}{"image": "$img"}},
	), true)
	require.Equal(t, http.StatusAccepted, rec.Code)
	executionID := decodeBody(t, rec)["executionId"].(string)

	// Drive the first job terminal so the status shows mixed job states.
	img, err := f.client.ExecutionJob.Query().
		Where(executionjob.PlanLocalIDEQ("img")).
		Only(ctx)
	require.NoError(t, err)
	outputs := []models.MediaOutput{{Type: "image", URL: "https://cdn.example.com/i.png"}}
	require.NoError(t, f.orch.OnJobTerminal(ctx, img.ID, orchestrator.CompletedOutcome(outputs)))

	rec = f.request(t, http.MethodGet, "/execute/"+executionID+"/status", nil, true)
	require.Equal(t, http.StatusOK, rec.Code)

	var status api.StatusResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &status))
	assert.Equal(t, executionID, status.ID)
	assert.Equal(t, "processing", status.Status)
	require.Len(t, status.Jobs, 2)
	assert.Equal(t, "img", status.Jobs[0].ID)
	assert.Equal(t, "completed", status.Jobs[0].Status)
	require.Len(t, status.Jobs[0].Result, 1)
	assert.Equal(t, "vid", status.Jobs[1].ID)
	assert.Equal(t, "pending", status.Jobs[1].Status)
}

func TestStatusEndpoint_UnknownAndForeign(t *testing.T) {
	f := newAPIFixture(t)

	rec := f.request(t, http.MethodGet, "/execute/"+uuid.New().String()+"/status", nil, true)
	assert.Equal(t, http.StatusNotFound, rec.Code)

	// Another tenant's execution reads as missing.
	foreign, err := f.client.Execution.Create().
		SetID(uuid.New().String()).
		SetTenantID("tenant-b").
		SetPlan(map[string]interface{}{"jobs": []interface{}{}}).
		SetStatus(execution.StatusPending).
		Save(context.Background())
	require.NoError(t, err)

	rec = f.request(t, http.MethodGet, "/execute/"+foreign.ID+"/status", nil, true)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestCancelEndpoint(t *testing.T) {
	f := newAPIFixture(t)

	rec := f.request(t, http.MethodPost, "/execute", executeBody(
		map[string]interface{}{"id": "img", "operation": models.OpGenerateImage, "params": map[string]interface{}{}},
	), true)
	require.Equal(t, http.StatusAccepted, rec.Code)
	executionID := decodeBody(t, rec)["executionId"].(string)

	rec = f.request(t, http.MethodPost, "/execute/"+executionID+"/cancel", nil, true)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "cancelled", decodeBody(t, rec)["status"])

	// Already terminal: conflict.
	rec = f.request(t, http.MethodPost, "/execute/"+executionID+"/cancel", nil, true)
	assert.Equal(t, http.StatusConflict, rec.Code)

	// Unknown execution: not found.
	rec = f.request(t, http.MethodPost, "/execute/"+uuid.New().String()+"/cancel", nil, true)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestProviderKeyEndpoints(t *testing.T) {
	f := newAPIFixture(t)

	rec := f.request(t, http.MethodPut, "/providers/replicate/key",
		map[string]interface{}{"key": "r8_secret"}, true)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "replicate", decodeBody(t, rec)["provider"])
	// The raw key never appears in the response.
	assert.NotContains(t, rec.Body.String(), "r8_secret")

	rec = f.request(t, http.MethodPut, "/providers/elevenlabs/key",
		map[string]interface{}{"key": ""}, true)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = f.request(t, http.MethodGet, "/providers", nil, true)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, []interface{}{"replicate"}, decodeBody(t, rec)["providers"])

	rec = f.request(t, http.MethodDelete, "/providers/replicate/key", nil, true)
	assert.Equal(t, http.StatusNoContent, rec.Code)

	rec = f.request(t, http.MethodDelete, "/providers/replicate/key", nil, true)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

// seedWaitingJob inserts an execution with one waiting async job.
func seedWaitingJob(t *testing.T, client *ent.Client, operation string) *ent.ExecutionJob {
	t.Helper()
	ctx := context.Background()

	execID := uuid.New().String()
	_, err := client.Execution.Create().
		SetID(execID).
		SetTenantID("tenant-a").
		SetPlan(map[string]interface{}{"jobs": []interface{}{}}).
		SetStatus(execution.StatusProcessing).
		Save(ctx)
	require.NoError(t, err)

	job, err := client.ExecutionJob.Create().
		SetID(uuid.New().String()).
		SetExecutionID(execID).
		SetPlanLocalID("async").
		SetOperation(operation).
		SetParams(map[string]interface{}{}).
		SetStatus(executionjob.StatusWaiting).
		SetWaitStrategy(executionjob.WaitStrategyWebhook).
		SetProviderJobID("pred-1").
		SetInsertionIndex(0).
		Save(ctx)
	require.NoError(t, err)
	return job
}

func TestJobWebhookEndpoint(t *testing.T) {
	f := newAPIFixture(t)
	ctx := context.Background()

	adapter := &statusAdapter{
		slug: "replicate",
		parse: func(payload []byte) (provider.StatusResult, error) {
			var pred struct {
				Status string `json:"status"`
				Output string `json:"output"`
			}
			if err := json.Unmarshal(payload, &pred); err != nil {
				return provider.StatusResult{}, err
			}
			switch pred.Status {
			case "succeeded":
				return provider.StatusResult{
					State:   provider.StatusCompleted,
					Outputs: []models.MediaOutput{{Type: "video", URL: pred.Output}},
				}, nil
			case "failed":
				return provider.StatusResult{State: provider.StatusFailed, Error: "prediction failed"}, nil
			default:
				return provider.StatusResult{State: provider.StatusProcessing}, nil
			}
		},
	}
	f.registry.Register(models.OpGenerateVideo, "", adapter)

	t.Run("unknown job", func(t *testing.T) {
		rec := f.request(t, http.MethodPost, "/webhook/job/"+uuid.New().String(),
			map[string]interface{}{"status": "succeeded"}, false)
		assert.Equal(t, http.StatusNotFound, rec.Code)
	})

	t.Run("completion resolves job", func(t *testing.T) {
		job := seedWaitingJob(t, f.client, models.OpGenerateVideo)

		rec := f.request(t, http.MethodPost, "/webhook/job/"+job.ID,
			map[string]interface{}{"status": "succeeded", "output": "https://cdn.example.com/v.mp4"}, false)
		require.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "accepted", decodeBody(t, rec)["status"])

		stored, err := f.client.ExecutionJob.Get(ctx, job.ID)
		require.NoError(t, err)
		assert.Equal(t, executionjob.StatusCompleted, stored.Status)
		require.Len(t, stored.Result, 1)
		assert.Equal(t, "https://cdn.example.com/v.mp4", stored.Result[0]["url"])
	})

	t.Run("failure resolves job", func(t *testing.T) {
		job := seedWaitingJob(t, f.client, models.OpGenerateVideo)

		rec := f.request(t, http.MethodPost, "/webhook/job/"+job.ID,
			map[string]interface{}{"status": "failed"}, false)
		require.Equal(t, http.StatusOK, rec.Code)

		stored, err := f.client.ExecutionJob.Get(ctx, job.ID)
		require.NoError(t, err)
		assert.Equal(t, executionjob.StatusFailed, stored.Status)
	})

	t.Run("still processing acknowledged without transition", func(t *testing.T) {
		job := seedWaitingJob(t, f.client, models.OpGenerateVideo)

		rec := f.request(t, http.MethodPost, "/webhook/job/"+job.ID,
			map[string]interface{}{"status": "processing"}, false)
		require.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "processing", decodeBody(t, rec)["status"])

		stored, err := f.client.ExecutionJob.Get(ctx, job.ID)
		require.NoError(t, err)
		assert.Equal(t, executionjob.StatusWaiting, stored.Status)
	})

	t.Run("unparseable payload fails job but acknowledges", func(t *testing.T) {
		job := seedWaitingJob(t, f.client, models.OpGenerateVideo)

		req, err := http.NewRequest(http.MethodPost, "/webhook/job/"+job.ID, bytes.NewReader([]byte("<xml>")))
		require.NoError(t, err)
		rec := httptest.NewRecorder()
		f.router.ServeHTTP(rec, req)
		require.Equal(t, http.StatusOK, rec.Code)

		stored, err := f.client.ExecutionJob.Get(ctx, job.ID)
		require.NoError(t, err)
		assert.Equal(t, executionjob.StatusFailed, stored.Status)
		require.NotNil(t, stored.ErrorMessage)
		assert.Contains(t, *stored.ErrorMessage, "webhook payload parse failed")
	})

	t.Run("duplicate webhook for terminal job ignored", func(t *testing.T) {
		job := seedWaitingJob(t, f.client, models.OpGenerateVideo)
		require.NoError(t, f.orch.OnJobTerminal(ctx, job.ID, orchestrator.CompletedOutcome(nil)))

		before := adapter.parsed
		rec := f.request(t, http.MethodPost, "/webhook/job/"+job.ID,
			map[string]interface{}{"status": "failed"}, false)
		require.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "ignored", decodeBody(t, rec)["status"])
		assert.Equal(t, before, adapter.parsed)

		stored, err := f.client.ExecutionJob.Get(ctx, job.ID)
		require.NoError(t, err)
		assert.Equal(t, executionjob.StatusCompleted, stored.Status)
	})
}

func TestHealthEndpoint(t *testing.T) {
	f := newAPIFixture(t)

	rec := f.request(t, http.MethodGet, "/health", nil, false)
	require.Equal(t, http.StatusOK, rec.Code)
	body := decodeBody(t, rec)
	assert.Equal(t, "healthy", body["status"])
}

func TestListExecutionsEndpoint(t *testing.T) {
	f := newAPIFixture(t)

	for i := 0; i < 2; i++ {
		rec := f.request(t, http.MethodPost, "/execute", executeBody(
			map[string]interface{}{"id": "img", "operation": models.OpGenerateImage, "params": map[string]interface{}{}},
		), true)
		require.Equal(t, http.StatusAccepted, rec.Code)
	}

	rec := f.request(t, http.MethodGet, "/executions", nil, true)
	require.Equal(t, http.StatusOK, rec.Code)

	body := decodeBody(t, rec)
	executions, ok := body["executions"].([]interface{})
	require.True(t, ok)
	assert.Len(t, executions, 2)
}
