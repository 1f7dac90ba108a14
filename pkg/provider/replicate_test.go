package provider

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReplicateParseStatus_Succeeded(t *testing.T) {
	a := NewReplicateAdapter("black-forest-labs/flux-schnell", "image", "image/png")

	t.Run("single url output", func(t *testing.T) {
		result, err := a.ParseStatus([]byte(`{
			"id": "pred-1",
			"status": "succeeded",
			"output": "https://replicate.delivery/out.png"
		}`))
		require.NoError(t, err)
		assert.Equal(t, StatusCompleted, result.State)
		require.Len(t, result.Outputs, 1)
		assert.Equal(t, "https://replicate.delivery/out.png", result.Outputs[0].URL)
		assert.Equal(t, "image", result.Outputs[0].Type)
		assert.Equal(t, "image/png", result.Outputs[0].MimeType)
	})

	t.Run("url list output", func(t *testing.T) {
		result, err := a.ParseStatus([]byte(`{
			"id": "pred-2",
			"status": "succeeded",
			"output": ["https://replicate.delivery/1.png", "https://replicate.delivery/2.png"]
		}`))
		require.NoError(t, err)
		assert.Equal(t, StatusCompleted, result.State)
		require.Len(t, result.Outputs, 2)
		assert.Equal(t, "https://replicate.delivery/2.png", result.Outputs[1].URL)
	})

	t.Run("null output", func(t *testing.T) {
		result, err := a.ParseStatus([]byte(`{"id": "pred-3", "status": "succeeded", "output": null}`))
		require.NoError(t, err)
		assert.Equal(t, StatusCompleted, result.State)
		assert.Empty(t, result.Outputs)
	})

	t.Run("unexpected output shape", func(t *testing.T) {
		_, err := a.ParseStatus([]byte(`{"id": "pred-4", "status": "succeeded", "output": {"weird": true}}`))
		require.Error(t, err)
	})
}

func TestReplicateParseStatus_FailedAndCanceled(t *testing.T) {
	a := NewReplicateAdapter("kwaivgi/kling-v1.6-standard", "video", "video/mp4")

	result, err := a.ParseStatus([]byte(`{"id": "p", "status": "failed", "error": "NSFW content detected"}`))
	require.NoError(t, err)
	assert.Equal(t, StatusFailed, result.State)
	assert.Equal(t, "NSFW content detected", result.Error)

	result, err = a.ParseStatus([]byte(`{"id": "p", "status": "canceled"}`))
	require.NoError(t, err)
	assert.Equal(t, StatusFailed, result.State)
	assert.Equal(t, "prediction canceled", result.Error)
}

func TestReplicateParseStatus_InFlight(t *testing.T) {
	a := NewReplicateAdapter("stability-ai/sdxl", "image", "image/png")

	for _, status := range []string{"starting", "processing", "something-new"} {
		result, err := a.ParseStatus([]byte(`{"id": "p", "status": "` + status + `"}`))
		require.NoError(t, err)
		assert.Equal(t, StatusProcessing, result.State, "status %s", status)
	}
}

func TestReplicateParseStatus_MalformedPayload(t *testing.T) {
	a := NewReplicateAdapter("stability-ai/sdxl", "image", "image/png")

	_, err := a.ParseStatus([]byte(`not json at all`))
	require.Error(t, err)
}

func TestElevenLabsParseStatus(t *testing.T) {
	a := NewElevenLabsAdapter()

	t.Run("completed with audio url", func(t *testing.T) {
		result, err := a.ParseStatus([]byte(`{"audio_url": "https://api.elevenlabs.io/audio/x.mp3"}`))
		require.NoError(t, err)
		assert.Equal(t, StatusCompleted, result.State)
		require.Len(t, result.Outputs, 1)
		assert.Equal(t, "audio", result.Outputs[0].Type)
		assert.Equal(t, "audio/mpeg", result.Outputs[0].MimeType)
	})

	t.Run("still processing", func(t *testing.T) {
		result, err := a.ParseStatus([]byte(`{"status": "processing"}`))
		require.NoError(t, err)
		assert.Equal(t, StatusProcessing, result.State)
	})

	t.Run("failure with detail", func(t *testing.T) {
		result, err := a.ParseStatus([]byte(`{"detail": "voice not found"}`))
		require.NoError(t, err)
		assert.Equal(t, StatusFailed, result.State)
		assert.Equal(t, "voice not found", result.Error)
	})

	t.Run("failure without detail", func(t *testing.T) {
		result, err := a.ParseStatus([]byte(`{}`))
		require.NoError(t, err)
		assert.Equal(t, StatusFailed, result.State)
		assert.Equal(t, "synthesis returned no audio", result.Error)
	})

	t.Run("malformed payload", func(t *testing.T) {
		_, err := a.ParseStatus([]byte(`<html>`))
		require.Error(t, err)
	})
}

func TestStripModelID(t *testing.T) {
	in := map[string]interface{}{"modelId": "flux-schnell", "prompt": "a cat"}
	out := stripModelID(in)
	assert.NotContains(t, out, "modelId")
	assert.Equal(t, "a cat", out["prompt"])
	// Input untouched.
	assert.Contains(t, in, "modelId")

	noModel := map[string]interface{}{"prompt": "a cat"}
	assert.Equal(t, noModel, stripModelID(noModel))
}
