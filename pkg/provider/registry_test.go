package provider

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mediaforge/mediaforge/pkg/models"
)

// stubAdapter satisfies Adapter for registry tests.
type stubAdapter struct {
	slug string
}

func (s *stubAdapter) Provider() string           { return s.slug }
func (s *stubAdapter) Capabilities() Capabilities { return Capabilities{SupportsPolling: true} }
func (s *stubAdapter) Launch(context.Context, LaunchInput) (LaunchResult, error) {
	return LaunchResult{}, nil
}
func (s *stubAdapter) ParseStatus([]byte) (StatusResult, error) { return StatusResult{}, nil }
func (s *stubAdapter) PollStatus(context.Context, string, string) (StatusResult, error) {
	return StatusResult{}, nil
}

func TestRegistry_LookupByModel(t *testing.T) {
	r := NewRegistry()
	flux := &stubAdapter{slug: "replicate"}
	sdxl := &stubAdapter{slug: "replicate-sdxl"}
	r.Register(models.OpGenerateImage, "flux-schnell", flux)
	r.Register(models.OpGenerateImage, "sdxl", sdxl)
	r.Register(models.OpGenerateImage, "", flux)

	got, err := r.Lookup(models.OpGenerateImage, "sdxl")
	require.NoError(t, err)
	assert.Same(t, Adapter(sdxl), got)
}

func TestRegistry_UnknownModelFallsBackToDefault(t *testing.T) {
	r := NewRegistry()
	dflt := &stubAdapter{slug: "default"}
	r.Register(models.OpGenerateImage, "", dflt)

	got, err := r.Lookup(models.OpGenerateImage, "some-future-model")
	require.NoError(t, err)
	assert.Same(t, Adapter(dflt), got)
}

func TestRegistry_EmptyModelUsesDefault(t *testing.T) {
	r := NewRegistry()
	dflt := &stubAdapter{slug: "default"}
	r.Register(models.OpGenerateVideo, "kling", &stubAdapter{slug: "kling"})
	r.Register(models.OpGenerateVideo, "", dflt)

	got, err := r.Lookup(models.OpGenerateVideo, "")
	require.NoError(t, err)
	assert.Same(t, Adapter(dflt), got)
}

func TestRegistry_NoAdapterRegistered(t *testing.T) {
	r := NewRegistry()

	_, err := r.Lookup(models.OpGenerateAudio, "")
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrNoAdapter)
}

func TestModelID(t *testing.T) {
	assert.Equal(t, "kling", ModelID(map[string]interface{}{"modelId": "kling"}))
	assert.Equal(t, "", ModelID(map[string]interface{}{"modelId": 7}))
	assert.Equal(t, "", ModelID(map[string]interface{}{}))
	assert.Equal(t, "", ModelID(nil))
}

func TestChooseStrategy(t *testing.T) {
	webhookCapable := Capabilities{SupportsWebhook: true, SupportsPolling: true, Default: WaitWebhook}
	pollingOnly := Capabilities{SupportsPolling: true, Default: WaitPolling}

	assert.Equal(t, WaitWebhook, chooseStrategy(webhookCapable, "https://api.example.com/webhook/job/j1"))
	assert.Equal(t, WaitPolling, chooseStrategy(webhookCapable, ""))
	assert.Equal(t, WaitPolling, chooseStrategy(pollingOnly, "https://api.example.com/webhook/job/j1"))
}
