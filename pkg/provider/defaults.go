package provider

import "github.com/mediaforge/mediaforge/pkg/models"

// Canonical model ids accepted in params.modelId.
const (
	ModelFluxSchnell = "flux-schnell"
	ModelSDXL        = "sdxl"
	ModelKling       = "kling"
	ModelWan         = "wan"
)

// NewDefaultRegistry wires the built-in adapters: Replicate-hosted models for
// image and video generation, ElevenLabs for audio, and the transform service
// for every deterministic media operation.
func NewDefaultRegistry(transform *TransformAdapter) *Registry {
	r := NewRegistry()

	flux := NewReplicateAdapter("black-forest-labs/flux-schnell", "image", "image/png")
	sdxl := NewReplicateAdapter("stability-ai/sdxl", "image", "image/png")
	r.Register(models.OpGenerateImage, ModelFluxSchnell, flux)
	r.Register(models.OpGenerateImage, ModelSDXL, sdxl)
	r.Register(models.OpGenerateImage, "", flux)

	kling := NewReplicateAdapter("kwaivgi/kling-v1.6-standard", "video", "video/mp4")
	wan := NewReplicateAdapter("wan-video/wan-2.1-i2v-480p", "video", "video/mp4")
	r.Register(models.OpGenerateVideo, ModelKling, kling)
	r.Register(models.OpGenerateVideo, ModelWan, wan)
	r.Register(models.OpGenerateVideo, "", kling)

	r.Register(models.OpGenerateAudio, "", NewElevenLabsAdapter())

	for _, op := range []string{
		models.OpMerge,
		models.OpReframe,
		models.OpLipSync,
		models.OpAddSubtitles,
		models.OpRemoveBackground,
		models.OpRemoveImageBackground,
		models.OpReplaceGreenScreen,
		models.OpLayer,
	} {
		r.Register(op, "", transform)
	}

	return r
}
