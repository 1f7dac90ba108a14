package resolver

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mediaforge/mediaforge/pkg/models"
	"github.com/mediaforge/mediaforge/pkg/plan"
)

func TestResolve_SubstitutesPrimaryOutput(t *testing.T) {
	upstream := UpstreamOutputs{
		"img": {
			{Type: "image", URL: "https://cdn.example.com/img.png", MimeType: "image/png"},
			{Type: "image", URL: "https://cdn.example.com/img-alt.png"},
		},
	}

	params := map[string]interface{}{
		"image":  "$img",
		"prompt": "animate this",
	}

	resolved, err := Resolve(params, upstream)
	require.NoError(t, err)
	assert.Equal(t, "https://cdn.example.com/img.png", resolved["image"])
	assert.Equal(t, "animate this", resolved["prompt"])
}

func TestResolve_AllSentinelForms(t *testing.T) {
	upstream := UpstreamOutputs{
		"a": {{URL: "https://cdn.example.com/a"}},
	}

	params := map[string]interface{}{
		"dollar":   "$a",
		"from":     "from-a",
		"sentinel": plan.DependencySentinel + "a",
	}

	resolved, err := Resolve(params, upstream)
	require.NoError(t, err)
	for key := range params {
		assert.Equal(t, "https://cdn.example.com/a", resolved[key], "key %s", key)
	}
}

func TestResolve_NestedStructures(t *testing.T) {
	upstream := UpstreamOutputs{
		"bg": {{URL: "https://cdn.example.com/bg.mp4"}},
		"fg": {{URL: "https://cdn.example.com/fg.mp4"}},
	}

	params := map[string]interface{}{
		"layers": []interface{}{
			map[string]interface{}{"source": "$bg", "z": float64(0)},
			map[string]interface{}{"source": "$fg", "z": float64(1)},
		},
	}

	resolved, err := Resolve(params, upstream)
	require.NoError(t, err)

	layers := resolved["layers"].([]interface{})
	require.Len(t, layers, 2)
	assert.Equal(t, "https://cdn.example.com/bg.mp4", layers[0].(map[string]interface{})["source"])
	assert.Equal(t, "https://cdn.example.com/fg.mp4", layers[1].(map[string]interface{})["source"])
	assert.Equal(t, float64(1), layers[1].(map[string]interface{})["z"])
}

func TestResolve_NonReferenceValuesUntouched(t *testing.T) {
	params := map[string]interface{}{
		"prompt": "a cat in sunglasses",
		"count":  float64(3),
		"flag":   true,
	}

	resolved, err := Resolve(params, UpstreamOutputs{})
	require.NoError(t, err)
	assert.Equal(t, "a cat in sunglasses", resolved["prompt"])
	assert.Equal(t, float64(3), resolved["count"])
	assert.Equal(t, true, resolved["flag"])
}

func TestResolve_MissingUpstreamFails(t *testing.T) {
	params := map[string]interface{}{"image": "$ghost"}

	_, err := Resolve(params, UpstreamOutputs{})
	require.Error(t, err)

	var re *ResolveError
	require.ErrorAs(t, err, &re)
	assert.Equal(t, "ghost", re.JobID)
}

func TestResolve_EmptyOutputListFails(t *testing.T) {
	params := map[string]interface{}{"image": "$empty"}

	_, err := Resolve(params, UpstreamOutputs{"empty": {}})
	require.Error(t, err)

	var re *ResolveError
	require.ErrorAs(t, err, &re)
	assert.Equal(t, "empty", re.JobID)
	assert.Contains(t, re.Reason, "empty output list")
}

func TestResolve_DoesNotMutateInput(t *testing.T) {
	params := map[string]interface{}{"image": "$a"}

	resolved, err := Resolve(params, UpstreamOutputs{"a": {{URL: "u"}}})
	require.NoError(t, err)
	assert.Equal(t, "u", resolved["image"])
	assert.Equal(t, "$a", params["image"])
}

func TestOutputsRoundTripThroughStoredJSON(t *testing.T) {
	outputs := []models.MediaOutput{
		{Type: "video", URL: "https://cdn.example.com/v.mp4", MimeType: "video/mp4"},
		{Type: "image", URL: "https://cdn.example.com/i.png"},
	}

	restored := models.OutputsFromJSON(models.OutputsToJSON(outputs))
	assert.Equal(t, outputs, restored)
}
