package plan

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mediaforge/mediaforge/pkg/models"
)

func TestNormalize_SingleJob(t *testing.T) {
	p := models.ExecutionPlan{
		Jobs: []models.JobSpec{
			{ID: "img", Operation: models.OpGenerateImage, Params: map[string]interface{}{"prompt": "a cat"}},
		},
	}

	normalized, err := Normalize(p)
	require.NoError(t, err)
	require.Len(t, normalized.Jobs, 1)
	assert.Equal(t, "img", normalized.Jobs[0].ID)
	assert.Empty(t, normalized.Jobs[0].DependsOn)
}

func TestNormalize_ParamReferencesBecomeDependencies(t *testing.T) {
	tests := []struct {
		name     string
		refValue string
	}{
		{"dollar prefix", "$img"},
		{"from prefix", "from-img"},
		{"sentinel prefix", DependencySentinel + "img"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := models.ExecutionPlan{
				Jobs: []models.JobSpec{
					{ID: "img", Operation: models.OpGenerateImage, Params: map[string]interface{}{"prompt": "a cat"}},
					{ID: "vid", Operation: models.OpGenerateVideo, Params: map[string]interface{}{"image": tt.refValue}},
				},
			}

			normalized, err := Normalize(p)
			require.NoError(t, err)

			vid := jobByID(t, normalized, "vid")
			assert.Equal(t, []string{"img"}, vid.DependsOn)
		})
	}
}

func TestNormalize_MergesDeclaredAndReferencedDependencies(t *testing.T) {
	p := models.ExecutionPlan{
		Jobs: []models.JobSpec{
			{ID: "a", Operation: models.OpGenerateImage, Params: map[string]interface{}{}},
			{ID: "b", Operation: models.OpGenerateAudio, Params: map[string]interface{}{}},
			{
				ID:        "c",
				Operation: models.OpMerge,
				Params:    map[string]interface{}{"video": "$a"},
				DependsOn: []string{"b", "a"},
			},
		},
	}

	normalized, err := Normalize(p)
	require.NoError(t, err)

	c := jobByID(t, normalized, "c")
	// Declared order preserved, referenced duplicate not re-added.
	assert.Equal(t, []string{"b", "a"}, c.DependsOn)
}

func TestNormalize_ReferencesInsideNestedStructures(t *testing.T) {
	p := models.ExecutionPlan{
		Jobs: []models.JobSpec{
			{ID: "a", Operation: models.OpGenerateImage, Params: map[string]interface{}{}},
			{ID: "b", Operation: models.OpGenerateImage, Params: map[string]interface{}{}},
			{
				ID:        "layered",
				Operation: models.OpLayer,
				Params: map[string]interface{}{
					"layers": []interface{}{
						map[string]interface{}{"source": "$a"},
						map[string]interface{}{"source": "from-b"},
					},
				},
			},
		},
	}

	normalized, err := Normalize(p)
	require.NoError(t, err)

	layered := jobByID(t, normalized, "layered")
	assert.ElementsMatch(t, []string{"a", "b"}, layered.DependsOn)
}

func TestNormalize_LiftsNestedOperation(t *testing.T) {
	p := models.ExecutionPlan{
		Jobs: []models.JobSpec{
			{
				ID:        "vid",
				Operation: models.OpGenerateVideo,
				Params: map[string]interface{}{
					"image": map[string]interface{}{
						"type":   models.OpGenerateImage,
						"params": map[string]interface{}{"prompt": "a dog"},
					},
				},
			},
		},
	}

	normalized, err := Normalize(p)
	require.NoError(t, err)
	require.Len(t, normalized.Jobs, 2)

	// Lifted child precedes the parent in insertion order.
	child := normalized.Jobs[0]
	parent := normalized.Jobs[1]
	assert.Equal(t, "vid-image", child.ID)
	assert.Equal(t, models.OpGenerateImage, child.Operation)
	assert.Equal(t, "a dog", child.Params["prompt"])

	assert.Equal(t, "vid", parent.ID)
	assert.Equal(t, DependencySentinel+"vid-image", parent.Params["image"])
	assert.Equal(t, []string{"vid-image"}, parent.DependsOn)
}

func TestNormalize_LiftsDoublyNestedOperations(t *testing.T) {
	p := models.ExecutionPlan{
		Jobs: []models.JobSpec{
			{
				ID:        "final",
				Operation: models.OpLipSync,
				Params: map[string]interface{}{
					"video": map[string]interface{}{
						"type": models.OpGenerateVideo,
						"params": map[string]interface{}{
							"image": map[string]interface{}{
								"type":   models.OpGenerateImage,
								"params": map[string]interface{}{"prompt": "portrait"},
							},
						},
					},
				},
			},
		},
	}

	normalized, err := Normalize(p)
	require.NoError(t, err)
	require.Len(t, normalized.Jobs, 3)

	image := jobByID(t, normalized, "final-video-image")
	video := jobByID(t, normalized, "final-video")
	final := jobByID(t, normalized, "final")

	assert.Equal(t, models.OpGenerateImage, image.Operation)
	assert.Equal(t, []string{"final-video-image"}, video.DependsOn)
	assert.Equal(t, []string{"final-video"}, final.DependsOn)

	// Topological order must be valid for the lifted chain.
	ranks, err := TopologicalOrder(normalized.Jobs)
	require.NoError(t, err)
	assert.Equal(t, 0, ranks["final-video-image"])
	assert.Equal(t, 1, ranks["final-video"])
	assert.Equal(t, 2, ranks["final"])
}

func TestNormalize_LiftedIDCollisionGetsSuffix(t *testing.T) {
	p := models.ExecutionPlan{
		Jobs: []models.JobSpec{
			{ID: "vid-image", Operation: models.OpGenerateImage, Params: map[string]interface{}{}},
			{
				ID:        "vid",
				Operation: models.OpGenerateVideo,
				Params: map[string]interface{}{
					"image": map[string]interface{}{
						"type":   models.OpGenerateImage,
						"params": map[string]interface{}{"prompt": "a dog"},
					},
				},
			},
		},
	}

	normalized, err := Normalize(p)
	require.NoError(t, err)
	require.Len(t, normalized.Jobs, 3)

	vid := jobByID(t, normalized, "vid")
	assert.Equal(t, []string{"vid-image-2"}, vid.DependsOn)
}

func TestNormalize_MapWithoutKnownTypeIsNotLifted(t *testing.T) {
	p := models.ExecutionPlan{
		Jobs: []models.JobSpec{
			{
				ID:        "sub",
				Operation: models.OpAddSubtitles,
				Params: map[string]interface{}{
					"style": map[string]interface{}{
						"type":   "karaoke", // not an operation
						"params": map[string]interface{}{"color": "white"},
					},
				},
			},
		},
	}

	normalized, err := Normalize(p)
	require.NoError(t, err)
	require.Len(t, normalized.Jobs, 1)

	style, ok := normalized.Jobs[0].Params["style"].(map[string]interface{})
	require.True(t, ok)
	assert.Equal(t, "karaoke", style["type"])
}

func TestNormalize_ValidationFailures(t *testing.T) {
	tests := []struct {
		name string
		plan models.ExecutionPlan
	}{
		{
			name: "empty plan",
			plan: models.ExecutionPlan{},
		},
		{
			name: "missing job id",
			plan: models.ExecutionPlan{Jobs: []models.JobSpec{
				{Operation: models.OpGenerateImage, Params: map[string]interface{}{}},
			}},
		},
		{
			name: "duplicate job id",
			plan: models.ExecutionPlan{Jobs: []models.JobSpec{
				{ID: "a", Operation: models.OpGenerateImage, Params: map[string]interface{}{}},
				{ID: "a", Operation: models.OpGenerateVideo, Params: map[string]interface{}{}},
			}},
		},
		{
			name: "unknown operation",
			plan: models.ExecutionPlan{Jobs: []models.JobSpec{
				{ID: "a", Operation: "teleport", Params: map[string]interface{}{}},
			}},
		},
		{
			name: "reference to unknown job",
			plan: models.ExecutionPlan{Jobs: []models.JobSpec{
				{ID: "a", Operation: models.OpGenerateVideo, Params: map[string]interface{}{"image": "$ghost"}},
			}},
		},
		{
			name: "self dependency",
			plan: models.ExecutionPlan{Jobs: []models.JobSpec{
				{ID: "a", Operation: models.OpGenerateImage, Params: map[string]interface{}{}, DependsOn: []string{"a"}},
			}},
		},
		{
			name: "two-job cycle",
			plan: models.ExecutionPlan{Jobs: []models.JobSpec{
				{ID: "a", Operation: models.OpGenerateImage, Params: map[string]interface{}{}, DependsOn: []string{"b"}},
				{ID: "b", Operation: models.OpGenerateVideo, Params: map[string]interface{}{}, DependsOn: []string{"a"}},
			}},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Normalize(tt.plan)
			require.Error(t, err)
			assert.True(t, IsValidationError(err), "expected validation error, got %v", err)
		})
	}
}

func TestNormalize_DoesNotMutateInput(t *testing.T) {
	original := models.ExecutionPlan{
		Jobs: []models.JobSpec{
			{ID: "a", Operation: models.OpGenerateImage, Params: map[string]interface{}{}},
			{ID: "b", Operation: models.OpGenerateVideo, Params: map[string]interface{}{"image": "$a"}},
		},
	}

	_, err := Normalize(original)
	require.NoError(t, err)

	assert.Empty(t, original.Jobs[1].DependsOn, "input plan must not be rewritten")
	assert.Equal(t, "$a", original.Jobs[1].Params["image"])
}

func TestParseReference(t *testing.T) {
	tests := []struct {
		in     string
		wantID string
		wantOK bool
	}{
		{"$img", "img", true},
		{"from-img", "img", true},
		{DependencySentinel + "img", "img", true},
		{"$", "", false},
		{"from-", "", false},
		{"plain string", "", false},
		{"", "", false},
	}
	for _, tt := range tests {
		id, ok := ParseReference(tt.in)
		assert.Equal(t, tt.wantOK, ok, "input %q", tt.in)
		assert.Equal(t, tt.wantID, id, "input %q", tt.in)
	}
}

func jobByID(t *testing.T, p models.ExecutionPlan, id string) models.JobSpec {
	t.Helper()
	for _, job := range p.Jobs {
		if job.ID == id {
			return job
		}
	}
	t.Fatalf("job %q not found in normalized plan", id)
	return models.JobSpec{}
}
