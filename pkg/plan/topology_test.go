package plan

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mediaforge/mediaforge/pkg/models"
)

func TestTopologicalOrder_Ranks(t *testing.T) {
	jobs := []models.JobSpec{
		{ID: "a"},
		{ID: "b", DependsOn: []string{"a"}},
		{ID: "c", DependsOn: []string{"a"}},
		{ID: "d", DependsOn: []string{"b", "c"}},
	}

	ranks, err := TopologicalOrder(jobs)
	require.NoError(t, err)
	assert.Equal(t, 0, ranks["a"])
	assert.Equal(t, 1, ranks["b"])
	assert.Equal(t, 1, ranks["c"])
	assert.Equal(t, 2, ranks["d"])
}

func TestTopologicalOrder_Cycle(t *testing.T) {
	jobs := []models.JobSpec{
		{ID: "a", DependsOn: []string{"c"}},
		{ID: "b", DependsOn: []string{"a"}},
		{ID: "c", DependsOn: []string{"b"}},
	}

	_, err := TopologicalOrder(jobs)
	require.Error(t, err)
	assert.True(t, IsValidationError(err))
	assert.Contains(t, err.Error(), "cycle")
}

func TestResultJob(t *testing.T) {
	tests := []struct {
		name   string
		jobs   []JobRef
		wantID string
		wantOK bool
	}{
		{
			name:   "empty",
			jobs:   nil,
			wantOK: false,
		},
		{
			name:   "single job",
			jobs:   []JobRef{{PlanLocalID: "only", InsertionIndex: 0}},
			wantID: "only",
			wantOK: true,
		},
		{
			name: "chain picks the sink",
			jobs: []JobRef{
				{PlanLocalID: "a", InsertionIndex: 0},
				{PlanLocalID: "b", DependsOn: []string{"a"}, InsertionIndex: 1},
				{PlanLocalID: "c", DependsOn: []string{"b"}, InsertionIndex: 2},
			},
			wantID: "c",
			wantOK: true,
		},
		{
			name: "deeper sink beats earlier-inserted shallow sink",
			jobs: []JobRef{
				{PlanLocalID: "shallow", InsertionIndex: 0},
				{PlanLocalID: "root", InsertionIndex: 1},
				{PlanLocalID: "deep", DependsOn: []string{"root"}, InsertionIndex: 2},
			},
			wantID: "deep",
			wantOK: true,
		},
		{
			name: "equal rank tie-broken by insertion order",
			jobs: []JobRef{
				{PlanLocalID: "root", InsertionIndex: 0},
				{PlanLocalID: "left", DependsOn: []string{"root"}, InsertionIndex: 1},
				{PlanLocalID: "right", DependsOn: []string{"root"}, InsertionIndex: 2},
			},
			wantID: "right",
			wantOK: true,
		},
		{
			name: "non-sink never wins",
			jobs: []JobRef{
				{PlanLocalID: "a", InsertionIndex: 5},
				{PlanLocalID: "b", DependsOn: []string{"a"}, InsertionIndex: 0},
			},
			wantID: "b",
			wantOK: true,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			id, ok := ResultJob(tt.jobs)
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.wantID, id)
		})
	}
}
