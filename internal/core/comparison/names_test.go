package comparison

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLabel(t *testing.T) {
	tests := []struct {
		name string
		want string
	}{
		{PersonalBest, "PB"},
		{BestSegments, "SOB"},
		{BestSplitTimes, "Best Split"},
		{AverageSegments, "Avg"},
		{MedianSegments, "Median"},
		{WorstSegments, "Worst Split"},
		{BalancedPB, "Balanced"},
		{LatestRun, "Latest"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, Label(tt.name))
	}

	// Custom comparisons keep their full name.
	assert.Equal(t, "My Comparison", Label("My Comparison"))
}

func TestDefaultTracksPersonalBestFirst(t *testing.T) {
	names := Default()
	assert.Equal(t, PersonalBest, names[0])
	assert.Contains(t, names, BestSegments)
	assert.Len(t, names, 8)
}
