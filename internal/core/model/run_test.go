package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/penwyp/go-tuxsplit/internal/core/timing"
)

func testRun() *Run {
	run := NewRun("Game", "Any%")
	run.Comparisons = []string{"Personal Best", "Best Segments"}
	run.AttemptCount = 12

	names := []string{"Segment A", "Segment B", "Segment C"}
	for i, ms := range []int64{10000, 25000, 40000} {
		seg := NewSegment(names[i])
		seg.SetComparisonTime("Personal Best", timing.RealTime, timing.FromMilliseconds(ms).Ptr())
		run.PushSegment(seg)
	}
	return run
}

func TestRunValidate(t *testing.T) {
	assert.ErrorIs(t, (&Run{}).Validate(), ErrEmptyRun)
	assert.ErrorIs(t, (*Run)(nil).Validate(), ErrEmptyRun)
	assert.NoError(t, testRun().Validate())
}

func TestRunHasComparison(t *testing.T) {
	run := testRun()
	assert.True(t, run.HasComparison("Personal Best"))
	assert.False(t, run.HasComparison("Median Segments"))
}

func TestRunCloneIsDeep(t *testing.T) {
	orig := testRun()
	orig.Segment(0).BestSegmentTime = timing.Time{RealTime: timing.FromMilliseconds(9500).Ptr()}

	clone := orig.Clone()
	require.Equal(t, orig, clone)

	// Mutating the clone through every path must leave the original intact.
	clone.GameName = "Other Game"
	clone.Comparisons[0] = "Latest Run"
	clone.Segment(0).Name = "Renamed"
	clone.Segment(0).SetComparisonTime("Personal Best", timing.RealTime, timing.FromMilliseconds(1).Ptr())
	*clone.Segment(0).BestSegmentTime.RealTime = timing.FromMilliseconds(1)
	clone.PushSegment(NewSegment("Extra"))

	assert.Equal(t, "Game", orig.GameName)
	assert.Equal(t, "Personal Best", orig.Comparisons[0])
	assert.Equal(t, "Segment A", orig.Segment(0).Name)
	assert.Equal(t, int64(10000), orig.Segment(0).ComparisonTime("Personal Best", timing.RealTime).Milliseconds())
	assert.Equal(t, int64(9500), orig.Segment(0).BestSegmentTime.RealTime.Milliseconds())
	assert.Equal(t, 3, orig.Len())
}

func TestSegmentComparisonTimeAbsent(t *testing.T) {
	seg := NewSegment("A")
	assert.Nil(t, seg.ComparisonTime("Personal Best", timing.RealTime))

	seg.SetComparisonTime("Personal Best", timing.GameTime, timing.FromMilliseconds(500).Ptr())
	assert.Nil(t, seg.ComparisonTime("Personal Best", timing.RealTime))
	assert.Equal(t, int64(500), seg.ComparisonTime("Personal Best", timing.GameTime).Milliseconds())
}

func TestSegmentClearComparisonTime(t *testing.T) {
	seg := NewSegment("A")
	seg.SetComparisonTime("Personal Best", timing.RealTime, timing.FromMilliseconds(500).Ptr())
	seg.SetComparisonTime("Personal Best", timing.RealTime, nil)

	assert.Nil(t, seg.ComparisonTime("Personal Best", timing.RealTime))
	// A fully cleared entry disappears rather than lingering as an empty record.
	_, present := seg.Comparisons["Personal Best"]
	assert.False(t, present)
}

func TestSegmentComparisonTimeReturnsCopy(t *testing.T) {
	seg := NewSegment("A")
	seg.SetComparisonTime("Personal Best", timing.RealTime, timing.FromMilliseconds(500).Ptr())

	got := seg.ComparisonTime("Personal Best", timing.RealTime)
	*got = timing.FromMilliseconds(1)

	assert.Equal(t, int64(500), seg.ComparisonTime("Personal Best", timing.RealTime).Milliseconds())
}

func TestSetComparisonTimeOnZeroValueSegment(t *testing.T) {
	var seg Segment
	seg.SetComparisonTime("Personal Best", timing.RealTime, timing.FromMilliseconds(100).Ptr())
	assert.Equal(t, int64(100), seg.ComparisonTime("Personal Best", timing.RealTime).Milliseconds())
}
