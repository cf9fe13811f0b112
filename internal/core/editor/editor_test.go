package editor

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/penwyp/go-tuxsplit/internal/core/comparison"
	"github.com/penwyp/go-tuxsplit/internal/core/model"
	"github.com/penwyp/go-tuxsplit/internal/core/timing"
)

func ms(v int64) *timing.TimeSpan {
	return timing.FromMilliseconds(v).Ptr()
}

// pbRun builds a three segment run with personal best split times of
// 10s, 25s and 40s real time.
func pbRun() *model.Run {
	run := model.NewRun("Game", "Any%")
	run.Comparisons = []string{comparison.PersonalBest, comparison.BestSegments}
	for i, name := range []string{"Segment A", "Segment B", "Segment C"} {
		seg := model.NewSegment(name)
		seg.SetComparisonTime(comparison.PersonalBest, timing.RealTime, ms(int64(10000+15000*i)))
		run.PushSegment(seg)
	}
	return run
}

func TestOpenIsolatesTheCallerRun(t *testing.T) {
	original := pbRun()

	tx := Open(original)
	tx.Select(0)
	tx.SetComparisonTime(comparison.PersonalBest, ms(99999))
	tx.SetBestSegmentTime(ms(1234))

	// Staged edits stay invisible until the caller swaps in Close's result.
	assert.Equal(t, int64(10000), original.Segment(0).ComparisonTime(comparison.PersonalBest, timing.RealTime).Milliseconds())
	assert.Nil(t, original.Segment(0).BestSegmentTime.Get(timing.RealTime))
}

func TestCloseMaterializesStagedEdits(t *testing.T) {
	tx := Open(pbRun())
	tx.Select(1)
	tx.SetComparisonTime(comparison.PersonalBest, ms(26000))
	tx.SetBestSegmentTime(ms(14000))

	got := tx.Close()
	require.NotNil(t, got)
	assert.Equal(t, int64(26000), got.Segment(1).ComparisonTime(comparison.PersonalBest, timing.RealTime).Milliseconds())
	assert.Equal(t, int64(14000), got.Segment(1).BestSegmentTime.Get(timing.RealTime).Milliseconds())

	// Untouched rows survive unchanged.
	assert.Equal(t, int64(10000), got.Segment(0).ComparisonTime(comparison.PersonalBest, timing.RealTime).Milliseconds())
}

func TestCancelRestoresTheOpeningState(t *testing.T) {
	original := pbRun()

	tx := Open(original)
	tx.Select(0)
	tx.SelectAdditionally(1)
	tx.SetComparisonTime(comparison.PersonalBest, nil)
	tx.SetSegmentTime(ms(5000))
	tx.SetBestSegmentTime(ms(6000))
	tx.SelectTimingMethod(timing.GameTime)
	tx.SetComparisonTime(comparison.BestSegments, ms(7000))

	restored := tx.Cancel()
	assert.Equal(t, original, restored)
	assert.NotSame(t, original, restored)
}

func TestSelectReplacesSelection(t *testing.T) {
	tx := Open(pbRun())
	tx.Select(0)
	tx.Select(2)
	tx.SetBestSegmentTime(ms(5000))

	got := tx.Close()
	assert.Nil(t, got.Segment(0).BestSegmentTime.Get(timing.RealTime))
	assert.Equal(t, int64(5000), got.Segment(2).BestSegmentTime.Get(timing.RealTime).Milliseconds())
}

func TestSelectAdditionallyEditsEverySelectedSegment(t *testing.T) {
	tx := Open(pbRun())
	tx.Select(0)
	tx.SelectAdditionally(2)
	tx.SetBestSegmentTime(ms(8000))

	got := tx.Close()
	assert.Equal(t, int64(8000), got.Segment(0).BestSegmentTime.Get(timing.RealTime).Milliseconds())
	assert.Nil(t, got.Segment(1).BestSegmentTime.Get(timing.RealTime))
	assert.Equal(t, int64(8000), got.Segment(2).BestSegmentTime.Get(timing.RealTime).Milliseconds())
}

func TestUnselectScopesFollowingEdits(t *testing.T) {
	tx := Open(pbRun())
	tx.SelectAdditionally(0)
	tx.SetSegmentTime(ms(9500))
	tx.Unselect(0)
	tx.SelectAdditionally(1)
	tx.SetSegmentTime(ms(24000))

	got := tx.Close()
	assert.Equal(t, int64(9500), got.Segment(0).SplitTime.Get(timing.RealTime).Milliseconds())
	assert.Equal(t, int64(24000), got.Segment(1).SplitTime.Get(timing.RealTime).Milliseconds())
}

func TestOutOfRangeSelectionIsIgnored(t *testing.T) {
	original := pbRun()

	tx := Open(original)
	tx.Select(5)
	tx.SelectAdditionally(-1)
	tx.SetSegmentTime(ms(1000))
	tx.SetComparisonTime(comparison.PersonalBest, ms(1000))

	// Nothing was selected, so nothing changed.
	assert.Equal(t, original, tx.Close())
}

func TestNegativeDurationsAreIgnored(t *testing.T) {
	original := pbRun()
	negative := timing.FromMilliseconds(-1).Ptr()

	tx := Open(original)
	tx.Select(0)
	tx.SetComparisonTime(comparison.PersonalBest, negative)
	tx.SetSegmentTime(negative)
	tx.SetBestSegmentTime(negative)

	assert.Equal(t, original, tx.Close())
}

func TestNilClearsAStoredTime(t *testing.T) {
	tx := Open(pbRun())
	tx.Select(1)
	tx.SetComparisonTime(comparison.PersonalBest, nil)

	got := tx.Close()
	assert.Nil(t, got.Segment(1).ComparisonTime(comparison.PersonalBest, timing.RealTime))
	// Clearing the only recorded method drops the table entry entirely.
	assert.NotContains(t, got.Segment(1).Comparisons, comparison.PersonalBest)
}

func TestTimingMethodsAreEditedIndependently(t *testing.T) {
	tx := Open(pbRun())
	tx.Select(0)
	tx.SelectTimingMethod(timing.GameTime)
	tx.SetComparisonTime(comparison.PersonalBest, ms(9000))

	got := tx.Close()
	seg := got.Segment(0)
	assert.Equal(t, int64(9000), seg.ComparisonTime(comparison.PersonalBest, timing.GameTime).Milliseconds())
	assert.Equal(t, int64(10000), seg.ComparisonTime(comparison.PersonalBest, timing.RealTime).Milliseconds())
}

func TestActiveSegmentTracksLastSelection(t *testing.T) {
	tx := Open(pbRun())
	assert.Nil(t, tx.ActiveSegment())

	tx.SelectAdditionally(0)
	tx.SelectAdditionally(2)
	require.NotNil(t, tx.ActiveSegment())
	assert.Equal(t, "Segment C", tx.ActiveSegment().Name)

	tx.Unselect(2)
	assert.Equal(t, "Segment A", tx.ActiveSegment().Name)
}

func TestEditsAfterCloseAreIgnored(t *testing.T) {
	tx := Open(pbRun())
	tx.Select(0)
	got := tx.Close()

	tx.SetSegmentTime(ms(1))
	tx.SetBestSegmentTime(ms(1))
	tx.SetComparisonTime(comparison.PersonalBest, ms(1))

	assert.Nil(t, got.Segment(0).SplitTime.Get(timing.RealTime))
	assert.Nil(t, got.Segment(0).BestSegmentTime.Get(timing.RealTime))
	assert.Equal(t, int64(10000), got.Segment(0).ComparisonTime(comparison.PersonalBest, timing.RealTime).Milliseconds())
}
