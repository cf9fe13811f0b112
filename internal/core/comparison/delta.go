package comparison

import (
	"github.com/penwyp/go-tuxsplit/internal/core/model"
	"github.com/penwyp/go-tuxsplit/internal/core/timing"
)

// RowValues holds the display strings derived for one segment row.
type RowValues struct {
	Name         string
	SplitTime    string
	SegmentDelta string
	BestDelta    string
}

// ComputeRow derives the display values for the segment at index against the
// named comparison under the given timing method.
//
// The split column shows the stored comparison time, empty when absent. The
// segment delta is the split minus the nearest earlier present, non-zero
// split under the same comparison, floored at zero; it is empty whenever the
// split itself is absent. The best delta is the segment's own best time minus
// the nearest earlier non-zero "Best Segments" time, floored at zero; an
// absent best counts as zero here, so this column is never empty.
func ComputeRow(segments []model.Segment, index int, comparisonName string, method timing.Method, f *timing.Formatter) RowValues {
	seg := &segments[index]
	out := RowValues{Name: seg.Name}

	if split := seg.ComparisonTime(comparisonName, method); split != nil {
		prevRef := previousReference(segments, index, comparisonName, method)
		out.SplitTime = f.FormatTimeSpan(*split)
		out.SegmentDelta = f.FormatDuration(split.SaturatingSub(prevRef))
	}

	var best timing.TimeSpan
	if b := seg.BestSegmentTime.Get(method); b != nil {
		best = *b
	}
	prevGold := previousReference(segments, index, BestSegments, method)
	out.BestDelta = f.FormatDuration(best.SaturatingSub(prevGold))

	return out
}

// previousReference scans backward from index-1 for the nearest segment
// whose time under the comparison is present and non-zero, returning that
// time, or zero when no earlier segment qualifies. A recorded zero cannot be
// told apart from a skipped segment in stored data; both are passed over.
func previousReference(segments []model.Segment, index int, comparisonName string, method timing.Method) timing.TimeSpan {
	for k := index - 1; k >= 0; k-- {
		if t := segments[k].ComparisonTime(comparisonName, method); t != nil && !t.IsZero() {
			return *t
		}
	}
	return 0
}
