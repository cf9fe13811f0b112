package model

import (
	"github.com/penwyp/go-tuxsplit/internal/core/timing"
)

// Segment is one leg of a run: a name, the recorded time per comparison per
// timing method, the best time ever achieved for this leg alone, and the
// current attempt's split time once the attempt reaches or passes it.
type Segment struct {
	Name            string
	Comparisons     map[string]timing.Time
	BestSegmentTime timing.Time
	SplitTime       timing.Time
}

// NewSegment creates a named segment with no recorded times.
func NewSegment(name string) Segment {
	return Segment{
		Name:        name,
		Comparisons: make(map[string]timing.Time),
	}
}

// ComparisonTime returns the time recorded for the named comparison under
// the given method, or nil when none is recorded. The result is a copy.
func (s *Segment) ComparisonTime(comparison string, m timing.Method) *timing.TimeSpan {
	t := s.Comparisons[comparison].Get(m)
	if t == nil {
		return nil
	}
	return (*t).Ptr()
}

// SetComparisonTime records (or, with a nil span, clears) the time for the
// named comparison under the given method. An entry left with no time under
// either method is removed entirely.
func (s *Segment) SetComparisonTime(comparison string, m timing.Method, ts *timing.TimeSpan) {
	if s.Comparisons == nil {
		s.Comparisons = make(map[string]timing.Time)
	}
	updated := s.Comparisons[comparison].WithMethod(m, ts)
	if updated.IsEmpty() {
		delete(s.Comparisons, comparison)
		return
	}
	s.Comparisons[comparison] = updated
}

// Clone deep-copies the segment, including every optional time it holds.
func (s *Segment) Clone() Segment {
	out := Segment{
		Name:            s.Name,
		BestSegmentTime: s.BestSegmentTime.Clone(),
		SplitTime:       s.SplitTime.Clone(),
	}
	if s.Comparisons != nil {
		out.Comparisons = make(map[string]timing.Time, len(s.Comparisons))
		for name, t := range s.Comparisons {
			out.Comparisons[name] = t.Clone()
		}
	}
	return out
}
