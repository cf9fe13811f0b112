package model

import "errors"

// ErrEmptyRun marks a run that cannot back a timer: timers over zero
// segments have no meaningful attempt state.
var ErrEmptyRun = errors.New("run has no segments")

// Run is the full ordered record of segments and their comparison histories
// for one game and category. Segment order is attempt order and is
// semantically meaningful. A Run held by the shared store is replaced as a
// whole on every committed edit, never mutated in place.
type Run struct {
	GameName     string
	CategoryName string
	AttemptCount int
	Comparisons  []string
	Segments     []Segment
}

// NewRun creates an empty run with the given metadata.
func NewRun(game, category string) *Run {
	return &Run{
		GameName:     game,
		CategoryName: category,
	}
}

// PushSegment appends a segment, preserving attempt order.
func (r *Run) PushSegment(s Segment) {
	r.Segments = append(r.Segments, s)
}

// Segment returns a pointer into the run's segment slice for in-place
// mutation. Callers editing a shared run must do so on a private clone.
func (r *Run) Segment(i int) *Segment {
	return &r.Segments[i]
}

func (r *Run) Len() int {
	return len(r.Segments)
}

// HasComparison reports whether the run tracks the named comparison.
func (r *Run) HasComparison(name string) bool {
	for _, c := range r.Comparisons {
		if c == name {
			return true
		}
	}
	return false
}

// Validate reports whether the run can back a timer.
func (r *Run) Validate() error {
	if r == nil || len(r.Segments) == 0 {
		return ErrEmptyRun
	}
	return nil
}

// Clone deep-copies the run. The copy shares no storage with the original,
// so edit sessions can stage mutations without being observed.
func (r *Run) Clone() *Run {
	out := &Run{
		GameName:     r.GameName,
		CategoryName: r.CategoryName,
		AttemptCount: r.AttemptCount,
	}
	if r.Comparisons != nil {
		out.Comparisons = append([]string(nil), r.Comparisons...)
	}
	if r.Segments != nil {
		out.Segments = make([]Segment, len(r.Segments))
		for i := range r.Segments {
			out.Segments[i] = r.Segments[i].Clone()
		}
	}
	return out
}
