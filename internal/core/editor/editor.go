// Package editor stages mutations to a run document inside a private
// working copy. A transaction is opened from the current run, collects
// any number of per-segment edits, and either materializes them as a
// fresh Run (Close) or throws them away (Cancel). It never touches
// shared state; swapping the result into the store and notifying
// observers is the caller's responsibility.
package editor

import (
	"github.com/penwyp/go-tuxsplit/internal/core/model"
	"github.com/penwyp/go-tuxsplit/internal/core/timing"
)

// Transaction is a staged edit session over a private copy of a run.
// Out-of-range indices and negative durations are ignored rather than
// reported, matching the silent-failure policy of the editing surface.
// A Transaction is not safe for concurrent use.
type Transaction struct {
	snapshot *model.Run
	working  *model.Run
	selected []int
	method   timing.Method
	done     bool
}

// Open starts an edit session against run. The session operates on deep
// copies, so the run passed in is never observed mid-edit. The session
// starts with no segments selected and RealTime as the active method.
func Open(run *model.Run) *Transaction {
	return &Transaction{
		snapshot: run.Clone(),
		working:  run.Clone(),
	}
}

// Select makes index the only edit target. Indices outside the segment
// range are ignored and leave the previous selection in place.
func (t *Transaction) Select(index int) {
	if t.done || index < 0 || index >= t.working.Len() {
		return
	}
	t.selected = append(t.selected[:0], index)
}

// SelectAdditionally adds index to the edit targets. Indices outside
// the segment range or already selected are ignored.
func (t *Transaction) SelectAdditionally(index int) {
	if t.done || index < 0 || index >= t.working.Len() {
		return
	}
	for _, sel := range t.selected {
		if sel == index {
			return
		}
	}
	t.selected = append(t.selected, index)
}

// Unselect removes index from the edit targets. Used to scope
// multi-field edits to one segment before moving to the next.
func (t *Transaction) Unselect(index int) {
	if t.done {
		return
	}
	for i, sel := range t.selected {
		if sel == index {
			t.selected = append(t.selected[:i], t.selected[i+1:]...)
			return
		}
	}
}

// SelectTimingMethod sets which timebase subsequent time edits affect.
func (t *Transaction) SelectTimingMethod(m timing.Method) {
	if t.done {
		return
	}
	t.method = m
}

// ActiveSegment returns the most recently selected segment of the
// working copy, or nil when nothing is selected.
func (t *Transaction) ActiveSegment() *model.Segment {
	if t.done || len(t.selected) == 0 {
		return nil
	}
	return t.working.Segment(t.selected[len(t.selected)-1])
}

// SetComparisonTime writes ts for the named comparison on every
// selected segment under the active method. A nil span clears the
// stored time; negative spans are ignored.
func (t *Transaction) SetComparisonTime(comparison string, ts *timing.TimeSpan) {
	if t.rejects(ts) {
		return
	}
	for _, i := range t.selected {
		t.working.Segment(i).SetComparisonTime(comparison, t.method, ts)
	}
}

// SetSegmentTime writes the current attempt's split time on every
// selected segment under the active method. Same nil and negative
// handling as SetComparisonTime.
func (t *Transaction) SetSegmentTime(ts *timing.TimeSpan) {
	if t.rejects(ts) {
		return
	}
	for _, i := range t.selected {
		seg := t.working.Segment(i)
		seg.SplitTime = seg.SplitTime.WithMethod(t.method, ts)
	}
}

// SetBestSegmentTime writes the gold time on every selected segment
// under the active method. Same nil and negative handling as
// SetComparisonTime.
func (t *Transaction) SetBestSegmentTime(ts *timing.TimeSpan) {
	if t.rejects(ts) {
		return
	}
	for _, i := range t.selected {
		seg := t.working.Segment(i)
		seg.BestSegmentTime = seg.BestSegmentTime.WithMethod(t.method, ts)
	}
}

func (t *Transaction) rejects(ts *timing.TimeSpan) bool {
	return t.done || (ts != nil && ts.IsNegative())
}

// Close materializes the staged edits as a new run and ends the
// session. The transformation is pure: no store is touched and no
// notification fires here.
func (t *Transaction) Close() *model.Run {
	t.done = true
	return t.working
}

// Cancel discards every staged edit, ends the session, and returns the
// run exactly as it was when the session opened.
func (t *Transaction) Cancel() *model.Run {
	t.done = true
	return t.snapshot
}
