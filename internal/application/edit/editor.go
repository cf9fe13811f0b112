// Package edit binds the staged-edit transaction to the shared run
// store: one entry point per editable cell, each running the full
// commit protocol. Try-write the store, stage the mutation against the
// current run, swap the result in, notify observers. On contention the
// edit is dropped rather than blocking the caller.
package edit

import (
	"github.com/penwyp/go-tuxsplit/internal/core/editor"
	"github.com/penwyp/go-tuxsplit/internal/core/notify"
	"github.com/penwyp/go-tuxsplit/internal/core/store"
	"github.com/penwyp/go-tuxsplit/internal/core/timer"
	"github.com/penwyp/go-tuxsplit/internal/core/timing"
	"github.com/penwyp/go-tuxsplit/internal/logger"
)

// Editor is the edit surface the presentation layer calls into, keyed
// by row index. Only validation failures surface as errors; an
// out-of-range index and a commit dropped on lock contention are
// silent, logged at debug level.
//
// An Editor belongs to the goroutine driving the edit surface. The
// store carries the cross-thread coordination; the Editor itself holds
// only session state (active comparison and timing method).
type Editor struct {
	store      *store.Store
	notifier   *notify.Notifier
	comparison string
	method     timing.Method
}

// New binds an edit surface to the store and notifier. Split-time
// edits target the named comparison; time edits apply under method
// until SetTimingMethod changes it.
func New(st *store.Store, n *notify.Notifier, comparison string, method timing.Method) *Editor {
	return &Editor{
		store:      st,
		notifier:   n,
		comparison: comparison,
		method:     method,
	}
}

// Comparison returns the comparison name split-time edits target.
func (e *Editor) Comparison() string {
	return e.comparison
}

// TimingMethod returns the timebase edits currently apply under.
func (e *Editor) TimingMethod() timing.Method {
	return e.method
}

// SetTimingMethod switches the timebase subsequent edits apply under.
// Observers are notified only when the method actually changes.
func (e *Editor) SetTimingMethod(m timing.Method) {
	if m == e.method {
		return
	}
	e.method = m
	e.notifier.NotifyTimingMethodChanged(m)
}

// SetSplitTimeText parses text and records it as the active
// comparison's split time for the segment at index. The parse error is
// returned for field flagging; nothing is mutated on failure.
func (e *Editor) SetSplitTimeText(index int, text string) error {
	return e.SetComparisonTimeText(e.comparison, index, text)
}

// SetComparisonTimeText parses text and records it as the named
// comparison's split time for the segment at index.
func (e *Editor) SetComparisonTimeText(comparison string, index int, text string) error {
	ts, err := timing.Parse(text)
	if err != nil {
		return err
	}
	e.SetComparisonTime(comparison, index, ts.Ptr())
	return nil
}

// SetSegmentTimeText parses text and records it as the attempt split
// time for the segment at index.
func (e *Editor) SetSegmentTimeText(index int, text string) error {
	ts, err := timing.Parse(text)
	if err != nil {
		return err
	}
	e.SetSegmentTime(index, ts.Ptr())
	return nil
}

// SetBestSegmentTimeText parses text and records it as the best
// segment time for the segment at index.
func (e *Editor) SetBestSegmentTimeText(index int, text string) error {
	ts, err := timing.Parse(text)
	if err != nil {
		return err
	}
	e.SetBestSegmentTime(index, ts.Ptr())
	return nil
}

// SetSplitTime records ts as the active comparison's split time for
// the segment at index. A nil span clears the stored time; negative
// spans are dropped silently.
func (e *Editor) SetSplitTime(index int, ts *timing.TimeSpan) {
	e.SetComparisonTime(e.comparison, index, ts)
}

// SetComparisonTime records ts as the named comparison's split time
// for the segment at index.
func (e *Editor) SetComparisonTime(comparison string, index int, ts *timing.TimeSpan) {
	if rejected(ts) {
		return
	}
	e.apply(index, func(tx *editor.Transaction) {
		tx.SetComparisonTime(comparison, ts)
	})
}

// SetSegmentTime records ts as the attempt split time for the segment
// at index.
func (e *Editor) SetSegmentTime(index int, ts *timing.TimeSpan) {
	if rejected(ts) {
		return
	}
	e.apply(index, func(tx *editor.Transaction) {
		tx.SetSegmentTime(ts)
	})
}

// SetBestSegmentTime records ts as the best segment time for the
// segment at index.
func (e *Editor) SetBestSegmentTime(index int, ts *timing.TimeSpan) {
	if rejected(ts) {
		return
	}
	e.apply(index, func(tx *editor.Transaction) {
		tx.SetBestSegmentTime(ts)
	})
}

// rejected filters spans no edit may store. The check runs before the
// commit path so a rejected value acquires no lock and fires no
// notification; nil passes through, it means clear.
func rejected(ts *timing.TimeSpan) bool {
	if ts != nil && ts.IsNegative() {
		logger.Debug().Dur("span", ts.Duration()).Msg("edit ignored: negative duration")
		return true
	}
	return false
}

// ClearSplitTime removes the active comparison's split time for the
// segment at index.
func (e *Editor) ClearSplitTime(index int) {
	e.SetComparisonTime(e.comparison, index, nil)
}

// ClearComparisonTime removes the named comparison's split time for
// the segment at index.
func (e *Editor) ClearComparisonTime(comparison string, index int) {
	e.SetComparisonTime(comparison, index, nil)
}

// ClearSegmentTime removes the attempt split time for the segment at
// index.
func (e *Editor) ClearSegmentTime(index int) {
	e.SetSegmentTime(index, nil)
}

// ClearBestSegmentTime removes the best segment time for the segment
// at index.
func (e *Editor) ClearBestSegmentTime(index int) {
	e.SetBestSegmentTime(index, nil)
}

// apply runs one staged edit end to end while holding the write lock:
// open a transaction on the current run, stage the mutation against
// the selected segment under the active method, and swap the closed
// result in. The run-changed notification fires after the write
// section has returned, so observers always see the new run.
func (e *Editor) apply(index int, stage func(tx *editor.Transaction)) {
	committed := false
	acquired := e.store.TryWrite(func(t *timer.Timer) {
		run := t.Run()
		if index < 0 || index >= run.Len() {
			// Tolerated race between UI index capture and a concurrent
			// segment-count change.
			logger.Debug().Int("index", index).Int("segments", run.Len()).
				Msg("edit ignored: segment index out of range")
			return
		}

		tx := editor.Open(run)
		tx.SelectAdditionally(index)
		tx.SelectTimingMethod(e.method)
		stage(tx)
		tx.Unselect(index)

		if err := t.SetRun(tx.Close()); err != nil {
			logger.Warn().Err(err).Msg("edit produced an unusable run; keeping previous")
			return
		}
		committed = true
	})
	if !acquired {
		logger.Debug().Int("index", index).
			Msg("edit dropped: run store is locked by another thread")
		return
	}
	if committed {
		e.notifier.NotifyRunChanged()
	}
}
