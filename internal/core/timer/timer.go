// Package timer holds the narrow timing-engine collaborator consumed by the
// editing and display layers: the canonical run, plus the attempt state that
// can be derived from it. The full clock and phase state machine of a live
// timing engine stays outside this repository.
package timer

import (
	"fmt"

	"github.com/penwyp/go-tuxsplit/internal/core/model"
	"github.com/penwyp/go-tuxsplit/internal/core/timing"
)

// Phase describes where the current attempt stands.
type Phase int

const (
	NotRunning Phase = iota
	Running
	Ended
	// Paused is part of the phase vocabulary reported by live timing
	// engines; a document-backed timer never derives it.
	Paused
)

func (p Phase) String() string {
	switch p {
	case Running:
		return "Running"
	case Ended:
		return "Ended"
	case Paused:
		return "Paused"
	default:
		return "Not Running"
	}
}

// Timer owns the canonical run and derives attempt state from the split
// times recorded on its segments. It carries no locking of its own; the
// shared store serializes access.
type Timer struct {
	run *model.Run
}

// New builds a timer over the given run. Construction fails when the run
// cannot back a timer; callers treat that as fatal at startup.
func New(run *model.Run) (*Timer, error) {
	if err := run.Validate(); err != nil {
		return nil, fmt.Errorf("create timer: %w", err)
	}
	return &Timer{run: run}, nil
}

// Run returns the live run document. Callers that mutate must stage their
// changes on a clone and commit the result through SetRun.
func (t *Timer) Run() *model.Run {
	return t.run
}

// SetRun swaps in a replacement run. An invalid replacement is rejected and
// the previous run stays in place.
func (t *Timer) SetRun(run *model.Run) error {
	if err := run.Validate(); err != nil {
		return fmt.Errorf("replace run: %w", err)
	}
	t.run = run
	return nil
}

// CurrentSplitIndex reports the segment the attempt is currently inside
// under the given method: -1 before any split is recorded, the segment
// count once the final segment has one. Skipped segments count as passed.
func (t *Timer) CurrentSplitIndex(m timing.Method) int {
	last := t.lastSplit(m)
	if last < 0 {
		return -1
	}
	return last + 1
}

// Phase derives the attempt phase from the recorded splits.
func (t *Timer) Phase(m timing.Method) Phase {
	switch idx := t.CurrentSplitIndex(m); {
	case idx < 0:
		return NotRunning
	case idx >= t.run.Len():
		return Ended
	default:
		return Running
	}
}

// CurrentAttemptDuration reports how far the attempt has progressed: the
// furthest recorded split time, or zero when no split is recorded yet.
func (t *Timer) CurrentAttemptDuration(m timing.Method) timing.TimeSpan {
	last := t.lastSplit(m)
	if last < 0 {
		return 0
	}
	return *t.run.Segments[last].SplitTime.Get(m)
}

// lastSplit finds the index of the furthest segment with a recorded split
// under the method, or -1.
func (t *Timer) lastSplit(m timing.Method) int {
	for i := t.run.Len() - 1; i >= 0; i-- {
		if t.run.Segments[i].SplitTime.Get(m) != nil {
			return i
		}
	}
	return -1
}
