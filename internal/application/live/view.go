package live

import (
	"github.com/penwyp/go-tuxsplit/internal/core/comparison"
	"github.com/penwyp/go-tuxsplit/internal/core/model"
	"github.com/penwyp/go-tuxsplit/internal/core/rows"
	"github.com/penwyp/go-tuxsplit/internal/core/timer"
	"github.com/penwyp/go-tuxsplit/internal/core/timing"
	"github.com/penwyp/go-tuxsplit/internal/presentation/layout"
	"github.com/penwyp/go-tuxsplit/internal/util"
)

// Attempt-column placeholders: a segment the attempt has not reached,
// and the segment the attempt is currently inside.
const (
	placeholderUnreached = "--"
	placeholderCurrent   = "WIP"
)

// View turns one consistent read of the timer into a renderable frame.
// It owns the row model for the session, refreshing it on every frame
// so committed edits and document reloads show up on the next paint.
type View struct {
	comparison string
	method     timing.Method
	formatter  *timing.Formatter
	rows       *rows.Model
	clock      util.Clock
}

// NewView builds the frame producer for one watch session.
func NewView(cfg *Config, clock util.Clock) *View {
	f := timing.NewFormatter(cfg.Precision)
	return &View{
		comparison: cfg.Comparison,
		method:     cfg.Method,
		formatter:  f,
		rows:       rows.NewModel(cfg.Comparison, f),
		clock:      clock,
	}
}

// Frame derives the complete live view state from the timer. The
// caller must hold the store's read lock for the duration of the call.
func (v *View) Frame(t *timer.Timer) *layout.Frame {
	run := t.Run()
	v.rows.Refresh(run, v.method)

	phase := t.Phase(v.method)
	currentIndex := t.CurrentSplitIndex(v.method)

	frame := &layout.Frame{
		Game:         run.GameName,
		Category:     run.CategoryName,
		AttemptCount: run.AttemptCount,
		Comparison:   comparison.Label(v.comparison),
		Method:       v.method.String(),
		Phase:        phase.String(),
		AttemptTime:  v.formatter.FormatTimeSpan(t.CurrentAttemptDuration(v.method)),
		CurrentIndex: currentIndex,
		SumOfBest:    v.sumOfBest(run),
		Clock:        v.clock.Now().Format("15:04:05"),
		Rows:         make([]layout.Row, 0, run.Len()),
	}

	for _, row := range v.rows.Rows() {
		seg := run.Segment(row.Index)
		frame.Rows = append(frame.Rows, layout.Row{
			Index:        row.Index,
			Name:         row.Name,
			SegmentDelta: v.liveDelta(run, seg, row.Index),
			BestDelta:    row.BestDelta,
			SplitTime:    row.SplitTime,
			AttemptTime:  v.attemptCell(seg, row.Index, currentIndex, phase),
		})
	}
	return frame
}

// attemptCell renders the attempt column for one segment: the recorded
// split, WIP for the segment in progress, and -- for segments the
// attempt has not reached or skipped past.
func (v *View) attemptCell(seg *model.Segment, index, currentIndex int, phase timer.Phase) string {
	if split := seg.SplitTime.Get(v.method); split != nil {
		return v.formatter.FormatTimeSpan(*split)
	}
	if phase == timer.Running && index == currentIndex {
		return placeholderCurrent
	}
	return placeholderUnreached
}

// liveDelta renders the signed gap between the attempt's split and the
// comparison split, colored by sign: ahead green, behind red, gold when
// the attempt's segment time beats the recorded best. Empty when either
// side has no recorded time.
func (v *View) liveDelta(run *model.Run, seg *model.Segment, index int) string {
	attempt := seg.SplitTime.Get(v.method)
	reference := seg.ComparisonTime(v.comparison, v.method)
	if attempt == nil || reference == nil {
		return ""
	}

	text := v.signed(*attempt - *reference)
	if v.beatsGold(run, seg, index, *attempt) {
		return util.FormatGold(text)
	}
	if *attempt < *reference {
		return util.FormatAhead(text)
	}
	return util.FormatBehind(text)
}

// beatsGold reports whether the attempt's time for this segment alone
// undercuts the stored best segment time. A segment with no recorded
// best counts as beaten: the first completed attempt sets it.
func (v *View) beatsGold(run *model.Run, seg *model.Segment, index int, attemptSplit timing.TimeSpan) bool {
	segmentTime := attemptSplit.SaturatingSub(previousAttemptSplit(run, index, v.method))
	best := seg.BestSegmentTime.Get(v.method)
	return best == nil || segmentTime < *best
}

// previousAttemptSplit scans backward for the nearest earlier segment
// with a recorded attempt split, mirroring how comparison deltas find
// their reference point. Zero when no earlier split exists.
func previousAttemptSplit(run *model.Run, index int, m timing.Method) timing.TimeSpan {
	for k := index - 1; k >= 0; k-- {
		if split := run.Segments[k].SplitTime.Get(m); split != nil {
			return *split
		}
	}
	return 0
}

// sumOfBest totals the best segment times, or returns empty when any
// segment has none recorded yet.
func (v *View) sumOfBest(run *model.Run) string {
	var total timing.TimeSpan
	for i := range run.Segments {
		best := run.Segments[i].BestSegmentTime.Get(v.method)
		if best == nil {
			return ""
		}
		total += *best
	}
	return v.formatter.FormatTimeSpan(total)
}

// signed renders a delta with an explicit sign, the way split tables
// show gaps: "+1.250" behind, "-0.430" ahead.
func (v *View) signed(d timing.TimeSpan) string {
	text := v.formatter.FormatDuration(d)
	if !d.IsNegative() {
		text = "+" + text
	}
	return text
}
