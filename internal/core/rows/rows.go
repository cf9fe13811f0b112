// Package rows maintains the ordered display rows backing the split
// table view. The model is rebuilt when the segment count changes and
// refreshed in place otherwise, so views bound to row identity see
// stable rows across value-only updates.
package rows

import (
	"github.com/penwyp/go-tuxsplit/internal/core/comparison"
	"github.com/penwyp/go-tuxsplit/internal/core/model"
	"github.com/penwyp/go-tuxsplit/internal/core/timing"
)

// Row is one display line of the split table. All time values are
// preformatted; absent values are empty strings except BestDelta,
// which always renders.
type Row struct {
	Index        int
	Name         string
	SplitTime    string
	SegmentDelta string
	BestDelta    string
}

// Model derives and caches the row sequence for one comparison. It is
// owned by a single goroutine; callers coordinate refreshes themselves.
type Model struct {
	comparison string
	formatter  *timing.Formatter
	rows       []Row
}

// NewModel creates an empty model deriving rows against the named
// comparison, formatting times with f.
func NewModel(comparisonName string, f *timing.Formatter) *Model {
	return &Model{
		comparison: comparisonName,
		formatter:  f,
	}
}

// Rebuild discards all rows and regenerates them from run. Use when
// the segment count may have changed.
func (m *Model) Rebuild(run *model.Run, method timing.Method) {
	m.rows = make([]Row, run.Len())
	m.fill(run, method)
}

// Refresh updates the existing rows in place when the segment count is
// unchanged, and falls back to Rebuild otherwise.
func (m *Model) Refresh(run *model.Run, method timing.Method) {
	if run.Len() != len(m.rows) {
		m.Rebuild(run, method)
		return
	}
	m.fill(run, method)
}

func (m *Model) fill(run *model.Run, method timing.Method) {
	for i := range m.rows {
		v := comparison.ComputeRow(run.Segments, i, m.comparison, method, m.formatter)
		m.rows[i] = Row{
			Index:        i,
			Name:         v.Name,
			SplitTime:    v.SplitTime,
			SegmentDelta: v.SegmentDelta,
			BestDelta:    v.BestDelta,
		}
	}
}

// Rows returns a copy of the current row sequence.
func (m *Model) Rows() []Row {
	out := make([]Row, len(m.rows))
	copy(out, m.rows)
	return out
}

// Len returns the current row count.
func (m *Model) Len() int {
	return len(m.rows)
}
