package layout

import (
	"fmt"
)

// CompactLayoutStrategy renders a single status line for narrow panes:
// the segment in progress, its live delta, and the attempt clock.
type CompactLayoutStrategy struct {
	BaseStrategy
}

func (s *CompactLayoutStrategy) GetName() string {
	return "Compact Splits"
}

func (s *CompactLayoutStrategy) Render(frame *Frame, width int) []string {
	segment := "-"
	delta := "-"
	if frame.CurrentIndex >= 0 && frame.CurrentIndex < len(frame.Rows) {
		row := frame.Rows[frame.CurrentIndex]
		segment = s.TruncateName(row.Name, width/4)
		if row.SegmentDelta != "" {
			delta = row.SegmentDelta
		}
	}

	line := fmt.Sprintf("🐧 %s - %s │ ▶ %s │ ± %s │ ⏱ %s %s │ vs %s",
		frame.Game, frame.Category,
		segment, delta,
		frame.AttemptTime, frame.Phase,
		frame.Comparison)

	return []string{line}
}
