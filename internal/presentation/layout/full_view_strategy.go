package layout

import (
	"fmt"
	"strconv"

	"github.com/penwyp/go-tuxsplit/internal/util"
)

// FullLayoutStrategy renders the boxed split table: header, one line per
// segment, and a footer with the attempt clock and comparison context.
type FullLayoutStrategy struct {
	BaseStrategy
}

func (s *FullLayoutStrategy) GetName() string {
	return "Full Splits"
}

// Minimum display width kept for the segment name column before the
// grid gives up on fitting the frame.
const minNameWidth = 8

func (s *FullLayoutStrategy) Render(frame *Frame, width int) []string {
	lines := make([]string, 0, len(frame.Rows)+7)

	lines = append(lines, s.TopBorder(width))
	lines = append(lines, s.headerLine(frame, width))
	lines = append(lines, s.Separator(width))

	grid := s.measure(frame, width)
	lines = append(lines, s.columnHeader(frame, grid, width))
	for i := range frame.Rows {
		lines = append(lines, s.rowLine(frame, &frame.Rows[i], grid, width))
	}

	lines = append(lines, s.Separator(width))
	lines = append(lines, s.footerLine(frame, width))
	lines = append(lines, s.BottomBorder(width))

	return lines
}

func (s *FullLayoutStrategy) headerLine(frame *Frame, width int) string {
	left := fmt.Sprintf("🐧 TUXSPLIT  │  %s - %s", frame.Game, frame.Category)
	right := fmt.Sprintf("%s attempts  │  %s", util.FormatNumber(frame.AttemptCount), frame.Clock)
	return s.SpreadLine(left, right, width)
}

func (s *FullLayoutStrategy) footerLine(frame *Frame, width int) string {
	left := fmt.Sprintf("⏱  %s  %s", frame.AttemptTime, frame.Phase)

	sob := frame.SumOfBest
	if sob == "" {
		sob = "--"
	}
	right := fmt.Sprintf("vs %s (%s)  │  SOB %s", frame.Comparison, frame.Method, sob)

	return s.SpreadLine(left, right, width)
}

// grid holds the resolved column widths of the split table. The four
// time columns size to their content; the name column absorbs whatever
// frame width remains.
type grid struct {
	index int
	name  int
	delta int
	best  int
	split int
	time  int
}

func (s *FullLayoutStrategy) measure(frame *Frame, width int) grid {
	g := grid{
		index: util.GetDisplayWidth("#"),
		delta: util.GetDisplayWidth("+/-"),
		best:  util.GetDisplayWidth("Best"),
		split: util.GetDisplayWidth(frame.Comparison),
		time:  util.GetDisplayWidth("Time"),
	}
	for _, row := range frame.Rows {
		g.index = maxWidth(g.index, util.GetDisplayWidth(strconv.Itoa(row.Index+1)))
		g.delta = maxWidth(g.delta, util.GetDisplayWidth(row.SegmentDelta))
		g.best = maxWidth(g.best, util.GetDisplayWidth(row.BestDelta))
		g.split = maxWidth(g.split, util.GetDisplayWidth(row.SplitTime))
		g.time = maxWidth(g.time, util.GetDisplayWidth(row.AttemptTime))
	}

	// Borders with padding (4), marker cell (2), five two-space gaps.
	fixed := 16 + g.index + g.delta + g.best + g.split + g.time
	g.name = width - fixed
	if g.name < minNameWidth {
		g.name = minNameWidth
	}
	return g
}

func (s *FullLayoutStrategy) columnHeader(frame *Frame, g grid, width int) string {
	cells := fmt.Sprintf("%s  %s  %s  %s  %s  %s",
		util.PadLeft("#", g.index),
		util.PadRight("Segment", g.name),
		util.PadLeft("+/-", g.delta),
		util.PadLeft("Best", g.best),
		util.PadLeft(frame.Comparison, g.split),
		util.PadLeft("Time", g.time))
	return s.BoxLine("  "+cells, width)
}

func (s *FullLayoutStrategy) rowLine(frame *Frame, row *Row, g grid, width int) string {
	marker := " "
	if row.Index == frame.CurrentIndex {
		marker = "▶"
	}

	cells := fmt.Sprintf("%s  %s  %s  %s  %s  %s",
		util.PadLeft(strconv.Itoa(row.Index+1), g.index),
		util.PadRight(s.TruncateName(row.Name, g.name), g.name),
		util.PadLeft(row.SegmentDelta, g.delta),
		util.PadLeft(row.BestDelta, g.best),
		util.PadLeft(row.SplitTime, g.split),
		util.PadLeft(row.AttemptTime, g.time))
	return s.BoxLine(marker+" "+cells, width)
}

func maxWidth(a, b int) int {
	if b > a {
		return b
	}
	return a
}
