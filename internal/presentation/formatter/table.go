package formatter

import (
	"fmt"
	"strings"

	"github.com/penwyp/go-tuxsplit/internal/core/comparison"
	"github.com/penwyp/go-tuxsplit/internal/core/rows"
	"github.com/penwyp/go-tuxsplit/internal/util"
)

// TableFormatter renders the split table as a bordered terminal table.
type TableFormatter struct {
	headers []string
}

func NewTableFormatter() *TableFormatter {
	return &TableFormatter{
		headers: []string{"#", "Segment", "Split Time", "Segment Time", "Best Segment"},
	}
}

func (f *TableFormatter) Format(data *ReportData) error {
	fmt.Printf("%s - %s\n", data.Game, data.Category)
	fmt.Printf("Comparing against: %s (%s time) | Attempts: %d\n",
		comparison.Label(data.Comparison), data.Method, data.AttemptCount)

	widths := f.calculateColumnWidths(data.Rows)

	f.printBorder(widths, "top")
	f.printRow(f.headers, widths)
	f.printBorder(widths, "middle")
	for _, row := range data.Rows {
		f.printRow(f.cells(row), widths)
	}
	f.printBorder(widths, "bottom")

	return nil
}

// cells flattens a row into table column order. The index column
// matches the --segment argument of the edit command.
func (f *TableFormatter) cells(row rows.Row) []string {
	return []string{
		fmt.Sprintf("%d", row.Index),
		row.Name,
		row.SplitTime,
		row.SegmentDelta,
		row.BestDelta,
	}
}

// calculateColumnWidths sizes each column to its widest cell, measured
// in display cells so wide runes in segment names line up.
func (f *TableFormatter) calculateColumnWidths(rs []rows.Row) []int {
	widths := make([]int, len(f.headers))
	for i, header := range f.headers {
		widths[i] = util.GetDisplayWidth(header)
	}
	for _, row := range rs {
		for i, cell := range f.cells(row) {
			if w := util.GetDisplayWidth(cell); w > widths[i] {
				widths[i] = w
			}
		}
	}
	return widths
}

// printBorder prints table borders (top, middle, bottom)
func (f *TableFormatter) printBorder(widths []int, borderType string) {
	var left, middle, right, separator string

	switch borderType {
	case "top":
		left, middle, right, separator = "┌", "┬", "┐", "─"
	case "middle":
		left, middle, right, separator = "├", "┼", "┤", "─"
	case "bottom":
		left, middle, right, separator = "└", "┴", "┘", "─"
	}

	fmt.Print(left)
	for i, width := range widths {
		fmt.Print(strings.Repeat(separator, width+2)) // +2 for padding spaces
		if i < len(widths)-1 {
			fmt.Print(middle)
		}
	}
	fmt.Println(right)
}

// printRow prints one row, segment names left-aligned and every time
// column right-aligned.
func (f *TableFormatter) printRow(values []string, widths []int) {
	fmt.Print("│")
	for i, value := range values {
		if i == 1 {
			fmt.Printf(" %s │", util.PadRight(value, widths[i]))
		} else {
			fmt.Printf(" %s │", util.PadLeft(value, widths[i]))
		}
	}
	fmt.Println()
}
