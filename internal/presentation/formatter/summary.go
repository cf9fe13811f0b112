package formatter

import (
	"fmt"
	"strings"

	"github.com/penwyp/go-tuxsplit/internal/core/comparison"
)

// SummaryFormatter prints a short textual digest of the run instead of
// the full table.
type SummaryFormatter struct{}

// NewSummaryFormatter creates a new instance of SummaryFormatter.
func NewSummaryFormatter() *SummaryFormatter {
	return &SummaryFormatter{}
}

// Format outputs the run metadata plus how much of the comparison is
// filled in and where it ends.
func (f *SummaryFormatter) Format(data *ReportData) error {
	fmt.Println(strings.Repeat("=", 60))
	fmt.Println("Run Summary")
	fmt.Println(strings.Repeat("=", 60))
	fmt.Println()

	fmt.Printf("Game:       %s\n", data.Game)
	fmt.Printf("Category:   %s\n", data.Category)
	fmt.Printf("Attempts:   %d\n", data.AttemptCount)
	fmt.Printf("Comparison: %s (%s time)\n", comparison.Label(data.Comparison), data.Method)
	fmt.Println()

	recorded := 0
	finalTime := ""
	for _, row := range data.Rows {
		if row.SplitTime != "" {
			recorded++
			finalTime = row.SplitTime
		}
	}

	fmt.Printf("Segments:   %d total, %d with recorded times\n", len(data.Rows), recorded)
	if finalTime != "" {
		fmt.Printf("Final Time: %s\n", finalTime)
	} else {
		fmt.Println("Final Time: (none recorded)")
	}

	fmt.Println()
	fmt.Println(strings.Repeat("=", 60))

	return nil
}
