package formatter

import "github.com/penwyp/go-tuxsplit/internal/core/rows"

// ReportData is everything a formatter needs to render one run report.
// Comparison holds the canonical comparison name; formatters decide
// whether to print it raw or through its display label.
type ReportData struct {
	Game         string
	Category     string
	AttemptCount int
	Comparison   string
	Method       string
	Rows         []rows.Row
}

// Formatter renders a report to stdout.
type Formatter interface {
	Format(data *ReportData) error
}
