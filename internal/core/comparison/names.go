// Package comparison derives display values from a run's stored comparison
// times: the named comparisons themselves, their short display labels, and
// the per-row delta computation backing the segment table.
package comparison

// Canonical comparison names as they appear inside run documents.
const (
	PersonalBest    = "Personal Best"
	BestSegments    = "Best Segments"
	BestSplitTimes  = "Best Split Times"
	AverageSegments = "Average Segments"
	MedianSegments  = "Median Segments"
	WorstSegments   = "Worst Segments"
	BalancedPB      = "Balanced PB"
	LatestRun       = "Latest Run"
)

// Default returns the comparison list a fresh run tracks, in display order.
func Default() []string {
	return []string{
		PersonalBest,
		BestSegments,
		BestSplitTimes,
		AverageSegments,
		MedianSegments,
		WorstSegments,
		BalancedPB,
		LatestRun,
	}
}

var labels = map[string]string{
	PersonalBest:    "PB",
	BalancedPB:      "Balanced",
	BestSegments:    "SOB",
	BestSplitTimes:  "Best Split",
	AverageSegments: "Avg",
	MedianSegments:  "Median",
	WorstSegments:   "Worst Split",
	LatestRun:       "Latest",
}

// Label shortens a comparison name for column headers and status lines.
// Unknown names pass through unchanged so custom comparisons stay readable.
func Label(name string) string {
	if short, ok := labels[name]; ok {
		return short
	}
	return name
}
