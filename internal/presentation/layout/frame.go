// Package layout turns a live view frame into terminal lines. Strategies
// produce plain string slices so the display layer can diff consecutive
// frames and repaint only the lines that changed.
package layout

// Row is one rendered segment line of the live split table. All values
// arrive preformatted; delta cells may carry ANSI color, so width math
// downstream must measure display width, not byte length.
type Row struct {
	Index        int
	Name         string
	SegmentDelta string
	BestDelta    string
	SplitTime    string
	AttemptTime  string
}

// Frame is the complete state of one live view refresh.
type Frame struct {
	Game         string
	Category     string
	AttemptCount int
	Comparison   string // short comparison label for the footer
	Method       string // timing method label, "real" or "game"
	Phase        string
	AttemptTime  string // formatted duration of the attempt in progress
	CurrentIndex int    // segment the attempt is inside, -1 when idle
	SumOfBest    string // empty until every segment has a best time
	Clock        string // wall-clock stamp of this refresh
	Rows         []Row
}
