package fixtures

import (
	"encoding/json"
	"os"
	"path/filepath"
)

// RunDocument mirrors the on-disk run document shape. The generator
// keeps its own copy of the schema so fixtures exercise the real codec
// instead of round-tripping through it.
type RunDocument struct {
	Game         string         `json:"game"`
	Category     string         `json:"category"`
	AttemptCount int            `json:"attempt_count"`
	Comparisons  []string       `json:"comparisons,omitempty"`
	Segments     []SegmentEntry `json:"segments"`
}

// SegmentEntry mirrors one segment of the run document.
type SegmentEntry struct {
	Name        string               `json:"name"`
	Best        *TimeEntry           `json:"best,omitempty"`
	Comparisons map[string]TimeEntry `json:"comparisons,omitempty"`
	Split       *TimeEntry           `json:"split,omitempty"`
}

// TimeEntry carries one optional duration in milliseconds per timing
// method.
type TimeEntry struct {
	Real *int64 `json:"real,omitempty"`
	Game *int64 `json:"game,omitempty"`
}

// Millis wraps a millisecond count for use in a TimeEntry.
func Millis(v int64) *int64 {
	return &v
}

// RealTime builds a TimeEntry holding only a real-time duration.
func RealTime(ms int64) TimeEntry {
	return TimeEntry{Real: Millis(ms)}
}

// TestRunGenerator writes run documents for command and e2e tests.
type TestRunGenerator struct {
	baseDir string
}

// NewTestRunGenerator creates a generator rooted at baseDir.
func NewTestRunGenerator(baseDir string) *TestRunGenerator {
	return &TestRunGenerator{
		baseDir: baseDir,
	}
}

// GenerateVerifiedRun writes a complete run document: a finished
// personal best, gold splits for every segment, and an attempt that is
// two splits into the run. Returns the document path.
func (g *TestRunGenerator) GenerateVerifiedRun(name string) (string, error) {
	pb := []int64{95500, 210030, 341250, 462700, 599990}
	golds := []int64{93200, 112000, 128500, 119300, 135100}
	goldSplits := []int64{93200, 205200, 333700, 453000, 588100}
	attempt := []int64{94800, 208000}
	names := []string{"Bianco Hills", "Ricco Harbor", "Gelato Beach", "Pinna Park", "Sirena Beach"}

	doc := &RunDocument{
		Game:         "Super Mario Sunshine",
		Category:     "Any%",
		AttemptCount: 37,
		Comparisons:  []string{"Personal Best", "Best Segments"},
	}
	for i, segName := range names {
		entry := SegmentEntry{
			Name: segName,
			Best: &TimeEntry{Real: Millis(golds[i])},
			Comparisons: map[string]TimeEntry{
				"Personal Best": RealTime(pb[i]),
				"Best Segments": RealTime(goldSplits[i]),
			},
		}
		if i < len(attempt) {
			entry.Split = &TimeEntry{Real: Millis(attempt[i])}
		}
		doc.Segments = append(doc.Segments, entry)
	}

	return g.WriteRunDocument(name, doc)
}

// GenerateSparseRun writes a run with holes: a zero-valued comparison
// entry, a segment with no comparison entry at all, and a segment
// missing its gold. Exercises the skip rules in delta derivation and
// the empty sum-of-best display.
func (g *TestRunGenerator) GenerateSparseRun(name string) (string, error) {
	doc := &RunDocument{
		Game:         "Hollow Knight",
		Category:     "Low%",
		AttemptCount: 4,
		Comparisons:  []string{"Personal Best", "Best Segments"},
		Segments: []SegmentEntry{
			{
				Name: "False Knight",
				Best: &TimeEntry{Real: Millis(182000)},
				Comparisons: map[string]TimeEntry{
					"Personal Best": RealTime(185300),
				},
			},
			{
				// Skipped in the PB attempt: entry stored as zero.
				Name: "Hornet",
				Best: &TimeEntry{Real: Millis(240500)},
				Comparisons: map[string]TimeEntry{
					"Personal Best": RealTime(0),
				},
			},
			{
				// No comparison entry and no gold.
				Name: "Mantis Lords",
			},
			{
				Name: "Soul Master",
				Best: &TimeEntry{Real: Millis(310000)},
				Comparisons: map[string]TimeEntry{
					"Personal Best": RealTime(1265800),
				},
			},
		},
	}

	return g.WriteRunDocument(name, doc)
}

// GenerateFreshRun writes a run with named segments and no recorded
// times, the state of a category before its first finished attempt.
func (g *TestRunGenerator) GenerateFreshRun(name string) (string, error) {
	doc := &RunDocument{
		Game:        "Celeste",
		Category:    "Any%",
		Comparisons: []string{"Personal Best", "Best Segments"},
		Segments: []SegmentEntry{
			{Name: "Forsaken City"},
			{Name: "Old Site"},
			{Name: "Celestial Resort"},
		},
	}

	return g.WriteRunDocument(name, doc)
}

// GenerateMalformedRun writes bytes that do not parse as a run
// document.
func (g *TestRunGenerator) GenerateMalformedRun(name string) (string, error) {
	path := filepath.Join(g.baseDir, name)
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return "", err
	}
	return path, os.WriteFile(path, []byte(`{"game": "broken", "segments": [`), 0644)
}

// WriteRunDocument writes doc under the generator's base directory and
// returns its path.
func (g *TestRunGenerator) WriteRunDocument(name string, doc *RunDocument) (string, error) {
	path := filepath.Join(g.baseDir, name)
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return "", err
	}

	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return "", err
	}
	return path, os.WriteFile(path, data, 0644)
}

// ReadRunDocument parses the document at path, for asserting on what a
// command wrote back.
func ReadRunDocument(path string) (*RunDocument, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	doc := &RunDocument{}
	if err := json.Unmarshal(data, doc); err != nil {
		return nil, err
	}
	return doc, nil
}

// GetBaseDir returns the base directory for test data.
func (g *TestRunGenerator) GetBaseDir() string {
	return g.baseDir
}
