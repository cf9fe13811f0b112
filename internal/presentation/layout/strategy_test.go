package layout

import (
	"testing"

	"github.com/penwyp/go-tuxsplit/internal/util"
)

func sampleFrame() *Frame {
	return &Frame{
		Game:         "Super Mario Sunshine",
		Category:     "Any%",
		AttemptCount: 37,
		Comparison:   "PB",
		Method:       "real",
		Phase:        "Running",
		AttemptTime:  "4:41.000",
		CurrentIndex: 1,
		SumOfBest:    "10:05.000",
		Clock:        "14:02:31",
		Rows: []Row{
			{Index: 0, Name: "Bianco Hills", SegmentDelta: util.FormatAhead("-0.450"), BestDelta: "0.000", SplitTime: "4:12.000", AttemptTime: "4:11.550"},
			{Index: 1, Name: "Ricco Harbor", SegmentDelta: "", BestDelta: "3.100", SplitTime: "9:30.000", AttemptTime: "WIP"},
			{Index: 2, Name: "Gelato Beach", SegmentDelta: "", BestDelta: "2.000", SplitTime: "14:55.000", AttemptTime: "--"},
		},
	}
}

func TestGetLayoutStrategy(t *testing.T) {
	tests := []struct {
		name        string
		layoutStyle int
		wantName    string
	}{
		{name: "full_style", layoutStyle: 0, wantName: "Full Splits"},
		{name: "compact_style", layoutStyle: 1, wantName: "Compact Splits"},
		{name: "unknown_style_defaults_to_full", layoutStyle: 99, wantName: "Full Splits"},
		{name: "negative_style_defaults_to_full", layoutStyle: -1, wantName: "Full Splits"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			strategy := GetLayoutStrategy(tt.layoutStyle)
			if strategy == nil {
				t.Fatal("GetLayoutStrategy returned nil")
			}
			if got := strategy.GetName(); got != tt.wantName {
				t.Errorf("GetName() = %v, want %v", got, tt.wantName)
			}
		})
	}
}

func TestStrategiesRenderWithoutState(t *testing.T) {
	// An idle frame with no rows must not panic or index out of range.
	frame := &Frame{
		Game:         "Game",
		Category:     "Category",
		Comparison:   "PB",
		Method:       "real",
		Phase:        "Not Running",
		AttemptTime:  "0:00.000",
		CurrentIndex: -1,
	}

	strategies := []LayoutStrategy{
		&FullLayoutStrategy{},
		&CompactLayoutStrategy{},
	}
	for _, strategy := range strategies {
		t.Run(strategy.GetName(), func(t *testing.T) {
			lines := strategy.Render(frame, 74)
			if len(lines) == 0 {
				t.Error("Render() returned no lines")
			}
		})
	}
}
