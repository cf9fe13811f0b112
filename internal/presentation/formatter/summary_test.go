package formatter

import (
	"strings"
	"testing"
)

func TestNewSummaryFormatter(t *testing.T) {
	formatter := NewSummaryFormatter()
	if formatter == nil {
		t.Fatal("NewSummaryFormatter returned nil")
	}
}

func TestSummaryFormatterFormat(t *testing.T) {
	formatter := NewSummaryFormatter()

	output := captureOutput(t, func() {
		if err := formatter.Format(sampleReport()); err != nil {
			t.Errorf("Format() error = %v", err)
		}
	})

	wantInBody := []string{
		"Run Summary",
		"Game:       Super Mario Sunshine",
		"Category:   Any%",
		"Attempts:   37",
		"Comparison: PB (real time)",
		"3 total, 2 with recorded times",
		"Final Time: 10:40.120",
	}
	for _, want := range wantInBody {
		if !strings.Contains(output, want) {
			t.Errorf("Expected output to contain %q.\nGot:\n%s", want, output)
		}
	}
}

func TestSummaryFormatterEmptyRun(t *testing.T) {
	formatter := NewSummaryFormatter()

	report := sampleReport()
	report.Rows = nil

	output := captureOutput(t, func() {
		if err := formatter.Format(report); err != nil {
			t.Errorf("Format() error = %v", err)
		}
	})

	if !strings.Contains(output, "0 total, 0 with recorded times") {
		t.Errorf("expected empty-run counts.\nGot:\n%s", output)
	}
	if !strings.Contains(output, "Final Time: (none recorded)") {
		t.Errorf("expected placeholder final time.\nGot:\n%s", output)
	}
}
