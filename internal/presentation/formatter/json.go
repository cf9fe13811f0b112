package formatter

import (
	"fmt"

	"github.com/bytedance/sonic"
)

// JSONFormatter renders the report as indented JSON for scripting.
type JSONFormatter struct{}

func NewJSONFormatter() *JSONFormatter {
	return &JSONFormatter{}
}

type jsonReport struct {
	Game         string    `json:"game"`
	Category     string    `json:"category"`
	AttemptCount int       `json:"attempt_count"`
	Comparison   string    `json:"comparison"`
	Method       string    `json:"timing_method"`
	Rows         []jsonRow `json:"rows"`
}

type jsonRow struct {
	Index       int    `json:"index"`
	Name        string `json:"name"`
	SplitTime   string `json:"split_time,omitempty"`
	SegmentTime string `json:"segment_time,omitempty"`
	BestSegment string `json:"best_segment"`
}

func (f *JSONFormatter) Format(data *ReportData) error {
	report := jsonReport{
		Game:         data.Game,
		Category:     data.Category,
		AttemptCount: data.AttemptCount,
		Comparison:   data.Comparison,
		Method:       data.Method,
		Rows:         make([]jsonRow, 0, len(data.Rows)),
	}
	for _, row := range data.Rows {
		report.Rows = append(report.Rows, jsonRow{
			Index:       row.Index,
			Name:        row.Name,
			SplitTime:   row.SplitTime,
			SegmentTime: row.SegmentDelta,
			BestSegment: row.BestDelta,
		})
	}

	out, err := sonic.MarshalIndent(report, "", "  ")
	if err != nil {
		return err
	}
	fmt.Println(string(out))
	return nil
}
