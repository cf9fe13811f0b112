package formatter

import (
	"encoding/csv"
	"os"
	"strconv"
)

// CSVFormatter renders the report as CSV, one record per segment.
type CSVFormatter struct{}

func NewCSVFormatter() *CSVFormatter {
	return &CSVFormatter{}
}

func (f *CSVFormatter) Format(data *ReportData) error {
	w := csv.NewWriter(os.Stdout)

	headers := []string{"Index", "Segment", "Split Time", "Segment Time", "Best Segment"}
	if err := w.Write(headers); err != nil {
		return err
	}

	for _, row := range data.Rows {
		record := []string{
			strconv.Itoa(row.Index),
			row.Name,
			row.SplitTime,
			row.SegmentDelta,
			row.BestDelta,
		}
		if err := w.Write(record); err != nil {
			return err
		}
	}

	w.Flush()
	return w.Error()
}
