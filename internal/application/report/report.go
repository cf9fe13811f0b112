// Package report runs the one-shot reporting pipeline behind the root
// command: load the run document, derive comparison rows, and print
// them in the requested output format.
package report

import (
	"fmt"
	"strings"
	"time"

	"github.com/penwyp/go-tuxsplit/internal/core/model"
	"github.com/penwyp/go-tuxsplit/internal/core/rows"
	"github.com/penwyp/go-tuxsplit/internal/core/timing"
	"github.com/penwyp/go-tuxsplit/internal/data/runfile"
	"github.com/penwyp/go-tuxsplit/internal/logger"
	"github.com/penwyp/go-tuxsplit/internal/presentation/formatter"
)

type Config struct {
	RunFile      string
	Comparison   string
	Method       timing.Method
	Precision    int
	OutputFormat string
}

type Reporter struct {
	config *Config
}

func New(config *Config) *Reporter {
	return &Reporter{config: config}
}

// Run executes the pipeline: load, validate, derive, output.
func (r *Reporter) Run() error {
	startTime := time.Now()

	// Phase 1: load the run document, falling back to the default run
	// when none exists yet.
	loadStart := time.Now()
	run, err := runfile.LoadOrDefault(r.config.RunFile)
	if err != nil {
		return fmt.Errorf("load run: %w", err)
	}
	logger.Debug().
		Dur("elapsed", time.Since(loadStart)).
		Str("file", r.config.RunFile).
		Int("segments", run.Len()).
		Msg("Phase 1 - run document loaded")

	// Phase 2: the requested comparison must be one the run tracks.
	if err := validateComparison(run, r.config.Comparison); err != nil {
		return err
	}

	// Phase 3: derive rows.
	deriveStart := time.Now()
	rowModel := rows.NewModel(r.config.Comparison, timing.NewFormatter(r.config.Precision))
	rowModel.Rebuild(run, r.config.Method)
	logger.Debug().
		Dur("elapsed", time.Since(deriveStart)).
		Int("rows", rowModel.Len()).
		Msg("Phase 3 - comparison rows derived")

	// Phase 4: format and output.
	data := &formatter.ReportData{
		Game:         run.GameName,
		Category:     run.CategoryName,
		AttemptCount: run.AttemptCount,
		Comparison:   r.config.Comparison,
		Method:       r.config.Method.String(),
		Rows:         rowModel.Rows(),
	}
	err = r.formatAndOutput(data)

	logger.Debug().
		Dur("elapsed", time.Since(startTime)).
		Str("output", r.config.OutputFormat).
		Msg("report complete")
	return err
}

func (r *Reporter) formatAndOutput(data *formatter.ReportData) error {
	switch r.config.OutputFormat {
	case "json":
		return formatter.NewJSONFormatter().Format(data)
	case "csv":
		return formatter.NewCSVFormatter().Format(data)
	case "summary":
		return formatter.NewSummaryFormatter().Format(data)
	default:
		return formatter.NewTableFormatter().Format(data)
	}
}

func validateComparison(run *model.Run, name string) error {
	if run.HasComparison(name) {
		return nil
	}
	return fmt.Errorf("run does not track comparison %q (known: %s)",
		name, strings.Join(run.Comparisons, ", "))
}
