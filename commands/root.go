package commands

import (
	"github.com/spf13/cobra"

	"github.com/penwyp/go-tuxsplit/internal/application/report"
	"github.com/penwyp/go-tuxsplit/internal/config"
	"github.com/penwyp/go-tuxsplit/internal/logger"
)

var (
	// Shared across all subcommands
	configPath string
	debug      bool

	// Run selection and comparison
	runFile        string
	comparisonName string
	timingMethod   string
	precision      int

	// Output related
	outputFormat string

	rootCmd = &cobra.Command{
		Use:   "tuxsplit [flags]",
		Short: "Speedrun split tracking and comparison tool",
		Long: `tuxsplit tracks speedrun attempts against stored comparisons and
reports how each segment measures up.

Without a subcommand it prints a one-shot report of the run document:
every segment with its comparison time, the segment length that time
implies, and the gap to the best segment ever recorded.

Examples:
  tuxsplit                                      # Report against the personal best
  tuxsplit --comparison "Best Segments"         # Report against the gold splits
  tuxsplit --method game --output json          # Game-time report as JSON
  tuxsplit --run-file ./sms.json -o csv         # Report a specific document as CSV
  tuxsplit watch                                # Live split table in the terminal
  tuxsplit edit --segment 2 --gold 58.250       # Rewrite one gold time`,
		RunE: runReport,
	}
)

func init() {
	// Configuration sources shared by every subcommand.
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "",
		"Config file path (default: config.yaml in the data directory)")
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false,
		"Enable debug logging")

	// Run selection and comparison context.
	rootCmd.PersistentFlags().StringVar(&runFile, "run-file", "",
		"Run document path (default: run.json in the data directory)")
	rootCmd.PersistentFlags().StringVar(&comparisonName, "comparison", "",
		`Comparison to derive rows against (e.g. "Personal Best", "Best Segments")`)
	rootCmd.PersistentFlags().StringVar(&timingMethod, "method", "",
		"Timing method (real, game)")
	rootCmd.PersistentFlags().IntVar(&precision, "precision", 0,
		"Fractional digits in formatted times (0-9)")

	// Output configuration for the one-shot report.
	rootCmd.Flags().StringVarP(&outputFormat, "output", "o", "table",
		"Output format (table, json, csv, summary)")
}

func runReport(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	if err := initLogger(cfg, true); err != nil {
		return err
	}

	r := report.New(&report.Config{
		RunFile:      cfg.General.RunFile,
		Comparison:   cfg.General.Comparison,
		Method:       cfg.Method(),
		Precision:    cfg.Display.Precision,
		OutputFormat: outputFormat,
	})
	return r.Run()
}

func Execute() error {
	return rootCmd.Execute()
}

// Helper functions

// loadConfig reads the configuration file and overlays any flags the
// user set explicitly. Flags win over file values, file values win
// over defaults.
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, err
	}

	flags := cmd.Flags()
	if flags.Changed("run-file") {
		cfg.General.RunFile = runFile
	}
	if flags.Changed("comparison") {
		cfg.General.Comparison = comparisonName
	}
	if flags.Changed("method") {
		cfg.General.TimingMethod = timingMethod
	}
	if flags.Changed("precision") {
		cfg.Display.Precision = precision
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// initLogger configures the global logger from the resolved config.
// console controls whether log lines also reach stderr; the live view
// passes false so nothing bleeds into the alternate screen.
func initLogger(cfg *config.Config, console bool) error {
	level := cfg.Log.Level
	if debug {
		level = "debug"
	}
	return logger.Init(level, cfg.Log.File, console)
}
