package commands

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/penwyp/go-tuxsplit/internal/application/live"
	"github.com/penwyp/go-tuxsplit/internal/core/notify"
	"github.com/penwyp/go-tuxsplit/internal/core/store"
	"github.com/penwyp/go-tuxsplit/internal/core/timer"
	"github.com/penwyp/go-tuxsplit/internal/data/runfile"
)

var (
	// Display related flags
	watchRefreshPerSecond float64
	watchLayout           string
)

var watchCmd = &cobra.Command{
	Use:   "watch",
	Short: "Watch the run document in a live split table",
	Long: `Renders the run document as a continuously updating split table,
similar to a timer overlay. The view reloads whenever the document
changes on disk, so edits from another process show up in place.

The table compares each segment against the configured comparison and
colors the live delta: green when ahead, red when behind, gold when
the segment beats its best ever time.

Press Ctrl+C to exit.`,
	RunE: runWatch,
}

func init() {
	rootCmd.AddCommand(watchCmd)

	// Display flags
	watchCmd.Flags().Float64Var(&watchRefreshPerSecond, "refresh-per-second", 0,
		"Display refresh rate in Hz (0.1-20)")
	watchCmd.Flags().StringVar(&watchLayout, "layout", "full",
		"Layout style (full, compact)")
}

func runWatch(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	if cmd.Flags().Changed("refresh-per-second") {
		cfg.Display.RefreshPerSecond = watchRefreshPerSecond
	}

	layoutStyle, err := parseLayout(watchLayout)
	if err != nil {
		return err
	}

	// The view owns the terminal, so log lines must not reach stderr
	// while the alternate screen is active.
	if err := initLogger(cfg, false); err != nil {
		return err
	}

	run, err := runfile.LoadOrDefault(cfg.General.RunFile)
	if err != nil {
		return err
	}
	tm, err := timer.New(run)
	if err != nil {
		return err
	}
	st := store.New(tm)
	notifier := notify.New()

	orchestrator, err := live.NewOrchestrator(&live.Config{
		RunFile:          cfg.General.RunFile,
		Comparison:       cfg.General.Comparison,
		Method:           cfg.Method(),
		Precision:        cfg.Display.Precision,
		RefreshPerSecond: cfg.Display.RefreshPerSecond,
		LayoutStyle:      layoutStyle,
	}, st, notifier)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	return orchestrator.Run(ctx)
}

func parseLayout(name string) (int, error) {
	switch name {
	case "full":
		return 0, nil
	case "compact":
		return 1, nil
	default:
		return 0, fmt.Errorf("invalid layout %q: must be either 'full' or 'compact'", name)
	}
}
