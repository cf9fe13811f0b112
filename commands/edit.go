package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/penwyp/go-tuxsplit/internal/application/edit"
	"github.com/penwyp/go-tuxsplit/internal/core/notify"
	"github.com/penwyp/go-tuxsplit/internal/core/store"
	"github.com/penwyp/go-tuxsplit/internal/core/timer"
	"github.com/penwyp/go-tuxsplit/internal/data/runfile"
)

var (
	// Target selection
	editSegment int

	// Value edits
	editSplitTime   string
	editAttemptTime string
	editGoldTime    string

	// Clears
	editClearSplit   bool
	editClearAttempt bool
	editClearGold    bool
)

var editCmd = &cobra.Command{
	Use:   "edit --segment N [flags]",
	Short: "Apply a single edit to the run document",
	Long: `Edits one stored time of one segment and saves the document.

Times are written the way they read on a timer: "1:23:45.678",
"23:45.678", "45.678" or "45". A split time edits the configured
comparison's entry for the segment (use --comparison to target a
different one); an attempt time edits the current attempt's recorded
split for the segment; a gold time edits the segment's best ever time.

Edits that cannot change anything, such as an out-of-range segment
index, leave the document untouched and print nothing.

Examples:
  tuxsplit edit --segment 2 --split-time 12:34.500
  tuxsplit edit --segment 2 --split-time 11:58.000 --comparison "Best Segments"
  tuxsplit edit --segment 0 --gold 41.900
  tuxsplit edit --segment 1 --attempt 3:28.000
  tuxsplit edit --segment 4 --clear-gold`,
	RunE: runEdit,
}

func init() {
	rootCmd.AddCommand(editCmd)

	editCmd.Flags().IntVar(&editSegment, "segment", 0,
		"Segment index to edit (0-based)")
	editCmd.MarkFlagRequired("segment")

	editCmd.Flags().StringVar(&editSplitTime, "split-time", "",
		"Set the comparison split time")
	editCmd.Flags().StringVar(&editAttemptTime, "attempt", "",
		"Set the attempt's split time")
	editCmd.Flags().StringVar(&editGoldTime, "gold", "",
		"Set the best segment time")
	editCmd.Flags().BoolVar(&editClearSplit, "clear-split", false,
		"Clear the comparison split time")
	editCmd.Flags().BoolVar(&editClearAttempt, "clear-attempt", false,
		"Clear the attempt's split time")
	editCmd.Flags().BoolVar(&editClearGold, "clear-gold", false,
		"Clear the best segment time")

	editCmd.MarkFlagsOneRequired(
		"split-time", "attempt", "gold",
		"clear-split", "clear-attempt", "clear-gold")
	editCmd.MarkFlagsMutuallyExclusive(
		"split-time", "attempt", "gold",
		"clear-split", "clear-attempt", "clear-gold")
}

func runEdit(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	if err := initLogger(cfg, true); err != nil {
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

	// The notifier tells us whether the edit actually landed; only a
	// committed run is worth writing back.
	notifier := notify.New()
	committed := false
	notifier.OnRunChanged(func() { committed = true })

	editor := edit.New(st, notifier, cfg.General.Comparison, cfg.Method())

	flags := cmd.Flags()
	var field string
	switch {
	case flags.Changed("split-time"):
		field = "split time"
		err = editor.SetSplitTimeText(editSegment, editSplitTime)
	case flags.Changed("attempt"):
		field = "attempt time"
		err = editor.SetSegmentTimeText(editSegment, editAttemptTime)
	case flags.Changed("gold"):
		field = "best segment time"
		err = editor.SetBestSegmentTimeText(editSegment, editGoldTime)
	case editClearSplit:
		field = "split time"
		editor.ClearSplitTime(editSegment)
	case editClearAttempt:
		field = "attempt time"
		editor.ClearSegmentTime(editSegment)
	case editClearGold:
		field = "best segment time"
		editor.ClearBestSegmentTime(editSegment)
	}
	if err != nil {
		return err
	}
	if !committed {
		return nil
	}

	if err := runfile.Save(st.Snapshot(), cfg.General.RunFile); err != nil {
		return fmt.Errorf("save run: %w", err)
	}
	fmt.Printf("Updated %s of segment %d in %s\n", field, editSegment, cfg.General.RunFile)
	return nil
}
