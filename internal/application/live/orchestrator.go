// Package live owns the watch view: a ticker-driven terminal loop that
// renders the split table from the shared run store and reloads the
// store when the run document changes on disk.
package live

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/penwyp/go-tuxsplit/internal/core/notify"
	"github.com/penwyp/go-tuxsplit/internal/core/store"
	"github.com/penwyp/go-tuxsplit/internal/core/timer"
	"github.com/penwyp/go-tuxsplit/internal/data/runfile"
	"github.com/penwyp/go-tuxsplit/internal/logger"
	"github.com/penwyp/go-tuxsplit/internal/presentation/display"
	"github.com/penwyp/go-tuxsplit/internal/presentation/layout"
	"github.com/penwyp/go-tuxsplit/internal/util"
)

// Orchestrator coordinates the live view: the store and notifier it
// shares with the rest of the program, the frame producer, the terminal
// display, and the run-file watcher.
type Orchestrator struct {
	config   *Config
	store    *store.Store
	notifier *notify.Notifier

	view     *View
	display  *display.TerminalDisplay
	strategy layout.LayoutStrategy
	sizer    layout.Sizer

	watcher *runfile.Watcher

	// renderGate keeps render passes from stacking up: a pass already
	// in flight suppresses the overlapping request instead of queueing
	// it. The next tick repaints anyway.
	renderGate sync.Mutex
}

// NewOrchestrator validates the configuration and assembles the view
// components around the shared store and notifier.
func NewOrchestrator(cfg *Config, st *store.Store, n *notify.Notifier) (*Orchestrator, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid live view config: %w", err)
	}
	return &Orchestrator{
		config:   cfg,
		store:    st,
		notifier: n,
		view:     NewView(cfg, util.SystemClock{}),
		display:  display.NewTerminalDisplay(),
		strategy: layout.GetLayoutStrategy(cfg.LayoutStyle),
	}, nil
}

// Run drives the view until ctx is cancelled. It owns the terminal for
// the duration: the alternate screen is entered on start and restored
// on every return path.
func (o *Orchestrator) Run(ctx context.Context) error {
	logger.Info().
		Str("file", o.config.RunFile).
		Str("layout", o.strategy.GetName()).
		Float64("refresh_hz", o.config.RefreshPerSecond).
		Msg("starting live view")

	watcher, err := runfile.NewWatcher(o.config.RunFile)
	if err != nil {
		return fmt.Errorf("watch run file: %w", err)
	}
	o.watcher = watcher
	defer o.watcher.Close()

	// Committed edits repaint immediately instead of waiting out the
	// current tick interval.
	o.notifier.OnRunChanged(o.render)

	o.display.EnterAlternateScreen()
	defer o.display.ExitAlternateScreen()

	ticker := time.NewTicker(time.Duration(float64(time.Second) / o.config.RefreshPerSecond))
	defer ticker.Stop()

	o.render()

	for {
		select {
		case <-ctx.Done():
			logger.Info().Msg("live view shutting down")
			return nil

		case <-ticker.C:
			o.render()

		case ev := <-o.watcher.Events():
			o.reload(ev)
		}
	}
}

// render paints one frame from a consistent read of the store.
func (o *Orchestrator) render() {
	if !o.renderGate.TryLock() {
		return
	}
	defer o.renderGate.Unlock()

	var frame *layout.Frame
	o.store.Read(func(t *timer.Timer) {
		frame = o.view.Frame(t)
	})
	o.display.Render(o.strategy.Render(frame, o.sizer.GetMaxWidth()))
}

// reload swaps a freshly parsed run document into the store. The swap
// uses the same try-write-or-drop policy as edits: when the store is
// locked the reload is skipped and the next watcher event retries.
func (o *Orchestrator) reload(ev runfile.Event) {
	run, err := runfile.Load(o.config.RunFile)
	if err != nil {
		logger.Warn().Err(err).Str("op", ev.Op).Msg("run file changed but could not be reloaded")
		return
	}

	acquired, err := o.store.TryReplace(run)
	if !acquired {
		logger.Debug().Msg("reload dropped: run store is locked by another thread")
		return
	}
	if err != nil {
		logger.Warn().Err(err).Msg("reloaded run rejected; keeping the previous document")
		return
	}

	logger.Info().Int("segments", run.Len()).Str("op", ev.Op).Msg("run document reloaded")
	o.notifier.NotifyRunChanged()
}
