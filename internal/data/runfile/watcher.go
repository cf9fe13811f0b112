package runfile

import (
	"path/filepath"

	"github.com/fsnotify/fsnotify"

	"github.com/penwyp/go-tuxsplit/internal/logger"
	"github.com/penwyp/go-tuxsplit/internal/util"
)

// Event describes one observed change to the run document.
type Event struct {
	Path string
	Op   string
}

// Watcher reports external changes to a single run document. It
// watches the parent directory rather than the file: save-by-rename
// replaces the file node, which would silently detach a watch placed
// on the file itself.
type Watcher struct {
	fsw    *fsnotify.Watcher
	path   string
	events chan Event
	last   *util.FileInfo
}

// NewWatcher starts watching the run document at path.
func NewWatcher(path string) (*Watcher, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, err
	}

	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	if err := fsw.Add(filepath.Dir(abs)); err != nil {
		fsw.Close()
		return nil, err
	}

	w := &Watcher{
		fsw:    fsw,
		path:   abs,
		events: make(chan Event, 1),
	}
	// Baseline so the first event after startup is not suppressed as a
	// duplicate of the load that already happened.
	w.last, _ = util.GetFileInfo(abs)

	go w.processEvents()
	return w, nil
}

func (w *Watcher) processEvents() {
	for {
		select {
		case event, ok := <-w.fsw.Events:
			if !ok {
				return
			}
			if filepath.Clean(event.Name) != w.path {
				continue
			}
			if !event.Op.Has(fsnotify.Write | fsnotify.Create | fsnotify.Rename) {
				continue
			}
			info, err := util.GetFileInfo(w.path)
			if err != nil {
				// Mid-rename or deleted; the next event settles it.
				continue
			}
			if info.Same(w.last) {
				continue
			}
			w.last = info

			// Coalesce bursts: one pending event is enough to trigger
			// a reload of the whole document.
			select {
			case w.events <- Event{Path: w.path, Op: event.Op.String()}:
			default:
			}

		case err, ok := <-w.fsw.Errors:
			if !ok {
				return
			}
			logger.Warn().Err(err).Msg("run file watch error")
		}
	}
}

// Events returns the change channel. Bursts are coalesced, so a
// receiver sees at least one event per settled change, not one per
// filesystem operation.
func (w *Watcher) Events() <-chan Event {
	return w.events
}

// Close stops the watcher and its event goroutine.
func (w *Watcher) Close() error {
	return w.fsw.Close()
}
