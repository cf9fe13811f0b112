// Package runfile persists run documents as JSON and watches them for
// external changes. Saves go through a temp file and rename so a
// watcher (or another process) never reads a half-written document.
package runfile

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/bytedance/sonic"

	"github.com/penwyp/go-tuxsplit/internal/core/comparison"
	"github.com/penwyp/go-tuxsplit/internal/core/model"
)

// Load reads and validates the run document at path.
func Load(path string) (*model.Run, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var doc Document
	if err := sonic.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("parse run file %s: %w", path, err)
	}
	if err := doc.Validate(); err != nil {
		return nil, fmt.Errorf("invalid run file %s: %w", path, err)
	}
	return doc.ToRun(), nil
}

// LoadOrDefault loads path, or returns the default run when no
// document exists there yet.
func LoadOrDefault(path string) (*model.Run, error) {
	run, err := Load(path)
	if errors.Is(err, fs.ErrNotExist) {
		return DefaultRun(), nil
	}
	return run, err
}

// Save writes run to path atomically. The document lands under a
// temporary name in the target directory first and is renamed over
// path, so concurrent readers observe either the old or the new
// version, never a partial one.
func Save(run *model.Run, path string) error {
	data, err := sonic.MarshalIndent(FromRun(run), "", "  ")
	if err != nil {
		return fmt.Errorf("encode run: %w", err)
	}

	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}

	tmp, err := os.CreateTemp(dir, ".run-*.json.tmp")
	if err != nil {
		return err
	}
	tmpName := tmp.Name()
	defer os.Remove(tmpName)

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return fmt.Errorf("write run file: %w", err)
	}
	if err := tmp.Sync(); err != nil {
		tmp.Close()
		return fmt.Errorf("sync run file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return err
	}
	if err := os.Chmod(tmpName, 0644); err != nil {
		return err
	}
	return os.Rename(tmpName, path)
}

// DefaultRun is the run used when no document exists yet: one segment
// and placeholder metadata the user renames from the editing surface.
func DefaultRun() *model.Run {
	run := model.NewRun("Game", "Category")
	run.Comparisons = comparison.Default()
	run.PushSegment(model.NewSegment("Segment 1"))
	return run
}
