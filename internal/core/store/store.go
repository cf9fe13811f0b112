// Package store owns the canonical run document behind a reader-writer
// lock so the editing surface and background readers can share it safely.
package store

import (
	"sync"

	"github.com/penwyp/go-tuxsplit/internal/core/model"
	"github.com/penwyp/go-tuxsplit/internal/core/timer"
)

// Store guards the timer — and through it the current run — with a
// reader-writer lock. Readers only ever block against an in-progress
// writer, never against each other. Once a write section returns, every
// subsequent read on any goroutine observes the replacement run; there is
// no stale-read window.
//
// The store never notifies anyone: committers invoke the change notifier
// themselves after their write section has returned.
type Store struct {
	mu    sync.RWMutex
	timer *timer.Timer
}

// New wraps a timer for shared access.
func New(t *timer.Timer) *Store {
	return &Store{timer: t}
}

// Read runs fn while holding the read side of the lock. fn must treat the
// timer and its run as read-only and must not retain either past the call.
func (s *Store) Read(fn func(t *timer.Timer)) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	fn(s.timer)
}

// Snapshot returns a deep copy of the current run, taken under the read
// lock. The copy is the caller's to keep and mutate.
func (s *Store) Snapshot() *model.Run {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.timer.Run().Clone()
}

// TryWrite attempts to run fn while holding the write lock exclusively.
// When another goroutine holds the lock in either mode, TryWrite returns
// false without blocking and fn never runs: the caller's mutation is
// dropped for this invocation rather than stalling its thread.
func (s *Store) TryWrite(fn func(t *timer.Timer)) bool {
	if !s.mu.TryLock() {
		return false
	}
	defer s.mu.Unlock()
	fn(s.timer)
	return true
}

// Write runs fn while holding the write lock, blocking until it is
// available. Reserved for paths that must not drop, such as restoring an
// edit session's snapshot.
func (s *Store) Write(fn func(t *timer.Timer)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	fn(s.timer)
}

// TryReplace swaps the stored run for a replacement under TryWrite
// semantics. It reports whether the write lock was acquired and any error
// from the swap itself; on contention the replacement is dropped silently.
func (s *Store) TryReplace(run *model.Run) (bool, error) {
	var err error
	acquired := s.TryWrite(func(t *timer.Timer) {
		err = t.SetRun(run)
	})
	return acquired, err
}
