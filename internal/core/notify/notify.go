// Package notify delivers change events from editing operations to
// interested views. Callbacks run synchronously on the goroutine that
// fires the notification, after the triggering commit has finished, so
// a handler that reads the store always observes the new state.
package notify

import (
	"sync"

	"github.com/penwyp/go-tuxsplit/internal/core/timing"
)

// Notifier is a typed callback registry. The zero value is ready to use.
type Notifier struct {
	mu                 sync.Mutex
	runChanged         []func()
	timingMethodChange []func(timing.Method)
}

// New returns an empty Notifier.
func New() *Notifier {
	return &Notifier{}
}

// OnRunChanged registers fn to run after any committed run mutation.
func (n *Notifier) OnRunChanged(fn func()) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.runChanged = append(n.runChanged, fn)
}

// OnTimingMethodChanged registers fn to run when the active timing
// method switches to a different value.
func (n *Notifier) OnTimingMethodChanged(fn func(timing.Method)) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.timingMethodChange = append(n.timingMethodChange, fn)
}

// NotifyRunChanged invokes every run-changed callback in registration
// order. Callbacks run outside the registry lock, so a handler may
// register further callbacks without deadlocking.
func (n *Notifier) NotifyRunChanged() {
	n.mu.Lock()
	fns := make([]func(), len(n.runChanged))
	copy(fns, n.runChanged)
	n.mu.Unlock()

	for _, fn := range fns {
		fn()
	}
}

// NotifyTimingMethodChanged invokes every timing-method callback in
// registration order with the newly active method.
func (n *Notifier) NotifyTimingMethodChanged(method timing.Method) {
	n.mu.Lock()
	fns := make([]func(timing.Method), len(n.timingMethodChange))
	copy(fns, n.timingMethodChange)
	n.mu.Unlock()

	for _, fn := range fns {
		fn(method)
	}
}
