// Package location tracks where the user currently is in the front end and
// performs navigation on the client's behalf.
package location

import (
	"sync"
)

// Navigator reports the current path and moves to another one.
// Navigate is fire-and-forget: it must not block on network or storage.
type Navigator interface {
	CurrentPath() string
	Navigate(path string)
}

// TrackerOption configures a Tracker.
type TrackerOption func(*Tracker)

// WithOnNavigate registers a callback invoked after each navigation.
func WithOnNavigate(fn func(path string)) TrackerOption {
	return func(t *Tracker) { t.onNavigate = fn }
}

// Tracker is an in-memory Navigator that records its history.
type Tracker struct {
	mu         sync.Mutex
	path       string
	history    []string
	onNavigate func(string)
}

// NewTracker returns a Tracker positioned at initial.
func NewTracker(initial string, opts ...TrackerOption) *Tracker {
	t := &Tracker{path: initial}
	for _, opt := range opts {
		opt(t)
	}
	return t
}

func (t *Tracker) CurrentPath() string {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.path
}

// Navigate moves to path and notifies the callback, if any, outside the lock.
func (t *Tracker) Navigate(path string) {
	t.mu.Lock()
	t.path = path
	t.history = append(t.history, path)
	cb := t.onNavigate
	t.mu.Unlock()

	if cb != nil {
		cb(path)
	}
}

// History returns every path navigated to, oldest first.
func (t *Tracker) History() []string {
	t.mu.Lock()
	defer t.mu.Unlock()
	out := make([]string, len(t.history))
	copy(out, t.history)
	return out
}
