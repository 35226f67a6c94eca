package suggest

import "sync"

// Tracker guards the medicine-name autocomplete against out-of-order
// responses. Every keystroke beyond the threshold fires a new upstream
// query; only the response belonging to the most recently issued query for
// a given input field may be applied. Each request takes a monotonically
// increasing sequence number at issue time and checks it is still the
// newest when its response arrives.
type Tracker struct {
	mu     sync.Mutex
	latest map[string]uint64
}

// NewTracker creates an empty Tracker.
func NewTracker() *Tracker {
	return &Tracker{latest: make(map[string]uint64)}
}

// Begin registers a new query for the field identified by key and returns
// its sequence number.
func (t *Tracker) Begin(key string) uint64 {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.latest[key]++
	return t.latest[key]
}

// Current reports whether seq still identifies the newest query for key.
// A false result means a later query was issued while this one was in
// flight and its response must be discarded.
func (t *Tracker) Current(key string, seq uint64) bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.latest[key] == seq
}

// Reset forgets the field's sequence, e.g. when its form closes.
func (t *Tracker) Reset(key string) {
	t.mu.Lock()
	defer t.mu.Unlock()
	delete(t.latest, key)
}
