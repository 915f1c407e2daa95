package runstore

import (
	"fmt"
	"sync"

	"github.com/verdantlabs/bionet-simulator/core"
)

// EventType indicates what kind of change happened in the store.
type EventType int

const (
	EventRunAdded EventType = iota
)

// Event is emitted to subscribers when a run is recorded.
type Event struct {
	Type   EventType
	RunID  string
	Result *core.SimulationResult
}

// Entry is one recorded run: the ID it was logged under plus its
// result.
type Entry struct {
	RunID  string                 `json:"RunID"`
	Result *core.SimulationResult `json:"Result"`
}

// RunStore is an in-memory, thread-safe history of simulation runs.
// The CLI records every completed run here and serves the history over
// HTTP next to the Prometheus metrics, so a classroom session can be
// inspected after the fact.
type RunStore struct {
	mu sync.RWMutex

	byID  map[string][]*core.SimulationResult
	order []Entry

	subs []func(Event)
}

// New constructs an empty store.
func New() *RunStore {
	return &RunStore{
		byID: make(map[string][]*core.SimulationResult),
	}
}

// Add records a completed run under the given run ID and notifies
// subscribers. Several results may share a run ID (one per archetype in
// a comparison run); nil results are rejected.
func (s *RunStore) Add(runID string, res *core.SimulationResult) error {
	if runID == "" {
		return fmt.Errorf("run ID must not be empty")
	}
	if res == nil {
		return fmt.Errorf("result must not be nil")
	}

	s.mu.Lock()
	s.byID[runID] = append(s.byID[runID], res)
	s.order = append(s.order, Entry{RunID: runID, Result: res})
	event := Event{Type: EventRunAdded, RunID: runID, Result: res}
	subs := append([]func(Event){}, s.subs...)
	s.mu.Unlock()

	// Notify subscribers outside the lock to avoid deadlocks.
	for _, sub := range subs {
		sub(event)
	}
	return nil
}

// Get returns the results recorded under a run ID, or nil if none.
func (s *RunStore) Get(runID string) []*core.SimulationResult {
	s.mu.RLock()
	defer s.mu.RUnlock()

	results := s.byID[runID]
	if results == nil {
		return nil
	}
	out := make([]*core.SimulationResult, len(results))
	copy(out, results)
	return out
}

// List returns a snapshot of all recorded runs in insertion order.
func (s *RunStore) List() []Entry {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]Entry, len(s.order))
	copy(out, s.order)
	return out
}

// Len reports the number of recorded results.
func (s *RunStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.order)
}

// Subscribe registers a callback for store events. It returns an
// unsubscribe function.
func (s *RunStore) Subscribe(fn func(Event)) (unsubscribe func()) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.subs = append(s.subs, fn)
	idx := len(s.subs) - 1

	return func() {
		s.mu.Lock()
		defer s.mu.Unlock()
		if idx < 0 || idx >= len(s.subs) {
			return
		}
		s.subs = append(s.subs[:idx], s.subs[idx+1:]...)
		idx = -1
	}
}
