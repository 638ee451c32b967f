// Package history tracks per-window snap state for the daemon: the engine's
// cycling record, the rectangle a window occupied before its first snap, and
// a one-step undo rectangle.
package history

import (
	"sync"
	"time"

	"github.com/1broseidon/snaptile/internal/geometry"
	"github.com/1broseidon/snaptile/internal/snap"
)

// entry is the tracked state for one window.
type entry struct {
	hist snap.History
	// preSnap is where the window sat before snaptile first touched it.
	preSnap geometry.Rect
	// prev is where the window sat before the latest snap.
	prev    geometry.Rect
	touched time.Time
}

// Store is a bounded per-window state table. Safe for concurrent use.
type Store struct {
	mu      sync.Mutex
	entries map[uint32]*entry
	limit   int
}

// NewStore creates a store tracking at most limit windows; the least
// recently touched entry is evicted past that. limit <= 0 means unbounded.
func NewStore(limit int) *Store {
	return &Store{
		entries: make(map[uint32]*entry),
		limit:   limit,
	}
}

// Get returns the engine history for a window, if any.
func (s *Store) Get(win uint32) (snap.History, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	e, ok := s.entries[win]
	if !ok {
		return snap.History{}, false
	}
	e.touched = time.Now()
	return e.hist, true
}

// Record stores the outcome of a snap: prev is the rectangle the window
// occupied before it, hist the record the engine asked to persist.
func (s *Store) Record(win uint32, prev geometry.Rect, hist snap.History) {
	s.mu.Lock()
	defer s.mu.Unlock()
	e, ok := s.entries[win]
	if !ok {
		e = &entry{preSnap: prev}
		s.entries[win] = e
	}
	e.hist = hist
	e.prev = prev
	e.touched = time.Now()
	if !ok {
		s.evictLocked()
	}
}

// PreSnap returns the rectangle the window occupied before snaptile first
// snapped it.
func (s *Store) PreSnap(win uint32) (geometry.Rect, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	e, ok := s.entries[win]
	if !ok {
		return geometry.Rect{}, false
	}
	return e.preSnap, true
}

// Undo returns the rectangle to restore for a one-step undo and clears the
// window's cycling record so the next snap starts fresh.
func (s *Store) Undo(win uint32) (geometry.Rect, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	e, ok := s.entries[win]
	if !ok {
		return geometry.Rect{}, false
	}
	r := e.prev
	e.hist = snap.History{}
	e.touched = time.Now()
	return r, true
}

// Forget drops all state for a window. Called when a window is destroyed.
func (s *Store) Forget(win uint32) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.entries, win)
}

// Len reports the number of tracked windows.
func (s *Store) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.entries)
}

func (s *Store) evictLocked() {
	if s.limit <= 0 || len(s.entries) <= s.limit {
		return
	}
	var oldest uint32
	var oldestAt time.Time
	first := true
	for win, e := range s.entries {
		if first || e.touched.Before(oldestAt) {
			oldest, oldestAt = win, e.touched
			first = false
		}
	}
	delete(s.entries, oldest)
}
