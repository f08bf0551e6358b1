// Package cache holds resolved repository dates for the lifetime of a run.
//
// The store is deliberately unbounded: one entry per visited repository is
// small, and a watch session ends when the browser tab does. Entries are
// write-once — a repository's dates are not refreshed within a session even
// if the remote history changes.
package cache

import (
	"sync"

	"github.com/matzehuels/repodates/pkg/github"
)

// Store caches resolved dates keyed by "owner/name".
type Store interface {
	// Get returns the cached dates for key, if present.
	Get(key string) (github.Dates, bool)

	// Set stores dates under key. The first write wins; later writes for
	// the same key are ignored.
	Set(key string, d github.Dates)

	// Len returns the number of cached entries.
	Len() int

	// Clear removes all entries.
	Clear()
}

// Memory is the in-process Store used by every command. Safe for concurrent
// use.
type Memory struct {
	mu      sync.RWMutex
	entries map[string]github.Dates
}

// NewMemory creates an empty in-memory store.
func NewMemory() *Memory {
	return &Memory{entries: make(map[string]github.Dates)}
}

// Get returns the cached dates for key.
func (m *Memory) Get(key string) (github.Dates, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	d, ok := m.entries[key]
	return d, ok
}

// Set stores dates under key unless an entry already exists.
func (m *Memory) Set(key string, d github.Dates) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.entries[key]; ok {
		return
	}
	m.entries[key] = d
}

// Len returns the number of cached entries.
func (m *Memory) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.entries)
}

// Clear removes all entries.
func (m *Memory) Clear() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.entries = make(map[string]github.Dates)
}

var _ Store = (*Memory)(nil)
