package cache

import "github.com/matzehuels/repodates/pkg/github"

// Null is a no-op store that never caches anything. Used for --no-cache.
type Null struct{}

// NewNull creates a null store.
func NewNull() Store { return Null{} }

// Get always misses.
func (Null) Get(key string) (github.Dates, bool) { return github.Dates{}, false }

// Set does nothing.
func (Null) Set(key string, d github.Dates) {}

// Len is always zero.
func (Null) Len() int { return 0 }

// Clear does nothing.
func (Null) Clear() {}

var _ Store = Null{}
