// Package observability provides hooks for instrumenting fetch, cache, and
// render activity.
//
// The package uses a simple hooks pattern: interfaces per event category,
// no-op defaults, and registration at startup. Libraries emit events without
// depending on any logging or metrics backend; the CLI installs a debug-log
// implementation under --verbose.
package observability

import (
	"context"
	"sync"
	"time"
)

// FetchHooks receives events from GitHub API resolution.
type FetchHooks interface {
	// OnFetchStart records the beginning of a date resolution for a
	// repository key.
	OnFetchStart(ctx context.Context, key string)

	// OnFetchComplete records the end of a resolution. partial is true
	// when only some of the three dates were obtained.
	OnFetchComplete(ctx context.Context, key string, partial bool, duration time.Duration, err error)
}

// CacheHooks receives events from the result cache.
type CacheHooks interface {
	OnCacheHit(ctx context.Context, key string)
	OnCacheMiss(ctx context.Context, key string)
	OnCacheSet(ctx context.Context, key string)
}

// RenderHooks receives events from panel insertion and removal.
type RenderHooks interface {
	// OnInsert records a successful panel insertion.
	OnInsert(ctx context.Context, key string)

	// OnRemove records removal of n prior panel instances.
	OnRemove(ctx context.Context, n int)

	// OnStale records a resolution result dropped because the page
	// navigated elsewhere while the fetch was in flight.
	OnStale(ctx context.Context, key, currentPath string)
}

// NoopFetchHooks is a no-op implementation of FetchHooks.
type NoopFetchHooks struct{}

func (NoopFetchHooks) OnFetchStart(context.Context, string)                               {}
func (NoopFetchHooks) OnFetchComplete(context.Context, string, bool, time.Duration, error) {}

// NoopCacheHooks is a no-op implementation of CacheHooks.
type NoopCacheHooks struct{}

func (NoopCacheHooks) OnCacheHit(context.Context, string)  {}
func (NoopCacheHooks) OnCacheMiss(context.Context, string) {}
func (NoopCacheHooks) OnCacheSet(context.Context, string)  {}

// NoopRenderHooks is a no-op implementation of RenderHooks.
type NoopRenderHooks struct{}

func (NoopRenderHooks) OnInsert(context.Context, string)        {}
func (NoopRenderHooks) OnRemove(context.Context, int)           {}
func (NoopRenderHooks) OnStale(context.Context, string, string) {}

var (
	fetchHooks  FetchHooks  = NoopFetchHooks{}
	cacheHooks  CacheHooks  = NoopCacheHooks{}
	renderHooks RenderHooks = NoopRenderHooks{}
	hooksMu     sync.RWMutex
)

// SetFetchHooks registers custom fetch hooks. Call once at startup.
func SetFetchHooks(h FetchHooks) {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	if h != nil {
		fetchHooks = h
	}
}

// SetCacheHooks registers custom cache hooks. Call once at startup.
func SetCacheHooks(h CacheHooks) {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	if h != nil {
		cacheHooks = h
	}
}

// SetRenderHooks registers custom render hooks. Call once at startup.
func SetRenderHooks(h RenderHooks) {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	if h != nil {
		renderHooks = h
	}
}

// Fetch returns the registered fetch hooks.
func Fetch() FetchHooks {
	hooksMu.RLock()
	defer hooksMu.RUnlock()
	return fetchHooks
}

// Cache returns the registered cache hooks.
func Cache() CacheHooks {
	hooksMu.RLock()
	defer hooksMu.RUnlock()
	return cacheHooks
}

// Render returns the registered render hooks.
func Render() RenderHooks {
	hooksMu.RLock()
	defer hooksMu.RUnlock()
	return renderHooks
}

// Reset restores all hooks to their no-op defaults. Primarily for tests.
func Reset() {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	fetchHooks = NoopFetchHooks{}
	cacheHooks = NoopCacheHooks{}
	renderHooks = NoopRenderHooks{}
}
