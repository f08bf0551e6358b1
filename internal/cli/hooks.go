package cli

import (
	"context"
	"time"

	"github.com/charmbracelet/log"
)

// logHooks routes fetch, cache, and render events to the debug log. It is
// installed only under --verbose, keeping the default output quiet.
type logHooks struct {
	log *log.Logger
}

func (h *logHooks) OnFetchStart(_ context.Context, key string) {
	h.log.Debug("fetching dates", "repo", key)
}

func (h *logHooks) OnFetchComplete(_ context.Context, key string, partial bool, d time.Duration, err error) {
	h.log.Debug("fetch complete", "repo", key, "partial", partial, "duration", d.Round(time.Millisecond), "err", err)
}

func (h *logHooks) OnCacheHit(_ context.Context, key string) {
	h.log.Debug("cache hit", "repo", key)
}

func (h *logHooks) OnCacheMiss(_ context.Context, key string) {
	h.log.Debug("cache miss", "repo", key)
}

func (h *logHooks) OnCacheSet(_ context.Context, key string) {
	h.log.Debug("cache store", "repo", key)
}

func (h *logHooks) OnInsert(_ context.Context, key string) {
	h.log.Debug("panel inserted", "repo", key)
}

func (h *logHooks) OnRemove(_ context.Context, n int) {
	h.log.Debug("panel removed", "count", n)
}

func (h *logHooks) OnStale(_ context.Context, key, currentPath string) {
	h.log.Debug("dropping stale result", "repo", key, "current", currentPath)
}
