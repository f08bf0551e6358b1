// Package watch orchestrates the navigation → detect → fetch → render
// lifecycle.
//
// Navigation signals arrive from several overlapping sources (initial load,
// history traversal, SPA transitions, URL polling), so the watcher is built
// around suppression: a short debounce lets the new page settle, the last
// processed path drops repeat signals, and a per-repository loading guard
// drops triggers that race an in-flight fetch. Results are cached for the
// lifetime of the process and re-validated against the live path before
// insertion, so a fetch that outlives its page never paints a stale panel.
package watch

import (
	"context"
	"net/url"
	"sync"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/repodates/pkg/cache"
	"github.com/matzehuels/repodates/pkg/github"
	"github.com/matzehuels/repodates/pkg/observability"
	"github.com/matzehuels/repodates/pkg/pagepath"
	"github.com/matzehuels/repodates/pkg/panel"
)

// Fetcher resolves repository dates. *github.Client implements it.
type Fetcher interface {
	FetchRepo(ctx context.Context, owner, name string) (*github.Metadata, error)
	FetchCommitRange(ctx context.Context, owner, name string) github.CommitRange
}

// Config holds the watcher tunables.
type Config struct {
	// Debounce is how long to wait after a navigation signal before
	// processing, letting the new page's DOM settle.
	Debounce time.Duration
}

// DefaultConfig returns the standard debounce.
func DefaultConfig() Config {
	return Config{Debounce: 150 * time.Millisecond}
}

// Watcher drives detection, fetching, and rendering for one page context.
type Watcher struct {
	client   Fetcher
	store    cache.Store
	inserter *panel.Inserter
	doc      panel.Document
	path     func() string
	log      *log.Logger
	debounce time.Duration

	mu       sync.Mutex
	lastPath string
	loading  string
}

// New creates a Watcher. currentPath reports the page's live path and is
// consulted again at render time; pass nil to trust the navigation signals
// alone. A nil logger falls back to the package default.
func New(client Fetcher, store cache.Store, inserter *panel.Inserter, doc panel.Document, currentPath func() string, cfg Config, logger *log.Logger) *Watcher {
	if logger == nil {
		logger = log.Default()
	}
	return &Watcher{
		client:   client,
		store:    store,
		inserter: inserter,
		doc:      doc,
		path:     currentPath,
		log:      logger,
		debounce: cfg.Debounce,
	}
}

// Run consumes navigation signals until the channel closes or the context is
// cancelled. Signals are handled concurrently; the watcher's own guards
// serialize what must not overlap.
func (w *Watcher) Run(ctx context.Context, navs <-chan string) {
	for {
		select {
		case <-ctx.Done():
			return
		case raw, ok := <-navs:
			if !ok {
				return
			}
			go w.HandleNavigation(ctx, raw)
		}
	}
}

// HandleNavigation processes one navigation signal. Safe for concurrent use.
func (w *Watcher) HandleNavigation(ctx context.Context, rawURL string) {
	if w.debounce > 0 {
		select {
		case <-ctx.Done():
			return
		case <-time.After(w.debounce):
		}
	}

	path := normalizePath(rawURL)

	w.mu.Lock()
	if path == w.lastPath {
		w.mu.Unlock()
		return
	}
	w.lastPath = path

	if !pagepath.IsRepositoryPage(path) || !pagepath.IsCodeView(path) {
		w.mu.Unlock()
		w.RemovePanel(ctx)
		return
	}

	id, ok := pagepath.Extract(path)
	if !ok {
		w.mu.Unlock()
		w.RemovePanel(ctx)
		return
	}
	key := id.Key()

	if dates, hit := w.store.Get(key); hit {
		w.mu.Unlock()
		observability.Cache().OnCacheHit(ctx, key)
		w.render(ctx, key, dates)
		return
	}
	observability.Cache().OnCacheMiss(ctx, key)

	if w.loading == key {
		// A fetch for this repository is already in flight; drop, don't
		// queue.
		w.mu.Unlock()
		return
	}
	w.loading = key
	w.mu.Unlock()

	defer func() {
		w.mu.Lock()
		if w.loading == key {
			w.loading = ""
		}
		w.mu.Unlock()
	}()

	dates, ok := w.resolve(ctx, id)
	if !ok {
		// Total failure: render the warning panel but leave the cache
		// untouched so the next visit retries.
		if w.stillCurrent(key) {
			w.insert(ctx, key, panel.BuildError(key))
		}
		return
	}

	w.store.Set(key, dates)
	observability.Cache().OnCacheSet(ctx, key)

	if !w.stillCurrent(key) {
		observability.Render().OnStale(ctx, key, w.currentPath())
		return
	}
	w.render(ctx, key, dates)
}

// RemovePanel deletes any injected panel from the document.
func (w *Watcher) RemovePanel(ctx context.Context) {
	if n := w.inserter.RemoveExisting(w.doc); n > 0 {
		observability.Render().OnRemove(ctx, n)
	}
}

// resolve fetches metadata and the commit range together. The commit range
// never fails; a metadata failure gets one best-effort second attempt. The
// boolean result is false only when no date at all was obtained.
func (w *Watcher) resolve(ctx context.Context, id pagepath.Identity) (github.Dates, bool) {
	key := id.Key()
	start := time.Now()
	observability.Fetch().OnFetchStart(ctx, key)

	var (
		meta    *github.Metadata
		metaErr error
		cr      github.CommitRange
		wg      sync.WaitGroup
	)
	wg.Add(2)
	go func() {
		defer wg.Done()
		cr = w.client.FetchCommitRange(ctx, id.Owner, id.Name)
	}()
	go func() {
		defer wg.Done()
		meta, metaErr = w.client.FetchRepo(ctx, id.Owner, id.Name)
	}()
	wg.Wait()

	if metaErr != nil {
		w.log.Debug("metadata fetch failed, retrying once", "repo", key, "err", metaErr)
		meta, metaErr = w.client.FetchRepo(ctx, id.Owner, id.Name)
	}

	dates := github.Dates{FirstCommit: cr.First, LastCommit: cr.Last}
	if metaErr == nil && meta != nil {
		created := meta.CreatedAt
		dates.CreatedAt = &created
	}

	ok := !dates.Empty()
	partial := ok && (dates.CreatedAt == nil || dates.FirstCommit == nil || dates.LastCommit == nil)
	observability.Fetch().OnFetchComplete(ctx, key, partial, time.Since(start), metaErr)
	return dates, ok
}

func (w *Watcher) render(ctx context.Context, key string, dates github.Dates) {
	w.insert(ctx, key, panel.Build(key, dates))
}

func (w *Watcher) insert(ctx context.Context, key, fragment string) {
	if err := w.inserter.Insert(ctx, w.doc, fragment); err != nil {
		w.log.Debug("panel insertion failed", "repo", key, "err", err)
		return
	}
	observability.Render().OnInsert(ctx, key)
}

// stillCurrent reports whether the page still shows the repository the
// result was fetched for. Without a live path source the last processed
// path stands in.
func (w *Watcher) stillCurrent(key string) bool {
	cur, ok := pagepath.Extract(w.currentPath())
	return ok && cur.Key() == key
}

func (w *Watcher) currentPath() string {
	if w.path != nil {
		return w.path()
	}
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.lastPath
}

// normalizePath reduces a navigation signal (full URL or bare path) to its
// path component.
func normalizePath(raw string) string {
	if u, err := url.Parse(raw); err == nil && u.Path != "" {
		return u.Path
	}
	return raw
}
