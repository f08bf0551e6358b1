package panel

import (
	"context"
	"errors"
	"time"

	"github.com/charmbracelet/log"
)

// ErrNoAnchor is returned when every insertion attempt failed to find an
// anchor. Callers log it and move on; it never reaches the host page.
var ErrNoAnchor = errors.New("no insertion anchor found")

// DefaultAnchors is the prioritized list of container selectors probed for
// insertion, most specific first.
var DefaultAnchors = []string{
	".Layout-sidebar .BorderGrid",
	".Layout-sidebar",
	".repository-content",
	"main .container-xl",
	"#repository-container-header",
}

// DefaultAboutSelector names the "about" sub-section inside a container.
// When present, the panel goes immediately before it; otherwise it becomes
// the container's first child.
const DefaultAboutSelector = ".about-margin"

// Config holds the insertion tunables. The retry budget is explicit
// configuration, not an implementation detail: attempts × interval bounds
// how long a slow-rendering page is polled before giving up.
type Config struct {
	Anchors       []string
	AboutSelector string
	Attempts      int
	Interval      time.Duration
}

// DefaultConfig returns the standard anchor list with a 10 × 200ms retry
// budget.
func DefaultConfig() Config {
	return Config{
		Anchors:       DefaultAnchors,
		AboutSelector: DefaultAboutSelector,
		Attempts:      10,
		Interval:      200 * time.Millisecond,
	}
}

// Inserter places panel fragments into a Document.
type Inserter struct {
	cfg Config
	log *log.Logger
}

// NewInserter creates an Inserter. A nil logger falls back to the package
// default.
func NewInserter(cfg Config, logger *log.Logger) *Inserter {
	if cfg.Attempts < 1 {
		cfg.Attempts = 1
	}
	if len(cfg.Anchors) == 0 {
		cfg.Anchors = DefaultAnchors
	}
	if logger == nil {
		logger = log.Default()
	}
	return &Inserter{cfg: cfg, log: logger}
}

// RemoveExisting deletes any previously injected panel. It returns the
// number of instances removed.
func (in *Inserter) RemoveExisting(doc Document) int {
	return doc.RemoveAll("#" + PanelID)
}

// Insert places fragment into doc, removing any prior instance first. When
// no anchor (not even a body element) is available yet, it retries on a
// fixed interval until the attempt budget runs out, then returns ErrNoAnchor.
func (in *Inserter) Insert(ctx context.Context, doc Document, fragment string) error {
	for attempt := 0; attempt < in.cfg.Attempts; attempt++ {
		in.RemoveExisting(doc)
		if in.tryInsert(doc, fragment) {
			return nil
		}

		if attempt < in.cfg.Attempts-1 {
			select {
			case <-ctx.Done():
				return ctx.Err()
			case <-time.After(in.cfg.Interval):
			}
		}
	}
	in.log.Debug("giving up on panel insertion", "attempts", in.cfg.Attempts)
	return ErrNoAnchor
}

// tryInsert walks the anchor strategies in priority order and stops at the
// first successful insertion.
func (in *Inserter) tryInsert(doc Document, fragment string) bool {
	for _, anchor := range in.cfg.Anchors {
		if !doc.Has(anchor) {
			continue
		}
		if about := anchor + " " + in.cfg.AboutSelector; in.cfg.AboutSelector != "" && doc.Has(about) {
			if doc.InsertBefore(about, fragment) == nil {
				return true
			}
		}
		if doc.Prepend(anchor, fragment) == nil {
			return true
		}
	}
	if doc.Has("body") {
		return doc.AppendBody(fragment) == nil
	}
	return false
}
