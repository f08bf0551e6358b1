// Package browser attaches to a Chrome/Chromium tab over the DevTools
// protocol and exposes it as a mutable document plus a stream of navigation
// signals.
//
// The tab is not ours: the user browses freely and this package only
// observes URL changes and injects or removes the date panel. All DOM work
// goes through querySelector-based JavaScript evaluated in the page, so the
// same anchor probing used against parsed HTML applies to the live page.
package browser

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/charmbracelet/log"
	"github.com/go-rod/rod"
	"github.com/go-rod/rod/lib/launcher"
	"github.com/go-rod/rod/lib/proto"
	"github.com/google/uuid"

	"github.com/matzehuels/repodates/pkg/panel"
)

// Config holds browser attachment settings.
type Config struct {
	// ControlURL is the WebSocket debugger URL of a running browser.
	// Empty launches a new browser via the default launcher.
	ControlURL string

	// Headless applies only when launching a browser ourselves. Watching
	// a page the user cannot see is rarely useful, so the default is a
	// visible window.
	Headless bool

	// StartURL is opened when no existing tab is suitable.
	StartURL string

	// PollInterval is the URL polling cadence that backstops navigation
	// events. SPA transitions via the history API fire no frame
	// navigation event, so polling is load-bearing, not paranoia.
	PollInterval time.Duration
}

// DefaultConfig returns settings for launching a visible browser on the
// GitHub front page.
func DefaultConfig() Config {
	return Config{
		StartURL:     "https://github.com",
		PollInterval: 500 * time.Millisecond,
	}
}

// Session is one attached tab.
type Session struct {
	ID   string
	page *rod.Page
	log  *log.Logger
	poll time.Duration
}

// Attach connects to (or launches) a browser and binds to a github.com tab,
// falling back to the first available tab or a fresh one on StartURL.
func Attach(ctx context.Context, cfg Config, logger *log.Logger) (*Session, error) {
	if logger == nil {
		logger = log.Default()
	}
	if cfg.PollInterval <= 0 {
		cfg.PollInterval = 500 * time.Millisecond
	}

	controlURL := cfg.ControlURL
	if controlURL == "" {
		u, err := launcher.New().Headless(cfg.Headless).Launch()
		if err != nil {
			return nil, fmt.Errorf("launch browser: %w", err)
		}
		controlURL = u
	}

	b := rod.New().ControlURL(controlURL).Context(ctx)
	if err := b.Connect(); err != nil {
		return nil, fmt.Errorf("connect to browser: %w", err)
	}

	page, err := pickPage(b, cfg.StartURL)
	if err != nil {
		return nil, err
	}

	s := &Session{
		ID:   uuid.NewString(),
		page: page,
		log:  logger,
		poll: cfg.PollInterval,
	}
	logger.Debug("attached to tab", "session", s.ID, "url", s.rawURL())
	return s, nil
}

// pickPage prefers an existing github.com tab, then any tab, then opens
// startURL.
func pickPage(b *rod.Browser, startURL string) (*rod.Page, error) {
	pages, err := b.Pages()
	if err != nil {
		return nil, fmt.Errorf("list pages: %w", err)
	}
	for _, p := range pages {
		if info, err := p.Info(); err == nil {
			if u, err := url.Parse(info.URL); err == nil && strings.HasSuffix(u.Host, "github.com") {
				return p, nil
			}
		}
	}
	if len(pages) > 0 {
		return pages[0], nil
	}
	if startURL == "" {
		return nil, errors.New("no open tabs and no start URL")
	}
	page, err := b.Page(proto.TargetCreateTarget{URL: startURL})
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", startURL, err)
	}
	return page, nil
}

// Close detaches from the tab without closing it.
func (s *Session) Close() error {
	// The page belongs to the user; only the CDP connection goes away
	// when the browser handle is garbage collected. Nothing to do here
	// beyond removing our panel, which callers do explicitly.
	return nil
}

// Path returns the tab's current URL path, or "" when unavailable.
func (s *Session) Path() string {
	u, err := url.Parse(s.rawURL())
	if err != nil {
		return ""
	}
	return u.Path
}

func (s *Session) rawURL() string {
	info, err := s.page.Info()
	if err != nil {
		return ""
	}
	return info.URL
}

// Navigations streams the tab's URL on every detected change until ctx is
// cancelled. The initial URL is delivered first. Frame navigation events
// cover full loads and history traversal; polling catches pushState
// transitions.
func (s *Session) Navigations(ctx context.Context) <-chan string {
	out := make(chan string, 8)

	emit := func(u string) {
		select {
		case out <- u:
		case <-ctx.Done():
		}
	}

	waitNav := s.page.Context(ctx).EachEvent(func(ev *proto.PageFrameNavigated) {
		if ev.Frame.ParentID == "" {
			emit(ev.Frame.URL)
		}
	})

	go func() {
		defer close(out)

		if u := s.rawURL(); u != "" {
			emit(u)
		}

		go waitNav()

		ticker := time.NewTicker(s.poll)
		defer ticker.Stop()

		last := s.rawURL()
		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				u := s.rawURL()
				if u != "" && u != last {
					last = u
					emit(u)
				}
			}
		}
	}()

	return out
}

// Has reports whether the selector matches anything in the live page.
func (s *Session) Has(selector string) bool {
	res, err := s.page.Eval(`(sel) => !!document.querySelector(sel)`, selector)
	if err != nil {
		return false
	}
	return res.Value.Bool()
}

// RemoveAll deletes every element matching the selector.
func (s *Session) RemoveAll(selector string) int {
	res, err := s.page.Eval(`(sel) => {
		const els = document.querySelectorAll(sel);
		els.forEach((el) => el.remove());
		return els.length;
	}`, selector)
	if err != nil {
		s.log.Debug("remove failed", "selector", selector, "err", err)
		return 0
	}
	return res.Value.Int()
}

// InsertBefore places html immediately before the first match of selector.
func (s *Session) InsertBefore(selector, html string) error {
	return s.insertAdjacent(selector, "beforebegin", html)
}

// Prepend places html as the first child of the first match of selector.
func (s *Session) Prepend(selector, html string) error {
	return s.insertAdjacent(selector, "afterbegin", html)
}

// AppendBody places html as the last child of the body.
func (s *Session) AppendBody(html string) error {
	return s.insertAdjacent("body", "beforeend", html)
}

func (s *Session) insertAdjacent(selector, position, html string) error {
	res, err := s.page.Eval(`(sel, pos, html) => {
		const el = document.querySelector(sel);
		if (!el) return false;
		el.insertAdjacentHTML(pos, html);
		return true;
	}`, selector, position, html)
	if err != nil {
		return fmt.Errorf("insert at %s: %w", selector, err)
	}
	if !res.Value.Bool() {
		return panel.ErrNoMatch
	}
	return nil
}

var _ panel.Document = (*Session)(nil)
