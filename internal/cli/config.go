package cli

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"time"

	"github.com/BurntSushi/toml"

	"github.com/matzehuels/repodates/pkg/browser"
	"github.com/matzehuels/repodates/pkg/panel"
	"github.com/matzehuels/repodates/pkg/watch"
)

// Config is the optional TOML configuration. Everything has a working
// default; the file exists for people who want to pin an API base, a token,
// or the panel retry budget.
type Config struct {
	APIBase string `toml:"api_base"`
	Token   string `toml:"token"`

	DebounceMs int `toml:"debounce_ms"`

	Panel   PanelConfig   `toml:"panel"`
	Browser BrowserConfig `toml:"browser"`
}

// PanelConfig tunes fragment insertion.
type PanelConfig struct {
	Anchors       []string `toml:"anchors"`
	AboutSelector string   `toml:"about_selector"`
	Attempts      int      `toml:"attempts"`
	IntervalMs    int      `toml:"interval_ms"`
}

// BrowserConfig tunes browser attachment for watch mode.
type BrowserConfig struct {
	ControlURL string `toml:"control_url"`
	Headless   bool   `toml:"headless"`
	StartURL   string `toml:"start_url"`
	PollMs     int    `toml:"poll_ms"`
}

// loadConfig reads the TOML config at path, or the default location when
// path is empty. A missing file is not an error; it yields the zero config.
func loadConfig(path string) (Config, error) {
	if path == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return Config{}, nil
		}
		path = filepath.Join(home, ".config", appName, "config.toml")
	}

	var cfg Config
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return Config{}, nil
		}
		return Config{}, err
	}
	return cfg, nil
}

// panelConfig merges the file settings over the panel defaults.
func (c Config) panelConfig() panel.Config {
	cfg := panel.DefaultConfig()
	if len(c.Panel.Anchors) > 0 {
		cfg.Anchors = c.Panel.Anchors
	}
	if c.Panel.AboutSelector != "" {
		cfg.AboutSelector = c.Panel.AboutSelector
	}
	if c.Panel.Attempts > 0 {
		cfg.Attempts = c.Panel.Attempts
	}
	if c.Panel.IntervalMs > 0 {
		cfg.Interval = time.Duration(c.Panel.IntervalMs) * time.Millisecond
	}
	return cfg
}

// watchConfig merges the file settings over the watcher defaults.
func (c Config) watchConfig() watch.Config {
	cfg := watch.DefaultConfig()
	if c.DebounceMs > 0 {
		cfg.Debounce = time.Duration(c.DebounceMs) * time.Millisecond
	}
	return cfg
}

// browserConfig merges the file settings over the browser defaults.
func (c Config) browserConfig() browser.Config {
	cfg := browser.DefaultConfig()
	if c.Browser.ControlURL != "" {
		cfg.ControlURL = c.Browser.ControlURL
	}
	cfg.Headless = c.Browser.Headless
	if c.Browser.StartURL != "" {
		cfg.StartURL = c.Browser.StartURL
	}
	if c.Browser.PollMs > 0 {
		cfg.PollInterval = time.Duration(c.Browser.PollMs) * time.Millisecond
	}
	return cfg
}
