// Package cli implements the repodates command-line interface.
//
// This package provides commands for resolving a repository's creation and
// commit dates, watching a live browser tab and injecting them into GitHub
// pages, and performing the same injection into saved HTML. The CLI is built
// using cobra and supports verbose logging via the charmbracelet/log library.
package cli

import (
	"io"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/matzehuels/repodates/pkg/buildinfo"
	"github.com/matzehuels/repodates/pkg/github"
	"github.com/matzehuels/repodates/pkg/observability"
)

// appName is the application name used for directories and display.
const appName = "repodates"

// Log levels exported for use in main.go.
const (
	LogDebug = log.DebugLevel
	LogInfo  = log.InfoLevel
)

// CLI holds shared state for all commands.
type CLI struct {
	Logger *log.Logger

	cfg        Config
	configPath string
	apiBase    string
	token      string
}

// New creates a new CLI instance with a default logger.
func New(w io.Writer, level log.Level) *CLI {
	return &CLI{Logger: newLogger(w, level)}
}

// SetLogLevel updates the logger's level.
func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
}

// RootCommand creates the root cobra command with all subcommands
// registered.
func (c *CLI) RootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:          appName,
		Short:        "repodates shows when a repository was created and first/last committed to",
		Long: `repodates resolves three dates for a GitHub repository - creation,
first commit, and most recent commit - and either prints them, injects them
into a live browser tab showing github.com, or injects them into a saved
HTML page.`,
		Version:      buildinfo.Version,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(c.configPath)
			if err != nil {
				return err
			}
			c.cfg = cfg
			if c.apiBase != "" {
				c.cfg.APIBase = c.apiBase
			}
			if c.token != "" {
				c.cfg.Token = c.token
			}
			if c.Logger.GetLevel() <= log.DebugLevel {
				installLogHooks(c.Logger)
			}
			cmd.SetContext(withLogger(cmd.Context(), c.Logger))
			return nil
		},
	}

	root.SetVersionTemplate(buildinfo.Template())

	root.PersistentFlags().StringVar(&c.configPath, "config", "", "path to config file (default ~/.config/repodates/config.toml)")
	root.PersistentFlags().StringVar(&c.apiBase, "api-base", "", "GitHub API base URL override")
	root.PersistentFlags().StringVar(&c.token, "token", "", "GitHub API token for higher rate limits")

	root.AddCommand(c.showCommand())
	root.AddCommand(c.watchCommand())
	root.AddCommand(c.injectCommand())
	root.AddCommand(c.completionCommand())

	return root
}

// newGitHubClient creates the API client from the effective configuration.
func (c *CLI) newGitHubClient() *github.Client {
	return github.NewClient(c.cfg.APIBase, c.cfg.Token)
}

// installLogHooks routes observability events to the debug log.
func installLogHooks(l *log.Logger) {
	h := &logHooks{log: l}
	observability.SetFetchHooks(h)
	observability.SetCacheHooks(h)
	observability.SetRenderHooks(h)
}
