package cli

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/matzehuels/repodates/pkg/browser"
	"github.com/matzehuels/repodates/pkg/cache"
	"github.com/matzehuels/repodates/pkg/panel"
	"github.com/matzehuels/repodates/pkg/watch"
)

// watchCommand creates the watch subcommand.
func (c *CLI) watchCommand() *cobra.Command {
	var (
		attach   string
		headless bool
		startURL string
		noCache  bool
	)

	cmd := &cobra.Command{
		Use:   "watch",
		Short: "Watch a browser tab and inject dates into GitHub pages",
		Long: `Attach to a Chrome/Chromium tab and inject a date panel into every
repository code view it navigates to. Without --attach a new browser window
is launched on github.com.

To attach to your own browser, start it with remote debugging enabled:

  chromium --remote-debugging-port=9222
  repodates watch --attach ws://127.0.0.1:9222

The panel is removed when the tab leaves a repository page and replaced on
every navigation. Press Ctrl-C to stop watching.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runWatch(cmd.Context(), attach, headless, startURL, noCache)
		},
	}

	cmd.Flags().StringVar(&attach, "attach", "", "WebSocket debugger URL of a running browser")
	cmd.Flags().BoolVar(&headless, "headless", false, "launch the browser headless")
	cmd.Flags().StringVar(&startURL, "start-url", "", "page to open when launching a browser")
	cmd.Flags().BoolVar(&noCache, "no-cache", false, "re-fetch dates on every navigation")

	return cmd
}

func (c *CLI) runWatch(ctx context.Context, attach string, headless bool, startURL string, noCache bool) error {
	bcfg := c.cfg.browserConfig()
	if attach != "" {
		bcfg.ControlURL = attach
	}
	if startURL != "" {
		bcfg.StartURL = startURL
	}
	if headless {
		bcfg.Headless = true
	}

	session, err := browser.Attach(ctx, bcfg, c.Logger)
	if err != nil {
		return err
	}
	defer session.Close()

	var store cache.Store = cache.NewMemory()
	if noCache {
		store = cache.NewNull()
	}

	inserter := panel.NewInserter(c.cfg.panelConfig(), c.Logger)
	w := watch.New(c.newGitHubClient(), store, inserter, session, session.Path, c.cfg.watchConfig(), c.Logger)

	printInfo("Watching browser tab. Press Ctrl-C to stop.")
	w.Run(ctx, session.Navigations(ctx))

	// Leave the page as we found it.
	w.RemovePanel(context.Background())
	printSuccess("Stopped watching")
	return nil
}
