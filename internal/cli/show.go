package cli

import (
	"context"
	"fmt"
	"net/url"
	"time"

	"github.com/spf13/cobra"

	"github.com/matzehuels/repodates/pkg/github"
	"github.com/matzehuels/repodates/pkg/pagepath"
	"github.com/matzehuels/repodates/pkg/timefmt"
)

// showCommand creates the show subcommand.
func (c *CLI) showCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "show <owner/repo>",
		Short: "Print a repository's creation and commit dates",
		Long: `Resolve and print three dates for a repository: when it was created,
when its first commit was made, and when it was last committed to.

The repository can be given as owner/repo or as a full github.com URL.

Examples:
  repodates show torvalds/linux
  repodates show https://github.com/golang/go`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runShow(cmd.Context(), args[0])
		},
	}
}

func (c *CLI) runShow(ctx context.Context, ref string) error {
	id, err := parseRepoRef(ref)
	if err != nil {
		return err
	}

	client := c.newGitHubClient()
	p := newProgress(c.Logger)

	spinner := newSpinnerWithContext(ctx, "Fetching repository dates...")
	spinner.Start()

	meta, metaErr := client.FetchRepo(ctx, id.Owner, id.Name)
	cr := client.FetchCommitRange(ctx, id.Owner, id.Name)

	spinner.Stop()

	dates := github.Dates{FirstCommit: cr.First, LastCommit: cr.Last}
	if metaErr == nil {
		created := meta.CreatedAt
		dates.CreatedAt = &created
	} else {
		c.Logger.Debug("metadata fetch failed", "repo", id.Key(), "err", metaErr)
	}

	if dates.Empty() {
		printError("Unable to load dates for %s", id.Key())
		if metaErr != nil {
			return fmt.Errorf("fetch %s: %w", id.Key(), metaErr)
		}
		return fmt.Errorf("fetch %s: no data", id.Key())
	}

	p.done(fmt.Sprintf("Resolved dates for %s", id.Key()))

	fmt.Println(StyleTitle.Render(id.Key()))
	printDateRow("Created", dates.CreatedAt)
	printDateRow("First commit", dates.FirstCommit)
	printDateRow("Last commit", dates.LastCommit)
	return nil
}

func printDateRow(label string, t *time.Time) {
	fmt.Printf("  %-14s %s  %s\n",
		StyleDim.Render(label),
		StyleValue.Render(timefmt.Relative(t)),
		StyleDim.Render("("+timefmt.Absolute(t)+")"))
}

// parseRepoRef accepts "owner/repo" or a full github.com URL.
func parseRepoRef(ref string) (pagepath.Identity, error) {
	path := ref
	if u, err := url.Parse(ref); err == nil && u.Host != "" {
		path = u.Path
	}
	if !pagepath.IsRepositoryPage(path) {
		return pagepath.Identity{}, fmt.Errorf("invalid repository reference %q (want owner/repo)", ref)
	}
	id, ok := pagepath.Extract(path)
	if !ok {
		return pagepath.Identity{}, fmt.Errorf("invalid repository reference %q (want owner/repo)", ref)
	}
	return id, nil
}
