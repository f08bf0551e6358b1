package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/matzehuels/repodates/pkg/github"
	"github.com/matzehuels/repodates/pkg/panel"
	"github.com/matzehuels/repodates/pkg/panel/htmldoc"
)

// injectCommand creates the inject subcommand.
func (c *CLI) injectCommand() *cobra.Command {
	var output string

	cmd := &cobra.Command{
		Use:   "inject <page.html> <owner/repo>",
		Short: "Inject the date panel into a saved HTML page",
		Long: `Fetch a repository's dates and inject the same panel that watch mode
inserts into a live tab, but into a saved HTML page. Useful for checking
anchor selectors against a downloaded copy of a page.

Examples:
  repodates inject repo.html golang/go
  repodates inject repo.html golang/go -o injected.html`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runInject(cmd.Context(), args[0], args[1], output)
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "output file (default stdout)")

	return cmd
}

func (c *CLI) runInject(ctx context.Context, inputPath, ref, output string) error {
	id, err := parseRepoRef(ref)
	if err != nil {
		return err
	}

	f, err := os.Open(inputPath)
	if err != nil {
		return fmt.Errorf("open %s: %w", inputPath, err)
	}
	doc, err := htmldoc.Parse(f)
	f.Close()
	if err != nil {
		return fmt.Errorf("parse %s: %w", inputPath, err)
	}

	client := c.newGitHubClient()

	spinner := newSpinnerWithContext(ctx, "Fetching repository dates...")
	spinner.Start()
	meta, metaErr := client.FetchRepo(ctx, id.Owner, id.Name)
	cr := client.FetchCommitRange(ctx, id.Owner, id.Name)
	spinner.Stop()

	dates := github.Dates{FirstCommit: cr.First, LastCommit: cr.Last}
	if metaErr == nil {
		created := meta.CreatedAt
		dates.CreatedAt = &created
	}

	fragment := panel.Build(id.Key(), dates)
	if dates.Empty() {
		printWarning("No dates resolved for %s; injecting error panel", id.Key())
		fragment = panel.BuildError(id.Key())
	}

	inserter := panel.NewInserter(c.cfg.panelConfig(), c.Logger)
	if err := inserter.Insert(ctx, doc, fragment); err != nil {
		return fmt.Errorf("inject panel: %w", err)
	}

	html, err := doc.HTML()
	if err != nil {
		return fmt.Errorf("serialize document: %w", err)
	}

	if output == "" {
		fmt.Print(html)
		return nil
	}
	if err := os.WriteFile(output, []byte(html), 0o644); err != nil {
		return fmt.Errorf("write %s: %w", output, err)
	}
	printSuccess("Wrote %s", output)
	return nil
}
