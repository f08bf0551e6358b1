package panel_test

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/matzehuels/repodates/pkg/github"
	"github.com/matzehuels/repodates/pkg/panel"
	"github.com/matzehuels/repodates/pkg/panel/htmldoc"
)

func mustParse(t *testing.T, html string) *htmldoc.Document {
	t.Helper()
	doc, err := htmldoc.ParseString(html)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	return doc
}

func count(t *testing.T, doc *htmldoc.Document, selector string) int {
	t.Helper()
	n := 0
	// RemoveAll is the only counting primitive; work on a serialized copy.
	html, err := doc.HTML()
	if err != nil {
		t.Fatalf("serialize: %v", err)
	}
	copyDoc := mustParse(t, html)
	n = copyDoc.RemoveAll(selector)
	return n
}

func testDates() github.Dates {
	created := time.Date(2018, time.April, 2, 0, 0, 0, 0, time.UTC)
	first := time.Date(2018, time.April, 3, 0, 0, 0, 0, time.UTC)
	last := time.Date(2024, time.December, 24, 0, 0, 0, 0, time.UTC)
	return github.Dates{CreatedAt: &created, FirstCommit: &first, LastCommit: &last}
}

func TestBuild(t *testing.T) {
	frag := panel.Build("owner/repo", testDates())

	for _, want := range []string{panel.PanelID, "owner/repo", "Created", "First commit", "Last commit"} {
		if !strings.Contains(frag, want) {
			t.Errorf("fragment missing %q:\n%s", want, frag)
		}
	}
}

func TestBuildAbsentFields(t *testing.T) {
	frag := panel.Build("owner/repo", github.Dates{})
	if got := strings.Count(frag, "N/A"); got != 3 {
		t.Errorf("fragment has %d N/A values, want 3:\n%s", got, frag)
	}
}

func TestBuildError(t *testing.T) {
	frag := panel.BuildError("owner/repo")
	if !strings.Contains(frag, "unable to load") {
		t.Errorf("error fragment missing warning row:\n%s", frag)
	}
	if !strings.Contains(frag, panel.PanelID) {
		t.Errorf("error fragment missing reserved id:\n%s", frag)
	}
}

func TestBuildEscapesKey(t *testing.T) {
	frag := panel.Build(`owner/<script>alert(1)</script>`, testDates())
	if strings.Contains(frag, "<script>") {
		t.Errorf("fragment contains unescaped markup:\n%s", frag)
	}
}

func TestInsertPrefersAboutSection(t *testing.T) {
	doc := mustParse(t, `<html><body>
		<div class="Layout-sidebar"><div class="BorderGrid">
			<div class="other"></div>
			<div class="about-margin">about</div>
		</div></div>
	</body></html>`)

	in := panel.NewInserter(panel.DefaultConfig(), nil)
	if err := in.Insert(context.Background(), doc, panel.Build("o/r", testDates())); err != nil {
		t.Fatalf("Insert() error: %v", err)
	}

	html, _ := doc.HTML()
	panelIdx := strings.Index(html, panel.PanelID)
	aboutIdx := strings.Index(html, "about-margin")
	if panelIdx == -1 {
		t.Fatal("panel not inserted")
	}
	if panelIdx > aboutIdx {
		t.Errorf("panel inserted after about section")
	}
}

func TestInsertFallsBackThroughAnchors(t *testing.T) {
	// No sidebar; should land in .repository-content as first child.
	doc := mustParse(t, `<html><body><div class="repository-content"><p>files</p></div></body></html>`)

	in := panel.NewInserter(panel.DefaultConfig(), nil)
	if err := in.Insert(context.Background(), doc, panel.Build("o/r", testDates())); err != nil {
		t.Fatalf("Insert() error: %v", err)
	}
	if !doc.Has(".repository-content #" + panel.PanelID) {
		html, _ := doc.HTML()
		t.Errorf("panel not inside .repository-content:\n%s", html)
	}
}

func TestInsertBodyFallback(t *testing.T) {
	doc := mustParse(t, `<html><body><p>nothing recognizable</p></body></html>`)

	in := panel.NewInserter(panel.DefaultConfig(), nil)
	if err := in.Insert(context.Background(), doc, panel.Build("o/r", testDates())); err != nil {
		t.Fatalf("Insert() error: %v", err)
	}
	if !doc.Has("#" + panel.PanelID) {
		t.Error("panel not appended to body")
	}
}

func TestInsertRemovesPriorInstance(t *testing.T) {
	doc := mustParse(t, `<html><body><div class="repository-content"></div></body></html>`)

	in := panel.NewInserter(panel.DefaultConfig(), nil)
	frag := panel.Build("o/r", testDates())
	for i := 0; i < 3; i++ {
		if err := in.Insert(context.Background(), doc, frag); err != nil {
			t.Fatalf("Insert() #%d error: %v", i, err)
		}
	}

	if n := count(t, doc, "#"+panel.PanelID); n != 1 {
		t.Errorf("document has %d panels, want 1", n)
	}
}

// emptyDoc has no matching anchors and no body, so insertion can never
// succeed.
type emptyDoc struct{}

func (emptyDoc) Has(string) bool                { return false }
func (emptyDoc) RemoveAll(string) int           { return 0 }
func (emptyDoc) InsertBefore(_, _ string) error { return panel.ErrNoMatch }
func (emptyDoc) Prepend(_, _ string) error      { return panel.ErrNoMatch }
func (emptyDoc) AppendBody(string) error        { return panel.ErrNoMatch }

func TestInsertExhaustsAttempts(t *testing.T) {
	cfg := panel.Config{Attempts: 3, Interval: time.Millisecond}
	in := panel.NewInserter(cfg, nil)

	start := time.Now()
	err := in.Insert(context.Background(), emptyDoc{}, "<div></div>")
	if !errors.Is(err, panel.ErrNoAnchor) {
		t.Fatalf("Insert() error = %v, want ErrNoAnchor", err)
	}
	if elapsed := time.Since(start); elapsed < 2*time.Millisecond {
		t.Errorf("retries too fast: %v", elapsed)
	}
}

func TestInsertHonorsContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	cfg := panel.Config{Attempts: 10, Interval: time.Hour}
	in := panel.NewInserter(cfg, nil)

	err := in.Insert(ctx, emptyDoc{}, "<div></div>")
	if !errors.Is(err, context.Canceled) {
		t.Errorf("Insert() error = %v, want context.Canceled", err)
	}
}
