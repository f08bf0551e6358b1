// Package panel builds the date panel fragment and inserts it into a host
// page.
//
// The host page's markup is not ours and changes without notice, so
// insertion is a prioritized probe over anchor selectors rather than a fixed
// target: sidebar first, then content containers, then the page header, and
// finally a plain body append. A selector that stops matching is an expected
// failure mode, not a bug — the next strategy takes over.
package panel

import (
	"html/template"
	"strings"

	"github.com/matzehuels/repodates/pkg/github"
	"github.com/matzehuels/repodates/pkg/timefmt"
)

// PanelID is the reserved element id of the injected fragment. At most one
// element with this id exists in a document at any time.
const PanelID = "repodates-panel"

var panelTmpl = template.Must(template.New("panel").Parse(`<div id="{{.ID}}" class="{{.ID}}">
<h3 class="{{.ID}}-title">{{.Title}}</h3>
{{range .Rows}}<div class="{{$.ID}}-row"><span class="{{$.ID}}-label">{{.Label}}</span><span class="{{$.ID}}-value" title="{{.Tooltip}}">{{.Text}}</span></div>
{{end}}</div>`))

type row struct {
	Label   string
	Text    string
	Tooltip string
}

type panelData struct {
	ID    string
	Title string
	Rows  []row
}

// Build renders the three-row date fragment for a repository.
func Build(key string, d github.Dates) string {
	return execute(panelData{
		ID:    PanelID,
		Title: key,
		Rows: []row{
			{Label: "Created", Text: timefmt.Relative(d.CreatedAt), Tooltip: timefmt.Absolute(d.CreatedAt)},
			{Label: "First commit", Text: timefmt.Relative(d.FirstCommit), Tooltip: timefmt.Absolute(d.FirstCommit)},
			{Label: "Last commit", Text: timefmt.Relative(d.LastCommit), Tooltip: timefmt.Absolute(d.LastCommit)},
		},
	})
}

// BuildError renders the same fragment shell with a single warning row,
// shown when neither metadata nor commits could be fetched.
func BuildError(key string) string {
	return execute(panelData{
		ID:    PanelID,
		Title: key,
		Rows: []row{
			{Label: "Dates", Text: "unable to load", Tooltip: "repository dates could not be fetched"},
		},
	})
}

func execute(data panelData) string {
	var sb strings.Builder
	// The template is static; execution cannot fail on a strings.Builder.
	_ = panelTmpl.Execute(&sb, data)
	return sb.String()
}
