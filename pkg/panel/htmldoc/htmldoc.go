// Package htmldoc implements panel.Document over parsed HTML.
//
// It backs the offline inject command and the panel tests: the same anchor
// probing that runs against a live tab runs here against a saved page.
package htmldoc

import (
	"io"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"github.com/matzehuels/repodates/pkg/panel"
)

// Document wraps a goquery document.
type Document struct {
	doc *goquery.Document
}

// Parse reads an HTML document from r.
func Parse(r io.Reader) (*Document, error) {
	doc, err := goquery.NewDocumentFromReader(r)
	if err != nil {
		return nil, err
	}
	return &Document{doc: doc}, nil
}

// ParseString reads an HTML document from a string.
func ParseString(html string) (*Document, error) {
	return Parse(strings.NewReader(html))
}

// Has reports whether any element matches the selector.
func (d *Document) Has(selector string) bool {
	return d.doc.Find(selector).Length() > 0
}

// RemoveAll deletes every element matching the selector.
func (d *Document) RemoveAll(selector string) int {
	sel := d.doc.Find(selector)
	n := sel.Length()
	sel.Remove()
	return n
}

// InsertBefore places html immediately before the first match of selector.
func (d *Document) InsertBefore(selector, html string) error {
	sel := d.doc.Find(selector).First()
	if sel.Length() == 0 {
		return panel.ErrNoMatch
	}
	sel.BeforeHtml(html)
	return nil
}

// Prepend places html as the first child of the first match of selector.
func (d *Document) Prepend(selector, html string) error {
	sel := d.doc.Find(selector).First()
	if sel.Length() == 0 {
		return panel.ErrNoMatch
	}
	sel.PrependHtml(html)
	return nil
}

// AppendBody places html as the last child of the body element.
func (d *Document) AppendBody(html string) error {
	sel := d.doc.Find("body").First()
	if sel.Length() == 0 {
		return panel.ErrNoMatch
	}
	sel.AppendHtml(html)
	return nil
}

// HTML serializes the document back to markup.
func (d *Document) HTML() (string, error) {
	return d.doc.Html()
}

var _ panel.Document = (*Document)(nil)
