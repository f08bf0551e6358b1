package panel

import "errors"

// ErrNoMatch is returned by Document mutations whose selector matched
// nothing.
var ErrNoMatch = errors.New("selector matched no element")

// Document is the mutable view of a host page. Implementations exist for a
// live browser tab (pkg/browser) and for parsed HTML (pkg/panel/htmldoc).
type Document interface {
	// Has reports whether any element matches the CSS selector.
	Has(selector string) bool

	// RemoveAll deletes every element matching the selector and returns
	// how many were removed.
	RemoveAll(selector string) int

	// InsertBefore places the HTML fragment immediately before the first
	// element matching selector.
	InsertBefore(selector, html string) error

	// Prepend places the HTML fragment as the first child of the first
	// element matching selector.
	Prepend(selector, html string) error

	// AppendBody places the HTML fragment as the last child of the body.
	AppendBody(html string) error
}
