// Package pagepath classifies github.com URL paths and extracts repository
// identities from them.
//
// A path is treated as an ordered list of non-empty segments. The first two
// segments name a repository (owner/name); further segments select a tab or
// view within it. Classification is intentionally loose: unknown 3+-segment
// paths are assumed to be code views, since GitHub adds new sub-pages faster
// than any denylist can track.
package pagepath

import "strings"

// reservedRoots are first segments that can never be a repository owner.
var reservedRoots = map[string]bool{
	"settings":      true,
	"notifications": true,
	"explore":       true,
	"marketplace":   true,
	"pricing":       true,
}

// nonCodeTabs are repository sub-pages that do not show the file tree.
var nonCodeTabs = map[string]bool{
	"issues":   true,
	"pull":     true,
	"actions":  true,
	"projects": true,
	"security": true,
	"insights": true,
	"settings": true,
}

// Identity names a repository by its owner and name.
type Identity struct {
	Owner string
	Name  string
}

// Key returns the canonical "owner/name" form used as a cache key.
func (id Identity) Key() string { return id.Owner + "/" + id.Name }

// String returns the same form as Key.
func (id Identity) String() string { return id.Key() }

// Segments splits a URL path into its non-empty segments. Query strings and
// fragments must be stripped by the caller; Segments operates on the path
// component only.
func Segments(path string) []string {
	var segs []string
	for _, s := range strings.Split(path, "/") {
		if s != "" {
			segs = append(segs, s)
		}
	}
	return segs
}

// IsRepositoryPage reports whether path addresses a repository at all:
// at least two segments, with a first segment that is neither reserved nor
// dot-prefixed.
func IsRepositoryPage(path string) bool {
	segs := Segments(path)
	if len(segs) < 2 {
		return false
	}
	if reservedRoots[segs[0]] || strings.HasPrefix(segs[0], ".") {
		return false
	}
	return true
}

// IsCodeView reports whether path shows a repository's code (the root file
// tree or a folder within it). Single-file views ("blob") and the non-code
// tabs are excluded; anything else with three or more segments qualifies.
func IsCodeView(path string) bool {
	segs := Segments(path)
	switch {
	case len(segs) < 2:
		return false
	case len(segs) == 2:
		return true
	case segs[2] == "tree":
		return true
	case segs[2] == "blob":
		return false
	case nonCodeTabs[segs[2]]:
		return false
	}
	return true
}

// Extract derives the repository identity from path. It returns false when
// the path has fewer than two segments.
func Extract(path string) (Identity, bool) {
	segs := Segments(path)
	if len(segs) < 2 {
		return Identity{}, false
	}
	return Identity{Owner: segs[0], Name: segs[1]}, true
}
