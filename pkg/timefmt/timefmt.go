// Package timefmt renders commit and creation timestamps for display.
//
// Two forms are produced: an absolute date ("Mar 14, 2019") used in tooltips
// and detail views, and a coarse relative form ("5m ago", "2d ago") used as
// the primary label. Missing timestamps render as "N/A" in both forms.
package timefmt

import (
	"fmt"
	"time"
)

// Absent is rendered whenever a timestamp is unavailable.
const Absent = "N/A"

// absoluteLayout follows the local convention GitHub itself uses in hovercards.
const absoluteLayout = "Jan 2, 2006"

// Absolute formats t as a local calendar date, or Absent when t is nil.
func Absolute(t *time.Time) string {
	if t == nil {
		return Absent
	}
	return t.Local().Format(absoluteLayout)
}

// Relative formats how long ago t was, bucketed coarsely. Timestamps less
// than a minute old (or in the future, from clock skew) render as "just now".
// Returns Absent when t is nil.
func Relative(t *time.Time) string {
	if t == nil {
		return Absent
	}
	return RelativeAt(*t, time.Now())
}

// RelativeAt is Relative against an explicit reference time.
func RelativeAt(t, now time.Time) string {
	diff := now.Sub(t)

	switch {
	case diff < time.Minute:
		return "just now"
	case diff < time.Hour:
		return fmt.Sprintf("%dm ago", int(diff.Minutes()))
	case diff < 24*time.Hour:
		return fmt.Sprintf("%dh ago", int(diff.Hours()))
	case diff < 30*24*time.Hour:
		return fmt.Sprintf("%dd ago", int(diff.Hours()/24))
	case diff < 365*24*time.Hour:
		return fmt.Sprintf("%dmo ago", int(diff.Hours()/(24*30)))
	default:
		return fmt.Sprintf("%dy ago", int(diff.Hours()/(24*365)))
	}
}
