package github

import (
	"regexp"
	"strconv"
	"strings"
)

// pagePattern extracts the page query parameter from a single Link target.
var pagePattern = regexp.MustCompile(`[?&]page=(\d+)`)

// parseLastPage reads the page number of the rel="last" entry from a Link
// response header, e.g.
//
//	<https://api.github.com/repos/o/r/commits?per_page=100&page=2>; rel="next",
//	<https://api.github.com/repos/o/r/commits?per_page=100&page=9>; rel="last"
//
// It returns false when the header is absent or advertises no last page,
// which is how GitHub signals that the current page is the only one.
func parseLastPage(header string) (int, bool) {
	if header == "" {
		return 0, false
	}
	for _, part := range strings.Split(header, ",") {
		if !strings.Contains(part, `rel="last"`) {
			continue
		}
		m := pagePattern.FindStringSubmatch(part)
		if m == nil {
			return 0, false
		}
		n, err := strconv.Atoi(m[1])
		if err != nil || n < 1 {
			return 0, false
		}
		return n, true
	}
	return 0, false
}
