package github

import (
	"context"
	"fmt"
	"net/http"
	"time"
)

// rangePageSize is the page size used when walking toward the oldest commit.
// Listing 100 at a time keeps the request count at two or three regardless
// of history length; an earlier page-size-1 scheme needed one request per
// pagination probe.
const rangePageSize = 100

// CommitRange is the oldest and newest commit timestamps of a repository.
// Either field may be nil when the repository is empty or unreadable.
type CommitRange struct {
	First *time.Time
	Last  *time.Time
}

// Empty reports whether no commit timestamp was resolved.
func (r CommitRange) Empty() bool { return r.First == nil && r.Last == nil }

// commitEntry is the slice element returned by the commit listing endpoint.
// The listing is ordered newest first.
type commitEntry struct {
	Commit struct {
		Committer struct {
			Date time.Time `json:"date"`
		} `json:"committer"`
	} `json:"commit"`
}

// FetchCommitRange resolves the first and last commit timestamps for a
// repository. It never returns an error: empty repositories (404/409), rate
// limiting (403), unexpected statuses, and even panics all degrade to an
// empty or partial range.
//
// The listing endpoint returns newest-first, so the true first commit is the
// final entry of the last page. The last page number is discovered from the
// Link response header rather than a separate count request.
func (c *Client) FetchCommitRange(ctx context.Context, owner, name string) (r CommitRange) {
	defer func() {
		if recover() != nil {
			r = CommitRange{}
		}
	}()

	// Newest commit first. One entry is enough to anchor both ends in the
	// single-commit case.
	// 404/409 (empty or missing repo), 403 (rate limited), and transport
	// failures all land here and degrade identically.
	newest, _, err := c.listCommits(ctx, owner, name, 1, 1)
	if err != nil {
		return CommitRange{}
	}
	if len(newest) == 0 {
		return CommitRange{}
	}

	last := newest[0].Commit.Committer.Date
	r = CommitRange{First: &last, Last: &last}

	page1, header, err := c.listCommits(ctx, owner, name, rangePageSize, 1)
	if err != nil {
		return r
	}

	if lastPage, ok := parseLastPage(header.Get("Link")); ok {
		oldest, _, err := c.listCommits(ctx, owner, name, rangePageSize, lastPage)
		if err == nil && len(oldest) > 0 {
			first := oldest[len(oldest)-1].Commit.Committer.Date
			r.First = &first
		}
		return r
	}

	// History fits in a single page; its final entry is the first commit.
	if len(page1) > 1 {
		first := page1[len(page1)-1].Commit.Committer.Date
		r.First = &first
	}
	return r
}

func (c *Client) listCommits(ctx context.Context, owner, name string, perPage, page int) ([]commitEntry, http.Header, error) {
	var entries []commitEntry
	url := fmt.Sprintf("%s/repos/%s/%s/commits?per_page=%d&page=%d", c.baseURL, owner, name, perPage, page)
	header, err := c.getJSON(ctx, url, &entries)
	if err != nil {
		return nil, nil, err
	}
	return entries, header, nil
}
