// Package github is a minimal client for the pieces of the GitHub REST API
// this tool needs: repository metadata and the commit listing endpoint.
//
// All requests are plain GETs with no retries. Rate limiting is tolerated,
// not worked around: a 403 surfaces as ErrRateLimited (or an empty commit
// range) and the caller moves on.
package github

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

// DefaultBaseURL is the public GitHub API endpoint.
const DefaultBaseURL = "https://api.github.com"

// Client provides access to the GitHub API.
type Client struct {
	http    *http.Client
	baseURL string
	headers map[string]string
}

// NewClient creates a client against baseURL (pass "" for the public API).
// Pass an empty token for unauthenticated requests (lower rate limits).
func NewClient(baseURL, token string) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	headers := map[string]string{"Accept": "application/vnd.github.v3+json"}
	if token != "" {
		headers["Authorization"] = "Bearer " + token
	}
	return &Client{
		http:    &http.Client{},
		baseURL: baseURL,
		headers: headers,
	}
}

// Metadata holds the repository fields this tool consumes.
type Metadata struct {
	CreatedAt time.Time `json:"created_at"`
}

// Dates is the combined result for a repository: creation time plus the
// oldest and newest commit timestamps. A nil field means the value could not
// be determined and renders as "N/A".
type Dates struct {
	CreatedAt   *time.Time `json:"created_at"`
	FirstCommit *time.Time `json:"first_commit"`
	LastCommit  *time.Time `json:"last_commit"`
}

// Empty reports whether no date at all was resolved.
func (d Dates) Empty() bool {
	return d.CreatedAt == nil && d.FirstCommit == nil && d.LastCommit == nil
}

// FetchRepo retrieves repository metadata with a single GET. Non-2xx
// responses return *HTTPError (unwrapping to ErrNotFound or ErrRateLimited
// where applicable); transport failures wrap ErrNetwork.
func (c *Client) FetchRepo(ctx context.Context, owner, name string) (*Metadata, error) {
	var m Metadata
	url := fmt.Sprintf("%s/repos/%s/%s", c.baseURL, owner, name)
	if _, err := c.getJSON(ctx, url, &m); err != nil {
		return nil, err
	}
	return &m, nil
}

// getJSON performs a GET and decodes the response body into v. It returns
// the response headers so callers can read pagination links.
func (c *Client) getJSON(ctx context.Context, url string, v any) (http.Header, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}
	for k, val := range c.headers {
		req.Header.Set(k, val)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrNetwork, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		// Drain so the connection can be reused.
		_, _ = io.Copy(io.Discard, resp.Body)
		return nil, &HTTPError{Status: resp.StatusCode}
	}

	if err := json.NewDecoder(resp.Body).Decode(v); err != nil {
		return nil, err
	}
	return resp.Header, nil
}
