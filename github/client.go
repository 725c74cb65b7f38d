// Package github provides read access to the documentation repository via
// the GitHub REST API (tree listings) and the raw content host (file
// fetches). Requests are rate limited client-side to stay well under the
// unauthenticated API quota.
package github

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/fwojciec/polarisdocs"
	"golang.org/x/time/rate"
)

// Defaults for the GitHub hosts and client behavior.
const (
	DefaultAPIBaseURL = "https://api.github.com"
	DefaultRawBaseURL = "https://raw.githubusercontent.com"
	DefaultTimeout    = 30 * time.Second

	// DefaultRequestsPerSecond bounds outgoing requests across both the
	// tree and raw endpoints.
	DefaultRequestsPerSecond = 5
)

// Ensure Client implements polarisdocs.Source at compile time.
var _ polarisdocs.Source = (*Client)(nil)

// Client fetches repository trees and raw files for a single owner/repo at
// a fixed branch. Client is safe for concurrent use.
type Client struct {
	owner  string
	repo   string
	branch string

	httpc   *http.Client
	limiter *rate.Limiter
	apiBase string
	rawBase string
	token   string
}

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient overrides the HTTP client. Defaults to a client with a
// 30s timeout.
func WithHTTPClient(c *http.Client) Option {
	return func(cl *Client) {
		cl.httpc = c
	}
}

// WithBaseURLs overrides the API and raw content hosts. Used in tests.
func WithBaseURLs(apiBase, rawBase string) Option {
	return func(cl *Client) {
		cl.apiBase = apiBase
		cl.rawBase = rawBase
	}
}

// WithToken sets a bearer token for API requests, raising the rate limit
// GitHub grants.
func WithToken(token string) Option {
	return func(cl *Client) {
		cl.token = token
	}
}

// WithRateLimit overrides the client-side requests-per-second bound.
func WithRateLimit(rps float64) Option {
	return func(cl *Client) {
		cl.limiter = rate.NewLimiter(rate.Limit(rps), 1)
	}
}

// NewClient creates a Client for owner/repo pinned to branch.
func NewClient(owner, repo, branch string, opts ...Option) *Client {
	cl := &Client{
		owner:   owner,
		repo:    repo,
		branch:  branch,
		apiBase: DefaultAPIBaseURL,
		rawBase: DefaultRawBaseURL,
		limiter: rate.NewLimiter(rate.Limit(DefaultRequestsPerSecond), 1),
	}
	for _, opt := range opts {
		opt(cl)
	}
	if cl.httpc == nil {
		cl.httpc = &http.Client{Timeout: DefaultTimeout}
	}
	return cl
}

// treeResponse mirrors the git trees API payload.
type treeResponse struct {
	Tree      []polarisdocs.TreeEntry `json:"tree"`
	Truncated bool                    `json:"truncated"`
}

// ListTree returns the full recursive tree of the configured branch.
func (c *Client) ListTree(ctx context.Context) ([]polarisdocs.TreeEntry, error) {
	url := fmt.Sprintf("%s/repos/%s/%s/git/trees/%s?recursive=1", c.apiBase, c.owner, c.repo, c.branch)

	body, err := c.get(ctx, url)
	if err != nil {
		return nil, err
	}

	var tr treeResponse
	if err := json.Unmarshal(body, &tr); err != nil {
		return nil, polarisdocs.Errorf(polarisdocs.EINTERNAL, "decoding tree listing: %v", err)
	}
	return tr.Tree, nil
}

// FetchFile returns the raw contents of path on the configured branch.
// Returns ENOTFOUND if the file does not exist.
func (c *Client) FetchFile(ctx context.Context, path string) (string, error) {
	url := fmt.Sprintf("%s/%s/%s/%s/%s", c.rawBase, c.owner, c.repo, c.branch, path)

	body, err := c.get(ctx, url)
	if err != nil {
		return "", err
	}
	return string(body), nil
}

// get performs a rate-limited GET and maps the response status to the
// application error taxonomy: 404 is ENOTFOUND, any other non-200 is
// EUNAVAILABLE.
func (c *Client) get(ctx context.Context, url string) ([]byte, error) {
	if err := c.limiter.Wait(ctx); err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	resp, err := c.httpc.Do(req)
	if err != nil {
		return nil, polarisdocs.Errorf(polarisdocs.EUNAVAILABLE, "fetching %s: %v", url, err)
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusNotFound:
		return nil, polarisdocs.Errorf(polarisdocs.ENOTFOUND, "not found: %s", url)
	case resp.StatusCode != http.StatusOK:
		return nil, polarisdocs.Errorf(polarisdocs.EUNAVAILABLE, "HTTP %d for %s", resp.StatusCode, url)
	}

	return io.ReadAll(resp.Body)
}
