// Package fetch provides the page-fetch collaborator: given a URL it returns
// the raw page body for the normalizer to process. Fetch failures are typed
// so the pipeline can degrade to empty content instead of aborting.
package fetch

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"
)

// DefaultTimeout is the default HTTP request timeout.
const DefaultTimeout = 30 * time.Second

// DefaultUserAgent is the user agent string for HTTP requests.
const DefaultUserAgent = "Mozilla/5.0 (compatible; SchemaAgent/1.0)"

// MaxBodyBytes caps how much of a response body is read.
const MaxBodyBytes = 5 << 20

// Fetcher retrieves the raw content of a page.
type Fetcher interface {
	Fetch(ctx context.Context, urlStr string) (string, error)
}

// Error represents a failure to fetch a page.
type Error struct {
	URL     string
	Message string
	Cause   error
}

func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("fetch error for %s: %s: %v", e.URL, e.Message, e.Cause)
	}
	return fmt.Sprintf("fetch error for %s: %s", e.URL, e.Message)
}

func (e *Error) Unwrap() error {
	return e.Cause
}

// Options configures the fetch behavior.
type Options struct {
	Timeout   time.Duration
	UserAgent string
	// UseBrowser enables headless-browser rendering when the plain HTTP
	// response looks like an unrendered single-page app.
	UseBrowser bool
}

// DefaultOptions returns sensible defaults for fetching.
func DefaultOptions() *Options {
	return &Options{
		Timeout:   DefaultTimeout,
		UserAgent: DefaultUserAgent,
	}
}

// Client is the HTTP-backed Fetcher.
type Client struct {
	opts *Options
	http *http.Client
}

// NewClient creates a Fetcher with the given options (nil for defaults).
func NewClient(opts *Options) *Client {
	if opts == nil {
		opts = DefaultOptions()
	}
	if opts.Timeout == 0 {
		opts.Timeout = DefaultTimeout
	}
	if opts.UserAgent == "" {
		opts.UserAgent = DefaultUserAgent
	}
	return &Client{
		opts: opts,
		http: &http.Client{Timeout: opts.Timeout},
	}
}

// Fetch retrieves the raw body of a page. When browser rendering is enabled
// and the HTTP response looks like an unrendered SPA shell, the page is
// re-fetched through a headless browser.
func (c *Client) Fetch(ctx context.Context, urlStr string) (string, error) {
	parsedURL, err := url.Parse(urlStr)
	if err != nil || parsedURL.Scheme == "" || parsedURL.Host == "" {
		return "", &Error{URL: urlStr, Message: "invalid URL", Cause: err}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, urlStr, nil)
	if err != nil {
		return "", &Error{URL: urlStr, Message: "failed to create request", Cause: err}
	}
	req.Header.Set("User-Agent", c.opts.UserAgent)

	resp, err := c.http.Do(req)
	if err != nil {
		return "", &Error{URL: urlStr, Message: "HTTP request failed", Cause: err}
	}
	defer func() { _ = resp.Body.Close() }()

	bodyBytes, err := io.ReadAll(io.LimitReader(resp.Body, MaxBodyBytes))
	if err != nil {
		return "", &Error{URL: urlStr, Message: "failed to read response body", Cause: err}
	}

	if resp.StatusCode != http.StatusOK {
		return "", &Error{URL: urlStr, Message: fmt.Sprintf("HTTP status %d", resp.StatusCode)}
	}

	body := string(bodyBytes)
	if c.opts.UseBrowser && shouldUseBrowser(body) {
		rendered, err := renderWithBrowser(ctx, urlStr, c.opts.Timeout)
		if err == nil {
			return rendered, nil
		}
		// Browser rendering is best effort; keep the HTTP body.
	}

	return body, nil
}

// shouldUseBrowser reports whether the body is too thin to be a rendered
// page, suggesting a JavaScript-rendered SPA.
func shouldUseBrowser(body string) bool {
	return len(strings.TrimSpace(body)) < minRenderedLength
}
