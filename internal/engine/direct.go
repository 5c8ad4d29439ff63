package engine

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"regexp"

	"github.com/nao1215/mapdown/internal/model"
	"golang.org/x/net/html/charset"
)

// bodyPattern extracts the <body> slice of an HTML document.
var bodyPattern = regexp.MustCompile(`(?is)<body[^>]*>(.*?)</body>`)

// Direct fetches pages with a plain HTTP GET and converts the HTML body to
// Markdown locally. It is the default engine and needs no API key.
type Direct struct {
	// client performs the per-URL requests. The caller configures timeout
	// and redirect policy.
	client *http.Client

	// userAgent is sent with every request.
	userAgent string

	// maxBodySize limits the response body size to read.
	maxBodySize int64
}

// DirectOption configures a Direct engine.
type DirectOption func(*Direct)

// WithDirectUserAgent sets a custom User-Agent header.
func WithDirectUserAgent(ua string) DirectOption {
	return func(d *Direct) {
		d.userAgent = ua
	}
}

// WithDirectMaxBodySize sets the maximum response body size.
func WithDirectMaxBodySize(size int64) DirectOption {
	return func(d *Direct) {
		if size > 0 {
			d.maxBodySize = size
		}
	}
}

// NewDirect creates a Direct engine using the given HTTP client.
//
// Design decision: the client comes from the caller rather than being built
// here so the fetch timeout configured at the command layer applies to every
// engine the same way, and tests can point the engine at a local server.
func NewDirect(client *http.Client, opts ...DirectOption) *Direct {
	d := &Direct{
		client:      client,
		maxBodySize: 10 * 1024 * 1024,
	}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// Name implements Engine.
func (d *Direct) Name() string { return "fetch" }

// Fetch implements Engine. It extracts the <title> and <body> slices by
// pattern match, converts the body (or the whole document when there is no
// body tag) to Markdown, and prepends the title as an H1 heading when one
// was found.
func (d *Direct) Fetch(ctx context.Context, rawURL string) model.FetchOutcome {
	page, err := d.get(ctx, rawURL)
	if err != nil {
		return failure(rawURL, err)
	}

	title := htmlTitle(page)

	fragment := page
	if m := bodyPattern.FindStringSubmatch(page); m != nil {
		fragment = m[1]
	}

	markdown, err := ToMarkdown(fragment)
	if err != nil {
		return failure(rawURL, fmt.Errorf("convert to markdown: %w", err))
	}

	if title != "" {
		markdown = "# " + title + "\n\n" + markdown
	}
	return success(rawURL, title, markdown)
}

// get retrieves the raw HTML of a page, decoding the body according to the
// response charset.
func (d *Direct) get(ctx context.Context, rawURL string) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return "", fmt.Errorf("build request: %w", err)
	}
	if d.userAgent != "" {
		req.Header.Set("User-Agent", d.userAgent)
	}

	resp, err := d.client.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close() //nolint:errcheck // Read-only body

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("unexpected status %d", resp.StatusCode)
	}

	reader, err := charset.NewReader(io.LimitReader(resp.Body, d.maxBodySize), resp.Header.Get("Content-Type"))
	if err != nil {
		return "", fmt.Errorf("decode body: %w", err)
	}

	body, err := io.ReadAll(reader)
	if err != nil {
		return "", fmt.Errorf("read body: %w", err)
	}
	return string(body), nil
}
