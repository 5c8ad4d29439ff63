package sitemap

import (
	"errors"
	"fmt"
)

// Sentinel errors returned by the sitemap stages. Callers use errors.Is()
// for programmatic handling; the messages double as the user-facing text.
var (
	// ErrNoURLs is returned when extraction yields zero URLs.
	// This aborts the run: without URLs there is nothing to fetch.
	ErrNoURLs = errors.New(
		"no URLs found: input must be an XML sitemap (<urlset><url><loc>...</loc></url></urlset>) " +
			`or a JSON URL list ({"urls": [...]} or a bare array)`)

	// ErrAllFiltered is returned when the include/exclude patterns remove
	// every URL. This is terminal for the run.
	ErrAllFiltered = errors.New("no URLs remain after filtering")
)

// NetworkError reports a terminal non-200 response while resolving a remote
// sitemap, after redirects have been followed.
type NetworkError struct {
	// URL is the request URL that produced the response.
	URL string

	// StatusCode is the terminal HTTP status code.
	StatusCode int
}

// Error implements the error interface.
func (e *NetworkError) Error() string {
	return fmt.Sprintf("fetch %s: unexpected status %d", e.URL, e.StatusCode)
}

// ParseError reports malformed sitemap content. It aborts the whole run
// since no URLs can be derived from unparseable input.
type ParseError struct {
	// Format is the format that was attempted ("json" or "xml").
	Format string

	// Err is the underlying parse failure.
	Err error
}

// Error implements the error interface.
func (e *ParseError) Error() string {
	return fmt.Sprintf("parse %s sitemap: %v", e.Format, e.Err)
}

// Unwrap returns the underlying error for errors.Is/errors.As.
func (e *ParseError) Unwrap() error {
	return e.Err
}
