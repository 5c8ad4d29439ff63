package engine

import (
	"context"
	"errors"
	"regexp"
	"strings"

	"github.com/nao1215/mapdown/internal/model"
)

// ErrEmptyContent reports that an engine returned blank content for a URL.
// It is recovered as a per-URL failure and never aborts the batch.
var ErrEmptyContent = errors.New("engine returned empty content")

// Engine retrieves a single URL's content and a derived title.
//
// Fetch never propagates per-URL failures as errors: network problems,
// non-2xx responses, and empty content are all captured in the returned
// FetchOutcome with Success=false.
type Engine interface {
	// Fetch retrieves and converts one URL.
	Fetch(ctx context.Context, url string) model.FetchOutcome

	// Name returns the engine's name for logging and manifests.
	Name() string
}

// titlePattern extracts the page title from raw HTML.
var titlePattern = regexp.MustCompile(`(?is)<title[^>]*>(.*?)</title>`)

// htmlTitle returns the trimmed <title> content of an HTML document, or ""
// when there is none.
func htmlTitle(html string) string {
	m := titlePattern.FindStringSubmatch(html)
	if m == nil {
		return ""
	}
	return strings.TrimSpace(m[1])
}

// success builds a successful outcome, rejecting blank content.
// A URL yielding only whitespace after fetch and conversion is an error,
// not a silent skip.
func success(url, title, content string) model.FetchOutcome {
	if strings.TrimSpace(content) == "" {
		return failure(url, ErrEmptyContent)
	}
	return model.FetchOutcome{
		URL:     url,
		Title:   title,
		Content: content,
		Success: true,
	}
}

// failure builds a failed outcome carrying the error text.
func failure(url string, err error) model.FetchOutcome {
	return model.FetchOutcome{
		URL: url,
		Err: err.Error(),
	}
}
