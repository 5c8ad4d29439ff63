package engine

import (
	"context"
	"fmt"
	"strings"

	"github.com/mendableai/firecrawl-go"
	"github.com/nao1215/mapdown/internal/model"
	"golang.org/x/time/rate"
)

// scrapeClient is the slice of the Firecrawl client library this engine
// uses. An interface keeps the engine testable without network access.
type scrapeClient interface {
	ScrapeURL(url string, params *firecrawl.ScrapeParams) (*firecrawl.FirecrawlDocument, error)
}

// Firecrawl fetches pages through the Firecrawl scrape API. The provider
// returns Markdown directly with boilerplate already removed.
//
// Calls pass through a token-bucket limiter beneath the batch chunking so
// the provider's rate limit is respected even when a whole chunk is in
// flight at once.
type Firecrawl struct {
	client  scrapeClient
	limiter *rate.Limiter

	// includeTags and excludeTags are CSS tag lists forwarded to the
	// provider, derived by splitting comma-separated selector strings.
	includeTags []string
	excludeTags []string
}

// FirecrawlOption configures a Firecrawl engine.
type FirecrawlOption func(*Firecrawl)

// WithFirecrawlSelectors sets the comma-separated include/exclude selector
// lists forwarded to the provider.
func WithFirecrawlSelectors(target, remove string) FirecrawlOption {
	return func(f *Firecrawl) {
		f.includeTags = splitSelectors(target)
		f.excludeTags = splitSelectors(remove)
	}
}

// WithFirecrawlLimiter overrides the request limiter. Used by tests.
func WithFirecrawlLimiter(l *rate.Limiter) FirecrawlOption {
	return func(f *Firecrawl) {
		f.limiter = l
	}
}

// WithFirecrawlClient overrides the scrape client. Used by tests.
func WithFirecrawlClient(c scrapeClient) FirecrawlOption {
	return func(f *Firecrawl) {
		f.client = c
	}
}

// NewFirecrawl creates a Firecrawl engine with the given API key.
// requestsPerMinute bounds the call rate; the provider's free tier allows
// roughly 10 scrapes a minute.
func NewFirecrawl(apiKey string, requestsPerMinute int, opts ...FirecrawlOption) (*Firecrawl, error) {
	if requestsPerMinute <= 0 {
		requestsPerMinute = 10
	}

	f := &Firecrawl{
		limiter: rate.NewLimiter(rate.Limit(float64(requestsPerMinute)/60.0), 1),
	}
	for _, opt := range opts {
		opt(f)
	}

	if f.client == nil {
		app, err := firecrawl.NewFirecrawlApp(apiKey, "")
		if err != nil {
			return nil, fmt.Errorf("initialize firecrawl client: %w", err)
		}
		f.client = app
	}
	return f, nil
}

// Name implements Engine.
func (f *Firecrawl) Name() string { return "firecrawl" }

// Fetch implements Engine. A non-success provider response is a per-URL
// failure carrying the provider's error message.
func (f *Firecrawl) Fetch(ctx context.Context, rawURL string) model.FetchOutcome {
	if err := f.limiter.Wait(ctx); err != nil {
		return failure(rawURL, err)
	}

	onlyMain := true
	doc, err := f.client.ScrapeURL(rawURL, &firecrawl.ScrapeParams{
		Formats:         []string{"markdown", "rawHtml"},
		OnlyMainContent: &onlyMain,
		IncludeTags:     f.includeTags,
		ExcludeTags:     f.excludeTags,
	})
	if err != nil {
		return failure(rawURL, err)
	}

	title := ""
	if doc.Metadata != nil && doc.Metadata.Title != nil {
		title = strings.TrimSpace(*doc.Metadata.Title)
	}
	// Metadata without a title: fall back to the raw HTML <title> tag.
	if title == "" {
		title = htmlTitle(doc.RawHTML)
	}

	if strings.TrimSpace(doc.Markdown) == "" {
		return failure(rawURL, ErrEmptyContent)
	}
	return success(rawURL, title, doc.Markdown)
}

// splitSelectors splits a comma-separated CSS selector list into trimmed,
// non-empty elements.
func splitSelectors(s string) []string {
	if strings.TrimSpace(s) == "" {
		return nil
	}
	parts := strings.Split(s, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
