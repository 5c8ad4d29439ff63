package model

// Source identifies where sitemap content came from.
// It is recorded for diagnostics only and never changes pipeline behavior.
type Source string

const (
	// SourceURL means the sitemap was fetched over HTTP.
	SourceURL Source = "url"

	// SourceXML means the sitemap was read from a local XML file.
	SourceXML Source = "xml"

	// SourceJSON means the URL list was read from a local JSON file.
	SourceJSON Source = "json"
)

// SitemapResult is the ordered list of URLs extracted from a sitemap.
// It is produced once per run and is immutable afterward.
type SitemapResult struct {
	// URLs holds the extracted URL strings in document order.
	// Duplicates are preserved; deduplication is intentionally not performed.
	URLs []string

	// Source records where the sitemap content came from.
	Source Source
}

// FilterPatterns holds include/exclude substring pattern sets for URL
// filtering. Both sets are optional. An empty Include set means "keep all".
type FilterPatterns struct {
	// Include keeps a URL when it contains at least one of these substrings.
	Include []string

	// Exclude drops a URL when it contains at least one of these substrings.
	// Exclusion is applied after inclusion.
	Exclude []string
}

// ListDocument is the JSON document shape used by list mode for both input
// and output. Container and ExcludeSelectors are passthrough fields: they are
// copied from a JSON input to a JSON output without interpretation.
type ListDocument struct {
	URLs             []string `json:"urls"`
	Container        string   `json:"container,omitempty"`
	ExcludeSelectors string   `json:"excludeSelectors,omitempty"`
}
