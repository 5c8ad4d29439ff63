package model

// FetchOutcome is the result of fetching and converting a single URL.
// Engines never return an error for per-URL failures; the failure is
// captured here so a batch can continue past it.
type FetchOutcome struct {
	// URL is the page that was fetched.
	URL string

	// Title is the page title derived by the engine. It may be empty when
	// the page carries no usable title; filename derivation falls back to
	// the URL path in that case.
	Title string

	// Content is the page content as Markdown.
	Content string

	// Success reports whether the fetch produced usable content.
	Success bool

	// Err holds the failure description when Success is false.
	Err string
}

// TitleType selects how output filenames are derived.
type TitleType string

const (
	// TitlePage derives filenames from the page's HTML title, falling back
	// to the URL path when the title sanitizes to nothing.
	TitlePage TitleType = "page"

	// TitleURL derives filenames from the URL's last path segment.
	TitleURL TitleType = "url"
)

// NamingPolicy determines how a FetchOutcome and positional index become a
// filesystem-safe base name.
type NamingPolicy struct {
	// TitleType selects the naming source.
	TitleType TitleType

	// NumericPrefix prepends a zero-padded 1-based index, padded to the
	// decimal width of the run's URL count. TitleURL naming always carries
	// the prefix regardless of this flag.
	NumericPrefix bool
}

// BatchStats accumulates per-URL results for a run. It is owned solely by
// the batch runner and reported once at the end, never reset mid-run.
type BatchStats struct {
	// Succeeded counts URLs that produced an output file.
	Succeeded int

	// Failed counts URLs whose fetch, conversion, or write failed.
	Failed int
}

// Total returns the number of URLs processed.
// Invariant: Total always equals the length of the runner's input.
func (s BatchStats) Total() int {
	return s.Succeeded + s.Failed
}
