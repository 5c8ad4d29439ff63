package config

import "errors"

// Configuration validation errors.
//
// Design decision: We use package-level sentinel errors rather than creating
// new error instances in Validate(). This allows callers to use errors.Is()
// for programmatic handling while keeping human-readable messages.
var (
	// ErrNoInput is returned when no sitemap path or URL is specified.
	ErrNoInput = errors.New("no input specified: provide a sitemap path or URL with --input")

	// ErrNoOutput is returned when no output destination is specified.
	ErrNoOutput = errors.New("no output specified: provide an output path with --output")

	// ErrInvalidTimeout is returned when the timeout is not positive.
	ErrInvalidTimeout = errors.New("invalid timeout: must be positive")

	// ErrInvalidDelay is returned when the sequential delay is negative.
	ErrInvalidDelay = errors.New("invalid delay: must be non-negative")

	// ErrInvalidChunkSize is returned when the chunk size is not positive.
	ErrInvalidChunkSize = errors.New("invalid chunk size: must be positive")

	// ErrUnknownEngine is returned for an unrecognized --engine value.
	ErrUnknownEngine = errors.New("unknown engine")

	// ErrUnknownTitleType is returned for an unrecognized --title-type value.
	ErrUnknownTitleType = errors.New("unknown title type")

	// ErrNoFirecrawlKey is returned when the firecrawl engine is selected
	// without an API key (FIRECRAWL_API_KEY or the config file).
	ErrNoFirecrawlKey = errors.New("firecrawl engine requires an API key: set FIRECRAWL_API_KEY or firecrawl_api_key in the config file")
)
