package config

import (
	"fmt"
	"path/filepath"
	"time"

	"github.com/adrg/xdg"
	"github.com/nao1215/mapdown/internal/model"
)

// Default configuration values.
const (
	// AppName is the application name, used for XDG directory paths.
	AppName = "mapdown"

	// DefaultTimeout is the per-request HTTP timeout. 30 seconds is
	// generous enough for slow documentation hosts and hosted reader APIs.
	DefaultTimeout = 30 * time.Second

	// DefaultDelay is the pause between completions in sequential mode.
	DefaultDelay = 50 * time.Millisecond

	// DefaultChunkSize is the per-chunk parallelism for hosted engines.
	DefaultChunkSize = 50

	// DefaultFirecrawlRate is the Firecrawl call budget in requests per
	// minute, matching the provider's free tier.
	DefaultFirecrawlRate = 10

	// DefaultUserAgent identifies mapdown in HTTP requests.
	DefaultUserAgent = "mapdown/1.0 (+https://github.com/nao1215/mapdown)"
)

// EngineName selects the fetch engine for a run.
type EngineName string

// Supported fetch engines.
const (
	// EngineDirect fetches pages directly and converts HTML locally.
	EngineDirect EngineName = "fetch"

	// EngineJina fetches pages through the Jina Reader API.
	EngineJina EngineName = "jina"

	// EngineFirecrawl fetches pages through the Firecrawl API.
	EngineFirecrawl EngineName = "firecrawl"
)

// ParseEngine validates and converts an engine flag value.
func ParseEngine(s string) (EngineName, error) {
	switch EngineName(s) {
	case EngineDirect, EngineJina, EngineFirecrawl:
		return EngineName(s), nil
	}
	return "", fmt.Errorf("%w: %q (supported: fetch, jina, firecrawl)", ErrUnknownEngine, s)
}

// ParseTitleType validates and converts a title-type flag value.
func ParseTitleType(s string) (model.TitleType, error) {
	switch model.TitleType(s) {
	case model.TitlePage, model.TitleURL:
		return model.TitleType(s), nil
	}
	return "", fmt.Errorf("%w: %q (supported: page, url)", ErrUnknownTitleType, s)
}

// Config holds all options for a single mapdown run.
//
// Design decision: We use a single flat struct instead of nested sub-structs.
// The number of options is manageable, and nesting would add complexity
// without significant benefit.
type Config struct {
	// Input is the sitemap path or URL. Required.
	Input string

	// Output is the output directory (fetch mode) or file path (list mode).
	// Required.
	Output string

	// Engine selects the fetch engine.
	Engine EngineName

	// TitleType selects the filename derivation source.
	TitleType model.TitleType

	// NumericPrefix prepends zero-padded position indexes to filenames.
	NumericPrefix bool

	// IncludePatterns keeps only URLs containing at least one pattern.
	IncludePatterns []string

	// ExcludePatterns drops URLs containing at least one pattern.
	ExcludePatterns []string

	// TargetSelector is a comma-separated CSS selector list restricting
	// which page regions hosted engines extract.
	TargetSelector string

	// RemoveSelector is a comma-separated CSS selector list excluding page
	// regions server-side.
	RemoveSelector string

	// Timeout is the per-request HTTP timeout.
	Timeout time.Duration

	// Delay is the pause between completions in sequential mode.
	Delay time.Duration

	// ChunkSize bounds per-chunk parallelism for hosted engines.
	ChunkSize int

	// FirecrawlRate is the Firecrawl request budget per minute.
	FirecrawlRate int

	// Manifest enables writing a run manifest into the output directory.
	Manifest bool

	// Verbose enables debug-level logging.
	Verbose bool

	// ConfigFilePath is an explicit configuration file path. When empty,
	// the file is searched in the current directory and the XDG config dir.
	ConfigFilePath string

	// JinaAPIKey is the bearer token for the Jina Reader API.
	JinaAPIKey string

	// FirecrawlAPIKey is the API key for the Firecrawl client.
	FirecrawlAPIKey string
}

// NewConfig creates a Config with default values. Many defaults are
// non-zero, so relying on zero values would misconfigure runs.
func NewConfig() *Config {
	return &Config{
		Engine:        EngineDirect,
		TitleType:     model.TitlePage,
		Timeout:       DefaultTimeout,
		Delay:         DefaultDelay,
		ChunkSize:     DefaultChunkSize,
		FirecrawlRate: DefaultFirecrawlRate,
	}
}

// Policy returns the naming policy described by the configuration.
func (c *Config) Policy() model.NamingPolicy {
	return model.NamingPolicy{
		TitleType:     c.TitleType,
		NumericPrefix: c.NumericPrefix,
	}
}

// Patterns returns the filter pattern sets described by the configuration.
func (c *Config) Patterns() model.FilterPatterns {
	return model.FilterPatterns{
		Include: c.IncludePatterns,
		Exclude: c.ExcludePatterns,
	}
}

// XDGConfigDir returns the XDG config directory for mapdown
// (~/.config/mapdown on Linux).
func XDGConfigDir() string {
	return filepath.Join(xdg.ConfigHome, AppName)
}

// Validate checks the configuration, returning the first problem found.
// It runs once after flag parsing, before any network work begins.
func (c *Config) Validate() error {
	if c.Input == "" {
		return ErrNoInput
	}
	if c.Output == "" {
		return ErrNoOutput
	}
	if c.Timeout <= 0 {
		return ErrInvalidTimeout
	}
	if c.Delay < 0 {
		return ErrInvalidDelay
	}
	if c.ChunkSize <= 0 {
		return ErrInvalidChunkSize
	}
	if _, err := ParseEngine(string(c.Engine)); err != nil {
		return err
	}
	if _, err := ParseTitleType(string(c.TitleType)); err != nil {
		return err
	}
	if c.Engine == EngineFirecrawl && c.FirecrawlAPIKey == "" {
		return ErrNoFirecrawlKey
	}
	return nil
}
