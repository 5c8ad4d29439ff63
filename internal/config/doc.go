// Package config holds mapdown's runtime configuration.
//
// Configuration is assembled from three layers, lowest priority first:
// package defaults, the optional YAML configuration file (.mapdown), and
// CLI flags. API keys additionally come from the JINA_API_KEY and
// FIRECRAWL_API_KEY environment variables, which override file values.
//
// The Config struct is populated once at startup and passed through the
// application via dependency injection rather than global state.
package config
