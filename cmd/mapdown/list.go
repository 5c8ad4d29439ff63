package main

import (
	"fmt"
	"log/slog"
	"path/filepath"
	"strings"

	"github.com/nao1215/mapdown/internal/config"
	"github.com/nao1215/mapdown/internal/log"
	"github.com/nao1215/mapdown/internal/sitemap"
	"github.com/nao1215/mapdown/internal/writer"
	"github.com/spf13/cobra"
)

// NewListCmd creates the list command.
func NewListCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "Convert a sitemap into a flat URL list",
		Long: `List reads a sitemap, filters its URLs, and writes them to a flat file
without fetching any page.

The output format follows the output extension: .json writes
{"urls": [...]}, anything else writes one URL per line. A JSON input's
container/excludeSelectors fields are carried through to a JSON output.

Examples:
  mapdown list -i https://example.com/sitemap.xml -o urls.txt
  mapdown list -i sitemap.json -o urls.json --include-pattern /docs/`,
		Args: cobra.NoArgs,
		RunE: runListCmd,
	}

	cmd.Flags().StringP("input", "i", "", "Sitemap path or URL (required)")
	cmd.Flags().StringP("output", "o", "", "Output file path (required)")
	cmd.Flags().StringArray("include-pattern", nil,
		"Keep only URLs containing this substring (repeatable)")
	cmd.Flags().StringArray("exclude-pattern", nil,
		"Drop URLs containing this substring (repeatable)")
	cmd.Flags().Duration("timeout", config.DefaultTimeout,
		"HTTP timeout for fetching a remote sitemap")

	return cmd
}

// runListCmd executes the list command.
func runListCmd(cmd *cobra.Command, _ []string) error {
	cfg := config.NewConfig()

	var err error
	if cfg.Input, err = cmd.Flags().GetString("input"); err != nil {
		return err
	}
	if cfg.Output, err = cmd.Flags().GetString("output"); err != nil {
		return err
	}
	if cfg.IncludePatterns, err = cmd.Flags().GetStringArray("include-pattern"); err != nil {
		return err
	}
	if cfg.ExcludePatterns, err = cmd.Flags().GetStringArray("exclude-pattern"); err != nil {
		return err
	}
	if cfg.Timeout, err = cmd.Flags().GetDuration("timeout"); err != nil {
		return err
	}
	cfg.Verbose = getVerboseFlag(cmd)
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("configuration error: %w", err)
	}

	logger := log.NewSecureLogger(cmd.ErrOrStderr(), cfg.Verbose)
	slog.SetDefault(logger)

	return runList(cmd, cfg, logger)
}

// runList executes the sitemap-to-list pipeline.
func runList(cmd *cobra.Command, cfg *config.Config, logger *slog.Logger) error {
	resolver := sitemap.NewResolver(
		sitemap.WithTimeout(cfg.Timeout),
		sitemap.WithUserAgent(config.DefaultUserAgent),
	)

	content, err := resolver.Resolve(cmd.Context(), cfg.Input)
	if err != nil {
		return err
	}

	doc, source, err := sitemap.ExtractList(content, cfg.Input)
	if err != nil {
		return err
	}
	if len(doc.URLs) == 0 {
		return sitemap.ErrNoURLs
	}
	logger.Info("sitemap resolved", "source", source, "urls", len(doc.URLs))

	filtered, err := sitemap.Filter(doc.URLs, cfg.Patterns())
	logger.Info("urls filtered",
		"total", filtered.Total,
		"after_include", filtered.AfterInclude,
		"after_exclude", filtered.AfterExclude,
	)
	if err != nil {
		return err
	}
	doc.URLs = filtered.URLs

	if strings.EqualFold(filepath.Ext(cfg.Output), ".json") {
		err = writer.WriteJSONList(cfg.Output, doc)
	} else {
		err = writer.WriteTextList(cfg.Output, doc.URLs)
	}
	if err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "%d URLs written to %s\n", len(doc.URLs), cfg.Output)
	return nil
}
