package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/nao1215/mapdown/internal/config"
	"github.com/nao1215/mapdown/internal/engine"
	"github.com/nao1215/mapdown/internal/log"
	"github.com/nao1215/mapdown/internal/model"
	"github.com/nao1215/mapdown/internal/pipeline"
	"github.com/nao1215/mapdown/internal/sitemap"
	"github.com/nao1215/mapdown/internal/writer"
	"github.com/spf13/cobra"
)

// NewFetchCmd creates the fetch command.
func NewFetchCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "fetch",
		Short: "Fetch every sitemap URL and save it as Markdown",
		Long: `Fetch reads a sitemap, filters its URLs, retrieves every remaining page,
and writes one Markdown file per page into the output directory.

Engines:
  fetch      plain HTTP GET with local HTML to Markdown conversion (default)
  jina       hosted Jina Reader API (JINA_API_KEY recommended)
  firecrawl  Firecrawl scrape API (FIRECRAWL_API_KEY required)

A single page's failure never aborts the run; the final summary reports
success and error counts.

Examples:
  # Convert a documentation site
  mapdown fetch -i https://example.com/sitemap.xml -o docs/

  # Only guide pages, skip the blog, URL-derived filenames
  mapdown fetch -i sitemap.xml -o docs/ \
    --include-pattern /guides/ --exclude-pattern /blog/ --title-type url

  # Use the Jina Reader with server-side content selection
  mapdown fetch -i sitemap.xml -o docs/ --engine jina \
    --target-selector article --remove-selector "nav,.footer"`,
		Args: cobra.NoArgs,
		RunE: runFetchCmd,
	}

	// Input/output flags
	cmd.Flags().StringP("input", "i", "", "Sitemap path or URL (required)")
	cmd.Flags().StringP("output", "o", "", "Output directory (required)")

	// Engine and naming flags
	cmd.Flags().StringP("engine", "e", string(config.EngineDirect),
		"Fetch engine: fetch, jina, or firecrawl")
	cmd.Flags().StringP("title-type", "t", string(model.TitlePage),
		"Filename source: page (HTML title) or url (last path segment)")
	cmd.Flags().BoolP("numeric-prefix", "n", false,
		"Prefix filenames with a zero-padded position index")

	// Filter flags
	cmd.Flags().StringArray("include-pattern", nil,
		"Keep only URLs containing this substring (repeatable)")
	cmd.Flags().StringArray("exclude-pattern", nil,
		"Drop URLs containing this substring (repeatable)")

	// Hosted engine selectors
	cmd.Flags().String("target-selector", "",
		"Comma-separated CSS selectors to extract (jina/firecrawl)")
	cmd.Flags().String("remove-selector", "",
		"Comma-separated CSS selectors to exclude (jina/firecrawl)")

	// Throttling flags
	cmd.Flags().Duration("timeout", config.DefaultTimeout,
		"HTTP timeout per request")
	cmd.Flags().Duration("delay", config.DefaultDelay,
		"Pause between pages in sequential mode")
	cmd.Flags().Int("chunk-size", config.DefaultChunkSize,
		"Concurrent pages per chunk for hosted engines")

	// Configuration file and manifest
	cmd.Flags().StringP("config", "c", "",
		"Configuration file path (default: .mapdown in current dir or XDG config dir)")
	cmd.Flags().Bool("manifest", false,
		"Write a manifest.md run summary into the output directory")

	return cmd
}

// runFetchCmd executes the fetch command.
func runFetchCmd(cmd *cobra.Command, _ []string) error {
	cfg, err := buildFetchConfig(cmd)
	if err != nil {
		return err
	}
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("configuration error: %w", err)
	}

	logger := log.NewSecureLogger(cmd.ErrOrStderr(), cfg.Verbose)
	slog.SetDefault(logger)

	// Cancel the run on interrupt so a hung fetch cannot stall forever.
	ctx, cancel := context.WithCancel(cmd.Context())
	defer cancel()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)
	defer signal.Stop(sigCh)
	go func() {
		select {
		case <-sigCh:
			logger.Info("received shutdown signal, cancelling...")
			cancel()
		case <-ctx.Done():
		}
	}()

	return runFetch(ctx, cfg, logger, cmd.OutOrStdout())
}

// buildFetchConfig assembles the run configuration: defaults, then the
// config file, then environment API keys, then explicit flags.
func buildFetchConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg := config.NewConfig()

	configPath, err := cmd.Flags().GetString("config")
	if err != nil {
		return nil, err
	}
	if err := applyConfigFile(cfg, configPath); err != nil {
		return nil, err
	}
	cfg.LoadAPIKeys()

	cfg.Input, err = cmd.Flags().GetString("input")
	if err != nil {
		return nil, err
	}
	cfg.Output, err = cmd.Flags().GetString("output")
	if err != nil {
		return nil, err
	}

	// Enum flags only override the file when set explicitly; their defaults
	// would otherwise stomp file values.
	if cmd.Flags().Changed("engine") {
		raw, err := cmd.Flags().GetString("engine")
		if err != nil {
			return nil, err
		}
		cfg.Engine, err = config.ParseEngine(raw)
		if err != nil {
			return nil, err
		}
	}
	if cmd.Flags().Changed("title-type") {
		raw, err := cmd.Flags().GetString("title-type")
		if err != nil {
			return nil, err
		}
		cfg.TitleType, err = config.ParseTitleType(raw)
		if err != nil {
			return nil, err
		}
	}
	if cmd.Flags().Changed("target-selector") {
		if cfg.TargetSelector, err = cmd.Flags().GetString("target-selector"); err != nil {
			return nil, err
		}
	}
	if cmd.Flags().Changed("remove-selector") {
		if cfg.RemoveSelector, err = cmd.Flags().GetString("remove-selector"); err != nil {
			return nil, err
		}
	}

	cfg.NumericPrefix, err = cmd.Flags().GetBool("numeric-prefix")
	if err != nil {
		return nil, err
	}
	cfg.IncludePatterns, err = cmd.Flags().GetStringArray("include-pattern")
	if err != nil {
		return nil, err
	}
	cfg.ExcludePatterns, err = cmd.Flags().GetStringArray("exclude-pattern")
	if err != nil {
		return nil, err
	}
	cfg.Timeout, err = cmd.Flags().GetDuration("timeout")
	if err != nil {
		return nil, err
	}
	cfg.Delay, err = cmd.Flags().GetDuration("delay")
	if err != nil {
		return nil, err
	}
	cfg.ChunkSize, err = cmd.Flags().GetInt("chunk-size")
	if err != nil {
		return nil, err
	}
	cfg.Manifest, err = cmd.Flags().GetBool("manifest")
	if err != nil {
		return nil, err
	}
	cfg.Verbose = getVerboseFlag(cmd)

	return cfg, nil
}

// applyConfigFile loads and applies the configuration file. An explicitly
// specified file must exist; a discovered one is optional.
func applyConfigFile(cfg *config.Config, configPath string) error {
	cfg.ConfigFilePath = configPath
	found := config.FindConfigFile(configPath)
	if found == "" {
		if configPath != "" {
			return fmt.Errorf("configuration file not found: %s", configPath)
		}
		return nil
	}

	file, err := config.LoadConfigFile(found)
	if err != nil {
		return fmt.Errorf("failed to load config file %s: %w", found, err)
	}
	return file.Apply(cfg)
}

// getVerboseFlag retrieves the verbose flag from the command or its parent.
func getVerboseFlag(cmd *cobra.Command) bool {
	verbose, err := cmd.Flags().GetBool("verbose")
	if err != nil {
		verbose, err = cmd.Root().PersistentFlags().GetBool("verbose")
		if err != nil {
			return false
		}
	}
	return verbose
}

// runFetch executes the sitemap-to-Markdown pipeline.
func runFetch(ctx context.Context, cfg *config.Config, logger *slog.Logger, stdout io.Writer) error {
	started := time.Now()

	urls, source, err := resolveURLs(ctx, cfg, logger)
	if err != nil {
		return err
	}
	logger.Info("sitemap resolved", "source", source, "urls", len(urls))

	eng, err := buildEngine(cfg)
	if err != nil {
		return err
	}

	out, err := writer.New(cfg.Output)
	if err != nil {
		return err
	}

	runner := pipeline.NewRunner(eng, out, cfg.Policy(),
		pipeline.WithDelay(cfg.Delay),
		pipeline.WithChunkSize(cfg.ChunkSize),
		pipeline.WithConcurrentChunks(cfg.Engine != config.EngineDirect),
		pipeline.WithLogger(logger),
	)

	results, stats, runErr := runner.Run(ctx, urls)

	if cfg.Manifest {
		if err := writeManifest(cfg, out.Dir(), started, stats, results); err != nil {
			logger.Warn("failed to write manifest", "error", err)
		}
	}

	// The summary is always reported, even when every page failed or the
	// run was cancelled midway.
	fmt.Fprintf(stdout, "%d succeeded, %d failed (saved to %s)\n",
		stats.Succeeded, stats.Failed, out.Dir())

	return runErr
}

// resolveURLs runs source resolution, extraction, and filtering.
func resolveURLs(ctx context.Context, cfg *config.Config, logger *slog.Logger) ([]string, model.Source, error) {
	resolver := sitemap.NewResolver(
		sitemap.WithTimeout(cfg.Timeout),
		sitemap.WithUserAgent(config.DefaultUserAgent),
	)

	content, err := resolver.Resolve(ctx, cfg.Input)
	if err != nil {
		return nil, "", err
	}

	result, err := sitemap.Extract(content, cfg.Input)
	if err != nil {
		return nil, "", err
	}
	if sitemap.IsRemote(cfg.Input) {
		result.Source = model.SourceURL
	}
	if len(result.URLs) == 0 {
		return nil, "", sitemap.ErrNoURLs
	}

	filtered, err := sitemap.Filter(result.URLs, cfg.Patterns())
	logger.Info("urls filtered",
		"total", filtered.Total,
		"after_include", filtered.AfterInclude,
		"after_exclude", filtered.AfterExclude,
	)
	if err != nil {
		return nil, "", err
	}
	return filtered.URLs, result.Source, nil
}

// buildEngine constructs the configured fetch engine.
func buildEngine(cfg *config.Config) (engine.Engine, error) {
	client := &http.Client{Timeout: cfg.Timeout}

	switch cfg.Engine {
	case config.EngineJina:
		return engine.NewJina(client, cfg.JinaAPIKey,
			engine.WithJinaSelectors(cfg.TargetSelector, cfg.RemoveSelector),
		), nil
	case config.EngineFirecrawl:
		return engine.NewFirecrawl(cfg.FirecrawlAPIKey, cfg.FirecrawlRate,
			engine.WithFirecrawlSelectors(cfg.TargetSelector, cfg.RemoveSelector),
		)
	default:
		return engine.NewDirect(client,
			engine.WithDirectUserAgent(config.DefaultUserAgent),
		), nil
	}
}

// writeManifest writes the manifest.md run summary into the output directory.
func writeManifest(cfg *config.Config, dir string, started time.Time, stats model.BatchStats, results []pipeline.Result) error {
	f, err := os.Create(filepath.Join(dir, "manifest.md")) //nolint:gosec // Manifest lives in the user's output dir
	if err != nil {
		return err
	}

	writeErr := writer.WriteManifest(f, writer.Manifest{
		Input:   cfg.Input,
		Engine:  string(cfg.Engine),
		Started: started,
		Stats:   stats,
		Entries: pipeline.ManifestEntries(results),
	})
	return errors.Join(writeErr, f.Close())
}
