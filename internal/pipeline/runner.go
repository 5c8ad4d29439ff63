package pipeline

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/nao1215/mapdown/internal/engine"
	"github.com/nao1215/mapdown/internal/model"
	"github.com/nao1215/mapdown/internal/name"
	"github.com/nao1215/mapdown/internal/writer"
	"golang.org/x/sync/errgroup"
)

// Runner defaults.
const (
	// DefaultDelay is the pause between completions in sequential mode.
	// It throttles outbound request rate without real rate limiting.
	DefaultDelay = 50 * time.Millisecond

	// DefaultChunkSize is the number of URLs processed in parallel per
	// chunk in concurrent mode.
	DefaultChunkSize = 50
)

// Result records one URL's outcome, in input order.
type Result struct {
	// URL is the processed page.
	URL string

	// Filename is the written file name including extension, empty when
	// the URL failed.
	Filename string

	// Success reports whether an output file was written.
	Success bool

	// Err holds the failure description when Success is false.
	Err string
}

// Runner drives all per-URL work for a run.
type Runner struct {
	// engine fetches and converts a single URL.
	engine engine.Engine

	// writer persists one file per successful URL.
	writer *writer.Writer

	// policy controls filename derivation.
	policy model.NamingPolicy

	// delay is the pause between completions in sequential mode.
	delay time.Duration

	// chunkSize bounds per-chunk parallelism in concurrent mode.
	chunkSize int

	// concurrent selects chunked parallel processing over sequential.
	concurrent bool

	// logger is used for per-URL and summary logging.
	logger *slog.Logger
}

// Option configures a Runner.
type Option func(*Runner)

// WithDelay sets the pause between completions in sequential mode.
func WithDelay(d time.Duration) Option {
	return func(r *Runner) {
		if d >= 0 {
			r.delay = d
		}
	}
}

// WithChunkSize sets the chunk size for concurrent mode.
func WithChunkSize(n int) Option {
	return func(r *Runner) {
		if n > 0 {
			r.chunkSize = n
		}
	}
}

// WithConcurrentChunks enables chunked parallel processing. Hosted engines
// use this; the direct engine defaults to sequential.
func WithConcurrentChunks(concurrent bool) Option {
	return func(r *Runner) {
		r.concurrent = concurrent
	}
}

// WithLogger sets a custom logger for the runner.
func WithLogger(logger *slog.Logger) Option {
	return func(r *Runner) {
		r.logger = logger
	}
}

// NewRunner creates a Runner for the given engine, writer, and naming policy.
func NewRunner(e engine.Engine, w *writer.Writer, policy model.NamingPolicy, opts ...Option) *Runner {
	r := &Runner{
		engine:    e,
		writer:    w,
		policy:    policy,
		delay:     DefaultDelay,
		chunkSize: DefaultChunkSize,
	}

	for _, opt := range opts {
		opt(r)
	}

	if r.logger == nil {
		r.logger = slog.Default()
	}
	return r
}

// Run processes all URLs and returns the per-URL results in input order
// together with the final tally.
//
// Per-URL failures are logged and counted, never propagated; the returned
// error is non-nil only when the context was cancelled, and the results
// collected so far are still returned.
func (r *Runner) Run(ctx context.Context, urls []string) ([]Result, model.BatchStats, error) {
	r.logger.Info("starting batch",
		"engine", r.engine.Name(),
		"total_urls", len(urls),
		"concurrent", r.concurrent,
	)
	startTime := time.Now()

	var (
		results []Result
		err     error
	)
	if r.concurrent {
		results, err = r.runChunked(ctx, urls)
	} else {
		results, err = r.runSequential(ctx, urls)
	}

	stats := foldStats(results)
	r.logger.Info("batch complete",
		"succeeded", stats.Succeeded,
		"failed", stats.Failed,
		"elapsed", time.Since(startTime),
	)
	return results, stats, err
}

// runSequential processes URLs one at a time in input order, pausing
// between completions but not before the first URL.
func (r *Runner) runSequential(ctx context.Context, urls []string) ([]Result, error) {
	results := make([]Result, 0, len(urls))

	for i, u := range urls {
		if i > 0 && r.delay > 0 {
			if err := sleepContext(ctx, r.delay); err != nil {
				return results, err
			}
		}
		if err := ctx.Err(); err != nil {
			return results, err
		}
		results = append(results, r.process(ctx, i, len(urls), u))
	}
	return results, nil
}

// runChunked partitions URLs into fixed-size chunks and processes one
// chunk's URLs fully in parallel. Chunk N+1 never starts before chunk N has
// settled completely; the tally is folded from each chunk's completed
// result set.
func (r *Runner) runChunked(ctx context.Context, urls []string) ([]Result, error) {
	results := make([]Result, len(urls))

	for start := 0; start < len(urls); start += r.chunkSize {
		if err := ctx.Err(); err != nil {
			return compact(results), err
		}

		end := min(start+r.chunkSize, len(urls))
		r.logger.Debug("processing chunk",
			"from", start+1,
			"to", end,
			"total", len(urls),
		)

		var g errgroup.Group
		var mu sync.Mutex
		for i := start; i < end; i++ {
			g.Go(func() error {
				res := r.process(ctx, i, len(urls), urls[i])

				mu.Lock()
				results[i] = res
				mu.Unlock()
				return nil
			})
		}
		// Per-URL failures live in the results, so Wait only reports
		// goroutine panics; there is nothing to handle here.
		_ = g.Wait() //nolint:errcheck
	}
	return results, nil
}

// process handles one URL end to end: fetch, derive the filename, write.
func (r *Runner) process(ctx context.Context, index, total int, url string) Result {
	outcome := r.engine.Fetch(ctx, url)
	if !outcome.Success {
		r.logger.Warn("  page failed", "url", url, "error", outcome.Err)
		return Result{URL: url, Err: outcome.Err}
	}

	base := name.Derive(url, outcome.Title, r.policy, index, total)
	if err := r.writer.WriteMarkdown(base, outcome.Content); err != nil {
		r.logger.Warn("  page failed", "url", url, "error", err)
		return Result{URL: url, Err: err.Error()}
	}

	r.logger.Debug("page saved", "url", url, "file", base+".md")
	return Result{URL: url, Filename: base + ".md", Success: true}
}

// foldStats folds completed results into the final tally. Every processed
// URL counts exactly once.
func foldStats(results []Result) model.BatchStats {
	var stats model.BatchStats
	for _, res := range results {
		if res.Success {
			stats.Succeeded++
		} else {
			stats.Failed++
		}
	}
	return stats
}

// compact drops the zero-valued tail left behind when a chunked run is
// cancelled before later chunks start.
func compact(results []Result) []Result {
	out := make([]Result, 0, len(results))
	for _, res := range results {
		if res.URL != "" {
			out = append(out, res)
		}
	}
	return out
}

// sleepContext pauses for d unless the context is cancelled first.
func sleepContext(ctx context.Context, d time.Duration) error {
	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}

// ManifestEntries converts runner results into manifest entries.
func ManifestEntries(results []Result) []writer.ManifestEntry {
	entries := make([]writer.ManifestEntry, 0, len(results))
	for _, res := range results {
		entries = append(entries, writer.ManifestEntry{
			URL:      res.URL,
			Filename: res.Filename,
			Err:      res.Err,
		})
	}
	return entries
}
