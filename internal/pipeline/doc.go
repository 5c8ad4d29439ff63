// Package pipeline orchestrates the per-URL fetch work for a run.
//
// The Runner drives fetch, filename derivation, and disk write for every
// filtered URL, in one of two modes:
//   - sequential: input order with a fixed pause between completions
//   - chunked: fixed-size chunks processed fully in parallel, one chunk at
//     a time, so peak concurrency stays bounded
//
// A single URL's failure never aborts the run. Each URL increments exactly
// one of the success/error counters, so the final tally always sums to the
// input length. The tally is an explicit accumulator folded from completed
// results, never shared mutable state.
package pipeline
