// Package model defines the core data structures used throughout mapdown.
//
// This package contains the following main types:
//   - SitemapResult: The ordered URL list produced by sitemap extraction
//   - FetchOutcome: The per-URL result of a fetch engine call
//   - NamingPolicy: How output filenames are derived from titles and URLs
//   - BatchStats: Aggregate success/error counts for a single run
//
// Design decision: We separate models into their own package to avoid circular
// dependencies. Multiple packages (sitemap, engine, pipeline, writer) need
// these types, so centralizing them prevents import cycles.
//
// All state described here is scoped to a single invocation. Nothing is
// persisted across runs.
package model
