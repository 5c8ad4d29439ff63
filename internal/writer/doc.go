// Package writer persists pipeline output to disk.
//
// It provides three output surfaces:
//   - Writer: one Markdown file per fetched URL in an output directory
//   - list outputs: flat .txt / .json URL lists for list mode
//   - Manifest: an optional Markdown summary of a fetch run
//
// Writes are unconditional overwrites. The output directory is created once
// at batch start, not per file; concurrent writes to different filenames are
// safe, while two URLs deriving the same filename are last-writer-wins.
package writer
