package writer

import (
	"io"
	"strconv"
	"time"

	"github.com/nao1215/markdown"
	"github.com/nao1215/mapdown/internal/model"
)

// ManifestEntry records one URL's outcome for the run manifest.
type ManifestEntry struct {
	// URL is the fetched page.
	URL string

	// Filename is the written file name (with extension), empty on failure.
	Filename string

	// Err holds the failure description for failed URLs.
	Err string
}

// Manifest summarizes a fetch run for human review.
type Manifest struct {
	// Input is the sitemap path or URL the run started from.
	Input string

	// Engine is the fetch engine name.
	Engine string

	// Started is when the run began.
	Started time.Time

	// Stats holds the final success/error tally.
	Stats model.BatchStats

	// Entries lists per-URL outcomes in input order.
	Entries []ManifestEntry
}

// WriteManifest renders the manifest as Markdown.
//
// Design decision: We use the nao1215/markdown library for fluent, type-safe
// markdown generation instead of string concatenation.
func WriteManifest(w io.Writer, m Manifest) error {
	md := markdown.NewMarkdown(w)

	md.H1("mapdown run")
	md.PlainText("")

	md.Table(markdown.TableSet{
		Header: []string{"Property", "Value"},
		Rows: [][]string{
			{"Input", "`" + m.Input + "`"},
			{"Engine", m.Engine},
			{"Started", m.Started.Format("2006-01-02 15:04:05 MST")},
			{"Succeeded", strconv.Itoa(m.Stats.Succeeded)},
			{"Failed", strconv.Itoa(m.Stats.Failed)},
		},
	})
	md.PlainText("")

	if len(m.Entries) > 0 {
		md.H2("Pages")
		md.PlainText("")

		rows := make([][]string, 0, len(m.Entries))
		for _, e := range m.Entries {
			rows = append(rows, []string{e.URL, entryStatus(e)})
		}
		md.Table(markdown.TableSet{
			Header: []string{"URL", "Result"},
			Rows:   rows,
		})
	}

	return md.Build()
}

// entryStatus renders one entry's result cell.
func entryStatus(e ManifestEntry) string {
	if e.Err != "" {
		return "failed: " + e.Err
	}
	return "`" + e.Filename + "`"
}
