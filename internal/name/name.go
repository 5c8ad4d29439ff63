// Package name derives filesystem-safe output filenames from page titles
// and URLs.
//
// Derivation is deterministic: the same inputs always produce the same name.
// Two inputs may still derive the same name; the writer overwrites on
// collision and the pipeline does not deduplicate. This matches the tools
// mapdown replaces and is documented rather than fixed.
package name

import (
	"fmt"
	"net/url"
	"path"
	"regexp"
	"strings"
	"unicode"

	"github.com/nao1215/mapdown/internal/model"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// maxTitleLength caps sanitized title names. Longer titles are cut; the cut
// never ends in a hyphen.
const maxTitleLength = 100

// stripMarks removes diacritics by decomposing to NFD, dropping combining
// marks, and recomposing. "Café" becomes "Cafe".
var stripMarks = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

var (
	unsafeChars  = regexp.MustCompile(`[^a-z0-9\s-]`)
	separatorRun = regexp.MustCompile(`[\s-]+`)
)

// Derive computes the output base name (no extension) for a fetched page.
//
// With TitlePage the sanitized page title is used, falling back to the URL's
// last path segment when sanitization yields nothing usable. With TitleURL
// the segment-derived name is always used. Index is 0-based; when the policy
// carries a numeric prefix (or TitleURL is selected), a 1-based index is
// prepended, zero-padded to the decimal width of total.
func Derive(rawURL, title string, policy model.NamingPolicy, index, total int) string {
	var base string
	switch policy.TitleType {
	case model.TitleURL:
		base = fromURL(rawURL)
	default:
		base = fromTitle(title)
		if base == "" {
			base = fromURL(rawURL)
		}
	}

	if policy.NumericPrefix || policy.TitleType == model.TitleURL {
		width := len(fmt.Sprintf("%d", total))
		base = fmt.Sprintf("%0*d-%s", width, index+1, base)
	}
	return base
}

// fromTitle sanitizes a page title into a base name. It returns "" when the
// title sanitizes to nothing usable so the caller can fall back to the URL.
func fromTitle(title string) string {
	s := strings.ToLower(title)
	if out, _, err := transform.String(stripMarks, s); err == nil {
		s = out
	}
	s = unsafeChars.ReplaceAllString(s, "")
	s = separatorRun.ReplaceAllString(s, "-")
	s = strings.Trim(s, "-")

	if len(s) > maxTitleLength {
		s = strings.TrimRight(s[:maxTitleLength], "-")
	}

	if s == "" || s == "untitled" {
		return ""
	}
	return s
}

// fromURL derives a base name from the URL's last non-empty path segment
// with its extension stripped. An empty path yields "index"; an unparseable
// URL yields "untitled".
func fromURL(rawURL string) string {
	u, err := url.Parse(rawURL)
	if err != nil {
		return "untitled"
	}

	segment := ""
	for _, part := range strings.Split(u.Path, "/") {
		if part != "" {
			segment = part
		}
	}
	if segment == "" {
		return "index"
	}

	segment = strings.TrimSuffix(segment, path.Ext(segment))

	// The segment still passes through sanitization: URL paths may carry
	// encoded spaces, uppercase, or punctuation unfit for filenames.
	if s := fromTitle(segment); s != "" {
		return s
	}
	return "index"
}
