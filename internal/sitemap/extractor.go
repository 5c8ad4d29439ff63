package sitemap

import (
	"encoding/json"
	"net/url"
	"path"
	"regexp"
	"strings"

	"github.com/nao1215/mapdown/internal/model"
)

// locPattern matches <loc>...</loc> tag pairs in document order.
// A text pattern match is sufficient here; see the package comment for why
// this is deliberately not a structural XML parse.
var locPattern = regexp.MustCompile(`(?s)<loc>\s*(.*?)\s*</loc>`)

// Extract parses raw sitemap content into an ordered URL list.
//
// Format detection order: an explicit .json/.xml extension on the hint (the
// original path or URL) takes priority; when the hint is ambiguous, the
// trimmed content is sniffed — a leading '{' or '[' means JSON, anything
// else is treated as XML.
//
// Output order matches input order and duplicates are preserved.
func Extract(content, hint string) (model.SitemapResult, error) {
	doc, source, err := ExtractList(content, hint)
	if err != nil {
		return model.SitemapResult{}, err
	}
	return model.SitemapResult{URLs: doc.URLs, Source: source}, nil
}

// ExtractList parses raw sitemap content like Extract, but also surfaces the
// passthrough fields (container, excludeSelectors) of a JSON input so list
// mode can carry them into a JSON output.
func ExtractList(content, hint string) (model.ListDocument, model.Source, error) {
	switch detectFormat(content, hint) {
	case model.SourceJSON:
		doc, err := extractJSON(content)
		return doc, model.SourceJSON, err
	default:
		return model.ListDocument{URLs: extractXML(content)}, model.SourceXML, nil
	}
}

// detectFormat decides between JSON and XML for the given content and hint.
func detectFormat(content, hint string) model.Source {
	switch hintExtension(hint) {
	case ".json":
		return model.SourceJSON
	case ".xml":
		return model.SourceXML
	}

	trimmed := strings.TrimSpace(content)
	if strings.HasPrefix(trimmed, "{") || strings.HasPrefix(trimmed, "[") {
		return model.SourceJSON
	}
	return model.SourceXML
}

// hintExtension returns the lowercase extension of a path or URL hint.
// For URLs the query and fragment are ignored so "sitemap.xml?page=2"
// still hints XML.
func hintExtension(hint string) string {
	if u, err := url.Parse(hint); err == nil && u.Path != "" {
		hint = u.Path
	}
	return strings.ToLower(path.Ext(hint))
}

// extractXML collects all <loc> tag contents in document order.
// Tags may be nested arbitrarily elsewhere in the document; only the loc
// pairs matter.
func extractXML(content string) []string {
	matches := locPattern.FindAllStringSubmatch(content, -1)
	urls := make([]string, 0, len(matches))
	for _, m := range matches {
		if loc := strings.TrimSpace(m[1]); loc != "" {
			urls = append(urls, loc)
		}
	}
	return urls
}

// extractJSON parses a JSON URL list. Supported shapes are a mapping with a
// "urls" array and a bare array. Elements that are not non-empty strings are
// dropped. Any other valid JSON shape yields an empty result with no error;
// malformed JSON is a ParseError.
func extractJSON(content string) (model.ListDocument, error) {
	var value any
	if err := json.Unmarshal([]byte(content), &value); err != nil {
		return model.ListDocument{}, &ParseError{Format: "json", Err: err}
	}

	var doc model.ListDocument
	switch v := value.(type) {
	case map[string]any:
		if arr, ok := v["urls"].([]any); ok {
			doc.URLs = stringElements(arr)
		}
		if s, ok := v["container"].(string); ok {
			doc.Container = s
		}
		if s, ok := v["excludeSelectors"].(string); ok {
			doc.ExcludeSelectors = s
		}
	case []any:
		doc.URLs = stringElements(v)
	}
	return doc, nil
}

// stringElements keeps the non-empty string elements of a decoded array.
func stringElements(arr []any) []string {
	urls := make([]string, 0, len(arr))
	for _, elem := range arr {
		if s, ok := elem.(string); ok && s != "" {
			urls = append(urls, s)
		}
	}
	return urls
}
