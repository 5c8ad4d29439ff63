package sitemap

import (
	"strings"

	"github.com/nao1215/mapdown/internal/model"
)

// FilterResult carries the filtered URL list together with the per-stage
// counts used for reporting.
type FilterResult struct {
	// URLs is the final filtered list, in input order.
	URLs []string

	// Total is the number of URLs before filtering.
	Total int

	// AfterInclude is the count after the include stage.
	AfterInclude int

	// AfterExclude is the count after the exclude stage. This always equals
	// len(URLs).
	AfterExclude int
}

// Filter applies include/exclude substring patterns to a URL list.
//
// Matching is plain case-sensitive substring containment. The include stage
// keeps a URL when it contains at least one include pattern (an empty include
// set keeps everything); the exclude stage then drops a URL when it contains
// at least one exclude pattern.
//
// An empty final set returns ErrAllFiltered; callers must treat this as a
// terminal condition for the run.
func Filter(urls []string, patterns model.FilterPatterns) (FilterResult, error) {
	result := FilterResult{Total: len(urls)}

	included := urls
	if len(patterns.Include) > 0 {
		included = make([]string, 0, len(urls))
		for _, u := range urls {
			if containsAny(u, patterns.Include) {
				included = append(included, u)
			}
		}
	}
	result.AfterInclude = len(included)

	final := included
	if len(patterns.Exclude) > 0 {
		final = make([]string, 0, len(included))
		for _, u := range included {
			if !containsAny(u, patterns.Exclude) {
				final = append(final, u)
			}
		}
	}
	result.AfterExclude = len(final)
	result.URLs = final

	if len(final) == 0 {
		return result, ErrAllFiltered
	}
	return result, nil
}

// containsAny reports whether s contains at least one of the patterns.
func containsAny(s string, patterns []string) bool {
	for _, p := range patterns {
		if strings.Contains(s, p) {
			return true
		}
	}
	return false
}
