package name

import (
	"strings"
	"testing"

	"github.com/nao1215/mapdown/internal/model"
)

// TestDeriveFromTitle tests page-title naming.
func TestDeriveFromTitle(t *testing.T) {
	t.Parallel()

	policy := model.NamingPolicy{TitleType: model.TitlePage}

	tests := []struct {
		name  string
		url   string
		title string
		want  string
	}{
		{"plain title", "https://a.com/p", "Getting Started", "getting-started"},
		{"diacritics stripped", "https://a.com/p", "Café Été Señor", "cafe-ete-senor"},
		{"punctuation removed", "https://a.com/p", "What's New? (v2.0)", "whats-new-v20"},
		{"hyphen runs collapsed", "https://a.com/p", "a -- b  -  c", "a-b-c"},
		{"empty title falls back to url segment", "https://a.com/guides/setup.html", "", "setup"},
		{"untitled falls back to url segment", "https://a.com/guides/intro", "untitled", "intro"},
		{"symbol-only title falls back", "https://a.com/faq", "???", "faq"},
		{"root path falls back to index", "https://a.com/", "", "index"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := Derive(tt.url, tt.title, policy, 0, 1); got != tt.want {
				t.Errorf("Derive(%q, %q) = %q, want %q", tt.url, tt.title, got, tt.want)
			}
		})
	}

	t.Run("long titles are capped at 100 chars", func(t *testing.T) {
		t.Parallel()

		got := Derive("https://a.com/p", strings.Repeat("word ", 40), policy, 0, 1)
		if len(got) > 100 {
			t.Errorf("expected length <= 100, got %d", len(got))
		}
		if strings.HasSuffix(got, "-") {
			t.Errorf("capped name should not end in a hyphen: %q", got)
		}
	})

	t.Run("deterministic", func(t *testing.T) {
		t.Parallel()

		first := Derive("https://a.com/x", "Some Page", policy, 3, 50)
		for range 10 {
			if got := Derive("https://a.com/x", "Some Page", policy, 3, 50); got != first {
				t.Fatalf("expected %q every time, got %q", first, got)
			}
		}
	})
}

// TestDeriveFromURL tests URL-segment naming.
func TestDeriveFromURL(t *testing.T) {
	t.Parallel()

	policy := model.NamingPolicy{TitleType: model.TitleURL}

	t.Run("uses the last non-empty segment and always prefixes", func(t *testing.T) {
		t.Parallel()

		got := Derive("https://a.com/docs/guide/", "Ignored Title", policy, 0, 9)
		if got != "1-guide" {
			t.Errorf("expected %q, got %q", "1-guide", got)
		}
	})

	t.Run("strips the extension", func(t *testing.T) {
		t.Parallel()

		got := Derive("https://a.com/docs/setup.html", "", policy, 0, 9)
		if got != "1-setup" {
			t.Errorf("expected %q, got %q", "1-setup", got)
		}
	})

	t.Run("empty path yields index", func(t *testing.T) {
		t.Parallel()

		got := Derive("https://a.com", "", policy, 0, 9)
		if got != "1-index" {
			t.Errorf("expected %q, got %q", "1-index", got)
		}
	})
}

// TestDeriveNumericPrefix tests the zero-padded position prefix.
func TestDeriveNumericPrefix(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		index      int
		total      int
		wantPrefix string
	}{
		{"width of total 100 is 3", 4, 100, "005-"},
		{"width of total 9 is 1", 0, 9, "1-"},
		{"width of total 120 is 3", 6, 120, "007-"},
		{"width of total 1000 is 4", 0, 1000, "0001-"},
	}

	policy := model.NamingPolicy{TitleType: model.TitlePage, NumericPrefix: true}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got := Derive("https://a.com/p", "Title", policy, tt.index, tt.total)
			if !strings.HasPrefix(got, tt.wantPrefix) {
				t.Errorf("expected prefix %q, got %q", tt.wantPrefix, got)
			}
		})
	}

	t.Run("no prefix without the flag in page mode", func(t *testing.T) {
		t.Parallel()

		got := Derive("https://a.com/p", "Title", model.NamingPolicy{TitleType: model.TitlePage}, 4, 100)
		if got != "title" {
			t.Errorf("expected %q, got %q", "title", got)
		}
	})
}
