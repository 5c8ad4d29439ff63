package main

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"

	"github.com/nao1215/mapdown/internal/model"
	"github.com/nao1215/mapdown/internal/sitemap"
)

// TestListCommand tests the list command end to end.
func TestListCommand(t *testing.T) {
	t.Parallel()

	t.Run("remote XML sitemap to text list", func(t *testing.T) {
		t.Parallel()

		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			_, _ = w.Write([]byte(`<?xml version="1.0"?>
<urlset>
  <url><loc>https://example.com/a</loc></url>
  <url><loc>https://example.com/b</loc></url>
</urlset>`))
		}))
		defer srv.Close()

		out := filepath.Join(t.TempDir(), "urls.txt")
		stdout, err := executeCommand("list", "-i", srv.URL+"/sitemap.xml", "-o", out)
		if err != nil {
			t.Fatal(err)
		}
		if !strings.Contains(stdout, "2 URLs written") {
			t.Errorf("unexpected output %q", stdout)
		}

		got, err := os.ReadFile(out)
		if err != nil {
			t.Fatal(err)
		}
		want := "https://example.com/a\nhttps://example.com/b\n"
		if string(got) != want {
			t.Errorf("expected %q, got %q", want, got)
		}
	})

	t.Run("local JSON input with include filter to JSON output", func(t *testing.T) {
		t.Parallel()

		in := filepath.Join(t.TempDir(), "input.json")
		doc := `{"urls":["https://a.com/1","https://b.com/2","https://a.com/3"],"container":"main"}`
		if err := os.WriteFile(in, []byte(doc), 0o600); err != nil {
			t.Fatal(err)
		}

		out := filepath.Join(t.TempDir(), "urls.json")
		stdout, err := executeCommand("list",
			"-i", in, "-o", out, "--include-pattern", "a.com")
		if err != nil {
			t.Fatal(err)
		}
		if !strings.Contains(stdout, "2 URLs written") {
			t.Errorf("unexpected output %q", stdout)
		}

		data, err := os.ReadFile(out)
		if err != nil {
			t.Fatal(err)
		}
		var got model.ListDocument
		if err := json.Unmarshal(data, &got); err != nil {
			t.Fatal(err)
		}
		if !reflect.DeepEqual(got.URLs, []string{"https://a.com/1", "https://a.com/3"}) {
			t.Errorf("unexpected urls %v", got.URLs)
		}
		if got.Container != "main" {
			t.Errorf("expected container passthrough, got %q", got.Container)
		}
	})

	t.Run("local XML file to text list", func(t *testing.T) {
		t.Parallel()

		in := filepath.Join(t.TempDir(), "sitemap.xml")
		if err := os.WriteFile(in, []byte(
			"<urlset><url><loc>https://example.com/only</loc></url></urlset>"), 0o600); err != nil {
			t.Fatal(err)
		}

		out := filepath.Join(t.TempDir(), "urls.txt")
		if _, err := executeCommand("list", "-i", in, "-o", out); err != nil {
			t.Fatal(err)
		}

		got, err := os.ReadFile(out)
		if err != nil {
			t.Fatal(err)
		}
		if string(got) != "https://example.com/only\n" {
			t.Errorf("unexpected content %q", got)
		}
	})

	t.Run("sitemap without URLs is an error", func(t *testing.T) {
		t.Parallel()

		in := filepath.Join(t.TempDir(), "sitemap.xml")
		if err := os.WriteFile(in, []byte("<urlset></urlset>"), 0o600); err != nil {
			t.Fatal(err)
		}

		_, err := executeCommand("list", "-i", in, "-o", filepath.Join(t.TempDir(), "urls.txt"))
		if !errors.Is(err, sitemap.ErrNoURLs) {
			t.Fatalf("expected ErrNoURLs, got %v", err)
		}
	})

	t.Run("excluding everything is an error and writes nothing", func(t *testing.T) {
		t.Parallel()

		in := filepath.Join(t.TempDir(), "sitemap.xml")
		if err := os.WriteFile(in, []byte(
			"<urlset><url><loc>https://example.com/page</loc></url></urlset>"), 0o600); err != nil {
			t.Fatal(err)
		}

		out := filepath.Join(t.TempDir(), "urls.txt")
		_, err := executeCommand("list", "-i", in, "-o", out, "--exclude-pattern", "example")
		if !errors.Is(err, sitemap.ErrAllFiltered) {
			t.Fatalf("expected ErrAllFiltered, got %v", err)
		}
		if _, err := os.Stat(out); !os.IsNotExist(err) {
			t.Errorf("expected no output file, stat err %v", err)
		}
	})

	t.Run("missing input file surfaces the read error", func(t *testing.T) {
		t.Parallel()

		_, err := executeCommand("list",
			"-i", filepath.Join(t.TempDir(), "nope.xml"),
			"-o", filepath.Join(t.TempDir(), "urls.txt"))
		if err == nil {
			t.Fatal("expected error")
		}
	})
}

// TestVersionCommand tests version output.
func TestVersionCommand(t *testing.T) {
	t.Parallel()

	stdout, err := executeCommand("version")
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(stdout, "mapdown version") {
		t.Errorf("unexpected output %q", stdout)
	}
	if !strings.Contains(stdout, "commit:") {
		t.Errorf("expected commit line, got %q", stdout)
	}
}
