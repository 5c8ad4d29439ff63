package writer

import (
	"os"
	"path/filepath"
	"testing"
)

// TestNew tests output directory creation.
func TestNew(t *testing.T) {
	t.Parallel()

	t.Run("creates a missing directory recursively", func(t *testing.T) {
		t.Parallel()

		dir := filepath.Join(t.TempDir(), "out", "docs")
		w, err := New(dir)
		if err != nil {
			t.Fatal(err)
		}
		if w.Dir() != dir {
			t.Errorf("expected dir %q, got %q", dir, w.Dir())
		}

		info, err := os.Stat(dir)
		if err != nil {
			t.Fatal(err)
		}
		if !info.IsDir() {
			t.Error("expected a directory")
		}
	})

	t.Run("existing directory is fine", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()
		if _, err := New(dir); err != nil {
			t.Fatal(err)
		}
	})

	t.Run("path blocked by a file fails", func(t *testing.T) {
		t.Parallel()

		blocker := filepath.Join(t.TempDir(), "file")
		if err := os.WriteFile(blocker, []byte("x"), 0o644); err != nil {
			t.Fatal(err)
		}
		if _, err := New(filepath.Join(blocker, "out")); err == nil {
			t.Error("expected error")
		}
	})
}

// TestWriteMarkdown tests per-page file writes.
func TestWriteMarkdown(t *testing.T) {
	t.Parallel()

	t.Run("writes name plus md extension", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()
		w, err := New(dir)
		if err != nil {
			t.Fatal(err)
		}
		if err := w.WriteMarkdown("getting-started", "# Hello"); err != nil {
			t.Fatal(err)
		}

		got, err := os.ReadFile(filepath.Join(dir, "getting-started.md"))
		if err != nil {
			t.Fatal(err)
		}
		if string(got) != "# Hello" {
			t.Errorf("unexpected content %q", got)
		}
	})

	t.Run("overwrites an existing file", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()
		w, err := New(dir)
		if err != nil {
			t.Fatal(err)
		}
		if err := w.WriteMarkdown("page", "old"); err != nil {
			t.Fatal(err)
		}
		if err := w.WriteMarkdown("page", "new"); err != nil {
			t.Fatal(err)
		}

		got, err := os.ReadFile(filepath.Join(dir, "page.md"))
		if err != nil {
			t.Fatal(err)
		}
		if string(got) != "new" {
			t.Errorf("expected overwrite, got %q", got)
		}
	})
}

// TestWriteTextList tests the one-URL-per-line output.
func TestWriteTextList(t *testing.T) {
	t.Parallel()

	t.Run("one URL per line with trailing newline", func(t *testing.T) {
		t.Parallel()

		path := filepath.Join(t.TempDir(), "urls.txt")
		urls := []string{"https://a.com/1", "https://b.com/2"}
		if err := WriteTextList(path, urls); err != nil {
			t.Fatal(err)
		}

		got, err := os.ReadFile(path)
		if err != nil {
			t.Fatal(err)
		}
		want := "https://a.com/1\nhttps://b.com/2\n"
		if string(got) != want {
			t.Errorf("expected %q, got %q", want, got)
		}
	})

	t.Run("empty list writes an empty file", func(t *testing.T) {
		t.Parallel()

		path := filepath.Join(t.TempDir(), "urls.txt")
		if err := WriteTextList(path, nil); err != nil {
			t.Fatal(err)
		}

		got, err := os.ReadFile(path)
		if err != nil {
			t.Fatal(err)
		}
		if len(got) != 0 {
			t.Errorf("expected empty file, got %q", got)
		}
	})

	t.Run("creates missing parent directories", func(t *testing.T) {
		t.Parallel()

		path := filepath.Join(t.TempDir(), "nested", "deep", "urls.txt")
		if err := WriteTextList(path, []string{"https://a.com/"}); err != nil {
			t.Fatal(err)
		}
		if _, err := os.Stat(path); err != nil {
			t.Fatal(err)
		}
	})
}
