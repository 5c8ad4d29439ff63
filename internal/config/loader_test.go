package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/nao1215/mapdown/internal/model"
)

// TestLoadConfigFile tests YAML configuration loading.
func TestLoadConfigFile(t *testing.T) {
	t.Parallel()

	t.Run("loads all fields", func(t *testing.T) {
		t.Parallel()

		path := filepath.Join(t.TempDir(), DefaultConfigFile)
		content := `engine: jina
title_type: url
jina_api_key: jina_file_key
firecrawl_api_key: fc-file-key
target_selector: main
remove_selector: nav,footer
`
		if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
			t.Fatal(err)
		}

		f, err := LoadConfigFile(path)
		if err != nil {
			t.Fatal(err)
		}
		if f.Engine != "jina" {
			t.Errorf("expected engine jina, got %q", f.Engine)
		}
		if f.TitleType != "url" {
			t.Errorf("expected title_type url, got %q", f.TitleType)
		}
		if f.JinaAPIKey != "jina_file_key" {
			t.Errorf("unexpected jina key %q", f.JinaAPIKey)
		}
		if f.FirecrawlAPIKey != "fc-file-key" {
			t.Errorf("unexpected firecrawl key %q", f.FirecrawlAPIKey)
		}
		if f.TargetSelector != "main" || f.RemoveSelector != "nav,footer" {
			t.Errorf("unexpected selectors %q %q", f.TargetSelector, f.RemoveSelector)
		}
	})

	t.Run("missing file returns ErrConfigNotFound", func(t *testing.T) {
		t.Parallel()

		_, err := LoadConfigFile(filepath.Join(t.TempDir(), "nope"))
		if !errors.Is(err, ErrConfigNotFound) {
			t.Fatalf("expected ErrConfigNotFound, got %v", err)
		}
	})

	t.Run("malformed YAML is an error", func(t *testing.T) {
		t.Parallel()

		path := filepath.Join(t.TempDir(), DefaultConfigFile)
		if err := os.WriteFile(path, []byte("engine: [unterminated"), 0o600); err != nil {
			t.Fatal(err)
		}
		if _, err := LoadConfigFile(path); err == nil {
			t.Error("expected error")
		}
	})
}

// TestFileApply tests merging file values into a config.
func TestFileApply(t *testing.T) {
	t.Parallel()

	t.Run("set fields overwrite defaults", func(t *testing.T) {
		t.Parallel()

		cfg := NewConfig()
		f := &File{
			Engine:         "jina",
			TitleType:      "url",
			JinaAPIKey:     "jina_key",
			TargetSelector: "article",
		}
		if err := f.Apply(cfg); err != nil {
			t.Fatal(err)
		}
		if cfg.Engine != EngineJina {
			t.Errorf("expected engine jina, got %q", cfg.Engine)
		}
		if cfg.TitleType != model.TitleURL {
			t.Errorf("expected title type url, got %q", cfg.TitleType)
		}
		if cfg.JinaAPIKey != "jina_key" {
			t.Errorf("unexpected jina key %q", cfg.JinaAPIKey)
		}
		if cfg.TargetSelector != "article" {
			t.Errorf("unexpected target selector %q", cfg.TargetSelector)
		}
	})

	t.Run("unset fields leave defaults alone", func(t *testing.T) {
		t.Parallel()

		cfg := NewConfig()
		if err := (&File{}).Apply(cfg); err != nil {
			t.Fatal(err)
		}
		if cfg.Engine != EngineDirect {
			t.Errorf("expected default engine, got %q", cfg.Engine)
		}
		if cfg.TitleType != model.TitlePage {
			t.Errorf("expected default title type, got %q", cfg.TitleType)
		}
	})

	t.Run("invalid engine in file is an error", func(t *testing.T) {
		t.Parallel()

		err := (&File{Engine: "playwright"}).Apply(NewConfig())
		if !errors.Is(err, ErrUnknownEngine) {
			t.Fatalf("expected ErrUnknownEngine, got %v", err)
		}
	})

	t.Run("invalid title type in file is an error", func(t *testing.T) {
		t.Parallel()

		err := (&File{TitleType: "slug"}).Apply(NewConfig())
		if !errors.Is(err, ErrUnknownTitleType) {
			t.Fatalf("expected ErrUnknownTitleType, got %v", err)
		}
	})
}

// TestFindConfigFile tests the search order for the configuration file.
func TestFindConfigFile(t *testing.T) {
	t.Run("explicit path wins when it exists", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "custom.yml")
		if err := os.WriteFile(path, []byte("engine: jina\n"), 0o600); err != nil {
			t.Fatal(err)
		}
		if got := FindConfigFile(path); got != path {
			t.Errorf("expected %q, got %q", path, got)
		}
	})

	t.Run("missing explicit path yields nothing", func(t *testing.T) {
		if got := FindConfigFile(filepath.Join(t.TempDir(), "nope")); got != "" {
			t.Errorf("expected empty path, got %q", got)
		}
	})

	t.Run("falls back to the current directory", func(t *testing.T) {
		dir := t.TempDir()
		path := filepath.Join(dir, DefaultConfigFile)
		if err := os.WriteFile(path, []byte("engine: fetch\n"), 0o600); err != nil {
			t.Fatal(err)
		}

		t.Chdir(dir)
		got := FindConfigFile("")
		// macOS resolves /tmp symlinks, so compare the base name only.
		if filepath.Base(got) != DefaultConfigFile {
			t.Errorf("expected %s in cwd, got %q", DefaultConfigFile, got)
		}
	})
}

// TestLoadAPIKeys tests the environment override for API keys.
func TestLoadAPIKeys(t *testing.T) {
	t.Run("environment overrides file values", func(t *testing.T) {
		t.Setenv("JINA_API_KEY", "jina_env_key")
		t.Setenv("FIRECRAWL_API_KEY", "fc-env-key")

		cfg := NewConfig()
		cfg.JinaAPIKey = "jina_file_key"
		cfg.FirecrawlAPIKey = "fc-file-key"
		cfg.LoadAPIKeys()

		if cfg.JinaAPIKey != "jina_env_key" {
			t.Errorf("expected env jina key, got %q", cfg.JinaAPIKey)
		}
		if cfg.FirecrawlAPIKey != "fc-env-key" {
			t.Errorf("expected env firecrawl key, got %q", cfg.FirecrawlAPIKey)
		}
	})

	t.Run("empty environment keeps file values", func(t *testing.T) {
		t.Setenv("JINA_API_KEY", "")
		t.Setenv("FIRECRAWL_API_KEY", "")

		cfg := NewConfig()
		cfg.JinaAPIKey = "jina_file_key"
		cfg.LoadAPIKeys()

		if cfg.JinaAPIKey != "jina_file_key" {
			t.Errorf("expected file key to survive, got %q", cfg.JinaAPIKey)
		}
	})
}
