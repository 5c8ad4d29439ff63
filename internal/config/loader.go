package config

import (
	"errors"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// DefaultConfigFile is the default configuration file name.
const DefaultConfigFile = ".mapdown"

// ErrConfigNotFound is returned when the configuration file does not exist.
var ErrConfigNotFound = errors.New("configuration file not found")

// File is the YAML configuration file shape. Every field is optional;
// CLI flags and environment variables override file values.
type File struct {
	// Engine is the default fetch engine (fetch, jina, firecrawl).
	Engine string `yaml:"engine"`

	// TitleType is the default filename derivation source (page, url).
	TitleType string `yaml:"title_type"`

	// JinaAPIKey is the Jina Reader bearer token.
	JinaAPIKey string `yaml:"jina_api_key"`

	// FirecrawlAPIKey is the Firecrawl API key.
	FirecrawlAPIKey string `yaml:"firecrawl_api_key"`

	// TargetSelector is the default CSS selector list for hosted engines.
	TargetSelector string `yaml:"target_selector"`

	// RemoveSelector is the default CSS removal list for hosted engines.
	RemoveSelector string `yaml:"remove_selector"`
}

// LoadConfigFile loads defaults from a YAML file. If the file does not
// exist, it returns ErrConfigNotFound; callers decide whether that matters
// based on whether the path was explicit.
func LoadConfigFile(path string) (*File, error) {
	data, err := os.ReadFile(path) //nolint:gosec // User-provided config path is intentional
	if err != nil {
		if os.IsNotExist(err) {
			return nil, ErrConfigNotFound
		}
		return nil, err
	}

	var f File
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, err
	}
	return &f, nil
}

// FindConfigFile searches for the configuration file in order:
// the explicit path if given, .mapdown in the current directory, then the
// XDG config directory. Returns "" when nothing is found.
func FindConfigFile(configPath string) string {
	if configPath != "" {
		if _, err := os.Stat(configPath); err == nil {
			return configPath
		}
		return ""
	}

	if cwd, err := os.Getwd(); err == nil {
		p := filepath.Join(cwd, DefaultConfigFile)
		if _, err := os.Stat(p); err == nil {
			return p
		}
	}

	p := filepath.Join(XDGConfigDir(), DefaultConfigFile)
	if _, err := os.Stat(p); err == nil {
		return p
	}
	return ""
}

// Apply copies the file's values into the configuration. Only fields the
// file actually sets are copied. Callers apply the file before explicit CLI
// flags so flags always win.
func (f *File) Apply(cfg *Config) error {
	if f.Engine != "" {
		engine, err := ParseEngine(f.Engine)
		if err != nil {
			return err
		}
		cfg.Engine = engine
	}
	if f.TitleType != "" {
		titleType, err := ParseTitleType(f.TitleType)
		if err != nil {
			return err
		}
		cfg.TitleType = titleType
	}
	if f.JinaAPIKey != "" {
		cfg.JinaAPIKey = f.JinaAPIKey
	}
	if f.FirecrawlAPIKey != "" {
		cfg.FirecrawlAPIKey = f.FirecrawlAPIKey
	}
	if f.TargetSelector != "" {
		cfg.TargetSelector = f.TargetSelector
	}
	if f.RemoveSelector != "" {
		cfg.RemoveSelector = f.RemoveSelector
	}
	return nil
}

// LoadAPIKeys reads API keys from the process environment. Environment
// values override anything loaded from the config file.
func (c *Config) LoadAPIKeys() {
	if key := os.Getenv("JINA_API_KEY"); key != "" {
		c.JinaAPIKey = key
	}
	if key := os.Getenv("FIRECRAWL_API_KEY"); key != "" {
		c.FirecrawlAPIKey = key
	}
}
