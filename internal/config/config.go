package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// FileName is the optional config file, looked up from the base directory upward.
const FileName = "shotdoc.yaml"

type Config struct {
	Log      LogConfig      `yaml:"log"`
	Annotate AnnotateConfig `yaml:"annotate"`
	Preview  PreviewConfig  `yaml:"preview"`
}

type LogConfig struct {
	Level string `yaml:"level"`
}

type AnnotateConfig struct {
	Color string `yaml:"color"`
}

type PreviewConfig struct {
	Style string `yaml:"style"`
}

func Default() *Config {
	return &Config{
		Log:      LogConfig{Level: "warn"},
		Annotate: AnnotateConfig{Color: "red"},
		Preview:  PreviewConfig{Style: "auto"},
	}
}

// Find walks up from startDir looking for shotdoc.yaml and returns its path,
// or "" if there is none. Directories that cannot be inspected are skipped.
func Find(startDir string) string {
	dir := startDir
	for {
		path := filepath.Join(dir, FileName)
		if info, err := os.Stat(path); err == nil && !info.IsDir() {
			return path
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return ""
		}
		dir = parent
	}
}

// Load applies the nearest shotdoc.yaml at or above dir over the defaults,
// then environment overrides. Having no config file is not an error.
func Load(dir string) (*Config, error) {
	cfg := Default()

	if path := Find(dir); path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("reading config: %w", err)
		}
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parsing config %s: %w", path, err)
		}
	}

	if level := os.Getenv("SHOTDOC_LOG_LEVEL"); level != "" {
		cfg.Log.Level = level
	}
	if c := os.Getenv("SHOTDOC_HIGHLIGHT_COLOR"); c != "" {
		cfg.Annotate.Color = c
	}
	return cfg, nil
}
