package config

import (
	"os"
	"path/filepath"

	"github.com/minicodemonkey/boardgen/internal/paths"
	"gopkg.in/yaml.v3"
)

// Config holds the generator settings read from boardgen.yaml.
// Asset parameters are fixed and not configurable here.
type Config struct {
	OutputDir string `yaml:"outputDir"`
	Quiet     bool   `yaml:"quiet"`
	Verbose   bool   `yaml:"verbose"`
}

// Default returns a Config writing to paths.DefaultOutputRoot.
func Default() *Config {
	return &Config{OutputDir: paths.DefaultOutputRoot}
}

// Exists checks if the config file exists.
func Exists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}

// Load reads the config at path.
// Returns Default() when the file doesn't exist (no error).
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return Default(), nil
		}
		return nil, err
	}

	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}
	if cfg.OutputDir == "" {
		cfg.OutputDir = paths.DefaultOutputRoot
	}

	return cfg, nil
}

// Save writes the config to path.
func Save(path string, cfg *Config) error {
	// Ensure directory exists
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}

	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}

	return os.WriteFile(path, data, 0o644)
}
