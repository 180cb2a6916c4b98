// Package config loads the boring-directory configuration.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config holds the directory basenames whose contents are collapsed in the
// report. Matching is by basename only, so a listed name is collapsed
// wherever it appears in the tree.
type Config struct {
	Boring []string `yaml:"boring"`
}

// Default returns the compiled-in boring list: version-control metadata
// and the usual dependency caches.
func Default() *Config {
	return &Config{
		Boring: []string{
			".git",
			".svn",
			".hg",
			".bzr",
			"CVS",
			"node_modules",
			"__pycache__",
		},
	}
}

// Load reads a YAML config from path. A missing file yields the defaults.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return Default(), nil
		}

		return nil, fmt.Errorf("reading config file: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config YAML: %w", err)
	}

	// An empty config collapses nothing.
	if cfg.Boring == nil {
		cfg.Boring = []string{}
	}

	return &cfg, nil
}
