// Package config loads tracklet configuration from a YAML file.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Config is the on-disk configuration. Every field has a sensible
// default; an absent file is not an error.
type Config struct {
	// DBPath is the SQLite database location.
	DBPath string `yaml:"db_path"`

	// DefaultLimit caps search and list results when no --limit flag
	// is given.
	DefaultLimit int `yaml:"default_limit"`

	// WorkflowPath names a CUE workflow file overriding the embedded
	// default statuses.
	WorkflowPath string `yaml:"workflow_path,omitempty"`
}

// Defaults returns the configuration used when no file is present.
func Defaults() Config {
	home, err := os.UserHomeDir()
	if err != nil {
		home = "."
	}
	return Config{
		DBPath:       filepath.Join(home, ".tracklet", "tracklet.db"),
		DefaultLimit: 50,
	}
}

// Load reads the config file at path. A missing file yields Defaults();
// malformed YAML is an error. Fields absent from the file keep their
// default values.
func Load(path string) (Config, error) {
	cfg := Defaults()

	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return cfg, nil
	}
	if err != nil {
		return Config{}, fmt.Errorf("read config: %w", err)
	}

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("parse config %s: %w", path, err)
	}
	if cfg.DefaultLimit <= 0 {
		cfg.DefaultLimit = Defaults().DefaultLimit
	}
	return cfg, nil
}
