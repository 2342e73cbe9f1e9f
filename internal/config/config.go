// Package config loads optional per-project tangle settings.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/afero"
	"gopkg.in/yaml.v3"
)

const FileName = ".loom.yml"

// Config holds the optional settings read from .loom.yml next to a
// document (or at the root of a tangled tree).
type Config struct {
	// Extensions overrides the language -> extension table used for
	// tangle: yes destinations.
	Extensions map[string]string `yaml:"extensions"`

	// Comments turns on marker decoration for the whole project without
	// passing --comments on every invocation.
	Comments bool `yaml:"comments"`
}

// Load reads .loom.yml from dir. A missing file is not an error; it yields
// the zero config.
func Load(fs afero.Fs, dir string) (*Config, error) {
	path := filepath.Join(dir, FileName)

	data, err := afero.ReadFile(fs, path)
	if err != nil {
		if os.IsNotExist(err) {
			return &Config{}, nil
		}
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", path, err)
	}
	return &cfg, nil
}

// Merge layers override on top of base and returns the combined config.
// Extension entries in override win per language; comments stay on when
// either side enables them.
func Merge(base, override *Config) *Config {
	merged := &Config{Comments: base.Comments || override.Comments}
	if len(base.Extensions)+len(override.Extensions) > 0 {
		merged.Extensions = make(map[string]string, len(base.Extensions)+len(override.Extensions))
		for lang, ext := range base.Extensions {
			merged.Extensions[lang] = ext
		}
		for lang, ext := range override.Extensions {
			merged.Extensions[lang] = ext
		}
	}
	return merged
}
