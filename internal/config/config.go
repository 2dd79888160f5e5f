// Package config loads the optional .odlang.yaml file that overrides the
// REPL's fixed defaults (prompt string, history file location). Absence of
// the file is not an error: every field simply keeps its zero value, and
// callers fall back to their own fixed default.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// FileName is the fixed configuration file name, always looked up in the
// current working directory.
const FileName = ".odlang.yaml"

// Config holds every REPL setting a .odlang.yaml file may override. A zero
// Config means "use the built-in defaults" for every field.
type Config struct {
	Prompt       string `yaml:"prompt"`
	HistoryFile  string `yaml:"history_file"`
	HistoryLimit int    `yaml:"history_limit"`
	Color        *bool  `yaml:"color"`
}

// Load reads FileName from the current working directory. A missing file
// is not an error and yields a zero Config; a present-but-malformed file
// is.
func Load() (Config, error) {
	data, err := os.ReadFile(FileName)
	if err != nil {
		if os.IsNotExist(err) {
			return Config{}, nil
		}
		return Config{}, fmt.Errorf("read %s: %w", FileName, err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("parse %s: %w", FileName, err)
	}
	return cfg, nil
}

// ColorEnabled reports whether output should be colorized, defaulting to
// true when the file didn't set the field.
func (c Config) ColorEnabled() bool {
	if c.Color == nil {
		return true
	}
	return *c.Color
}
