package main

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v2"
)

// Config holds shell settings.
type Config struct {
	// Prompt is printed before each new unit of input.
	Prompt string `yaml:"prompt"`
	// Continuation is printed before each line continuing an unclosed
	// expression.
	Continuation string `yaml:"continuation"`
	// History is the file which holds interactive input history. If it is
	// empty, history is not saved. A leading ~/ names the home directory.
	History string `yaml:"history"`
	// NoPrelude starts the interpreter without the prelude.
	NoPrelude bool `yaml:"no-prelude"`
	// Preload lists files to run before anything else.
	Preload []string `yaml:"preload"`
	// Trace writes each evaluated S-expression to standard error.
	Trace bool `yaml:"trace"`
}

// defaultConfig returns the settings used when there is no config file.
func defaultConfig() *Config {
	return &Config{
		Prompt:       "lispy> ",
		Continuation: "...... ",
		History:      "~/.lispy_history",
	}
}

// loadConfig reads settings from a YAML file. Settings missing from the file
// keep their default values. If path is empty, the file is .lispy.yaml in the
// user's home directory, and it is not an error for it not to exist.
func loadConfig(path string) (*Config, error) {
	cfg := defaultConfig()
	explicit := path != ""
	if !explicit {
		home, err := os.UserHomeDir()
		if err != nil {
			return cfg, nil
		}
		path = filepath.Join(home, ".lispy.yaml")
	}
	b, err := os.ReadFile(path)
	if err != nil {
		if !explicit && errors.Is(err, fs.ErrNotExist) {
			cfg.History = expandHome(cfg.History)
			return cfg, nil
		}
		return nil, fmt.Errorf("could not read config: %w", err)
	}
	if err := yaml.UnmarshalStrict(b, cfg); err != nil {
		return nil, fmt.Errorf("could not parse config %s: %w", path, err)
	}
	cfg.History = expandHome(cfg.History)
	for i, p := range cfg.Preload {
		cfg.Preload[i] = expandHome(p)
	}
	return cfg, nil
}

// expandHome replaces a leading ~/ in path with the user's home directory.
func expandHome(path string) string {
	if !strings.HasPrefix(path, "~/") {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return path
	}
	return filepath.Join(home, path[2:])
}
