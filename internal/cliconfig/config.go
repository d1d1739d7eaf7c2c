// Package cliconfig loads persistent defaults for the difflib-rs command
// line tool from a TOML file, following the same open-then-overlay pattern
// used for structured config across the rest of the stack: defaults first,
// then whatever the config file supplies, then whatever the command line
// supplies on top of that.
package cliconfig

import (
	"errors"
	"os"
	"path/filepath"

	"github.com/mitchellh/go-homedir"
	"github.com/pelletier/go-toml/v2"
)

// Config holds the persisted defaults for difflib-rs. Command-line flags
// that are explicitly set always override these values.
type Config struct {
	// Context is the default number of equal lines of context
	// surrounding each hunk.
	Context int `toml:"context"`

	// LineTerm is the default line terminator appended to diff header and
	// hunk-header lines.
	LineTerm string `toml:"line_term"`

	// Color enables ANSI-colored diff output by default.
	Color bool `toml:"color"`

	// Watch enables watch mode by default.
	Watch bool `toml:"watch"`
}

// Default returns the built-in configuration used when no config file is
// present or specified.
func Default() Config {
	return Config{Context: 3, LineTerm: "\n"}
}

// DefaultPath returns the conventional location of the user's config file,
// "~/.difflib-rs.toml", resolving "~" the same way regardless of the
// platform-specific home directory layout.
func DefaultPath() (string, error) {
	home, err := homedir.Dir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".difflib-rs.toml"), nil
}

// Load reads a TOML config file at path, overlaying its fields on top of
// Default. A missing file at path is not an error: Load returns the
// defaults unchanged so callers can pass DefaultPath unconditionally.
func Load(path string) (Config, error) {
	cfg := Default()
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return cfg, nil
		}
		return cfg, err
	}
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return cfg, err
	}
	return cfg, nil
}
