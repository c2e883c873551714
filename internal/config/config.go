// Package config provides configuration loading and saving for the CLI.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

const (
	// DefaultDataFileName is the team-data document name, resolved relative
	// to the application's own location.
	DefaultDataFileName = "team_data.json"
	// DefaultConfigFileName is the configuration document name.
	DefaultConfigFileName = "ascent_config.json"
)

// Config represents the application configuration document. All fields are
// optional; missing values use defaults. WindowSize belongs to the
// presentation layer and is carried through untouched so a UI saved geometry
// survives CLI edits to the same file.
type Config struct {
	WindowSize string `json:"window_size,omitempty"` // UI window geometry, not interpreted here
	DataFile   string `json:"data_file,omitempty"`   // Path to the team-data document
}

// Load loads configuration from a JSON file. A missing or unreadable file
// yields a zero Config and no error, matching the application's
// use-defaults-on-failure behavior; only genuinely malformed JSON is
// reported, and even then a usable zero Config is returned.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return &Config{}, nil
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return &Config{}, fmt.Errorf("failed to parse config JSON: %w", err)
	}

	return &cfg, nil
}

// Save writes the configuration as indented JSON.
func (c *Config) Save(path string) error {
	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to serialize config: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write config file %s: %w", path, err)
	}
	return nil
}

// ResolveDataFile returns the data-file path to use: the configured override
// if set, otherwise the default name next to the executable. Falls back to
// the working directory when the executable path cannot be determined.
func (c *Config) ResolveDataFile() string {
	if c.DataFile != "" {
		return c.DataFile
	}
	exe, err := os.Executable()
	if err != nil {
		return DefaultDataFileName
	}
	return filepath.Join(filepath.Dir(exe), DefaultDataFileName)
}

// DefaultConfigPath returns the configuration document path next to the
// executable, or the bare name in the working directory as a fallback.
func DefaultConfigPath() string {
	exe, err := os.Executable()
	if err != nil {
		return DefaultConfigFileName
	}
	return filepath.Join(filepath.Dir(exe), DefaultConfigFileName)
}
