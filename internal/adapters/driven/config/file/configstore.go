// Package file provides a TOML file-backed configuration store.
// Configuration lives at ~/.inkwell/config.toml; a missing file
// yields defaults rather than an error.
package file

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/pelletier/go-toml/v2"

	"github.com/inkwell-labs/inkwell-cli/internal/core/ports/driven"
)

// Ensure ConfigStore implements the interface.
var _ driven.ConfigStore = (*ConfigStore)(nil)

// fileConfig is the on-disk TOML shape.
type fileConfig struct {
	Server struct {
		Addr string `toml:"addr"`
	} `toml:"server"`
	Backends struct {
		Disabled      []string `toml:"disabled"`
		PdftotextPath string   `toml:"pdftotext_path"`
		BrowserPath   string   `toml:"browser_path"`
	} `toml:"backends"`
}

// ConfigStore is a read-only view over the TOML config file, loaded
// once at startup.
type ConfigStore struct {
	cfg fileConfig
}

// NewConfigStore loads configuration from configDir/config.toml.
// If configDir is empty, defaults to ~/.inkwell.
func NewConfigStore(configDir string) (*ConfigStore, error) {
	if configDir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, err
		}
		configDir = filepath.Join(home, ".inkwell")
	}

	s := &ConfigStore{}
	data, err := os.ReadFile(filepath.Join(configDir, "config.toml"))
	if errors.Is(err, os.ErrNotExist) {
		return s, nil
	}
	if err != nil {
		return nil, err
	}

	if err := toml.Unmarshal(data, &s.cfg); err != nil {
		return nil, fmt.Errorf("parsing config.toml: %w", err)
	}
	return s, nil
}

// ServerAddr returns the configured HTTP listen address, or empty.
func (s *ConfigStore) ServerAddr() string {
	return s.cfg.Server.Addr
}

// DisabledBackends lists backend names switched off in config.
func (s *ConfigStore) DisabledBackends() []string {
	return s.cfg.Backends.Disabled
}

// PdftotextPath returns the configured pdftotext binary, or empty.
func (s *ConfigStore) PdftotextPath() string {
	return s.cfg.Backends.PdftotextPath
}

// BrowserPath returns the configured browser binary, or empty.
func (s *ConfigStore) BrowserPath() string {
	return s.cfg.Backends.BrowserPath
}
