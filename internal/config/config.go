// Package config loads the optional slopcc.toml project file. Every
// setting has a usable default; a missing file is not an error.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

// FileName is looked up in the working directory unless an explicit
// path is given.
const FileName = "slopcc.toml"

// Config holds the project-level settings.
type Config struct {
	// Diagnostics caps and presentation.
	Diagnostics DiagnosticsConfig `toml:"diagnostics"`
	// Arena tuning.
	Arena ArenaConfig `toml:"arena"`
	// Cache switches.
	Cache CacheConfig `toml:"cache"`
}

type DiagnosticsConfig struct {
	// Max caps how many diagnostics are collected per file.
	Max int `toml:"max"`
	// Color is "auto", "always" or "never".
	Color string `toml:"color"`
}

type ArenaConfig struct {
	// ChunkSize is the bump-allocator chunk size in bytes.
	ChunkSize int `toml:"chunk_size"`
}

type CacheConfig struct {
	// Tokens enables the on-disk token cache.
	Tokens bool `toml:"tokens"`
}

// Default returns the built-in settings.
func Default() Config {
	return Config{
		Diagnostics: DiagnosticsConfig{Max: 100, Color: "auto"},
		Arena:       ArenaConfig{ChunkSize: 8 * 1024},
		Cache:       CacheConfig{Tokens: false},
	}
}

// Load reads the config at path, or FileName in dir when path is empty.
// A missing file yields the defaults.
func Load(dir, path string) (Config, error) {
	cfg := Default()
	explicit := path != ""
	if path == "" {
		path = filepath.Join(dir, FileName)
	}

	meta, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		if !explicit && errors.Is(err, os.ErrNotExist) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("load %s: %w", path, err)
	}
	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		return cfg, fmt.Errorf("load %s: unknown key %q", path, undecoded[0].String())
	}
	if err := cfg.validate(); err != nil {
		return cfg, fmt.Errorf("load %s: %w", path, err)
	}
	return cfg, nil
}

func (c Config) validate() error {
	if c.Diagnostics.Max <= 0 {
		return errors.New("diagnostics.max must be positive")
	}
	switch c.Diagnostics.Color {
	case "auto", "always", "never":
	default:
		return fmt.Errorf("diagnostics.color must be auto, always or never, got %q", c.Diagnostics.Color)
	}
	if c.Arena.ChunkSize <= 0 {
		return errors.New("arena.chunk_size must be positive")
	}
	return nil
}
