// Package config loads tool settings from pawnfmt.toml, searched upward
// from the working directory the way build tools locate their manifest.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

// FileName is the manifest searched for in the directory tree.
const FileName = "pawnfmt.toml"

type Config struct {
	Format FormatConfig `toml:"format"`
	Files  FilesConfig  `toml:"files"`
}

type FormatConfig struct {
	// TabWidth sets the tab stop used for visual column tracking.
	TabWidth int `toml:"tab_width"`
	// AddSemicolons materializes inferred statement terminators as ';'.
	AddSemicolons bool `toml:"add_semicolons"`
}

type FilesConfig struct {
	// Extensions selects which files directory walks pick up.
	Extensions []string `toml:"extensions"`
}

// Default returns the configuration used when no manifest exists.
func Default() Config {
	return Config{
		Format: FormatConfig{TabWidth: 8},
		Files:  FilesConfig{Extensions: []string{".pwn", ".inc", ".p"}},
	}
}

// Find walks up from startDir to locate the manifest.
func Find(startDir string) (path string, ok bool, err error) {
	if startDir == "" {
		startDir = "."
	}
	dir, err := filepath.Abs(startDir)
	if err != nil {
		return "", false, fmt.Errorf("failed to resolve start directory: %w", err)
	}
	for {
		candidate := filepath.Join(dir, FileName)
		if _, err := os.Stat(candidate); err == nil {
			return candidate, true, nil
		} else if !errors.Is(err, os.ErrNotExist) {
			return "", false, fmt.Errorf("failed to stat %q: %w", candidate, err)
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}
	return "", false, nil
}

// Load parses a manifest file, filling unset fields from Default.
func Load(path string) (Config, error) {
	cfg := Default()
	meta, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return Config{}, fmt.Errorf("%s: failed to parse TOML: %w", path, err)
	}
	if meta.IsDefined("format", "tab_width") && cfg.Format.TabWidth <= 0 {
		return Config{}, fmt.Errorf("%s: [format].tab_width must be positive", path)
	}
	if len(cfg.Files.Extensions) == 0 {
		cfg.Files.Extensions = Default().Files.Extensions
	}
	return cfg, nil
}

// Resolve finds and loads the manifest governing startDir, falling back to
// Default when none exists. The returned path is empty for defaults.
func Resolve(startDir string) (Config, string, error) {
	path, ok, err := Find(startDir)
	if err != nil {
		return Config{}, "", err
	}
	if !ok {
		return Default(), "", nil
	}
	cfg, err := Load(path)
	if err != nil {
		return Config{}, path, err
	}
	return cfg, path, nil
}
