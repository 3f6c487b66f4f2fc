package config

import (
	"fmt"
	"os"
	"path/filepath"

	toml "github.com/pelletier/go-toml/v2"
)

// FileConfig is the TOML representation of the settings a config file may
// carry. The input source is always taken from the command line.
type FileConfig struct {
	HTMLDecode *bool  `toml:"html_decode"`
	Output     string `toml:"output"`
	OnError    string `toml:"on_error"`
	Slug       *bool  `toml:"slug"`
	Verbose    *bool  `toml:"verbose"`
}

// LoadFileConfig reads and parses a TOML config file.
func LoadFileConfig(path string) (FileConfig, error) {
	var fc FileConfig
	b, err := os.ReadFile(path)
	if err != nil {
		return fc, err
	}
	if err := toml.Unmarshal(b, &fc); err != nil {
		return fc, fmt.Errorf("%w: parse %s: %v", ErrConfig, path, err)
	}
	return fc, nil
}

// DefaultConfigPath returns ~/.pjdsplit/config.toml, or "" when the home
// directory is unknown.
func DefaultConfigPath() string {
	if h, err := os.UserHomeDir(); err == nil {
		return filepath.Join(h, ".pjdsplit", "config.toml")
	}
	return ""
}

// FileExists reports whether path names an existing regular file.
func FileExists(path string) bool {
	st, err := os.Stat(path)
	return err == nil && st.Mode().IsRegular()
}

// ApplyFileConfig copies file settings into cfg, skipping flags in changed.
func ApplyFileConfig(cfg *Config, fc FileConfig, changed map[string]bool) error {
	s := newConfigSetter(changed)
	s.setBool("html-decode", fc.HTMLDecode, &cfg.HTMLDecode)
	s.setString("output", fc.Output, &cfg.Output)
	s.setBool("slug", fc.Slug, &cfg.Slug)
	s.setBool("verbose", fc.Verbose, &cfg.Verbose)
	return s.setPolicy("on-error", fc.OnError, &cfg.Policy)
}
