// Package config provides XDG path helpers.
package config

import (
	"os"
	"path/filepath"
)

const appName = "words"

// XDGConfigHome returns the XDG config home or a default fallback.
func XDGConfigHome() string {
	if v := os.Getenv("XDG_CONFIG_HOME"); v != "" {
		return v
	}
	home, err := os.UserHomeDir()
	if err != nil || home == "" {
		return "."
	}
	return filepath.Join(home, ".config")
}

// DefaultDictDir returns the default directory for dictionaries.
func DefaultDictDir() string {
	return filepath.Join(XDGConfigHome(), appName, "dicts")
}

// DefaultDictPath builds the default dictionary path for a name.
func DefaultDictPath(name string) string {
	return filepath.Join(DefaultDictDir(), name+".txt")
}

// DefaultConfigPath returns the default TOML config path.
func DefaultConfigPath() string {
	return filepath.Join(XDGConfigHome(), appName, "config.toml")
}
