package config

import (
	"os"
	"path/filepath"
)

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

// XDGDataHome returns the XDG data home or a default fallback.
func XDGDataHome() string {
	if v := os.Getenv("XDG_DATA_HOME"); v != "" {
		return v
	}
	home, err := os.UserHomeDir()
	if err != nil || home == "" {
		return "."
	}
	return filepath.Join(home, ".local", "share")
}

// DefaultConfigPath returns the default path of the daemon config file.
func DefaultConfigPath() string {
	return filepath.Join(XDGConfigHome(), "glide", "glide.toml")
}

// DefaultDataDir returns the default directory for daemon data.
func DefaultDataDir() string {
	return filepath.Join(XDGDataHome(), "glide")
}

// DefaultLayoutDir returns the default directory for layout manifests.
func DefaultLayoutDir() string {
	return filepath.Join(XDGConfigHome(), "glide", "layouts")
}
