// Package config provides configuration helpers and TOML parsing for
// the Glide daemon.
package config

import (
	"fmt"
	"os"

	"github.com/BurntSushi/toml"

	"github.com/kmathur/glide/internal/decoder"
)

// FileConfig represents the TOML configuration file.
type FileConfig struct {
	Listen    *string       `toml:"listen"`
	DataDir   *string       `toml:"data_dir"`
	LayoutDir *string       `toml:"layout_dir"`
	Wordlist  *string       `toml:"wordlist"`
	Lang      *string       `toml:"lang"`
	StaticDir *string       `toml:"static_dir"`
	Decoder   DecoderConfig `toml:"decoder"`
}

// DecoderConfig maps the decoder tunables.
type DecoderConfig struct {
	MinSwipeDistance    *float64 `toml:"min_swipe_distance"`
	HitRadius           *float64 `toml:"hit_radius"`
	MinKeyIntervalMs    *int64   `toml:"min_key_interval_ms"`
	ConfidenceThreshold *float64 `toml:"confidence_threshold"`
}

// LoadConfig reads a TOML config from the given path. Missing file is not an error.
func LoadConfig(path string) (FileConfig, error) {
	if path == "" {
		return FileConfig{}, fmt.Errorf("config path is empty")
	}
	if _, err := os.Stat(path); err != nil {
		if os.IsNotExist(err) {
			return FileConfig{}, nil
		}
		return FileConfig{}, fmt.Errorf("failed to stat config: %w", err)
	}
	var cfg FileConfig
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return FileConfig{}, fmt.Errorf("failed to decode config: %w", err)
	}
	return cfg, nil
}

// DecoderConfig resolves the file settings into a decoder configuration,
// applying defaults for anything unset.
func (c FileConfig) DecoderConfig() decoder.Config {
	cfg := decoder.DefaultConfig()

	if c.Decoder.MinSwipeDistance != nil {
		cfg.MinSwipeDistance = *c.Decoder.MinSwipeDistance
	}
	if c.Decoder.HitRadius != nil {
		cfg.HitRadius = *c.Decoder.HitRadius
	}
	if c.Decoder.MinKeyIntervalMs != nil {
		cfg.MinKeyIntervalMs = *c.Decoder.MinKeyIntervalMs
	}
	if c.Decoder.ConfidenceThreshold != nil {
		cfg.ConfidenceThreshold = *c.Decoder.ConfidenceThreshold
	}

	return cfg
}

// stringOr returns the pointed-to value or a fallback.
func stringOr(v *string, fallback string) string {
	if v != nil && *v != "" {
		return *v
	}
	return fallback
}

// ListenAddr resolves the listen address.
func (c FileConfig) ListenAddr() string {
	return stringOr(c.Listen, ":8080")
}

// LangOr resolves the dictionary language.
func (c FileConfig) LangOr() string {
	return stringOr(c.Lang, "en")
}
