package config

import (
	_ "embed"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"

	"captionseg/internal/captions"
)

//go:embed sample_config.toml
var sampleConfig string

// Limits mirrors captions.Limits in TOML form.
type Limits struct {
	MaxCharsPerLine       int     `toml:"max_chars_per_line"`
	MaxCharsPerSecond     float64 `toml:"max_chars_per_second"`
	MinDurationSeconds    float64 `toml:"min_duration_seconds"`
	MaxDurationSeconds    float64 `toml:"max_duration_seconds"`
	MinChars              int     `toml:"min_chars"`
	PauseThresholdSeconds float64 `toml:"pause_threshold_seconds"`
}

// Log configures logger construction.
type Log struct {
	Level  string `toml:"level"`
	Format string `toml:"format"`
}

// Cache configures the result cache.
type Cache struct {
	Enabled bool   `toml:"enabled"`
	Path    string `toml:"path"`
}

// Config is the root configuration document.
type Config struct {
	Limits Limits `toml:"limits"`
	Log    Log    `toml:"log"`
	Cache  Cache  `toml:"cache"`
}

// Default returns a Config populated with repository defaults.
func Default() Config {
	limits := captions.DefaultLimits()
	return Config{
		Limits: Limits{
			MaxCharsPerLine:       limits.MaxCharsPerLine,
			MaxCharsPerSecond:     limits.MaxCharsPerSecond,
			MinDurationSeconds:    limits.MinDuration,
			MaxDurationSeconds:    limits.MaxDuration,
			MinChars:              limits.MinChars,
			PauseThresholdSeconds: limits.PauseThreshold,
		},
		Log: Log{
			Level:  "info",
			Format: "console",
		},
		Cache: Cache{
			Enabled: false,
			Path:    "~/.cache/captionseg/results.db",
		},
	}
}

// DefaultConfigPath returns the standard config file location.
func DefaultConfigPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("resolve home directory: %w", err)
	}
	return filepath.Join(home, ".config", "captionseg", "config.toml"), nil
}

// Load reads the config file at path, or the default location when path is
// empty. A missing file yields the defaults.
func Load(path string) (Config, error) {
	cfg := Default()

	if path == "" {
		defaultPath, err := DefaultConfigPath()
		if err != nil {
			return Config{}, err
		}
		path = defaultPath
	}

	data, err := os.ReadFile(ExpandPath(path))
	if errors.Is(err, fs.ErrNotExist) {
		return cfg, nil
	}
	if err != nil {
		return Config{}, fmt.Errorf("read config: %w", err)
	}
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("parse config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate ensures the configuration is usable.
func (c *Config) Validate() error {
	if err := c.EngineLimits().Validate(); err != nil {
		return err
	}
	switch strings.ToLower(strings.TrimSpace(c.Log.Format)) {
	case "", "console", "json":
	default:
		return fmt.Errorf("log.format: unsupported value %q", c.Log.Format)
	}
	if c.Cache.Enabled && strings.TrimSpace(c.Cache.Path) == "" {
		return errors.New("cache.path is required when cache.enabled is true")
	}
	return nil
}

// EngineLimits converts the TOML limits into engine form.
func (c *Config) EngineLimits() captions.Limits {
	return captions.Limits{
		MaxCharsPerLine:   c.Limits.MaxCharsPerLine,
		MaxCharsPerSecond: c.Limits.MaxCharsPerSecond,
		MinDuration:       c.Limits.MinDurationSeconds,
		MaxDuration:       c.Limits.MaxDurationSeconds,
		MinChars:          c.Limits.MinChars,
		PauseThreshold:    c.Limits.PauseThresholdSeconds,
	}
}

// Sample returns the embedded sample configuration document.
func Sample() string {
	return sampleConfig
}

// ExpandPath resolves a leading "~" to the user's home directory.
func ExpandPath(path string) string {
	if path == "~" || strings.HasPrefix(path, "~/") {
		home, err := os.UserHomeDir()
		if err != nil {
			return path
		}
		return filepath.Join(home, strings.TrimPrefix(strings.TrimPrefix(path, "~"), "/"))
	}
	return path
}
