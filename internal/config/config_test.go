package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/pelletier/go-toml/v2"
)

func TestDefaultValidates(t *testing.T) {
	cfg := Default()
	if err := cfg.Validate(); err != nil {
		t.Fatalf("Default().Validate() error = %v", err)
	}
	if cfg.Limits.MaxCharsPerLine != 42 {
		t.Errorf("default max_chars_per_line = %d, want 42", cfg.Limits.MaxCharsPerLine)
	}
	if cfg.Cache.Enabled {
		t.Error("cache enabled by default")
	}
}

func TestLoadMissingFileYieldsDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "nope.toml"))
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg != Default() {
		t.Errorf("Load(missing) = %+v, want defaults", cfg)
	}
}

func TestLoadOverridesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	doc := `[limits]
max_chars_per_line = 37

[log]
level = "debug"
format = "json"

[cache]
enabled = true
path = "/tmp/captionseg-test.db"
`
	if err := os.WriteFile(path, []byte(doc), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.Limits.MaxCharsPerLine != 37 {
		t.Errorf("max_chars_per_line = %d, want 37", cfg.Limits.MaxCharsPerLine)
	}
	// Unset fields keep their defaults.
	if cfg.Limits.MaxCharsPerSecond != 18.0 {
		t.Errorf("max_chars_per_second = %g, want default 18", cfg.Limits.MaxCharsPerSecond)
	}
	if cfg.Log.Level != "debug" || cfg.Log.Format != "json" {
		t.Errorf("log = %+v, want debug/json", cfg.Log)
	}
	if !cfg.Cache.Enabled || cfg.Cache.Path != "/tmp/captionseg-test.db" {
		t.Errorf("cache = %+v", cfg.Cache)
	}
}

func TestLoadRejectsInvalidLimits(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	doc := "[limits]\nmax_chars_per_line = 0\n"
	if err := os.WriteFile(path, []byte(doc), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(path); err == nil {
		t.Error("Load() accepted zero max_chars_per_line")
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
	}{
		{name: "defaults", mutate: func(*Config) {}},
		{name: "json log format", mutate: func(c *Config) { c.Log.Format = "json" }},
		{name: "unknown log format", mutate: func(c *Config) { c.Log.Format = "yaml" }, wantErr: true},
		{name: "cache enabled without path", mutate: func(c *Config) { c.Cache.Enabled = true; c.Cache.Path = "" }, wantErr: true},
		{name: "negative min duration", mutate: func(c *Config) { c.Limits.MinDurationSeconds = -1 }, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(&cfg)
			err := cfg.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestSampleMatchesDefaults(t *testing.T) {
	cfg := Default()
	if err := toml.Unmarshal([]byte(Sample()), &cfg); err != nil {
		t.Fatalf("sample config does not parse: %v", err)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("sample config does not validate: %v", err)
	}
}

func TestExpandPath(t *testing.T) {
	home, err := os.UserHomeDir()
	if err != nil {
		t.Skip("no home directory")
	}
	if got := ExpandPath("~/x/y"); got != filepath.Join(home, "x", "y") {
		t.Errorf("ExpandPath(~/x/y) = %q", got)
	}
	if got := ExpandPath("/abs/path"); got != "/abs/path" {
		t.Errorf("ExpandPath(/abs/path) = %q", got)
	}
	if got := ExpandPath("relative"); strings.HasPrefix(got, home) {
		t.Errorf("ExpandPath(relative) = %q, want untouched", got)
	}
}
