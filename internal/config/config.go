// Package config handles loading the sankalan configuration.
//
// Settings are layered: built-in defaults, then the XDG config file
// (~/.config/sankalan/config.yaml), then SANKALAN_* environment variables.
// Command-line flags are applied last by the caller.
package config

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/abhisek/sankalan/internal/export"
)

// ExportConfig controls where and how views are exported.
type ExportConfig struct {
	Dir         string `yaml:"dir,omitempty"`
	Format      string `yaml:"format,omitempty"`       // pdf, png or svg
	Prefix      string `yaml:"prefix,omitempty"`       // file name prefix
	KeepHistory int    `yaml:"keep_history,omitempty"` // export log entries kept (0 = all)
}

// EventsConfig points at the portal event feed.
type EventsConfig struct {
	URL     string        `yaml:"url,omitempty"`
	Timeout time.Duration `yaml:"timeout,omitempty"`
}

// LogConfig controls the diagnostic log. The TUI owns the terminal, so
// logs go to a file or nowhere.
type LogConfig struct {
	File  string `yaml:"file,omitempty"`
	Level string `yaml:"level,omitempty"`
}

// Config is the top-level configuration.
type Config struct {
	Content string       `yaml:"content,omitempty"` // content document; empty uses the built-in roadmaps
	DB      string       `yaml:"db,omitempty"`      // export history database; empty uses the XDG data dir
	Export  ExportConfig `yaml:"export,omitempty"`
	Events  EventsConfig `yaml:"events,omitempty"`
	Log     LogConfig    `yaml:"log,omitempty"`
}

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() Config {
	return Config{
		Export: ExportConfig{
			Dir:    ".",
			Format: string(export.FormatPDF),
			Prefix: export.DefaultPrefix,
		},
		Events: EventsConfig{
			Timeout: 10 * time.Second,
		},
		Log: LogConfig{
			Level: "info",
		},
	}
}

// ConfigDir returns the XDG config directory for sankalan.
func ConfigDir() string {
	if dir := os.Getenv("XDG_CONFIG_HOME"); dir != "" {
		return filepath.Join(dir, "sankalan")
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".config", "sankalan")
}

// ConfigPath returns the full path to config.yaml.
func ConfigPath() string {
	dir := ConfigDir()
	if dir == "" {
		return ""
	}
	return filepath.Join(dir, "config.yaml")
}

// Load reads the config file from the XDG config directory, or path when
// non-empty, and applies environment overrides.
func Load(path string) (Config, error) {
	if path == "" {
		path = ConfigPath()
	}
	cfg := DefaultConfig()
	if path != "" {
		var err error
		if cfg, err = LoadFrom(path); err != nil {
			return cfg, err
		}
	}
	if err := cfg.ApplyEnv(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// LoadFrom reads config from a specific path.
// Returns DefaultConfig if the file doesn't exist.
func LoadFrom(path string) (Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("reading config: %w", err)
	}

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parsing config: %w", err)
	}

	cfg.Content = expandHome(cfg.Content)
	cfg.DB = expandHome(cfg.DB)
	cfg.Export.Dir = expandHome(cfg.Export.Dir)
	cfg.Log.File = expandHome(cfg.Log.File)
	return cfg, nil
}

// ApplyEnv overrides fields from SANKALAN_* environment variables.
func (c *Config) ApplyEnv() error {
	if v := os.Getenv("SANKALAN_CONTENT"); v != "" {
		c.Content = v
	}
	if v := os.Getenv("SANKALAN_DB"); v != "" {
		c.DB = v
	}
	if v := os.Getenv("SANKALAN_EXPORT_DIR"); v != "" {
		c.Export.Dir = v
	}
	if v := os.Getenv("SANKALAN_EXPORT_FORMAT"); v != "" {
		c.Export.Format = v
	}
	if v := os.Getenv("SANKALAN_EXPORT_KEEP"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("SANKALAN_EXPORT_KEEP: %w", err)
		}
		c.Export.KeepHistory = n
	}
	if v := os.Getenv("SANKALAN_EVENTS_URL"); v != "" {
		c.Events.URL = v
	}
	if v := os.Getenv("SANKALAN_LOG_FILE"); v != "" {
		c.Log.File = v
	}
	if v := os.Getenv("SANKALAN_LOG_LEVEL"); v != "" {
		c.Log.Level = v
	}
	return nil
}

// Validate reports the first invalid setting.
func (c Config) Validate() error {
	if _, err := export.ParseFormat(c.Export.Format); err != nil {
		return fmt.Errorf("export.format: %w", err)
	}
	if c.Export.KeepHistory < 0 {
		return fmt.Errorf("export.keep_history must be >= 0, got %d", c.Export.KeepHistory)
	}
	if c.Events.Timeout < 0 {
		return fmt.Errorf("events.timeout must be >= 0, got %s", c.Events.Timeout)
	}
	if _, err := c.Log.SlogLevel(); err != nil {
		return err
	}
	return nil
}

// SlogLevel parses Level. Empty means info.
func (l LogConfig) SlogLevel() (slog.Level, error) {
	var lvl slog.Level
	if l.Level == "" {
		return slog.LevelInfo, nil
	}
	if err := lvl.UnmarshalText([]byte(l.Level)); err != nil {
		return 0, fmt.Errorf("log.level %q: want debug, info, warn or error", l.Level)
	}
	return lvl, nil
}

// SaveTo writes the config to a specific path.
func SaveTo(cfg Config, path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}

	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing config: %w", err)
	}
	return nil
}

func expandHome(path string) string {
	if !strings.HasPrefix(path, "~/") {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return path
	}
	return filepath.Join(home, path[2:])
}
