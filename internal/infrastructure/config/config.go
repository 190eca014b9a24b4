package config

import (
	"fmt"
	"log/slog"
	"os"
	"strings"
	"time"
	_ "time/tzdata"

	"github.com/felixgeelhaar/taskburn/pkg/storage"
	"gopkg.in/yaml.v3"
)

const (
	DefaultTimezone = "UTC"
	DefaultLogLevel = "info"
	DefaultOutput   = "text"
	DefaultDebounce = "500ms"
)

// Config is the workspace configuration stored in .taskburn/config.yaml.
type Config struct {
	Timezone string      `yaml:"timezone"`
	LogLevel string      `yaml:"log_level"`
	Output   string      `yaml:"output"`
	Watch    WatchConfig `yaml:"watch"`
}

type WatchConfig struct {
	Debounce string `yaml:"debounce"`
}

// Default returns the configuration used when no file exists.
func Default() *Config {
	return &Config{
		Timezone: DefaultTimezone,
		LogLevel: DefaultLogLevel,
		Output:   DefaultOutput,
		Watch:    WatchConfig{Debounce: DefaultDebounce},
	}
}

// Load reads the workspace configuration. A missing file yields the defaults;
// fields left empty in the file keep their default value.
func Load(root string) (*Config, error) {
	repo := storage.NewFilesystemRepository(root)
	path, err := repo.ResolvePath(storage.ConfigFile)
	if err != nil {
		return nil, err
	}

	cfg := Default()
	data, err := os.ReadFile(path) // #nosec G304 -- path resolved inside the workspace
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}
	cfg.applyDefaults()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func Save(root string, cfg *Config) error {
	if cfg == nil {
		return fmt.Errorf("config is nil")
	}

	repo := storage.NewFilesystemRepository(root)
	path, err := repo.ResolvePath(storage.ConfigFile)
	if err != nil {
		return err
	}

	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	return os.WriteFile(path, data, 0600)
}

func (c *Config) applyDefaults() {
	def := Default()
	if c.Timezone == "" {
		c.Timezone = def.Timezone
	}
	if c.LogLevel == "" {
		c.LogLevel = def.LogLevel
	}
	if c.Output == "" {
		c.Output = def.Output
	}
	if c.Watch.Debounce == "" {
		c.Watch.Debounce = def.Watch.Debounce
	}
}

// Validate checks every field can be interpreted.
func (c *Config) Validate() error {
	if _, err := c.Location(); err != nil {
		return err
	}
	if _, err := ParseLevel(c.LogLevel); err != nil {
		return err
	}
	switch c.Output {
	case "text", "json":
	default:
		return fmt.Errorf("invalid output format %q (expected text or json)", c.Output)
	}
	if _, err := c.DebounceDuration(); err != nil {
		return err
	}
	return nil
}

// Location returns the configured timezone.
func (c *Config) Location() (*time.Location, error) {
	loc, err := time.LoadLocation(c.Timezone)
	if err != nil {
		return nil, fmt.Errorf("invalid timezone %q: %w", c.Timezone, err)
	}
	return loc, nil
}

// SlogLevel returns the configured log level.
func (c *Config) SlogLevel() slog.Level {
	level, err := ParseLevel(c.LogLevel)
	if err != nil {
		return slog.LevelInfo
	}
	return level
}

// DebounceDuration returns the delay used to coalesce file change events.
func (c *Config) DebounceDuration() (time.Duration, error) {
	d, err := time.ParseDuration(c.Watch.Debounce)
	if err != nil {
		return 0, fmt.Errorf("invalid watch debounce %q: %w", c.Watch.Debounce, err)
	}
	if d <= 0 {
		return 0, fmt.Errorf("watch debounce must be positive, got %s", d)
	}
	return d, nil
}

// ParseLevel maps debug|info|warn|error onto a slog level.
func ParseLevel(s string) (slog.Level, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return slog.LevelDebug, nil
	case "info", "":
		return slog.LevelInfo, nil
	case "warn", "warning":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	default:
		return slog.LevelInfo, fmt.Errorf("invalid log level %q", s)
	}
}
