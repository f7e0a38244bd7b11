package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

// Storage backend names.
const (
	StorageFile   = "file"
	StorageSQLite = "sqlite"
)

type Config struct {
	Storage StorageConfig `koanf:"storage"`
	Clock   ClockConfig   `koanf:"clock"`
	UI      UIConfig      `koanf:"ui"`
}

type StorageConfig struct {
	Backend string `koanf:"backend"` // "file" or "sqlite"
	DataDir string `koanf:"data_dir"`
}

type ClockConfig struct {
	TickInterval int `koanf:"tick_interval"` // seconds
}

type UIConfig struct {
	ColoredOutput bool `koanf:"colored_output"`
	ShowQuote     bool `koanf:"show_quote"`
	ShowCountdown bool `koanf:"show_countdown"`
}

func Load(configPath string) (*Config, error) {
	k := koanf.New(".")

	if err := k.Load(NewDefaultProvider(), nil); err != nil {
		return nil, fmt.Errorf("failed to load defaults: %w", err)
	}

	if configPath != "" {
		configPath = expandPath(configPath)

		if _, err := os.Stat(configPath); err == nil {
			if err := k.Load(file.Provider(configPath), yaml.Parser()); err != nil {
				return nil, fmt.Errorf("failed to load config file: %w", err)
			}
		}
	}

	if err := k.Load(env.Provider("CALENDAR_", ".", func(s string) string {
		return s
	}), nil); err != nil {
		return nil, fmt.Errorf("failed to load env vars: %w", err)
	}

	// Handle the common overrides directly
	if dir := os.Getenv("CALENDAR_DATA_DIR"); dir != "" {
		k.Set("storage.data_dir", dir)
	}
	if backend := os.Getenv("CALENDAR_STORAGE"); backend != "" {
		k.Set("storage.backend", backend)
	}

	var cfg Config
	if err := k.Unmarshal("", &cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	cfg.Storage.DataDir = expandPath(cfg.Storage.DataDir)

	return &cfg, nil
}

func (c *Config) Validate() error {
	switch c.Storage.Backend {
	case StorageFile, StorageSQLite:
	default:
		return fmt.Errorf("unknown storage backend: %s (supported: %s, %s)",
			c.Storage.Backend, StorageFile, StorageSQLite)
	}

	if c.Storage.DataDir == "" {
		return fmt.Errorf("data directory is required")
	}

	if c.Clock.TickInterval <= 0 {
		return fmt.Errorf("tick_interval must be positive, got %d", c.Clock.TickInterval)
	}

	return nil
}

// TickInterval returns the clock interval as a duration.
func (c *Config) TickInterval() time.Duration {
	return time.Duration(c.Clock.TickInterval) * time.Second
}

// DatabasePath returns the SQLite file location inside the data dir.
func (c *Config) DatabasePath() string {
	return filepath.Join(c.Storage.DataDir, "calendar.db")
}

func expandPath(path string) string {
	if path == "" {
		return path
	}

	if len(path) >= 2 && path[:2] == "~/" {
		home, err := os.UserHomeDir()
		if err != nil {
			return path
		}
		return filepath.Join(home, path[2:])
	}

	return path
}
