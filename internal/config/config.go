package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/BurntSushi/toml"
)

// Config is the application configuration, read from an optional
// ~/.lockin.toml. Flags override whatever the file sets.
type Config struct {
	Storage StorageConfig `toml:"storage"`
	Ticker  TickerConfig  `toml:"ticker"`
	Verbose bool          `toml:"verbose"`
}

type StorageConfig struct {
	// Path of the SQLite database. Empty means ~/.lockin.db.
	Path string `toml:"path"`
}

type TickerConfig struct {
	// Interval between background rollover/accrual checks on the board,
	// as a Go duration string.
	Interval string `toml:"interval"`
}

// DefaultConfig returns the built-in configuration.
func DefaultConfig() Config {
	return Config{
		Ticker: TickerConfig{Interval: "1m"},
	}
}

// DefaultPath returns the default config file location.
func DefaultPath() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("get home dir: %w", err)
	}
	return filepath.Join(homeDir, ".lockin.toml"), nil
}

// Load reads the config file at path over the defaults. A missing file is
// not an error; a malformed one is.
func Load(path string) (Config, error) {
	cfg := DefaultConfig()
	if path == "" {
		p, err := DefaultPath()
		if err != nil {
			return cfg, err
		}
		path = p
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("read config: %w", err)
	}
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parse config: %w", err)
	}
	return cfg, nil
}

// TickInterval parses the ticker interval, falling back to one minute on a
// missing or malformed value.
func (c Config) TickInterval() time.Duration {
	d, err := time.ParseDuration(c.Ticker.Interval)
	if err != nil || d <= 0 {
		return time.Minute
	}
	return d
}
