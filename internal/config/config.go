// Package config loads application settings. Settings come from an optional
// TOML file, overridden by TYPETRAIN_-prefixed environment variables. A
// missing file is not an error; defaults apply.
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/pelletier/go-toml/v2"
)

// EnvPrefix is the prefix for environment variable overrides.
const EnvPrefix = "TYPETRAIN_"

// Config holds all application settings.
type Config struct {
	Logging LoggingConfig `toml:"logging"`
	Bus     BusConfig     `toml:"bus"`
	Typing  TypingConfig  `toml:"typing"`
}

// LoggingConfig controls the log output.
type LoggingConfig struct {
	// Level is one of debug, info, warn, error.
	Level string `toml:"level"`

	// File is the log file path. Empty means stderr.
	File string `toml:"file"`

	// MaxSizeMB is the file size at which the log rotates.
	MaxSizeMB int `toml:"max_size_mb"`

	// MaxBackups is the number of rotated files to keep.
	MaxBackups int `toml:"max_backups"`

	// MaxAgeDays is how long rotated files are retained.
	MaxAgeDays int `toml:"max_age_days"`
}

// BusConfig controls the event bus.
type BusConfig struct {
	// Debug enables per-emission and per-subscription logging.
	Debug bool `toml:"debug"`
}

// TypingConfig controls practice sessions.
type TypingConfig struct {
	// WaitTimeout is the default timeout, in seconds, when blocking on an
	// event. Zero means wait forever.
	WaitTimeoutSec int `toml:"wait_timeout_sec"`
}

// Default returns the built-in settings.
func Default() Config {
	return Config{
		Logging: LoggingConfig{
			Level:      "info",
			MaxSizeMB:  10,
			MaxBackups: 3,
			MaxAgeDays: 14,
		},
		Typing: TypingConfig{
			WaitTimeoutSec: 30,
		},
	}
}

// Load reads the config file at path, applies environment overrides, and
// validates the result. A missing file leaves the defaults in place.
func Load(path string) (Config, error) {
	cfg := Default()

	if path != "" {
		data, err := os.ReadFile(path)
		switch {
		case os.IsNotExist(err):
			// Defaults apply.
		case err != nil:
			return Config{}, fmt.Errorf("reading config file %s: %w", path, err)
		default:
			if err := toml.Unmarshal(data, &cfg); err != nil {
				return Config{}, fmt.Errorf("parsing config file %s: %w", path, err)
			}
		}
	}

	cfg.applyEnv()

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// applyEnv overlays TYPETRAIN_ environment variables onto the config.
func (c *Config) applyEnv() {
	if v, ok := os.LookupEnv(EnvPrefix + "LOG_LEVEL"); ok {
		c.Logging.Level = v
	}
	if v, ok := os.LookupEnv(EnvPrefix + "LOG_FILE"); ok {
		c.Logging.File = v
	}
	if v, ok := os.LookupEnv(EnvPrefix + "BUS_DEBUG"); ok {
		c.Bus.Debug = parseBool(v)
	}
	if v, ok := os.LookupEnv(EnvPrefix + "WAIT_TIMEOUT_SEC"); ok {
		if n, err := strconv.Atoi(v); err == nil {
			c.Typing.WaitTimeoutSec = n
		}
	}
}

// Validate checks the config for values that cannot be acted on.
func (c Config) Validate() error {
	switch strings.ToLower(c.Logging.Level) {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("unknown log level %q", c.Logging.Level)
	}
	if c.Typing.WaitTimeoutSec < 0 {
		return fmt.Errorf("wait timeout cannot be negative: %d", c.Typing.WaitTimeoutSec)
	}
	return nil
}

func parseBool(s string) bool {
	switch strings.ToLower(s) {
	case "true", "yes", "on", "1":
		return true
	default:
		return false
	}
}
