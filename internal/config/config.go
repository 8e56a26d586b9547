// Package config provides configuration management for the journal
// analytics application.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/viper"
)

// Config holds all application configuration.
type Config struct {
	Journal   JournalConfig   `mapstructure:"journal"`
	Analytics AnalyticsConfig `mapstructure:"analytics"`
	UI        UIConfig        `mapstructure:"ui"`
	Logging   LoggingConfig   `mapstructure:"logging"`
}

// JournalConfig holds journal storage configuration.
type JournalConfig struct {
	DatabasePath string `mapstructure:"database_path"`
}

// AnalyticsConfig holds analytics engine configuration.
type AnalyticsConfig struct {
	// Timezone used for calendar-day bucketing and the month/weekday/
	// hour filter dimensions. Empty means the system's local zone.
	Timezone string `mapstructure:"timezone"`
}

// UIConfig holds UI-related configuration.
type UIConfig struct {
	ColorEnabled bool   `mapstructure:"color_enabled"`
	DateFormat   string `mapstructure:"date_format"`
	TimeFormat   string `mapstructure:"time_format"`
}

// LoggingConfig holds logging configuration.
type LoggingConfig struct {
	Level      string `mapstructure:"level"`
	Console    bool   `mapstructure:"console"`
	File       bool   `mapstructure:"file"`
	MaxSizeMB  int    `mapstructure:"max_size_mb"`
	MaxBackups int    `mapstructure:"max_backups"`
	MaxAgeDays int    `mapstructure:"max_age_days"`
}

// DefaultConfigDir returns the default configuration directory.
func DefaultConfigDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ".config/tradelens"
	}
	return filepath.Join(home, ".config", "tradelens")
}

// Load loads configuration from the specified directory.
// If configDir is empty, uses the default config directory.
func Load(configDir string) (*Config, error) {
	if configDir == "" {
		configDir = DefaultConfigDir()
	}

	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("toml")
	v.AddConfigPath(configDir)

	v.SetDefault("journal.database_path", filepath.Join(configDir, "journal.db"))
	v.SetDefault("analytics.timezone", "")
	v.SetDefault("ui.color_enabled", true)
	v.SetDefault("ui.date_format", "02-Jan-2006")
	v.SetDefault("ui.time_format", "15:04:05")
	v.SetDefault("logging.level", "info")
	v.SetDefault("logging.console", true)
	v.SetDefault("logging.file", true)
	v.SetDefault("logging.max_size_mb", 50)
	v.SetDefault("logging.max_backups", 5)
	v.SetDefault("logging.max_age_days", 30)

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); ok {
			if werr := createTemplateConfig(configDir); werr != nil {
				return nil, fmt.Errorf("writing config template: %w", werr)
			}
		} else {
			return nil, fmt.Errorf("loading config.toml: %w", err)
		}
	}

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("parsing config.toml: %w", err)
	}

	applyEnvOverrides(cfg)

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("validating config: %w", err)
	}

	return cfg, nil
}

func applyEnvOverrides(cfg *Config) {
	if v := os.Getenv("TRADELENS_DB"); v != "" {
		cfg.Journal.DatabasePath = v
	}
	if v := os.Getenv("TRADELENS_TZ"); v != "" {
		cfg.Analytics.Timezone = v
	}
	if v := os.Getenv("TRADELENS_LOG_LEVEL"); v != "" {
		cfg.Logging.Level = v
	}
}

// Validate checks the configuration for invalid values.
func (c *Config) Validate() error {
	if c.Journal.DatabasePath == "" {
		return fmt.Errorf("journal.database_path must not be empty")
	}
	if _, err := c.Location(); err != nil {
		return fmt.Errorf("invalid analytics.timezone %q: %w", c.Analytics.Timezone, err)
	}
	switch c.Logging.Level {
	case "", "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("invalid logging.level: %s", c.Logging.Level)
	}
	return nil
}

// Location resolves the analytics timezone. An empty setting resolves
// to the system's local zone.
func (c *Config) Location() (*time.Location, error) {
	if c.Analytics.Timezone == "" {
		return time.Local, nil
	}
	return time.LoadLocation(c.Analytics.Timezone)
}
