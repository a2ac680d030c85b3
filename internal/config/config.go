package config

import (
	"fmt"
	"time"

	"github.com/spf13/viper"
)

// Config holds the application's configuration.
type Config struct {
	Database  DatabaseConfig  `mapstructure:"database"`
	Challenge ChallengeConfig `mapstructure:"challenge"`
}

// DatabaseConfig configures the local store.
type DatabaseConfig struct {
	// Path is the SQLite database file. Empty means the default
	// XDG data path.
	Path string `mapstructure:"path"`
}

// ChallengeConfig configures session defaults.
type ChallengeConfig struct {
	// Platform scopes the daily cap, e.g. "Mobile".
	Platform string `mapstructure:"platform"`

	// Timezone is an IANA name used for calendar-day bucketing.
	// Empty means the system's local timezone.
	Timezone string `mapstructure:"timezone"`
}

// Load reads configuration from the given file, or from the default search
// paths when configFile is empty. Environment variables override file
// values for the bound keys.
func Load(configFile string) (*Config, error) {
	v := viper.New()

	v.SetConfigType("yaml")

	if configFile != "" {
		v.SetConfigFile(configFile)
	} else {
		v.SetConfigName("config")
		v.AddConfigPath(".")
		v.AddConfigPath("$HOME/.config/tatumtech")
	}

	v.SetDefault("challenge.platform", "Mobile")
	v.SetDefault("challenge.timezone", "")

	if err := v.BindEnv("database.path", "TATUMTECH_DB"); err != nil {
		return nil, fmt.Errorf("bind TATUMTECH_DB environment variable: %w", err)
	}
	if err := v.BindEnv("challenge.platform", "TATUMTECH_PLATFORM"); err != nil {
		return nil, fmt.Errorf("bind TATUMTECH_PLATFORM environment variable: %w", err)
	}
	if err := v.BindEnv("challenge.timezone", "TATUMTECH_TZ"); err != nil {
		return nil, fmt.Errorf("bind TATUMTECH_TZ environment variable: %w", err)
	}

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("read config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration format: %w", err)
	}
	return &cfg, nil
}

// Location resolves the configured timezone.
func (c *Config) Location() (*time.Location, error) {
	if c.Challenge.Timezone == "" {
		return time.Local, nil
	}
	loc, err := time.LoadLocation(c.Challenge.Timezone)
	if err != nil {
		return nil, fmt.Errorf("load timezone %q: %w", c.Challenge.Timezone, err)
	}
	return loc, nil
}
