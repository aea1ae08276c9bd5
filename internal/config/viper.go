// Package config provides Viper-based hierarchical configuration management
package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

// EnvPrefix prefixes every environment variable read by the application.
const EnvPrefix = "OUTFITTER"

// Legacy variables from the web dashboard, read when the prefixed ones are
// unset.
const (
	LegacyOrgIDEnv    = "NEXT_PUBLIC_ORG_ID"
	LegacySeasonIDEnv = "NEXT_PUBLIC_SEASON_ID"
)

// Config represents the complete application configuration
type Config struct {
	Log struct {
		Level  string `mapstructure:"level" yaml:"level"`
		Format string `mapstructure:"format" yaml:"format"`
	} `mapstructure:"log" yaml:"log"`

	Org struct {
		ID       string `mapstructure:"id" yaml:"id"`
		SeasonID string `mapstructure:"season_id" yaml:"season_id"`
	} `mapstructure:"org" yaml:"org"`

	Database struct {
		Driver string `mapstructure:"driver" yaml:"driver"`
		DSN    string `mapstructure:"dsn" yaml:"-"` // may hold credentials
		Debug  bool   `mapstructure:"debug" yaml:"debug"`
	} `mapstructure:"database" yaml:"database"`

	Import struct {
		BatchSize int `mapstructure:"batch_size" yaml:"batch_size"`
	} `mapstructure:"import" yaml:"import"`

	Schedule struct {
		PolicyFile string `mapstructure:"policy_file" yaml:"policy_file"`
		Currency   string `mapstructure:"currency" yaml:"currency"`
	} `mapstructure:"schedule" yaml:"schedule"`
}

// InitializeConfig loads configuration: defaults, then config.yaml (from
// configFile when given, else $HOME/.outfitter, .outfitter or the working
// directory), then OUTFITTER_* environment variables.
func InitializeConfig(configFile string) (*Config, error) {
	v := viper.New()

	// 1. Set defaults
	setDefaults(v)

	// 2. Config file locations
	if configFile != "" {
		v.SetConfigFile(configFile)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath("$HOME/.outfitter")
		v.AddConfigPath(".outfitter")
		v.AddConfigPath(".")
	}

	// 3. Environment variables
	v.SetEnvPrefix(EnvPrefix)
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	// 4. Read config file; only an explicitly named file is required
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if configFile != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	// 5. Fallbacks for the dashboard's environment names
	if err := v.BindEnv("org.id", EnvPrefix+"_ORG_ID", LegacyOrgIDEnv); err != nil {
		return nil, fmt.Errorf("failed to bind org id: %w", err)
	}
	if err := v.BindEnv("org.season_id", EnvPrefix+"_ORG_SEASON_ID", LegacySeasonIDEnv); err != nil {
		return nil, fmt.Errorf("failed to bind season id: %w", err)
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	// 6. Validate configuration
	if err := validateConfig(&config); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &config, nil
}

// setDefaults sets default configuration values
func setDefaults(v *viper.Viper) {
	// Log defaults
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "text")

	// Scope defaults
	v.SetDefault("org.id", "")
	v.SetDefault("org.season_id", "")

	// Database defaults
	v.SetDefault("database.driver", "sqlite")
	v.SetDefault("database.dsn", "outfitter.db")
	v.SetDefault("database.debug", false)

	// Import defaults
	v.SetDefault("import.batch_size", 500)

	// Schedule defaults
	v.SetDefault("schedule.policy_file", "")
	v.SetDefault("schedule.currency", "USD")
}

// validateConfig validates the configuration values
func validateConfig(config *Config) error {
	// Validate log level
	if _, err := logrus.ParseLevel(config.Log.Level); err != nil {
		return fmt.Errorf("invalid log level: %s", config.Log.Level)
	}

	// Validate log format
	if config.Log.Format != "text" && config.Log.Format != "json" {
		return fmt.Errorf("invalid log format: %s (must be 'text' or 'json')", config.Log.Format)
	}

	switch config.Database.Driver {
	case "sqlite", "postgres":
	default:
		return fmt.Errorf("invalid database driver: %s (must be 'sqlite' or 'postgres')", config.Database.Driver)
	}

	if config.Database.DSN == "" {
		return fmt.Errorf("database.dsn must not be empty")
	}

	if config.Import.BatchSize < 1 {
		return fmt.Errorf("import.batch_size must be at least 1, got: %d", config.Import.BatchSize)
	}

	if len(config.Schedule.Currency) != 3 {
		return fmt.Errorf("schedule.currency must be a 3-letter code, got: %s", config.Schedule.Currency)
	}

	return nil
}
