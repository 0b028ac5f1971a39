package config

import (
	"errors"
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
)

// envBindings maps config keys to the environment variables that override them
var envBindings = map[string]string{
	"e621.project":  "E621_PROJECT",
	"e621.url":      "E621_URL",
	"e621.username": "E621_USERNAME",
	"e621.api_key":  "E621_API_KEY",
	"e621.timeout":  "E621_TIMEOUT",
}

// Load loads the configuration from file and environment. Without an
// explicit path a missing config file is not an error; defaults and
// environment variables are used instead.
func Load(configPath string) (*Config, error) {
	v := viper.New()

	// Set default values
	setDefaults(v)

	if configPath != "" {
		v.SetConfigFile(configPath)
	} else {
		// Look for config in standard locations
		v.SetConfigName("config")
		v.SetConfigType("yaml")

		// Check current directory first
		v.AddConfigPath(".")

		// Check home directory
		if home, err := os.UserHomeDir(); err == nil {
			v.AddConfigPath(filepath.Join(home, ".go-e621"))
		}

		// Check /etc
		v.AddConfigPath("/etc/go-e621/")
	}

	// E621_LOGGING_LEVEL and friends for everything else
	v.SetEnvPrefix("E621")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	for key, env := range envBindings {
		if err := v.BindEnv(key, env); err != nil {
			return nil, fmt.Errorf("error binding %s: %w", env, err)
		}
	}

	// Read config file
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) || configPath != "" {
			return nil, fmt.Errorf("error reading config: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("error unmarshaling config: %w", err)
	}

	// Validate configuration
	if err := validate(&cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &cfg, nil
}

// setDefaults sets default configuration values
func setDefaults(v *viper.Viper) {
	// e621 defaults
	v.SetDefault("e621.url", "https://e621.net")
	v.SetDefault("e621.timeout", "30s")

	v.SetDefault("batch.concurrency", 4)
	v.SetDefault("metrics.summary", false)

	// Logging defaults
	v.SetDefault("logging.level", "info")
	v.SetDefault("logging.format", "console")
	v.SetDefault("logging.color", true)
}

// validate checks if the configuration is valid
func validate(cfg *Config) error {
	if strings.TrimSpace(cfg.E621.Project) == "" {
		return fmt.Errorf("e621.project is required to identify your project (or set E621_PROJECT)")
	}

	u, err := url.Parse(cfg.E621.URL)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return fmt.Errorf("invalid e621.url: %q", cfg.E621.URL)
	}

	if (cfg.E621.Username == "") != (cfg.E621.APIKey == "") {
		return fmt.Errorf("e621.username and e621.api_key must be set together")
	}

	if cfg.E621.Timeout < 0 {
		return fmt.Errorf("e621.timeout must not be negative")
	}

	if cfg.Batch.Concurrency < 1 {
		return fmt.Errorf("invalid batch.concurrency: %d (must be at least 1)", cfg.Batch.Concurrency)
	}

	// Validate logging level
	validLevels := map[string]bool{
		"debug": true,
		"info":  true,
		"warn":  true,
		"error": true,
	}
	if !validLevels[cfg.Logging.Level] {
		return fmt.Errorf("invalid logging level: %s", cfg.Logging.Level)
	}

	// Validate logging format
	validFormats := map[string]bool{
		"console": true,
		"json":    true,
	}
	if !validFormats[cfg.Logging.Format] {
		return fmt.Errorf("invalid logging format: %s", cfg.Logging.Format)
	}

	return nil
}
