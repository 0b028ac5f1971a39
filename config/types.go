package config

import "time"

// Config represents the complete configuration structure
type Config struct {
	E621    E621Config    `mapstructure:"e621"`
	Filter  FilterConfig  `mapstructure:"filter"`
	Batch   BatchConfig   `mapstructure:"batch"`
	Metrics MetricsConfig `mapstructure:"metrics"`
	Logging LoggingConfig `mapstructure:"logging"`
}

// E621Config holds the API connection details
type E621Config struct {
	// Project names the calling application in the User-Agent header.
	Project  string        `mapstructure:"project"`
	URL      string        `mapstructure:"url"`
	Username string        `mapstructure:"username"`
	APIKey   string        `mapstructure:"api_key"`
	Timeout  time.Duration `mapstructure:"timeout"`
}

// FilterConfig contains named filter expressions, usable as --where @name
type FilterConfig map[string]string

// BatchConfig bounds commands that act on many IDs at once
type BatchConfig struct {
	Concurrency int `mapstructure:"concurrency"`
}

// MetricsConfig controls the request summary printed after each command
type MetricsConfig struct {
	Summary bool `mapstructure:"summary"`
}

// LoggingConfig contains logging configuration
type LoggingConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
	Color  bool   `mapstructure:"color"`
}
