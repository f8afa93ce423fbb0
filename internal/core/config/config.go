// Package config handles configuration loading and validation for devboard.
package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/hay-kot/devboard/internal/core/alert"
	"github.com/hay-kot/devboard/internal/core/styles"
)

// Config holds the application configuration.
type Config struct {
	Theme  string                 `yaml:"theme"`
	Alerts AlertsConfig           `yaml:"alerts"`
	Server ServerConfig           `yaml:"server"`
	Posts  PostsConfig            `yaml:"posts"`
	Styles map[string]StyleConfig `yaml:"styles"`
}

// AlertsConfig controls the alert store.
type AlertsConfig struct {
	// DefaultTimeout is how long an alert stays visible when the caller does
	// not give a timeout. Zero removes alerts right after they are raised.
	DefaultTimeout *time.Duration `yaml:"default_timeout"`
}

// ServerConfig controls the HTTP server.
type ServerConfig struct {
	Addr            string        `yaml:"addr"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout"`
}

// PostsConfig controls post submission.
type PostsConfig struct {
	MaxLength int `yaml:"max_length"`
}

// StyleConfig overrides the colors used to render a severity. Colors are hex
// strings ("#DC3545") or ANSI color numbers ("9").
type StyleConfig struct {
	Foreground string `yaml:"foreground"`
	Background string `yaml:"background"`
}

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() Config {
	timeout := alert.DefaultTimeout
	return Config{
		Theme: styles.DefaultTheme,
		Alerts: AlertsConfig{
			DefaultTimeout: &timeout,
		},
		Server: ServerConfig{
			Addr:            ":5000",
			ShutdownTimeout: 5 * time.Second,
		},
		Posts: PostsConfig{
			MaxLength: 1000,
		},
		Styles: map[string]StyleConfig{},
	}
}

// Load reads configuration from the given path. If configPath is empty or
// doesn't exist, returns defaults.
func Load(configPath string) (*Config, error) {
	cfg := DefaultConfig()

	if configPath != "" {
		if _, err := os.Stat(configPath); err == nil {
			data, err := os.ReadFile(configPath)
			if err != nil {
				return nil, fmt.Errorf("read config file: %w", err)
			}

			if err := yaml.Unmarshal(data, &cfg); err != nil {
				return nil, fmt.Errorf("parse config file: %w", err)
			}
		}
	}

	cfg.applyDefaults()

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return &cfg, nil
}

// applyDefaults sets default values for any unset configuration options.
func (c *Config) applyDefaults() {
	defaults := DefaultConfig()
	if c.Theme == "" {
		c.Theme = defaults.Theme
	}
	if c.Alerts.DefaultTimeout == nil {
		c.Alerts.DefaultTimeout = defaults.Alerts.DefaultTimeout
	}
	if c.Server.Addr == "" {
		c.Server.Addr = defaults.Server.Addr
	}
	if c.Server.ShutdownTimeout == 0 {
		c.Server.ShutdownTimeout = defaults.Server.ShutdownTimeout
	}
	if c.Posts.MaxLength == 0 {
		c.Posts.MaxLength = defaults.Posts.MaxLength
	}
	if c.Styles == nil {
		c.Styles = defaults.Styles
	}
}

// AlertTimeout returns the configured default alert timeout.
func (c *Config) AlertTimeout() time.Duration {
	if c.Alerts.DefaultTimeout == nil {
		return alert.DefaultTimeout
	}
	return *c.Alerts.DefaultTimeout
}
