// Package config loads runtime settings: built-in defaults, then an optional
// YAML file, then OURVOICE_* environment variables.
package config

import (
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/zalepa/ourvoice/i18n"
)

// Config holds all configuration for ourvoice.
type Config struct {
	Server    ServerConfig    `yaml:"server"`
	Dashboard DashboardConfig `yaml:"dashboard"`
	Log       LogConfig       `yaml:"log"`
}

// ServerConfig holds HTTP server configuration.
type ServerConfig struct {
	Host        string   `yaml:"host"`
	Port        int      `yaml:"port"`
	CORSOrigins []string `yaml:"cors_origins"`
}

// DashboardConfig holds dashboard behaviour.
type DashboardConfig struct {
	Language    string        `yaml:"language"`
	Catalog     string        `yaml:"catalog"`
	SnapshotTTL time.Duration `yaml:"snapshot_ttl"`
	LocateDelay time.Duration `yaml:"locate_delay"`
}

// LogConfig holds logging configuration.
type LogConfig struct {
	Level string `yaml:"level"`
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		Server: ServerConfig{
			Host:        "0.0.0.0",
			Port:        8080,
			CORSOrigins: []string{"*"},
		},
		Dashboard: DashboardConfig{
			Language:    string(i18n.English),
			SnapshotTTL: 10 * time.Minute,
			LocateDelay: 1500 * time.Millisecond,
		},
		Log: LogConfig{
			Level: "info",
		},
	}
}

// Load builds the configuration. path may be empty, in which case only
// defaults and the environment apply.
func Load(path string) (*Config, error) {
	cfg := Default()

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("reading config file: %w", err)
		}
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parsing config YAML: %w", err)
		}
	}

	cfg.applyEnv()

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}
	return cfg, nil
}

func (c *Config) applyEnv() {
	c.Server.Host = getEnv("OURVOICE_HOST", c.Server.Host)
	c.Server.Port = getEnvAsInt("OURVOICE_PORT", c.Server.Port)
	c.Server.CORSOrigins = getEnvAsList("OURVOICE_CORS_ORIGINS", c.Server.CORSOrigins)
	c.Dashboard.Language = getEnv("OURVOICE_LANG", c.Dashboard.Language)
	c.Dashboard.Catalog = getEnv("OURVOICE_CATALOG", c.Dashboard.Catalog)
	c.Dashboard.SnapshotTTL = getEnvAsDuration("OURVOICE_SNAPSHOT_TTL", c.Dashboard.SnapshotTTL)
	c.Dashboard.LocateDelay = getEnvAsDuration("OURVOICE_LOCATE_DELAY", c.Dashboard.LocateDelay)
	c.Log.Level = getEnv("OURVOICE_LOG_LEVEL", c.Log.Level)
}

// Validate validates the configuration.
func (c *Config) Validate() error {
	if c.Server.Port < 1 || c.Server.Port > 65535 {
		return fmt.Errorf("invalid server port: %d", c.Server.Port)
	}
	if _, err := i18n.Parse(c.Dashboard.Language); err != nil {
		return err
	}
	if c.Dashboard.SnapshotTTL <= 0 {
		return fmt.Errorf("snapshot_ttl must be positive, got %s", c.Dashboard.SnapshotTTL)
	}
	if c.Dashboard.LocateDelay < 0 {
		return fmt.Errorf("locate_delay must not be negative, got %s", c.Dashboard.LocateDelay)
	}
	if _, err := parseLevel(c.Log.Level); err != nil {
		return err
	}
	return nil
}

// Language returns the default display language.
func (c *Config) Language() i18n.Language {
	l, err := i18n.Parse(c.Dashboard.Language)
	if err != nil {
		return i18n.English
	}
	return l
}

// Addr is the listen address for the HTTP server.
func (c *Config) Addr() string {
	return fmt.Sprintf("%s:%d", c.Server.Host, c.Server.Port)
}

// SlogLevel returns the configured log level.
func (c *Config) SlogLevel() slog.Level {
	l, err := parseLevel(c.Log.Level)
	if err != nil {
		return slog.LevelInfo
	}
	return l
}

func parseLevel(s string) (slog.Level, error) {
	var l slog.Level
	if err := l.UnmarshalText([]byte(s)); err != nil {
		return slog.LevelInfo, fmt.Errorf("invalid log level %q", s)
	}
	return l, nil
}

// Helper functions

func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	if value, exists := os.LookupEnv(key); exists {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	if value, exists := os.LookupEnv(key); exists {
		if duration, err := time.ParseDuration(value); err == nil {
			return duration
		}
	}
	return defaultValue
}

func getEnvAsList(key string, defaultValue []string) []string {
	value, exists := os.LookupEnv(key)
	if !exists {
		return defaultValue
	}
	var out []string
	for _, part := range strings.Split(value, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}
