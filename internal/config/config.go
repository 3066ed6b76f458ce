// Package config provides configuration for the accounting server.
// Values come from an optional YAML file, overridden by environment
// variables; a .env file in the working directory is loaded first.
package config

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Defaults.
const (
	DefaultPort   = "3001"
	DefaultDBPath = "./data/tallybook.db"
)

// Config represents the application configuration.
type Config struct {
	Port     string `yaml:"port"`
	DBPath   string `yaml:"db_path"`
	LogLevel string `yaml:"log_level"`
}

// Load builds the configuration. A .env file is loaded if present
// (ignored otherwise), then the YAML file named by CONFIG_FILE (or the
// optional explicit path), then PORT, DB_PATH and LOG_LEVEL from the
// environment.
func Load(configPath ...string) (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{
		Port:     DefaultPort,
		DBPath:   DefaultDBPath,
		LogLevel: "info",
	}

	path := os.Getenv("CONFIG_FILE")
	if len(configPath) > 0 && configPath[0] != "" {
		path = configPath[0]
	}
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config file: %w", err)
		}
	}

	if v := os.Getenv("PORT"); v != "" {
		cfg.Port = v
	}
	if v := os.Getenv("DB_PATH"); v != "" {
		cfg.DBPath = v
	}
	if v := os.Getenv("LOG_LEVEL"); v != "" {
		cfg.LogLevel = v
	}

	return cfg, nil
}

// SlogLevel translates the configured level name, defaulting to Info
// on anything unrecognized.
func (c *Config) SlogLevel() slog.Level {
	switch c.LogLevel {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
