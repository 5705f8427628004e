// Package config loads process configuration from the environment.
package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	_ "github.com/joho/godotenv/autoload"
)

const (
	DefaultPort         = 8000
	DefaultMaxOpenConns = 5
	DefaultDBLogLevel   = "warn"
)

var ErrMissingDatabaseURL = errors.New("DATABASE_URL is not set")

// Config holds everything the api binary needs at startup.
type Config struct {
	DatabaseURL  string
	Port         int
	MaxOpenConns int
	DBLogLevel   string
	AutoMigrate  bool
}

// Load reads the environment, applying defaults for optional values.
func Load() (*Config, error) {
	cfg := &Config{
		DatabaseURL:  strings.TrimSpace(os.Getenv("DATABASE_URL")),
		Port:         DefaultPort,
		MaxOpenConns: DefaultMaxOpenConns,
		DBLogLevel:   DefaultDBLogLevel,
	}
	if cfg.DatabaseURL == "" {
		return nil, ErrMissingDatabaseURL
	}

	if v := os.Getenv("PORT"); v != "" {
		port, err := strconv.Atoi(v)
		if err != nil || port <= 0 || port > 65535 {
			return nil, fmt.Errorf("invalid PORT %q", v)
		}
		cfg.Port = port
	}

	if v := os.Getenv("DB_MAX_OPEN_CONNS"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n <= 0 {
			return nil, fmt.Errorf("invalid DB_MAX_OPEN_CONNS %q", v)
		}
		cfg.MaxOpenConns = n
	}

	if v := os.Getenv("DB_LOG_LEVEL"); v != "" {
		level := strings.ToLower(v)
		switch level {
		case "silent", "error", "warn", "info":
			cfg.DBLogLevel = level
		default:
			return nil, fmt.Errorf("invalid DB_LOG_LEVEL %q", v)
		}
	}

	if v := os.Getenv("DB_AUTO_MIGRATE"); v != "" {
		enabled, err := strconv.ParseBool(v)
		if err != nil {
			return nil, fmt.Errorf("invalid DB_AUTO_MIGRATE %q: %w", v, err)
		}
		cfg.AutoMigrate = enabled
	}

	return cfg, nil
}

// Addr is the listen address, all interfaces.
func (c *Config) Addr() string {
	return fmt.Sprintf(":%d", c.Port)
}
