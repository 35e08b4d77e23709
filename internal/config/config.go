// Package config handles application configuration from environment variables
package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
)

// Config holds all application configuration
type Config struct {
	Port            string        `env:"PORT" envDefault:"8080"`
	BaseURL         string        `env:"BASE_URL" envDefault:"http://localhost:8080"`
	DatabaseURL     string        `env:"DATABASE_URL"`
	PlansDir        string        `env:"PLANS_DIR"`
	RedisAddr       string        `env:"REDIS_ADDR"`
	SessionLifetime time.Duration `env:"SESSION_LIFETIME" envDefault:"12h"`
	LogLevel        string        `env:"LOG_LEVEL" envDefault:"info"`
}

// Load reads configuration from environment variables
func Load() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse environment: %w", err)
	}
	if cfg.SessionLifetime <= 0 {
		return nil, fmt.Errorf("SESSION_LIFETIME must be positive, got %v", cfg.SessionLifetime)
	}
	return cfg, nil
}

// HasDatabase returns true if a Postgres connection string is configured.
// Without one the API falls back to the in-memory plan store.
func (c *Config) HasDatabase() bool {
	return c.DatabaseURL != ""
}

// HasRedis returns true if background job processing is configured.
func (c *Config) HasRedis() bool {
	return c.RedisAddr != ""
}
