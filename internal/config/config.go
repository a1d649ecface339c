package config

import (
	"errors"
	"fmt"
	"io/fs"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

type Backend string

const (
	BackendRelational Backend = "relational"
	BackendDocument   Backend = "document"
)

// DefaultPort keeps the two services on distinct ports when run side by side.
func (b Backend) DefaultPort() string {
	if b == BackendDocument {
		return "5000"
	}
	return "4000"
}

type Config struct {
	// Server
	Backend         Backend       `env:"BACKEND" envDefault:"relational"`
	Port            string        `env:"PORT"`
	Environment     string        `env:"ENVIRONMENT" envDefault:"development"`
	ShutdownTimeout time.Duration `env:"SHUTDOWN_TIMEOUT" envDefault:"30s"`

	// Relational store
	DatabaseURL string `env:"DATABASE_URL"`

	// Document store
	MongoURI        string        `env:"MONGODB_URI"`
	MongoDatabase   string        `env:"MONGODB_DATABASE" envDefault:"hxh_db"`
	MongoCollection string        `env:"MONGODB_COLLECTION" envDefault:"characters"`
	ConnectTimeout  time.Duration `env:"CONNECT_TIMEOUT" envDefault:"10s"`

	// Logging
	LogLevel  string `env:"LOG_LEVEL" envDefault:"info"`
	LogFormat string `env:"LOG_FORMAT" envDefault:"text"`
}

// Load reads .env (if present) and then the process environment.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("load .env: %w", err)
	}
	return Parse()
}

// Parse builds a Config from the process environment only.
func Parse() (*Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}

	if cfg.Port == "" {
		cfg.Port = cfg.Backend.DefaultPort()
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) Validate() error {
	switch c.Backend {
	case BackendRelational:
		if c.DatabaseURL == "" {
			return fmt.Errorf("DATABASE_URL environment variable is required for the %s backend", c.Backend)
		}
	case BackendDocument:
		if c.MongoURI == "" {
			return fmt.Errorf("MONGODB_URI environment variable is required for the %s backend", c.Backend)
		}
	default:
		return fmt.Errorf("unknown BACKEND %q (want %q or %q)", c.Backend, BackendRelational, BackendDocument)
	}
	return nil
}

func (c *Config) IsDevelopment() bool {
	return c.Environment == "development"
}
