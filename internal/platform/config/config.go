// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package config handles application-wide settings and environment parsing.

It leverages 'caarlos0/env' to map OS environment variables into a strongly-typed
Go struct, providing early validation and default values. A local '.env' file is
loaded first when present.

Usage:

	cfg, err := config.Load()
	if err != nil {
	    log.Fatal(err)
	}

Architecture:

  - Immutability: Once loaded, configuration is read-only.
  - DI-Friendly: Passed to core components (DB, Redis, LLM) via constructors.
*/
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// # Configuration Schema

// Config holds all runtime configuration for the Kiosk API server.
type Config struct {

	// Server settings
	ServerPort  string `env:"SERVER_PORT"  envDefault:"8080"`
	Environment string `env:"ENVIRONMENT"  envDefault:"development"`
	Debug       bool   `env:"DEBUG"        envDefault:"false"`

	// Relational Database (PostgreSQL)
	DatabaseURL      string `env:"DATABASE_URL,required,notEmpty"`
	DatabaseMaxConns int32  `env:"DATABASE_MAX_CONNS" envDefault:"10"`

	// MigrationPath overrides the embedded migrations with a directory on disk.
	MigrationPath string `env:"MIGRATION_PATH"`

	// Key-Value Cache (Redis)
	RedisURL string        `env:"REDIS_URL,required,notEmpty"`
	CacheTTL time.Duration `env:"CACHE_TTL" envDefault:"10m"`

	// Bearer token verification; issuance lives in the identity service
	JWTPubKeyPath string `env:"JWT_PUBLIC_KEY_PATH,required,notEmpty"`

	// Language model
	LLM LLMConfig `envPrefix:"LLM_"`

	// Placeholder imagery and re-hosting
	ImageBaseURL      string `env:"IMAGE_BASE_URL"     envDefault:"https://picsum.photos/seed"`
	MediaPublicURL    string `env:"MEDIA_PUBLIC_URL"   envDefault:"http://localhost:8080"`
	RehostImages      bool   `env:"REHOST_IMAGES"      envDefault:"false"`
	RehostConcurrency int    `env:"REHOST_CONCURRENCY" envDefault:"4"`

	// Cross-Origin Resource Sharing
	ExtraOrigins []string `env:"EXTRA_ORIGINS" envSeparator:","`
}

// LLMConfig selects and configures the text generator.
type LLMConfig struct {
	Provider string        `env:"PROVIDER" envDefault:"openai"`
	APIKey   string        `env:"API_KEY"`
	Model    string        `env:"MODEL"    envDefault:"gpt-4o-mini"`
	BaseURL  string        `env:"BASE_URL"`
	Timeout  time.Duration `env:"TIMEOUT"  envDefault:"120s"`
}

// # Configuration Loading

// Load reads an optional .env file and parses environment variables into a [Config] struct.
func Load() (*Config, error) {

	// Variables already set in the environment win over the .env file
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("config: failed to read .env file: %w", err)
	}

	return Parse()
}

// Parse maps the current environment into a [Config] and validates it.
func Parse() (*Config, error) {

	// Initialize an empty config struct
	cfg := &Config{}

	// This will fail if any field marked with 'required' is missing.
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("config: failed to parse environment variables: %w", err)
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

/*
LoadLLM reads only the LLM_* keys.

Description: Offline tools generate magazines without a database or cache,
so they must not require the server's mandatory settings.
*/
func LoadLLM() (LLMConfig, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return LLMConfig{}, fmt.Errorf("config: failed to read .env file: %w", err)
	}

	var cfg LLMConfig
	if err := env.ParseWithOptions(&cfg, env.Options{Prefix: "LLM_"}); err != nil {
		return LLMConfig{}, fmt.Errorf("config: failed to parse LLM variables: %w", err)
	}
	if err := cfg.validate(); err != nil {
		return LLMConfig{}, err
	}

	return cfg, nil
}

// validate checks cross-field rules that struct tags cannot express.
func (c *Config) validate() error {
	if err := c.LLM.validate(); err != nil {
		return err
	}

	if c.RehostConcurrency < 1 {
		return fmt.Errorf("config: REHOST_CONCURRENCY must be at least 1")
	}

	return nil
}

func (c LLMConfig) validate() error {
	switch c.Provider {
	case "openai":
		if strings.TrimSpace(c.APIKey) == "" {
			return fmt.Errorf("config: LLM_API_KEY is required when LLM_PROVIDER=openai")
		}
	case "mock":
	default:
		return fmt.Errorf("config: unknown LLM_PROVIDER %q (expected openai or mock)", c.Provider)
	}
	return nil
}

// IsDevelopment reports whether the server is running in development mode.
func (c *Config) IsDevelopment() bool {
	return c.Environment == "development"
}

// IsProduction reports whether the server is running in production mode.
func (c *Config) IsProduction() bool {
	return c.Environment == "production"
}

// AllowedOrigins returns the additional production CORS origins.
func (c *Config) AllowedOrigins() []string {
	return c.ExtraOrigins
}
