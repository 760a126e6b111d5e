// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package config handles application configuration loading from environment
// variables. A .env file in the working directory, if present, is read first;
// variables already set in the process environment take precedence.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// DefaultScrollPadding is the extra gap, in CSS pixels, kept between the
// fixed header and a section heading after a navigation scroll.
const DefaultScrollPadding = 20

// Config holds all application configuration values loaded from the environment.
type Config struct {
	// Server settings
	Host string
	Port string
	Env  string // "development", "production", "testing"

	// Logging
	LogLevel  string // debug, info, warn, error
	LogFormat string // text, json

	// Site presentation
	BaseURL       string // public absolute URL, used for canonical links and the QR code
	ScrollPadding int    // px added below the header when scrolling to an anchor
	ParticleSeed  uint64 // seed for the hero particle layout
	ContentFile   string // optional YAML file overriding the embedded copy

	// Rate limiting
	RateLimit  int
	RateWindow time.Duration
	TrustProxy bool // key the limiter on X-Forwarded-For

	// Automatic HTTPS via ACME; disabled when TLSDomain is empty.
	TLSDomain   string
	TLSCacheDir string

	// Page cache entry lifetime.
	PageCacheTTL time.Duration

	// Valkey page cache; disabled when ValkeyHost is empty.
	ValkeyHost     string
	ValkeyPort     string
	ValkeyPassword string

	// PostgreSQL content revisions; disabled when DBHost is empty.
	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string

	// S3-compatible bucket for `publish`.
	S3Endpoint  string
	S3Region    string
	S3AccessKey string
	S3SecretKey string
	S3Bucket    string
	S3PublicURL string
}

// Load reads configuration from environment variables, applying defaults
// for development where appropriate. Returns an error if a value cannot be
// parsed or if production is missing required settings.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("load .env: %w", err)
	}

	cfg := &Config{
		Host: envOrDefault("APP_HOST", "0.0.0.0"),
		Port: envOrDefault("APP_PORT", "8080"),
		Env:  envOrDefault("APP_ENV", "development"),

		LogLevel:  envOrDefault("LOG_LEVEL", "info"),
		LogFormat: envOrDefault("LOG_FORMAT", "text"),

		BaseURL:     strings.TrimRight(envOrDefault("SITE_BASE_URL", "http://localhost:8080"), "/"),
		ContentFile: os.Getenv("CONTENT_FILE"),

		TLSDomain:   os.Getenv("TLS_DOMAIN"),
		TLSCacheDir: envOrDefault("TLS_CACHE_DIR", ".autocert"),

		ValkeyHost:     os.Getenv("VALKEY_HOST"),
		ValkeyPort:     envOrDefault("VALKEY_PORT", "6379"),
		ValkeyPassword: os.Getenv("VALKEY_PASSWORD"),

		DBHost:     os.Getenv("POSTGRES_HOST"),
		DBPort:     envOrDefault("POSTGRES_PORT", "5432"),
		DBUser:     envOrDefault("POSTGRES_USER", "kosenfes"),
		DBPassword: envOrDefault("POSTGRES_PASSWORD", "changeme"),
		DBName:     envOrDefault("POSTGRES_DB", "kosenfes"),

		S3Endpoint:  os.Getenv("S3_ENDPOINT"),
		S3Region:    envOrDefault("S3_REGION", "ap-northeast-1"),
		S3AccessKey: os.Getenv("S3_ACCESS_KEY"),
		S3SecretKey: os.Getenv("S3_SECRET_KEY"),
		S3Bucket:    envOrDefault("S3_BUCKET", "kosenfes-site"),
		S3PublicURL: os.Getenv("S3_PUBLIC_URL"),
	}

	var err error
	if cfg.ScrollPadding, err = envInt("SCROLL_PADDING_PX", DefaultScrollPadding); err != nil {
		return nil, err
	}
	if cfg.ScrollPadding < 0 {
		return nil, fmt.Errorf("SCROLL_PADDING_PX must not be negative, got %d", cfg.ScrollPadding)
	}
	if cfg.RateLimit, err = envInt("RATE_LIMIT", 120); err != nil {
		return nil, err
	}
	if cfg.RateLimit < 1 {
		return nil, fmt.Errorf("RATE_LIMIT must be at least 1, got %d", cfg.RateLimit)
	}
	window := envOrDefault("RATE_WINDOW", "1m")
	if cfg.RateWindow, err = time.ParseDuration(window); err != nil {
		return nil, fmt.Errorf("RATE_WINDOW: %w", err)
	}
	if cfg.TrustProxy, err = strconv.ParseBool(envOrDefault("TRUST_PROXY", "false")); err != nil {
		return nil, fmt.Errorf("TRUST_PROXY: %w", err)
	}
	if cfg.PageCacheTTL, err = time.ParseDuration(envOrDefault("PAGE_CACHE_TTL", "5m")); err != nil {
		return nil, fmt.Errorf("PAGE_CACHE_TTL: %w", err)
	}
	seed := envOrDefault("PARTICLE_SEED", "2025")
	if cfg.ParticleSeed, err = strconv.ParseUint(seed, 10, 64); err != nil {
		return nil, fmt.Errorf("PARTICLE_SEED: %w", err)
	}

	if cfg.Env == "production" {
		if cfg.DBHost != "" && cfg.DBPassword == "changeme" {
			return nil, fmt.Errorf("POSTGRES_PASSWORD must be set in production")
		}
		if strings.HasPrefix(cfg.BaseURL, "http://localhost") {
			return nil, fmt.Errorf("SITE_BASE_URL must be set in production")
		}
	}

	return cfg, nil
}

// DSN returns the PostgreSQL connection string.
func (c *Config) DSN() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%s/%s?sslmode=disable",
		c.DBUser, c.DBPassword, c.DBHost, c.DBPort, c.DBName,
	)
}

// Addr returns the server listen address (host:port).
func (c *Config) Addr() string {
	return fmt.Sprintf("%s:%s", c.Host, c.Port)
}

// TLSEnabled reports whether the server obtains certificates itself.
func (c *Config) TLSEnabled() bool {
	return c.TLSDomain != ""
}

// CacheEnabled reports whether a Valkey page cache is configured.
func (c *Config) CacheEnabled() bool {
	return c.ValkeyHost != ""
}

// DatabaseEnabled reports whether content revisions live in PostgreSQL.
func (c *Config) DatabaseEnabled() bool {
	return c.DBHost != ""
}

// StorageEnabled reports whether the S3 publish target is configured.
func (c *Config) StorageEnabled() bool {
	return c.S3Endpoint != "" && c.S3AccessKey != "" && c.S3SecretKey != ""
}

// envOrDefault reads an environment variable, returning a fallback if unset or empty.
func envOrDefault(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

// envInt reads an integer environment variable with a fallback.
func envInt(key string, fallback int) (int, error) {
	v := os.Getenv(key)
	if v == "" {
		return fallback, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", key, err)
	}
	return n, nil
}
