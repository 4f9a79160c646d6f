// Package config loads storefront settings from the environment.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"time"

	"github.com/joeshaw/envdecode"
	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
)

// Storage backends for the durable token store.
const (
	BackendMemory   = "memory"
	BackendPostgres = "postgres"
	BackendRedis    = "redis"
)

// Config holds every setting of the storefront server.
type Config struct {
	Addr       string        `env:"ADDR,default=:8080"`
	APIBaseURL string        `env:"API_BASE_URL,default=http://localhost:8000"`
	APITimeout time.Duration `env:"API_TIMEOUT,default=10s"`

	StorageBackend   string        `env:"STORAGE_BACKEND,default=memory"`
	DatabaseURL      string        `env:"DATABASE_URL"`
	RedisURL         string        `env:"REDIS_URL"`
	TokenSealKey     string        `env:"TOKEN_SEAL_KEY"`
	StorageRetention time.Duration `env:"STORAGE_RETENTION,default=720h"`

	SessionTTL      time.Duration `env:"SESSION_TTL,default=24h"`
	SessionCapacity int           `env:"SESSION_CAPACITY,default=10000"`
	SecureCookies   bool          `env:"SECURE_COOKIES,default=false"`

	RateLimit float64 `env:"RATE_LIMIT,default=5"`
	RateBurst int     `env:"RATE_BURST,default=10"`

	LogLevel  string `env:"LOG_LEVEL,default=info"`
	LogFormat string `env:"LOG_FORMAT,default=text"`
}

// Load reads an optional .env file, then decodes the environment.
func Load() (Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return Config{}, fmt.Errorf("load .env: %w", err)
	}
	return FromEnv()
}

// FromEnv decodes the process environment and validates the result.
func FromEnv() (Config, error) {
	var cfg Config
	if err := envdecode.Decode(&cfg); err != nil && !errors.Is(err, envdecode.ErrNoTargetFieldsAreSet) {
		return Config{}, fmt.Errorf("decode env: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks that the settings needed by the chosen backend are present.
func (c Config) Validate() error {
	switch c.StorageBackend {
	case BackendMemory:
	case BackendPostgres:
		if c.DatabaseURL == "" {
			return errors.New("DATABASE_URL is required for the postgres backend")
		}
	case BackendRedis:
		if c.RedisURL == "" {
			return errors.New("REDIS_URL is required for the redis backend")
		}
	default:
		return fmt.Errorf("unknown STORAGE_BACKEND %q", c.StorageBackend)
	}
	if c.StorageBackend != BackendMemory && c.TokenSealKey == "" {
		return fmt.Errorf("TOKEN_SEAL_KEY is required for the %s backend", c.StorageBackend)
	}
	if c.SessionCapacity <= 0 {
		return errors.New("SESSION_CAPACITY must be positive")
	}
	if c.RateLimit <= 0 || c.RateBurst <= 0 {
		return errors.New("RATE_LIMIT and RATE_BURST must be positive")
	}
	if _, err := logrus.ParseLevel(c.LogLevel); err != nil {
		return fmt.Errorf("LOG_LEVEL: %w", err)
	}
	return nil
}

// Logger builds the process logger from the log settings.
func (c Config) Logger() *logrus.Logger {
	log := logrus.New()
	if lvl, err := logrus.ParseLevel(c.LogLevel); err == nil {
		log.SetLevel(lvl)
	}
	if c.LogFormat == "json" {
		log.SetFormatter(&logrus.JSONFormatter{})
	} else {
		log.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	}
	return log
}
