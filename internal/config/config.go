// Package config loads catalogd settings from the environment.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Store backends.
const (
	StorePostgres = "postgres"
	StoreREST     = "rest"
	StoreMemory   = "memory"
)

// Config is the process configuration.
type Config struct {
	Store        string        // CATALOG_STORE
	DatabaseURL  string        // DATABASE_URL
	RESTURL      string        // CATALOG_REST_URL
	RESTKey      string        // CATALOG_REST_KEY
	ProductsFile string        // CATALOG_PRODUCTS_FILE (memory store)
	TTL          time.Duration // CATALOG_TTL
	HTTPAddr     string        // HTTP_ADDR
	FetchTimeout time.Duration // CATALOG_FETCH_TIMEOUT

	Logger  Logger
	Metrics Metrics
}

// Logger configures internal/logging.
type Logger struct {
	Mode     string // LOG_MODE: development | production
	Filename string // LOG_FILE; empty disables file output
}

// Metrics configures the Prometheus adapter.
type Metrics struct {
	Namespace string // METRICS_NAMESPACE
	Subsystem string // METRICS_SUBSYSTEM
}

// Load reads an optional .env file from the working directory and then
// the environment. A missing .env is not an error.
func Load() (Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return Config{}, fmt.Errorf("load .env: %w", err)
	}
	return FromEnv()
}

// FromEnv builds a Config from the environment only.
func FromEnv() (Config, error) {
	cfg := Config{
		Store:        getEnv("CATALOG_STORE", StorePostgres),
		DatabaseURL:  os.Getenv("DATABASE_URL"),
		RESTURL:      os.Getenv("CATALOG_REST_URL"),
		RESTKey:      os.Getenv("CATALOG_REST_KEY"),
		ProductsFile: os.Getenv("CATALOG_PRODUCTS_FILE"),
		TTL:          getEnvDuration("CATALOG_TTL", 10*time.Minute),
		HTTPAddr:     getEnv("HTTP_ADDR", ":"+strconv.Itoa(getEnvInt("APP_PORT", 8080))),
		FetchTimeout: getEnvDuration("CATALOG_FETCH_TIMEOUT", 15*time.Second),
		Logger: Logger{
			Mode:     getEnv("LOG_MODE", "development"),
			Filename: os.Getenv("LOG_FILE"),
		},
		Metrics: Metrics{
			Namespace: getEnv("METRICS_NAMESPACE", "storefront"),
			Subsystem: getEnv("METRICS_SUBSYSTEM", "catalog"),
		},
	}
	return cfg, cfg.Validate()
}

// Validate checks that the selected store has what it needs.
func (c Config) Validate() error {
	switch c.Store {
	case StorePostgres:
		if c.DatabaseURL == "" {
			return errors.New("config: DATABASE_URL is required for the postgres store")
		}
	case StoreREST:
		if c.RESTURL == "" {
			return errors.New("config: CATALOG_REST_URL is required for the rest store")
		}
	case StoreMemory:
	default:
		return fmt.Errorf("config: unknown CATALOG_STORE %q (use postgres, rest or memory)", c.Store)
	}
	if c.TTL <= 0 {
		return fmt.Errorf("config: CATALOG_TTL must be positive, got %s", c.TTL)
	}
	return nil
}

// getEnv returns environment variable value or default.
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// getEnvInt returns environment variable as int or default.
func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return defaultValue
}

// getEnvDuration returns environment variable as duration or default.
func getEnvDuration(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if d, err := time.ParseDuration(value); err == nil {
			return d
		}
	}
	return defaultValue
}
