// Package config contains everything related to configuration
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// ErrMissingAPIKey indicates that no provider API key was configured.
var ErrMissingAPIKey = errors.New("ELEVEN_API_STATS environment variable not set")

// Config holds the application configuration.
type Config struct {
	APIKey              string
	BaseURL             string
	OutputDir           string
	ArchivePath         string
	HTTPTimeout         time.Duration
	QuotaAlertThreshold float64
}

// Default values
const (
	defaultBaseURL             = "https://api.elevenlabs.io"
	defaultHTTPTimeout         = 30 * time.Second
	defaultQuotaAlertThreshold = 10.0
)

// Load reads configuration from .env files and environment variables.
// A missing API key is not an error here: subcommands that only read the
// local archive work without one. Fetching commands call RequireAPIKey.
func Load() (*Config, error) {
	// Try loading .env from multiple locations
	for _, path := range getEnvPaths() {
		if _, err := os.Stat(path); err == nil {
			_ = godotenv.Load(path)
			break
		}
	}

	cfg := &Config{
		APIKey:              os.Getenv("ELEVEN_API_STATS"),
		BaseURL:             getEnvString("ELEVEN_BASE_URL", defaultBaseURL),
		OutputDir:           getEnvString("OUTPUT_DIR", "."),
		ArchivePath:         getEnvString("ARCHIVE_DB_PATH", getDefaultArchivePath()),
		HTTPTimeout:         getEnvDuration("HTTP_TIMEOUT", defaultHTTPTimeout),
		QuotaAlertThreshold: getEnvFloat("QUOTA_ALERT_THRESHOLD", defaultQuotaAlertThreshold),
	}

	// Ensure archive directory exists
	if err := ensureDir(filepath.Dir(cfg.ArchivePath)); err != nil {
		return nil, err
	}

	return cfg, nil
}

// RequireAPIKey fails fast when no credential is available.
func (c *Config) RequireAPIKey() error {
	if c.APIKey == "" {
		return fmt.Errorf("%w: export ELEVEN_API_STATS='your-api-key-here'", ErrMissingAPIKey)
	}
	return nil
}

// getEnvPaths returns a list of paths to check for .env files.
func getEnvPaths() []string {
	var paths []string

	// Current directory
	if cwd, err := os.Getwd(); err == nil {
		paths = append(paths, filepath.Join(cwd, ".env"))
	}

	// Home directory locations
	if home, err := os.UserHomeDir(); err == nil {
		paths = append(paths,
			filepath.Join(home, ".config", "eleven-usage", ".env"),
			filepath.Join(home, ".eleven-usage", ".env"),
		)
	}

	return paths
}

// getDefaultArchivePath returns the default path for the SQLite archive.
func getDefaultArchivePath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "usage.db"
	}
	return filepath.Join(home, ".config", "eleven-usage", "usage.db")
}

// getEnvString retrieves a string environment variable or returns the default.
func getEnvString(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// getEnvDuration retrieves a duration environment variable or returns the default.
// Accepts values like "30s", "1m", "500ms".
func getEnvDuration(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if duration, err := time.ParseDuration(value); err == nil {
			return duration
		}
		// Try parsing as seconds if no unit specified
		if secs, err := strconv.Atoi(value); err == nil {
			return time.Duration(secs) * time.Second
		}
	}
	return defaultValue
}

// getEnvFloat retrieves a float environment variable or returns the default.
func getEnvFloat(key string, defaultValue float64) float64 {
	if value := os.Getenv(key); value != "" {
		if f, err := strconv.ParseFloat(value, 64); err == nil {
			return f
		}
	}
	return defaultValue
}

// ensureDir creates a directory and all parent directories if they don't exist.
func ensureDir(path string) error {
	if path == "" || path == "." {
		return nil
	}
	return os.MkdirAll(path, 0o750)
}
