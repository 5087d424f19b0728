// Package config contains everything related to configuration
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config holds the application configuration.
type Config struct {
	APIBaseURL       string
	APIKey           string
	DatabasePath     string
	CatalogPath      string
	LogFile          string
	ExportDir        string
	PollInterval     time.Duration
	SuccessRateAlert float64
}

// Default values
const (
	defaultPollInterval     = 4 * time.Second
	defaultSuccessRateAlert = 90.0
)

// Load reads configuration from .env files and environment variables.
func Load() (*Config, error) {
	// Try loading .env from multiple locations
	envPaths := getEnvPaths()
	for _, path := range envPaths {
		if _, err := os.Stat(path); err == nil {
			_ = godotenv.Load(path)
			break
		}
	}

	cfg := &Config{
		APIBaseURL:       getEnvString("USSD_API_URL", ""),
		APIKey:           getEnvString("USSD_API_KEY", ""),
		DatabasePath:     getEnvString("DATABASE_PATH", getDefaultDatabasePath()),
		CatalogPath:      getEnvString("CATALOG_PATH", getDefaultCatalogPath()),
		LogFile:          getEnvString("LOG_FILE", ""),
		ExportDir:        getEnvString("EXPORT_DIR", "."),
		PollInterval:     getEnvDuration("POLL_INTERVAL", defaultPollInterval),
		SuccessRateAlert: getEnvFloat("SUCCESS_RATE_ALERT", defaultSuccessRateAlert),
	}

	if cfg.APIBaseURL == "" {
		return nil, fmt.Errorf("USSD_API_URL is required (set via env or .env file)")
	}

	// Ensure database directory exists
	if err := ensureDir(filepath.Dir(cfg.DatabasePath)); err != nil {
		return nil, err
	}

	// Ensure catalog directory exists
	if err := ensureDir(filepath.Dir(cfg.CatalogPath)); err != nil {
		return nil, err
	}

	return cfg, nil
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
			filepath.Join(home, ".config", "ussd-dash", ".env"),
			filepath.Join(home, ".ussd-dash", ".env"),
		)
	}

	// Parent directories (useful for development)
	if cwd, err := os.Getwd(); err == nil {
		parent := filepath.Dir(cwd)
		paths = append(paths, filepath.Join(parent, ".env"))
		grandparent := filepath.Dir(parent)
		paths = append(paths, filepath.Join(grandparent, ".env"))
	}

	return paths
}

// getDefaultDatabasePath returns the default path for the SQLite database.
func getDefaultDatabasePath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "metrics.db"
	}
	return filepath.Join(home, ".config", "ussd-dash", "metrics.db")
}

// getDefaultCatalogPath returns the default path for the service catalog JSON file.
func getDefaultCatalogPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "services.json"
	}
	return filepath.Join(home, ".config", "ussd-dash", "services.json")
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
