// Package config loads runtime settings from the environment, with an
// optional .env file for local development.
package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Environment variable names.
const (
	EnvConfidenceThreshold = "LEAFSCAN_CONFIDENCE_THRESHOLD"
	EnvCatalogPath         = "LEAFSCAN_CATALOG"
	EnvLogLevel            = "LEAFSCAN_LOG_LEVEL"
)

// Defaults applied when a variable is unset.
const (
	DefaultConfidenceThreshold = 0.7
	DefaultLogLevel            = "info"
)

// Config holds the runtime settings.
type Config struct {
	// ConfidenceThreshold filters reported predictions, range [0, 1].
	ConfidenceThreshold float64

	// CatalogPath points to a JSON signature catalog. Empty means the
	// built-in catalog.
	CatalogPath string

	// LogLevel is a zerolog level name (trace, debug, info, warn,
	// error, fatal, panic).
	LogLevel string
}

// Load reads settings from the environment. A .env file in the working
// directory is merged in first when present; real environment
// variables win over file entries.
func Load() (*Config, error) {
	// Missing .env is the normal production case.
	_ = godotenv.Load()

	cfg := &Config{
		ConfidenceThreshold: DefaultConfidenceThreshold,
		CatalogPath:         os.Getenv(EnvCatalogPath),
		LogLevel:            DefaultLogLevel,
	}

	if raw := os.Getenv(EnvConfidenceThreshold); raw != "" {
		threshold, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", EnvConfidenceThreshold, err)
		}
		if threshold < 0 || threshold > 1 {
			return nil, fmt.Errorf("%s must be between 0 and 1, got %v", EnvConfidenceThreshold, threshold)
		}
		cfg.ConfidenceThreshold = threshold
	}

	if level := os.Getenv(EnvLogLevel); level != "" {
		cfg.LogLevel = level
	}

	return cfg, nil
}
