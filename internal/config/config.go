package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config holds all application configuration.
type Config struct {
	// Database
	DatabasePath string

	// Classifier artifact
	ModelPath string

	// Keyword persistence. Empty means the sqlite database; a path selects
	// the JSON-file backend instead.
	KeywordsPath string

	// VecLite example index (optional, explanations only)
	ExampleIndexPath string

	// Logging
	LogLevel string

	// Health endpoint
	HealthAddr string

	// Rate limiting
	RateLimit       int
	RateWindow      time.Duration
	MaxTrackedUsers int
}

// Load reads configuration from environment variables.
// It automatically loads .env file if present.
func Load() (*Config, error) {
	// Load .env file if it exists (ignore error if not found)
	_ = godotenv.Load()

	cfg := &Config{
		DatabasePath:     getEnv("DATABASE_PATH", "data/modguard.db"),
		ModelPath:        getEnv("MODEL_PATH", "data/classifier.json"),
		KeywordsPath:     getEnv("KEYWORDS_PATH", ""),
		ExampleIndexPath: getEnv("EXAMPLE_INDEX_PATH", ""),
		LogLevel:         getEnv("LOG_LEVEL", "info"),
		HealthAddr:       getEnv("HEALTH_ADDR", ":8090"),
	}

	var err error
	cfg.RateWindow, err = time.ParseDuration(getEnv("RATE_WINDOW", "1m"))
	if err != nil {
		return nil, fmt.Errorf("invalid RATE_WINDOW: %w", err)
	}

	cfg.RateLimit, err = strconv.Atoi(getEnv("RATE_LIMIT", "10"))
	if err != nil {
		return nil, fmt.Errorf("invalid RATE_LIMIT: %w", err)
	}

	cfg.MaxTrackedUsers, err = strconv.Atoi(getEnv("MAX_TRACKED_USERS", "10000"))
	if err != nil {
		return nil, fmt.Errorf("invalid MAX_TRACKED_USERS: %w", err)
	}

	return cfg, nil
}

// Validate checks that required configuration is present.
func (c *Config) Validate() error {
	if c.DatabasePath == "" {
		return fmt.Errorf("DATABASE_PATH is required")
	}
	if c.ModelPath == "" {
		return fmt.Errorf("MODEL_PATH is required")
	}
	return nil
}

// ValidateForServe checks configuration needed for the serve command.
func (c *Config) ValidateForServe() error {
	if err := c.Validate(); err != nil {
		return err
	}
	if c.HealthAddr == "" {
		return fmt.Errorf("HEALTH_ADDR is required for serve")
	}
	if c.RateLimit <= 0 {
		return fmt.Errorf("RATE_LIMIT must be positive")
	}
	if c.RateWindow <= 0 {
		return fmt.Errorf("RATE_WINDOW must be positive")
	}
	return nil
}

func getEnv(key, defaultVal string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return defaultVal
}
