// Package config provides configuration loading and validation.
package config

import (
	"fmt"
	"os"
	"strconv"
)

// Default values applied when the corresponding environment variable is unset.
const (
	DefaultPort        = 8080
	DefaultGeminiModel = "gemini-2.5-flash"
	DefaultLogLevel    = "info"
	DefaultLogFormat   = "console"
)

// AppConfig holds process-wide settings read from the environment.
type AppConfig struct {
	Port         int    // PORT
	DatabaseURL  string // DATABASE_URL (PostgreSQL connection string)
	GeminiAPIKey string // GEMINI_API_KEY
	GeminiModel  string // GEMINI_MODEL
	LogLevel     string // LOG_LEVEL: debug, info, warn, error
	LogFormat    string // LOG_FORMAT: console or json
}

// NewAppConfig creates an application configuration from environment
// variables, applying defaults for everything optional. Settings that only
// some commands need (database, Gemini) are not required here; callers check
// them with RequireDatabase and RequireGemini.
func NewAppConfig() (*AppConfig, error) {
	port := DefaultPort
	if portStr := os.Getenv("PORT"); portStr != "" {
		parsed, err := strconv.Atoi(portStr)
		if err != nil {
			return nil, fmt.Errorf("invalid PORT: %v", err)
		}
		port = parsed
	}

	config := &AppConfig{
		Port:         port,
		DatabaseURL:  os.Getenv("DATABASE_URL"),
		GeminiAPIKey: os.Getenv("GEMINI_API_KEY"),
		GeminiModel:  envOr("GEMINI_MODEL", DefaultGeminiModel),
		LogLevel:     envOr("LOG_LEVEL", DefaultLogLevel),
		LogFormat:    envOr("LOG_FORMAT", DefaultLogFormat),
	}

	if err := config.normalize(); err != nil {
		return nil, err
	}

	return config, nil
}

// normalize validates the configuration.
func (c *AppConfig) normalize() error {
	if c.Port < 1 || c.Port > 65535 {
		return fmt.Errorf("PORT out of range: %d (must be 1-65535)", c.Port)
	}
	if c.LogFormat != "console" && c.LogFormat != "json" {
		return fmt.Errorf("invalid LOG_FORMAT: %q (must be console or json)", c.LogFormat)
	}
	return nil
}

// Addr returns the listen address for the HTTP server.
func (c *AppConfig) Addr() string {
	return fmt.Sprintf(":%d", c.Port)
}

// RequireDatabase returns an error when DATABASE_URL is not configured.
func (c *AppConfig) RequireDatabase() error {
	if c.DatabaseURL == "" {
		return fmt.Errorf("DATABASE_URL is required but not set")
	}
	return nil
}

// RequireGemini returns an error when GEMINI_API_KEY is not configured.
func (c *AppConfig) RequireGemini() error {
	if c.GeminiAPIKey == "" {
		return fmt.Errorf("GEMINI_API_KEY is required but not set")
	}
	return nil
}

func envOr(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}
