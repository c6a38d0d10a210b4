package ratelimit

import (
	"os"
	"strconv"
	"strings"
	"time"
)

// EndpointConfig is a per-route budget. A trailing slash in Path makes it a
// prefix rule that also covers subresources.
type EndpointConfig struct {
	Path   string
	Method string
	Limit  int           // requests per Window; zero or negative means unlimited
	Window time.Duration
}

// LoadConfig reads limiter settings from RATE_LIMIT_* environment variables.
// Unset or malformed values fall back to the defaults.
func LoadConfig() *Config {
	if !envBool("RATE_LIMIT_ENABLED", true) {
		return &Config{Enabled: false}
	}

	return &Config{
		Enabled:         true,
		DefaultLimit:    envInt("RATE_LIMIT_DEFAULT_LIMIT", 1000),
		DefaultWindow:   envDuration("RATE_LIMIT_DEFAULT_WINDOW", time.Minute),
		CleanupInterval: envDuration("RATE_LIMIT_CLEANUP_INTERVAL", 5*time.Minute),
		Whitelist:       parseClientList(os.Getenv("RATE_LIMIT_WHITELIST")),
		Blacklist:       parseClientList(os.Getenv("RATE_LIMIT_BLACKLIST")),
		EndpointConfigs: DefaultEndpointConfigs(),
	}
}

// DefaultEndpointConfigs returns the per-route budgets. Routes without an
// entry fall back to the configured default; /health is exempted by the
// matcher itself.
func DefaultEndpointConfigs() []EndpointConfig {
	return []EndpointConfig{
		// Streaming batch runs hold a worker pool and model quota.
		{Path: "/api/v1/batch/analyses/stream", Method: "POST", Limit: 10, Window: time.Hour},
		{Path: "/api/v1/roles/ingest", Method: "POST", Limit: 30, Window: time.Hour},

		// Resume uploads run extraction plus an AI pass.
		{Path: "/api/v1/resumes/", Method: "POST", Limit: 60, Window: time.Hour},

		// Credential endpoints, kept tight against brute force.
		{Path: "/api/v1/auth/register", Method: "POST", Limit: 20, Window: time.Minute},
		{Path: "/api/v1/auth/login", Method: "POST", Limit: 20, Window: time.Minute},

		// Stateless analysis is cheap but CPU-bound.
		{Path: "/api/v1/analyze", Method: "POST", Limit: 300, Window: time.Minute},
	}
}

func envInt(key string, fallback int) int {
	raw := os.Getenv(key)
	if raw == "" {
		return fallback
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return fallback
	}
	return v
}

func envBool(key string, fallback bool) bool {
	raw := os.Getenv(key)
	if raw == "" {
		return fallback
	}
	v, err := strconv.ParseBool(raw)
	if err != nil {
		return fallback
	}
	return v
}

func envDuration(key string, fallback time.Duration) time.Duration {
	raw := os.Getenv(key)
	if raw == "" {
		return fallback
	}
	v, err := time.ParseDuration(raw)
	if err != nil {
		return fallback
	}
	return v
}

// parseClientList turns a comma-separated list of client IDs into a set.
func parseClientList(raw string) map[string]bool {
	set := make(map[string]bool)
	for _, entry := range strings.Split(raw, ",") {
		if entry = strings.TrimSpace(entry); entry != "" {
			set[entry] = true
		}
	}
	return set
}
