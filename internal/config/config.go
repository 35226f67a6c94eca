package config

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

// Config holds all configuration for the portal gateway
type Config struct {
	Port        string
	Origin      string
	Environment string
	Upstream    UpstreamConfig
	Session     SessionConfig
	DrugSearch  DrugSearchConfig
}

// UpstreamConfig holds the location of the hospital REST API. APIBaseURL is
// the /api root every data call goes through; AuthBaseURL is the non-API
// host that serves /login, /register and /logout as full pages.
type UpstreamConfig struct {
	APIBaseURL  string
	AuthBaseURL string
	Timeout     time.Duration
}

// SessionConfig controls the process-wide session cache.
type SessionConfig struct {
	CacheTTL time.Duration
}

// DrugSearchConfig controls the medicine-name autocomplete proxy.
type DrugSearchConfig struct {
	MinChars int
	Limit    int
}

// LoadConfig loads configuration from environment variables
func LoadConfig() (*Config, error) {
	upstreamTimeout, err := strconv.Atoi(getEnv("UPSTREAM_TIMEOUT_SECONDS", "15"))
	if err != nil {
		return nil, fmt.Errorf("invalid UPSTREAM_TIMEOUT_SECONDS: %w", err)
	}

	sessionTTL, err := strconv.Atoi(getEnv("SESSION_CACHE_TTL_SECONDS", "30"))
	if err != nil {
		return nil, fmt.Errorf("invalid SESSION_CACHE_TTL_SECONDS: %w", err)
	}

	minChars, err := strconv.Atoi(getEnv("DRUG_SEARCH_MIN_CHARS", "3"))
	if err != nil {
		return nil, fmt.Errorf("invalid DRUG_SEARCH_MIN_CHARS: %w", err)
	}

	limit, err := strconv.Atoi(getEnv("DRUG_SEARCH_LIMIT", "5"))
	if err != nil {
		return nil, fmt.Errorf("invalid DRUG_SEARCH_LIMIT: %w", err)
	}

	return &Config{
		Port:        getEnv("PORT", "3000"),
		Origin:      getEnv("ORIGIN", "http://localhost:3000"),
		Environment: getEnv("APP_ENV", "development"),
		Upstream: UpstreamConfig{
			APIBaseURL:  getEnv("API_BASE_URL", "http://localhost:8080/api"),
			AuthBaseURL: getEnv("AUTH_BASE_URL", "http://localhost:8080"),
			Timeout:     time.Duration(upstreamTimeout) * time.Second,
		},
		Session: SessionConfig{
			CacheTTL: time.Duration(sessionTTL) * time.Second,
		},
		DrugSearch: DrugSearchConfig{
			MinChars: minChars,
			Limit:    limit,
		},
	}, nil
}

// Helper function to get environment variable with a default value
func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}
