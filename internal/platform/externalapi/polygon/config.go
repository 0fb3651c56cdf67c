// Package polygon provides a client for the Polygon.io historic ticks API.
package polygon

import (
	"os"
	"time"
)

// Config holds configuration for the Polygon API client.
type Config struct {
	APIKey     string        // API key for authentication
	BaseURL    string        // Base URL for the API (e.g., "https://api.polygon.io")
	Timeout    time.Duration // HTTP request timeout
	RetryStall time.Duration // Pause before retrying a failed request
}

// LoadConfig loads Polygon configuration from environment variables.
func LoadConfig() Config {
	base := os.Getenv("POLYGON_BASE_URL")
	if base == "" {
		base = "https://api.polygon.io"
	}
	return Config{
		APIKey:     os.Getenv("POLYGON_API_KEY"),
		BaseURL:    base,
		Timeout:    30 * time.Second,
		RetryStall: 2 * time.Second,
	}
}
