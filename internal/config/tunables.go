package config

import (
	"os"
	"strconv"
	"time"
)

// Tunables holds the operational knobs of a run.
// These values can be customized via environment variables.
type Tunables struct {
	RetryMaxAttempts  int           // Total attempts per deployment page fetch
	RetryInitialDelay time.Duration // Delay before the first retry, doubled after each
	RequestPause      time.Duration // Pause between pages and after each deletion
	HTTPTimeout       time.Duration // Timeout for a single API request
}

// LoadTunables loads tunables from environment variables.
// If an environment variable is not set or invalid, a default value is used.
//
// Environment Variables:
//   - CF_PAGES_RETRY_MAX_ATTEMPTS (default: 5)
//   - CF_PAGES_RETRY_INITIAL_DELAY (default: 1s)
//   - CF_PAGES_REQUEST_PAUSE (default: 500ms)
//   - CF_PAGES_HTTP_TIMEOUT (default: 30s)
func LoadTunables() *Tunables {
	return &Tunables{
		RetryMaxAttempts:  parseInt("CF_PAGES_RETRY_MAX_ATTEMPTS", 5),
		RetryInitialDelay: parseDuration("CF_PAGES_RETRY_INITIAL_DELAY", 1*time.Second),
		RequestPause:      parseDuration("CF_PAGES_REQUEST_PAUSE", 500*time.Millisecond),
		HTTPTimeout:       parseDuration("CF_PAGES_HTTP_TIMEOUT", 30*time.Second),
	}
}

// parseDuration parses a non-negative duration from an environment variable.
// If the variable is not set or parsing fails, the default value is returned.
func parseDuration(envVar string, defaultVal time.Duration) time.Duration {
	val := os.Getenv(envVar)
	if val == "" {
		return defaultVal
	}

	d, err := time.ParseDuration(val)
	if err != nil || d < 0 {
		return defaultVal
	}

	return d
}

// parseInt parses a positive integer from an environment variable.
// If the variable is not set or parsing fails, the default value is returned.
func parseInt(envVar string, defaultVal int) int {
	val := os.Getenv(envVar)
	if val == "" {
		return defaultVal
	}

	i, err := strconv.Atoi(val)
	if err != nil || i < 1 {
		return defaultVal
	}

	return i
}
