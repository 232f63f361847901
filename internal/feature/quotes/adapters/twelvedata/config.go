// Package twelvedata provides a quote client for the Twelve Data API.
package twelvedata

import "time"

// DefaultBaseURL is the public Twelve Data endpoint.
const DefaultBaseURL = "https://api.twelvedata.com"

// DefaultTimeout bounds a single quote request.
const DefaultTimeout = 12 * time.Second

// Config holds configuration for the Twelve Data client.
// The API key is supplied per call.
type Config struct {
	BaseURL string        // Base URL for the API (e.g., "https://api.twelvedata.com")
	Timeout time.Duration // per-request timeout
}

func (c Config) withDefaults() Config {
	if c.BaseURL == "" {
		c.BaseURL = DefaultBaseURL
	}
	if c.Timeout <= 0 {
		c.Timeout = DefaultTimeout
	}
	return c
}
