// Package fmp provides a quote client for the Financial Modeling Prep API.
package fmp

import "time"

// DefaultBaseURL is the public Financial Modeling Prep endpoint.
const DefaultBaseURL = "https://financialmodelingprep.com"

// DefaultTimeout bounds each candidate request.
const DefaultTimeout = 12 * time.Second

// Config holds configuration for the FMP client. The API key is supplied per call.
type Config struct {
	BaseURL string
	Timeout time.Duration
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
