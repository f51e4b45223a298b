package webscraper

import (
	"net/http"
	"time"
)

const (
	DefaultUserAgent = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/120.0.0.0 Safari/537.36"
	DefaultAccept    = "text/html,application/xhtml+xml,application/xml;q=0.9,*/*;q=0.8"
)

type Option func(*Config)

func WithUserAgent(ua string) Option {
	return func(c *Config) {
		c.userAgent = ua
	}
}

// WithTimeout sets the per-request timeout in seconds.
func WithTimeout(timeout int) Option {
	return func(c *Config) {
		c.timeout = timeout
	}
}

// WithMaxContentChars caps the extracted text length per URL.
func WithMaxContentChars(n int) Option {
	return func(c *Config) {
		c.maxContentChars = n
	}
}

func WithHttpClient(clt *http.Client) Option {
	return func(c *Config) {
		c.httpClient = clt
	}
}

// WithFetchDelay overrides the pause between consecutive fetches.
func WithFetchDelay(d time.Duration) Option {
	return func(c *Config) {
		c.fetchDelay = d
	}
}
