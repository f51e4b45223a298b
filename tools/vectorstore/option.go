package vectorstore

import (
	"github.com/scibound/researchagent/components/embedder"
	"github.com/scibound/researchagent/components/vectordb"
)

type Option func(*Config)

func WithEmbedder(e embedder.Embedder) Option {
	return func(c *Config) {
		c.embedder = e
	}
}

func WithEngine(engine vectordb.Engine) Option {
	return func(c *Config) {
		c.engine = engine
	}
}

func WithCollection(name string) Option {
	return func(c *Config) {
		c.collection = name
	}
}

// WithThreshold sets the minimum similarity score for retained results.
func WithThreshold(threshold float64) Option {
	return func(c *Config) {
		c.threshold = threshold
	}
}

func WithMaxResults(maxResults int) Option {
	return func(c *Config) {
		c.maxResults = maxResults
	}
}
