package vectordb

import (
	"context"
)

// Record represents a single stored document or search result.
type Record struct {
	// ID is the identifier for the record
	ID string
	// Content is the raw document text
	Content string
	// Meta carries document metadata (title, authors, source, ...)
	Meta map[string]string
	// Embedding is the document vector
	Embedding []float32
	// Score is the similarity score, populated on search results only.
	// Higher means more similar, normalized to [0, 1].
	Score float64
}

// Engine is a pluggable vector store backend.
type Engine interface {
	Insert(ctx context.Context, collection string, records ...Record) error
	Search(ctx context.Context, collection string, query []float32, opts ...SearchOption) ([]Record, error)
}
