package memory

import (
	"context"
	"math"
	"sort"
	"sync"

	"github.com/rs/xid"

	"github.com/scibound/researchagent/components/vectordb"
)

// Engine implements vectordb.Engine with in-memory storage. It is
// intended for tests and small corpora where no external vector
// database is configured.
type Engine struct {
	collections *sync.Map
}

var _ vectordb.Engine = (*Engine)(nil)

// Collection represents a named set of records.
type Collection struct {
	records []vectordb.Record
	mu      sync.RWMutex
}

func (c *Collection) AddRecords(records ...vectordb.Record) {
	c.mu.Lock()
	c.records = append(c.records, records...)
	c.mu.Unlock()
}

func (c *Collection) Records() []vectordb.Record {
	c.mu.RLock()
	defer c.mu.RUnlock()
	ret := make([]vectordb.Record, len(c.records))
	copy(ret, c.records)
	return ret
}

func New() *Engine {
	return &Engine{
		collections: new(sync.Map),
	}
}

func (e *Engine) Collection(name string) *Collection {
	col, _ := e.collections.LoadOrStore(name, new(Collection))
	return col.(*Collection)
}

func (e *Engine) Insert(_ context.Context, collectionName string, records ...vectordb.Record) error {
	docs := make([]vectordb.Record, 0, len(records))
	for _, record := range records {
		if record.ID == "" {
			record.ID = xid.New().String()
		}
		docs = append(docs, record)
	}
	e.Collection(collectionName).AddRecords(docs...)
	return nil
}

func (e *Engine) Search(_ context.Context, collectionName string, query []float32, opts ...vectordb.SearchOption) ([]vectordb.Record, error) {
	option := vectordb.NewSearchOptions(opts...)
	records := filterRecords(e.Collection(collectionName).Records(), option)
	for idx := range records {
		records[idx].Score = cosineSimilarity(query, records[idx].Embedding)
	}
	sort.SliceStable(records, func(i, j int) bool {
		return records[i].Score > records[j].Score
	})
	topK := min(option.TopK, len(records))
	return records[:topK], nil
}

func filterRecords(records []vectordb.Record, opts *vectordb.SearchOptions) []vectordb.Record {
	if len(opts.Meta) == 0 {
		return records
	}
	filtered := make([]vectordb.Record, 0, len(records))
	for _, record := range records {
		if recordMatchesMeta(&record, opts.Meta) {
			filtered = append(filtered, record)
		}
	}
	return filtered
}

// recordMatchesMeta checks that the record metadata carries all the
// fields in the filter.
func recordMatchesMeta(record *vectordb.Record, meta map[string]string) bool {
	for k, v := range meta {
		if record.Meta[k] != v {
			return false
		}
	}
	return true
}

// cosineSimilarity returns a similarity score in [0, 1] so memory
// search results are comparable to chromem similarities.
func cosineSimilarity(a, b []float32) float64 {
	if len(a) != len(b) || len(a) == 0 {
		return 0
	}
	var dot, normA, normB float64
	for i := range a {
		dot += float64(a[i]) * float64(b[i])
		normA += float64(a[i]) * float64(a[i])
		normB += float64(b[i]) * float64(b[i])
	}
	if normA == 0 || normB == 0 {
		return 0
	}
	cos := dot / (math.Sqrt(normA) * math.Sqrt(normB))
	return (cos + 1) / 2
}
