package chromem

import (
	"context"

	chromemgo "github.com/philippgille/chromem-go"
	"github.com/rs/xid"

	"github.com/scibound/researchagent/components/vectordb"
)

// Engine adapts a chromem-go database to the vectordb.Engine interface.
type Engine struct {
	db *chromemgo.DB
}

var _ vectordb.Engine = (*Engine)(nil)

func New(db *chromemgo.DB) *Engine {
	return &Engine{db: db}
}

func (e *Engine) Collection(name string) (*chromemgo.Collection, error) {
	return e.db.GetOrCreateCollection(name, nil, nil)
}

func (e *Engine) Insert(ctx context.Context, collectionName string, records ...vectordb.Record) error {
	col, err := e.Collection(collectionName)
	if err != nil {
		return err
	}
	for _, record := range records {
		if record.ID == "" {
			record.ID = xid.New().String()
		}
		doc := chromemgo.Document{
			ID:        record.ID,
			Content:   record.Content,
			Metadata:  record.Meta,
			Embedding: record.Embedding,
		}
		if err := col.AddDocument(ctx, doc); err != nil {
			return err
		}
	}
	return nil
}

// Search performs vector similarity search on a collection. Scores are
// chromem cosine similarities in [0, 1].
func (e *Engine) Search(ctx context.Context, collectionName string, query []float32, opts ...vectordb.SearchOption) ([]vectordb.Record, error) {
	option := vectordb.NewSearchOptions(opts...)
	col, err := e.Collection(collectionName)
	if err != nil {
		return nil, err
	}
	// chromem rejects result counts larger than the collection.
	topK := min(option.TopK, col.Count())
	if topK == 0 {
		return nil, nil
	}
	results, err := col.QueryEmbedding(ctx, query, topK, option.Meta, nil)
	if err != nil {
		return nil, err
	}
	records := make([]vectordb.Record, 0, len(results))
	for _, res := range results {
		records = append(records, vectordb.Record{
			ID:        res.ID,
			Content:   res.Content,
			Meta:      res.Metadata,
			Embedding: res.Embedding,
			Score:     float64(res.Similarity),
		})
	}
	return records, nil
}
