package vectorstore

import (
	"context"
	"fmt"

	"github.com/scibound/researchagent/components/embedder"
	"github.com/scibound/researchagent/components/vectordb"
	"github.com/scibound/researchagent/tools"
)

const (
	// ToolName is the registry name for the vector database search.
	ToolName = "vector_search"

	defaultDescription = "Search the vector database for previously stored research papers and documents."
	// DefaultThreshold is the minimum similarity score a result must
	// reach to be retained.
	DefaultThreshold  = 0.8
	defaultCollection = "papers"
	defaultMaxResults = 5
	contentBudget     = 600
)

type Config struct {
	tools.Config
	embedder   embedder.Embedder
	engine     vectordb.Engine
	collection string
	threshold  float64
	maxResults int
}

// Tool searches a vector store for previously ingested documents and
// keeps only results above the configured confidence threshold.
type Tool struct {
	Config
}

var _ tools.Tool = (*Tool)(nil)

// New constructs the tool. Without both an embedder and an engine the
// tool is recorded as unavailable rather than failing construction.
func New(opts ...Option) *Tool {
	ret := new(Tool)
	ret.threshold = -1
	for _, opt := range opts {
		opt(&ret.Config)
	}
	if ret.Name() == "" {
		ret.SetName(ToolName)
	}
	if ret.Description() == "" {
		ret.SetDescription(defaultDescription)
	}
	if ret.collection == "" {
		ret.collection = defaultCollection
	}
	if ret.threshold < 0 {
		ret.threshold = DefaultThreshold
	}
	if ret.maxResults == 0 {
		ret.maxResults = defaultMaxResults
	}
	ret.SetAvailable(ret.embedder != nil && ret.engine != nil)
	return ret
}

// Execute embeds the query, searches the store, and filters results by
// the confidence threshold. An all-below-threshold outcome is a
// no-results failure, not an empty success.
func (t *Tool) Execute(ctx context.Context, query string, opts ...tools.ExecOption) *tools.Result {
	if !t.Available() {
		return tools.Failure(t.Name(), "Vector search not available")
	}
	options := tools.NewExecOptions(t.maxResults, opts...)
	vector, err := t.embedder.Embed(ctx, query)
	if err != nil {
		return tools.Failure(t.Name(), fmt.Sprintf("Error during vector search: %v", err))
	}
	records, err := t.engine.Search(ctx, t.collection, vector, vectordb.SearchWithTopK(options.MaxResults))
	if err != nil {
		return tools.Failure(t.Name(), fmt.Sprintf("Error during vector search: %v", err))
	}
	if len(records) == 0 {
		return tools.Failure(t.Name(), "No stored documents found")
	}
	items := make([]tools.Item, 0, len(records))
	for _, record := range records {
		if record.Score < t.threshold {
			continue
		}
		items = append(items, tools.Item{
			Title:     record.Meta["title"],
			URL:       record.Meta["url"],
			Authors:   record.Meta["authors"],
			Published: record.Meta["published"],
			Content:   tools.Truncate(record.Content, contentBudget),
			Source:    sourceTag(record.Meta),
			Score:     record.Score,
		})
	}
	if len(items) == 0 {
		return tools.Failure(t.Name(),
			fmt.Sprintf("No stored documents matched with confidence >= %.2f", t.threshold))
	}
	items = tools.DedupByTitle(items)
	metadata := make([]tools.Provenance, 0, len(items))
	for _, item := range items {
		metadata = append(metadata, tools.Provenance{
			Title:      item.Title,
			URL:        item.URL,
			Authors:    item.Authors,
			Published:  item.Published,
			Source:     item.Source,
			Confidence: item.Score,
			Succeeded:  true,
		})
	}
	return &tools.Result{
		ToolName: t.Name(),
		Success:  true,
		Message:  fmt.Sprintf("Found %d stored documents", len(items)),
		Items:    items,
		Metadata: metadata,
	}
}

func sourceTag(meta map[string]string) string {
	if v := meta["source"]; v != "" {
		return v
	}
	return "vector_db"
}
