package arxiv

import (
	"context"
	"encoding/xml"
	"fmt"
	"net/http"
	"net/url"
	"regexp"
	"strings"

	"github.com/scibound/researchagent/tools"
)

const (
	// ToolName is the registry name for the academic paper search.
	ToolName = "arxiv_search"

	defaultDescription = "Search ArXiv for academic papers and research on AI, ML, physics, math, and other scientific domains."
	defaultBaseURL     = "http://export.arxiv.org/api/query"
	defaultMaxResults  = 5
	contentBudget      = 800
)

// feed models the subset of the arXiv Atom response the tool consumes.
type feed struct {
	Entries []entry `xml:"entry"`
}

type entry struct {
	ID        string   `xml:"id"`
	Title     string   `xml:"title"`
	Summary   string   `xml:"summary"`
	Published string   `xml:"published"`
	Authors   []author `xml:"author"`
}

type author struct {
	Name string `xml:"name"`
}

var versionSuffix = regexp.MustCompile(`v\d+$`)

type Config struct {
	tools.Config
	baseURL    string
	maxResults int
	httpClient *http.Client
}

// Tool searches the arXiv Atom API for academic papers.
type Tool struct {
	Config
}

var _ tools.Tool = (*Tool)(nil)

func New(opts ...Option) *Tool {
	ret := new(Tool)
	for _, opt := range opts {
		opt(&ret.Config)
	}
	if ret.Name() == "" {
		ret.SetName(ToolName)
	}
	if ret.Description() == "" {
		ret.SetDescription(defaultDescription)
	}
	if ret.baseURL == "" {
		ret.baseURL = defaultBaseURL
	}
	if ret.maxResults == 0 {
		ret.maxResults = defaultMaxResults
	}
	if ret.httpClient == nil {
		ret.httpClient = http.DefaultClient
	}
	// The arXiv API needs no credentials.
	ret.SetAvailable(true)
	return ret
}

// Execute searches arXiv and returns deduplicated paper summaries.
func (t *Tool) Execute(ctx context.Context, query string, opts ...tools.ExecOption) *tools.Result {
	options := tools.NewExecOptions(t.maxResults, opts...)
	entries, err := t.fetchEntries(ctx, query, options.MaxResults)
	if err != nil {
		return tools.Failure(t.Name(), fmt.Sprintf("Error during ArXiv search: %v", err))
	}
	items := make([]tools.Item, 0, len(entries))
	for _, e := range entries {
		arxivID := extractID(e.ID)
		link := ""
		if arxivID != "" {
			link = "https://arxiv.org/abs/" + arxivID
		}
		items = append(items, tools.Item{
			Title:     normalizeSpace(e.Title),
			URL:       link,
			Authors:   joinAuthors(e.Authors),
			Published: e.Published,
			Content:   tools.Truncate(normalizeSpace(e.Summary), contentBudget),
			Source:    "arxiv",
		})
	}
	items = tools.DedupByTitle(items)
	if len(items) == 0 {
		return tools.Failure(t.Name(), "No ArXiv papers found")
	}
	metadata := make([]tools.Provenance, 0, len(items))
	for _, item := range items {
		metadata = append(metadata, tools.Provenance{
			Title:     item.Title,
			URL:       item.URL,
			ArxivID:   extractID(item.URL),
			Authors:   item.Authors,
			Published: item.Published,
			Source:    "arxiv",
			Succeeded: true,
		})
	}
	return &tools.Result{
		ToolName: t.Name(),
		Success:  true,
		Message:  fmt.Sprintf("Found %d ArXiv papers", len(items)),
		Items:    items,
		Metadata: metadata,
	}
}

// fetchEntries queries the Atom API and returns the parsed entries.
func (t *Tool) fetchEntries(ctx context.Context, query string, maxResults int) ([]entry, error) {
	values := url.Values{}
	values.Set("search_query", "all:"+query)
	values.Set("start", "0")
	values.Set("max_results", fmt.Sprintf("%d", maxResults))
	searchURL := fmt.Sprintf("%s?%s", t.baseURL, values.Encode())
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodGet, searchURL, nil)
	if err != nil {
		return nil, err
	}
	httpResp, err := t.httpClient.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("error querying arXiv: %w", err)
	}
	defer httpResp.Body.Close()
	if httpResp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("non-200 response from arXiv: %d", httpResp.StatusCode)
	}
	var parsed feed
	if err := xml.NewDecoder(httpResp.Body).Decode(&parsed); err != nil {
		return nil, err
	}
	return parsed.Entries, nil
}

// extractID pulls the bare arXiv identifier out of an abs URL,
// dropping any trailing version suffix.
func extractID(entryID string) string {
	if entryID == "" {
		return ""
	}
	id := entryID
	if idx := strings.LastIndex(entryID, "/abs/"); idx >= 0 {
		id = entryID[idx+len("/abs/"):]
	} else if idx := strings.LastIndex(entryID, "/"); idx >= 0 {
		id = entryID[idx+1:]
	}
	return versionSuffix.ReplaceAllString(id, "")
}

func joinAuthors(authors []author) string {
	names := make([]string, 0, len(authors))
	for _, a := range authors {
		if a.Name != "" {
			names = append(names, a.Name)
		}
	}
	return strings.Join(names, ", ")
}

func normalizeSpace(s string) string {
	return strings.Join(strings.Fields(s), " ")
}
