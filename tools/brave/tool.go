package brave

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"

	"github.com/scibound/researchagent/tools"
)

const (
	// ToolName is the registry name for the web search.
	ToolName = "brave_search"

	defaultDescription = "Search the web for current information, news, and general knowledge using Brave Search engine."
	defaultBaseURL     = "https://api.search.brave.com/res/v1/web/search"
	defaultMaxResults  = 5
	contentBudget      = 500
)

// searchResponse models the subset of the Brave Search API response
// the tool consumes.
type searchResponse struct {
	Web struct {
		Results []searchResult `json:"results"`
	} `json:"web"`
}

type searchResult struct {
	Title       string `json:"title"`
	URL         string `json:"url"`
	Description string `json:"description"`
	PageAge     string `json:"page_age"`
}

type Config struct {
	tools.Config
	apiKey     string
	baseURL    string
	maxResults int
	httpClient *http.Client
}

// Tool searches the web through the Brave Search REST API.
type Tool struct {
	Config
}

var _ tools.Tool = (*Tool)(nil)

// New constructs the tool. Without an API key the tool is recorded as
// unavailable rather than failing construction.
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
	ret.SetAvailable(ret.apiKey != "")
	return ret
}

// Execute searches the web and returns deduplicated snippets.
func (t *Tool) Execute(ctx context.Context, query string, opts ...tools.ExecOption) *tools.Result {
	if !t.Available() {
		return tools.Failure(t.Name(), "Brave search not available")
	}
	options := tools.NewExecOptions(t.maxResults, opts...)
	results, err := t.fetchSearchResults(ctx, query, options.MaxResults)
	if err != nil {
		return tools.Failure(t.Name(), fmt.Sprintf("Error during web search: %v", err))
	}
	items := make([]tools.Item, 0, len(results))
	for _, res := range results {
		items = append(items, tools.Item{
			Title:     res.Title,
			URL:       res.URL,
			Published: res.PageAge,
			Content:   tools.Truncate(res.Description, contentBudget),
			Source:    "brave_search",
		})
	}
	items = tools.DedupByTitle(items)
	if len(items) == 0 {
		return tools.Failure(t.Name(), "No web results found")
	}
	if len(items) > options.MaxResults {
		items = items[:options.MaxResults]
	}
	metadata := make([]tools.Provenance, 0, len(items))
	for _, item := range items {
		metadata = append(metadata, tools.Provenance{
			Title:     item.Title,
			URL:       item.URL,
			Published: item.Published,
			Source:    "brave_search",
			Succeeded: true,
		})
	}
	return &tools.Result{
		ToolName: t.Name(),
		Success:  true,
		Message:  fmt.Sprintf("Found %d web results", len(items)),
		Items:    items,
		Metadata: metadata,
	}
}

// fetchSearchResults queries the Brave API and returns the parsed results.
func (t *Tool) fetchSearchResults(ctx context.Context, query string, maxResults int) ([]searchResult, error) {
	values := url.Values{}
	values.Set("q", query)
	values.Set("count", fmt.Sprintf("%d", maxResults))
	searchURL := fmt.Sprintf("%s?%s", t.baseURL, values.Encode())
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodGet, searchURL, nil)
	if err != nil {
		return nil, err
	}
	httpReq.Header.Set("Accept", "application/json")
	httpReq.Header.Set("X-Subscription-Token", t.apiKey)
	httpResp, err := t.httpClient.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("error querying Brave search: %w", err)
	}
	defer httpResp.Body.Close()
	if httpResp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("non-200 response from Brave search: %d", httpResp.StatusCode)
	}
	var parsed searchResponse
	if err := json.NewDecoder(httpResp.Body).Decode(&parsed); err != nil {
		return nil, err
	}
	return parsed.Web.Results, nil
}
