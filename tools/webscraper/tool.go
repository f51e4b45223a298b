package webscraper

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"regexp"
	"strings"
	"time"

	htmltomarkdown "github.com/JohannesKaufmann/html-to-markdown/v2"
	"github.com/JohannesKaufmann/html-to-markdown/v2/converter"
	"github.com/PuerkitoBio/goquery"

	"github.com/scibound/researchagent/tools"
)

const (
	// ToolName is the registry name for the webpage scraper.
	ToolName = "webscraper"

	defaultDescription = "Extract full text content from web pages given their URLs. Useful for getting detailed information from specific websites."
	// MaxURLsPerQuery caps how many URLs a single execution will fetch.
	MaxURLsPerQuery = 3

	defaultTimeout         = 15
	defaultMaxContentChars = 3000
	defaultFetchDelay      = time.Second
	// Pages with less extracted text than this are checked for
	// client-side rendering indicators.
	sparseContentChars = 50
)

var (
	separatorPattern = regexp.MustCompile(`[,\s\n]+`)
	trailingJunk     = regexp.MustCompile(`["',]+$`)
)

// Selectors stripped from the document before content extraction.
var unwantedSelectors = []string{
	"script", "style", "nav", "header", "footer", "aside",
	".ad", ".ads", ".advertisement",
	".cookie", ".popup", ".modal", ".overlay",
	".social-share", ".comments", ".comment-section",
}

// Content extraction strategies in priority order. Semantic HTML5
// containers win over class and id conventions.
var contentStrategies = []string{
	"main", "article", "[role='main']",
	".content", ".main-content", ".post-content", ".article-content",
	".entry-content", ".page-content",
	"#content", "#main-content", "#post-content", "#article-content",
}

var jsIndicators = []string{
	"javascript", "js-", "data-react", "ng-app", "vue-app",
	"angular", "react", "vue", "svelte",
}

type Config struct {
	tools.Config
	userAgent       string
	timeout         int
	maxContentChars int
	fetchDelay      time.Duration
	httpClient      *http.Client
}

// Tool fetches up to MaxURLsPerQuery pages referenced in the query,
// extracts their main content as markdown, and reports per-URL
// provenance including failures.
type Tool struct {
	Config
}

var _ tools.Tool = (*Tool)(nil)

func New(opts ...Option) *Tool {
	ret := new(Tool)
	ret.fetchDelay = -1
	for _, opt := range opts {
		opt(&ret.Config)
	}
	if ret.Name() == "" {
		ret.SetName(ToolName)
	}
	if ret.Description() == "" {
		ret.SetDescription(defaultDescription)
	}
	if ret.userAgent == "" {
		ret.userAgent = DefaultUserAgent
	}
	if ret.timeout == 0 {
		ret.timeout = defaultTimeout
	}
	if ret.maxContentChars == 0 {
		ret.maxContentChars = defaultMaxContentChars
	}
	if ret.fetchDelay < 0 {
		ret.fetchDelay = defaultFetchDelay
	}
	if ret.httpClient == nil {
		ret.httpClient = &http.Client{
			Timeout: time.Second * time.Duration(ret.timeout),
		}
	}
	ret.SetAvailable(true)
	return ret
}

// Execute scrapes every URL found in the query, up to MaxURLsPerQuery.
// A per-URL failure is recorded in the metadata and does not abort the
// remaining fetches.
func (t *Tool) Execute(ctx context.Context, query string, opts ...tools.ExecOption) *tools.Result {
	urls := ParseURLs(query)
	if len(urls) == 0 {
		return tools.Failure(t.Name(), "No valid URLs found in query")
	}
	if len(urls) > MaxURLsPerQuery {
		urls = urls[:MaxURLsPerQuery]
	}
	var (
		items    []tools.Item
		metadata []tools.Provenance
	)
	for i, link := range urls {
		if i > 0 && t.fetchDelay > 0 {
			select {
			case <-ctx.Done():
				metadata = append(metadata, failedProvenance(link, "Request cancelled"))
				continue
			case <-time.After(t.fetchDelay):
			}
		}
		page, err := t.scrape(ctx, link)
		if err != nil {
			metadata = append(metadata, failedProvenance(link, classifyError(err)))
			continue
		}
		items = append(items, tools.Item{
			Title:   page.title,
			URL:     link,
			Content: page.content,
			Source:  ToolName,
		})
		metadata = append(metadata, tools.Provenance{
			Title:     tools.Truncate(page.title, 100),
			URL:       link,
			Source:    ToolName,
			CharCount: len(page.content),
			Succeeded: true,
		})
	}
	message := fmt.Sprintf("Successfully scraped %d/%d URLs", len(items), len(urls))
	if len(items) == 0 {
		return &tools.Result{
			ToolName: t.Name(),
			Success:  false,
			Message:  message,
			Metadata: metadata,
		}
	}
	return &tools.Result{
		ToolName: t.Name(),
		Success:  true,
		Message:  message,
		Items:    items,
		Metadata: metadata,
	}
}

type page struct {
	title   string
	content string
}

func (t *Tool) scrape(ctx context.Context, link string) (*page, error) {
	parsedURL, err := url.ParseRequestURI(link)
	if err != nil {
		return nil, err
	}
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodGet, link, nil)
	if err != nil {
		return nil, err
	}
	httpReq.Header.Set("User-Agent", t.userAgent)
	httpReq.Header.Set("Accept", DefaultAccept)
	httpReq.Header.Set("Connection", "keep-alive")
	httpResp, err := t.httpClient.Do(httpReq)
	if err != nil {
		return nil, err
	}
	defer httpResp.Body.Close()
	if httpResp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("unexpected status %d", httpResp.StatusCode)
	}
	doc, err := goquery.NewDocumentFromReader(httpResp.Body)
	if err != nil {
		return nil, err
	}
	title := strings.TrimSpace(doc.Find("head title").Text())
	if title == "" {
		title = "Web Page"
	}
	for _, selector := range unwantedSelectors {
		doc.Find(selector).Remove()
	}
	markdown, err := htmltomarkdown.ConvertString(
		t.extractMainContent(doc),
		converter.WithDomain(fmt.Sprintf("%s://%s", parsedURL.Scheme, parsedURL.Host)),
	)
	if err != nil {
		return nil, err
	}
	content := normalizeWhitespace(markdown)
	content = tools.Truncate(content, t.maxContentChars)
	if len(content) < sparseContentChars && looksJSRendered(doc) {
		content += "\n\n[NOTE: This appears to be a JavaScript-heavy site. Some content may not be accessible through static scraping.]"
	}
	return &page{title: title, content: content}, nil
}

// extractMainContent walks the strategies in order and keeps the first
// non-empty match. When no strategy hits, the largest top-level body
// block wins, and failing that the whole body.
func (t *Tool) extractMainContent(doc *goquery.Document) string {
	for _, strategy := range contentStrategies {
		sel := doc.Find(strategy)
		if sel.Length() == 0 {
			continue
		}
		if html, err := sel.First().Html(); err == nil && strings.TrimSpace(html) != "" {
			return html
		}
	}
	var largest string
	doc.Find("body > *").Each(func(_ int, s *goquery.Selection) {
		if html, err := s.Html(); err == nil && len(html) > len(largest) {
			largest = html
		}
	})
	if largest != "" {
		return largest
	}
	html, _ := doc.Find("body").Html()
	return html
}

func looksJSRendered(doc *goquery.Document) bool {
	html, err := doc.Html()
	if err != nil {
		return false
	}
	html = strings.ToLower(html)
	for _, indicator := range jsIndicators {
		if strings.Contains(html, indicator) {
			return true
		}
	}
	return false
}

func normalizeWhitespace(content string) string {
	lines := strings.Split(content, "\n")
	for i, line := range lines {
		lines[i] = strings.TrimRight(line, " \t")
	}
	content = strings.Join(lines, "\n")
	content = regexp.MustCompile(`\n{3,}`).ReplaceAllString(content, "\n\n")
	return strings.TrimSpace(content)
}

// ParseURLs extracts http(s) URLs from free text. Bare domains are
// upgraded to https.
func ParseURLs(query string) []string {
	parts := separatorPattern.Split(strings.TrimSpace(query), -1)
	var urls []string
	for _, part := range parts {
		part = strings.Trim(part, `"'`)
		part = trailingJunk.ReplaceAllString(part, "")
		if part == "" {
			continue
		}
		if strings.HasPrefix(part, "http://") || strings.HasPrefix(part, "https://") {
			if validURL(part) {
				urls = append(urls, part)
			}
			continue
		}
		if strings.Contains(part, ".") && !strings.HasPrefix(part, ".") {
			candidate := "https://" + part
			if validURL(candidate) {
				urls = append(urls, candidate)
			}
		}
	}
	return urls
}

func validURL(link string) bool {
	parsed, err := url.ParseRequestURI(link)
	if err != nil {
		return false
	}
	return parsed.Host != "" && strings.Contains(parsed.Host, ".")
}

// classifyError maps transport and status failures to messages the
// synthesis step can surface to the user.
func classifyError(err error) string {
	msg := strings.ToLower(err.Error())
	switch {
	case strings.Contains(msg, "timeout") || strings.Contains(msg, "deadline exceeded"):
		return "Request timeout - site may be slow or blocking requests"
	case strings.Contains(msg, "403"):
		return "Access forbidden - site may be blocking scrapers"
	case strings.Contains(msg, "404"):
		return "Page not found"
	case strings.Contains(msg, "certificate") || strings.Contains(msg, "tls"):
		return "SSL/Certificate error"
	case strings.Contains(msg, "connection") || strings.Contains(msg, "no such host"):
		return "Connection failed - site may be down or unreachable"
	default:
		return err.Error()
	}
}

func failedProvenance(link, reason string) tools.Provenance {
	host := link
	if parsed, err := url.Parse(link); err == nil && parsed.Host != "" {
		host = parsed.Host
	}
	return tools.Provenance{
		Title:  "Failed: " + host,
		URL:    link,
		Source: ToolName,
		Error:  reason,
	}
}
