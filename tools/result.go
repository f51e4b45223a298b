package tools

import (
	"strings"
)

// Item is a single normalized result from a search style tool.
type Item struct {
	// Title the title of the result
	Title string `json:"title"`
	// URL optional canonical URL for the result
	URL string `json:"url,omitempty"`
	// Authors optional author list, comma separated
	Authors string `json:"authors,omitempty"`
	// Published optional publication date
	Published string `json:"published,omitempty"`
	// Content the content snippet, truncated to the tool's budget
	Content string `json:"content"`
	// Source tag identifying the originating tool family
	Source string `json:"source"`
	// Score similarity score for vector search results
	Score float64 `json:"score,omitempty"`
}

// Provenance is one citation record, parallel to a result item.
type Provenance struct {
	Title      string  `json:"title"`
	URL        string  `json:"url,omitempty"`
	ArxivID    string  `json:"arxiv_id,omitempty"`
	Authors    string  `json:"authors,omitempty"`
	Published  string  `json:"published,omitempty"`
	Source     string  `json:"source"`
	Confidence float64 `json:"confidence_score,omitempty"`
	CharCount  int     `json:"char_count,omitempty"`
	Error      string  `json:"error,omitempty"`
	Succeeded  bool    `json:"success"`
}

// Result is the normalized output of one tool invocation.
// A failed invocation carries empty Items/Metadata and a non empty
// Message describing the failure.
type Result struct {
	// ToolName the originating tool, tagged by the coordinator
	ToolName string `json:"tool_name"`
	// Success whether the invocation produced usable output
	Success bool `json:"success"`
	// Message human readable summary or failure description
	Message string `json:"message"`
	// Items result items for search style tools
	Items []Item `json:"results,omitempty"`
	// Value scalar result for the calculator, nil on failure
	Value *float64 `json:"result,omitempty"`
	// Metadata provenance records parallel to Items
	Metadata []Provenance `json:"metadata,omitempty"`
}

// Failure builds a failed Result with the given message.
func Failure(toolName, message string) *Result {
	return &Result{
		ToolName: toolName,
		Success:  false,
		Message:  message,
	}
}

// Truncate cuts content to maxLen runes and appends an ellipsis marker
// when truncation happened.
func Truncate(content string, maxLen int) string {
	if maxLen <= 0 {
		return content
	}
	runes := []rune(content)
	if len(runes) <= maxLen {
		return content
	}
	return string(runes[:maxLen]) + "..."
}

// prefixLen is the number of characters compared when deduplicating
// items that carry no title.
const prefixLen = 200

// DedupByTitle removes items whose non empty title was already seen,
// comparing titles case insensitively. Items without a title are
// compared by content prefix instead.
func DedupByTitle(items []Item) []Item {
	seenTitles := make(map[string]struct{}, len(items))
	unique := make([]Item, 0, len(items))
	for _, item := range items {
		if item.Title != "" {
			key := strings.ToLower(item.Title)
			if _, ok := seenTitles[key]; ok {
				continue
			}
			seenTitles[key] = struct{}{}
			unique = append(unique, item)
			continue
		}
		duplicate := false
		for _, existing := range unique {
			if contentPrefix(item.Content) == contentPrefix(existing.Content) {
				duplicate = true
				break
			}
		}
		if !duplicate {
			unique = append(unique, item)
		}
	}
	return unique
}

func contentPrefix(content string) string {
	runes := []rune(strings.TrimSpace(content))
	if len(runes) > prefixLen {
		runes = runes[:prefixLen]
	}
	return string(runes)
}
