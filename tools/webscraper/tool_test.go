package webscraper

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

const articlePage = `<!DOCTYPE html>
<html>
<head><title>Understanding Attention</title></head>
<body>
  <nav>Home | About | Contact</nav>
  <article>
    <h1>Understanding Attention</h1>
    <p>Attention mechanisms let models weigh input tokens dynamically.</p>
    <p>They underpin the transformer architecture.</p>
  </article>
  <footer>Copyright 2026</footer>
  <script>trackVisitor();</script>
</body>
</html>`

func newPageServer(t *testing.T, pages map[string]string) *httptest.Server {
	t.Helper()
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		page, ok := pages[r.URL.Path]
		if !ok {
			http.NotFound(w, r)
			return
		}
		w.Header().Set("Content-Type", "text/html")
		w.Write([]byte(page))
	}))
}

func TestScrapeSinglePage(t *testing.T) {
	srv := newPageServer(t, map[string]string{"/article": articlePage})
	defer srv.Close()

	tool := New(WithFetchDelay(0))
	result := tool.Execute(context.Background(), srv.URL+"/article")
	if !result.Success {
		t.Fatalf("Expect success, but got failure: %s", result.Message)
	}
	if len(result.Items) != 1 {
		t.Fatalf("Expect 1 item, got %d", len(result.Items))
	}
	item := result.Items[0]
	if item.Title != "Understanding Attention" {
		t.Errorf("Unexpected title: %s", item.Title)
	}
	if !strings.Contains(item.Content, "weigh input tokens") {
		t.Errorf("Expect article content, got: %s", item.Content)
	}
	if strings.Contains(item.Content, "Home | About") {
		t.Error("Expect navigation to be stripped")
	}
	if strings.Contains(item.Content, "trackVisitor") {
		t.Error("Expect scripts to be stripped")
	}
	if !result.Metadata[0].Succeeded || result.Metadata[0].CharCount == 0 {
		t.Errorf("Unexpected metadata: %+v", result.Metadata[0])
	}
}

func TestScrapePartialFailure(t *testing.T) {
	srv := newPageServer(t, map[string]string{"/good": articlePage})
	defer srv.Close()

	tool := New(WithFetchDelay(0))
	query := srv.URL + "/good, " + srv.URL + "/missing"
	result := tool.Execute(context.Background(), query)
	if !result.Success {
		t.Fatalf("Expect success with one good URL, got: %s", result.Message)
	}
	if result.Message != "Successfully scraped 1/2 URLs" {
		t.Errorf("Unexpected message: %s", result.Message)
	}
	if len(result.Metadata) != 2 {
		t.Fatalf("Expect metadata for both URLs, got %d", len(result.Metadata))
	}
	failed := result.Metadata[1]
	if failed.Succeeded {
		t.Error("Expect second URL to be recorded as failed")
	}
	if failed.Error != "Page not found" {
		t.Errorf("Unexpected error classification: %s", failed.Error)
	}
}

func TestScrapeNoURLs(t *testing.T) {
	tool := New(WithFetchDelay(0))
	result := tool.Execute(context.Background(), "tell me about transformers")
	if result.Success {
		t.Fatal("Expect failure when the query contains no URLs")
	}
	if result.Message != "No valid URLs found in query" {
		t.Errorf("Unexpected message: %s", result.Message)
	}
}

func TestScrapeLimitsURLCount(t *testing.T) {
	srv := newPageServer(t, map[string]string{
		"/a": articlePage,
		"/b": articlePage,
		"/c": articlePage,
		"/d": articlePage,
	})
	defer srv.Close()

	tool := New(WithFetchDelay(0))
	query := strings.Join([]string{
		srv.URL + "/a", srv.URL + "/b", srv.URL + "/c", srv.URL + "/d",
	}, " ")
	result := tool.Execute(context.Background(), query)
	if len(result.Metadata) != MaxURLsPerQuery {
		t.Errorf("Expect at most %d fetches, got %d", MaxURLsPerQuery, len(result.Metadata))
	}
}

func TestParseURLs(t *testing.T) {
	tests := []struct {
		name  string
		query string
		want  []string
	}{
		{
			name:  "plain url",
			query: "https://example.com/page",
			want:  []string{"https://example.com/page"},
		},
		{
			name:  "comma separated with quotes",
			query: `"https://example.com/a", 'https://example.org/b'`,
			want:  []string{"https://example.com/a", "https://example.org/b"},
		},
		{
			name:  "bare domain upgraded",
			query: "example.com/stats",
			want:  []string{"https://example.com/stats"},
		},
		{
			name:  "mixed prose",
			query: "scrape https://example.com and summarize",
			want:  []string{"https://example.com"},
		},
		{
			name:  "nothing",
			query: "just a question",
			want:  nil,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ParseURLs(tt.query)
			if len(got) != len(tt.want) {
				t.Fatalf("Expect %v, got %v", tt.want, got)
			}
			for i := range got {
				if got[i] != tt.want[i] {
					t.Errorf("Expect %v, got %v", tt.want, got)
				}
			}
		})
	}
}
