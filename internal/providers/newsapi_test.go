package providers

import (
	"context"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"github.com/minhvu/newsdesk/internal/models"
)

const newsAPIBody = `{
	"status": "ok",
	"articles": [
		{
			"author": "Jane Doe",
			"title": "First story",
			"description": "Something happened",
			"url": "https://example.com/first",
			"urlToImage": "https://example.com/first.jpg",
			"publishedAt": "2025-08-01T10:00:00Z"
		},
		{
			"author": "",
			"title": "Second story",
			"description": "",
			"url": "https://example.com/second",
			"urlToImage": "",
			"publishedAt": "2025-08-02T11:30:00Z"
		}
	]
}`

// newNewsAPIServer returns a test server that records the query parameters
// of the last request and serves a canned response.
func newNewsAPIServer(t *testing.T, body string) (*httptest.Server, *url.Values) {
	t.Helper()
	var got url.Values
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got = r.URL.Query()
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(body)) //nolint:errcheck
	}))
	t.Cleanup(srv.Close)
	return srv, &got
}

func TestNewsAPIFetch_Mapping(t *testing.T) {
	srv, _ := newNewsAPIServer(t, newsAPIBody)
	p := NewNewsAPI("test-key", WithBaseURL(srv.URL))

	filter := models.Filter{Search: "climate", Categories: []string{"science"}}
	articles, err := p.Fetch(context.Background(), filter)
	if err != nil {
		t.Fatalf("Fetch() error: %v", err)
	}

	if len(articles) != 2 {
		t.Fatalf("got %d articles, want 2", len(articles))
	}

	first := articles[0]
	if first.ID != "newsapi-https://example.com/first" {
		t.Errorf("ID = %q, want newsapi-prefixed URL", first.ID)
	}
	if first.Title != "First story" {
		t.Errorf("Title = %q, want %q", first.Title, "First story")
	}
	if first.Source != "NewsAPI" {
		t.Errorf("Source = %q, want %q", first.Source, "NewsAPI")
	}
	if first.Category != "science" {
		t.Errorf("Category = %q, want the filter's category %q", first.Category, "science")
	}
	if first.Author != "Jane Doe" {
		t.Errorf("Author = %q, want %q", first.Author, "Jane Doe")
	}
	if first.ImageURL != "https://example.com/first.jpg" {
		t.Errorf("ImageURL = %q, want the urlToImage value", first.ImageURL)
	}
	if first.PublishedAt != "2025-08-01T10:00:00Z" {
		t.Errorf("PublishedAt = %q, want the provider value", first.PublishedAt)
	}
}

func TestNewsAPIFetch_EmptyQueryFallsBackToNews(t *testing.T) {
	srv, got := newNewsAPIServer(t, `{"status":"ok","articles":[]}`)
	p := NewNewsAPI("test-key", WithBaseURL(srv.URL))

	filter := models.Filter{
		Search:     "",
		Sources:    []string{"newsapi"},
		Categories: []string{"general"},
	}
	if _, err := p.Fetch(context.Background(), filter); err != nil {
		t.Fatalf("Fetch() error: %v", err)
	}

	if q := got.Get("q"); q != "news" {
		t.Errorf("q = %q, want the fallback term %q", q, "news")
	}
}

func TestNewsAPIFetch_QueryParameters(t *testing.T) {
	srv, got := newNewsAPIServer(t, `{"status":"ok","articles":[]}`)
	p := NewNewsAPI("test-key", WithBaseURL(srv.URL))

	filter := models.Filter{
		Search:     "elections",
		Categories: []string{"general"},
		DateFrom:   "2025-08-01",
		DateTo:     "2025-08-15",
	}
	if _, err := p.Fetch(context.Background(), filter); err != nil {
		t.Fatalf("Fetch() error: %v", err)
	}

	tests := []struct {
		param string
		want  string
	}{
		{"q", "elections"},
		{"from", "2025-08-01"},
		{"to", "2025-08-15"},
		{"language", "en"},
		{"sortBy", "publishedAt"},
		{"pageSize", "10"},
		{"apiKey", "test-key"},
	}
	for _, tt := range tests {
		if v := got.Get(tt.param); v != tt.want {
			t.Errorf("param %q = %q, want %q", tt.param, v, tt.want)
		}
	}
}

func TestNewsAPIFetch_OmitsEmptyDateBounds(t *testing.T) {
	srv, got := newNewsAPIServer(t, `{"status":"ok","articles":[]}`)
	p := NewNewsAPI("test-key", WithBaseURL(srv.URL))

	filter := models.Filter{Search: "sports", Categories: []string{"general"}}
	if _, err := p.Fetch(context.Background(), filter); err != nil {
		t.Fatalf("Fetch() error: %v", err)
	}

	if got.Has("from") || got.Has("to") {
		t.Errorf("expected no date params, got from=%q to=%q", got.Get("from"), got.Get("to"))
	}
}

func TestNewsAPIFetch_UpstreamError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "rate limited", http.StatusTooManyRequests)
	}))
	t.Cleanup(srv.Close)

	p := NewNewsAPI("test-key", WithBaseURL(srv.URL))
	_, err := p.Fetch(context.Background(), models.Filter{Categories: []string{"general"}})
	if err == nil {
		t.Fatal("expected error for non-2xx response, got nil")
	}
}

func TestNewsAPIFetch_MalformedBody(t *testing.T) {
	srv, _ := newNewsAPIServer(t, `{not json`)
	p := NewNewsAPI("test-key", WithBaseURL(srv.URL))

	_, err := p.Fetch(context.Background(), models.Filter{Categories: []string{"general"}})
	if err == nil {
		t.Fatal("expected error for malformed body, got nil")
	}
}
