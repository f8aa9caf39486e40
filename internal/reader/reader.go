// Package reader extracts readable article text for the reader view.
package reader

import (
	"fmt"
	"net/http"
	"strings"
	"time"

	readability "github.com/go-shiori/go-readability"
)

const (
	extractTimeout = 30 * time.Second
	maxWords       = 5000
)

// View is the readable rendition of an article page.
type View struct {
	Title          string `json:"title"`
	SiteName       string `json:"siteName,omitempty"`
	Excerpt        string `json:"excerpt,omitempty"`
	TextContent    string `json:"textContent"`
	ReadingMinutes int    `json:"readingMinutes"`
}

// browserHeaders sets browser-like request headers so sites that check
// Accept or User-Agent don't reject the request.
func browserHeaders(r *http.Request) {
	r.Header.Set("Accept", "text/html,application/xhtml+xml,application/xml;q=0.9,*/*;q=0.8")
	r.Header.Set("User-Agent", "Mozilla/5.0 (compatible; newsdesk/1.0)")
}

// Extract fetches the page at the given URL and returns its main readable
// content. Text is truncated to 5000 words.
func Extract(url string) (*View, error) {
	article, err := readability.FromURL(url, extractTimeout, browserHeaders)
	if err != nil {
		return nil, fmt.Errorf("readability extraction: %w", err)
	}

	text := truncateWords(article.TextContent, maxWords)
	return &View{
		Title:          article.Title,
		SiteName:       article.SiteName,
		Excerpt:        article.Excerpt,
		TextContent:    text,
		ReadingMinutes: ReadingTime(text),
	}, nil
}

// wpm is an average reading speed for news prose.
const wpm = 238

// ReadingTime estimates reading time in minutes for the given text, with a
// minimum of 1 minute for non-empty text.
func ReadingTime(text string) int {
	words := len(strings.Fields(text))
	if words == 0 {
		return 0
	}
	minutes := (words + wpm - 1) / wpm
	if minutes < 1 {
		minutes = 1
	}
	return minutes
}

// truncateWords returns the first maxWords whitespace-delimited words from s.
// If s contains fewer than maxWords words, it is returned unchanged.
func truncateWords(s string, maxWords int) string {
	words := strings.Fields(s)
	if len(words) <= maxWords {
		return s
	}
	return strings.Join(words[:maxWords], " ")
}
