package providers

import (
	"context"
	"fmt"
	"net/url"
	"strings"

	"github.com/minhvu/newsdesk/internal/models"
)

const (
	nytBaseURL     = "https://api.nytimes.com/svc/search/v2"
	nytDisplayName = "The New York Times"
	nytImagePrefix = "https://www.nytimes.com/"
)

// NYT fetches articles from the New York Times article search API.
type NYT struct {
	apiKey string
	client clientConfig
}

// NewNYT creates a NYT adapter with the given API key.
func NewNYT(apiKey string, opts ...Option) *NYT {
	return &NYT{
		apiKey: apiKey,
		client: newClientConfig(nytBaseURL, opts),
	}
}

// Key returns the provider key used in Filter.Sources.
func (p *NYT) Key() string {
	return models.SourceNYT
}

type nytResponse struct {
	Response struct {
		Docs []nytDoc `json:"docs"`
	} `json:"response"`
}

type nytDoc struct {
	ID       string `json:"_id"`
	Headline struct {
		Main string `json:"main"`
	} `json:"headline"`
	Abstract string `json:"abstract"`
	WebURL   string `json:"web_url"`
	PubDate  string `json:"pub_date"`
	Byline   struct {
		Original string `json:"original"`
	} `json:"byline"`
	Multimedia []struct {
		URL string `json:"url"`
	} `json:"multimedia"`
}

// Fetch queries the NYT article search endpoint. The endpoint has no page
// size parameter and ships compact YYYYMMDD date bounds, so dates are
// re-encoded and results are truncated client-side to one page.
func (p *NYT) Fetch(ctx context.Context, filter models.Filter) ([]models.Article, error) {
	params := url.Values{}
	params.Set("q", BuildQuery(filter))
	if filter.DateFrom != "" {
		params.Set("begin_date", nytDate(filter.DateFrom))
	}
	if filter.DateTo != "" {
		params.Set("end_date", nytDate(filter.DateTo))
	}
	params.Set("api-key", p.apiKey)

	var resp nytResponse
	if err := getJSON(ctx, p.client.httpClient, p.client.baseURL, "/articlesearch.json", params, &resp); err != nil {
		return nil, fmt.Errorf("fetching from NYT: %w", err)
	}

	docs := resp.Response.Docs
	if len(docs) > pageSize {
		docs = docs[:pageSize]
	}

	category := filter.Category()
	articles := make([]models.Article, 0, len(docs))
	for _, d := range docs {
		var imageURL string
		if len(d.Multimedia) > 0 && d.Multimedia[0].URL != "" {
			imageURL = nytImagePrefix + d.Multimedia[0].URL
		}
		articles = append(articles, models.Article{
			ID:          "nyt-" + d.ID,
			Title:       d.Headline.Main,
			Description: d.Abstract,
			URL:         d.WebURL,
			ImageURL:    imageURL,
			Source:      nytDisplayName,
			Category:    category,
			Author:      d.Byline.Original,
			PublishedAt: d.PubDate,
		})
	}
	return articles, nil
}

// nytDate converts an ISO YYYY-MM-DD date to the compact YYYYMMDD form the
// NYT API expects.
func nytDate(iso string) string {
	return strings.ReplaceAll(iso, "-", "")
}
