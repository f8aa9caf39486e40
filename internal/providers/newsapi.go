package providers

import (
	"context"
	"fmt"
	"net/url"
	"strconv"

	"github.com/minhvu/newsdesk/internal/models"
)

const (
	newsAPIBaseURL     = "https://newsapi.org/v2"
	newsAPIDisplayName = "NewsAPI"

	// NewsAPI rejects an empty q parameter, so an unfiltered feed falls
	// back to this literal term.
	newsAPIFallbackQuery = "news"

	pageSize = 10
)

// NewsAPI fetches articles from the NewsAPI /everything endpoint.
type NewsAPI struct {
	apiKey string
	client clientConfig
}

// NewNewsAPI creates a NewsAPI adapter with the given API key.
func NewNewsAPI(apiKey string, opts ...Option) *NewsAPI {
	return &NewsAPI{
		apiKey: apiKey,
		client: newClientConfig(newsAPIBaseURL, opts),
	}
}

// Key returns the provider key used in Filter.Sources.
func (p *NewsAPI) Key() string {
	return models.SourceNewsAPI
}

type newsAPIResponse struct {
	Status   string           `json:"status"`
	Articles []newsAPIArticle `json:"articles"`
}

type newsAPIArticle struct {
	Author      string `json:"author"`
	Title       string `json:"title"`
	Description string `json:"description"`
	URL         string `json:"url"`
	URLToImage  string `json:"urlToImage"`
	PublishedAt string `json:"publishedAt"`
}

// Fetch queries NewsAPI for one page of English articles sorted by
// publication date.
func (p *NewsAPI) Fetch(ctx context.Context, filter models.Filter) ([]models.Article, error) {
	query := BuildQuery(filter)
	if query == "" {
		query = newsAPIFallbackQuery
	}

	params := url.Values{}
	params.Set("q", query)
	if filter.DateFrom != "" {
		params.Set("from", filter.DateFrom)
	}
	if filter.DateTo != "" {
		params.Set("to", filter.DateTo)
	}
	params.Set("language", "en")
	params.Set("sortBy", "publishedAt")
	params.Set("pageSize", strconv.Itoa(pageSize))
	params.Set("apiKey", p.apiKey)

	var resp newsAPIResponse
	if err := getJSON(ctx, p.client.httpClient, p.client.baseURL, "/everything", params, &resp); err != nil {
		return nil, fmt.Errorf("fetching from NewsAPI: %w", err)
	}

	category := filter.Category()
	articles := make([]models.Article, 0, len(resp.Articles))
	for _, a := range resp.Articles {
		articles = append(articles, models.Article{
			ID:          "newsapi-" + a.URL,
			Title:       a.Title,
			Description: a.Description,
			URL:         a.URL,
			ImageURL:    a.URLToImage,
			Source:      newsAPIDisplayName,
			Category:    category,
			Author:      a.Author,
			PublishedAt: a.PublishedAt,
		})
	}
	return articles, nil
}
