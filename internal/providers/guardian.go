package providers

import (
	"context"
	"fmt"
	"net/url"
	"strconv"

	"github.com/minhvu/newsdesk/internal/models"
)

const (
	guardianBaseURL     = "https://content.guardianapis.com"
	guardianDisplayName = "The Guardian"
)

// Guardian fetches articles from the Guardian content API.
type Guardian struct {
	apiKey string
	client clientConfig
}

// NewGuardian creates a Guardian adapter with the given API key.
func NewGuardian(apiKey string, opts ...Option) *Guardian {
	return &Guardian{
		apiKey: apiKey,
		client: newClientConfig(guardianBaseURL, opts),
	}
}

// Key returns the provider key used in Filter.Sources.
func (p *Guardian) Key() string {
	return models.SourceGuardian
}

type guardianResponse struct {
	Response struct {
		Results []guardianResult `json:"results"`
	} `json:"response"`
}

type guardianResult struct {
	ID                 string `json:"id"`
	WebTitle           string `json:"webTitle"`
	WebURL             string `json:"webUrl"`
	WebPublicationDate string `json:"webPublicationDate"`
	Fields             struct {
		TrailText string `json:"trailText"`
		Thumbnail string `json:"thumbnail"`
		Byline    string `json:"byline"`
	} `json:"fields"`
}

// Fetch queries the Guardian search endpoint for one page of articles.
// Unlike NewsAPI, the Guardian accepts an empty query term.
func (p *Guardian) Fetch(ctx context.Context, filter models.Filter) ([]models.Article, error) {
	params := url.Values{}
	params.Set("q", BuildQuery(filter))
	if filter.DateFrom != "" {
		params.Set("from-date", filter.DateFrom)
	}
	if filter.DateTo != "" {
		params.Set("to-date", filter.DateTo)
	}
	params.Set("show-fields", "all")
	params.Set("page-size", strconv.Itoa(pageSize))
	params.Set("api-key", p.apiKey)

	var resp guardianResponse
	if err := getJSON(ctx, p.client.httpClient, p.client.baseURL, "/search", params, &resp); err != nil {
		return nil, fmt.Errorf("fetching from the Guardian: %w", err)
	}

	category := filter.Category()
	articles := make([]models.Article, 0, len(resp.Response.Results))
	for _, r := range resp.Response.Results {
		articles = append(articles, models.Article{
			ID:          "guardian-" + r.ID,
			Title:       r.WebTitle,
			Description: r.Fields.TrailText,
			URL:         r.WebURL,
			ImageURL:    r.Fields.Thumbnail,
			Source:      guardianDisplayName,
			Category:    category,
			Author:      r.Fields.Byline,
			PublishedAt: r.WebPublicationDate,
		})
	}
	return articles, nil
}
