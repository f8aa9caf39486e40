// Package providers contains one adapter per upstream news API. Each adapter
// translates the provider-agnostic filter into that provider's query
// parameter vocabulary, issues the request, and maps the raw response into
// the canonical Article shape.
package providers

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/minhvu/newsdesk/internal/models"
)

const httpTimeout = 30 * time.Second

// Provider is the contract every adapter implements. Fetch returns at most
// one page (10 results) of articles matching the filter, or an error if the
// upstream request fails in any way; adapters never retry and never return
// partial results.
type Provider interface {
	Key() string
	Fetch(ctx context.Context, filter models.Filter) ([]models.Article, error)
}

// HTTPClient is the transport interface adapters use, allowing injection
// for testing.
type HTTPClient interface {
	Do(req *http.Request) (*http.Response, error)
}

// Option configures an adapter.
type Option func(*clientConfig)

type clientConfig struct {
	httpClient HTTPClient
	baseURL    string
}

// WithHTTPClient sets a custom HTTP client.
func WithHTTPClient(c HTTPClient) Option {
	return func(cfg *clientConfig) {
		cfg.httpClient = c
	}
}

// WithBaseURL overrides the provider's base URL (useful for testing).
func WithBaseURL(u string) Option {
	return func(cfg *clientConfig) {
		cfg.baseURL = strings.TrimRight(u, "/")
	}
}

func newClientConfig(defaultBaseURL string, opts []Option) clientConfig {
	cfg := clientConfig{
		httpClient: &http.Client{Timeout: httpTimeout},
		baseURL:    defaultBaseURL,
	}
	for _, opt := range opts {
		opt(&cfg)
	}
	return cfg
}

// BuildQuery combines the free-text search with the active category into a
// single space-joined query term. The "general" category means "no category
// filter" and is never included. Empty components are dropped, so the
// result may be empty.
func BuildQuery(filter models.Filter) string {
	terms := make([]string, 0, 2)
	if filter.Search != "" {
		terms = append(terms, filter.Search)
	}
	if c := filter.Category(); c != models.CategoryGeneral {
		terms = append(terms, c)
	}
	return strings.Join(terms, " ")
}

// getJSON issues a GET to base+path with the given query parameters and
// decodes the JSON response body into dest. Non-2xx responses are errors.
func getJSON(ctx context.Context, client HTTPClient, base, path string, params url.Values, dest any) error {
	reqURL := base + path + "?" + params.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return fmt.Errorf("%s returned HTTP %d", base+path, resp.StatusCode)
	}

	if err := json.NewDecoder(resp.Body).Decode(dest); err != nil {
		return fmt.Errorf("decoding response from %s: %w", base+path, err)
	}
	return nil
}
