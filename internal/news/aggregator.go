// Package news fans a filter out to the configured provider adapters and
// merges their results into one feed.
package news

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/minhvu/newsdesk/internal/models"
	"github.com/minhvu/newsdesk/internal/providers"
	"golang.org/x/sync/errgroup"
)

// Aggregator runs provider fetches concurrently and concatenates their
// results. The join is all-or-nothing: if any selected provider fails, the
// whole fetch fails, so the feed never silently shows an incomplete
// cross-section.
type Aggregator struct {
	registry map[string]providers.Provider
}

// NewAggregator creates an Aggregator over the given providers, indexed by
// their keys.
func NewAggregator(provs ...providers.Provider) *Aggregator {
	registry := make(map[string]providers.Provider, len(provs))
	for _, p := range provs {
		registry[p.Key()] = p
	}
	return &Aggregator{registry: registry}
}

// FetchNews queries every provider named in filter.Sources concurrently and
// returns the concatenation of their results in source order. Unknown
// provider keys are silently ignored. The first provider error cancels the
// remaining fetches and fails the call; no partial results are returned.
func (a *Aggregator) FetchNews(ctx context.Context, filter models.Filter) ([]models.Article, error) {
	var selected []providers.Provider
	for _, key := range filter.Sources {
		p, ok := a.registry[key]
		if !ok {
			continue
		}
		selected = append(selected, p)
	}

	// Position-indexed results keep the merge in source order rather than
	// completion order.
	results := make([][]models.Article, len(selected))

	g, ctx := errgroup.WithContext(ctx)
	for i, p := range selected {
		g.Go(func() error {
			articles, err := p.Fetch(ctx, filter)
			if err != nil {
				return fmt.Errorf("provider %s: %w", p.Key(), err)
			}
			results[i] = articles
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	var merged []models.Article
	for i, articles := range results {
		merged = append(merged, articles...)
		slog.Debug("fetched articles", "provider", selected[i].Key(), "count", len(articles))
	}
	return merged, nil
}
