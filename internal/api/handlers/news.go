package handlers

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/minhvu/newsdesk/internal/models"
	"github.com/minhvu/newsdesk/internal/state"
)

// NewsFetcher is the aggregation contract the news handler depends on.
type NewsFetcher interface {
	FetchNews(ctx context.Context, filter models.Filter) ([]models.Article, error)
}

// GetNews handles GET /api/news. It fetches the feed for the store's
// current filter. Aggregation is all-or-nothing, so any provider failure
// surfaces as a single generic error with no per-provider attribution.
func GetNews(fetcher NewsFetcher, filters *state.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		filter := filters.Filter()

		articles, err := fetcher.FetchNews(r.Context(), filter)
		if err != nil {
			slog.Error("failed to fetch news", "error", err)
			writeError(w, http.StatusBadGateway, "Error loading articles")
			return
		}

		if articles == nil {
			articles = []models.Article{}
		}

		writeJSON(w, http.StatusOK, articles)
	}
}
