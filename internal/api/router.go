package api

import (
	"github.com/go-chi/chi/v5"
	"github.com/minhvu/newsdesk/internal/api/handlers"
	"github.com/minhvu/newsdesk/internal/favorites"
	"github.com/minhvu/newsdesk/internal/state"
)

// NewRouter creates and configures the HTTP router with all API routes.
func NewRouter(fetcher handlers.NewsFetcher, filters *state.Store, favs *favorites.Store) *chi.Mux {
	r := chi.NewRouter()

	// Global middleware.
	r.Use(RequestLogger)
	r.Use(Recovery)
	r.Use(CORS)

	r.Route("/api", func(api chi.Router) {
		api.Get("/news", handlers.GetNews(fetcher, filters))

		api.Get("/filters", handlers.GetFilters(filters))
		api.Put("/filters/search", handlers.SetSearch(filters))
		api.Put("/filters/source", handlers.SetSource(filters))
		api.Put("/filters/category", handlers.SetCategory(filters))
		api.Put("/filters/dates", handlers.SetDateRange(filters))
		api.Post("/filters/reset", handlers.ResetFilters(filters))

		api.Get("/view", handlers.GetView(filters))
		api.Put("/view/tab", handlers.SetActiveTab(filters))
		api.Post("/view/menu/toggle", handlers.ToggleMobileMenu(filters))
		api.Post("/view/search/toggle", handlers.ToggleSearch(filters))

		api.Get("/favorites/{type}", handlers.GetFavorites(favs))
		api.Post("/favorites/{type}/toggle", handlers.ToggleFavorite(favs))

		api.Get("/reader", handlers.ReadArticle())
	})

	return r
}
