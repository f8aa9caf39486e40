package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/minhvu/newsdesk/internal/favorites"
	"github.com/minhvu/newsdesk/internal/models"
)

// GetFavorites handles GET /api/favorites/{type}. It returns the favorite
// collection for the given type.
func GetFavorites(store *favorites.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		typ := chi.URLParam(r, "type")
		if !models.ValidFavoriteType(typ) {
			writeError(w, http.StatusNotFound, "Unknown favorite type")
			return
		}

		writeJSON(w, http.StatusOK, store.Get(typ))
	}
}

// ToggleFavorite handles POST /api/favorites/{type}/toggle. The article in
// the request body is removed from the collection if already present, and
// added otherwise.
func ToggleFavorite(store *favorites.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		typ := chi.URLParam(r, "type")
		if !models.ValidFavoriteType(typ) {
			writeError(w, http.StatusNotFound, "Unknown favorite type")
			return
		}

		var article models.Article
		if err := json.NewDecoder(r.Body).Decode(&article); err != nil {
			writeError(w, http.StatusBadRequest, "Invalid JSON body")
			return
		}
		if article.ID == "" {
			writeError(w, http.StatusBadRequest, "article id is required")
			return
		}

		store.Toggle(typ, article)
		writeJSON(w, http.StatusOK, store.Get(typ))
	}
}
