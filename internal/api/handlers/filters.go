package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/minhvu/newsdesk/internal/models"
	"github.com/minhvu/newsdesk/internal/state"
)

// GetFilters handles GET /api/filters. It returns the current filter.
func GetFilters(filters *state.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, filters.Filter())
	}
}

// SetSearch handles PUT /api/filters/search. The search term is applied
// verbatim; debouncing and the minimum-length rule belong to the client.
func SetSearch(filters *state.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var body struct {
			Search string `json:"search"`
		}
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
			writeError(w, http.StatusBadRequest, "Invalid JSON body")
			return
		}

		filters.SetSearch(body.Search)
		writeJSON(w, http.StatusOK, filters.Filter())
	}
}

// SetSource handles PUT /api/filters/source. It selects the single active
// provider.
func SetSource(filters *state.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var body struct {
			Source string `json:"source"`
		}
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
			writeError(w, http.StatusBadRequest, "Invalid JSON body")
			return
		}
		if !models.ValidSource(body.Source) {
			writeError(w, http.StatusBadRequest, "Unknown source")
			return
		}

		filters.ToggleSource(body.Source)
		writeJSON(w, http.StatusOK, filters.Filter())
	}
}

// SetCategory handles PUT /api/filters/category. It selects the single
// active category.
func SetCategory(filters *state.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var body struct {
			Category string `json:"category"`
		}
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
			writeError(w, http.StatusBadRequest, "Invalid JSON body")
			return
		}
		if !models.ValidCategory(body.Category) {
			writeError(w, http.StatusBadRequest, "Unknown category")
			return
		}

		filters.ToggleCategory(body.Category)
		writeJSON(w, http.StatusOK, filters.Filter())
	}
}

// SetDateRange handles PUT /api/filters/dates. Both bounds are set
// atomically; an absent or empty bound clears it.
func SetDateRange(filters *state.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var body struct {
			From string `json:"from"`
			To   string `json:"to"`
		}
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
			writeError(w, http.StatusBadRequest, "Invalid JSON body")
			return
		}

		filters.SetDateRange(body.From, body.To)
		writeJSON(w, http.StatusOK, filters.Filter())
	}
}

// ResetFilters handles POST /api/filters/reset. It restores the initial
// filter value.
func ResetFilters(filters *state.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		filters.ResetFilters()
		writeJSON(w, http.StatusOK, filters.Filter())
	}
}
