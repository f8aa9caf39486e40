package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/minhvu/newsdesk/internal/models"
	"github.com/minhvu/newsdesk/internal/state"
)

// GetView handles GET /api/view. It returns the current view state.
func GetView(store *state.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, store.View())
	}
}

// SetActiveTab handles PUT /api/view/tab. Switching tabs never touches the
// filter.
func SetActiveTab(store *state.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var body struct {
			Tab string `json:"tab"`
		}
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
			writeError(w, http.StatusBadRequest, "Invalid JSON body")
			return
		}
		if !models.ValidTab(body.Tab) {
			writeError(w, http.StatusBadRequest, "Unknown tab")
			return
		}

		store.SetActiveTab(body.Tab)
		writeJSON(w, http.StatusOK, store.View())
	}
}

// ToggleMobileMenu handles POST /api/view/menu/toggle.
func ToggleMobileMenu(store *state.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		store.ToggleMobileMenu()
		writeJSON(w, http.StatusOK, store.View())
	}
}

// ToggleSearch handles POST /api/view/search/toggle.
func ToggleSearch(store *state.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		store.ToggleSearch()
		writeJSON(w, http.StatusOK, store.View())
	}
}
