package handlers

import (
	"log/slog"
	"net/http"
	"net/url"

	"github.com/minhvu/newsdesk/internal/reader"
)

// ReadArticle handles GET /api/reader?url=<encoded-url>. It extracts the
// readable text of the article page for the reader view.
func ReadArticle() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		target := r.URL.Query().Get("url")
		if target == "" {
			writeError(w, http.StatusBadRequest, "url parameter is required")
			return
		}

		parsed, err := url.ParseRequestURI(target)
		if err != nil || (parsed.Scheme != "http" && parsed.Scheme != "https") {
			writeError(w, http.StatusBadRequest, "url must be a valid HTTP or HTTPS URL")
			return
		}

		view, err := reader.Extract(target)
		if err != nil {
			slog.Warn("failed to extract article", "url", target, "error", err)
			writeError(w, http.StatusBadGateway, "Could not fetch article from URL")
			return
		}

		writeJSON(w, http.StatusOK, view)
	}
}
