package handlers

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/minhvu/newsdesk/internal/models"
	"github.com/minhvu/newsdesk/internal/state"
)

func TestSetActiveTab(t *testing.T) {
	store := state.NewStore()

	r := httptest.NewRequest(http.MethodPut, "/api/view/tab", bytes.NewBufferString(`{"tab":"authors"}`))
	w := httptest.NewRecorder()

	SetActiveTab(store).ServeHTTP(w, r)

	if w.Code != http.StatusOK {
		t.Fatalf("got status %d, want %d; body: %s", w.Code, http.StatusOK, w.Body.String())
	}
	if got := store.View().ActiveTab; got != models.TabAuthors {
		t.Errorf("ActiveTab = %q, want %q", got, models.TabAuthors)
	}
}

func TestSetActiveTab_Unknown(t *testing.T) {
	store := state.NewStore()

	r := httptest.NewRequest(http.MethodPut, "/api/view/tab", bytes.NewBufferString(`{"tab":"settings"}`))
	w := httptest.NewRecorder()

	SetActiveTab(store).ServeHTTP(w, r)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("got status %d, want %d", w.Code, http.StatusBadRequest)
	}
	if got := store.View().ActiveTab; got != models.TabFeed {
		t.Errorf("ActiveTab = %q, want unchanged %q", got, models.TabFeed)
	}
}

func TestToggleMobileMenu(t *testing.T) {
	store := state.NewStore()

	r := httptest.NewRequest(http.MethodPost, "/api/view/menu/toggle", nil)
	w := httptest.NewRecorder()

	ToggleMobileMenu(store).ServeHTTP(w, r)

	if w.Code != http.StatusOK {
		t.Fatalf("got status %d, want %d", w.Code, http.StatusOK)
	}
	if !store.View().IsMobileMenuOpen {
		t.Error("IsMobileMenuOpen = false after toggle, want true")
	}
}

func TestToggleSearch(t *testing.T) {
	store := state.NewStore()

	r := httptest.NewRequest(http.MethodPost, "/api/view/search/toggle", nil)
	w := httptest.NewRecorder()

	ToggleSearch(store).ServeHTTP(w, r)

	if w.Code != http.StatusOK {
		t.Fatalf("got status %d, want %d", w.Code, http.StatusOK)
	}
	if !store.View().IsSearchOpen {
		t.Error("IsSearchOpen = false after toggle, want true")
	}
}
