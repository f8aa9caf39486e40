// Package state holds the current filter criteria and view state. The Store
// is the single source of truth consumed by query triggering and by
// filter-editing controls; it is explicitly constructed and injected so
// tests can run isolated instances.
package state

import (
	"sync"

	"github.com/minhvu/newsdesk/internal/models"
)

// View is a snapshot of the transient view state. It is never persisted.
type View struct {
	ActiveTab        string `json:"activeTab"`
	IsMobileMenuOpen bool   `json:"isMobileMenuOpen"`
	IsSearchOpen     bool   `json:"isSearchOpen"`
}

// Store holds the filter and view state. All operations are atomic: a
// caller never observes a partially applied update.
type Store struct {
	mu               sync.Mutex
	filter           models.Filter
	activeTab        string
	isMobileMenuOpen bool
	isSearchOpen     bool
}

// NewStore creates a Store with the default filter and the feed tab active.
func NewStore() *Store {
	return &Store{
		filter:    models.DefaultFilter(),
		activeTab: models.TabFeed,
	}
}

// Filter returns a copy of the current filter.
func (s *Store) Filter() models.Filter {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.filter.Clone()
}

// View returns a snapshot of the current view state.
func (s *Store) View() View {
	s.mu.Lock()
	defer s.mu.Unlock()
	return View{
		ActiveTab:        s.activeTab,
		IsMobileMenuOpen: s.isMobileMenuOpen,
		IsSearchOpen:     s.isSearchOpen,
	}
}

// SetSearch replaces the free-text search term verbatim. Debouncing and the
// minimum-length rule are the caller's contract, not the store's.
func (s *Store) SetSearch(search string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.filter.Search = search
}

// ToggleSource replaces the source selection with the single given provider
// key. Despite the name this is single-select, not additive: downstream
// query construction assumes one active source.
func (s *Store) ToggleSource(source string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.filter.Sources = []string{source}
}

// ToggleCategory replaces the category selection with the single given
// category, with the same single-select semantics as ToggleSource.
func (s *Store) ToggleCategory(category string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.filter.Categories = []string{category}
}

// SetDateRange sets both date bounds atomically. An empty string clears
// that bound.
func (s *Store) SetDateRange(from, to string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.filter.DateFrom = from
	s.filter.DateTo = to
}

// ResetFilters restores the filter to its initial value: empty search, all
// providers, the "general" category, no date bounds.
func (s *Store) ResetFilters() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.filter = models.DefaultFilter()
}

// SetActiveTab switches the rendered view. It has no effect on the filter.
func (s *Store) SetActiveTab(tab string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.activeTab = tab
}

// ToggleMobileMenu flips the mobile menu flag.
func (s *Store) ToggleMobileMenu() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.isMobileMenuOpen = !s.isMobileMenuOpen
}

// ToggleSearch flips the search panel flag.
func (s *Store) ToggleSearch() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.isSearchOpen = !s.isSearchOpen
}
