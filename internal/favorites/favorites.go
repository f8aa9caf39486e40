// Package favorites holds the three favorite article collections and keeps
// them synchronized to durable storage.
package favorites

import (
	"log/slog"
	"sync"

	"github.com/minhvu/newsdesk/internal/models"
)

// Durable-storage keys, one per favorite collection.
const (
	keyAuthors    = "favoriteAuthors"
	keyCategories = "favoriteCategories"
	keySources    = "favoriteSources"
)

// Storage is the durable-storage capability favorites are persisted
// through. Load returns the articles stored under key; Save overwrites
// them. Implementations may return an error for missing or malformed data;
// the Store treats either as an empty collection.
type Storage interface {
	Load(key string) ([]models.Article, error)
	Save(key string, articles []models.Article) error
}

// Store holds the three favorite collections. Mutations go through Toggle
// only; each mutation is written to storage immediately, best-effort. A nil
// storage degrades to session-only favorites: collections hydrate empty and
// writes are skipped.
type Store struct {
	mu          sync.Mutex
	storage     Storage
	collections map[string][]models.Article
}

// NewStore creates a Store, hydrating each collection from storage. Missing
// or unparseable stored values yield empty collections; hydration never
// fails.
func NewStore(storage Storage) *Store {
	s := &Store{
		storage:     storage,
		collections: make(map[string][]models.Article, 3),
	}
	for _, typ := range models.FavoriteTypes() {
		s.collections[typ] = s.hydrate(storageKey(typ))
	}
	return s
}

func (s *Store) hydrate(key string) []models.Article {
	if s.storage == nil {
		return []models.Article{}
	}
	articles, err := s.storage.Load(key)
	if err != nil {
		slog.Warn("could not load favorites, starting empty", "key", key, "error", err)
		return []models.Article{}
	}
	if articles == nil {
		articles = []models.Article{}
	}
	return articles
}

// Get returns a copy of the favorite collection for the given type. Unknown
// types return an empty collection.
func (s *Store) Get(typ string) []models.Article {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]models.Article{}, s.collections[typ]...)
}

// Toggle removes the article from the collection if an entry with the same
// ID is present, and appends it otherwise. The updated collection is
// persisted immediately; a storage failure is logged and the in-memory
// update stands.
func (s *Store) Toggle(typ string, article models.Article) {
	s.mu.Lock()
	defer s.mu.Unlock()

	current := s.collections[typ]
	updated := make([]models.Article, 0, len(current)+1)
	removed := false
	for _, a := range current {
		if a.ID == article.ID {
			removed = true
			continue
		}
		updated = append(updated, a)
	}
	if !removed {
		updated = append(updated, article)
	}
	s.collections[typ] = updated

	if s.storage == nil {
		return
	}
	if err := s.storage.Save(storageKey(typ), updated); err != nil {
		slog.Warn("could not persist favorites", "key", storageKey(typ), "error", err)
	}
}

// storageKey maps a favorite type to its durable-storage key.
func storageKey(typ string) string {
	switch typ {
	case models.FavoriteAuthors:
		return keyAuthors
	case models.FavoriteCategories:
		return keyCategories
	case models.FavoriteSources:
		return keySources
	}
	return ""
}
