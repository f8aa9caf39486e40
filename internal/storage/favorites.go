package storage

import (
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/minhvu/newsdesk/internal/models"
)

// FavoriteStorage persists favorite article collections in the favorites
// key/value table, one JSON-serialized array per collection key. It
// implements the favorites.Storage capability.
type FavoriteStorage struct {
	db *sql.DB
}

// NewFavoriteStorage creates a FavoriteStorage backed by the given database
// connection.
func NewFavoriteStorage(db *sql.DB) *FavoriteStorage {
	return &FavoriteStorage{db: db}
}

// Load reads and unmarshals the collection stored under key. A missing key
// returns ErrNotFound; a stored value that is not valid JSON returns an
// unmarshal error. Callers treat both as an empty collection.
func (s *FavoriteStorage) Load(key string) ([]models.Article, error) {
	var raw string
	err := s.db.QueryRow(
		`SELECT value FROM favorites WHERE key = ?`, key,
	).Scan(&raw)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("loading favorites %q: %w", key, err)
	}

	var articles []models.Article
	if err := json.Unmarshal([]byte(raw), &articles); err != nil {
		return nil, fmt.Errorf("unmarshaling favorites %q: %w", key, err)
	}
	return articles, nil
}

// Save marshals the collection and stores it under key, overwriting any
// previous value.
func (s *FavoriteStorage) Save(key string, articles []models.Article) error {
	data, err := json.Marshal(articles)
	if err != nil {
		return fmt.Errorf("marshaling favorites %q: %w", key, err)
	}

	_, err = s.db.Exec(
		`INSERT INTO favorites (key, value, updated_at)
		 VALUES (?, ?, datetime('now'))
		 ON CONFLICT(key) DO UPDATE SET
			value      = excluded.value,
			updated_at = excluded.updated_at`,
		key, string(data),
	)
	if err != nil {
		return fmt.Errorf("saving favorites %q: %w", key, err)
	}
	return nil
}
