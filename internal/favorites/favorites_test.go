package favorites

import (
	"errors"
	"reflect"
	"testing"

	"github.com/minhvu/newsdesk/internal/models"
)

// fakeStorage is an in-memory Storage for tests. Keys in loadErrs fail on
// Load; saveErr fails every Save.
type fakeStorage struct {
	data     map[string][]models.Article
	loadErrs map[string]error
	saveErr  error
	saves    int
}

func newFakeStorage() *fakeStorage {
	return &fakeStorage{
		data:     make(map[string][]models.Article),
		loadErrs: make(map[string]error),
	}
}

func (f *fakeStorage) Load(key string) ([]models.Article, error) {
	if err := f.loadErrs[key]; err != nil {
		return nil, err
	}
	return f.data[key], nil
}

func (f *fakeStorage) Save(key string, articles []models.Article) error {
	if f.saveErr != nil {
		return f.saveErr
	}
	f.saves++
	f.data[key] = articles
	return nil
}

func article(id string) models.Article {
	return models.Article{ID: id, Title: "Story " + id, URL: "https://example.com/" + id}
}

func TestToggle_AddThenRemove(t *testing.T) {
	s := NewStore(newFakeStorage())
	a := article("guardian-1")

	s.Toggle(models.FavoriteAuthors, a)
	if got := s.Get(models.FavoriteAuthors); len(got) != 1 || got[0].ID != a.ID {
		t.Fatalf("after add got %v, want [%s]", got, a.ID)
	}

	// Toggling the same article again returns the collection to its prior
	// state.
	s.Toggle(models.FavoriteAuthors, a)
	if got := s.Get(models.FavoriteAuthors); len(got) != 0 {
		t.Fatalf("after second toggle got %v, want empty", got)
	}
}

func TestToggle_NeverDuplicatesIDs(t *testing.T) {
	s := NewStore(newFakeStorage())
	a, b := article("newsapi-1"), article("nyt-2")

	sequence := []models.Article{a, b, a, a, b, b, a}
	for _, art := range sequence {
		s.Toggle(models.FavoriteCategories, art)
	}

	got := s.Get(models.FavoriteCategories)
	seen := make(map[string]int)
	for _, art := range got {
		seen[art.ID]++
		if seen[art.ID] > 1 {
			t.Fatalf("id %q appears %d times", art.ID, seen[art.ID])
		}
	}
}

func TestToggle_CollectionsAreIndependent(t *testing.T) {
	s := NewStore(newFakeStorage())
	a := article("guardian-1")

	s.Toggle(models.FavoriteAuthors, a)

	if got := s.Get(models.FavoriteCategories); len(got) != 0 {
		t.Errorf("categories collection = %v, want empty", got)
	}
	if got := s.Get(models.FavoriteSources); len(got) != 0 {
		t.Errorf("sources collection = %v, want empty", got)
	}
}

func TestToggle_PersistsEveryMutation(t *testing.T) {
	storage := newFakeStorage()
	s := NewStore(storage)

	s.Toggle(models.FavoriteSources, article("a"))
	s.Toggle(models.FavoriteSources, article("b"))
	s.Toggle(models.FavoriteSources, article("a"))

	if storage.saves != 3 {
		t.Errorf("got %d saves, want one per mutation (3)", storage.saves)
	}
	stored := storage.data["favoriteSources"]
	if len(stored) != 1 || stored[0].ID != "b" {
		t.Errorf("stored collection = %v, want [b]", stored)
	}
}

func TestNewStore_HydratesFromStorage(t *testing.T) {
	storage := newFakeStorage()
	storage.data["favoriteAuthors"] = []models.Article{article("x"), article("y")}

	s := NewStore(storage)

	got := s.Get(models.FavoriteAuthors)
	want := []models.Article{article("x"), article("y")}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("hydrated collection = %v, want %v", got, want)
	}
}

func TestNewStore_LoadErrorYieldsEmptyCollection(t *testing.T) {
	storage := newFakeStorage()
	storage.loadErrs["favoriteSources"] = errors.New("unmarshaling favorites: invalid character 'n'")
	storage.data["favoriteAuthors"] = []models.Article{article("x")}

	s := NewStore(storage)

	if got := s.Get(models.FavoriteSources); len(got) != 0 {
		t.Errorf("sources collection = %v, want empty after load error", got)
	}
	// Other collections are unaffected.
	if got := s.Get(models.FavoriteAuthors); len(got) != 1 {
		t.Errorf("authors collection = %v, want the stored article", got)
	}
}

func TestNilStorage_SessionOnlyFavorites(t *testing.T) {
	s := NewStore(nil)

	a := article("guardian-1")
	s.Toggle(models.FavoriteAuthors, a)

	if got := s.Get(models.FavoriteAuthors); len(got) != 1 {
		t.Fatalf("in-memory toggle must still work without storage, got %v", got)
	}
}

func TestToggle_SaveFailureKeepsInMemoryUpdate(t *testing.T) {
	storage := newFakeStorage()
	storage.saveErr = errors.New("disk full")
	s := NewStore(storage)

	s.Toggle(models.FavoriteSources, article("a"))

	if got := s.Get(models.FavoriteSources); len(got) != 1 {
		t.Errorf("collection = %v, want the in-memory update to stand", got)
	}
}

func TestGet_ReturnsCopy(t *testing.T) {
	s := NewStore(newFakeStorage())
	s.Toggle(models.FavoriteAuthors, article("a"))

	got := s.Get(models.FavoriteAuthors)
	got[0].ID = "mutated"

	if s.Get(models.FavoriteAuthors)[0].ID != "a" {
		t.Error("store collection mutated through returned copy")
	}
}

func TestGet_UnknownTypeIsEmpty(t *testing.T) {
	s := NewStore(newFakeStorage())
	if got := s.Get("bookmarks"); len(got) != 0 {
		t.Errorf("unknown type = %v, want empty", got)
	}
}
