package models

// Favorite collection types. Each names a view over saved articles; every
// collection stores whole Article records regardless of its name.
const (
	FavoriteAuthors    = "authors"
	FavoriteCategories = "categories"
	FavoriteSources    = "sources"
)

// FavoriteTypes lists the three favorite collection types.
func FavoriteTypes() []string {
	return []string{FavoriteAuthors, FavoriteCategories, FavoriteSources}
}

// ValidFavoriteType reports whether t names a favorite collection.
func ValidFavoriteType(t string) bool {
	return t == FavoriteAuthors || t == FavoriteCategories || t == FavoriteSources
}

// View tabs. The feed tab shows aggregated results; the other three show
// the corresponding favorite collections.
const (
	TabFeed       = "feed"
	TabAuthors    = "authors"
	TabCategories = "categories"
	TabSources    = "sources"
)

// ValidTab reports whether t names a view tab.
func ValidTab(t string) bool {
	return t == TabFeed || t == TabAuthors || t == TabCategories || t == TabSources
}
