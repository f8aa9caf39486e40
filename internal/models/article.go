package models

// Article is the canonical article shape all providers are normalized into.
// ID is globally unique: each adapter prefixes its provider tag onto the
// provider's own identifier (or URL for providers without a native id), so
// re-fetching the same story yields the same ID and two providers never
// collide.
type Article struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description,omitempty"`
	URL         string `json:"url"`
	ImageURL    string `json:"imageUrl,omitempty"`
	Source      string `json:"source"`
	Category    string `json:"category"`
	Author      string `json:"author,omitempty"`
	PublishedAt string `json:"publishedAt"`
}

// Provider keys used in Filter.Sources. These are internal identifiers,
// distinct from the human-readable Source field stamped onto articles.
const (
	SourceNewsAPI  = "newsapi"
	SourceGuardian = "guardian"
	SourceNYT      = "nytimes"
)

// AllSources lists every supported provider key, in the order providers are
// queried when no source filter narrows the set.
func AllSources() []string {
	return []string{SourceNewsAPI, SourceGuardian, SourceNYT}
}

// CategoryGeneral is the sentinel category meaning "no category filter".
// It is never sent upstream as a query term.
const CategoryGeneral = "general"

// Categories lists the supported filter categories.
func Categories() []string {
	return []string{
		CategoryGeneral,
		"business",
		"technology",
		"sports",
		"entertainment",
		"science",
		"health",
	}
}

// ValidCategory reports whether c is a supported category.
func ValidCategory(c string) bool {
	for _, v := range Categories() {
		if v == c {
			return true
		}
	}
	return false
}

// ValidSource reports whether key is a supported provider key.
func ValidSource(key string) bool {
	for _, v := range AllSources() {
		if v == key {
			return true
		}
	}
	return false
}
