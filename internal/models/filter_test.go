package models

import (
	"reflect"
	"testing"
)

func TestDefaultFilter(t *testing.T) {
	f := DefaultFilter()

	if f.Search != "" {
		t.Errorf("Search = %q, want empty", f.Search)
	}
	if !reflect.DeepEqual(f.Sources, []string{"newsapi", "guardian", "nytimes"}) {
		t.Errorf("Sources = %v, want all three providers", f.Sources)
	}
	if !reflect.DeepEqual(f.Categories, []string{"general"}) {
		t.Errorf("Categories = %v, want [general]", f.Categories)
	}
}

func TestFilterCategory(t *testing.T) {
	if got := (Filter{}).Category(); got != CategoryGeneral {
		t.Errorf("Category() = %q, want %q for no categories", got, CategoryGeneral)
	}
	if got := (Filter{Categories: []string{"science", "health"}}).Category(); got != "science" {
		t.Errorf("Category() = %q, want the first entry", got)
	}
}

func TestFilterClone_Independent(t *testing.T) {
	f := DefaultFilter()
	c := f.Clone()

	c.Sources[0] = "mutated"
	c.Categories[0] = "mutated"

	if f.Sources[0] != "newsapi" || f.Categories[0] != "general" {
		t.Errorf("clone shares slices with original: %+v", f)
	}
}

func TestValidators(t *testing.T) {
	if !ValidSource("guardian") || ValidSource("bloomberg") {
		t.Error("ValidSource misclassifies provider keys")
	}
	if !ValidCategory("science") || ValidCategory("gossip") {
		t.Error("ValidCategory misclassifies categories")
	}
	if !ValidFavoriteType("authors") || ValidFavoriteType("bookmarks") {
		t.Error("ValidFavoriteType misclassifies collection types")
	}
	if !ValidTab("feed") || ValidTab("settings") {
		t.Error("ValidTab misclassifies tabs")
	}
}
