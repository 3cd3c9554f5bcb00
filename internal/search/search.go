package search

import (
	"sort"
	"strings"

	"gedapi/internal/model"
)

// Package search implements the pure filtering logic behind the list and
// advanced-search views. Every function is a total predicate application over
// in-memory documents: no I/O, no error paths, and filtering is stable — the
// relative order of matches always follows the input slice.

// All is the sentinel facet value meaning "no restriction".
const All = "All"

// Facets are the independent filter dimensions of the advanced search.
// An empty string or All disables the corresponding predicate.
type Facets struct {
	Query    string
	Category string
	Author   string
	Type     string
	Year     string
}

// matchesQuery reports whether q is a case-insensitive substring of the
// document title or of at least one keyword. An empty query matches all.
func matchesQuery(doc model.Document, q string) bool {
	if q == "" {
		return true
	}
	q = strings.ToLower(q)
	if strings.Contains(strings.ToLower(doc.Title), q) {
		return true
	}
	for _, k := range doc.Keywords {
		if strings.Contains(strings.ToLower(k), q) {
			return true
		}
	}
	return false
}

func unset(v string) bool { return v == "" || v == All }

// ByCategory returns the documents of one category, optionally restricted to
// a subcategory and a free-text query, in input order.
func ByCategory(docs []model.Document, category, subcategory, query string) []model.Document {
	var out []model.Document
	for _, d := range docs {
		if d.Category != category {
			continue
		}
		if !unset(subcategory) && d.Subcategory != subcategory {
			continue
		}
		if !matchesQuery(d, query) {
			continue
		}
		out = append(out, d)
	}
	return out
}

// ByFacets applies the conjunction of all five facet predicates, in input
// order. There is no OR semantics across facets and no scoring.
func ByFacets(docs []model.Document, f Facets) []model.Document {
	var out []model.Document
	for _, d := range docs {
		if !matchesQuery(d, f.Query) {
			continue
		}
		if !unset(f.Category) && d.Category != f.Category {
			continue
		}
		if !unset(f.Author) && d.Author != f.Author {
			continue
		}
		if !unset(f.Type) && string(d.Type) != f.Type {
			continue
		}
		if !unset(f.Year) && !strings.HasPrefix(d.UploadDate, f.Year) {
			continue
		}
		out = append(out, d)
	}
	return out
}

// Subcategories returns All followed by the distinct subcategory labels of
// the given category, in first-seen order.
func Subcategories(docs []model.Document, category string) []string {
	out := []string{All}
	seen := map[string]bool{}
	for _, d := range docs {
		if d.Category != category || seen[d.Subcategory] {
			continue
		}
		seen[d.Subcategory] = true
		out = append(out, d.Subcategory)
	}
	return out
}

// Authors returns the distinct author strings across all documents, in
// first-seen order.
func Authors(docs []model.Document) []string {
	var out []string
	seen := map[string]bool{}
	for _, d := range docs {
		if seen[d.Author] {
			continue
		}
		seen[d.Author] = true
		out = append(out, d.Author)
	}
	return out
}

// Years returns the distinct leading year segments of the upload dates,
// sorted most recent first.
func Years(docs []model.Document) []string {
	var out []string
	seen := map[string]bool{}
	for _, d := range docs {
		year, _, _ := strings.Cut(d.UploadDate, "-")
		if year == "" || seen[year] {
			continue
		}
		seen[year] = true
		out = append(out, year)
	}
	sort.Sort(sort.Reverse(sort.StringSlice(out)))
	return out
}
