package model

// CategoryNode is one node of the static two-level taxonomy: a category name
// and its ordered subcategory names. Read-only for the process lifetime.
type CategoryNode struct {
	ID            string   `json:"id"`
	Name          string   `json:"name"`
	Subcategories []string `json:"subcategories"`
}
