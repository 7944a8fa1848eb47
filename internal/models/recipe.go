package models

// Ingredient is a free-text recipe line as produced by the assistant. It is
// not tied to the catalog until matched.
type Ingredient struct {
	Name   string `json:"name"`
	Amount string `json:"amount"`
}
