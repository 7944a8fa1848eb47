// Package matcher links free-text recipe ingredients to catalog products.
//
// A product matches when its name contains the trimmed ingredient name, or
// the ingredient name contains the product name. The first matching product
// in catalog order wins. No case folding, tokenising or ranking is applied.
package matcher

import (
	"strings"

	"storefront/internal/models"
)

// Match returns the first product in catalog that matches ingredientName.
func Match(ingredientName string, catalog []models.Product) (models.Product, bool) {
	name := strings.TrimSpace(ingredientName)
	for _, p := range catalog {
		if strings.Contains(p.Name, name) || strings.Contains(name, p.Name) {
			return p, true
		}
	}
	return models.Product{}, false
}

// Result pairs an ingredient with its matched product, if any.
type Result struct {
	Ingredient models.Ingredient `json:"ingredient"`
	Product    *models.Product   `json:"product,omitempty"`
}

func (r Result) Available() bool {
	return r.Product != nil
}

// MatchAll matches every ingredient, keeping input order.
func MatchAll(ingredients []models.Ingredient, catalog []models.Product) []Result {
	results := make([]Result, 0, len(ingredients))
	for _, ing := range ingredients {
		result := Result{Ingredient: ing}
		if p, ok := Match(ing.Name, catalog); ok {
			result.Product = &p
		}
		results = append(results, result)
	}
	return results
}

// Available keeps only results that found a product.
func Available(results []Result) []Result {
	kept := make([]Result, 0, len(results))
	for _, r := range results {
		if r.Available() {
			kept = append(kept, r)
		}
	}
	return kept
}
