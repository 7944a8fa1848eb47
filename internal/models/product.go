package models

import "strings"

// DefaultUnit is applied to products saved without a unit label.
const DefaultUnit = "عدد"

// OtherCategory is always available and catches anything outside Categories.
const OtherCategory = "سایر"

// Categories is the closed catalog enumeration shown in the product form and
// the browsing filter.
var Categories = []string{
	"لبنیات",
	"خواربار",
	"پروتئینی",
	"نوشیدنی",
	"تنقلات",
	"بستنی",
	"فست فود و منجمد",
	"بهداشتی",
	"دخانیات و مواد افزودنی",
	"مواد افزودنی",
}

type Product struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Price    int64  `json:"price"`
	Category string `json:"category"`
	Unit     string `json:"unit"`
	Image    string `json:"image"`
}

// IsKnownCategory reports whether category is in the enumeration or is the
// fallback category.
func IsKnownCategory(category string) bool {
	if category == OtherCategory {
		return true
	}
	for _, c := range Categories {
		if c == category {
			return true
		}
	}
	return false
}

// NormalizeCategory maps blank or unknown categories onto OtherCategory.
func NormalizeCategory(category string) string {
	category = strings.TrimSpace(category)
	if !IsKnownCategory(category) {
		return OtherCategory
	}
	return category
}

// AllCategories returns the enumeration followed by the fallback category.
func AllCategories() []string {
	all := make([]string, 0, len(Categories)+1)
	all = append(all, Categories...)
	return append(all, OtherCategory)
}
