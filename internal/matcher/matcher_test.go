package matcher

import (
	"testing"

	"storefront/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var catalog = []models.Product{
	{ID: "p1", Name: "شیر پرچرب"},
	{ID: "p2", Name: "مرغ"},
	{ID: "p3", Name: "تخم مرغ"},
	{ID: "p4", Name: "پیاز"},
	{ID: "p5", Name: "Olive Oil"},
}

func TestMatch(t *testing.T) {
	tests := []struct {
		name       string
		ingredient string
		wantID     string
		wantOK     bool
	}{
		{"product name contains ingredient", "شیر", "p1", true},
		{"ingredient contains product name", "پیاز داغ", "p4", true},
		{"surrounding whitespace trimmed", "  پیاز \n", "p4", true},
		{"first match in catalog order wins", "تخم مرغ", "p2", true},
		{"no match", "زعفران", "", false},
		{"no case folding", "olive oil", "", false},
		{"exact latin", "Olive", "p5", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := Match(tt.ingredient, catalog)
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.wantID, got.ID)
		})
	}
}

func TestMatchDeterministic(t *testing.T) {
	first, ok := Match("شیر", catalog)
	require.True(t, ok)
	for i := 0; i < 20; i++ {
		again, ok := Match("شیر", catalog)
		assert.True(t, ok)
		assert.Equal(t, first, again)
	}
}

func TestMatchEmptyIngredient(t *testing.T) {
	// every name contains the empty string, so the first product wins
	got, ok := Match("", catalog)
	assert.True(t, ok)
	assert.Equal(t, "p1", got.ID)

	_, ok = Match("   ", nil)
	assert.False(t, ok)
}

func TestMatchAllAndAvailable(t *testing.T) {
	ingredients := []models.Ingredient{
		{Name: "شیر", Amount: "۲ لیوان"},
		{Name: "زعفران", Amount: "یک پنجم قاشق"},
		{Name: "پیاز", Amount: "۱ عدد"},
	}

	results := MatchAll(ingredients, catalog)
	require.Len(t, results, 3)
	assert.Equal(t, "p1", results[0].Product.ID)
	assert.Nil(t, results[1].Product)
	assert.Equal(t, "p4", results[2].Product.ID)
	assert.Equal(t, ingredients[1], results[1].Ingredient)

	available := Available(results)
	require.Len(t, available, 2)
	assert.Equal(t, "شیر", available[0].Ingredient.Name)
	assert.Equal(t, "پیاز", available[1].Ingredient.Name)
}
