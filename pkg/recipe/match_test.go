package recipe

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMatchIngredients(t *testing.T) {
	ingredients := []string{"2 apples, diced", "1 cup rolled oats", "2 cups milk"}
	inventory := []string{"Apples", "Milk"}

	matching, missing := MatchIngredients(ingredients, inventory)

	assert.Equal(t, []string{"2 apples, diced", "2 cups milk"}, matching)
	assert.Equal(t, []string{"1 cup rolled oats"}, missing)
}

func TestMatchIngredientsCaseInsensitive(t *testing.T) {
	matching, missing := MatchIngredients(
		[]string{"200g CHICKEN BREAST"},
		[]string{"chicken breast"},
	)

	assert.Equal(t, []string{"200g CHICKEN BREAST"}, matching)
	assert.Empty(t, missing)
}

func TestMatchIngredientsPreservesRecipeOrder(t *testing.T) {
	ingredients := []string{"milk", "flour", "apples", "sugar"}

	matching, missing := MatchIngredients(ingredients, []string{"Sugar", "Milk"})

	assert.Equal(t, []string{"milk", "sugar"}, matching)
	assert.Equal(t, []string{"flour", "apples"}, missing)
}

func TestMatchIngredientsSkipsBlankInventoryNames(t *testing.T) {
	matching, missing := MatchIngredients(
		[]string{"1 loaf of bread"},
		[]string{"  ", ""},
	)

	assert.Empty(t, matching)
	assert.Equal(t, []string{"1 loaf of bread"}, missing)
}

func TestMatchIngredientsEmptyInventory(t *testing.T) {
	matching, missing := MatchIngredients([]string{"milk"}, nil)

	assert.Empty(t, matching)
	assert.Equal(t, []string{"milk"}, missing)
}

func TestIsSuggested(t *testing.T) {
	tests := []struct {
		name        string
		ingredients []string
		inventory   []string
		want        bool
	}{
		{"single match suffices", []string{"flour", "2 cups milk"}, []string{"Milk"}, true},
		{"no match", []string{"flour", "sugar"}, []string{"Milk"}, false},
		{"empty inventory", []string{"flour"}, nil, false},
		{"empty recipe", nil, []string{"Milk"}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, IsSuggested(tt.ingredients, tt.inventory))
		})
	}
}
