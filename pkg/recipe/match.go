package recipe

import "strings"

// MatchIngredients partitions a recipe's ingredient list against the names of
// items on hand, preserving recipe order. An ingredient matches when its
// lowercased text contains the lowercased name of at least one inventory item,
// so "2 apples, diced" matches inventory item "Apples".
func MatchIngredients(recipeIngredients []string, inventoryNames []string) (matching []string, missing []string) {
	matching = make([]string, 0, len(recipeIngredients))
	missing = make([]string, 0, len(recipeIngredients))

	for _, ingredient := range recipeIngredients {
		if matchesInventory(ingredient, inventoryNames) {
			matching = append(matching, ingredient)
		} else {
			missing = append(missing, ingredient)
		}
	}

	return matching, missing
}

// IsSuggested reports whether a recipe is worth surfacing: at least one of its
// ingredients matches an item on hand, regardless of that item's expiry status.
func IsSuggested(recipeIngredients []string, inventoryNames []string) bool {
	for _, ingredient := range recipeIngredients {
		if matchesInventory(ingredient, inventoryNames) {
			return true
		}
	}
	return false
}

func matchesInventory(ingredient string, inventoryNames []string) bool {
	lowered := strings.ToLower(ingredient)
	for _, name := range inventoryNames {
		name = strings.ToLower(strings.TrimSpace(name))
		if name == "" {
			continue
		}
		if strings.Contains(lowered, name) {
			return true
		}
	}
	return false
}
