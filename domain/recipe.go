package domain

import (
	"errors"
	"time"
)

var (
	MessageSuccessGetRecipes      = "success get recipes"
	MessageSuccessGetSuggested    = "success get suggested recipes"
	MessageSuccessGetRecipeDetail = "success get recipe detail"
	MessageSuccessGenerateRecipe  = "recipe generated successfully"
	MessageSuccessDeleteRecipe    = "recipe deleted successfully"

	MessageFailedGetRecipes      = "failed to get recipes"
	MessageFailedGetSuggested    = "failed to get suggested recipes"
	MessageFailedGetRecipeDetail = "failed to get recipe detail"
	MessageFailedGenerateRecipe  = "failed to generate recipe"
	MessageFailedDeleteRecipe    = "failed to delete recipe"

	ErrRecipeNotFound           = errors.New("recipe not found")
	ErrUnauthorizedRecipeAccess = errors.New("unauthorized access to recipe")
	ErrGenerationFailed         = errors.New("recipe generation failed")
	ErrNoIngredients            = errors.New("no ingredients available for recipe generation")
)

type (
	RecipeResponse struct {
		ID                  string    `json:"id"`
		Title               string    `json:"title"`
		ImageURL            string    `json:"image_url,omitempty"`
		PrepTimeMinutes     int       `json:"prep_time_minutes"`
		CookTimeMinutes     int       `json:"cook_time_minutes"`
		Servings            int       `json:"servings"`
		Ingredients         []string  `json:"ingredients"`
		Instructions        []string  `json:"instructions"`
		MatchingIngredients []string  `json:"matching_ingredients"`
		MissingIngredients  []string  `json:"missing_ingredients"`
		IsGenerated         bool      `json:"is_generated"`
		CreatedAt           time.Time `json:"created_at"`
	}

	GenerateRecipeResponse struct {
		ID      string `json:"id"`
		Title   string `json:"title"`
		RawText string `json:"raw_text"`
	}
)
