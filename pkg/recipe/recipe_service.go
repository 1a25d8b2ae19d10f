package recipe

import (
	"context"
	"encoding/json"
	"errors"
	"strings"

	"fridgecircle-api/domain"
	"fridgecircle-api/entities"
	"fridgecircle-api/pkg/food"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type (
	RecipeService interface {
		GetRecipes(ctx context.Context, userID string, page, limit int) ([]domain.RecipeResponse, int64, error)
		GetSuggestedRecipes(ctx context.Context, userID string) ([]domain.RecipeResponse, error)
		GetRecipeDetail(ctx context.Context, recipeID string, userID string) (domain.RecipeResponse, error)
		GenerateRecipe(ctx context.Context, userID string) (domain.GenerateRecipeResponse, error)
		DeleteRecipe(ctx context.Context, recipeID string, userID string) error
	}

	recipeService struct {
		recipeRepository RecipeRepository
		foodRepository   food.FoodRepository
		generator        Generator
	}
)

func NewRecipeService(recipeRepository RecipeRepository, foodRepository food.FoodRepository, generator Generator) RecipeService {
	return &recipeService{
		recipeRepository: recipeRepository,
		foodRepository:   foodRepository,
		generator:        generator,
	}
}

func (s *recipeService) GetRecipes(ctx context.Context, userID string, page, limit int) ([]domain.RecipeResponse, int64, error) {
	recipes, count, err := s.recipeRepository.GetRecipes(ctx, userID, page, limit)
	if err != nil {
		return nil, 0, err
	}

	inventoryNames, err := s.inventoryNames(ctx, userID)
	if err != nil {
		return nil, 0, err
	}

	response := make([]domain.RecipeResponse, 0, len(recipes))
	for _, recipe := range recipes {
		response = append(response, s.toResponse(recipe, inventoryNames))
	}

	return response, count, nil
}

func (s *recipeService) GetSuggestedRecipes(ctx context.Context, userID string) ([]domain.RecipeResponse, error) {
	recipes, _, err := s.recipeRepository.GetRecipes(ctx, userID, 1, 100)
	if err != nil {
		return nil, err
	}

	inventoryNames, err := s.inventoryNames(ctx, userID)
	if err != nil {
		return nil, err
	}

	response := make([]domain.RecipeResponse, 0, len(recipes))
	for _, recipe := range recipes {
		ingredients := decodeStringList(recipe.Ingredients)
		if !IsSuggested(ingredients, inventoryNames) {
			continue
		}
		response = append(response, s.toResponse(recipe, inventoryNames))
	}

	return response, nil
}

func (s *recipeService) GetRecipeDetail(ctx context.Context, recipeID string, userID string) (domain.RecipeResponse, error) {
	recipe, err := s.recipeRepository.GetRecipeByID(ctx, recipeID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.RecipeResponse{}, domain.ErrRecipeNotFound
		}
		return domain.RecipeResponse{}, err
	}

	if recipe.UserID.String() != userID {
		return domain.RecipeResponse{}, domain.ErrUnauthorizedRecipeAccess
	}

	inventoryNames, err := s.inventoryNames(ctx, userID)
	if err != nil {
		return domain.RecipeResponse{}, err
	}

	return s.toResponse(recipe, inventoryNames), nil
}

// GenerateRecipe asks the text-generation collaborator for a recipe built from
// everything on hand. Only the first line of the returned text is trusted as
// the title; the rest is stored verbatim.
func (s *recipeService) GenerateRecipe(ctx context.Context, userID string) (domain.GenerateRecipeResponse, error) {
	foodItems, _, err := s.foodRepository.GetFoodItems(ctx, userID, "all", 1, 100)
	if err != nil {
		return domain.GenerateRecipeResponse{}, err
	}

	if len(foodItems) == 0 {
		return domain.GenerateRecipeResponse{}, domain.ErrNoIngredients
	}

	ingredients := make([]IngredientInput, 0, len(foodItems))
	for _, item := range foodItems {
		ingredients = append(ingredients, IngredientInput{
			Quantity: item.Quantity,
			Unit:     item.UnitMeasure,
			Name:     item.Name,
		})
	}

	rawText, err := s.generator.GenerateRecipe(ctx, ingredients)
	if err != nil {
		return domain.GenerateRecipeResponse{}, err
	}

	title := extractTitle(rawText)
	if title == "" {
		return domain.GenerateRecipeResponse{}, domain.ErrGenerationFailed
	}

	userUUID, err := uuid.Parse(userID)
	if err != nil {
		return domain.GenerateRecipeResponse{}, domain.ErrParseUUID
	}

	// Lines after the title are kept as best-effort instructions.
	var bodyLines []string
	for _, line := range strings.Split(rawText, "\n")[1:] {
		line = strings.TrimSpace(line)
		if line != "" {
			bodyLines = append(bodyLines, line)
		}
	}

	recipe := &entities.Recipe{
		ID:           uuid.New(),
		UserID:       userUUID,
		Title:        title,
		Ingredients:  encodeStringList(nil),
		Instructions: encodeStringList(bodyLines),
		IsGenerated:  true,
	}

	if err := s.recipeRepository.CreateRecipe(ctx, recipe); err != nil {
		return domain.GenerateRecipeResponse{}, err
	}

	return domain.GenerateRecipeResponse{
		ID:      recipe.ID.String(),
		Title:   title,
		RawText: rawText,
	}, nil
}

func (s *recipeService) DeleteRecipe(ctx context.Context, recipeID string, userID string) error {
	recipe, err := s.recipeRepository.GetRecipeByID(ctx, recipeID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ErrRecipeNotFound
		}
		return err
	}

	if recipe.UserID.String() != userID {
		return domain.ErrUnauthorizedRecipeAccess
	}

	return s.recipeRepository.DeleteRecipe(ctx, recipeID)
}

func (s *recipeService) inventoryNames(ctx context.Context, userID string) ([]string, error) {
	foodItems, _, err := s.foodRepository.GetFoodItems(ctx, userID, "all", 1, 100)
	if err != nil {
		return nil, err
	}

	names := make([]string, 0, len(foodItems))
	for _, item := range foodItems {
		names = append(names, item.Name)
	}

	return names, nil
}

func (s *recipeService) toResponse(recipe *entities.Recipe, inventoryNames []string) domain.RecipeResponse {
	ingredients := decodeStringList(recipe.Ingredients)
	matching, missing := MatchIngredients(ingredients, inventoryNames)

	return domain.RecipeResponse{
		ID:                  recipe.ID.String(),
		Title:               recipe.Title,
		ImageURL:            recipe.ImageURL,
		PrepTimeMinutes:     recipe.PrepTimeMinutes,
		CookTimeMinutes:     recipe.CookTimeMinutes,
		Servings:            recipe.Servings,
		Ingredients:         ingredients,
		Instructions:        decodeStringList(recipe.Instructions),
		MatchingIngredients: matching,
		MissingIngredients:  missing,
		IsGenerated:         recipe.IsGenerated,
		CreatedAt:           recipe.CreatedAt,
	}
}

func extractTitle(rawText string) string {
	firstLine := strings.SplitN(rawText, "\n", 2)[0]
	firstLine = strings.TrimSpace(firstLine)
	firstLine = strings.TrimLeft(firstLine, "#* ")
	for _, prefix := range []string{"Recipe:", "Recipe Name:", "Name:"} {
		if strings.HasPrefix(strings.ToLower(firstLine), strings.ToLower(prefix)) {
			firstLine = strings.TrimSpace(firstLine[len(prefix):])
		}
	}
	return firstLine
}

func encodeStringList(values []string) string {
	if values == nil {
		values = []string{}
	}
	encoded, _ := json.Marshal(values)
	return string(encoded)
}

func decodeStringList(raw string) []string {
	var values []string
	if err := json.Unmarshal([]byte(raw), &values); err != nil {
		return []string{}
	}
	return values
}
