package recipe

import (
	"context"
	"testing"
	"time"

	"fridgecircle-api/domain"
	"fridgecircle-api/entities"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

type fakeRecipeRepository struct {
	recipes map[string]*entities.Recipe
}

func newFakeRecipeRepository() *fakeRecipeRepository {
	return &fakeRecipeRepository{recipes: make(map[string]*entities.Recipe)}
}

func (r *fakeRecipeRepository) CreateRecipe(_ context.Context, recipe *entities.Recipe) error {
	r.recipes[recipe.ID.String()] = recipe
	return nil
}

func (r *fakeRecipeRepository) GetRecipeByID(_ context.Context, id string) (*entities.Recipe, error) {
	recipe, ok := r.recipes[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return recipe, nil
}

func (r *fakeRecipeRepository) GetRecipes(_ context.Context, userID string, _, _ int) ([]*entities.Recipe, int64, error) {
	var recipes []*entities.Recipe
	for _, recipe := range r.recipes {
		if recipe.UserID.String() == userID {
			recipes = append(recipes, recipe)
		}
	}
	return recipes, int64(len(recipes)), nil
}

func (r *fakeRecipeRepository) DeleteRecipe(_ context.Context, id string) error {
	delete(r.recipes, id)
	return nil
}

type fakeInventoryRepository struct {
	items []*entities.FoodItem
}

func (r *fakeInventoryRepository) AddFoodItem(_ context.Context, item *entities.FoodItem) error {
	r.items = append(r.items, item)
	return nil
}

func (r *fakeInventoryRepository) GetFoodItemByID(_ context.Context, id string) (*entities.FoodItem, error) {
	for _, item := range r.items {
		if item.ID.String() == id {
			return item, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *fakeInventoryRepository) UpdateFoodItem(_ context.Context, _ *entities.FoodItem) error {
	return nil
}

func (r *fakeInventoryRepository) DeleteFoodItem(_ context.Context, _ string) error {
	return nil
}

func (r *fakeInventoryRepository) GetFoodItems(_ context.Context, userID string, _ string, _, _ int) ([]*entities.FoodItem, int64, error) {
	var items []*entities.FoodItem
	for _, item := range r.items {
		if item.UserID.String() == userID {
			items = append(items, item)
		}
	}
	return items, int64(len(items)), nil
}

func (r *fakeInventoryRepository) GetFoodItemsByExpiryRange(_ context.Context, _ string, _, _ time.Time) ([]*entities.FoodItem, error) {
	return nil, nil
}

func (r *fakeInventoryRepository) ReplaceShares(_ context.Context, _ *entities.FoodItem, _ []*entities.FoodItemShare) error {
	return nil
}

func (r *fakeInventoryRepository) GetDashboardStats(_ context.Context, _ string, _, _ time.Time) (map[string]int64, error) {
	return nil, nil
}

type fakeGenerator struct {
	text string
	err  error
}

func (g *fakeGenerator) GenerateRecipe(_ context.Context, _ []IngredientInput) (string, error) {
	return g.text, g.err
}

func seedInventory(repo *fakeInventoryRepository, userID uuid.UUID, names ...string) {
	for _, name := range names {
		repo.items = append(repo.items, &entities.FoodItem{
			ID:          uuid.New(),
			UserID:      userID,
			Name:        name,
			Quantity:    1,
			UnitMeasure: "pcs",
		})
	}
}

func seedRecipe(repo *fakeRecipeRepository, userID uuid.UUID, title string, ingredients []string) *entities.Recipe {
	recipe := &entities.Recipe{
		ID:          uuid.New(),
		UserID:      userID,
		Title:       title,
		Ingredients: encodeStringList(ingredients),
	}
	repo.recipes[recipe.ID.String()] = recipe
	return recipe
}

func TestGetSuggestedRecipesFiltersByInventory(t *testing.T) {
	recipeRepo := newFakeRecipeRepository()
	foodRepo := &fakeInventoryRepository{}
	service := NewRecipeService(recipeRepo, foodRepo, &fakeGenerator{})
	userID := uuid.New()

	seedInventory(foodRepo, userID, "Apples", "Milk")
	seedRecipe(recipeRepo, userID, "Apple Pie", []string{"2 apples, diced", "flour"})
	seedRecipe(recipeRepo, userID, "Beef Stew", []string{"500g beef", "potatoes"})

	suggested, err := service.GetSuggestedRecipes(context.Background(), userID.String())

	require.NoError(t, err)
	require.Len(t, suggested, 1)
	assert.Equal(t, "Apple Pie", suggested[0].Title)
	assert.Equal(t, []string{"2 apples, diced"}, suggested[0].MatchingIngredients)
	assert.Equal(t, []string{"flour"}, suggested[0].MissingIngredients)
}

func TestGetRecipeDetailOwnership(t *testing.T) {
	recipeRepo := newFakeRecipeRepository()
	service := NewRecipeService(recipeRepo, &fakeInventoryRepository{}, &fakeGenerator{})
	recipe := seedRecipe(recipeRepo, uuid.New(), "Apple Pie", []string{"apples"})

	_, err := service.GetRecipeDetail(context.Background(), recipe.ID.String(), uuid.NewString())

	assert.ErrorIs(t, err, domain.ErrUnauthorizedRecipeAccess)
}

func TestGetRecipeDetailNotFound(t *testing.T) {
	service := NewRecipeService(newFakeRecipeRepository(), &fakeInventoryRepository{}, &fakeGenerator{})

	_, err := service.GetRecipeDetail(context.Background(), uuid.NewString(), uuid.NewString())

	assert.ErrorIs(t, err, domain.ErrRecipeNotFound)
}

func TestGenerateRecipe(t *testing.T) {
	recipeRepo := newFakeRecipeRepository()
	foodRepo := &fakeInventoryRepository{}
	generator := &fakeGenerator{text: "Recipe: Apple Oatmeal\nCombine the oats and milk.\nAdd the apples."}
	service := NewRecipeService(recipeRepo, foodRepo, generator)
	userID := uuid.New()

	seedInventory(foodRepo, userID, "Apples", "Milk")

	res, err := service.GenerateRecipe(context.Background(), userID.String())

	require.NoError(t, err)
	assert.Equal(t, "Apple Oatmeal", res.Title)
	assert.Equal(t, generator.text, res.RawText)

	require.Len(t, recipeRepo.recipes, 1)
	stored := recipeRepo.recipes[res.ID]
	require.NotNil(t, stored)
	assert.True(t, stored.IsGenerated)
	assert.Equal(t, []string{"Combine the oats and milk.", "Add the apples."}, decodeStringList(stored.Instructions))
}

func TestGenerateRecipeWithoutInventory(t *testing.T) {
	service := NewRecipeService(newFakeRecipeRepository(), &fakeInventoryRepository{}, &fakeGenerator{})

	_, err := service.GenerateRecipe(context.Background(), uuid.NewString())

	assert.ErrorIs(t, err, domain.ErrNoIngredients)
}

func TestGenerateRecipeGeneratorFailure(t *testing.T) {
	foodRepo := &fakeInventoryRepository{}
	generator := &fakeGenerator{err: domain.ErrGenerationFailed}
	service := NewRecipeService(newFakeRecipeRepository(), foodRepo, generator)
	userID := uuid.New()

	seedInventory(foodRepo, userID, "Milk")

	_, err := service.GenerateRecipe(context.Background(), userID.String())

	assert.ErrorIs(t, err, domain.ErrGenerationFailed)
}

func TestDeleteRecipeOwnership(t *testing.T) {
	recipeRepo := newFakeRecipeRepository()
	service := NewRecipeService(recipeRepo, &fakeInventoryRepository{}, &fakeGenerator{})
	recipe := seedRecipe(recipeRepo, uuid.New(), "Apple Pie", []string{"apples"})

	err := service.DeleteRecipe(context.Background(), recipe.ID.String(), uuid.NewString())

	assert.ErrorIs(t, err, domain.ErrUnauthorizedRecipeAccess)
	assert.Len(t, recipeRepo.recipes, 1)
}

func TestExtractTitle(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want string
	}{
		{"plain first line", "Apple Pie\nMix everything.", "Apple Pie"},
		{"markdown heading", "# Apple Pie\nMix everything.", "Apple Pie"},
		{"recipe prefix", "Recipe: Apple Pie", "Apple Pie"},
		{"recipe name prefix", "Recipe Name: Apple Pie", "Apple Pie"},
		{"name prefix", "Name: Apple Pie", "Apple Pie"},
		{"empty input", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, extractTitle(tt.raw))
		})
	}
}
