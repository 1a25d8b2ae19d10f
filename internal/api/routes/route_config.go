package routes

import (
	"fridgecircle-api/internal/api/handlers"
	"fridgecircle-api/internal/middleware"
	"fridgecircle-api/pkg/jwt"

	"github.com/gofiber/fiber/v2"
)

type Config struct {
	App           *fiber.App
	UserHandler   handlers.UserHandler
	FoodHandler   handlers.FoodHandler
	FriendHandler handlers.FriendHandler
	RecipeHandler handlers.RecipeHandler
	Middleware    middleware.Middleware
	JWTService    jwt.JWTService
}

func (c *Config) Setup() {
	c.App.Use(c.Middleware.CORSMiddleware())
	c.User()
	c.FoodItems()
	c.Friends()
	c.Recipes()
	c.GuestRoute()
}

func (c *Config) User() {
	user := c.App.Group("/api/v1/users")
	// user routes
	{
		user.Post("/register", c.UserHandler.Register)
		user.Post("/login", c.UserHandler.Login)
		user.Get("/me", c.Middleware.AuthMiddleware(c.JWTService), c.UserHandler.Me)
		user.Patch("/update", c.Middleware.AuthMiddleware(c.JWTService), c.UserHandler.UpdateUser)
	}
}

func (c *Config) GuestRoute() {
	c.App.Get("/api/ping", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"message": "pong"})
	})
}

func (c *Config) FoodItems() {
	foodItems := c.App.Group("/api/v1/food-items", c.Middleware.AuthMiddleware(c.JWTService))
	foodItems.Get("/dashboard", c.FoodHandler.GetDashboardStats)
	foodItems.Get("/expiring", c.FoodHandler.GetExpiringItems)
	foodItems.Post("/expiring/notify", c.FoodHandler.NotifyExpiringItems)

	// Basic CRUD operations
	foodItems.Post("", c.FoodHandler.AddFoodItem)
	foodItems.Get("", c.FoodHandler.GetFoodItems)
	foodItems.Get("/:id", c.FoodHandler.GetFoodItemDetails)
	foodItems.Put("/:id", c.FoodHandler.UpdateFoodItem)
	foodItems.Delete("/:id", c.FoodHandler.DeleteFoodItem)

	// Special operations
	foodItems.Post("/share", c.FoodHandler.ShareFoodItem)
	foodItems.Post("/image", c.FoodHandler.UploadFoodImage)
}

func (c *Config) Friends() {
	friends := c.App.Group("/api/v1/friends", c.Middleware.AuthMiddleware(c.JWTService))
	friends.Post("", c.FriendHandler.AddFriend)
	friends.Get("", c.FriendHandler.GetFriends)
	friends.Get("/pending", c.FriendHandler.GetPendingRequests)
	friends.Post("/:id/accept", c.FriendHandler.AcceptFriendRequest)
	friends.Post("/:id/decline", c.FriendHandler.DeclineFriendRequest)
	friends.Delete("/:id", c.FriendHandler.RemoveFriend)
}

func (c *Config) Recipes() {
	recipes := c.App.Group("/api/v1/recipes", c.Middleware.AuthMiddleware(c.JWTService))
	recipes.Get("/suggested", c.RecipeHandler.GetSuggestedRecipes)
	recipes.Post("/generate", c.RecipeHandler.GenerateRecipe)
	recipes.Get("", c.RecipeHandler.GetRecipes)
	recipes.Get("/:id", c.RecipeHandler.GetRecipeDetail)
	recipes.Delete("/:id", c.RecipeHandler.DeleteRecipe)
}
