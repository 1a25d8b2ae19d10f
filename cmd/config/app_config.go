package config

import (
	"os"
	"time"

	"fridgecircle-api/internal/api/handlers"
	"fridgecircle-api/internal/api/routes"
	"fridgecircle-api/internal/middleware"
	"fridgecircle-api/internal/utils"
	"fridgecircle-api/internal/utils/storage"
	"fridgecircle-api/internal/utils/webhook"
	"fridgecircle-api/pkg/food"
	"fridgecircle-api/pkg/friend"
	"fridgecircle-api/pkg/jwt"
	"fridgecircle-api/pkg/recipe"
	"fridgecircle-api/pkg/user"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/log"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"gorm.io/gorm"
)

func NewApp(db *gorm.DB) (*fiber.App, error) {
	utils.InitValidator()
	app := fiber.New(fiber.Config{
		EnablePrintRoutes: true,
	})
	middlewares := middleware.NewMiddleware()
	validator := utils.Validate

	// setting up logging and limiter
	err := os.MkdirAll("./logs", os.ModePerm)
	if err != nil {
		log.Fatalf("error creating logs directory: %v", err)
	}
	file, err := os.OpenFile(
		"./logs/app.log",
		os.O_RDWR|os.O_CREATE|os.O_APPEND,
		0666,
	)
	if err != nil {
		log.Fatalf("error opening file: %v", err)
	}
	app.Use(logger.New(logger.Config{
		TimeFormat: "2006-01-02 15:04:05",
		TimeZone:   "Asia/Jakarta",
		Output:     file,
	}))

	app.Use(limiter.New(limiter.Config{
		Max:        10,
		Expiration: 1 * time.Second,
	}))

	// utils
	s3 := storage.NewAwsS3()
	notifier := webhook.NewNotifier(utils.GetConfig("WEBHOOK_URL"))
	generator := recipe.NewGeminiGenerator()

	// Repository
	userRepository := user.NewUserRepository(db)
	foodRepository := food.NewFoodRepository(db)
	friendRepository := friend.NewFriendRepository(db)
	recipeRepository := recipe.NewRecipeRepository(db)

	// Service
	jwtService := jwt.NewJWTService()
	userService := user.NewUserService(userRepository, jwtService)
	foodService := food.NewFoodService(foodRepository, friendRepository, notifier, s3)
	friendService := friend.NewFriendService(friendRepository)
	recipeService := recipe.NewRecipeService(recipeRepository, foodRepository, generator)

	// Handler
	userHandler := handlers.NewUserHandler(userService, validator)
	foodHandler := handlers.NewFoodHandler(foodService, validator)
	friendHandler := handlers.NewFriendHandler(friendService, validator)
	recipeHandler := handlers.NewRecipeHandler(recipeService, validator)

	// routes
	routesConfig := routes.Config{
		App:           app,
		UserHandler:   userHandler,
		FoodHandler:   foodHandler,
		FriendHandler: friendHandler,
		RecipeHandler: recipeHandler,
		Middleware:    middlewares,
		JWTService:    jwtService,
	}
	routesConfig.Setup()
	return app, nil
}
