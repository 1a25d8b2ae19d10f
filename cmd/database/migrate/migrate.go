package migration

import (
	"encoding/json"
	"fmt"
	"log"
	"time"

	"fridgecircle-api/entities"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

func Migrate(db *gorm.DB) error {
	db.Exec("CREATE EXTENSION IF NOT EXISTS \"uuid-ossp\";")

	if err := db.AutoMigrate(&entities.User{}); err != nil {
		log.Fatalf("Error migrating user database: %v", err)
		return err
	}
	if err := db.AutoMigrate(&entities.FoodItem{}); err != nil {
		log.Fatalf("Error migrating food item database: %v", err)
		return err
	}
	if err := db.AutoMigrate(&entities.FoodItemShare{}); err != nil {
		log.Fatalf("Error migrating food item share database: %v", err)
		return err
	}
	if err := db.AutoMigrate(&entities.Friend{}); err != nil {
		log.Fatalf("Error migrating friend database: %v", err)
		return err
	}
	if err := db.AutoMigrate(&entities.Recipe{}); err != nil {
		log.Fatalf("Error migrating recipe database: %v", err)
		return err
	}

	fmt.Println("Database migration complete")
	return nil
}

// Seed populates an empty database with a demo account, a starter
// pantry, a couple of friends, and a few recipes so the app has
// something to show on first run.
func Seed(db *gorm.DB) error {
	var count int64
	if err := db.Model(&entities.User{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte("password123"), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	demoUser := entities.User{
		Name:     "John Doe",
		Email:    "john@example.com",
		Password: string(hashed),
		Role:     "user",
		Location: "Jakarta",
	}
	if err := db.Create(&demoUser).Error; err != nil {
		return err
	}

	now := time.Now()
	items := []entities.FoodItem{
		{
			UserID:      demoUser.ID,
			Name:        "Milk",
			Quantity:    1,
			UnitMeasure: "liter",
			ExpiryDate:  now.AddDate(0, 0, 2),
			Category:    "dairy",
			Status:      entities.StatusExpiringSoon,
		},
		{
			UserID:      demoUser.ID,
			Name:        "Apples",
			Quantity:    6,
			UnitMeasure: "pcs",
			ExpiryDate:  now.AddDate(0, 0, 10),
			Category:    "fruit",
			Status:      entities.StatusFresh,
		},
		{
			UserID:      demoUser.ID,
			Name:        "Chicken Breast",
			Quantity:    500,
			UnitMeasure: "gram",
			ExpiryDate:  now.AddDate(0, 0, 1),
			Category:    "meat",
			Status:      entities.StatusExpiringSoon,
		},
		{
			UserID:      demoUser.ID,
			Name:        "Bread",
			Quantity:    1,
			UnitMeasure: "loaf",
			ExpiryDate:  now.AddDate(0, 0, 4),
			Category:    "bakery",
			Status:      entities.StatusFresh,
		},
	}
	if err := db.Create(&items).Error; err != nil {
		return err
	}

	friends := []entities.Friend{
		{
			UserID: demoUser.ID,
			Name:   "jane",
			Email:  "jane@example.com",
			Status: entities.FriendStatusAccepted,
		},
		{
			UserID: demoUser.ID,
			Name:   "bob",
			Email:  "bob@example.com",
			Status: entities.FriendStatusPending,
		},
	}
	if err := db.Create(&friends).Error; err != nil {
		return err
	}

	recipes := []entities.Recipe{
		{
			UserID:          demoUser.ID,
			Title:           "Apple Cinnamon Oatmeal",
			PrepTimeMinutes: 5,
			CookTimeMinutes: 10,
			Servings:        2,
			Ingredients:     mustEncode([]string{"2 apples, diced", "1 cup rolled oats", "2 cups milk", "1 tsp cinnamon"}),
			Instructions:    mustEncode([]string{"Bring the milk to a simmer.", "Stir in the oats and cinnamon.", "Add the diced apples and cook for 8 minutes."}),
		},
		{
			UserID:          demoUser.ID,
			Title:           "Grilled Chicken Sandwich",
			PrepTimeMinutes: 10,
			CookTimeMinutes: 15,
			Servings:        1,
			Ingredients:     mustEncode([]string{"200g chicken breast", "2 slices of bread", "1 tbsp butter", "lettuce"}),
			Instructions:    mustEncode([]string{"Season and grill the chicken breast.", "Toast the bread with butter.", "Assemble the sandwich with lettuce."}),
		},
		{
			UserID:          demoUser.ID,
			Title:           "Creamy Garlic Pasta",
			PrepTimeMinutes: 10,
			CookTimeMinutes: 20,
			Servings:        3,
			Ingredients:     mustEncode([]string{"300g pasta", "1 cup milk", "3 cloves garlic", "parmesan cheese"}),
			Instructions:    mustEncode([]string{"Cook the pasta until al dente.", "Simmer the milk with minced garlic.", "Toss the pasta in the sauce and top with parmesan."}),
		},
	}
	if err := db.Create(&recipes).Error; err != nil {
		return err
	}

	fmt.Println("Database seed complete")
	return nil
}

func mustEncode(values []string) string {
	raw, err := json.Marshal(values)
	if err != nil {
		return "[]"
	}
	return string(raw)
}
