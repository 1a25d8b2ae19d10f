package domain

import (
	"errors"
	"mime/multipart"
	"time"
)

var (
	MessageSuccessAddFoodItem       = "food item added successfully"
	MessageSuccessUpdateFoodItem    = "food item updated successfully"
	MessageSuccessDeleteFoodItem    = "food item deleted successfully"
	MessageSuccessGetFoodItems      = "food items retrieved successfully"
	MessageSuccessGetExpiringItems  = "expiring items retrieved successfully"
	MessageSuccessShareFoodItem     = "food item shared successfully"
	MessageSuccessUploadFoodImage   = "food image uploaded successfully"
	MessageSuccessGetDashboardStats = "dashboard statistics retrieved successfully"

	MessageFailedAddFoodItem       = "failed to add food item"
	MessageFailedUpdateFoodItem    = "failed to update food item"
	MessageFailedDeleteFoodItem    = "failed to delete food item"
	MessageFailedGetFoodItems      = "failed to retrieve food items"
	MessageFailedGetExpiringItems  = "failed to retrieve expiring items"
	MessageFailedShareFoodItem     = "failed to share food item"
	MessageFailedUploadFoodImage   = "failed to upload food image"
	MessageFailedGetDashboardStats = "failed to retrieve dashboard statistics"

	ErrFoodItemNotFound   = errors.New("food item not found")
	ErrInvalidExpiryDate  = errors.New("invalid expiry date")
	ErrInvalidQuantity    = errors.New("quantity must be positive")
	ErrInvalidCategory    = errors.New("unknown food category")
	ErrTooManyRecipients  = errors.New("an item can be shared with at most 5 friends")
	ErrUnauthorizedAccess = errors.New("unauthorized access to food item")
)

type (
	AddFoodItemRequest struct {
		Name        string `json:"name" validate:"required"`
		Quantity    int    `json:"quantity" validate:"required,min=1"`
		UnitMeasure string `json:"unit_measure" validate:"required"`
		ExpiryDate  string `json:"expiry_date" validate:"required"`
		Category    string `json:"category" validate:"required,oneof=dairy meat fruit vegetable grain bakery frozen canned beverage condiment snack other"`
		Notes       string `json:"notes" validate:"omitempty"`
	}

	UpdateFoodItemRequest struct {
		Name        string `json:"name" validate:"omitempty"`
		Quantity    int    `json:"quantity" validate:"omitempty,min=1"`
		UnitMeasure string `json:"unit_measure" validate:"omitempty"`
		ExpiryDate  string `json:"expiry_date" validate:"omitempty"`
		Category    string `json:"category" validate:"omitempty,oneof=dairy meat fruit vegetable grain bakery frozen canned beverage condiment snack other"`
		Notes       string `json:"notes" validate:"omitempty"`
	}

	ShareFoodItemRequest struct {
		FoodItemID string   `json:"food_item_id" validate:"required,uuid"`
		FriendIDs  []string `json:"friend_ids" validate:"required,dive,uuid"`
	}

	UploadFoodImageRequest struct {
		FoodItemID string                `json:"food_id" form:"food_id" validate:"required,uuid"`
		Image      *multipart.FileHeader `json:"image" form:"image" validate:"required"`
	}

	FoodItemResponse struct {
		ID          string    `json:"id"`
		Name        string    `json:"name"`
		Quantity    int       `json:"quantity"`
		UnitMeasure string    `json:"unit_measure"`
		ExpiryDate  time.Time `json:"expiry_date"`
		Category    string    `json:"category"`
		Status      string    `json:"status"`
		ImageURL    string    `json:"image_url,omitempty"`
		Notes       string    `json:"notes,omitempty"`
		IsShared    bool      `json:"is_shared"`
		SharedWith  []string  `json:"shared_with,omitempty"`
		CreatedAt   time.Time `json:"created_at"`
	}

	DashboardStatsResponse struct {
		TotalItems    int `json:"total_items"`
		FreshItems    int `json:"fresh_items"`
		ExpiringItems int `json:"expiring_items"`
		ExpiredItems  int `json:"expired_items"`
		SharedItems   int `json:"shared_items"`
	}
)
