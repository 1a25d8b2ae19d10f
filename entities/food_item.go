package entities

import (
	"time"

	"github.com/google/uuid"
)

const (
	StatusFresh        = "Fresh"
	StatusExpiringSoon = "ExpiringSoon"
	StatusExpired      = "Expired"
)

// MaxShareRecipients caps how many friends a single item can be shared with.
const MaxShareRecipients = 5

// FoodCategories is the fixed set of categories an item can belong to.
var FoodCategories = []string{
	"dairy", "meat", "fruit", "vegetable", "grain", "bakery",
	"frozen", "canned", "beverage", "condiment", "snack", "other",
}

type FoodItem struct {
	ID          uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	UserID      uuid.UUID `json:"user_id"`
	Name        string    `json:"name"`
	Quantity    int       `json:"quantity"`
	UnitMeasure string    `json:"unit_measure"`
	ExpiryDate  time.Time `json:"expiry_date"`
	Category    string    `json:"category"`
	Status      string    `json:"status"` // "Fresh", "ExpiringSoon", "Expired"
	ImageURL    string    `json:"image_url,omitempty"`
	Notes       string    `json:"notes,omitempty"`
	IsShared    bool      `json:"is_shared"`

	User   *User            `gorm:"foreignKey:UserID"`
	Shares []*FoodItemShare `gorm:"foreignKey:FoodItemID"`
	Timestamp
}

type FoodItemShare struct {
	ID         uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	FoodItemID uuid.UUID `gorm:"uniqueIndex:idx_item_recipient" json:"food_item_id"`
	FriendID   uuid.UUID `gorm:"uniqueIndex:idx_item_recipient" json:"friend_id"`

	FoodItem *FoodItem `gorm:"foreignKey:FoodItemID"`
	Friend   *Friend   `gorm:"foreignKey:FriendID"`
	Timestamp
}
