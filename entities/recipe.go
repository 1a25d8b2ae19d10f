package entities

import (
	"github.com/google/uuid"
)

type Recipe struct {
	ID              uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	UserID          uuid.UUID `json:"user_id"`
	Title           string    `json:"title"`
	ImageURL        string    `json:"image_url,omitempty"`
	PrepTimeMinutes int       `json:"prep_time_minutes"`
	CookTimeMinutes int       `json:"cook_time_minutes"`
	Servings        int       `json:"servings"`
	Ingredients     string    `json:"ingredients" gorm:"type:text"`  // JSON array of strings
	Instructions    string    `json:"instructions" gorm:"type:text"` // JSON array of strings
	IsGenerated     bool      `json:"is_generated"`

	User *User `gorm:"foreignKey:UserID"`
	Timestamp
}
