package entities

import (
	"github.com/google/uuid"
)

type User struct {
	ID       uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	Name     string    `json:"name"`
	Email    string    `gorm:"uniqueIndex" json:"email"`
	Password string    `json:"-"`
	Role     string    `json:"role"`
	Avatar   string    `json:"avatar,omitempty"`
	Location string    `json:"location,omitempty"`

	FoodItems []*FoodItem `gorm:"foreignKey:UserID"`
	Friends   []*Friend   `gorm:"foreignKey:UserID"`
	Timestamp
}
