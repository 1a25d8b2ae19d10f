package entities

import (
	"github.com/google/uuid"
)

const (
	FriendStatusPending  = "Pending"
	FriendStatusAccepted = "Accepted"
	FriendStatusDeclined = "Declined"
)

type Friend struct {
	ID     uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	UserID uuid.UUID `json:"user_id"`
	Name   string    `json:"name"`
	Email  string    `json:"email"`
	Avatar string    `json:"avatar,omitempty"`
	Status string    `json:"status"` // "Pending", "Accepted", "Declined"

	User *User `gorm:"foreignKey:UserID"`
	Timestamp
}
