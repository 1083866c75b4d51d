package models

import (
	"time"
)

// Request statuses.
const (
	RequestOpen     = "OPEN"
	RequestAssigned = "ASSIGNED"
)

// Request is a client's posted service request. Only the owning user may
// transition its status.
type Request struct {
	ID          uint      `gorm:"primarykey" json:"id"`
	UserID      uint      `gorm:"index;not null" json:"userId"`
	Service     string    `gorm:"not null" json:"service"`
	Amount      float64   `json:"amount"`
	Location    string    `json:"location"`
	Description string    `json:"description"`
	Email       string    `json:"email"`
	Phone       string    `json:"phone"`
	Status      string    `gorm:"not null;default:'OPEN'" json:"status"`
	IsActive    bool      `gorm:"default:true" json:"isActive"`
	CreatedAt   time.Time `json:"createdAt"`

	User *User `gorm:"foreignKey:UserID" json:"user,omitempty"`
}
