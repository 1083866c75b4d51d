package models

import (
	"time"
)

// Nunny profile statuses.
const (
	StatusPending   = "PENDING"
	StatusApproved  = "APPROVED"
	StatusRejected  = "REJECTED"
	StatusSuspended = "SUSPENDED"
)

// NunnyProfile is the provider-side extension of a NUNNY user. Exactly one
// profile exists per NUNNY user; status transitions are admin-gated.
type NunnyProfile struct {
	ID          uint       `gorm:"primarykey" json:"id"`
	UserID      uint       `gorm:"uniqueIndex;not null" json:"userId"`
	Description string     `json:"description"`
	Services    StringList `gorm:"type:text" json:"services"`
	ContactInfo *string    `json:"contactInfo,omitempty"`
	Status      string     `gorm:"not null;default:'PENDING'" json:"status"`
	CreatedAt   time.Time  `json:"createdAt"`

	User *User `gorm:"foreignKey:UserID" json:"user,omitempty"`
}

// ClientProfile is the client-side extension of a CLIENT user.
type ClientProfile struct {
	ID            uint       `gorm:"primarykey" json:"id"`
	UserID        uint       `gorm:"uniqueIndex;not null" json:"userId"`
	ServiceWanted StringList `gorm:"type:text" json:"serviceWanted"`
	AmountOffered *float64   `json:"amountOffered,omitempty"`
	ContactInfo   *string    `json:"contactInfo,omitempty"`
	CreatedAt     time.Time  `json:"createdAt"`

	User *User `gorm:"foreignKey:UserID" json:"user,omitempty"`
}
