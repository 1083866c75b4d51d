package models

import "time"

// PasswordResetToken stores only the hash of a reset token. Only the most
// recent unused, unexpired row for a user is honored.
type PasswordResetToken struct {
	ID        uint      `gorm:"primarykey"`
	UserID    uint      `gorm:"index;not null"`
	TokenHash string    `gorm:"not null"`
	ExpiresAt time.Time `gorm:"not null"`
	Used      bool      `gorm:"default:false"`
	CreatedAt time.Time
}

// ResetTokenValidity is how long a reset link stays usable.
const ResetTokenValidity = time.Hour
