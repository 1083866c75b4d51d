package models

import "time"

// OTP is a transient email-verification code. Valid only while unexpired,
// consumed on successful verification.
type OTP struct {
	ID        uint      `gorm:"primarykey"`
	Email     string    `gorm:"index;not null"`
	Code      string    `gorm:"not null"`
	ExpiresAt time.Time `gorm:"not null"`
	CreatedAt time.Time
}

// OTPValidity is how long a generated code may be used.
const OTPValidity = 2 * time.Minute
