package models

import (
	"gorm.io/gorm"
)

// User roles.
const (
	RoleAdmin  = "ADMIN"
	RoleClient = "CLIENT"
	RoleNunny  = "NUNNY"
)

// ValidRegistrationRole reports whether a role may be chosen at signup.
// ADMIN accounts are only created by the seed binary.
func ValidRegistrationRole(role string) bool {
	return role == RoleClient || role == RoleNunny
}

type User struct {
	gorm.Model
	Email             string  `gorm:"uniqueIndex;not null" json:"email"`
	Username          *string `gorm:"uniqueIndex;default:null" json:"username,omitempty"`
	Password          string  `gorm:"not null" json:"-"`
	Role              string  `gorm:"not null" json:"role"`
	FullName          string  `gorm:"not null" json:"fullName"`
	Phone             string  `gorm:"not null" json:"phone"`
	IDNumber          string  `gorm:"uniqueIndex;not null" json:"idNumber"`
	County            string  `gorm:"not null" json:"county"`
	Constituency      string  `gorm:"not null" json:"constituency"`
	Verified          bool    `gorm:"default:false" json:"verified"`
	ProfilePictureURL *string `json:"profilePictureUrl,omitempty"`

	NunnyProfile  *NunnyProfile  `gorm:"foreignKey:UserID" json:"nunnyProfile,omitempty"`
	ClientProfile *ClientProfile `gorm:"foreignKey:UserID" json:"clientProfile,omitempty"`
}

// PublicSummary is the user representation safe to return to any caller.
type PublicSummary struct {
	ID                uint    `json:"id"`
	Email             string  `json:"email"`
	Username          *string `json:"username,omitempty"`
	Role              string  `json:"role"`
	FullName          string  `json:"fullName"`
	Verified          bool    `json:"verified"`
	ProfilePictureURL *string `json:"profilePictureUrl,omitempty"`
}

// Public returns the public-safe summary of the user.
func (u *User) Public() PublicSummary {
	return PublicSummary{
		ID:                u.ID,
		Email:             u.Email,
		Username:          u.Username,
		Role:              u.Role,
		FullName:          u.FullName,
		Verified:          u.Verified,
		ProfilePictureURL: u.ProfilePictureURL,
	}
}
