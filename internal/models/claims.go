package models

import "github.com/golang-jwt/jwt/v5"

// UserClaims are the identity claims carried by a session token.
type UserClaims struct {
	jwt.RegisteredClaims
	UserID   uint   `json:"user_id"`
	Role     string `json:"role"`
	Email    string `json:"email,omitempty"`
	Username string `json:"username,omitempty"`
}
