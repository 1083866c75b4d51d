// Package middleware provides HTTP middleware for the application:
// bearer-token authentication and role gating.
package middleware

import (
	"errors"
	"strings"

	"mynunny/internal/models"
	"mynunny/internal/utils"

	"github.com/gofiber/fiber/v2"
)

// ClaimsKey is where decoded claims live in the request context.
const ClaimsKey = "claims"

var (
	errNoToken      = errors.New("no token provided")
	errInvalidToken = errors.New("invalid token")
)

// AuthMiddleware validates session tokens and attaches claims to the
// request context.
type AuthMiddleware struct {
	jwtSecret string
}

func NewAuthMiddleware(jwtSecret string) *AuthMiddleware {
	return &AuthMiddleware{jwtSecret: jwtSecret}
}

// authenticate extracts and verifies the bearer token. Verification fails
// closed: missing token, bad signature and expiry all reject the request.
func (m *AuthMiddleware) authenticate(c *fiber.Ctx) (*models.UserClaims, error) {
	authHeader := c.Get("Authorization")
	if authHeader == "" {
		return nil, errNoToken
	}

	tokenString := strings.TrimPrefix(authHeader, "Bearer ")
	claims, err := utils.ParseToken(tokenString, m.jwtSecret)
	if err != nil {
		return nil, errInvalidToken
	}
	return claims, nil
}

// RequireAuth rejects unauthenticated requests and stores the decoded
// claims in the request context.
func (m *AuthMiddleware) RequireAuth(c *fiber.Ctx) error {
	claims, err := m.authenticate(c)
	if err != nil {
		if errors.Is(err, errNoToken) {
			return utils.Unauthorized(c, "No token provided")
		}
		return utils.Unauthorized(c, "Invalid token")
	}

	c.Locals(ClaimsKey, claims)
	return c.Next()
}

// RequireRole composes authentication with a role check. Role gating is
// coarse; per-row ownership is still checked inside handlers.
func (m *AuthMiddleware) RequireRole(roles ...string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		claims, err := m.authenticate(c)
		if err != nil {
			if errors.Is(err, errNoToken) {
				return utils.Unauthorized(c, "No token provided")
			}
			return utils.Unauthorized(c, "Invalid token")
		}
		c.Locals(ClaimsKey, claims)

		for _, role := range roles {
			if claims.Role == role {
				return c.Next()
			}
		}
		return utils.Forbidden(c, "Insufficient permissions")
	}
}

// Claims returns the decoded claims stored by the auth middleware, or nil.
func Claims(c *fiber.Ctx) *models.UserClaims {
	claims, _ := c.Locals(ClaimsKey).(*models.UserClaims)
	return claims
}
