package handlers

import (
	"errors"
	"log"

	"mynunny/internal/models"
	"mynunny/internal/services/auth"
	"mynunny/internal/utils"
	"mynunny/internal/validation"

	"github.com/gofiber/fiber/v2"
)

type AuthHandler struct {
	authService auth.Service
}

func NewAuthHandler(authService auth.Service) *AuthHandler {
	return &AuthHandler{authService: authService}
}

// Register handles phase 1 of signup: field validation, OTP issue and the
// tempData bundle the client echoes back to VerifyOTP.
func (h *AuthHandler) Register(c *fiber.Ctx) error {
	var input models.RegisterInput
	if err := c.BodyParser(&input); err != nil {
		return utils.BadRequest(c, "Invalid request body")
	}

	v := validation.New()
	v.Registration(&input)
	if !v.Valid() {
		return utils.BadRequest(c, v.First())
	}

	tempData, err := h.authService.Register(&input)
	if err != nil {
		if errors.Is(err, auth.ErrUserExists) {
			return utils.BadRequest(c, "User already exists")
		}
		log.Printf("registration failed for %s: %v", input.Email, err)
		return utils.InternalError(c, "Registration failed")
	}

	return utils.Success(c, fiber.Map{
		"message":  "OTP sent to email",
		"email":    input.Email,
		"role":     input.Role,
		"tempData": tempData,
	})
}

// VerifyOTP handles phase 2 of signup: OTP consumption, atomic account
// creation and session-token issue.
func (h *AuthHandler) VerifyOTP(c *fiber.Ctx) error {
	var input struct {
		Email    string                   `json:"email"`
		OTP      string                   `json:"otp"`
		TempData *models.RegistrationData `json:"tempData"`
	}
	if err := c.BodyParser(&input); err != nil {
		return utils.BadRequest(c, "Invalid request body")
	}
	if input.Email == "" || input.OTP == "" || input.TempData == nil {
		return utils.BadRequest(c, "Missing required fields")
	}

	user, token, err := h.authService.VerifyOTP(input.Email, input.OTP, input.TempData)
	if err != nil {
		switch {
		case errors.Is(err, auth.ErrInvalidOTP):
			return utils.BadRequest(c, "Invalid or expired OTP")
		case errors.Is(err, auth.ErrEmailConflict):
			return utils.Conflict(c, "Email already registered")
		case errors.Is(err, auth.ErrIDNumberConflict):
			return utils.Conflict(c, "ID number already registered")
		}
		log.Printf("otp verification failed for %s: %v", input.Email, err)
		return utils.InternalError(c, "Verification failed")
	}

	return utils.Success(c, fiber.Map{
		"message": "Registration successful",
		"token":   token,
		"user":    user.Public(),
	})
}

// Login authenticates by email or username.
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var input models.LoginInput
	if err := c.BodyParser(&input); err != nil {
		return utils.BadRequest(c, "Invalid request body")
	}

	v := validation.New()
	v.Login(&input)
	if !v.Valid() {
		return utils.BadRequest(c, v.First())
	}

	user, token, err := h.authService.Login(&input)
	if err != nil {
		if errors.Is(err, auth.ErrInvalidCredentials) {
			return utils.Unauthorized(c, "Invalid credentials")
		}
		log.Printf("login failed: %v", err)
		return utils.InternalError(c, "Authentication failed")
	}

	return utils.Success(c, fiber.Map{
		"message": "Login successful",
		"token":   token,
		"user": fiber.Map{
			"id":                user.ID,
			"email":             user.Email,
			"username":          user.Username,
			"role":              user.Role,
			"fullName":          user.FullName,
			"verified":          user.Verified,
			"profilePictureUrl": user.ProfilePictureURL,
			"nunnyProfile":      user.NunnyProfile,
			"clientProfile":     user.ClientProfile,
		},
	})
}

// forgotPasswordMessage is returned whether or not the account exists.
const forgotPasswordMessage = "If that email exists, a reset link has been sent."

// ForgotPassword always responds with the same message to avoid account
// enumeration.
func (h *AuthHandler) ForgotPassword(c *fiber.Ctx) error {
	var input struct {
		Email string `json:"email"`
	}
	if err := c.BodyParser(&input); err != nil || input.Email == "" {
		return utils.BadRequest(c, "Email is required")
	}

	if err := h.authService.ForgotPassword(input.Email); err != nil {
		// Same response as success; detail stays in the server logs.
		log.Printf("forgot-password failed: %v", err)
	}

	return utils.Success(c, fiber.Map{"message": forgotPasswordMessage})
}

// ResetPassword consumes a reset token. All failure causes share one
// generic error.
func (h *AuthHandler) ResetPassword(c *fiber.Ctx) error {
	var input models.ResetPasswordInput
	if err := c.BodyParser(&input); err != nil {
		return utils.BadRequest(c, "Invalid request body")
	}

	v := validation.New()
	v.ResetPassword(&input)
	if !v.Valid() {
		return utils.BadRequest(c, v.First())
	}

	if err := h.authService.ResetPassword(&input); err != nil {
		if errors.Is(err, auth.ErrInvalidResetToken) {
			return utils.BadRequest(c, "Invalid or expired token")
		}
		log.Printf("reset-password failed: %v", err)
		return utils.InternalError(c, "Something went wrong")
	}

	return utils.Success(c, fiber.Map{"message": "Password reset successful"})
}
