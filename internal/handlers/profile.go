package handlers

import (
	"errors"
	"log"

	"mynunny/internal/middleware"
	"mynunny/internal/services/uploader"
	"mynunny/internal/services/user"
	"mynunny/internal/utils"

	"github.com/gofiber/fiber/v2"
)

type ProfileHandler struct {
	userService user.Service
}

func NewProfileHandler(userService user.Service) *ProfileHandler {
	return &ProfileHandler{userService: userService}
}

// Update applies a multipart profile edit: names, location, a new service
// term and an optional profile picture.
func (h *ProfileHandler) Update(c *fiber.Ctx) error {
	claims := middleware.Claims(c)
	if claims == nil {
		return utils.Unauthorized(c, "Invalid token")
	}

	input := &user.UpdateProfileInput{
		FullName:             c.FormValue("fullName"),
		LocationCounty:       c.FormValue("locationCounty"),
		LocationConstituency: c.FormValue("locationConstituency"),
		NewServiceTerm:       c.FormValue("newServiceTerm"),
		PictureURL:           c.FormValue("profilePictureUrl"),
	}

	if fileHeader, err := c.FormFile("profilePicture"); err == nil && fileHeader != nil {
		if fileHeader.Size > uploader.MaxImageSize {
			return utils.PayloadTooLarge(c, "Image must be 5MB or smaller")
		}
		file, err := fileHeader.Open()
		if err != nil {
			log.Printf("failed to open uploaded file: %v", err)
			return utils.BadRequest(c, "Invalid image upload")
		}
		defer file.Close()
		input.Picture = file
	}

	updated, err := h.userService.UpdateProfile(c.Context(), claims.UserID, input)
	if err != nil {
		if errors.Is(err, user.ErrPictureUpload) {
			return utils.BadGateway(c, "Unable to update profile picture")
		}
		log.Printf("profile update failed for user %d: %v", claims.UserID, err)
		return utils.InternalError(c, "Failed to update profile")
	}

	return utils.Success(c, fiber.Map{"user": updated.Public()})
}
