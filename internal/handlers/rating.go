package handlers

import (
	"errors"
	"log"

	"mynunny/internal/middleware"
	"mynunny/internal/models"
	"mynunny/internal/services/rating"
	"mynunny/internal/utils"
	"mynunny/internal/validation"

	"github.com/gofiber/fiber/v2"
)

type RatingHandler struct {
	ratingService rating.Service
}

func NewRatingHandler(ratingService rating.Service) *RatingHandler {
	return &RatingHandler{ratingService: ratingService}
}

// Submit upserts the calling client's rating of a nunny.
func (h *RatingHandler) Submit(c *fiber.Ctx) error {
	claims := middleware.Claims(c)
	if claims == nil {
		return utils.Unauthorized(c, "Invalid token")
	}

	var input models.RatingInput
	if err := c.BodyParser(&input); err != nil {
		return utils.BadRequest(c, "Invalid request body")
	}

	v := validation.New()
	v.Rating(&input)
	if !v.Valid() {
		return utils.BadRequest(c, v.First())
	}

	submitted, err := h.ratingService.Submit(claims.UserID, &input)
	if err != nil {
		switch {
		case errors.Is(err, rating.ErrNunnyNotFound):
			return utils.NotFound(c, "Nunny not found")
		case errors.Is(err, rating.ErrNunnyNotApproved):
			return utils.BadRequest(c, "Can only rate approved nunnies")
		}
		log.Printf("rating submission failed: %v", err)
		return utils.InternalError(c, "Failed to submit rating")
	}

	return utils.Success(c, fiber.Map{
		"message": "Rating submitted successfully",
		"rating":  submitted,
	})
}
