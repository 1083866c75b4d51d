package handlers

import (
	"log"
	"strconv"

	"mynunny/internal/services/nunny"
	"mynunny/internal/services/rating"
	"mynunny/internal/utils"

	"github.com/gofiber/fiber/v2"
)

// NunnyHandler serves the public provider listings and rating summaries.
type NunnyHandler struct {
	nunnyService  nunny.Service
	ratingService rating.Service
}

func NewNunnyHandler(nunnyService nunny.Service, ratingService rating.Service) *NunnyHandler {
	return &NunnyHandler{
		nunnyService:  nunnyService,
		ratingService: ratingService,
	}
}

// ListApproved returns the public feed of APPROVED nunnies.
func (h *NunnyHandler) ListApproved(c *fiber.Ctx) error {
	profiles, err := h.nunnyService.ListApproved()
	if err != nil {
		log.Printf("failed to list approved nunnies: %v", err)
		return utils.InternalError(c, "Failed to fetch nunnies")
	}
	return utils.Success(c, fiber.Map{"nunnies": profiles})
}

// Ratings returns all ratings for a nunny with the running average.
func (h *NunnyHandler) Ratings(c *fiber.Ctx) error {
	nunnyUserID, err := strconv.ParseUint(c.Params("id"), 10, 32)
	if err != nil {
		return utils.BadRequest(c, "Invalid nunny ID")
	}

	summary, err := h.ratingService.SummaryFor(uint(nunnyUserID))
	if err != nil {
		log.Printf("failed to fetch ratings for nunny %d: %v", nunnyUserID, err)
		return utils.InternalError(c, "Failed to fetch ratings")
	}
	return utils.Success(c, summary)
}
