package handlers

import (
	"errors"
	"log"
	"strconv"

	"mynunny/internal/models"
	"mynunny/internal/services/nunny"
	"mynunny/internal/utils"

	"github.com/gofiber/fiber/v2"
)

// AdminHandler exposes the admin-only nunny management endpoints. Role
// gating happens in the route group; these handlers own the state checks.
type AdminHandler struct {
	nunnyService nunny.Service
}

func NewAdminHandler(nunnyService nunny.Service) *AdminHandler {
	return &AdminHandler{nunnyService: nunnyService}
}

// ListNunnies returns every provider profile for the admin dashboard.
func (h *AdminHandler) ListNunnies(c *fiber.Ctx) error {
	profiles, err := h.nunnyService.ListAll()
	if err != nil {
		log.Printf("failed to list nunnies: %v", err)
		return utils.InternalError(c, "Failed to fetch nunnies")
	}
	return utils.Success(c, fiber.Map{"nunnies": profiles})
}

func (h *AdminHandler) ApproveNunny(c *fiber.Ctx) error {
	return h.transition(c, h.nunnyService.Approve, "Nunny approved successfully")
}

func (h *AdminHandler) RejectNunny(c *fiber.Ctx) error {
	return h.transition(c, h.nunnyService.Reject, "Nunny rejected successfully")
}

func (h *AdminHandler) SuspendNunny(c *fiber.Ctx) error {
	return h.transition(c, h.nunnyService.Suspend, "Nunny suspended successfully")
}

func (h *AdminHandler) UnsuspendNunny(c *fiber.Ctx) error {
	return h.transition(c, h.nunnyService.Unsuspend, "Nunny reinstated successfully")
}

func (h *AdminHandler) transition(c *fiber.Ctx, apply func(uint) (*models.NunnyProfile, error), message string) error {
	id, err := strconv.ParseUint(c.Params("id"), 10, 32)
	if err != nil {
		return utils.BadRequest(c, "Invalid nunny ID")
	}

	profile, err := apply(uint(id))
	if err != nil {
		switch {
		case errors.Is(err, nunny.ErrNotFound):
			return utils.NotFound(c, "Nunny profile not found")
		case errors.Is(err, nunny.ErrNotPending):
			return utils.BadRequest(c, "Nunny is not pending review")
		case errors.Is(err, nunny.ErrNotApproved):
			return utils.BadRequest(c, "Nunny is not approved")
		case errors.Is(err, nunny.ErrNotSuspended):
			return utils.BadRequest(c, "Nunny is not suspended")
		}
		log.Printf("nunny status transition failed: %v", err)
		return utils.InternalError(c, "Failed to update nunny")
	}

	return utils.Success(c, fiber.Map{
		"message": message,
		"nunny":   profile,
	})
}
