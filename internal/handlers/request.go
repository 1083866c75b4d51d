package handlers

import (
	"errors"
	"log"
	"strconv"

	"mynunny/internal/middleware"
	"mynunny/internal/models"
	"mynunny/internal/services/request"
	"mynunny/internal/utils"
	"mynunny/internal/validation"

	"github.com/gofiber/fiber/v2"
)

type RequestHandler struct {
	requestService request.Service
}

func NewRequestHandler(requestService request.Service) *RequestHandler {
	return &RequestHandler{requestService: requestService}
}

// ListPublic returns the open request feed.
func (h *RequestHandler) ListPublic(c *fiber.Ctx) error {
	requests, err := h.requestService.ListPublic()
	if err != nil {
		log.Printf("failed to list requests: %v", err)
		return utils.InternalError(c, "Failed to fetch requests")
	}
	return utils.Success(c, fiber.Map{"requests": requests})
}

// Create posts a new service request owned by the caller.
func (h *RequestHandler) Create(c *fiber.Ctx) error {
	claims := middleware.Claims(c)
	if claims == nil {
		return utils.Unauthorized(c, "Invalid token")
	}

	var input models.CreateRequestInput
	if err := c.BodyParser(&input); err != nil {
		return utils.BadRequest(c, "Invalid request body")
	}

	v := validation.New()
	v.CreateRequest(&input)
	if !v.Valid() {
		return utils.BadRequest(c, v.First())
	}

	created, err := h.requestService.Create(claims.UserID, &input)
	if err != nil {
		log.Printf("failed to create request: %v", err)
		return utils.InternalError(c, "Failed to create request")
	}
	return utils.Success(c, fiber.Map{"request": created})
}

// ListMine returns the caller's own requests.
func (h *RequestHandler) ListMine(c *fiber.Ctx) error {
	claims := middleware.Claims(c)
	if claims == nil {
		return utils.Unauthorized(c, "Invalid token")
	}

	requests, err := h.requestService.ListMine(claims.UserID)
	if err != nil {
		log.Printf("failed to list own requests: %v", err)
		return utils.InternalError(c, "Failed to fetch requests")
	}
	return utils.Success(c, fiber.Map{"requests": requests})
}

// Assign marks the request taken; owner only.
func (h *RequestHandler) Assign(c *fiber.Ctx) error {
	return h.setStatus(c, h.requestService.Assign)
}

// Unassign reopens the request; owner only.
func (h *RequestHandler) Unassign(c *fiber.Ctx) error {
	return h.setStatus(c, h.requestService.Unassign)
}

func (h *RequestHandler) setStatus(c *fiber.Ctx, apply func(id, callerID uint) (*models.Request, error)) error {
	claims := middleware.Claims(c)
	if claims == nil {
		return utils.Unauthorized(c, "Invalid token")
	}

	id, err := strconv.ParseUint(c.Params("id"), 10, 32)
	if err != nil {
		return utils.BadRequest(c, "Invalid request ID")
	}

	updated, err := apply(uint(id), claims.UserID)
	if err != nil {
		switch {
		case errors.Is(err, request.ErrNotFound):
			return utils.NotFound(c, "Request not found")
		case errors.Is(err, request.ErrNotOwner):
			return utils.Forbidden(c, "Forbidden")
		}
		log.Printf("request status change failed: %v", err)
		return utils.InternalError(c, "Failed to update request")
	}
	return utils.Success(c, fiber.Map{"request": updated})
}
