package handlers

import (
	"log"

	"mynunny/internal/models"
	"mynunny/internal/services/mailer"
	"mynunny/internal/utils"
	"mynunny/internal/validation"

	"github.com/gofiber/fiber/v2"
)

// ContactHandler relays contact-form messages to the support address.
// Unlike the best-effort notification mails, a relay failure is surfaced.
type ContactHandler struct {
	mailer mailer.Mailer
}

func NewContactHandler(m mailer.Mailer) *ContactHandler {
	return &ContactHandler{mailer: m}
}

func (h *ContactHandler) Submit(c *fiber.Ctx) error {
	var input models.ContactInput
	if err := c.BodyParser(&input); err != nil {
		return utils.BadRequest(c, "Invalid request body")
	}

	v := validation.New()
	v.Contact(&input)
	if !v.Valid() {
		return utils.BadRequest(c, v.First())
	}

	if err := h.mailer.SendContact(c.Context(), input.Name, input.Email, input.Message); err != nil {
		log.Printf("contact relay failed: %v", err)
		return utils.BadGateway(c, "Failed to send message")
	}

	return utils.Success(c, fiber.Map{"message": "Message sent successfully"})
}
