package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/scholarship-service/internal/service"
	apperrors "github.com/spec-kit/scholarship-service/pkg/util"
)

// CheckoutHandler stores free-form checkout payloads.
type CheckoutHandler struct {
	checkouts *service.CheckoutService
}

// NewCheckoutHandler constructs handler.
func NewCheckoutHandler(checkouts *service.CheckoutService) *CheckoutHandler {
	return &CheckoutHandler{checkouts: checkouts}
}

// Save handles POST /checkout.
func (h *CheckoutHandler) Save(c *fiber.Ctx) error {
	var payload map[string]any
	if err := c.BodyParser(&payload); err != nil || payload == nil {
		return apperrors.NewValidationError("invalid data format", nil)
	}

	record, err := h.checkouts.Save(c.UserContext(), payload)
	if err != nil {
		return err
	}
	return c.JSON(record.Payload)
}

// Get handles GET /checkout/:id.
func (h *CheckoutHandler) Get(c *fiber.Ctx) error {
	record, err := h.checkouts.Get(c.UserContext(), c.Params("id"))
	if err != nil {
		return err
	}
	return c.JSON(record.Payload)
}

// List handles GET /checkout.
func (h *CheckoutHandler) List(c *fiber.Ctx) error {
	records, err := h.checkouts.List(c.UserContext())
	if err != nil {
		return err
	}
	payloads := make([]map[string]any, 0, len(records))
	for _, record := range records {
		payloads = append(payloads, record.Payload)
	}
	return c.JSON(payloads)
}
