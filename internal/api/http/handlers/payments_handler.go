package handlers

import (
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/scholarship-service/internal/api/dto"
	"github.com/spec-kit/scholarship-service/internal/auth"
	"github.com/spec-kit/scholarship-service/internal/service"
	apperrors "github.com/spec-kit/scholarship-service/pkg/util"
)

// PaymentsHandler exposes payment intents and payment records.
type PaymentsHandler struct {
	payments *service.PaymentService
}

// NewPaymentsHandler constructs handler.
func NewPaymentsHandler(payments *service.PaymentService) *PaymentsHandler {
	return &PaymentsHandler{payments: payments}
}

// CreateIntent handles POST /create-payment-intent.
func (h *PaymentsHandler) CreateIntent(c *fiber.Ctx) error {
	var req dto.PaymentIntentRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}

	secret, err := h.payments.CreateIntent(c.UserContext(), req.Fee)
	if err != nil {
		return err
	}
	return c.JSON(dto.PaymentIntentResponse{ClientSecret: secret})
}

// Record handles POST /payments.
func (h *PaymentsHandler) Record(c *fiber.Ctx) error {
	var req dto.RecordPaymentRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}
	session, _ := auth.SessionFromContext(c)

	payment, err := h.payments.Record(c.UserContext(), session.Email, service.PaymentInput{
		Email:         req.Email,
		Name:          req.Name,
		Fee:           req.Fee,
		TransactionID: req.TransactionID,
	})
	if err != nil {
		return err
	}
	return c.Status(http.StatusCreated).JSON(dto.NewPaymentResponse(payment))
}

// List handles GET /payments/:email. RequireSelf guarantees the param is
// the caller's email.
func (h *PaymentsHandler) List(c *fiber.Ctx) error {
	session, _ := auth.SessionFromContext(c)
	payments, err := h.payments.ListForCaller(c.UserContext(), session.Email)
	if err != nil {
		return err
	}
	return c.JSON(dto.NewPaymentList(payments))
}
