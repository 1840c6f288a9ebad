package handlers

import (
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/scholarship-service/internal/api/dto"
	"github.com/spec-kit/scholarship-service/internal/auth"
	"github.com/spec-kit/scholarship-service/internal/domain"
	"github.com/spec-kit/scholarship-service/internal/service"
	apperrors "github.com/spec-kit/scholarship-service/pkg/util"
)

// OrdersHandler exposes scholarship applications.
type OrdersHandler struct {
	orders *service.OrderService
}

// NewOrdersHandler constructs handler.
func NewOrdersHandler(orders *service.OrderService) *OrdersHandler {
	return &OrdersHandler{orders: orders}
}

// Create handles POST /order.
func (h *OrdersHandler) Create(c *fiber.Ctx) error {
	var req dto.CreateOrderRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}
	session, _ := auth.SessionFromContext(c)

	order, err := h.orders.Create(c.UserContext(), session.Email, service.OrderCreateInput{
		Applicant: domain.Applicant{
			Email: req.Applicant.Email,
			Name:  req.Applicant.Name,
			Phone: req.Applicant.Phone,
			Image: req.Applicant.Image,
		},
		ScholarshipID: req.ScholarshipID,
		Amount:        req.Amount,
		Details:       req.Details,
	})
	if err != nil {
		return err
	}
	return c.Status(http.StatusCreated).JSON(dto.NewOrderResponse(order))
}

// CustomerOrders handles GET /customer-orders/:email.
func (h *OrdersHandler) CustomerOrders(c *fiber.Ctx) error {
	orders, err := h.orders.CustomerOrders(c.UserContext(), c.Params("email"))
	if err != nil {
		return err
	}
	return c.JSON(dto.NewCustomerOrderList(orders))
}

// Cancel handles DELETE /orders/:id.
func (h *OrdersHandler) Cancel(c *fiber.Ctx) error {
	session, _ := auth.SessionFromContext(c)
	if err := h.orders.Cancel(c.UserContext(), session.Email, c.Params("id")); err != nil {
		return err
	}
	return c.JSON(fiber.Map{"deleted_count": 1})
}
