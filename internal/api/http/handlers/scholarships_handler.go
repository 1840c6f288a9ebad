package handlers

import (
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/scholarship-service/internal/api/dto"
	"github.com/spec-kit/scholarship-service/internal/auth"
	"github.com/spec-kit/scholarship-service/internal/service"
	apperrors "github.com/spec-kit/scholarship-service/pkg/util"
)

// ScholarshipsHandler serves the scholarship catalog.
type ScholarshipsHandler struct {
	scholarships *service.ScholarshipService
}

// NewScholarshipsHandler constructs handler.
func NewScholarshipsHandler(scholarships *service.ScholarshipService) *ScholarshipsHandler {
	return &ScholarshipsHandler{scholarships: scholarships}
}

// List handles GET /scholarship.
func (h *ScholarshipsHandler) List(c *fiber.Ctx) error {
	items, err := h.scholarships.List(c.UserContext())
	if err != nil {
		return err
	}
	return c.JSON(dto.NewScholarshipList(items))
}

// Get handles GET /scholarship/:id.
func (h *ScholarshipsHandler) Get(c *fiber.Ctx) error {
	item, err := h.scholarships.Get(c.UserContext(), c.Params("id"))
	if err != nil {
		return err
	}
	return c.JSON(dto.NewScholarshipResponse(item))
}

// Create handles POST /scholarship.
func (h *ScholarshipsHandler) Create(c *fiber.Ctx) error {
	var req dto.ScholarshipRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}
	session, _ := auth.SessionFromContext(c)

	item, err := h.scholarships.Create(c.UserContext(), session.Email, req.ToDomain())
	if err != nil {
		return err
	}
	return c.Status(http.StatusCreated).JSON(dto.ScholarshipCreatedResponse{
		Message: "Scholarship added successfully",
		Result:  dto.NewScholarshipResponse(item),
	})
}
