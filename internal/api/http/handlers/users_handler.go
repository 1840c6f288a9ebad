package handlers

import (
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/scholarship-service/internal/api/dto"
	"github.com/spec-kit/scholarship-service/internal/auth"
	"github.com/spec-kit/scholarship-service/internal/service"
	apperrors "github.com/spec-kit/scholarship-service/pkg/util"
)

// UsersHandler exposes registration and role administration.
type UsersHandler struct {
	users *service.UserService
}

// NewUsersHandler constructs handler.
func NewUsersHandler(users *service.UserService) *UsersHandler {
	return &UsersHandler{users: users}
}

// Register handles POST /users/:email.
func (h *UsersHandler) Register(c *fiber.Ctx) error {
	var req dto.UserRegisterRequest
	if len(c.Body()) > 0 {
		if err := c.BodyParser(&req); err != nil {
			return apperrors.NewValidationError("invalid payload", nil)
		}
	}

	user, created, err := h.users.Register(c.UserContext(), c.Params("email"), service.UserProfile{
		Name:  req.Name,
		Image: req.Image,
	})
	if err != nil {
		return err
	}

	status := http.StatusOK
	if created {
		status = http.StatusCreated
	}
	return c.Status(status).JSON(dto.NewUserResponse(user))
}

// Role handles GET /users/role/:email.
func (h *UsersHandler) Role(c *fiber.Ctx) error {
	role, err := h.users.Role(c.UserContext(), c.Params("email"))
	if err != nil {
		return err
	}
	return c.JSON(dto.RoleResponse{Role: role})
}

// ListOthers handles GET /all-users/:email.
func (h *UsersHandler) ListOthers(c *fiber.Ctx) error {
	users, err := h.users.ListExcept(c.UserContext(), c.Params("email"))
	if err != nil {
		return err
	}
	return c.JSON(dto.NewUserList(users))
}

// UpdateRole handles PATCH /user/role/:email.
func (h *UsersHandler) UpdateRole(c *fiber.Ctx) error {
	var req dto.UpdateRoleRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}
	session, _ := auth.SessionFromContext(c)

	user, err := h.users.UpdateRole(c.UserContext(), session.Email, c.Params("email"), req.Role)
	if err != nil {
		return err
	}
	return c.JSON(dto.NewUserResponse(user))
}
