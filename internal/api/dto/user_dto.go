package dto

import (
	"time"

	"github.com/spec-kit/scholarship-service/internal/domain"
)

// UserRegisterRequest carries optional profile fields for POST /users/:email.
type UserRegisterRequest struct {
	Name  string `json:"name"`
	Image string `json:"image"`
}

// UpdateRoleRequest payload for PATCH /user/role/:email.
type UpdateRoleRequest struct {
	Role domain.Role `json:"role"`
}

// UserResponse is the stored user record.
type UserResponse struct {
	Email     string            `json:"email"`
	Name      string            `json:"name,omitempty"`
	Image     string            `json:"image,omitempty"`
	Role      domain.Role       `json:"role"`
	Status    domain.UserStatus `json:"status,omitempty"`
	Timestamp int64             `json:"timestamp"`
	CreatedAt time.Time         `json:"created_at"`
}

// RoleResponse answers GET /users/role/:email.
type RoleResponse struct {
	Role domain.Role `json:"role"`
}

// NewUserResponse maps a domain user.
func NewUserResponse(u *domain.User) UserResponse {
	return UserResponse{
		Email:     u.Email,
		Name:      u.Name,
		Image:     u.Image,
		Role:      u.Role,
		Status:    u.Status,
		Timestamp: u.CreatedAt.UnixMilli(),
		CreatedAt: u.CreatedAt,
	}
}

// NewUserList maps users to responses, never returning nil.
func NewUserList(users []domain.User) []UserResponse {
	out := make([]UserResponse, 0, len(users))
	for i := range users {
		out = append(out, NewUserResponse(&users[i]))
	}
	return out
}
