package auth

import (
	"context"
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/scholarship-service/internal/domain"
	apperrors "github.com/spec-kit/scholarship-service/pkg/util"
)

// UserLookup resolves the stored user behind a verified identity.
type UserLookup interface {
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
}

// RequireRole ensures the caller's stored role is one of allowed. It must run
// after SessionMiddleware.Handle. The role is read from the store on every
// request so privilege changes apply without a new token.
func RequireRole(users UserLookup, allowed ...domain.Role) fiber.Handler {
	allowedSet := make(map[domain.Role]struct{}, len(allowed))
	for _, role := range allowed {
		allowedSet[role] = struct{}{}
	}

	return func(c *fiber.Ctx) error {
		session, ok := SessionFromContext(c)
		if !ok {
			return apperrors.NewUnauthorized("unauthorized access")
		}
		user, err := users.GetByEmail(c.UserContext(), session.Email)
		if err != nil {
			if errors.Is(err, domain.ErrNotFound) {
				return apperrors.NewForbidden("forbidden access")
			}
			return apperrors.NewInternalError(err)
		}
		if _, exists := allowedSet[user.Role]; !exists {
			return apperrors.NewForbidden("forbidden access")
		}
		return c.Next()
	}
}

// RequireSelf ensures the route parameter names the caller's own email.
func RequireSelf(param string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		session, ok := SessionFromContext(c)
		if !ok {
			return apperrors.NewUnauthorized("unauthorized access")
		}
		if c.Params(param) != session.Email {
			return apperrors.NewForbidden("forbidden access")
		}
		return c.Next()
	}
}
