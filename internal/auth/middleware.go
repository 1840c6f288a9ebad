package auth

import (
	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/scholarship-service/internal/domain"
	apperrors "github.com/spec-kit/scholarship-service/pkg/util"
)

const sessionKey = "auth_session"

// SessionMiddleware verifies the session cookie and attaches the identity.
type SessionMiddleware struct {
	tokens     *TokenManager
	cookieName string
}

// NewSessionMiddleware constructs middleware reading the named cookie.
func NewSessionMiddleware(tokens *TokenManager, cookieName string) *SessionMiddleware {
	return &SessionMiddleware{tokens: tokens, cookieName: cookieName}
}

// Handle rejects requests without a valid session token.
func (m *SessionMiddleware) Handle(c *fiber.Ctx) error {
	raw := c.Cookies(m.cookieName)
	if raw == "" {
		return apperrors.NewUnauthorized("unauthorized access")
	}

	claims, err := m.tokens.ParseToken(raw)
	if err != nil {
		return apperrors.NewUnauthorized("unauthorized access")
	}

	c.Locals(sessionKey, claims.Session())
	return c.Next()
}

// SessionFromContext retrieves the verified identity.
func SessionFromContext(c *fiber.Ctx) (*domain.Session, bool) {
	val := c.Locals(sessionKey)
	if val == nil {
		return nil, false
	}
	session, ok := val.(*domain.Session)
	return session, ok
}
