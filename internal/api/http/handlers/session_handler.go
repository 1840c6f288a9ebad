package handlers

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/scholarship-service/internal/api/dto"
	"github.com/spec-kit/scholarship-service/internal/auth"
	"github.com/spec-kit/scholarship-service/internal/service"
	apperrors "github.com/spec-kit/scholarship-service/pkg/util"
)

// CookiePolicy fixes the attributes of the session cookie. Logout must
// send the same attributes for the browser to drop the cookie.
type CookiePolicy struct {
	Name   string
	Secure bool
}

// NewCookiePolicy derives the policy for the deployment environment.
func NewCookiePolicy(name string, production bool) CookiePolicy {
	return CookiePolicy{Name: name, Secure: production}
}

func (p CookiePolicy) sameSite() string {
	if p.Secure {
		return fiber.CookieSameSiteNoneMode
	}
	return fiber.CookieSameSiteStrictMode
}

func (p CookiePolicy) cookie(value string, expires time.Time) *fiber.Cookie {
	return &fiber.Cookie{
		Name:     p.Name,
		Value:    value,
		Path:     "/",
		Expires:  expires,
		HTTPOnly: true,
		Secure:   p.Secure,
		SameSite: p.sameSite(),
	}
}

// SessionHandler issues and clears session cookies.
type SessionHandler struct {
	sessions *service.SessionService
	policy   CookiePolicy
}

// NewSessionHandler constructs handler.
func NewSessionHandler(sessions *service.SessionService, policy CookiePolicy) *SessionHandler {
	return &SessionHandler{sessions: sessions, policy: policy}
}

// Issue handles POST /jwt.
func (h *SessionHandler) Issue(c *fiber.Ctx) error {
	var req dto.TokenRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("email is required", nil)
	}

	issued, err := h.sessions.Issue(req.Email)
	if err != nil {
		return err
	}
	c.Cookie(h.policy.cookie(issued.Token, issued.ExpiresAt))
	return c.JSON(dto.TokenResponse{Success: true, Token: issued.Token})
}

// Logout handles POST /logout.
func (h *SessionHandler) Logout(c *fiber.Ctx) error {
	c.Cookie(h.policy.cookie("", time.Unix(0, 0)))
	return c.JSON(dto.LogoutResponse{Success: true})
}

// Protected handles GET /protected.
func (h *SessionHandler) Protected(c *fiber.Ctx) error {
	session, _ := auth.SessionFromContext(c)
	return c.JSON(dto.ProtectedResponse{
		Message: "This is a protected route",
		User: dto.SessionClaims{
			Email:     session.Email,
			IssuedAt:  session.IssuedAt,
			ExpiresAt: session.ExpiresAt,
		},
	})
}
