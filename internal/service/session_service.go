package service

import (
	"strings"
	"time"

	"github.com/spec-kit/scholarship-service/internal/auth"
	apperrors "github.com/spec-kit/scholarship-service/pkg/util"
)

// IssuedToken is a signed session token and its expiry.
type IssuedToken struct {
	Token     string
	ExpiresAt time.Time
}

// SessionService exchanges an identity asserted by the identity provider
// for a session token.
type SessionService struct {
	tokens *auth.TokenManager
}

// NewSessionService constructs the service.
func NewSessionService(tokens *auth.TokenManager) *SessionService {
	return &SessionService{tokens: tokens}
}

// Issue signs a token for email.
func (s *SessionService) Issue(email string) (*IssuedToken, error) {
	email = strings.TrimSpace(email)
	if email == "" {
		return nil, apperrors.NewValidationError("email required", nil)
	}
	token, expiresAt, err := s.tokens.GenerateToken(email)
	if err != nil {
		return nil, apperrors.NewInternalError(err)
	}
	return &IssuedToken{Token: token, ExpiresAt: expiresAt}, nil
}
