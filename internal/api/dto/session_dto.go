package dto

import "time"

// TokenRequest payload for POST /jwt.
type TokenRequest struct {
	Email string `json:"email"`
}

// TokenResponse answers POST /jwt.
type TokenResponse struct {
	Success bool   `json:"success"`
	Token   string `json:"token"`
}

// LogoutResponse answers POST /logout.
type LogoutResponse struct {
	Success bool `json:"success"`
}

// SessionClaims echoes a verified session.
type SessionClaims struct {
	Email     string    `json:"email"`
	IssuedAt  time.Time `json:"iat"`
	ExpiresAt time.Time `json:"exp"`
}

// ProtectedResponse answers GET /protected.
type ProtectedResponse struct {
	Message string        `json:"message"`
	User    SessionClaims `json:"user"`
}
