package domain

import "time"

// Session describes the identity carried by a verified session token.
type Session struct {
	Email     string
	IssuedAt  time.Time
	ExpiresAt time.Time
}
