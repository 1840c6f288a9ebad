package domain

import "time"

// CheckoutRecord is a free-form payload stored under a caller supplied id.
type CheckoutRecord struct {
	ID        string
	Payload   map[string]any
	CreatedAt time.Time
}
