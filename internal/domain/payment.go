package domain

import "time"

// PaymentStatus tracks settlement of a recorded payment.
type PaymentStatus string

const (
	PaymentStatusPending   PaymentStatus = "pending"
	PaymentStatusCompleted PaymentStatus = "completed"
	PaymentStatusFailed    PaymentStatus = "failed"
)

// Payment records an application fee confirmed by the payment processor.
type Payment struct {
	ID            string
	Email         string
	Name          string
	Fee           float64
	TransactionID string
	Date          time.Time
	Status        PaymentStatus
}
