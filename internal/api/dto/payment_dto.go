package dto

import (
	"time"

	"github.com/spec-kit/scholarship-service/internal/domain"
)

// PaymentIntentRequest payload for POST /create-payment-intent.
type PaymentIntentRequest struct {
	Fee float64 `json:"fee"`
}

// PaymentIntentResponse carries the secret the browser confirms with.
type PaymentIntentResponse struct {
	ClientSecret string `json:"clientSecret"`
}

// RecordPaymentRequest payload for POST /payments. Decoding is case
// insensitive, so a "Fee" key also binds.
type RecordPaymentRequest struct {
	Email         string  `json:"email"`
	Name          string  `json:"name"`
	Fee           float64 `json:"fee"`
	TransactionID string  `json:"transactionId"`
}

// PaymentResponse is a recorded payment.
type PaymentResponse struct {
	ID            string               `json:"id"`
	Email         string               `json:"email"`
	Name          string               `json:"name"`
	Fee           float64              `json:"fee"`
	TransactionID string               `json:"transactionId"`
	Date          time.Time            `json:"date"`
	Status        domain.PaymentStatus `json:"status"`
}

// NewPaymentResponse maps a domain payment.
func NewPaymentResponse(p *domain.Payment) PaymentResponse {
	return PaymentResponse{
		ID:            p.ID,
		Email:         p.Email,
		Name:          p.Name,
		Fee:           p.Fee,
		TransactionID: p.TransactionID,
		Date:          p.Date,
		Status:        p.Status,
	}
}

// NewPaymentList maps payments, never returning nil.
func NewPaymentList(payments []domain.Payment) []PaymentResponse {
	out := make([]PaymentResponse, 0, len(payments))
	for i := range payments {
		out = append(out, NewPaymentResponse(&payments[i]))
	}
	return out
}
