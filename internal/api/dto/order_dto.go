package dto

import (
	"time"

	"github.com/spec-kit/scholarship-service/internal/domain"
)

// ApplicantPayload identifies the applicant on an order.
type ApplicantPayload struct {
	Email string `json:"email"`
	Name  string `json:"name"`
	Phone string `json:"phone"`
	Image string `json:"image"`
}

// CreateOrderRequest payload for POST /order.
type CreateOrderRequest struct {
	Applicant     ApplicantPayload `json:"applicant"`
	ScholarshipID string           `json:"scholarship_id"`
	Amount        float64          `json:"amount"`
	Details       map[string]any   `json:"details"`
}

// OrderResponse is a stored order.
type OrderResponse struct {
	ID            string             `json:"id"`
	Applicant     ApplicantPayload   `json:"applicant"`
	ScholarshipID string             `json:"scholarship_id"`
	Status        domain.OrderStatus `json:"status"`
	Amount        float64            `json:"amount"`
	Details       map[string]any     `json:"details,omitempty"`
	CreatedAt     time.Time          `json:"created_at"`
}

// CustomerOrderResponse is an order flattened with its scholarship's name,
// image and category. It has no nested scholarship object.
type CustomerOrderResponse struct {
	OrderResponse
	Name     string `json:"name"`
	Image    string `json:"image"`
	Category string `json:"category"`
}

// NewOrderResponse maps a domain order.
func NewOrderResponse(o *domain.Order) OrderResponse {
	return OrderResponse{
		ID: o.ID,
		Applicant: ApplicantPayload{
			Email: o.Applicant.Email,
			Name:  o.Applicant.Name,
			Phone: o.Applicant.Phone,
			Image: o.Applicant.Image,
		},
		ScholarshipID: o.ScholarshipID,
		Status:        o.Status,
		Amount:        o.Amount,
		Details:       o.Details,
		CreatedAt:     o.CreatedAt,
	}
}

// NewCustomerOrderList maps aggregated orders, never returning nil.
func NewCustomerOrderList(orders []domain.CustomerOrder) []CustomerOrderResponse {
	out := make([]CustomerOrderResponse, 0, len(orders))
	for i := range orders {
		out = append(out, CustomerOrderResponse{
			OrderResponse: NewOrderResponse(&orders[i].Order),
			Name:          orders[i].ScholarshipName,
			Image:         orders[i].ScholarshipImage,
			Category:      orders[i].ScholarshipCategory,
		})
	}
	return out
}
