package domain

import "time"

// OrderStatus enumerates application processing states.
type OrderStatus string

const (
	OrderStatusPending    OrderStatus = "Pending"
	OrderStatusProcessing OrderStatus = "Processing"
	OrderStatusDelivered  OrderStatus = "Delivered"
	OrderStatusRejected   OrderStatus = "Rejected"
)

// Applicant identifies who submitted an order.
type Applicant struct {
	Email string
	Name  string
	Phone string
	Image string
}

// Order is an application for a scholarship. ScholarshipID is kept in its
// stored string form and coerced to an identifier only when joined.
type Order struct {
	ID            string
	Applicant     Applicant
	ScholarshipID string
	Status        OrderStatus
	Amount        float64
	Details       map[string]any
	CreatedAt     time.Time
}

// CustomerOrder is an order flattened with the name, image and category of
// the scholarship it references.
type CustomerOrder struct {
	Order
	ScholarshipName     string
	ScholarshipImage    string
	ScholarshipCategory string
}
