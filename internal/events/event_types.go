package events

import "time"

// EventType enumerates supported event identifiers.
type EventType string

const (
	EventScholarshipCreated EventType = "scholarship.created"
	EventOrderCreated       EventType = "order.created"
	EventOrderCancelled     EventType = "order.cancelled"
	EventPaymentRecorded    EventType = "payment.recorded"
	EventUserRoleChanged    EventType = "user.role_changed"
)

// AllEventTypes lists every event the services publish.
var AllEventTypes = []EventType{
	EventScholarshipCreated,
	EventOrderCreated,
	EventOrderCancelled,
	EventPaymentRecorded,
	EventUserRoleChanged,
}

// Event represents a domain event emitted by services.
type Event struct {
	ID          string      `json:"id"`
	Type        EventType   `json:"type"`
	AggregateID string      `json:"aggregate_id"`
	ActorEmail  string      `json:"actor_email,omitempty"`
	Timestamp   time.Time   `json:"timestamp"`
	Payload     interface{} `json:"payload"`
}

// ScholarshipCreatedPayload payload.
type ScholarshipCreatedPayload struct {
	Name     string `json:"name"`
	Category string `json:"category"`
	PostedBy string `json:"posted_by"`
}

// OrderCreatedPayload payload.
type OrderCreatedPayload struct {
	ApplicantEmail string  `json:"applicant_email"`
	ScholarshipID  string  `json:"scholarship_id"`
	Amount         float64 `json:"amount"`
}

// OrderCancelledPayload payload.
type OrderCancelledPayload struct {
	ApplicantEmail string `json:"applicant_email"`
	ScholarshipID  string `json:"scholarship_id"`
	Status         string `json:"status"`
}

// PaymentRecordedPayload payload.
type PaymentRecordedPayload struct {
	Email         string  `json:"email"`
	Fee           float64 `json:"fee"`
	TransactionID string  `json:"transaction_id"`
}

// UserRoleChangedPayload payload.
type UserRoleChangedPayload struct {
	Email  string `json:"email"`
	Role   string `json:"role"`
	Status string `json:"status"`
}
