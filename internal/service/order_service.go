package service

import (
	"context"
	"errors"
	"strings"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/spec-kit/scholarship-service/internal/domain"
	"github.com/spec-kit/scholarship-service/internal/events"
	"github.com/spec-kit/scholarship-service/internal/repository"
	apperrors "github.com/spec-kit/scholarship-service/pkg/util"
)

// OrderService coordinates scholarship applications.
type OrderService struct {
	orders       repository.OrderRepository
	scholarships repository.ScholarshipRepository
	aggregator   *OrderAggregator
	dispatcher   events.Dispatcher
	logger       *zap.Logger
}

// OrderDependencies bundles repositories for the order service.
type OrderDependencies struct {
	OrderRepo       repository.OrderRepository
	ScholarshipRepo repository.ScholarshipRepository
	Dispatcher      events.Dispatcher
	Logger          *zap.Logger
}

// OrderCreateInput describes an application submitted by a caller.
type OrderCreateInput struct {
	Applicant     domain.Applicant
	ScholarshipID string
	Amount        float64
	Details       map[string]any
}

// NewOrderService constructs the service.
func NewOrderService(deps OrderDependencies) *OrderService {
	return &OrderService{
		orders:       deps.OrderRepo,
		scholarships: deps.ScholarshipRepo,
		aggregator:   NewOrderAggregator(deps.OrderRepo, deps.ScholarshipRepo, deps.Logger),
		dispatcher:   deps.Dispatcher,
		logger:       deps.Logger,
	}
}

// Create stores a pending order for the caller against an existing scholarship.
func (s *OrderService) Create(ctx context.Context, callerEmail string, input OrderCreateInput) (*domain.Order, error) {
	applicant := input.Applicant
	applicant.Email = strings.TrimSpace(applicant.Email)
	if applicant.Email == "" {
		applicant.Email = callerEmail
	}
	if applicant.Email != callerEmail {
		return nil, apperrors.NewForbidden("orders can only be placed for the signed in applicant")
	}
	if strings.TrimSpace(input.ScholarshipID) == "" {
		return nil, apperrors.NewValidationError("scholarship_id required", nil)
	}
	if input.Amount < 0 {
		return nil, apperrors.NewValidationError("amount must not be negative", nil)
	}
	ref, err := uuid.Parse(strings.TrimSpace(input.ScholarshipID))
	if err != nil {
		return nil, apperrors.NewValidationError("invalid scholarship_id", map[string]any{"scholarship_id": input.ScholarshipID})
	}
	if _, err := s.scholarships.GetByID(ctx, ref.String()); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, apperrors.NewNotFound("scholarship", map[string]any{"scholarship_id": input.ScholarshipID})
		}
		return nil, err
	}

	order := &domain.Order{
		Applicant:     applicant,
		ScholarshipID: ref.String(),
		Status:        domain.OrderStatusPending,
		Amount:        input.Amount,
		Details:       input.Details,
	}
	if err := s.orders.Create(ctx, order); err != nil {
		return nil, err
	}

	publishEvent(ctx, s.dispatcher, s.logger, events.Event{
		Type:        events.EventOrderCreated,
		AggregateID: order.ID,
		ActorEmail:  callerEmail,
		Payload: events.OrderCreatedPayload{
			ApplicantEmail: order.Applicant.Email,
			ScholarshipID:  order.ScholarshipID,
			Amount:         order.Amount,
		},
	})
	return order, nil
}

// CustomerOrders returns the applicant's orders joined with their scholarships.
func (s *OrderService) CustomerOrders(ctx context.Context, email string) ([]domain.CustomerOrder, error) {
	orders, err := s.aggregator.CustomerOrders(ctx, email)
	if err != nil {
		if errors.Is(err, domain.ErrMalformedReference) {
			return nil, apperrors.NewDataIntegrityError("order references a malformed scholarship id", err)
		}
		return nil, err
	}
	return orders, nil
}

// Cancel deletes the order unless it has already been delivered.
func (s *OrderService) Cancel(ctx context.Context, callerEmail, id string) error {
	if _, err := uuid.Parse(strings.TrimSpace(id)); err != nil {
		return apperrors.NewValidationError("invalid order id", map[string]any{"id": id})
	}

	existing, err := s.orders.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return apperrors.NewNotFound("order", map[string]any{"id": id})
		}
		return err
	}

	deleted, err := s.orders.DeleteUnlessStatus(ctx, id, domain.OrderStatusDelivered)
	if err != nil {
		return err
	}
	if !deleted {
		// the row is gone or became Delivered since it was read
		current, err := s.orders.GetByID(ctx, id)
		if errors.Is(err, domain.ErrNotFound) {
			return apperrors.NewNotFound("order", map[string]any{"id": id})
		}
		if err != nil {
			return err
		}
		return apperrors.NewConflict("cannot cancel once the application is delivered", map[string]any{"status": current.Status})
	}

	publishEvent(ctx, s.dispatcher, s.logger, events.Event{
		Type:        events.EventOrderCancelled,
		AggregateID: id,
		ActorEmail:  callerEmail,
		Payload: events.OrderCancelledPayload{
			ApplicantEmail: existing.Applicant.Email,
			ScholarshipID:  existing.ScholarshipID,
			Status:         string(existing.Status),
		},
	})
	return nil
}
