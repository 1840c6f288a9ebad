package service

import (
	"context"
	"errors"
	"math"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/spec-kit/scholarship-service/internal/domain"
	"github.com/spec-kit/scholarship-service/internal/events"
	"github.com/spec-kit/scholarship-service/internal/repository"
	apperrors "github.com/spec-kit/scholarship-service/pkg/util"
)

// PaymentGateway opens payment intents with the hosted processor.
type PaymentGateway interface {
	CreateIntent(ctx context.Context, amount int64) (string, error)
}

// PaymentInput is a payment confirmed client side.
type PaymentInput struct {
	Email         string
	Name          string
	Fee           float64
	TransactionID string
}

// PaymentService records application fee payments.
type PaymentService struct {
	payments   repository.PaymentRepository
	gateway    PaymentGateway
	dispatcher events.Dispatcher
	logger     *zap.Logger
	now        func() time.Time
}

// NewPaymentService constructs the service.
func NewPaymentService(payments repository.PaymentRepository, gateway PaymentGateway, dispatcher events.Dispatcher, logger *zap.Logger) *PaymentService {
	return &PaymentService{
		payments:   payments,
		gateway:    gateway,
		dispatcher: dispatcher,
		logger:     logger,
		now:        time.Now,
	}
}

// CreateIntent converts fee to minor units and opens a card payment intent.
func (s *PaymentService) CreateIntent(ctx context.Context, fee float64) (string, error) {
	if math.IsNaN(fee) || math.IsInf(fee, 0) || fee <= 0 {
		return "", apperrors.NewValidationError("fee must be a positive amount", map[string]any{"fee": fee})
	}
	amount := int64(math.Round(fee * 100))
	if amount <= 0 {
		return "", apperrors.NewValidationError("fee must be a positive amount", map[string]any{"fee": fee})
	}

	secret, err := s.gateway.CreateIntent(ctx, amount)
	if err != nil {
		s.logger.Error("payment intent failed", zap.Int64("amount", amount), zap.Error(err))
		return "", apperrors.NewInternalError(err)
	}
	return secret, nil
}

// Record stores a pending payment. A transaction id can be recorded once.
func (s *PaymentService) Record(ctx context.Context, actorEmail string, input PaymentInput) (*domain.Payment, error) {
	input.TransactionID = strings.TrimSpace(input.TransactionID)
	input.Email = strings.TrimSpace(input.Email)
	missing := make([]string, 0, 3)
	if input.TransactionID == "" {
		missing = append(missing, "transactionId")
	}
	if input.Email == "" {
		missing = append(missing, "email")
	}
	if input.Fee == 0 || math.IsNaN(input.Fee) {
		missing = append(missing, "fee")
	}
	if len(missing) > 0 {
		return nil, apperrors.NewValidationError("missing required payment fields", map[string]any{"missing": missing})
	}
	if input.Fee < 0 {
		return nil, apperrors.NewValidationError("fee must not be negative", nil)
	}

	payment := &domain.Payment{
		Email:         input.Email,
		Name:          strings.TrimSpace(input.Name),
		Fee:           input.Fee,
		TransactionID: input.TransactionID,
		Date:          s.now().UTC(),
		Status:        domain.PaymentStatusPending,
	}
	if err := s.payments.Create(ctx, payment); err != nil {
		if errors.Is(err, domain.ErrDuplicate) {
			return nil, apperrors.NewConflict("payment already recorded", map[string]any{"transactionId": input.TransactionID})
		}
		return nil, err
	}

	publishEvent(ctx, s.dispatcher, s.logger, events.Event{
		Type:        events.EventPaymentRecorded,
		AggregateID: payment.ID,
		ActorEmail:  actorEmail,
		Payload: events.PaymentRecordedPayload{
			Email:         payment.Email,
			Fee:           payment.Fee,
			TransactionID: payment.TransactionID,
		},
	})
	return payment, nil
}

// ListForCaller returns the payments recorded for the caller's email.
func (s *PaymentService) ListForCaller(ctx context.Context, callerEmail string) ([]domain.Payment, error) {
	return s.payments.ListByEmail(ctx, callerEmail)
}
