package service

import (
	"context"

	"go.uber.org/zap"

	"github.com/spec-kit/scholarship-service/internal/events"
)

// NotificationService logs domain events for operators.
type NotificationService struct {
	dispatcher events.Dispatcher
	logger     *zap.Logger
}

// NewNotificationService creates the service.
func NewNotificationService(dispatcher events.Dispatcher, logger *zap.Logger) *NotificationService {
	return &NotificationService{
		dispatcher: dispatcher,
		logger:     logger,
	}
}

// RegisterHandlers subscribes to events.
func (n *NotificationService) RegisterHandlers() {
	if n.dispatcher == nil {
		return
	}
	n.dispatcher.Subscribe(events.EventScholarshipCreated, n.handleScholarshipCreated)
	n.dispatcher.Subscribe(events.EventOrderCreated, n.handleOrderCreated)
	n.dispatcher.Subscribe(events.EventOrderCancelled, n.handleOrderCancelled)
	n.dispatcher.Subscribe(events.EventPaymentRecorded, n.handlePaymentRecorded)
	n.dispatcher.Subscribe(events.EventUserRoleChanged, n.handleUserRoleChanged)
}

func (n *NotificationService) handleScholarshipCreated(_ context.Context, event events.Event) error {
	n.logger.Info("ScholarshipCreated", n.fields(event)...)
	return nil
}

func (n *NotificationService) handleOrderCreated(_ context.Context, event events.Event) error {
	n.logger.Info("OrderCreated", n.fields(event)...)
	return nil
}

func (n *NotificationService) handleOrderCancelled(_ context.Context, event events.Event) error {
	n.logger.Info("OrderCancelled", n.fields(event)...)
	return nil
}

func (n *NotificationService) handlePaymentRecorded(_ context.Context, event events.Event) error {
	n.logger.Info("PaymentRecorded", n.fields(event)...)
	return nil
}

func (n *NotificationService) handleUserRoleChanged(_ context.Context, event events.Event) error {
	n.logger.Info("UserRoleChanged", n.fields(event)...)
	return nil
}

func (n *NotificationService) fields(event events.Event) []zap.Field {
	return []zap.Field{
		zap.String("event_id", event.ID),
		zap.String("aggregate_id", event.AggregateID),
		zap.String("actor", event.ActorEmail),
		zap.Any("payload", event.Payload),
	}
}
