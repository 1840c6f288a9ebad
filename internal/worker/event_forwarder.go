package worker

import (
	"context"
	"encoding/json"
	"fmt"

	"go.uber.org/zap"

	"github.com/spec-kit/scholarship-service/internal/events"
	"github.com/spec-kit/scholarship-service/internal/service"
)

// EventForwarder relays every domain event to the broker.
type EventForwarder struct {
	publisher Publisher
	logger    *zap.Logger
}

// NewEventForwarder creates a forwarder over publisher.
func NewEventForwarder(publisher Publisher, logger *zap.Logger) *EventForwarder {
	return &EventForwarder{publisher: publisher, logger: logger}
}

// Register subscribes the forwarder to all event types.
func (f *EventForwarder) Register(dispatcher events.Dispatcher) {
	for _, eventType := range events.AllEventTypes {
		dispatcher.Subscribe(eventType, f.Forward)
	}
}

// Forward encodes event as JSON and publishes it.
func (f *EventForwarder) Forward(ctx context.Context, event events.Event) error {
	body, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("encode event %s: %w", event.ID, err)
	}
	if err := f.publisher.Publish(ctx, event.ID, string(event.Type), body); err != nil {
		f.logger.Warn("event forward failed",
			zap.String("event_id", event.ID),
			zap.String("event_type", string(event.Type)),
			zap.Error(err))
		return err
	}
	return nil
}

// StartEventWorkers registers the notification handlers and, when a
// publisher is given, the broker forwarder.
func StartEventWorkers(dispatcher events.Dispatcher, notifications *service.NotificationService, publisher Publisher, logger *zap.Logger) {
	if notifications != nil {
		notifications.RegisterHandlers()
	}
	if dispatcher == nil || publisher == nil {
		return
	}
	NewEventForwarder(publisher, logger).Register(dispatcher)
}
