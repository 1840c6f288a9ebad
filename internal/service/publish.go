package service

import (
	"context"

	"go.uber.org/zap"

	"github.com/spec-kit/scholarship-service/internal/events"
)

// publishEvent hands the event to the dispatcher. Delivery failures are
// logged and never fail the originating operation.
func publishEvent(ctx context.Context, dispatcher events.Dispatcher, logger *zap.Logger, event events.Event) {
	if dispatcher == nil {
		return
	}
	if err := dispatcher.Publish(ctx, event); err != nil {
		logger.Warn("event delivery failed",
			zap.String("event_type", string(event.Type)),
			zap.String("aggregate_id", event.AggregateID),
			zap.Error(err))
	}
}
