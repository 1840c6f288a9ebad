package service

import (
	"context"
	"sync"
	"testing"

	"go.uber.org/zap"

	"github.com/spec-kit/scholarship-service/internal/events"
	"github.com/spec-kit/scholarship-service/internal/repository/memory"
)

type recordingDispatcher struct {
	mu       sync.Mutex
	events   []events.Event
	failWith error
}

func (d *recordingDispatcher) Publish(_ context.Context, event events.Event) error {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.events = append(d.events, event)
	return d.failWith
}

func (d *recordingDispatcher) Subscribe(events.EventType, events.EventHandler) {}

func (d *recordingDispatcher) types() []events.EventType {
	d.mu.Lock()
	defer d.mu.Unlock()
	out := make([]events.EventType, 0, len(d.events))
	for _, e := range d.events {
		out = append(out, e.Type)
	}
	return out
}

type fixture struct {
	store        *memory.Store
	dispatcher   *recordingDispatcher
	users        *UserService
	scholarships *ScholarshipService
	orders       *OrderService
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	store := memory.NewStore()
	dispatcher := &recordingDispatcher{}
	logger := zap.NewNop()
	return &fixture{
		store:      store,
		dispatcher: dispatcher,
		users:      NewUserService(store.Users, dispatcher, logger),
		scholarships: NewScholarshipService(ScholarshipDependencies{
			ScholarshipRepo: store.Scholarships,
			Dispatcher:      dispatcher,
			Logger:          logger,
		}),
		orders: NewOrderService(OrderDependencies{
			OrderRepo:       store.Orders,
			ScholarshipRepo: store.Scholarships,
			Dispatcher:      dispatcher,
			Logger:          logger,
		}),
	}
}
