package memory

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/spec-kit/scholarship-service/internal/domain"
	"github.com/spec-kit/scholarship-service/internal/repository"
)

// OrderStore keeps orders in insertion order.
type OrderStore struct {
	mu     sync.RWMutex
	order  []string
	orders map[string]domain.Order
}

var _ repository.OrderRepository = (*OrderStore)(nil)

// NewOrderStore creates an empty store.
func NewOrderStore() *OrderStore {
	return &OrderStore{orders: make(map[string]domain.Order)}
}

func (s *OrderStore) Create(_ context.Context, o *domain.Order) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	o.ID = uuid.NewString()
	o.CreatedAt = time.Now().UTC()
	s.orders[o.ID] = *o
	s.order = append(s.order, o.ID)
	return nil
}

// Put stores o under its existing id without validating its fields.
func (s *OrderStore) Put(o domain.Order) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, exists := s.orders[o.ID]; !exists {
		s.order = append(s.order, o.ID)
	}
	s.orders[o.ID] = o
}

func (s *OrderStore) GetByID(_ context.Context, id string) (*domain.Order, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	o, exists := s.orders[id]
	if !exists {
		return nil, domain.ErrNotFound
	}
	return &o, nil
}

func (s *OrderStore) ListByApplicant(_ context.Context, email string) ([]domain.Order, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	result := make([]domain.Order, 0)
	for _, id := range s.order {
		if o := s.orders[id]; o.Applicant.Email == email {
			result = append(result, o)
		}
	}
	return result, nil
}

func (s *OrderStore) UpdateStatus(_ context.Context, id string, status domain.OrderStatus) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	o, exists := s.orders[id]
	if !exists {
		return domain.ErrNotFound
	}
	o.Status = status
	s.orders[id] = o
	return nil
}

func (s *OrderStore) DeleteUnlessStatus(_ context.Context, id string, status domain.OrderStatus) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	o, exists := s.orders[id]
	if !exists || o.Status == status {
		return false, nil
	}
	delete(s.orders, id)
	s.order = remove(s.order, id)
	return true, nil
}
