package memory

import (
	"context"
	"sync"
	"time"

	"github.com/spec-kit/scholarship-service/internal/domain"
	"github.com/spec-kit/scholarship-service/internal/repository"
)

// CheckoutStore keeps checkout records in insertion order.
type CheckoutStore struct {
	mu      sync.RWMutex
	order   []string
	records map[string]domain.CheckoutRecord
}

var _ repository.CheckoutRepository = (*CheckoutStore)(nil)

// NewCheckoutStore creates an empty store.
func NewCheckoutStore() *CheckoutStore {
	return &CheckoutStore{records: make(map[string]domain.CheckoutRecord)}
}

func (s *CheckoutStore) Create(_ context.Context, record *domain.CheckoutRecord) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, exists := s.records[record.ID]; exists {
		return domain.ErrDuplicate
	}
	record.CreatedAt = time.Now().UTC()
	s.records[record.ID] = *record
	s.order = append(s.order, record.ID)
	return nil
}

func (s *CheckoutStore) GetByID(_ context.Context, id string) (*domain.CheckoutRecord, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	record, exists := s.records[id]
	if !exists {
		return nil, domain.ErrNotFound
	}
	return &record, nil
}

func (s *CheckoutStore) List(_ context.Context) ([]domain.CheckoutRecord, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	result := make([]domain.CheckoutRecord, 0, len(s.order))
	for _, id := range s.order {
		result = append(result, s.records[id])
	}
	return result, nil
}

func (s *CheckoutStore) Delete(_ context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, exists := s.records[id]; !exists {
		return domain.ErrNotFound
	}
	delete(s.records, id)
	s.order = remove(s.order, id)
	return nil
}
