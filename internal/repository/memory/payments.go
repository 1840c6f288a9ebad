package memory

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/spec-kit/scholarship-service/internal/domain"
	"github.com/spec-kit/scholarship-service/internal/repository"
)

// PaymentStore keeps payments in insertion order.
type PaymentStore struct {
	mu       sync.RWMutex
	payments []domain.Payment
}

var _ repository.PaymentRepository = (*PaymentStore)(nil)

// NewPaymentStore creates an empty store.
func NewPaymentStore() *PaymentStore {
	return &PaymentStore{}
}

func (s *PaymentStore) Create(_ context.Context, payment *domain.Payment) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, p := range s.payments {
		if p.TransactionID == payment.TransactionID {
			return domain.ErrDuplicate
		}
	}
	payment.ID = uuid.NewString()
	s.payments = append(s.payments, *payment)
	return nil
}

func (s *PaymentStore) GetByTransactionID(_ context.Context, transactionID string) (*domain.Payment, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, p := range s.payments {
		if p.TransactionID == transactionID {
			found := p
			return &found, nil
		}
	}
	return nil, domain.ErrNotFound
}

func (s *PaymentStore) ListByEmail(_ context.Context, email string) ([]domain.Payment, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	result := make([]domain.Payment, 0)
	for _, p := range s.payments {
		if p.Email == email {
			result = append(result, p)
		}
	}
	return result, nil
}

func (s *PaymentStore) UpdateStatus(_ context.Context, id string, status domain.PaymentStatus) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.payments {
		if s.payments[i].ID == id {
			s.payments[i].Status = status
			return nil
		}
	}
	return domain.ErrNotFound
}
