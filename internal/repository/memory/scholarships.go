package memory

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/spec-kit/scholarship-service/internal/domain"
	"github.com/spec-kit/scholarship-service/internal/repository"
)

// ScholarshipStore keeps scholarships in insertion order.
type ScholarshipStore struct {
	mu    sync.RWMutex
	order []string
	items map[string]domain.Scholarship
}

var _ repository.ScholarshipRepository = (*ScholarshipStore)(nil)

// NewScholarshipStore creates an empty store.
func NewScholarshipStore() *ScholarshipStore {
	return &ScholarshipStore{items: make(map[string]domain.Scholarship)}
}

func (s *ScholarshipStore) Create(_ context.Context, sch *domain.Scholarship) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	sch.ID = uuid.NewString()
	s.items[sch.ID] = *sch
	s.order = append(s.order, sch.ID)
	return nil
}

// Put stores sch under its existing id, replacing any previous record.
func (s *ScholarshipStore) Put(sch domain.Scholarship) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, exists := s.items[sch.ID]; !exists {
		s.order = append(s.order, sch.ID)
	}
	s.items[sch.ID] = sch
}

func (s *ScholarshipStore) Update(_ context.Context, sch *domain.Scholarship) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	existing, exists := s.items[sch.ID]
	if !exists {
		return domain.ErrNotFound
	}
	updated := *sch
	updated.PostDate = existing.PostDate
	updated.PostedBy = existing.PostedBy
	s.items[sch.ID] = updated
	return nil
}

func (s *ScholarshipStore) GetByID(_ context.Context, id string) (*domain.Scholarship, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	sch, exists := s.items[id]
	if !exists {
		return nil, domain.ErrNotFound
	}
	return &sch, nil
}

func (s *ScholarshipStore) GetByIDs(_ context.Context, ids []string) ([]domain.Scholarship, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	result := make([]domain.Scholarship, 0, len(ids))
	seen := make(map[string]struct{}, len(ids))
	for _, id := range ids {
		if _, dup := seen[id]; dup {
			continue
		}
		seen[id] = struct{}{}
		if sch, exists := s.items[id]; exists {
			result = append(result, sch)
		}
	}
	return result, nil
}

func (s *ScholarshipStore) List(_ context.Context) ([]domain.Scholarship, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	result := make([]domain.Scholarship, 0, len(s.order))
	for _, id := range s.order {
		result = append(result, s.items[id])
	}
	return result, nil
}

func (s *ScholarshipStore) Delete(_ context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, exists := s.items[id]; !exists {
		return domain.ErrNotFound
	}
	delete(s.items, id)
	s.order = remove(s.order, id)
	return nil
}
