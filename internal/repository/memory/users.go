package memory

import (
	"context"
	"sync"

	"github.com/spec-kit/scholarship-service/internal/domain"
	"github.com/spec-kit/scholarship-service/internal/repository"
)

// UserStore keeps users in insertion order.
type UserStore struct {
	mu    sync.RWMutex
	order []string
	users map[string]domain.User
}

var _ repository.UserRepository = (*UserStore)(nil)

// NewUserStore creates an empty store.
func NewUserStore() *UserStore {
	return &UserStore{users: make(map[string]domain.User)}
}

func (s *UserStore) InsertIfAbsent(_ context.Context, user *domain.User) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, exists := s.users[user.Email]; exists {
		return false, nil
	}
	s.users[user.Email] = *user
	s.order = append(s.order, user.Email)
	return true, nil
}

func (s *UserStore) GetByEmail(_ context.Context, email string) (*domain.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	user, exists := s.users[email]
	if !exists {
		return nil, domain.ErrNotFound
	}
	return &user, nil
}

func (s *UserStore) ListExcept(_ context.Context, email string) ([]domain.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	result := make([]domain.User, 0, len(s.order))
	for _, key := range s.order {
		if key == email {
			continue
		}
		result = append(result, s.users[key])
	}
	return result, nil
}

func (s *UserStore) UpdateRole(_ context.Context, email string, role domain.Role, status domain.UserStatus) (*domain.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	user, exists := s.users[email]
	if !exists {
		return nil, domain.ErrNotFound
	}
	user.Role = role
	user.Status = status
	s.users[email] = user
	return &user, nil
}

func (s *UserStore) Delete(_ context.Context, email string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, exists := s.users[email]; !exists {
		return domain.ErrNotFound
	}
	delete(s.users, email)
	s.order = remove(s.order, email)
	return nil
}

func remove(keys []string, key string) []string {
	for i, k := range keys {
		if k == key {
			return append(keys[:i:i], keys[i+1:]...)
		}
	}
	return keys
}
