package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/spec-kit/scholarship-service/internal/domain"
	"github.com/spec-kit/scholarship-service/internal/events"
	"github.com/spec-kit/scholarship-service/internal/repository"
	apperrors "github.com/spec-kit/scholarship-service/pkg/util"
)

// UserProfile carries the optional fields supplied at registration.
type UserProfile struct {
	Name  string
	Image string
}

// UserService manages registration and role administration.
type UserService struct {
	users      repository.UserRepository
	dispatcher events.Dispatcher
	logger     *zap.Logger
	now        func() time.Time
}

// NewUserService constructs the service.
func NewUserService(users repository.UserRepository, dispatcher events.Dispatcher, logger *zap.Logger) *UserService {
	return &UserService{users: users, dispatcher: dispatcher, logger: logger, now: time.Now}
}

// Register creates the user as a customer unless the email is already
// registered, in which case the stored record is returned unchanged. The
// boolean reports whether a new record was created.
func (s *UserService) Register(ctx context.Context, email string, profile UserProfile) (*domain.User, bool, error) {
	email = strings.TrimSpace(email)
	if email == "" {
		return nil, false, apperrors.NewValidationError("email required", nil)
	}

	user := &domain.User{
		Email:     email,
		Name:      strings.TrimSpace(profile.Name),
		Image:     strings.TrimSpace(profile.Image),
		Role:      domain.RoleCustomer,
		Status:    domain.UserStatusNone,
		CreatedAt: s.now().UTC(),
	}
	created, err := s.users.InsertIfAbsent(ctx, user)
	if err != nil {
		return nil, false, err
	}
	if created {
		return user, true, nil
	}

	existing, err := s.users.GetByEmail(ctx, email)
	if err != nil {
		return nil, false, err
	}
	return existing, false, nil
}

// Role returns the stored role for email.
func (s *UserService) Role(ctx context.Context, email string) (domain.Role, error) {
	user, err := s.users.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return "", apperrors.NewNotFound("user", map[string]any{"email": email})
		}
		return "", err
	}
	return user.Role, nil
}

// ListExcept returns every user other than email.
func (s *UserService) ListExcept(ctx context.Context, email string) ([]domain.User, error) {
	return s.users.ListExcept(ctx, email)
}

// UpdateRole assigns role to the user and marks the account verified.
func (s *UserService) UpdateRole(ctx context.Context, actorEmail, email string, role domain.Role) (*domain.User, error) {
	if !role.Valid() {
		return nil, apperrors.NewValidationError("invalid role", map[string]any{"role": role})
	}

	user, err := s.users.UpdateRole(ctx, email, role, domain.UserStatusVerified)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, apperrors.NewNotFound("user", map[string]any{"email": email})
		}
		return nil, err
	}

	s.logger.Info("user role changed",
		zap.String("email", email),
		zap.String("role", string(role)),
		zap.String("actor", actorEmail))
	publishEvent(ctx, s.dispatcher, s.logger, events.Event{
		Type:        events.EventUserRoleChanged,
		AggregateID: email,
		ActorEmail:  actorEmail,
		Payload: events.UserRoleChangedPayload{
			Email:  email,
			Role:   string(user.Role),
			Status: string(user.Status),
		},
	})
	return user, nil
}
