package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/spec-kit/scholarship-service/internal/domain"
	"github.com/spec-kit/scholarship-service/internal/events"
	"github.com/spec-kit/scholarship-service/internal/repository"
	apperrors "github.com/spec-kit/scholarship-service/pkg/util"
)

// CatalogCache is a read-through cache for scholarship reads.
type CatalogCache interface {
	GetList(ctx context.Context) ([]domain.Scholarship, bool, error)
	SetList(ctx context.Context, items []domain.Scholarship) error
	Get(ctx context.Context, id string) (*domain.Scholarship, bool, error)
	Set(ctx context.Context, item *domain.Scholarship) error
	Invalidate(ctx context.Context, ids ...string) error
}

// ScholarshipService serves the public catalog and accepts new postings.
type ScholarshipService struct {
	scholarships repository.ScholarshipRepository
	cache        CatalogCache
	dispatcher   events.Dispatcher
	logger       *zap.Logger
	now          func() time.Time
}

// ScholarshipDependencies bundles collaborators for the scholarship service.
type ScholarshipDependencies struct {
	ScholarshipRepo repository.ScholarshipRepository
	Cache           CatalogCache
	Dispatcher      events.Dispatcher
	Logger          *zap.Logger
}

// NewScholarshipService constructs the service. Cache may be nil.
func NewScholarshipService(deps ScholarshipDependencies) *ScholarshipService {
	return &ScholarshipService{
		scholarships: deps.ScholarshipRepo,
		cache:        deps.Cache,
		dispatcher:   deps.Dispatcher,
		logger:       deps.Logger,
		now:          time.Now,
	}
}

// List returns every scholarship.
func (s *ScholarshipService) List(ctx context.Context) ([]domain.Scholarship, error) {
	if s.cache != nil {
		items, ok, err := s.cache.GetList(ctx)
		if err != nil {
			s.logger.Warn("catalog cache read failed", zap.Error(err))
		} else if ok {
			return items, nil
		}
	}

	items, err := s.scholarships.List(ctx)
	if err != nil {
		return nil, err
	}
	if s.cache != nil {
		if err := s.cache.SetList(ctx, items); err != nil {
			s.logger.Warn("catalog cache write failed", zap.Error(err))
		}
	}
	return items, nil
}

// Get returns one scholarship by id.
func (s *ScholarshipService) Get(ctx context.Context, id string) (*domain.Scholarship, error) {
	ref, err := uuid.Parse(strings.TrimSpace(id))
	if err != nil {
		return nil, apperrors.NewValidationError("invalid scholarship id", map[string]any{"id": id})
	}
	key := ref.String()

	if s.cache != nil {
		item, ok, err := s.cache.Get(ctx, key)
		if err != nil {
			s.logger.Warn("catalog cache read failed", zap.Error(err))
		} else if ok {
			return item, nil
		}
	}

	item, err := s.scholarships.GetByID(ctx, key)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, apperrors.NewNotFound("scholarship", map[string]any{"id": id})
		}
		return nil, err
	}
	if s.cache != nil {
		if err := s.cache.Set(ctx, item); err != nil {
			s.logger.Warn("catalog cache write failed", zap.Error(err))
		}
	}
	return item, nil
}

// Create posts a new scholarship on behalf of actorEmail.
func (s *ScholarshipService) Create(ctx context.Context, actorEmail string, input domain.Scholarship) (*domain.Scholarship, error) {
	input.Name = strings.TrimSpace(input.Name)
	input.Category = strings.TrimSpace(input.Category)
	if input.Name == "" || input.Category == "" {
		return nil, apperrors.NewValidationError("name and category required", nil)
	}
	if input.ApplicationFees < 0 || input.TuitionFees < 0 || input.ServiceCharge < 0 {
		return nil, apperrors.NewValidationError("fees must not be negative", nil)
	}
	if strings.TrimSpace(input.PostedBy) == "" {
		input.PostedBy = actorEmail
	}
	if input.PostDate.IsZero() {
		input.PostDate = s.now().UTC()
	}

	item := input
	item.ID = ""
	if err := s.scholarships.Create(ctx, &item); err != nil {
		return nil, err
	}
	if s.cache != nil {
		if err := s.cache.Invalidate(ctx); err != nil {
			s.logger.Warn("catalog cache invalidation failed", zap.Error(err))
		}
	}

	publishEvent(ctx, s.dispatcher, s.logger, events.Event{
		Type:        events.EventScholarshipCreated,
		AggregateID: item.ID,
		ActorEmail:  actorEmail,
		Payload: events.ScholarshipCreatedPayload{
			Name:     item.Name,
			Category: item.Category,
			PostedBy: item.PostedBy,
		},
	})
	return &item, nil
}
