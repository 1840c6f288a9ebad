package service

import (
	"context"
	"encoding/json"
	"errors"
	"strconv"
	"strings"

	"github.com/spec-kit/scholarship-service/internal/domain"
	"github.com/spec-kit/scholarship-service/internal/repository"
	apperrors "github.com/spec-kit/scholarship-service/pkg/util"
)

// CheckoutService stores free-form checkout payloads keyed by their id field.
type CheckoutService struct {
	checkouts repository.CheckoutRepository
}

// NewCheckoutService constructs the service.
func NewCheckoutService(checkouts repository.CheckoutRepository) *CheckoutService {
	return &CheckoutService{checkouts: checkouts}
}

// Save stores payload under payload["id"], which must be a non-empty string
// or a number.
func (s *CheckoutService) Save(ctx context.Context, payload map[string]any) (*domain.CheckoutRecord, error) {
	id, ok := checkoutID(payload["id"])
	if !ok {
		return nil, apperrors.NewValidationError("checkout payload requires an id", nil)
	}

	record := &domain.CheckoutRecord{ID: id, Payload: payload}
	if err := s.checkouts.Create(ctx, record); err != nil {
		if errors.Is(err, domain.ErrDuplicate) {
			return nil, apperrors.NewConflict("checkout already exists", map[string]any{"id": id})
		}
		return nil, err
	}
	return record, nil
}

// Get returns a stored checkout record.
func (s *CheckoutService) Get(ctx context.Context, id string) (*domain.CheckoutRecord, error) {
	record, err := s.checkouts.GetByID(ctx, strings.TrimSpace(id))
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, apperrors.NewNotFound("checkout", map[string]any{"id": id})
		}
		return nil, err
	}
	return record, nil
}

// List returns every checkout record.
func (s *CheckoutService) List(ctx context.Context) ([]domain.CheckoutRecord, error) {
	return s.checkouts.List(ctx)
}

func checkoutID(raw any) (string, bool) {
	switch v := raw.(type) {
	case string:
		v = strings.TrimSpace(v)
		return v, v != ""
	case json.Number:
		return v.String(), v.String() != ""
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64), true
	case int:
		return strconv.Itoa(v), true
	case int64:
		return strconv.FormatInt(v, 10), true
	}
	return "", false
}
