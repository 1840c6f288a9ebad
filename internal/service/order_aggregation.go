package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/spec-kit/scholarship-service/internal/domain"
)

// ApplicantOrders lists the orders placed by one applicant.
type ApplicantOrders interface {
	ListByApplicant(ctx context.Context, email string) ([]domain.Order, error)
}

// ScholarshipsByID resolves scholarships for a set of ids.
type ScholarshipsByID interface {
	GetByIDs(ctx context.Context, ids []string) ([]domain.Scholarship, error)
}

// OrderAggregator joins an applicant's orders with the scholarships they
// reference and flattens the result.
//
// The join is an inner join: an order whose reference matches no
// scholarship, or more than one, is left out of the result and logged. A
// reference that is not a well formed id fails the whole call with
// domain.ErrMalformedReference.
type OrderAggregator struct {
	orders       ApplicantOrders
	scholarships ScholarshipsByID
	logger       *zap.Logger
}

// NewOrderAggregator constructs the aggregator.
func NewOrderAggregator(orders ApplicantOrders, scholarships ScholarshipsByID, logger *zap.Logger) *OrderAggregator {
	return &OrderAggregator{orders: orders, scholarships: scholarships, logger: logger}
}

// CustomerOrders returns the applicant's orders enriched with scholarship
// name, image and category, in store iteration order.
func (a *OrderAggregator) CustomerOrders(ctx context.Context, email string) ([]domain.CustomerOrder, error) {
	orders, err := a.orders.ListByApplicant(ctx, email)
	if err != nil {
		return nil, err
	}
	if len(orders) == 0 {
		return []domain.CustomerOrder{}, nil
	}

	refs := make([]uuid.UUID, len(orders))
	ids := make([]string, 0, len(orders))
	seen := make(map[uuid.UUID]struct{}, len(orders))
	for i, order := range orders {
		ref, err := uuid.Parse(strings.TrimSpace(order.ScholarshipID))
		if err != nil {
			return nil, fmt.Errorf("%w: order %s references %q", domain.ErrMalformedReference, order.ID, order.ScholarshipID)
		}
		refs[i] = ref
		if _, dup := seen[ref]; !dup {
			seen[ref] = struct{}{}
			ids = append(ids, ref.String())
		}
	}

	found, err := a.scholarships.GetByIDs(ctx, ids)
	if err != nil {
		return nil, err
	}
	matches := make(map[uuid.UUID][]domain.Scholarship, len(found))
	for _, s := range found {
		id, err := uuid.Parse(s.ID)
		if err != nil {
			continue
		}
		matches[id] = append(matches[id], s)
	}

	result := make([]domain.CustomerOrder, 0, len(orders))
	for i, order := range orders {
		candidates := matches[refs[i]]
		if len(candidates) != 1 {
			a.logger.Warn("order dropped from aggregation: unresolved scholarship reference",
				zap.String("order_id", order.ID),
				zap.String("scholarship_id", order.ScholarshipID),
				zap.Int("matches", len(candidates)))
			continue
		}
		s := candidates[0]
		result = append(result, domain.CustomerOrder{
			Order:               order,
			ScholarshipName:     s.Name,
			ScholarshipImage:    s.Image,
			ScholarshipCategory: s.Category,
		})
	}
	return result, nil
}
