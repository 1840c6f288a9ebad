package service

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/spec-kit/scholarship-service/internal/domain"
	"github.com/spec-kit/scholarship-service/internal/events"
	apperrors "github.com/spec-kit/scholarship-service/pkg/util"
)

func seedScholarship(t *testing.T, f *fixture, name string) *domain.Scholarship {
	t.Helper()
	s, err := f.scholarships.Create(context.Background(), "mod@x.com", domain.Scholarship{
		Name:     name,
		Image:    name + ".png",
		Category: "Partial",
	})
	require.NoError(t, err)
	return s
}

func TestCustomerOrdersScenario(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	_, _, err := f.users.Register(ctx, "a@x.com", UserProfile{})
	require.NoError(t, err)
	s1 := seedScholarship(t, f, "S1")

	order, err := f.orders.Create(ctx, "a@x.com", OrderCreateInput{ScholarshipID: s1.ID, Amount: 50})
	require.NoError(t, err)
	assert.Equal(t, domain.OrderStatusPending, order.Status)
	assert.Equal(t, "a@x.com", order.Applicant.Email)

	result, err := f.orders.CustomerOrders(ctx, "a@x.com")
	require.NoError(t, err)
	require.Len(t, result, 1)
	assert.Equal(t, order.ID, result[0].ID)
	assert.Equal(t, "S1", result[0].ScholarshipName)
	assert.Equal(t, "S1.png", result[0].ScholarshipImage)
	assert.Equal(t, "Partial", result[0].ScholarshipCategory)
}

func TestCustomerOrdersTwoScholarships(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	s1 := seedScholarship(t, f, "S1")
	s2 := seedScholarship(t, f, "S2")
	for _, s := range []*domain.Scholarship{s1, s2} {
		_, err := f.orders.Create(ctx, "a@x.com", OrderCreateInput{ScholarshipID: s.ID})
		require.NoError(t, err)
	}
	_, err := f.orders.Create(ctx, "b@x.com", OrderCreateInput{ScholarshipID: s1.ID})
	require.NoError(t, err)

	result, err := f.orders.CustomerOrders(ctx, "a@x.com")
	require.NoError(t, err)
	require.Len(t, result, 2)
	assert.Equal(t, "S1", result[0].ScholarshipName)
	assert.Equal(t, "S2", result[1].ScholarshipName)
}

func TestCustomerOrdersEmpty(t *testing.T) {
	f := newFixture(t)
	result, err := f.orders.CustomerOrders(context.Background(), "nobody@x.com")
	require.NoError(t, err)
	assert.NotNil(t, result)
	assert.Empty(t, result)
}

func TestCustomerOrdersDropsUnresolvedReference(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	s1 := seedScholarship(t, f, "S1")
	_, err := f.orders.Create(ctx, "a@x.com", OrderCreateInput{ScholarshipID: s1.ID})
	require.NoError(t, err)
	f.store.Orders.Put(domain.Order{
		ID:            uuid.NewString(),
		Applicant:     domain.Applicant{Email: "a@x.com"},
		ScholarshipID: uuid.NewString(),
		Status:        domain.OrderStatusPending,
	})

	result, err := f.orders.CustomerOrders(ctx, "a@x.com")
	require.NoError(t, err)
	require.Len(t, result, 1)
	assert.Equal(t, "S1", result[0].ScholarshipName)
}

func TestCustomerOrdersMalformedReferenceIsIntegrityError(t *testing.T) {
	f := newFixture(t)
	f.store.Orders.Put(domain.Order{
		ID:            uuid.NewString(),
		Applicant:     domain.Applicant{Email: "a@x.com"},
		ScholarshipID: "not-a-uuid",
		Status:        domain.OrderStatusPending,
	})

	_, err := f.orders.CustomerOrders(context.Background(), "a@x.com")
	require.Error(t, err)
	var de *apperrors.DomainError
	require.True(t, errors.As(err, &de))
	assert.Equal(t, "DATA_INTEGRITY", de.Code)
	assert.Equal(t, http.StatusInternalServerError, de.HTTPStatus)
}

type fixedOrders []domain.Order

func (o fixedOrders) ListByApplicant(context.Context, string) ([]domain.Order, error) {
	return o, nil
}

type fixedScholarships []domain.Scholarship

func (s fixedScholarships) GetByIDs(context.Context, []string) ([]domain.Scholarship, error) {
	return s, nil
}

func TestAggregatorDropsAmbiguousMatch(t *testing.T) {
	ref := uuid.NewString()
	other := uuid.NewString()
	aggregator := NewOrderAggregator(
		fixedOrders{
			{ID: "o1", ScholarshipID: ref},
			{ID: "o2", ScholarshipID: other},
		},
		fixedScholarships{
			{ID: ref, Name: "first"},
			{ID: ref, Name: "second"},
			{ID: other, Name: "only"},
		},
		zap.NewNop(),
	)

	result, err := aggregator.CustomerOrders(context.Background(), "a@x.com")
	require.NoError(t, err)
	require.Len(t, result, 1)
	assert.Equal(t, "o2", result[0].ID)
	assert.Equal(t, "only", result[0].ScholarshipName)
}

func TestCreateOrderValidation(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	s1 := seedScholarship(t, f, "S1")

	_, err := f.orders.Create(ctx, "a@x.com", OrderCreateInput{})
	assert.Equal(t, http.StatusBadRequest, statusOf(err))

	_, err = f.orders.Create(ctx, "a@x.com", OrderCreateInput{ScholarshipID: "nope"})
	assert.Equal(t, http.StatusBadRequest, statusOf(err))

	_, err = f.orders.Create(ctx, "a@x.com", OrderCreateInput{ScholarshipID: uuid.NewString()})
	assert.Equal(t, http.StatusNotFound, statusOf(err))

	_, err = f.orders.Create(ctx, "a@x.com", OrderCreateInput{
		Applicant:     domain.Applicant{Email: "b@x.com"},
		ScholarshipID: s1.ID,
	})
	assert.Equal(t, http.StatusForbidden, statusOf(err))

	orders, err := f.store.Orders.ListByApplicant(ctx, "a@x.com")
	require.NoError(t, err)
	assert.Empty(t, orders)
}

func TestCancelOrder(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	s1 := seedScholarship(t, f, "S1")

	keep, err := f.orders.Create(ctx, "a@x.com", OrderCreateInput{ScholarshipID: s1.ID})
	require.NoError(t, err)
	drop, err := f.orders.Create(ctx, "a@x.com", OrderCreateInput{ScholarshipID: s1.ID})
	require.NoError(t, err)

	require.NoError(t, f.orders.Cancel(ctx, "a@x.com", drop.ID))

	_, err = f.store.Orders.GetByID(ctx, drop.ID)
	assert.ErrorIs(t, err, domain.ErrNotFound)
	_, err = f.store.Orders.GetByID(ctx, keep.ID)
	assert.NoError(t, err)
	assert.Contains(t, f.dispatcher.types(), events.EventOrderCancelled)

	err = f.orders.Cancel(ctx, "a@x.com", drop.ID)
	assert.Equal(t, http.StatusNotFound, statusOf(err))

	err = f.orders.Cancel(ctx, "a@x.com", "bad-id")
	assert.Equal(t, http.StatusBadRequest, statusOf(err))
}

func TestCancelDeliveredOrderConflicts(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	s1 := seedScholarship(t, f, "S1")
	order, err := f.orders.Create(ctx, "a@x.com", OrderCreateInput{ScholarshipID: s1.ID})
	require.NoError(t, err)
	require.NoError(t, f.store.Orders.UpdateStatus(ctx, order.ID, domain.OrderStatusDelivered))

	err = f.orders.Cancel(ctx, "a@x.com", order.ID)
	assert.Equal(t, http.StatusConflict, statusOf(err))

	stored, err := f.store.Orders.GetByID(ctx, order.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.OrderStatusDelivered, stored.Status)
}
