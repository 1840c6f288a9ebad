package service

import (
	"context"
	"errors"
	"math"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/spec-kit/scholarship-service/internal/domain"
	"github.com/spec-kit/scholarship-service/internal/events"
	"github.com/spec-kit/scholarship-service/internal/repository/memory"
)

type mockGateway struct {
	mock.Mock
}

func (m *mockGateway) CreateIntent(ctx context.Context, amount int64) (string, error) {
	args := m.Called(ctx, amount)
	return args.String(0), args.Error(1)
}

func newPaymentService(gateway PaymentGateway) (*PaymentService, *memory.PaymentStore, *recordingDispatcher) {
	store := memory.NewPaymentStore()
	dispatcher := &recordingDispatcher{}
	return NewPaymentService(store, gateway, dispatcher, zap.NewNop()), store, dispatcher
}

func TestCreateIntentConvertsToCents(t *testing.T) {
	gateway := &mockGateway{}
	gateway.On("CreateIntent", mock.Anything, int64(1999)).Return("pi_secret", nil).Once()
	svc, _, _ := newPaymentService(gateway)

	secret, err := svc.CreateIntent(context.Background(), 19.99)
	require.NoError(t, err)
	assert.Equal(t, "pi_secret", secret)
	gateway.AssertExpectations(t)
}

func TestCreateIntentRejectsBadFee(t *testing.T) {
	gateway := &mockGateway{}
	svc, _, _ := newPaymentService(gateway)

	for _, fee := range []float64{0, -5, math.NaN(), 0.001} {
		_, err := svc.CreateIntent(context.Background(), fee)
		assert.Equal(t, http.StatusBadRequest, statusOf(err), "fee %v", fee)
	}
	gateway.AssertNotCalled(t, "CreateIntent", mock.Anything, mock.Anything)
}

func TestCreateIntentGatewayFailure(t *testing.T) {
	gateway := &mockGateway{}
	gateway.On("CreateIntent", mock.Anything, int64(500)).Return("", errors.New("card network down"))
	svc, _, _ := newPaymentService(gateway)

	_, err := svc.CreateIntent(context.Background(), 5)
	assert.Equal(t, http.StatusInternalServerError, statusOf(err))
}

func TestRecordPayment(t *testing.T) {
	svc, store, dispatcher := newPaymentService(&mockGateway{})
	ctx := context.Background()

	payment, err := svc.Record(ctx, "a@x.com", PaymentInput{Email: "a@x.com", Name: "A", Fee: 25, TransactionID: "pi_1"})
	require.NoError(t, err)
	assert.Equal(t, domain.PaymentStatusPending, payment.Status)
	assert.False(t, payment.Date.IsZero())
	assert.Equal(t, []events.EventType{events.EventPaymentRecorded}, dispatcher.types())

	_, err = svc.Record(ctx, "a@x.com", PaymentInput{Email: "a@x.com", Fee: 25, TransactionID: "pi_1"})
	assert.Equal(t, http.StatusConflict, statusOf(err))

	_, err = svc.Record(ctx, "a@x.com", PaymentInput{Email: "a@x.com", Fee: 25})
	assert.Equal(t, http.StatusBadRequest, statusOf(err))

	stored, err := store.ListByEmail(ctx, "a@x.com")
	require.NoError(t, err)
	assert.Len(t, stored, 1)
}

func TestListForCallerFiltersByEmail(t *testing.T) {
	svc, _, _ := newPaymentService(&mockGateway{})
	ctx := context.Background()
	_, err := svc.Record(ctx, "a@x.com", PaymentInput{Email: "a@x.com", Fee: 10, TransactionID: "pi_a"})
	require.NoError(t, err)
	_, err = svc.Record(ctx, "b@x.com", PaymentInput{Email: "b@x.com", Fee: 10, TransactionID: "pi_b"})
	require.NoError(t, err)

	payments, err := svc.ListForCaller(ctx, "a@x.com")
	require.NoError(t, err)
	require.Len(t, payments, 1)
	assert.Equal(t, "pi_a", payments[0].TransactionID)
}
