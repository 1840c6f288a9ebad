package repository

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/pashagolub/pgxmock/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/spec-kit/scholarship-service/internal/domain"
)

func newMock(t *testing.T) pgxmock.PgxPoolIface {
	t.Helper()
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	t.Cleanup(mock.Close)
	return mock
}

func TestUserInsertIfAbsent(t *testing.T) {
	mock := newMock(t)
	repo := NewUserRepository(mock)
	now := time.Now()
	user := &domain.User{Email: "a@x.com", Name: "A", Role: domain.RoleCustomer, CreatedAt: now}

	mock.ExpectExec(regexp.QuoteMeta("ON CONFLICT (email) DO NOTHING")).
		WithArgs("a@x.com", "A", "", domain.RoleCustomer, domain.UserStatusNone, now).
		WillReturnResult(pgxmock.NewResult("INSERT", 1))
	mock.ExpectExec(regexp.QuoteMeta("ON CONFLICT (email) DO NOTHING")).
		WithArgs("a@x.com", "A", "", domain.RoleCustomer, domain.UserStatusNone, now).
		WillReturnResult(pgxmock.NewResult("INSERT", 0))

	created, err := repo.InsertIfAbsent(context.Background(), user)
	require.NoError(t, err)
	assert.True(t, created)

	created, err = repo.InsertIfAbsent(context.Background(), user)
	require.NoError(t, err)
	assert.False(t, created)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUserGetByEmail(t *testing.T) {
	mock := newMock(t)
	repo := NewUserRepository(mock)
	now := time.Now()

	rows := pgxmock.NewRows([]string{"email", "name", "image", "role", "status", "created_at"}).
		AddRow("a@x.com", "A", "img", domain.RoleAdmin, domain.UserStatusVerified, now)
	mock.ExpectQuery(regexp.QuoteMeta("FROM users WHERE email=$1")).WithArgs("a@x.com").WillReturnRows(rows)
	mock.ExpectQuery(regexp.QuoteMeta("FROM users WHERE email=$1")).WithArgs("ghost@x.com").WillReturnError(pgx.ErrNoRows)

	user, err := repo.GetByEmail(context.Background(), "a@x.com")
	require.NoError(t, err)
	assert.Equal(t, domain.RoleAdmin, user.Role)
	assert.Equal(t, domain.UserStatusVerified, user.Status)

	_, err = repo.GetByEmail(context.Background(), "ghost@x.com")
	assert.ErrorIs(t, err, domain.ErrNotFound)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUserListExcept(t *testing.T) {
	mock := newMock(t)
	repo := NewUserRepository(mock)
	now := time.Now()

	rows := pgxmock.NewRows([]string{"email", "name", "image", "role", "status", "created_at"}).
		AddRow("b@x.com", "B", "", domain.RoleCustomer, domain.UserStatusNone, now).
		AddRow("c@x.com", "C", "", domain.RoleModerator, domain.UserStatusVerified, now)
	mock.ExpectQuery(regexp.QuoteMeta("WHERE email <> $1")).WithArgs("a@x.com").WillReturnRows(rows)

	users, err := repo.ListExcept(context.Background(), "a@x.com")
	require.NoError(t, err)
	require.Len(t, users, 2)
	assert.Equal(t, "c@x.com", users[1].Email)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestOrderDeleteUnlessStatus(t *testing.T) {
	mock := newMock(t)
	repo := NewOrderRepository(mock)

	mock.ExpectExec(regexp.QuoteMeta("DELETE FROM orders WHERE id=$1 AND status <> $2")).
		WithArgs("o1", domain.OrderStatusDelivered).
		WillReturnResult(pgxmock.NewResult("DELETE", 1))
	mock.ExpectExec(regexp.QuoteMeta("DELETE FROM orders WHERE id=$1 AND status <> $2")).
		WithArgs("o2", domain.OrderStatusDelivered).
		WillReturnResult(pgxmock.NewResult("DELETE", 0))

	deleted, err := repo.DeleteUnlessStatus(context.Background(), "o1", domain.OrderStatusDelivered)
	require.NoError(t, err)
	assert.True(t, deleted)

	deleted, err = repo.DeleteUnlessStatus(context.Background(), "o2", domain.OrderStatusDelivered)
	require.NoError(t, err)
	assert.False(t, deleted)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestOrderUpdateStatusMissing(t *testing.T) {
	mock := newMock(t)
	repo := NewOrderRepository(mock)

	mock.ExpectExec(regexp.QuoteMeta("UPDATE orders SET status=$1 WHERE id=$2")).
		WithArgs(domain.OrderStatusDelivered, "o1").
		WillReturnResult(pgxmock.NewResult("UPDATE", 0))

	err := repo.UpdateStatus(context.Background(), "o1", domain.OrderStatusDelivered)
	assert.ErrorIs(t, err, domain.ErrNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPaymentCreateDuplicate(t *testing.T) {
	mock := newMock(t)
	repo := NewPaymentRepository(mock)
	payment := &domain.Payment{Email: "a@x.com", TransactionID: "tx1", Fee: 10, Status: domain.PaymentStatusPending}

	mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO payments")).
		WithArgs(pgxmock.AnyArg(), pgxmock.AnyArg(), pgxmock.AnyArg(), "tx1", pgxmock.AnyArg(), pgxmock.AnyArg()).
		WillReturnError(&pgconn.PgError{Code: "23505"})

	err := repo.Create(context.Background(), payment)
	assert.ErrorIs(t, err, domain.ErrDuplicate)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestScholarshipGetByIDsEmpty(t *testing.T) {
	mock := newMock(t)
	repo := NewScholarshipRepository(mock)

	found, err := repo.GetByIDs(context.Background(), nil)
	require.NoError(t, err)
	assert.Empty(t, found)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestMapError(t *testing.T) {
	assert.NoError(t, mapError(nil))
	assert.ErrorIs(t, mapError(pgx.ErrNoRows), domain.ErrNotFound)
	assert.ErrorIs(t, mapError(&pgconn.PgError{Code: "23505"}), domain.ErrDuplicate)

	other := errors.New("boom")
	assert.Equal(t, other, mapError(other))
}
