package repository

import (
	"context"

	"github.com/jackc/pgx/v5"

	"github.com/spec-kit/scholarship-service/internal/domain"
)

// PaymentRepository persists recorded application fee payments.
type PaymentRepository interface {
	Create(ctx context.Context, payment *domain.Payment) error
	GetByTransactionID(ctx context.Context, transactionID string) (*domain.Payment, error)
	ListByEmail(ctx context.Context, email string) ([]domain.Payment, error)
	UpdateStatus(ctx context.Context, id string, status domain.PaymentStatus) error
}

type paymentRepository struct {
	db DBTX
}

// NewPaymentRepository returns a Postgres-backed implementation.
func NewPaymentRepository(db DBTX) PaymentRepository {
	return &paymentRepository{db: db}
}

const paymentColumns = `id, email, name, fee, transaction_id, paid_at, status`

func (r *paymentRepository) Create(ctx context.Context, payment *domain.Payment) error {
	const query = `
        INSERT INTO payments (email, name, fee, transaction_id, paid_at, status)
        VALUES ($1,$2,$3,$4,$5,$6)
        RETURNING id`
	err := r.db.QueryRow(ctx, query,
		payment.Email,
		payment.Name,
		payment.Fee,
		payment.TransactionID,
		payment.Date,
		payment.Status,
	).Scan(&payment.ID)
	return mapError(err)
}

func (r *paymentRepository) GetByTransactionID(ctx context.Context, transactionID string) (*domain.Payment, error) {
	const query = `SELECT ` + paymentColumns + ` FROM payments WHERE transaction_id=$1`
	payment, err := scanPayment(r.db.QueryRow(ctx, query, transactionID))
	if err != nil {
		return nil, mapError(err)
	}
	return payment, nil
}

func (r *paymentRepository) ListByEmail(ctx context.Context, email string) ([]domain.Payment, error) {
	const query = `SELECT ` + paymentColumns + ` FROM payments WHERE email=$1 ORDER BY paid_at`
	rows, err := r.db.Query(ctx, query, email)
	if err != nil {
		return nil, mapError(err)
	}
	defer rows.Close()

	result := make([]domain.Payment, 0)
	for rows.Next() {
		payment, err := scanPayment(rows)
		if err != nil {
			return nil, err
		}
		result = append(result, *payment)
	}
	return result, rows.Err()
}

func (r *paymentRepository) UpdateStatus(ctx context.Context, id string, status domain.PaymentStatus) error {
	cmd, err := r.db.Exec(ctx, `UPDATE payments SET status=$1 WHERE id=$2`, status, id)
	if err != nil {
		return mapError(err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func scanPayment(row pgx.Row) (*domain.Payment, error) {
	var payment domain.Payment
	if err := row.Scan(
		&payment.ID,
		&payment.Email,
		&payment.Name,
		&payment.Fee,
		&payment.TransactionID,
		&payment.Date,
		&payment.Status,
	); err != nil {
		return nil, err
	}
	return &payment, nil
}
