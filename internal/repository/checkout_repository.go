package repository

import (
	"context"

	"github.com/jackc/pgx/v5"

	"github.com/spec-kit/scholarship-service/internal/domain"
)

// CheckoutRepository stores free-form checkout payloads.
type CheckoutRepository interface {
	Create(ctx context.Context, record *domain.CheckoutRecord) error
	GetByID(ctx context.Context, id string) (*domain.CheckoutRecord, error)
	List(ctx context.Context) ([]domain.CheckoutRecord, error)
	Delete(ctx context.Context, id string) error
}

type checkoutRepository struct {
	db DBTX
}

// NewCheckoutRepository returns a Postgres-backed implementation.
func NewCheckoutRepository(db DBTX) CheckoutRepository {
	return &checkoutRepository{db: db}
}

func (r *checkoutRepository) Create(ctx context.Context, record *domain.CheckoutRecord) error {
	const query = `
        INSERT INTO checkouts (id, payload)
        VALUES ($1, $2)
        RETURNING created_at`
	return mapError(r.db.QueryRow(ctx, query, record.ID, record.Payload).Scan(&record.CreatedAt))
}

func (r *checkoutRepository) GetByID(ctx context.Context, id string) (*domain.CheckoutRecord, error) {
	const query = `SELECT id, payload, created_at FROM checkouts WHERE id=$1`
	record, err := scanCheckout(r.db.QueryRow(ctx, query, id))
	if err != nil {
		return nil, mapError(err)
	}
	return record, nil
}

func (r *checkoutRepository) List(ctx context.Context) ([]domain.CheckoutRecord, error) {
	const query = `SELECT id, payload, created_at FROM checkouts ORDER BY created_at`
	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, mapError(err)
	}
	defer rows.Close()

	result := make([]domain.CheckoutRecord, 0)
	for rows.Next() {
		record, err := scanCheckout(rows)
		if err != nil {
			return nil, err
		}
		result = append(result, *record)
	}
	return result, rows.Err()
}

func (r *checkoutRepository) Delete(ctx context.Context, id string) error {
	cmd, err := r.db.Exec(ctx, `DELETE FROM checkouts WHERE id=$1`, id)
	if err != nil {
		return mapError(err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func scanCheckout(row pgx.Row) (*domain.CheckoutRecord, error) {
	var record domain.CheckoutRecord
	if err := row.Scan(&record.ID, &record.Payload, &record.CreatedAt); err != nil {
		return nil, err
	}
	return &record, nil
}
