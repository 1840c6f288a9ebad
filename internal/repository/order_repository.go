package repository

import (
	"context"

	"github.com/jackc/pgx/v5"

	"github.com/spec-kit/scholarship-service/internal/domain"
)

// OrderRepository encapsulates order persistence.
type OrderRepository interface {
	Create(ctx context.Context, order *domain.Order) error
	GetByID(ctx context.Context, id string) (*domain.Order, error)
	ListByApplicant(ctx context.Context, email string) ([]domain.Order, error)
	UpdateStatus(ctx context.Context, id string, status domain.OrderStatus) error
	// DeleteUnlessStatus removes the order in one statement unless it holds
	// the given status. It reports whether a row was deleted.
	DeleteUnlessStatus(ctx context.Context, id string, status domain.OrderStatus) (bool, error)
}

type orderRepository struct {
	db DBTX
}

// NewOrderRepository instantiates repository.
func NewOrderRepository(db DBTX) OrderRepository {
	return &orderRepository{db: db}
}

const orderColumns = `id, applicant_email, applicant_name, applicant_phone, applicant_image,
               scholarship_id, status, amount, details, created_at`

func (r *orderRepository) Create(ctx context.Context, order *domain.Order) error {
	const query = `
        INSERT INTO orders (applicant_email, applicant_name, applicant_phone, applicant_image,
            scholarship_id, status, amount, details)
        VALUES ($1,$2,$3,$4,$5,$6,$7,$8)
        RETURNING id, created_at`
	details := order.Details
	if details == nil {
		details = map[string]any{}
	}
	err := r.db.QueryRow(ctx, query,
		order.Applicant.Email,
		order.Applicant.Name,
		order.Applicant.Phone,
		order.Applicant.Image,
		order.ScholarshipID,
		order.Status,
		order.Amount,
		details,
	).Scan(&order.ID, &order.CreatedAt)
	return mapError(err)
}

func (r *orderRepository) GetByID(ctx context.Context, id string) (*domain.Order, error) {
	query := `SELECT ` + orderColumns + ` FROM orders WHERE id=$1`
	order, err := scanOrder(r.db.QueryRow(ctx, query, id))
	if err != nil {
		return nil, mapError(err)
	}
	return order, nil
}

func (r *orderRepository) ListByApplicant(ctx context.Context, email string) ([]domain.Order, error) {
	query := `SELECT ` + orderColumns + ` FROM orders WHERE applicant_email=$1 ORDER BY created_at`
	rows, err := r.db.Query(ctx, query, email)
	if err != nil {
		return nil, mapError(err)
	}
	defer rows.Close()

	result := make([]domain.Order, 0)
	for rows.Next() {
		order, err := scanOrder(rows)
		if err != nil {
			return nil, err
		}
		result = append(result, *order)
	}
	return result, rows.Err()
}

func (r *orderRepository) UpdateStatus(ctx context.Context, id string, status domain.OrderStatus) error {
	cmd, err := r.db.Exec(ctx, `UPDATE orders SET status=$1 WHERE id=$2`, status, id)
	if err != nil {
		return mapError(err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *orderRepository) DeleteUnlessStatus(ctx context.Context, id string, status domain.OrderStatus) (bool, error) {
	cmd, err := r.db.Exec(ctx, `DELETE FROM orders WHERE id=$1 AND status <> $2`, id, status)
	if err != nil {
		return false, mapError(err)
	}
	return cmd.RowsAffected() == 1, nil
}

func scanOrder(row pgx.Row) (*domain.Order, error) {
	var order domain.Order
	if err := row.Scan(
		&order.ID,
		&order.Applicant.Email,
		&order.Applicant.Name,
		&order.Applicant.Phone,
		&order.Applicant.Image,
		&order.ScholarshipID,
		&order.Status,
		&order.Amount,
		&order.Details,
		&order.CreatedAt,
	); err != nil {
		return nil, err
	}
	return &order, nil
}
