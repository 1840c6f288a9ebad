package repository

import (
	"context"

	"github.com/jackc/pgx/v5"

	"github.com/spec-kit/scholarship-service/internal/domain"
)

// UserRepository defines persistence access for marketplace users.
type UserRepository interface {
	InsertIfAbsent(ctx context.Context, user *domain.User) (bool, error)
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
	ListExcept(ctx context.Context, email string) ([]domain.User, error)
	UpdateRole(ctx context.Context, email string, role domain.Role, status domain.UserStatus) (*domain.User, error)
	Delete(ctx context.Context, email string) error
}

type userRepository struct {
	db DBTX
}

// NewUserRepository returns a Postgres-backed implementation.
func NewUserRepository(db DBTX) UserRepository {
	return &userRepository{db: db}
}

const userColumns = `email, name, image, role, status, created_at`

func (r *userRepository) InsertIfAbsent(ctx context.Context, user *domain.User) (bool, error) {
	const query = `
        INSERT INTO users (email, name, image, role, status, created_at)
        VALUES ($1, $2, $3, $4, $5, $6)
        ON CONFLICT (email) DO NOTHING`

	cmd, err := r.db.Exec(ctx, query,
		user.Email,
		user.Name,
		user.Image,
		user.Role,
		user.Status,
		user.CreatedAt,
	)
	if err != nil {
		return false, mapError(err)
	}
	return cmd.RowsAffected() == 1, nil
}

func (r *userRepository) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	const query = `SELECT ` + userColumns + ` FROM users WHERE email=$1`
	user, err := scanUser(r.db.QueryRow(ctx, query, email))
	if err != nil {
		return nil, mapError(err)
	}
	return user, nil
}

func (r *userRepository) ListExcept(ctx context.Context, email string) ([]domain.User, error) {
	const query = `SELECT ` + userColumns + ` FROM users WHERE email <> $1 ORDER BY created_at`
	rows, err := r.db.Query(ctx, query, email)
	if err != nil {
		return nil, mapError(err)
	}
	defer rows.Close()

	result := make([]domain.User, 0)
	for rows.Next() {
		user, err := scanUser(rows)
		if err != nil {
			return nil, err
		}
		result = append(result, *user)
	}
	return result, rows.Err()
}

func (r *userRepository) UpdateRole(ctx context.Context, email string, role domain.Role, status domain.UserStatus) (*domain.User, error) {
	const query = `
        UPDATE users SET role=$1, status=$2
        WHERE email=$3
        RETURNING ` + userColumns

	user, err := scanUser(r.db.QueryRow(ctx, query, role, status, email))
	if err != nil {
		return nil, mapError(err)
	}
	return user, nil
}

func (r *userRepository) Delete(ctx context.Context, email string) error {
	cmd, err := r.db.Exec(ctx, `DELETE FROM users WHERE email=$1`, email)
	if err != nil {
		return mapError(err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func scanUser(row pgx.Row) (*domain.User, error) {
	var user domain.User
	if err := row.Scan(
		&user.Email,
		&user.Name,
		&user.Image,
		&user.Role,
		&user.Status,
		&user.CreatedAt,
	); err != nil {
		return nil, err
	}
	return &user, nil
}
