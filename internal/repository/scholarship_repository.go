package repository

import (
	"context"

	"github.com/jackc/pgx/v5"

	"github.com/spec-kit/scholarship-service/internal/domain"
)

// ScholarshipRepository manages scholarship persistence.
type ScholarshipRepository interface {
	Create(ctx context.Context, s *domain.Scholarship) error
	Update(ctx context.Context, s *domain.Scholarship) error
	GetByID(ctx context.Context, id string) (*domain.Scholarship, error)
	GetByIDs(ctx context.Context, ids []string) ([]domain.Scholarship, error)
	List(ctx context.Context) ([]domain.Scholarship, error)
	Delete(ctx context.Context, id string) error
}

type scholarshipRepository struct {
	db DBTX
}

// NewScholarshipRepository builds the repository.
func NewScholarshipRepository(db DBTX) ScholarshipRepository {
	return &scholarshipRepository{db: db}
}

const scholarshipColumns = `id, name, image, category, subject_category, degree,
               university_name, university_country, university_city, university_rank,
               tuition_fees, application_fees, service_charge, deadline, post_date, posted_by, description`

func (r *scholarshipRepository) Create(ctx context.Context, s *domain.Scholarship) error {
	const query = `
        INSERT INTO scholarships (name, image, category, subject_category, degree,
            university_name, university_country, university_city, university_rank,
            tuition_fees, application_fees, service_charge, deadline, post_date, posted_by, description)
        VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12,$13,$14,$15,$16)
        RETURNING id`
	err := r.db.QueryRow(ctx, query,
		s.Name,
		s.Image,
		s.Category,
		s.SubjectCategory,
		s.Degree,
		s.UniversityName,
		s.UniversityCountry,
		s.UniversityCity,
		s.UniversityRank,
		s.TuitionFees,
		s.ApplicationFees,
		s.ServiceCharge,
		s.Deadline,
		s.PostDate,
		s.PostedBy,
		s.Description,
	).Scan(&s.ID)
	return mapError(err)
}

func (r *scholarshipRepository) Update(ctx context.Context, s *domain.Scholarship) error {
	const query = `
        UPDATE scholarships SET name=$1, image=$2, category=$3, subject_category=$4, degree=$5,
            university_name=$6, university_country=$7, university_city=$8, university_rank=$9,
            tuition_fees=$10, application_fees=$11, service_charge=$12, deadline=$13, description=$14
        WHERE id=$15`
	cmd, err := r.db.Exec(ctx, query,
		s.Name,
		s.Image,
		s.Category,
		s.SubjectCategory,
		s.Degree,
		s.UniversityName,
		s.UniversityCountry,
		s.UniversityCity,
		s.UniversityRank,
		s.TuitionFees,
		s.ApplicationFees,
		s.ServiceCharge,
		s.Deadline,
		s.Description,
		s.ID,
	)
	if err != nil {
		return mapError(err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *scholarshipRepository) GetByID(ctx context.Context, id string) (*domain.Scholarship, error) {
	query := `SELECT ` + scholarshipColumns + ` FROM scholarships WHERE id=$1`
	s, err := scanScholarship(r.db.QueryRow(ctx, query, id))
	if err != nil {
		return nil, mapError(err)
	}
	return s, nil
}

func (r *scholarshipRepository) GetByIDs(ctx context.Context, ids []string) ([]domain.Scholarship, error) {
	if len(ids) == 0 {
		return []domain.Scholarship{}, nil
	}
	query := `SELECT ` + scholarshipColumns + ` FROM scholarships WHERE id = ANY($1::uuid[])`
	return r.list(ctx, query, ids)
}

func (r *scholarshipRepository) List(ctx context.Context) ([]domain.Scholarship, error) {
	query := `SELECT ` + scholarshipColumns + ` FROM scholarships ORDER BY post_date`
	return r.list(ctx, query)
}

func (r *scholarshipRepository) Delete(ctx context.Context, id string) error {
	cmd, err := r.db.Exec(ctx, `DELETE FROM scholarships WHERE id=$1`, id)
	if err != nil {
		return mapError(err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *scholarshipRepository) list(ctx context.Context, query string, args ...any) ([]domain.Scholarship, error) {
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, mapError(err)
	}
	defer rows.Close()

	result := make([]domain.Scholarship, 0)
	for rows.Next() {
		s, err := scanScholarship(rows)
		if err != nil {
			return nil, err
		}
		result = append(result, *s)
	}
	return result, rows.Err()
}

func scanScholarship(row pgx.Row) (*domain.Scholarship, error) {
	var s domain.Scholarship
	if err := row.Scan(
		&s.ID,
		&s.Name,
		&s.Image,
		&s.Category,
		&s.SubjectCategory,
		&s.Degree,
		&s.UniversityName,
		&s.UniversityCountry,
		&s.UniversityCity,
		&s.UniversityRank,
		&s.TuitionFees,
		&s.ApplicationFees,
		&s.ServiceCharge,
		&s.Deadline,
		&s.PostDate,
		&s.PostedBy,
		&s.Description,
	); err != nil {
		return nil, err
	}
	return &s, nil
}
