package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/duynhne/exam-service/internal/core/domain"
)

// PgxExamRepository implements domain.ExamRepository using pgx.
type PgxExamRepository struct {
	db DBTX
}

// NewExamRepository creates a new PgxExamRepository.
func NewExamRepository(db DBTX) *PgxExamRepository {
	return &PgxExamRepository{db: db}
}

// Create inserts the exam and fills in its id and timestamps.
func (r *PgxExamRepository) Create(ctx context.Context, exam *domain.Exam) (*domain.Exam, error) {
	query := `INSERT INTO exams (title, description) VALUES ($1, $2) RETURNING id, created_at, updated_at`

	err := r.db.QueryRow(ctx, query, exam.Title, exam.Description).Scan(&exam.ID, &exam.CreatedAt, &exam.UpdatedAt)
	if err != nil {
		return nil, fmt.Errorf("insert exam: %w", err)
	}

	return exam, nil
}

// List returns every exam ordered by id. It never returns a nil slice.
func (r *PgxExamRepository) List(ctx context.Context) ([]domain.Exam, error) {
	query := `SELECT id, title, description, created_at, updated_at FROM exams ORDER BY id`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("query exams: %w", err)
	}
	defer rows.Close()

	exams := make([]domain.Exam, 0)
	for rows.Next() {
		var e domain.Exam
		if err := rows.Scan(&e.ID, &e.Title, &e.Description, &e.CreatedAt, &e.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan exam: %w", err)
		}
		exams = append(exams, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate exams: %w", err)
	}

	return exams, nil
}

// GetByID returns the exam with the given id, or domain.ErrNotFound.
func (r *PgxExamRepository) GetByID(ctx context.Context, id int64) (*domain.Exam, error) {
	query := `SELECT id, title, description, created_at, updated_at FROM exams WHERE id = $1`

	var e domain.Exam
	err := r.db.QueryRow(ctx, query, id).Scan(&e.ID, &e.Title, &e.Description, &e.CreatedAt, &e.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("query exam: %w", err)
	}

	return &e, nil
}

// Update overwrites title and description and bumps updated_at.
// Returns domain.ErrNotFound when no exam has the id.
func (r *PgxExamRepository) Update(ctx context.Context, exam *domain.Exam) (*domain.Exam, error) {
	query := `UPDATE exams SET title = $2, description = $3, updated_at = CURRENT_TIMESTAMP WHERE id = $1 RETURNING created_at, updated_at`

	err := r.db.QueryRow(ctx, query, exam.ID, exam.Title, exam.Description).Scan(&exam.CreatedAt, &exam.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("update exam: %w", err)
	}

	return exam, nil
}

// Delete removes the exam. Returns domain.ErrNotFound when no row matched.
func (r *PgxExamRepository) Delete(ctx context.Context, id int64) error {
	query := `DELETE FROM exams WHERE id = $1`

	tag, err := r.db.Exec(ctx, query, id)
	if err != nil {
		return fmt.Errorf("delete exam: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}

	return nil
}
