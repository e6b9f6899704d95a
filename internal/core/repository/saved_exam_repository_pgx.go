package repository

import (
	"context"
	"fmt"

	"github.com/duynhne/exam-service/internal/core/domain"
)

// PgxSavedExamRepository implements domain.SavedExamRepository using pgx.
type PgxSavedExamRepository struct {
	db DBTX
}

// NewSavedExamRepository creates a new PgxSavedExamRepository.
func NewSavedExamRepository(db DBTX) *PgxSavedExamRepository {
	return &PgxSavedExamRepository{db: db}
}

// Create links a user to an exam. A missing user or exam surfaces as
// domain.ErrReferenceMissing via the foreign keys.
func (r *PgxSavedExamRepository) Create(ctx context.Context, saved *domain.SavedExam) (*domain.SavedExam, error) {
	query := `INSERT INTO saved_exams (user_id, exam_id) VALUES ($1, $2) RETURNING id, created_at, updated_at`

	err := r.db.QueryRow(ctx, query, saved.UserID, saved.ExamID).Scan(&saved.ID, &saved.CreatedAt, &saved.UpdatedAt)
	if err != nil {
		if pgErrorCode(err) == pgForeignKeyViolation {
			return nil, domain.ErrReferenceMissing
		}
		return nil, fmt.Errorf("insert saved exam: %w", err)
	}

	return saved, nil
}

// ListByUser returns the user's saved exams, each joined with its exam.
func (r *PgxSavedExamRepository) ListByUser(ctx context.Context, userID int64) ([]domain.SavedExam, error) {
	query := `
		SELECT s.id, s.user_id, s.exam_id, s.created_at, s.updated_at,
		       e.id, e.title, e.description, e.created_at, e.updated_at
		FROM saved_exams s
		JOIN exams e ON s.exam_id = e.id
		WHERE s.user_id = $1
		ORDER BY s.id
	`

	rows, err := r.db.Query(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("query saved exams: %w", err)
	}
	defer rows.Close()

	saved := make([]domain.SavedExam, 0)
	for rows.Next() {
		var (
			s domain.SavedExam
			e domain.Exam
		)
		if err := rows.Scan(
			&s.ID, &s.UserID, &s.ExamID, &s.CreatedAt, &s.UpdatedAt,
			&e.ID, &e.Title, &e.Description, &e.CreatedAt, &e.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan saved exam: %w", err)
		}
		s.Exam = &e
		saved = append(saved, s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate saved exams: %w", err)
	}

	return saved, nil
}
