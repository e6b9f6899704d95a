package domain

import "context"

// ExamRepository defines the data-access contract for exams.
type ExamRepository interface {
	Create(ctx context.Context, exam *Exam) (*Exam, error)
	List(ctx context.Context) ([]Exam, error)

	// GetByID returns ErrNotFound when no exam has the id.
	GetByID(ctx context.Context, id int64) (*Exam, error)

	// Update overwrites title and description. Returns ErrNotFound when no
	// exam has the id.
	Update(ctx context.Context, exam *Exam) (*Exam, error)

	// Delete returns ErrNotFound when no exam has the id.
	Delete(ctx context.Context, id int64) error
}

// SavedExamRepository defines the data-access contract for saved exams.
type SavedExamRepository interface {
	// Create returns ErrReferenceMissing when the user or exam does not exist.
	Create(ctx context.Context, saved *SavedExam) (*SavedExam, error)

	// ListByUser returns the user's saved exams joined with their Exam.
	ListByUser(ctx context.Context, userID int64) ([]SavedExam, error)
}
