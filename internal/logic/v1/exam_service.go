package v1

import (
	"context"
	"errors"
	"fmt"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"github.com/duynhne/exam-service/internal/core/domain"
	"github.com/duynhne/exam-service/middleware"
)

// ExamService implements exam CRUD. Mutations require the admin role and
// are rejected before the repository is touched.
type ExamService struct {
	exams domain.ExamRepository
}

// NewExamService creates a new ExamService.
func NewExamService(exams domain.ExamRepository) *ExamService {
	return &ExamService{exams: exams}
}

// List returns every exam. Any authenticated role may list.
func (s *ExamService) List(ctx context.Context, id domain.Identity) ([]domain.Exam, error) {
	ctx, span := middleware.StartSpan(ctx, "exam.list", trace.WithAttributes(
		attribute.String("layer", "logic"),
	))
	defer span.End()

	if !authenticated(id) {
		return nil, ErrAuth
	}

	exams, err := s.exams.List(ctx)
	if err != nil {
		span.RecordError(err)
		return nil, fmt.Errorf("list exams: %w", err)
	}
	span.SetAttributes(attribute.Int("exam.count", len(exams)))

	return exams, nil
}

// Create stores a new exam. Admin only.
func (s *ExamService) Create(ctx context.Context, id domain.Identity, in domain.ExamInput) (*domain.Exam, error) {
	ctx, span := middleware.StartSpan(ctx, "exam.create", trace.WithAttributes(
		attribute.String("layer", "logic"),
	))
	defer span.End()

	if err := requireAdmin(id); err != nil {
		span.AddEvent("access.denied")
		return nil, fmt.Errorf("create exam: %w", err)
	}
	if err := validateStruct(in); err != nil {
		return nil, fmt.Errorf("create exam: %w", err)
	}

	exam, err := s.exams.Create(ctx, &domain.Exam{Title: in.Title, Description: in.Description})
	if err != nil {
		span.RecordError(err)
		return nil, fmt.Errorf("create exam: %w", err)
	}
	span.SetAttributes(attribute.Int64("exam.id", exam.ID))

	return exam, nil
}

// Update overwrites the title and description of an existing exam. Admin only.
func (s *ExamService) Update(ctx context.Context, id domain.Identity, examID int64, in domain.ExamInput) (*domain.Exam, error) {
	ctx, span := middleware.StartSpan(ctx, "exam.update", trace.WithAttributes(
		attribute.String("layer", "logic"),
		attribute.Int64("exam.id", examID),
	))
	defer span.End()

	if err := requireAdmin(id); err != nil {
		span.AddEvent("access.denied")
		return nil, fmt.Errorf("update exam %d: %w", examID, err)
	}
	if examID <= 0 {
		return nil, fmt.Errorf("update exam %d: %w", examID, ErrNotFound)
	}
	if err := validateStruct(in); err != nil {
		return nil, fmt.Errorf("update exam %d: %w", examID, err)
	}

	exam, err := s.exams.Update(ctx, &domain.Exam{ID: examID, Title: in.Title, Description: in.Description})
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, fmt.Errorf("update exam %d: %w", examID, ErrNotFound)
		}
		span.RecordError(err)
		return nil, fmt.Errorf("update exam %d: %w", examID, err)
	}

	return exam, nil
}

// Delete removes an exam and, through the foreign keys, every save of it.
// Admin only.
func (s *ExamService) Delete(ctx context.Context, id domain.Identity, examID int64) error {
	ctx, span := middleware.StartSpan(ctx, "exam.delete", trace.WithAttributes(
		attribute.String("layer", "logic"),
		attribute.Int64("exam.id", examID),
	))
	defer span.End()

	if err := requireAdmin(id); err != nil {
		span.AddEvent("access.denied")
		return fmt.Errorf("delete exam %d: %w", examID, err)
	}
	if examID <= 0 {
		return fmt.Errorf("delete exam %d: %w", examID, ErrNotFound)
	}

	if err := s.exams.Delete(ctx, examID); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return fmt.Errorf("delete exam %d: %w", examID, ErrNotFound)
		}
		span.RecordError(err)
		return fmt.Errorf("delete exam %d: %w", examID, err)
	}

	return nil
}

func requireAdmin(id domain.Identity) error {
	if !authenticated(id) {
		return ErrAuth
	}
	if !Permit(id, domain.RoleAdmin) {
		middleware.RecordAuthDecision("guard", "denied")
		return ErrAccessDenied
	}
	return nil
}
