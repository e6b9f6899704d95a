package v1

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"github.com/duynhne/exam-service/internal/core/domain"
	"github.com/duynhne/exam-service/middleware"
)

// SavedExamService lets any authenticated user bookmark exams for themselves.
type SavedExamService struct {
	exams domain.ExamRepository
	saved domain.SavedExamRepository
}

// NewSavedExamService creates a new SavedExamService.
func NewSavedExamService(exams domain.ExamRepository, saved domain.SavedExamRepository) *SavedExamService {
	return &SavedExamService{exams: exams, saved: saved}
}

// Save records that the caller saved the exam. The owner is always the
// verified caller.
func (s *SavedExamService) Save(ctx context.Context, id domain.Identity, req domain.SaveExamRequest) (*domain.SavedExam, error) {
	ctx, span := middleware.StartSpan(ctx, "saved_exam.save", trace.WithAttributes(
		attribute.String("layer", "logic"),
		attribute.String("user.id", strconv.FormatInt(id.UserID, 10)),
	))
	defer span.End()

	if !authenticated(id) {
		return nil, ErrAuth
	}
	if err := validateStruct(req); err != nil {
		return nil, fmt.Errorf("save exam: %w", err)
	}

	if _, err := s.exams.GetByID(ctx, req.ExamID); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, fmt.Errorf("save exam %d: %w", req.ExamID, ErrNotFound)
		}
		span.RecordError(err)
		return nil, fmt.Errorf("lookup exam %d: %w", req.ExamID, err)
	}

	saved, err := s.saved.Create(ctx, &domain.SavedExam{UserID: id.UserID, ExamID: req.ExamID})
	if err != nil {
		// The exam can disappear between the lookup and the insert.
		if errors.Is(err, domain.ErrReferenceMissing) {
			return nil, fmt.Errorf("save exam %d: %w", req.ExamID, ErrNotFound)
		}
		span.RecordError(err)
		return nil, fmt.Errorf("save exam %d: %w", req.ExamID, err)
	}

	return saved, nil
}

// List returns the caller's saved exams with their exam details.
func (s *SavedExamService) List(ctx context.Context, id domain.Identity) ([]domain.SavedExam, error) {
	ctx, span := middleware.StartSpan(ctx, "saved_exam.list", trace.WithAttributes(
		attribute.String("layer", "logic"),
		attribute.String("user.id", strconv.FormatInt(id.UserID, 10)),
	))
	defer span.End()

	if !authenticated(id) {
		return nil, ErrAuth
	}

	saved, err := s.saved.ListByUser(ctx, id.UserID)
	if err != nil {
		span.RecordError(err)
		return nil, fmt.Errorf("list saved exams: %w", err)
	}

	return saved, nil
}
