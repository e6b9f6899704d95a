package v1

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"go.opentelemetry.io/otel/attribute"

	"github.com/duynhne/exam-service/internal/core/domain"
	"github.com/duynhne/exam-service/internal/logger"
)

// parseExamID parses the :id path parameter. Anything that is not a positive
// integer maps to 0, which the service rejects as not found after the role
// check.
func parseExamID(c *gin.Context) int64 {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		return 0
	}
	return id
}

// ListExams handles GET /api/exams.
func (h *Handler) ListExams(c *gin.Context) {
	ctx, span := startSpan(c)
	defer span.End()

	id, ok := identity(c)
	if !ok {
		return
	}

	exams, err := h.exams.List(ctx, id)
	if err != nil {
		writeError(ctx, c, span, err, "List exams failed")
		return
	}

	c.JSON(http.StatusOK, exams)
}

// CreateExam handles POST /api/exams. Admin only.
func (h *Handler) CreateExam(c *gin.Context) {
	ctx, span := startSpan(c)
	defer span.End()

	id, ok := identity(c)
	if !ok {
		return
	}

	var in domain.ExamInput
	if err := c.ShouldBindJSON(&in); err != nil {
		// Role is checked before the body: a user with a bad body is still denied.
		in = domain.ExamInput{}
	}

	exam, err := h.exams.Create(ctx, id, in)
	if err != nil {
		writeError(ctx, c, span, err, "Create exam failed")
		return
	}

	span.SetAttributes(attribute.Int64("exam.id", exam.ID))
	logger.FromContext(ctx).Info().Int64("exam_id", exam.ID).Msg("Exam created")
	c.JSON(http.StatusOK, exam)
}

// UpdateExam handles PUT /api/exams/:id. Admin only.
func (h *Handler) UpdateExam(c *gin.Context) {
	ctx, span := startSpan(c)
	defer span.End()

	id, ok := identity(c)
	if !ok {
		return
	}
	examID := parseExamID(c)

	var in domain.ExamInput
	if err := c.ShouldBindJSON(&in); err != nil {
		in = domain.ExamInput{}
	}

	exam, err := h.exams.Update(ctx, id, examID, in)
	if err != nil {
		writeError(ctx, c, span, err, "Update exam failed")
		return
	}

	logger.FromContext(ctx).Info().Int64("exam_id", exam.ID).Msg("Exam updated")
	c.JSON(http.StatusOK, exam)
}

// DeleteExam handles DELETE /api/exams/:id. Admin only.
func (h *Handler) DeleteExam(c *gin.Context) {
	ctx, span := startSpan(c)
	defer span.End()

	id, ok := identity(c)
	if !ok {
		return
	}
	examID := parseExamID(c)

	if err := h.exams.Delete(ctx, id, examID); err != nil {
		writeError(ctx, c, span, err, "Delete exam failed")
		return
	}

	logger.FromContext(ctx).Info().Int64("exam_id", examID).Msg("Exam deleted")
	c.JSON(http.StatusOK, gin.H{"message": "Exam deleted successfully"})
}

// SaveExam handles POST /api/save-exam. The owner is the caller; any user
// id in the body is ignored.
func (h *Handler) SaveExam(c *gin.Context) {
	ctx, span := startSpan(c)
	defer span.End()

	id, ok := identity(c)
	if !ok {
		return
	}

	var req domain.SaveExamRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.FromContext(ctx).Warn().Err(err).Msg("Invalid request")
		badRequest(c)
		return
	}

	saved, err := h.saved.Save(ctx, id, req)
	if err != nil {
		writeError(ctx, c, span, err, "Save exam failed")
		return
	}

	c.JSON(http.StatusOK, saved)
}

// ListSavedExams handles GET /api/saved-exams.
func (h *Handler) ListSavedExams(c *gin.Context) {
	ctx, span := startSpan(c)
	defer span.End()

	id, ok := identity(c)
	if !ok {
		return
	}

	saved, err := h.saved.List(ctx, id)
	if err != nil {
		writeError(ctx, c, span, err, "List saved exams failed")
		return
	}

	c.JSON(http.StatusOK, saved)
}
