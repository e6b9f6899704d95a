package v1

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"github.com/duynhne/exam-service/internal/core/domain"
	"github.com/duynhne/exam-service/internal/logger"
	logicv1 "github.com/duynhne/exam-service/internal/logic/v1"
	"github.com/duynhne/exam-service/middleware"
)

// Handler groups HTTP handlers for the exam API v1.
// Dependencies are injected via the constructor, no global state.
type Handler struct {
	auth  *logicv1.AuthService
	exams *logicv1.ExamService
	saved *logicv1.SavedExamService
}

// NewHandler creates a new Handler with the given services.
func NewHandler(auth *logicv1.AuthService, exams *logicv1.ExamService, saved *logicv1.SavedExamService) *Handler {
	return &Handler{auth: auth, exams: exams, saved: saved}
}

// RegisterRoutes registers all API v1 routes on rg. requireAuth guards every
// route except register and login, which go through limit instead.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup, requireAuth, limit gin.HandlerFunc) {
	rg.POST("/register", limit, h.Register)
	rg.POST("/login", limit, h.Login)

	protected := rg.Group("", requireAuth)
	{
		protected.GET("/exams", h.ListExams)
		protected.POST("/exams", h.CreateExam)
		protected.PUT("/exams/:id", h.UpdateExam)
		protected.DELETE("/exams/:id", h.DeleteExam)

		protected.POST("/save-exam", h.SaveExam)
		protected.GET("/saved-exams", h.ListSavedExams)
	}
}

func startSpan(c *gin.Context) (context.Context, trace.Span) {
	return middleware.StartSpan(c.Request.Context(), "http.request", trace.WithAttributes(
		attribute.String("layer", "web"),
		attribute.String("method", c.Request.Method),
		attribute.String("path", c.FullPath()),
	))
}

// identity returns the caller verified by the auth middleware, or writes the
// uniform forbidden response.
func identity(c *gin.Context) (domain.Identity, bool) {
	id, ok := middleware.IdentityFrom(c)
	if !ok {
		c.String(http.StatusForbidden, http.StatusText(http.StatusForbidden))
		return domain.Identity{}, false
	}
	return id, true
}

func badRequest(c *gin.Context) {
	c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
}

// writeError translates a logic error into a status code and a fixed body.
// The cause is logged, never returned.
func writeError(ctx context.Context, c *gin.Context, span trace.Span, err error, msg string) {
	span.RecordError(err)

	switch {
	case errors.Is(err, logicv1.ErrValidation):
		logger.FromContext(ctx).Warn().Err(err).Msg(msg)
		badRequest(c)
	case errors.Is(err, logicv1.ErrConflict):
		logger.FromContext(ctx).Warn().Err(err).Msg(msg)
		c.JSON(http.StatusBadRequest, gin.H{"error": "Username or Email already exists"})
	case errors.Is(err, logicv1.ErrInvalidCredentials):
		logger.FromContext(ctx).Warn().Err(err).Msg(msg)
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid credentials"})
	case errors.Is(err, logicv1.ErrAuth):
		logger.FromContext(ctx).Warn().Err(err).Msg(msg)
		c.String(http.StatusForbidden, http.StatusText(http.StatusForbidden))
	case errors.Is(err, logicv1.ErrAccessDenied):
		logger.FromContext(ctx).Warn().Err(err).Msg(msg)
		c.JSON(http.StatusForbidden, gin.H{"message": "Access denied"})
	case errors.Is(err, logicv1.ErrNotFound):
		logger.FromContext(ctx).Info().Err(err).Msg(msg)
		c.JSON(http.StatusNotFound, gin.H{"message": "Exam not found"})
	default:
		logger.FromContext(ctx).Error().Err(err).Msg(msg)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
	}
}
