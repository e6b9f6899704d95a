package v1

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"go.opentelemetry.io/otel/attribute"

	"github.com/duynhne/exam-service/internal/core/domain"
	"github.com/duynhne/exam-service/internal/logger"
)

// Register handles POST /api/register.
func (h *Handler) Register(c *gin.Context) {
	ctx, span := startSpan(c)
	defer span.End()

	var req domain.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		span.SetAttributes(attribute.Bool("request.valid", false))
		logger.FromContext(ctx).Warn().Err(err).Msg("Invalid request")
		badRequest(c)
		return
	}
	span.SetAttributes(attribute.Bool("request.valid", true))

	user, err := h.auth.Register(ctx, req)
	if err != nil {
		writeError(ctx, c, span, err, "Registration failed")
		return
	}

	logger.FromContext(ctx).Info().Str("user_id", strconv.FormatInt(user.ID, 10)).Msg("Registration successful")
	c.JSON(http.StatusOK, user)
}

// Login handles POST /api/login.
func (h *Handler) Login(c *gin.Context) {
	ctx, span := startSpan(c)
	defer span.End()

	var req domain.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		span.SetAttributes(attribute.Bool("request.valid", false))
		logger.FromContext(ctx).Warn().Err(err).Msg("Invalid request")
		badRequest(c)
		return
	}
	span.SetAttributes(attribute.Bool("request.valid", true))

	resp, err := h.auth.Login(ctx, req)
	if err != nil {
		writeError(ctx, c, span, err, "Login failed")
		return
	}

	logger.FromContext(ctx).Info().Msg("Login successful")
	c.JSON(http.StatusOK, resp)
}
