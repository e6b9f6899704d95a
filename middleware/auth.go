package middleware

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/duynhne/exam-service/internal/core/domain"
	"github.com/duynhne/exam-service/internal/logger"
)

const identityKey = "identity"

// TokenVerifier turns a raw token into the identity it asserts.
type TokenVerifier interface {
	Verify(token string) (domain.Identity, error)
}

// AuthMiddleware verifies the raw token in header and stores the caller's
// Identity for IdentityFrom. The header value is used as is, without any
// "Bearer " prefix handling. A missing or invalid token aborts with a bare
// 403 "Forbidden" so the two cases cannot be told apart.
func AuthMiddleware(verifier TokenVerifier, header string) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := c.GetHeader(header)
		if token == "" {
			RecordAuthDecision("token", "missing")
			forbid(c)
			return
		}

		id, err := verifier.Verify(token)
		if err != nil {
			RecordAuthDecision("token", "invalid")
			logger.FromContext(c.Request.Context()).Debug().Msg("token rejected")
			forbid(c)
			return
		}
		RecordAuthDecision("token", "valid")

		c.Set(identityKey, id)

		ctx := logger.WithFields(c.Request.Context(),
			"user_id", strconv.FormatInt(id.UserID, 10),
			"role", id.Role.String(),
		)
		c.Request = c.Request.WithContext(ctx)

		c.Next()
	}
}

func forbid(c *gin.Context) {
	c.String(http.StatusForbidden, http.StatusText(http.StatusForbidden))
	c.Abort()
}

// IdentityFrom returns the identity stored by AuthMiddleware. ok is false on
// routes that are not behind it.
func IdentityFrom(c *gin.Context) (domain.Identity, bool) {
	v, exists := c.Get(identityKey)
	if !exists {
		return domain.Identity{}, false
	}
	id, ok := v.(domain.Identity)
	return id, ok
}
