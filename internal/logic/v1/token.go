package v1

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/duynhne/exam-service/internal/core/domain"
)

type claims struct {
	UserID int64  `json:"userId"`
	Role   string `json:"role"`
	jwt.RegisteredClaims
}

// TokenIssuer mints and verifies HS256 session tokens carrying the user id
// and role. It holds no per-token state.
type TokenIssuer struct {
	secret []byte
	ttl    time.Duration
	now    func() time.Time
}

// NewTokenIssuer returns an issuer signing with secret. A ttl of zero issues
// tokens without an expiry.
func NewTokenIssuer(secret []byte, ttl time.Duration) *TokenIssuer {
	return &TokenIssuer{secret: secret, ttl: ttl, now: time.Now}
}

// Issue returns a signed token for the user.
func (t *TokenIssuer) Issue(userID int64, role domain.Role) (string, error) {
	if userID <= 0 || !role.Valid() {
		return "", fmt.Errorf("issue token for user %d: %w", userID, ErrValidation)
	}

	now := t.now()
	c := claims{
		UserID: userID,
		Role:   role.String(),
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt: jwt.NewNumericDate(now),
		},
	}
	if t.ttl > 0 {
		c.ExpiresAt = jwt.NewNumericDate(now.Add(t.ttl))
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, c).SignedString(t.secret)
	if err != nil {
		return "", fmt.Errorf("sign token: %w", err)
	}
	return signed, nil
}

// Verify checks the token's structure, signature and expiry and returns the
// identity it carries. Every failure is reported as ErrAuth.
func (t *TokenIssuer) Verify(token string) (domain.Identity, error) {
	var c claims
	_, err := jwt.ParseWithClaims(token, &c, func(*jwt.Token) (any, error) {
		return t.secret, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithIssuedAt(),
		jwt.WithTimeFunc(t.now),
	)
	if err != nil {
		return domain.Identity{}, ErrAuth
	}

	role, err := domain.ParseRole(c.Role)
	if err != nil || c.UserID <= 0 {
		return domain.Identity{}, ErrAuth
	}

	return domain.Identity{UserID: c.UserID, Role: role}, nil
}
