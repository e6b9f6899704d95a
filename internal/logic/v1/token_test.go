package v1

import (
	"encoding/base64"
	"encoding/json"
	"strings"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/duynhne/exam-service/internal/core/domain"
)

var testSecret = []byte("0123456789abcdef0123456789abcdef")

func TestTokenIssuer_RoundTrip(t *testing.T) {
	issuer := NewTokenIssuer(testSecret, 0)

	for _, tc := range []struct {
		id   int64
		role domain.Role
	}{
		{1, domain.RoleAdmin},
		{2, domain.RoleUser},
		{1 << 40, domain.RoleUser},
	} {
		tok, err := issuer.Issue(tc.id, tc.role)
		require.NoError(t, err)

		got, err := issuer.Verify(tok)
		require.NoError(t, err)
		assert.Equal(t, domain.Identity{UserID: tc.id, Role: tc.role}, got)
	}
}

func TestTokenIssuer_NoExpiryByDefault(t *testing.T) {
	issuer := NewTokenIssuer(testSecret, 0)
	tok, err := issuer.Issue(1, domain.RoleUser)
	require.NoError(t, err)

	var c claims
	_, _, err = jwt.NewParser().ParseUnverified(tok, &c)
	require.NoError(t, err)
	assert.Nil(t, c.ExpiresAt)
	assert.NotNil(t, c.IssuedAt)
	assert.Equal(t, "user", c.Role)
}

func TestTokenIssuer_PayloadKeys(t *testing.T) {
	issuer := NewTokenIssuer(testSecret, 0)
	tok, err := issuer.Issue(42, domain.RoleAdmin)
	require.NoError(t, err)

	parts := strings.Split(tok, ".")
	require.Len(t, parts, 3)
	raw, err := base64.RawURLEncoding.DecodeString(parts[1])
	require.NoError(t, err)

	var payload map[string]any
	require.NoError(t, json.Unmarshal(raw, &payload))

	assert.Equal(t, float64(42), payload["userId"])
	assert.Equal(t, "admin", payload["role"])
	assert.Contains(t, payload, "iat")
	assert.NotContains(t, payload, "id")
	assert.NotContains(t, payload, "exp")
}

func TestTokenIssuer_TamperedToken(t *testing.T) {
	issuer := NewTokenIssuer(testSecret, 0)
	tok, err := issuer.Issue(7, domain.RoleUser)
	require.NoError(t, err)

	parts := strings.Split(tok, ".")
	require.Len(t, parts, 3)

	for i := range parts {
		seg := []byte(parts[i])
		mid := len(seg) / 2
		if seg[mid] == 'A' {
			seg[mid] = 'B'
		} else {
			seg[mid] = 'A'
		}
		tampered := append([]string{}, parts...)
		tampered[i] = string(seg)

		_, err := issuer.Verify(strings.Join(tampered, "."))
		assert.ErrorIs(t, err, ErrAuth, "segment %d", i)
	}
}

func TestTokenIssuer_RejectsForgeries(t *testing.T) {
	issuer := NewTokenIssuer(testSecret, 0)
	other := NewTokenIssuer([]byte("another-secret-another-secret-xx"), 0)

	forged, err := other.Issue(1, domain.RoleAdmin)
	require.NoError(t, err)

	none, err := jwt.NewWithClaims(jwt.SigningMethodNone, claims{UserID: 1, Role: "admin"}).
		SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	badRole, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims{UserID: 1, Role: "root"}).
		SignedString(testSecret)
	require.NoError(t, err)

	for name, tok := range map[string]string{
		"other secret": forged,
		"alg none":     none,
		"unknown role": badRole,
		"garbage":      "not.a.token",
		"empty":        "",
	} {
		_, err := issuer.Verify(tok)
		assert.ErrorIs(t, err, ErrAuth, name)
	}
}

func TestTokenIssuer_Expiry(t *testing.T) {
	issuer := NewTokenIssuer(testSecret, time.Hour)
	now := time.Now()
	issuer.now = func() time.Time { return now }

	tok, err := issuer.Issue(1, domain.RoleUser)
	require.NoError(t, err)

	_, err = issuer.Verify(tok)
	require.NoError(t, err)

	issuer.now = func() time.Time { return now.Add(2 * time.Hour) }
	_, err = issuer.Verify(tok)
	assert.ErrorIs(t, err, ErrAuth)
}

func TestTokenIssuer_IssueRejectsInvalidIdentity(t *testing.T) {
	issuer := NewTokenIssuer(testSecret, 0)

	_, err := issuer.Issue(0, domain.RoleUser)
	assert.ErrorIs(t, err, ErrValidation)
	_, err = issuer.Issue(1, domain.RoleUnknown)
	assert.ErrorIs(t, err, ErrValidation)
}
