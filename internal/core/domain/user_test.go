package domain

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseRole(t *testing.T) {
	tests := []struct {
		in      string
		want    Role
		wantErr bool
	}{
		{in: "admin", want: RoleAdmin},
		{in: "user", want: RoleUser},
		{in: "Admin", want: RoleUnknown, wantErr: true},
		{in: "", want: RoleUnknown, wantErr: true},
		{in: "superuser", want: RoleUnknown, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseRole(tt.in)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.wantErr, err != nil)
		})
	}
}

func TestRole_ZeroValueIsInvalid(t *testing.T) {
	var r Role
	assert.False(t, r.Valid())
	_, err := r.MarshalText()
	assert.Error(t, err)
}

func TestUser_JSONOmitsPasswordHash(t *testing.T) {
	u := User{ID: 1, Username: "alice", Email: "a@x.com", PasswordHash: "$2a$10$secret", Role: RoleUser}

	b, err := json.Marshal(u)
	require.NoError(t, err)

	assert.NotContains(t, string(b), "secret")
	assert.NotContains(t, string(b), "password")
	assert.Contains(t, string(b), `"role":"user"`)
}

func TestSaveExamRequest_IgnoresClientUserID(t *testing.T) {
	var req SaveExamRequest
	require.NoError(t, json.Unmarshal([]byte(`{"examId":5,"user_id":99,"userId":99}`), &req))

	assert.Equal(t, int64(5), req.ExamID)
}
