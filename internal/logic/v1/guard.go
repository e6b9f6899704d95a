package v1

import "github.com/duynhne/exam-service/internal/core/domain"

// Permit reports whether id holds exactly the required role. There is no
// hierarchy: an admin is not implicitly permitted user-only operations.
func Permit(id domain.Identity, required domain.Role) bool {
	switch required {
	case domain.RoleAdmin:
		return id.Role == domain.RoleAdmin
	case domain.RoleUser:
		return id.Role == domain.RoleUser
	default:
		return false
	}
}

func authenticated(id domain.Identity) bool {
	return id.UserID > 0 && id.Role.Valid()
}
