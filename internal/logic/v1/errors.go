// Package v1 provides the exam service business logic for API version 1.
//
// Error Handling:
// Every failure returned from this package wraps one of the sentinel errors
// below with fmt.Errorf("%w"). Handlers match them with errors.Is and translate
// them to a status code and a fixed message; wrapped context is only logged.
//
//	switch {
//	case errors.Is(err, logicv1.ErrAccessDenied):
//	    c.JSON(http.StatusForbidden, gin.H{"message": "Access denied"})
//	case errors.Is(err, logicv1.ErrNotFound):
//	    c.JSON(http.StatusNotFound, gin.H{"message": "Exam not found"})
//	default:
//	    c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
//	}
package v1

import "errors"

// Sentinel errors for business operations.
var (
	// ErrValidation indicates a malformed or incomplete request body.
	// HTTP Status: 400 Bad Request
	ErrValidation = errors.New("validation failed")

	// ErrAuth indicates a missing, malformed, forged or expired token.
	// Every token failure collapses into this one error.
	// HTTP Status: 403 Forbidden (no detail)
	ErrAuth = errors.New("authentication failed")

	// ErrAccessDenied indicates a verified caller without the required role.
	// HTTP Status: 403 Forbidden
	ErrAccessDenied = errors.New("access denied")

	// ErrNotFound indicates the referenced exam does not exist.
	// HTTP Status: 404 Not Found
	ErrNotFound = errors.New("not found")

	// ErrConflict indicates the username or email is already registered.
	// HTTP Status: 400 Bad Request
	ErrConflict = errors.New("already exists")

	// ErrInvalidCredentials indicates an unknown email or a wrong password.
	// HTTP Status: 400 Bad Request
	ErrInvalidCredentials = errors.New("invalid credentials")
)
