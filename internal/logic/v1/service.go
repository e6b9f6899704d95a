package v1

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"sync"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"github.com/duynhne/exam-service/internal/core/domain"
	"github.com/duynhne/exam-service/middleware"
)

// AuthService implements registration and login.
// It depends on repository interfaces (injected via constructor) and
// MUST NOT access the database or SQL directly.
type AuthService struct {
	users  domain.UserRepository
	hasher *PasswordHasher
	tokens *TokenIssuer

	// dummyHash is compared against when the email is unknown so that both
	// login failure paths cost one bcrypt comparison.
	dummyHash func() (string, error)
}

// NewAuthService creates a new AuthService with the given dependencies.
func NewAuthService(users domain.UserRepository, hasher *PasswordHasher, tokens *TokenIssuer) *AuthService {
	return &AuthService{
		users:  users,
		hasher: hasher,
		tokens: tokens,
		dummyHash: sync.OnceValues(func() (string, error) {
			return hasher.Hash("exam-service-dummy-password")
		}),
	}
}

// Register validates the request, hashes the password and stores the user.
// The returned user never exposes the hash on the wire.
func (s *AuthService) Register(ctx context.Context, req domain.RegisterRequest) (*domain.User, error) {
	ctx, span := middleware.StartSpan(ctx, "auth.register", trace.WithAttributes(
		attribute.String("layer", "logic"),
	))
	defer span.End()

	if err := validateStruct(req); err != nil {
		span.SetAttributes(attribute.Bool("registration.success", false))
		middleware.RecordAuthDecision("register", "invalid")
		return nil, fmt.Errorf("register user: %w", err)
	}

	role, err := domain.ParseRole(req.Role)
	if err != nil {
		middleware.RecordAuthDecision("register", "invalid")
		return nil, fmt.Errorf("register user: %w", ErrValidation)
	}

	hash, err := s.hasher.Hash(req.Password)
	if err != nil {
		span.RecordError(err)
		return nil, fmt.Errorf("register user: %w", err)
	}

	user, err := s.users.Create(ctx, &domain.User{
		Username:     req.Username,
		Email:        req.Email,
		PasswordHash: hash,
		Role:         role,
	})
	if err != nil {
		if errors.Is(err, domain.ErrDuplicate) {
			span.SetAttributes(attribute.Bool("registration.success", false))
			middleware.RecordAuthDecision("register", "conflict")
			return nil, fmt.Errorf("register user: %w", ErrConflict)
		}
		span.RecordError(err)
		return nil, fmt.Errorf("insert user: %w", err)
	}

	span.SetAttributes(
		attribute.String("user.id", strconv.FormatInt(user.ID, 10)),
		attribute.Bool("registration.success", true),
	)
	span.AddEvent("user.registered")
	middleware.RecordAuthDecision("register", "success")

	return user, nil
}

// Login checks the credentials and issues a session token. An unknown email
// and a wrong password are indistinguishable to the caller.
func (s *AuthService) Login(ctx context.Context, req domain.LoginRequest) (*domain.LoginResponse, error) {
	ctx, span := middleware.StartSpan(ctx, "auth.login", trace.WithAttributes(
		attribute.String("layer", "logic"),
	))
	defer span.End()

	fail := func() (*domain.LoginResponse, error) {
		span.SetAttributes(attribute.Bool("auth.success", false))
		span.AddEvent("authentication.failed")
		middleware.RecordAuthDecision("login", "invalid_credentials")
		return nil, fmt.Errorf("authenticate: %w", ErrInvalidCredentials)
	}

	if err := validateStruct(req); err != nil {
		return fail()
	}

	user, err := s.users.GetByEmail(ctx, req.Email)
	if err != nil {
		if !errors.Is(err, domain.ErrNotFound) {
			span.RecordError(err)
			return nil, fmt.Errorf("query user: %w", err)
		}
		if dummy, hashErr := s.dummyHash(); hashErr == nil {
			s.hasher.Verify(req.Password, dummy)
		}
		return fail()
	}

	if !s.hasher.Verify(req.Password, user.PasswordHash) {
		return fail()
	}

	token, err := s.tokens.Issue(user.ID, user.Role)
	if err != nil {
		span.RecordError(err)
		return nil, fmt.Errorf("issue token: %w", err)
	}

	span.SetAttributes(
		attribute.String("user.id", strconv.FormatInt(user.ID, 10)),
		attribute.Bool("auth.success", true),
	)
	span.AddEvent("user.authenticated")
	middleware.RecordAuthDecision("login", "success")

	return &domain.LoginResponse{Token: token}, nil
}
