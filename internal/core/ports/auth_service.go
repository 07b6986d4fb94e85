package ports

import (
	"context"

	"github.com/prana-g/livestock-api/internal/core/domain"
)

// SignInResult is returned on a successful sign-in.
type SignInResult struct {
	Token string
	User  *domain.User
}

// AuthService implements the phone+OTP sign-in flow and stateless session
// introspection.
type AuthService interface {
	// SignIn validates the OTP shape (any 4-character value passes), derives
	// the deterministic user id from the phone number, bootstraps a default
	// profile on first contact, and issues a 24h bearer token.
	SignIn(ctx context.Context, phone, otp string) (*SignInResult, error)
	// Session resolves a bearer token to its user. Invalid or expired tokens
	// yield (nil, nil): the session endpoint never errors.
	Session(ctx context.Context, token string) (*domain.User, error)
}

// RateLimiter throttles sign-in attempts per phone number.
type RateLimiter interface {
	// Allow reports whether another attempt is permitted for the given phone.
	Allow(ctx context.Context, phone string) (bool, error)
}
