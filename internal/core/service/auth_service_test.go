package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/rs/zerolog"

	"github.com/prana-g/livestock-api/internal/core/domain"
	"github.com/prana-g/livestock-api/internal/core/ports"
	"github.com/prana-g/livestock-api/internal/infrastructure/db/memory"
)

const testSecret = "test-secret"

type stubLimiter struct {
	allowed bool
	err     error
}

func (l *stubLimiter) Allow(context.Context, string) (bool, error) {
	return l.allowed, l.err
}

func newAuthService(limiter ports.RateLimiter) (*AuthService, *memory.Store) {
	store := memory.New()
	return NewAuthService(store, limiter, testSecret, time.Hour, zerolog.Nop()), store
}

func TestSignInBootstrapsUser(t *testing.T) {
	svc, store := newAuthService(nil)
	ctx := context.Background()

	result, err := svc.SignIn(ctx, "+919876543210", "1234")
	if err != nil {
		t.Fatalf("SignIn: %v", err)
	}
	if result.Token == "" {
		t.Error("empty token")
	}
	if result.User.ID != "user_919876543210" {
		t.Errorf("user id %q", result.User.ID)
	}
	if result.User.Name != "New User" || result.User.Location != "India" {
		t.Errorf("unexpected default profile: %+v", result.User)
	}

	claims, err := ParseToken(testSecret, result.Token)
	if err != nil {
		t.Fatalf("ParseToken: %v", err)
	}
	if claims.UserID != result.User.ID || claims.Phone != "+919876543210" {
		t.Errorf("claims %+v", claims)
	}

	if _, err := store.Get(ctx, domain.UserKey(result.User.ID)); err != nil {
		t.Errorf("profile not persisted: %v", err)
	}
}

func TestSignInSamePhoneSameIdentity(t *testing.T) {
	svc, store := newAuthService(nil)
	ctx := context.Background()

	first, err := svc.SignIn(ctx, "+91 98765 43210", "1234")
	if err != nil {
		t.Fatalf("first SignIn: %v", err)
	}
	second, err := svc.SignIn(ctx, "919876543210", "9999")
	if err != nil {
		t.Fatalf("second SignIn: %v", err)
	}
	if first.User.ID != second.User.ID {
		t.Errorf("identities differ: %q vs %q", first.User.ID, second.User.ID)
	}
	// Only one user record should exist for the phone.
	if store.Len() != 1 {
		t.Errorf("store holds %d keys, want 1", store.Len())
	}
}

func TestSignInValidation(t *testing.T) {
	svc, store := newAuthService(nil)
	ctx := context.Background()

	if _, err := svc.SignIn(ctx, "", "1234"); !errors.Is(err, domain.ErrMissingCredentials) {
		t.Errorf("missing phone: got %v", err)
	}
	if _, err := svc.SignIn(ctx, "+911234567890", ""); !errors.Is(err, domain.ErrMissingCredentials) {
		t.Errorf("missing otp: got %v", err)
	}
	if _, err := svc.SignIn(ctx, "+911234567890", "12345"); !errors.Is(err, domain.ErrInvalidOTP) {
		t.Errorf("long otp: got %v", err)
	}
	if store.Len() != 0 {
		t.Errorf("rejected sign-in wrote %d keys", store.Len())
	}
}

func TestSignInRateLimited(t *testing.T) {
	svc, _ := newAuthService(&stubLimiter{allowed: false})
	_, err := svc.SignIn(context.Background(), "+911234567890", "1234")
	if !errors.Is(err, domain.ErrTooManyAttempts) {
		t.Errorf("got %v, want ErrTooManyAttempts", err)
	}
}

func TestSignInLimiterFailureAllows(t *testing.T) {
	svc, _ := newAuthService(&stubLimiter{err: errors.New("redis down")})
	result, err := svc.SignIn(context.Background(), "+911234567890", "1234")
	if err != nil {
		t.Fatalf("SignIn: %v", err)
	}
	if result.Token == "" {
		t.Error("empty token")
	}
}

func TestSessionResolvesUser(t *testing.T) {
	svc, _ := newAuthService(nil)
	ctx := context.Background()

	result, err := svc.SignIn(ctx, "+911234567890", "1234")
	if err != nil {
		t.Fatalf("SignIn: %v", err)
	}

	user, err := svc.Session(ctx, result.Token)
	if err != nil {
		t.Fatalf("Session: %v", err)
	}
	if user == nil || user.ID != result.User.ID {
		t.Errorf("session user %+v", user)
	}
}

func TestSessionInvalidTokenYieldsNil(t *testing.T) {
	svc, _ := newAuthService(nil)

	user, err := svc.Session(context.Background(), "not-a-token")
	if err != nil {
		t.Fatalf("Session: %v", err)
	}
	if user != nil {
		t.Errorf("got user %+v, want nil", user)
	}
}

func TestParseTokenExpired(t *testing.T) {
	claims := jwt.MapClaims{
		"sub":   "user_1",
		"phone": "+911234567890",
		"exp":   time.Now().Add(-time.Minute).Unix(),
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(testSecret))
	if err != nil {
		t.Fatalf("sign token: %v", err)
	}
	if _, err := ParseToken(testSecret, token); !errors.Is(err, domain.ErrTokenExpired) {
		t.Errorf("got %v, want ErrTokenExpired", err)
	}
}

func TestParseTokenWrongSecret(t *testing.T) {
	svc, _ := newAuthService(nil)
	result, err := svc.SignIn(context.Background(), "+911234567890", "1234")
	if err != nil {
		t.Fatalf("SignIn: %v", err)
	}
	if _, err := ParseToken("other-secret", result.Token); !errors.Is(err, domain.ErrInvalidToken) {
		t.Errorf("got %v, want ErrInvalidToken", err)
	}
}
