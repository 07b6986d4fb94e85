package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/rs/zerolog"

	"github.com/prana-g/livestock-api/internal/core/domain"
	"github.com/prana-g/livestock-api/internal/core/ports"
)

// AuthService implements the phone+OTP sign-in flow. The OTP is accepted
// whenever it is exactly 4 characters long; there is no delivery or
// verification backend behind it.
type AuthService struct {
	store       ports.Store
	limiter     ports.RateLimiter
	tokenSecret string
	tokenTTL    time.Duration
	log         zerolog.Logger
}

func NewAuthService(store ports.Store, limiter ports.RateLimiter, tokenSecret string, tokenTTL time.Duration, log zerolog.Logger) *AuthService {
	if tokenTTL <= 0 {
		tokenTTL = 24 * time.Hour
	}
	return &AuthService{
		store:       store,
		limiter:     limiter,
		tokenSecret: tokenSecret,
		tokenTTL:    tokenTTL,
		log:         log,
	}
}

func (s *AuthService) SignIn(ctx context.Context, phone, otp string) (*ports.SignInResult, error) {
	if phone == "" || otp == "" {
		return nil, domain.ErrMissingCredentials
	}
	if len([]rune(otp)) != 4 {
		return nil, domain.ErrInvalidOTP
	}

	if s.limiter != nil {
		allowed, err := s.limiter.Allow(ctx, phone)
		if err != nil {
			s.log.Warn().Err(err).Msg("rate limiter unavailable, allowing sign-in")
		} else if !allowed {
			return nil, domain.ErrTooManyAttempts
		}
	}

	userID := domain.UserIDFromPhone(phone)

	user, err := s.loadUser(ctx, userID)
	if err != nil {
		if !errors.Is(err, domain.ErrKeyNotFound) {
			return nil, fmt.Errorf("sign in: %w", err)
		}
		// First contact: bootstrap a default profile.
		user = &domain.User{
			ID:        userID,
			Phone:     phone,
			Name:      "New User",
			Location:  "India",
			CreatedAt: time.Now().UTC(),
		}
		if err := s.store.Set(ctx, domain.UserKey(userID), user); err != nil {
			return nil, fmt.Errorf("sign in: create profile: %w", err)
		}
		s.log.Info().Str("user_id", userID).Msg("new user registered")
	}

	token, err := s.issueToken(userID, phone)
	if err != nil {
		return nil, fmt.Errorf("sign in: issue token: %w", err)
	}

	return &ports.SignInResult{Token: token, User: user}, nil
}

// Session resolves a bearer token to its user. The session endpoint reports
// a missing session rather than an auth failure, so invalid and expired
// tokens both yield (nil, nil).
func (s *AuthService) Session(ctx context.Context, token string) (*domain.User, error) {
	claims, err := ParseToken(s.tokenSecret, token)
	if err != nil {
		return nil, nil
	}

	user, err := s.loadUser(ctx, claims.UserID)
	if err != nil {
		if errors.Is(err, domain.ErrKeyNotFound) {
			// Token is valid but the profile write never landed; synthesize
			// the identity from the claims.
			return &domain.User{ID: claims.UserID, Phone: claims.Phone}, nil
		}
		return nil, fmt.Errorf("session: %w", err)
	}
	return user, nil
}

func (s *AuthService) loadUser(ctx context.Context, userID string) (*domain.User, error) {
	raw, err := s.store.Get(ctx, domain.UserKey(userID))
	if err != nil {
		return nil, err
	}
	var user domain.User
	if err := json.Unmarshal(raw, &user); err != nil {
		return nil, fmt.Errorf("decode user %s: %w", userID, err)
	}
	return &user, nil
}

func (s *AuthService) issueToken(userID, phone string) (string, error) {
	claims := jwt.MapClaims{
		"sub":   userID,
		"phone": phone,
		"exp":   time.Now().Add(s.tokenTTL).Unix(),
	}
	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return t.SignedString([]byte(s.tokenSecret))
}

// TokenClaims is the decoded identity carried by a bearer token.
type TokenClaims struct {
	UserID string
	Phone  string
}

// ParseToken verifies an HS256 bearer token and extracts its identity claims.
// Expired tokens return domain.ErrTokenExpired; any other defect returns
// domain.ErrInvalidToken.
func ParseToken(secret, token string) (*TokenClaims, error) {
	claims := jwt.MapClaims{}
	tkn, err := jwt.ParseWithClaims(token, claims, func(t *jwt.Token) (interface{}, error) {
		if t.Method.Alg() != jwt.SigningMethodHS256.Alg() {
			return nil, jwt.ErrTokenSignatureInvalid
		}
		return []byte(secret), nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, domain.ErrTokenExpired
		}
		return nil, domain.ErrInvalidToken
	}
	if !tkn.Valid {
		return nil, domain.ErrInvalidToken
	}

	userID, _ := claims["sub"].(string)
	phone, _ := claims["phone"].(string)
	if userID == "" {
		return nil, domain.ErrInvalidToken
	}
	return &TokenClaims{UserID: userID, Phone: phone}, nil
}
