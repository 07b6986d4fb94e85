package redis

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/prana-g/livestock-api/internal/core/domain"
)

const signInWindow = time.Minute

// SignInLimiter throttles sign-in attempts per phone number using a counter
// with a rolling one-minute expiry.
// Key format: signin:attempts:<userId>
type SignInLimiter struct {
	client      *redis.Client
	maxAttempts int64
}

func NewSignInLimiter(client *redis.Client, maxAttempts int64) *SignInLimiter {
	if maxAttempts <= 0 {
		maxAttempts = 5
	}
	return &SignInLimiter{client: client, maxAttempts: maxAttempts}
}

// Allow counts one attempt for the phone and reports whether it is within
// the window budget. The counter key expires a minute after the first
// attempt of the window.
func (l *SignInLimiter) Allow(ctx context.Context, phone string) (bool, error) {
	key := "signin:attempts:" + domain.UserIDFromPhone(phone)

	n, err := l.client.Incr(ctx, key).Result()
	if err != nil {
		return false, fmt.Errorf("sign-in limiter: %w", err)
	}
	if n == 1 {
		if err := l.client.Expire(ctx, key, signInWindow).Err(); err != nil {
			return false, fmt.Errorf("sign-in limiter: %w", err)
		}
	}
	return n <= l.maxAttempts, nil
}
