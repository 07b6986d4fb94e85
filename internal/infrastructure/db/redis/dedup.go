package redis

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

const alertDedupTTL = 24 * time.Hour

// AlertDedup suppresses repeated system alerts for the same animal: at most
// one auto-generated alert per cattle per day.
// Key format: alert:dedup:<userId>:<cattleId>
type AlertDedup struct {
	client *redis.Client
}

// NewAlertDedup creates an AlertDedup wrapping the given Redis client.
func NewAlertDedup(client *redis.Client) *AlertDedup {
	return &AlertDedup{client: client}
}

// ShouldAlert atomically claims the dedup window for the animal. The first
// caller wins and may raise the alert; everyone else within the TTL backs off.
func (d *AlertDedup) ShouldAlert(ctx context.Context, userID, cattleID string) (bool, error) {
	ok, err := d.client.SetNX(ctx, d.key(userID, cattleID), "1", alertDedupTTL).Result()
	if err != nil {
		return false, fmt.Errorf("alert dedup: %w", err)
	}
	return ok, nil
}

func (d *AlertDedup) key(userID, cattleID string) string {
	return fmt.Sprintf("alert:dedup:%s:%s", userID, cattleID)
}
