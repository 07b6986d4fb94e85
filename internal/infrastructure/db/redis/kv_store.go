package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/prana-g/livestock-api/internal/api/metrics"
	"github.com/prana-g/livestock-api/internal/core/domain"
)

const scanBatch = 100

// KVStore implements ports.Store directly on Redis keys. Prefix enumeration
// walks the keyspace with SCAN (never KEYS) and fetches matches with MGET.
type KVStore struct {
	client *redis.Client
}

func NewKVStore(client *redis.Client) *KVStore {
	return &KVStore{client: client}
}

func (s *KVStore) Get(ctx context.Context, key string) (json.RawMessage, error) {
	defer observe("get")()

	data, err := s.client.Get(ctx, key).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, domain.ErrKeyNotFound
		}
		return nil, fmt.Errorf("kv get: %w", err)
	}
	return json.RawMessage(data), nil
}

func (s *KVStore) Set(ctx context.Context, key string, value any) error {
	defer observe("set")()

	data, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("kv set: marshal %s: %w", key, err)
	}
	// No TTL: records live until explicitly deleted.
	if err := s.client.Set(ctx, key, data, 0).Err(); err != nil {
		return fmt.Errorf("kv set: %w", err)
	}
	return nil
}

func (s *KVStore) Del(ctx context.Context, key string) error {
	defer observe("del")()

	// DEL on an absent key reports zero removals; deletion stays idempotent.
	if err := s.client.Del(ctx, key).Err(); err != nil {
		return fmt.Errorf("kv del: %w", err)
	}
	return nil
}

func (s *KVStore) GetByPrefix(ctx context.Context, prefix string) ([]json.RawMessage, error) {
	defer observe("get_by_prefix")()

	var keys []string
	iter := s.client.Scan(ctx, 0, prefix+"*", scanBatch).Iterator()
	for iter.Next(ctx) {
		keys = append(keys, iter.Val())
	}
	if err := iter.Err(); err != nil {
		return nil, fmt.Errorf("kv prefix scan: %w", err)
	}
	if len(keys) == 0 {
		return nil, nil
	}

	values := make([]json.RawMessage, 0, len(keys))
	for start := 0; start < len(keys); start += scanBatch {
		end := min(start+scanBatch, len(keys))
		batch, err := s.client.MGet(ctx, keys[start:end]...).Result()
		if err != nil {
			return nil, fmt.Errorf("kv prefix fetch: %w", err)
		}
		for _, v := range batch {
			// A key can expire between SCAN and MGET; skip the hole.
			str, ok := v.(string)
			if !ok {
				continue
			}
			values = append(values, json.RawMessage(str))
		}
	}
	return values, nil
}

func (s *KVStore) Ping(ctx context.Context) error {
	return s.client.Ping(ctx).Err()
}

func observe(op string) func() {
	start := time.Now()
	return func() {
		metrics.StoreOpDuration.WithLabelValues(op, "redis").Observe(time.Since(start).Seconds())
	}
}
