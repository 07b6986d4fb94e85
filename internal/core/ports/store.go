package ports

import (
	"context"
	"encoding/json"
)

// Store is the namespaced key-value persistence abstraction every resource is
// mapped onto. Implementations must be safe for concurrent use; the gateway
// performs no locking of its own and concurrent writers to the same key race
// under last-write-wins.
type Store interface {
	// Get returns the value stored under key, or domain.ErrKeyNotFound.
	Get(ctx context.Context, key string) (json.RawMessage, error)
	// Set marshals value as JSON and overwrites key unconditionally.
	Set(ctx context.Context, key string, value any) error
	// Del removes key. Deleting an absent key is not an error.
	Del(ctx context.Context, key string) error
	// GetByPrefix returns the values (not keys) of every entry whose key
	// starts with prefix, in unspecified order.
	GetByPrefix(ctx context.Context, prefix string) ([]json.RawMessage, error)
	// Ping reports whether the backing store is reachable.
	Ping(ctx context.Context) error
}
