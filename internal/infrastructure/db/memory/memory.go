// Package memory provides a mutex-guarded in-memory implementation of
// ports.Store. It backs local development (STORE_BACKEND=memory) and the
// service-layer tests; nothing survives a process restart.
package memory

import (
	"context"
	"encoding/json"
	"fmt"
	"sort"
	"strings"
	"sync"

	"github.com/prana-g/livestock-api/internal/core/domain"
)

// Store keeps every value as its marshalled JSON, mirroring how the durable
// backends store opaque documents.
type Store struct {
	mu   sync.RWMutex
	data map[string]json.RawMessage
}

func New() *Store {
	return &Store{data: make(map[string]json.RawMessage)}
}

func (s *Store) Get(_ context.Context, key string) (json.RawMessage, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	value, ok := s.data[key]
	if !ok {
		return nil, domain.ErrKeyNotFound
	}
	return value, nil
}

func (s *Store) Set(_ context.Context, key string, value any) error {
	data, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("kv set: marshal %s: %w", key, err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.data[key] = data
	return nil
}

func (s *Store) Del(_ context.Context, key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.data, key)
	return nil
}

func (s *Store) GetByPrefix(_ context.Context, prefix string) ([]json.RawMessage, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var keys []string
	for k := range s.data {
		if strings.HasPrefix(k, prefix) {
			keys = append(keys, k)
		}
	}
	// Key order for determinism; callers still sort by their own criteria.
	sort.Strings(keys)

	values := make([]json.RawMessage, 0, len(keys))
	for _, k := range keys {
		values = append(values, s.data[k])
	}
	return values, nil
}

func (s *Store) Ping(context.Context) error {
	return nil
}

// Len reports the number of stored keys. Test helper.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.data)
}
