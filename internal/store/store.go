// Package store holds the persisted collection store: named, serialized
// arrays of dashboard records behind a small key-value contract. Each
// dashboard receives a Store instance instead of reaching for a global, so
// tests can swap in the in-memory backend.
package store

import (
	"context"
	"encoding/json"

	"go.uber.org/zap"
)

// Store is the key-value contract every backend implements. Get reports
// whether a value exists under the key; Put overwrites the whole value.
// There are no partial updates and no transactions.
type Store interface {
	Get(ctx context.Context, key string) ([]byte, bool, error)
	Put(ctx context.Context, key string, value []byte) error
}

// Load returns the collection persisted under key, or the fixture when
// nothing usable is stored. A corrupted value is treated as absent: the
// caller gets the fixture and the problem is only logged, never raised.
func Load[T any](ctx context.Context, s Store, key string, fixture []T) []T {
	raw, ok, err := s.Get(ctx, key)
	if err != nil {
		zap.L().Warn("collection read failed, using fixture", zap.String("key", key), zap.Error(err))
		return fixture
	}
	if !ok {
		return fixture
	}

	var records []T
	if err := json.Unmarshal(raw, &records); err != nil {
		zap.L().Warn("collection unreadable, using fixture", zap.String("key", key), zap.Error(err))
		return fixture
	}
	return records
}

// Save serializes the full collection and overwrites whatever was stored
// under key. Always writes the complete array, last write wins.
func Save[T any](ctx context.Context, s Store, key string, records []T) error {
	raw, err := json.Marshal(records)
	if err != nil {
		return err
	}
	return s.Put(ctx, key, raw)
}
