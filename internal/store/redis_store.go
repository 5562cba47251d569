package store

import (
	"context"
	"errors"

	"github.com/redis/go-redis/v9"
)

const collectionKeyPrefix = "collection:"

// Redis keeps each collection as a plain string value. A deployment that
// already runs Redis can point the dashboards at it instead of Postgres.
type Redis struct {
	client *redis.Client
}

func NewRedis(client *redis.Client) *Redis {
	return &Redis{client: client}
}

func (r *Redis) Get(ctx context.Context, key string) ([]byte, bool, error) {
	raw, err := r.client.Get(ctx, collectionKeyPrefix+key).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}
	return raw, true, nil
}

func (r *Redis) Put(ctx context.Context, key string, value []byte) error {
	return r.client.Set(ctx, collectionKeyPrefix+key, value, 0).Err()
}
