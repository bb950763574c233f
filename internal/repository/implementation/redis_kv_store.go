// FILE: internal/repository/implementation/redis_kv_store.go
package implementation

import (
	"context"
	"errors"
	"time"

	"roadmap-voting-be/internal/repository/contract"

	"github.com/redis/go-redis/v9"
)

type RedisKVStore struct {
	rdb *redis.Client
}

func NewRedisKVStore(rdb *redis.Client) contract.KVStore {
	return &RedisKVStore{rdb: rdb}
}

func (s *RedisKVStore) Get(ctx context.Context, key string) (string, bool, error) {
	val, err := s.rdb.Get(ctx, key).Result()
	if errors.Is(err, redis.Nil) {
		return "", false, nil
	}
	if err != nil {
		return "", false, err
	}
	return val, true, nil
}

func (s *RedisKVStore) Set(ctx context.Context, key, value string, ttl time.Duration) error {
	return s.rdb.Set(ctx, key, value, ttl).Err()
}

func (s *RedisKVStore) Delete(ctx context.Context, key string) error {
	return s.rdb.Del(ctx, key).Err()
}
