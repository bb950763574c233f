// FILE: internal/repository/memory/kv_store.go
package memory

import (
	"context"
	"time"

	"roadmap-voting-be/internal/repository/contract"

	"github.com/patrickmn/go-cache"
)

type KVStore struct {
	cache *cache.Cache
}

// NewKVStore backs the cooldown locks and the listing cache with an
// in-process cache. Used when REDIS_URL is not configured, and by tests.
// Entries don't survive a restart, which only ever makes the service more
// permissive.
func NewKVStore() contract.KVStore {
	// Default expiration 1 hour, purge expired items every 10 minutes
	c := cache.New(1*time.Hour, 10*time.Minute)
	return &KVStore{cache: c}
}

func (s *KVStore) Get(_ context.Context, key string) (string, bool, error) {
	if x, found := s.cache.Get(key); found {
		return x.(string), true, nil
	}
	return "", false, nil
}

func (s *KVStore) Set(_ context.Context, key, value string, ttl time.Duration) error {
	s.cache.Set(key, value, ttl)
	return nil
}

func (s *KVStore) Delete(_ context.Context, key string) error {
	s.cache.Delete(key)
	return nil
}
