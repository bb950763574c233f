// FILE: internal/repository/contract/kv_store.go
package contract

import (
	"context"
	"time"
)

// KVStore is the ephemeral cache behind cooldown locks and the cached
// listing. Entries are advisory and lossy: callers must treat errors and
// missing keys as "not present" (fail-open), never as corruption.
type KVStore interface {
	Get(ctx context.Context, key string) (value string, found bool, err error)
	Set(ctx context.Context, key, value string, ttl time.Duration) error
	Delete(ctx context.Context, key string) error
}
