// FILE: internal/service/listing_cache.go
// Read-through cache for the serialized feature listing
package service

import (
	"context"
	"encoding/json"
	"time"

	"roadmap-voting-be/internal/pkg/logger"
	"roadmap-voting-be/internal/repository/contract"
)

const (
	listingCacheKey = "feature_list"
	listingCacheTTL = 5 * time.Minute
)

// ListingCache holds the fully serialized, sorted, filtered feature list.
// Hits are returned verbatim so list latency stays flat; every mutation
// deletes the entry instead of updating it in place (invalidate-on-write).
type ListingCache struct {
	kv  contract.KVStore
	log logger.ILogger
}

func NewListingCache(kv contract.KVStore, log logger.ILogger) *ListingCache {
	return &ListingCache{
		kv:  kv,
		log: log,
	}
}

func (c *ListingCache) Get(ctx context.Context) (json.RawMessage, bool) {
	val, found, err := c.kv.Get(ctx, listingCacheKey)
	if err != nil {
		c.log.Warn("listing_cache", "Cache unreachable, treating as miss", map[string]interface{}{"error": err.Error()})
		return nil, false
	}
	if !found {
		return nil, false
	}
	return json.RawMessage(val), true
}

func (c *ListingCache) Populate(ctx context.Context, payload json.RawMessage) {
	if err := c.kv.Set(ctx, listingCacheKey, string(payload), listingCacheTTL); err != nil {
		c.log.Warn("listing_cache", "Failed to populate listing cache", map[string]interface{}{"error": err.Error()})
	}
}

func (c *ListingCache) Invalidate(ctx context.Context) {
	if err := c.kv.Delete(ctx, listingCacheKey); err != nil {
		c.log.Warn("listing_cache", "Failed to invalidate listing cache", map[string]interface{}{"error": err.Error()})
	}
}
