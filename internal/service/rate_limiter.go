// FILE: internal/service/rate_limiter.go
// Cooldown enforcement over the KV store
package service

import (
	"context"
	"fmt"
	"time"

	"roadmap-voting-be/internal/pkg/logger"
	"roadmap-voting-be/internal/repository/contract"
)

const (
	submitCooldown = 1 * time.Hour
	voteCooldown   = 24 * time.Hour
)

// RateLimiter enforces the per-user submission cooldown and the per-feature
// vote cooldown. All lock state lives in the KV store and is advisory:
// a KV failure is logged and treated as "lock absent", so an outage degrades
// abuse prevention, never availability of voting.
type RateLimiter struct {
	kv  contract.KVStore
	log logger.ILogger
}

func NewRateLimiter(kv contract.KVStore, log logger.ILogger) *RateLimiter {
	return &RateLimiter{
		kv:  kv,
		log: log,
	}
}

func submitKey(userKey string) string {
	return "submit_" + userKey
}

func voteKey(userKey string, featureId int) string {
	return fmt.Sprintf("vote_%s_%d", userKey, featureId)
}

// CheckAndLockSubmit reports whether the user may submit and, if so, starts
// the cooldown in the same call. There is no rollback, so callers must run
// all input validation before this.
func (rl *RateLimiter) CheckAndLockSubmit(ctx context.Context, userKey string) bool {
	key := submitKey(userKey)
	_, found, err := rl.kv.Get(ctx, key)
	if err != nil {
		rl.log.Warn("ratelimit", "Cache unreachable on submit check, allowing", map[string]interface{}{"error": err.Error()})
	}
	if found {
		return false
	}
	if err := rl.kv.Set(ctx, key, "true", submitCooldown); err != nil {
		rl.log.Warn("ratelimit", "Failed to set submit lock", map[string]interface{}{"error": err.Error()})
	}
	return true
}

func (rl *RateLimiter) HasVoted(ctx context.Context, userKey string, featureId int) bool {
	_, found, err := rl.kv.Get(ctx, voteKey(userKey, featureId))
	if err != nil {
		rl.log.Warn("ratelimit", "Cache unreachable on vote check, treating as not voted", map[string]interface{}{"error": err.Error()})
		return false
	}
	return found
}

func (rl *RateLimiter) LockVote(ctx context.Context, userKey string, featureId int) {
	if err := rl.kv.Set(ctx, voteKey(userKey, featureId), "true", voteCooldown); err != nil {
		rl.log.Warn("ratelimit", "Failed to set vote lock", map[string]interface{}{"error": err.Error()})
	}
}

func (rl *RateLimiter) UnlockVote(ctx context.Context, userKey string, featureId int) {
	if err := rl.kv.Delete(ctx, voteKey(userKey, featureId)); err != nil {
		rl.log.Warn("ratelimit", "Failed to delete vote lock", map[string]interface{}{"error": err.Error()})
	}
}
