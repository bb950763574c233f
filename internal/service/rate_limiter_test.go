package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"roadmap-voting-be/internal/repository/memory"

	"github.com/stretchr/testify/assert"
)

func TestCheckAndLockSubmit(t *testing.T) {
	limiter := NewRateLimiter(memory.NewKVStore(), nopLogger{})
	ctx := context.Background()

	assert.True(t, limiter.CheckAndLockSubmit(ctx, "user-a"), "first submit should pass")
	assert.False(t, limiter.CheckAndLockSubmit(ctx, "user-a"), "second submit within cooldown should be blocked")
	assert.True(t, limiter.CheckAndLockSubmit(ctx, "user-b"), "cooldown is per user")
}

func TestVoteLockRoundTrip(t *testing.T) {
	limiter := NewRateLimiter(memory.NewKVStore(), nopLogger{})
	ctx := context.Background()

	assert.False(t, limiter.HasVoted(ctx, "user-a", 1))

	limiter.LockVote(ctx, "user-a", 1)
	assert.True(t, limiter.HasVoted(ctx, "user-a", 1))
	assert.False(t, limiter.HasVoted(ctx, "user-a", 2), "lock is per feature")
	assert.False(t, limiter.HasVoted(ctx, "user-b", 1), "lock is per user")

	limiter.UnlockVote(ctx, "user-a", 1)
	assert.False(t, limiter.HasVoted(ctx, "user-a", 1))
}

// failingKV simulates an unreachable cache. Every call errors.
type failingKV struct{}

func (failingKV) Get(context.Context, string) (string, bool, error) {
	return "", false, errors.New("connection refused")
}

func (failingKV) Set(context.Context, string, string, time.Duration) error {
	return errors.New("connection refused")
}

func (failingKV) Delete(context.Context, string) error {
	return errors.New("connection refused")
}

func TestLimiterFailsOpenWhenCacheDown(t *testing.T) {
	limiter := NewRateLimiter(failingKV{}, nopLogger{})
	ctx := context.Background()

	assert.True(t, limiter.CheckAndLockSubmit(ctx, "user-a"), "cache outage must not block submissions")
	assert.False(t, limiter.HasVoted(ctx, "user-a", 1), "cache outage must not block voting")
}
