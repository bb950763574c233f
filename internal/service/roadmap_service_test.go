package service

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"roadmap-voting-be/internal/dto"
	"roadmap-voting-be/internal/entity"
	"roadmap-voting-be/internal/pkg/logger"
	"roadmap-voting-be/internal/repository/contract"
	"roadmap-voting-be/internal/repository/memory"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type nopLogger struct{}

func (nopLogger) Debug(string, string, map[string]interface{}) {}
func (nopLogger) Info(string, string, map[string]interface{})  {}
func (nopLogger) Warn(string, string, map[string]interface{})  {}
func (nopLogger) Error(string, string, map[string]interface{}) {}
func (nopLogger) Sync() error                                  { return nil }
func (nopLogger) GetLogs(string, int, int) ([]logger.LogEntry, error) {
	return nil, nil
}

type roadmapFixture struct {
	svc     IRoadmapService
	store   contract.FeatureStore
	limiter *RateLimiter
}

func newRoadmapFixture() *roadmapFixture {
	store := memory.NewFeatureStore()
	kv := memory.NewKVStore()
	log := nopLogger{}
	limiter := NewRateLimiter(kv, log)
	listing := NewListingCache(kv, log)
	svc := NewRoadmapService(store, limiter, listing, nil, nil, log)
	return &roadmapFixture{svc: svc, store: store, limiter: limiter}
}

func seedFeature(t *testing.T, store contract.FeatureStore, id int, title string, votes int, status entity.FeatureStatus) {
	t.Helper()
	err := store.Append(context.Background(), &entity.Feature{
		Id:             id,
		Title:          title,
		Description:    "some description",
		Votes:          votes,
		Status:         status,
		SubmittedAt:    time.Now(),
		SubmitterEmail: entity.AnonymousEmail,
	})
	require.NoError(t, err)
}

func decodeListing(t *testing.T, payload json.RawMessage) []dto.FeatureResponse {
	t.Helper()
	var out []dto.FeatureResponse
	require.NoError(t, json.Unmarshal(payload, &out))
	return out
}

func TestListSortsByVotesDescending(t *testing.T) {
	f := newRoadmapFixture()
	ctx := context.Background()

	seedFeature(t, f.store, 1, "Low", 3, entity.StatusUnderReview)
	seedFeature(t, f.store, 2, "High", 90, entity.StatusPlanned)
	seedFeature(t, f.store, 3, "Mid", 40, entity.StatusInProgress)

	payload, err := f.svc.List(ctx)
	require.NoError(t, err)

	listing := decodeListing(t, payload)
	require.Len(t, listing, 3)
	for i := 1; i < len(listing); i++ {
		assert.GreaterOrEqual(t, listing[i-1].Votes, listing[i].Votes, "votes must never ascend")
	}
	assert.Equal(t, "High", listing[0].Title)
}

func TestListKeepsRowOrderOnVoteTies(t *testing.T) {
	f := newRoadmapFixture()

	seedFeature(t, f.store, 1, "First", 10, entity.StatusUnderReview)
	seedFeature(t, f.store, 2, "Second", 10, entity.StatusUnderReview)
	seedFeature(t, f.store, 3, "Third", 10, entity.StatusUnderReview)

	payload, err := f.svc.List(context.Background())
	require.NoError(t, err)

	listing := decodeListing(t, payload)
	require.Len(t, listing, 3)
	assert.Equal(t, []int{1, 2, 3}, []int{listing[0].Id, listing[1].Id, listing[2].Id})
}

func TestListExcludesDeclinedFeatures(t *testing.T) {
	f := newRoadmapFixture()

	seedFeature(t, f.store, 1, "Visible", 5, entity.StatusUnderReview)
	seedFeature(t, f.store, 2, "Hidden", 99, entity.StatusDeclined)

	payload, err := f.svc.List(context.Background())
	require.NoError(t, err)

	listing := decodeListing(t, payload)
	require.Len(t, listing, 1)
	assert.Equal(t, "Visible", listing[0].Title)
}

func TestListEmptyRoadmap(t *testing.T) {
	f := newRoadmapFixture()

	payload, err := f.svc.List(context.Background())
	require.NoError(t, err)

	listing := decodeListing(t, payload)
	assert.Empty(t, listing)
}

func TestVoteIncrementsAndLocks(t *testing.T) {
	f := newRoadmapFixture()
	ctx := context.Background()

	seedFeature(t, f.store, 1, "Dark Mode", 42, entity.StatusUnderReview)

	res, err := f.svc.Vote(ctx, 1, "user-a")
	require.NoError(t, err)
	assert.Equal(t, 1, res.FeatureId)
	assert.Equal(t, 43, res.NewVotes)

	// Same user, same feature: rejected before the count moves.
	_, err = f.svc.Vote(ctx, 1, "user-a")
	assert.ErrorIs(t, err, ErrAlreadyVoted)

	stored, err := f.store.FindById(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, 43, stored.Votes)
}

func TestVoteTwoIdentities(t *testing.T) {
	f := newRoadmapFixture()
	ctx := context.Background()

	seedFeature(t, f.store, 1, "Dark Mode", 0, entity.StatusUnderReview)

	_, err := f.svc.Vote(ctx, 1, "user-a")
	require.NoError(t, err)
	res, err := f.svc.Vote(ctx, 1, "user-b")
	require.NoError(t, err)
	assert.Equal(t, 2, res.NewVotes)
}

func TestVoteUnknownFeature(t *testing.T) {
	f := newRoadmapFixture()

	_, err := f.svc.Vote(context.Background(), 999, "user-a")
	assert.ErrorIs(t, err, ErrFeatureNotFound)
}

func TestUnvoteRoundTrip(t *testing.T) {
	f := newRoadmapFixture()
	ctx := context.Background()

	seedFeature(t, f.store, 1, "Dark Mode", 42, entity.StatusUnderReview)

	_, err := f.svc.Vote(ctx, 1, "user-a")
	require.NoError(t, err)

	res, err := f.svc.Unvote(ctx, 1, "user-a")
	require.NoError(t, err)
	assert.Equal(t, 42, res.NewVotes)

	// The lock is released, so the same user may vote again.
	res, err = f.svc.Vote(ctx, 1, "user-a")
	require.NoError(t, err)
	assert.Equal(t, 43, res.NewVotes)
}

func TestUnvoteWithoutVote(t *testing.T) {
	f := newRoadmapFixture()

	seedFeature(t, f.store, 1, "Dark Mode", 42, entity.StatusUnderReview)

	_, err := f.svc.Unvote(context.Background(), 1, "user-a")
	assert.ErrorIs(t, err, ErrNotVoted)
}

func TestUnvoteNeverGoesNegative(t *testing.T) {
	f := newRoadmapFixture()
	ctx := context.Background()

	seedFeature(t, f.store, 1, "Fresh", 0, entity.StatusUnderReview)

	// A stale lock can outlive the vote it recorded, e.g. after a reseed.
	f.limiter.LockVote(ctx, "user-a", 1)

	res, err := f.svc.Unvote(ctx, 1, "user-a")
	require.NoError(t, err)
	assert.Equal(t, 0, res.NewVotes)
}

func TestListReflectsVoteImmediately(t *testing.T) {
	f := newRoadmapFixture()
	ctx := context.Background()

	seedFeature(t, f.store, 1, "Dark Mode", 42, entity.StatusUnderReview)

	_, err := f.svc.List(ctx)
	require.NoError(t, err)

	_, err = f.svc.Vote(ctx, 1, "user-a")
	require.NoError(t, err)

	payload, err := f.svc.List(ctx)
	require.NoError(t, err)

	listing := decodeListing(t, payload)
	require.Len(t, listing, 1)
	assert.Equal(t, 43, listing[0].Votes, "listing cache must be invalidated by a vote")
}

func TestSubmitCreatesFeature(t *testing.T) {
	f := newRoadmapFixture()
	ctx := context.Background()

	seedFeature(t, f.store, 1, "Existing", 5, entity.StatusUnderReview)

	res, err := f.svc.Submit(ctx, &dto.SubmitFeatureRequest{
		Title:       "Offline Mode",
		Description: "Work without a connection",
	}, "user-a")
	require.NoError(t, err)
	assert.Equal(t, 2, res.Id, "new id is row count plus one")

	stored, err := f.store.FindById(ctx, 2)
	require.NoError(t, err)
	require.NotNil(t, stored)
	assert.Equal(t, "Offline Mode", stored.Title)
	assert.Equal(t, 0, stored.Votes)
	assert.Equal(t, entity.StatusUnderReview, stored.Status)
	assert.Equal(t, entity.AnonymousEmail, stored.SubmitterEmail)
}

func TestSubmitKeepsProvidedEmail(t *testing.T) {
	f := newRoadmapFixture()

	_, err := f.svc.Submit(context.Background(), &dto.SubmitFeatureRequest{
		Title:       "Offline Mode",
		Description: "Work without a connection",
		Email:       "user@example.com",
	}, "user-a")
	require.NoError(t, err)

	stored, err := f.store.FindById(context.Background(), 1)
	require.NoError(t, err)
	require.NotNil(t, stored)
	assert.Equal(t, "user@example.com", stored.SubmitterEmail)
}

func TestSubmitCooldown(t *testing.T) {
	f := newRoadmapFixture()
	ctx := context.Background()

	_, err := f.svc.Submit(ctx, &dto.SubmitFeatureRequest{Title: "One", Description: "first"}, "user-a")
	require.NoError(t, err)

	_, err = f.svc.Submit(ctx, &dto.SubmitFeatureRequest{Title: "Two", Description: "second"}, "user-a")
	assert.ErrorIs(t, err, ErrSubmitCooldown)

	// A different user is unaffected.
	_, err = f.svc.Submit(ctx, &dto.SubmitFeatureRequest{Title: "Two", Description: "second"}, "user-b")
	assert.NoError(t, err)
}

func TestSubmitValidation(t *testing.T) {
	longTitle := make([]rune, 101)
	okTitle := make([]rune, 100)
	longDesc := make([]rune, 501)
	for i := range longTitle {
		longTitle[i] = 'x'
	}
	for i := range okTitle {
		okTitle[i] = 'x'
	}
	for i := range longDesc {
		longDesc[i] = 'x'
	}

	tests := []struct {
		name    string
		req     dto.SubmitFeatureRequest
		wantErr error
	}{
		{
			name:    "missing title",
			req:     dto.SubmitFeatureRequest{Description: "desc"},
			wantErr: ErrMissingFields,
		},
		{
			name:    "missing description",
			req:     dto.SubmitFeatureRequest{Title: "title"},
			wantErr: ErrMissingFields,
		},
		{
			name:    "title at limit is accepted",
			req:     dto.SubmitFeatureRequest{Title: string(okTitle), Description: "desc"},
			wantErr: nil,
		},
		{
			name:    "title over limit",
			req:     dto.SubmitFeatureRequest{Title: string(longTitle), Description: "desc"},
			wantErr: ErrTitleTooLong,
		},
		{
			name:    "description over limit",
			req:     dto.SubmitFeatureRequest{Title: "title", Description: string(longDesc)},
			wantErr: ErrDescriptionTooLong,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newRoadmapFixture()
			_, err := f.svc.Submit(context.Background(), &tt.req, "user-a")
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestSubmitRejectionDoesNotStartCooldown(t *testing.T) {
	f := newRoadmapFixture()
	ctx := context.Background()

	_, err := f.svc.Submit(ctx, &dto.SubmitFeatureRequest{Title: "", Description: "desc"}, "user-a")
	require.ErrorIs(t, err, ErrMissingFields)

	// Validation runs before the lock, so a rejected request costs nothing.
	_, err = f.svc.Submit(ctx, &dto.SubmitFeatureRequest{Title: "Valid", Description: "desc"}, "user-a")
	assert.NoError(t, err)
}
