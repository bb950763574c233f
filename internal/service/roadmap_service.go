// FILE: internal/service/roadmap_service.go
// Core roadmap logic: listing, voting ledger, submissions
package service

import (
	"context"
	"encoding/json"
	"sort"
	"time"
	"unicode/utf8"

	"roadmap-voting-be/internal/dto"
	"roadmap-voting-be/internal/entity"
	"roadmap-voting-be/internal/pkg/logger"
	"roadmap-voting-be/internal/pkg/serverutils"
	"roadmap-voting-be/internal/repository/contract"
	"roadmap-voting-be/pkg/events"
	pktNats "roadmap-voting-be/pkg/nats"
)

const (
	maxTitleLength       = 100
	maxDescriptionLength = 500
)

var (
	ErrInvalidFeatureId   = serverutils.NewBadRequest("Invalid feature ID")
	ErrMissingFields      = serverutils.NewBadRequest("Title and description are required")
	ErrTitleTooLong       = serverutils.NewBadRequest("Title must be less than 100 characters")
	ErrDescriptionTooLong = serverutils.NewBadRequest("Description must be less than 500 characters")
	ErrSubmitCooldown     = serverutils.NewTooManyRequests("Please wait before submitting another feature")
	ErrAlreadyVoted       = serverutils.NewConflict("You already voted for this feature")
	ErrNotVoted           = serverutils.NewConflict("You have not voted for this feature")
	ErrFeatureNotFound    = serverutils.NewNotFound("Feature not found")
)

type IRoadmapService interface {
	List(ctx context.Context) (json.RawMessage, error)
	Vote(ctx context.Context, featureId int, userKey string) (*dto.VoteResponse, error)
	Unvote(ctx context.Context, featureId int, userKey string) (*dto.VoteResponse, error)
	Submit(ctx context.Context, req *dto.SubmitFeatureRequest, userKey string) (*dto.SubmitFeatureResponse, error)
}

type roadmapService struct {
	store     contract.FeatureStore
	limiter   *RateLimiter
	listing   *ListingCache
	publisher IPublisherService
	natsPub   *pktNats.Publisher
	log       logger.ILogger
}

func NewRoadmapService(
	store contract.FeatureStore,
	limiter *RateLimiter,
	listing *ListingCache,
	publisher IPublisherService,
	natsPub *pktNats.Publisher,
	log logger.ILogger,
) IRoadmapService {
	return &roadmapService{
		store:     store,
		limiter:   limiter,
		listing:   listing,
		publisher: publisher,
		natsPub:   natsPub,
		log:       log,
	}
}

// List serves the listing from the cache verbatim on a hit. On a miss it
// reads every row, drops Declined features, stable-sorts by votes descending
// (ties keep row order), serializes, populates the cache and returns.
func (s *roadmapService) List(ctx context.Context) (json.RawMessage, error) {
	if payload, hit := s.listing.Get(ctx); hit {
		return payload, nil
	}

	features, err := s.store.FindAll(ctx)
	if err != nil {
		return nil, err
	}

	visible := make([]*entity.Feature, 0, len(features))
	for _, f := range features {
		if f.Status == entity.StatusDeclined {
			continue
		}
		visible = append(visible, f)
	}
	sort.SliceStable(visible, func(i, j int) bool {
		return visible[i].Votes > visible[j].Votes
	})

	responses := make([]dto.FeatureResponse, 0, len(visible))
	for _, f := range visible {
		responses = append(responses, dto.FeatureResponse{
			Id:          f.Id,
			Title:       f.Title,
			Description: f.Description,
			Votes:       f.Votes,
			Status:      string(f.Status),
			Submitted:   f.SubmittedAt,
			Email:       f.SubmitterEmail,
		})
	}

	payload, err := json.Marshal(responses)
	if err != nil {
		return nil, err
	}

	s.listing.Populate(ctx, payload)
	return payload, nil
}

func (s *roadmapService) Vote(ctx context.Context, featureId int, userKey string) (*dto.VoteResponse, error) {
	if s.limiter.HasVoted(ctx, userKey, featureId) {
		return nil, ErrAlreadyVoted
	}

	newVotes, found, err := s.store.AddVote(ctx, featureId)
	if err != nil {
		return nil, err
	}
	if !found {
		return nil, ErrFeatureNotFound
	}

	s.limiter.LockVote(ctx, userKey, featureId)
	s.listing.Invalidate(ctx)

	s.log.Info("roadmap", "Vote recorded", map[string]interface{}{
		"feature_id": featureId,
		"new_votes":  newVotes,
	})
	s.publishEvent(ctx, events.NewVoteCast(featureId, newVotes))

	return &dto.VoteResponse{FeatureId: featureId, NewVotes: newVotes}, nil
}

func (s *roadmapService) Unvote(ctx context.Context, featureId int, userKey string) (*dto.VoteResponse, error) {
	if !s.limiter.HasVoted(ctx, userKey, featureId) {
		return nil, ErrNotVoted
	}

	newVotes, found, err := s.store.RemoveVote(ctx, featureId)
	if err != nil {
		return nil, err
	}
	if !found {
		return nil, ErrFeatureNotFound
	}

	s.limiter.UnlockVote(ctx, userKey, featureId)
	s.listing.Invalidate(ctx)

	s.log.Info("roadmap", "Vote removed", map[string]interface{}{
		"feature_id": featureId,
		"new_votes":  newVotes,
	})
	s.publishEvent(ctx, events.NewVoteRetracted(featureId, newVotes))

	return &dto.VoteResponse{FeatureId: featureId, NewVotes: newVotes}, nil
}

// Submit validates in a fixed order before touching any state: the
// submission lock is set as part of the cooldown check and has no rollback.
// The new id is the current row count plus one; ids start at 1.
func (s *roadmapService) Submit(ctx context.Context, req *dto.SubmitFeatureRequest, userKey string) (*dto.SubmitFeatureResponse, error) {
	if req.Title == "" || req.Description == "" {
		return nil, ErrMissingFields
	}
	if utf8.RuneCountInString(req.Title) > maxTitleLength {
		return nil, ErrTitleTooLong
	}
	if utf8.RuneCountInString(req.Description) > maxDescriptionLength {
		return nil, ErrDescriptionTooLong
	}

	if !s.limiter.CheckAndLockSubmit(ctx, userKey) {
		return nil, ErrSubmitCooldown
	}

	count, err := s.store.Count(ctx)
	if err != nil {
		return nil, err
	}

	email := req.Email
	if email == "" {
		email = entity.AnonymousEmail
	}

	feature := &entity.Feature{
		Id:             int(count) + 1,
		Title:          req.Title,
		Description:    req.Description,
		Votes:          0,
		Status:         entity.StatusUnderReview,
		SubmittedAt:    time.Now(),
		SubmitterEmail: email,
	}
	if err := s.store.Append(ctx, feature); err != nil {
		return nil, err
	}

	s.listing.Invalidate(ctx)

	s.log.Info("roadmap", "Feature submitted", map[string]interface{}{
		"feature_id": feature.Id,
		"title":      feature.Title,
	})

	if s.publisher != nil {
		if err := s.publisher.PublishFeatureSubmitted(ctx, &dto.FeatureSubmittedMessage{
			Id:          feature.Id,
			Title:       feature.Title,
			Email:       feature.SubmitterEmail,
			SubmittedAt: feature.SubmittedAt,
		}); err != nil {
			s.log.Warn("roadmap", "Failed to publish submission alert", map[string]interface{}{"error": err.Error()})
		}
	}
	s.publishEvent(ctx, events.NewFeatureSubmitted(feature.Id, feature.Title))

	return &dto.SubmitFeatureResponse{Id: feature.Id}, nil
}

// publishEvent pushes a mutation event to NATS for external consumers.
// Best effort: the publisher may be nil and failures never fail the request.
func (s *roadmapService) publishEvent(ctx context.Context, event events.Event) {
	if s.natsPub == nil {
		return
	}
	if err := s.natsPub.Publish(ctx, event); err != nil {
		s.log.Warn("roadmap", "Failed to publish event", map[string]interface{}{
			"event": event.EventType(),
			"error": err.Error(),
		})
	}
}
