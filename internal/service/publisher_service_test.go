package service

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"roadmap-voting-be/internal/dto"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPublishFeatureSubmitted(t *testing.T) {
	pubSub := gochannel.NewGoChannel(gochannel.Config{}, watermill.NopLogger{})
	svc := NewPublisherService("FEATURE_SUBMITTED", pubSub)
	ctx := context.Background()

	messages, err := pubSub.Subscribe(ctx, "FEATURE_SUBMITTED")
	require.NoError(t, err)

	sent := &dto.FeatureSubmittedMessage{
		Id:          7,
		Title:       "Offline Mode",
		Email:       "user@example.com",
		SubmittedAt: time.Now().UTC(),
	}
	require.NoError(t, svc.PublishFeatureSubmitted(ctx, sent))

	select {
	case msg := <-messages:
		var got dto.FeatureSubmittedMessage
		require.NoError(t, json.Unmarshal(msg.Payload, &got))
		msg.Ack()
		assert.Equal(t, sent.Id, got.Id)
		assert.Equal(t, sent.Title, got.Title)
		assert.Equal(t, sent.Email, got.Email)
	case <-time.After(2 * time.Second):
		t.Fatal("timed out waiting for submission alert message")
	}
}
