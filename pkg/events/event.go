package events

import (
	"time"

	"github.com/google/uuid"
)

// Event defines the contract for all system events.
type Event interface {
	// EventType returns the unique code for this event (e.g., "VOTE_CAST").
	EventType() string

	// Payload returns the data associated with the event.
	Payload() map[string]interface{}

	// Timestamp returns when the event occurred.
	Timestamp() time.Time
}

type BaseEvent struct {
	Type       string
	Data       map[string]interface{}
	OccurredAt time.Time
}

func (e BaseEvent) EventType() string {
	return e.Type
}

func (e BaseEvent) Payload() map[string]interface{} {
	return e.Data
}

func (e BaseEvent) Timestamp() time.Time {
	return e.OccurredAt
}

func newEvent(eventType string, data map[string]interface{}) Event {
	data["event_id"] = uuid.NewString()
	return BaseEvent{
		Type:       eventType,
		Data:       data,
		OccurredAt: time.Now(),
	}
}

func NewFeatureSubmitted(featureId int, title string) Event {
	return newEvent("FEATURE_SUBMITTED", map[string]interface{}{
		"feature_id": featureId,
		"title":      title,
	})
}

func NewVoteCast(featureId, newVotes int) Event {
	return newEvent("VOTE_CAST", map[string]interface{}{
		"feature_id": featureId,
		"new_votes":  newVotes,
	})
}

func NewVoteRetracted(featureId, newVotes int) Event {
	return newEvent("VOTE_RETRACTED", map[string]interface{}{
		"feature_id": featureId,
		"new_votes":  newVotes,
	})
}

func NewStatusChanged(featureId int, status string) Event {
	return newEvent("STATUS_CHANGED", map[string]interface{}{
		"feature_id": featureId,
		"status":     status,
	})
}
