// FILE: internal/dto/roadmap_dto.go
// DTOs for the public roadmap endpoints
package dto

import "time"

// SubmitFeatureRequest is the body of POST /features. Length and presence
// checks are ordered explicitly in the service, not via validator tags,
// because the user-facing messages depend on the order.
type SubmitFeatureRequest struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Email       string `json:"email"`
}

// FeatureResponse field names match the original public API contract.
type FeatureResponse struct {
	Id          int       `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Votes       int       `json:"votes"`
	Status      string    `json:"status"`
	Submitted   time.Time `json:"submitted"`
	Email       string    `json:"email"`
}

type VoteResponse struct {
	FeatureId int `json:"featureId"`
	NewVotes  int `json:"newVotes"`
}

type SubmitFeatureResponse struct {
	Id int `json:"id"`
}

// FeatureSubmittedMessage is the payload published on the internal
// submission-alert topic.
type FeatureSubmittedMessage struct {
	Id          int       `json:"id"`
	Title       string    `json:"title"`
	Email       string    `json:"email"`
	SubmittedAt time.Time `json:"submitted_at"`
}
