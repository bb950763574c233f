// FILE: internal/entity/feature_entity.go
// Domain entity for public roadmap features
package entity

import "time"

// FeatureStatus is stored and served as the display string so existing
// roadmap data keeps working without a migration.
type FeatureStatus string

const (
	StatusUnderReview  FeatureStatus = "Under Review"
	StatusPrioritising FeatureStatus = "Prioritising"
	StatusPlanned      FeatureStatus = "Planned"
	StatusInProgress   FeatureStatus = "In Progress"
	StatusCompleted    FeatureStatus = "Completed"
	StatusExploring    FeatureStatus = "Exploring"
	StatusDeclined     FeatureStatus = "Declined"
)

// AllStatuses lists every status an admin may assign.
var AllStatuses = []FeatureStatus{
	StatusUnderReview,
	StatusPrioritising,
	StatusPlanned,
	StatusInProgress,
	StatusCompleted,
	StatusExploring,
	StatusDeclined,
}

func (s FeatureStatus) IsValid() bool {
	for _, v := range AllStatuses {
		if s == v {
			return true
		}
	}
	return false
}

// AnonymousEmail is the sentinel for submissions without a contact address.
const AnonymousEmail = "Anonymous"

// Feature represents a user-suggested feature request on the public roadmap.
// Ids are assigned at creation time and immutable; votes never go negative.
type Feature struct {
	Id             int
	Title          string
	Description    string
	Votes          int
	Status         FeatureStatus
	SubmittedAt    time.Time
	SubmitterEmail string
}
