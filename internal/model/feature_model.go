// FILE: internal/model/feature_model.go
// GORM model for the features table
package model

import "time"

// Feature is one row of the roadmap table. Column order mirrors the
// original sheet layout [id, title, description, votes, status, submitted, email],
// which is the compatibility contract for migrated data.
type Feature struct {
	Id          int       `gorm:"primaryKey;autoIncrement:false"`
	Title       string    `gorm:"type:varchar(100);not null"`
	Description string    `gorm:"type:varchar(500);not null"`
	Votes       int       `gorm:"not null;default:0"`
	Status      string    `gorm:"type:varchar(20);not null;index"`
	SubmittedAt time.Time `gorm:"not null"`
	Email       string    `gorm:"type:varchar(255);not null;default:'Anonymous'"`
}

func (Feature) TableName() string {
	return "features"
}
