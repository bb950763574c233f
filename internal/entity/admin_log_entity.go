// FILE: internal/entity/admin_log_entity.go
package entity

import (
	"time"

	"github.com/google/uuid"
)

// AdminLog records an administrative action (status changes, cleanups).
type AdminLog struct {
	Id        uuid.UUID
	Action    string
	FeatureId *int
	Details   map[string]interface{}
	CreatedAt time.Time
}
