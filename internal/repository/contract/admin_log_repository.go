// FILE: internal/repository/contract/admin_log_repository.go
package contract

import (
	"context"

	"roadmap-voting-be/internal/entity"
)

type AdminLogRepository interface {
	Create(ctx context.Context, log *entity.AdminLog) error
	FindRecent(ctx context.Context, limit int) ([]*entity.AdminLog, error)
}
