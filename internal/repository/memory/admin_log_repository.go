// FILE: internal/repository/memory/admin_log_repository.go
package memory

import (
	"context"
	"sync"
	"time"

	"roadmap-voting-be/internal/entity"
	"roadmap-voting-be/internal/repository/contract"

	"github.com/google/uuid"
)

type AdminLogRepository struct {
	mu   sync.Mutex
	logs []*entity.AdminLog
}

func NewAdminLogRepository() contract.AdminLogRepository {
	return &AdminLogRepository{}
}

func (r *AdminLogRepository) Create(_ context.Context, log *entity.AdminLog) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if log.Id == uuid.Nil {
		log.Id = uuid.New()
	}
	if log.CreatedAt.IsZero() {
		log.CreatedAt = time.Now()
	}
	cp := *log
	r.logs = append(r.logs, &cp)
	return nil
}

func (r *AdminLogRepository) FindRecent(_ context.Context, limit int) ([]*entity.AdminLog, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]*entity.AdminLog, 0, limit)
	for i := len(r.logs) - 1; i >= 0 && len(out) < limit; i-- {
		cp := *r.logs[i]
		out = append(out, &cp)
	}
	return out, nil
}
