// FILE: internal/repository/implementation/admin_log_repository_impl.go
package implementation

import (
	"context"
	"encoding/json"

	"roadmap-voting-be/internal/entity"
	"roadmap-voting-be/internal/model"
	"roadmap-voting-be/internal/repository/contract"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type AdminLogRepositoryImpl struct {
	db *gorm.DB
}

func NewAdminLogRepository(db *gorm.DB) contract.AdminLogRepository {
	return &AdminLogRepositoryImpl{db: db}
}

func (r *AdminLogRepositoryImpl) Create(ctx context.Context, log *entity.AdminLog) error {
	var details datatypes.JSON
	if log.Details != nil {
		raw, err := json.Marshal(log.Details)
		if err != nil {
			return err
		}
		details = datatypes.JSON(raw)
	}

	m := &model.AdminLog{
		Id:        log.Id,
		Action:    log.Action,
		FeatureId: log.FeatureId,
		Details:   details,
		CreatedAt: log.CreatedAt,
	}
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	log.Id = m.Id
	log.CreatedAt = m.CreatedAt
	return nil
}

func (r *AdminLogRepositoryImpl) FindRecent(ctx context.Context, limit int) ([]*entity.AdminLog, error) {
	var models []*model.AdminLog
	if err := r.db.WithContext(ctx).Order("created_at DESC").Limit(limit).Find(&models).Error; err != nil {
		return nil, err
	}

	logs := make([]*entity.AdminLog, 0, len(models))
	for _, m := range models {
		var details map[string]interface{}
		if len(m.Details) > 0 {
			_ = json.Unmarshal(m.Details, &details)
		}
		logs = append(logs, &entity.AdminLog{
			Id:        m.Id,
			Action:    m.Action,
			FeatureId: m.FeatureId,
			Details:   details,
			CreatedAt: m.CreatedAt,
		})
	}
	return logs, nil
}
