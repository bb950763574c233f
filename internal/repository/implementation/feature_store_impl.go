// FILE: internal/repository/implementation/feature_store_impl.go
// GORM implementation of FeatureStore
package implementation

import (
	"context"
	"errors"

	"roadmap-voting-be/internal/entity"
	"roadmap-voting-be/internal/mapper"
	"roadmap-voting-be/internal/model"
	"roadmap-voting-be/internal/repository/contract"

	"gorm.io/gorm"
)

type FeatureStoreImpl struct {
	db     *gorm.DB
	mapper *mapper.FeatureMapper
}

func NewFeatureStore(db *gorm.DB) contract.FeatureStore {
	return &FeatureStoreImpl{
		db:     db,
		mapper: mapper.NewFeatureMapper(),
	}
}

func (r *FeatureStoreImpl) FindAll(ctx context.Context) ([]*entity.Feature, error) {
	var models []*model.Feature
	if err := r.db.WithContext(ctx).Order("id ASC").Find(&models).Error; err != nil {
		return nil, err
	}
	return r.mapper.ToEntities(models), nil
}

func (r *FeatureStoreImpl) FindById(ctx context.Context, id int) (*entity.Feature, error) {
	var m model.Feature
	if err := r.db.WithContext(ctx).First(&m, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return r.mapper.ToEntity(&m), nil
}

func (r *FeatureStoreImpl) Append(ctx context.Context, feature *entity.Feature) error {
	m := r.mapper.ToModel(feature)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	*feature = *r.mapper.ToEntity(m)
	return nil
}

func (r *FeatureStoreImpl) Count(ctx context.Context) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&model.Feature{}).Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

// AddVote increments in a single statement so the database serializes
// concurrent voters on the same row; no increment is ever lost.
func (r *FeatureStoreImpl) AddVote(ctx context.Context, id int) (int, bool, error) {
	var votes int
	res := r.db.WithContext(ctx).
		Raw("UPDATE features SET votes = votes + 1 WHERE id = ? RETURNING votes", id).
		Scan(&votes)
	if res.Error != nil {
		return 0, false, res.Error
	}
	if res.RowsAffected == 0 {
		return 0, false, nil
	}
	return votes, true, nil
}

// RemoveVote decrements with a floor of zero; the votes column can never go
// negative even on an erroneous call.
func (r *FeatureStoreImpl) RemoveVote(ctx context.Context, id int) (int, bool, error) {
	var votes int
	res := r.db.WithContext(ctx).
		Raw("UPDATE features SET votes = GREATEST(votes - 1, 0) WHERE id = ? RETURNING votes", id).
		Scan(&votes)
	if res.Error != nil {
		return 0, false, res.Error
	}
	if res.RowsAffected == 0 {
		return 0, false, nil
	}
	return votes, true, nil
}

func (r *FeatureStoreImpl) UpdateStatus(ctx context.Context, id int, status entity.FeatureStatus) (bool, error) {
	res := r.db.WithContext(ctx).
		Model(&model.Feature{}).
		Where("id = ?", id).
		UpdateColumn("status", string(status))
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}
