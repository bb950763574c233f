// FILE: internal/mapper/feature_mapper.go
// Mapper for Feature entity <-> model conversion
package mapper

import (
	"roadmap-voting-be/internal/entity"
	"roadmap-voting-be/internal/model"
)

type FeatureMapper struct{}

func NewFeatureMapper() *FeatureMapper {
	return &FeatureMapper{}
}

func (m *FeatureMapper) ToEntity(model *model.Feature) *entity.Feature {
	if model == nil {
		return nil
	}
	return &entity.Feature{
		Id:             model.Id,
		Title:          model.Title,
		Description:    model.Description,
		Votes:          model.Votes,
		Status:         entity.FeatureStatus(model.Status),
		SubmittedAt:    model.SubmittedAt,
		SubmitterEmail: model.Email,
	}
}

func (m *FeatureMapper) ToModel(entity *entity.Feature) *model.Feature {
	if entity == nil {
		return nil
	}
	return &model.Feature{
		Id:          entity.Id,
		Title:       entity.Title,
		Description: entity.Description,
		Votes:       entity.Votes,
		Status:      string(entity.Status),
		SubmittedAt: entity.SubmittedAt,
		Email:       entity.SubmitterEmail,
	}
}

func (m *FeatureMapper) ToEntities(models []*model.Feature) []*entity.Feature {
	entities := make([]*entity.Feature, 0, len(models))
	for _, mdl := range models {
		entities = append(entities, m.ToEntity(mdl))
	}
	return entities
}
