package implementation

import (
	"context"

	"se-trainer-be/internal/entity"
	"se-trainer-be/internal/mapper"
	"se-trainer-be/internal/model"
	"se-trainer-be/internal/repository/contract"
	"se-trainer-be/internal/repository/specification"

	"gorm.io/gorm"
)

type ErrorEventRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.TrainerMapper
}

func NewErrorEventRepository(db *gorm.DB) contract.ErrorEventRepository {
	return &ErrorEventRepositoryImpl{
		db:     db,
		mapper: mapper.NewTrainerMapper(),
	}
}

func (r *ErrorEventRepositoryImpl) applySpecifications(db *gorm.DB, specs ...specification.Specification) *gorm.DB {
	for _, spec := range specs {
		db = spec.Apply(db)
	}
	return db
}

func (r *ErrorEventRepositoryImpl) Create(ctx context.Context, event *entity.ErrorEvent) error {
	m := r.mapper.ErrorEventToModel(event)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	*event = *r.mapper.ErrorEventToEntity(m)
	return nil
}

func (r *ErrorEventRepositoryImpl) CreateBulk(ctx context.Context, events []*entity.ErrorEvent) error {
	if len(events) == 0 {
		return nil
	}
	models := make([]*model.ErrorEvent, len(events))
	for i, e := range events {
		models[i] = r.mapper.ErrorEventToModel(e)
	}
	if err := r.db.WithContext(ctx).Create(&models).Error; err != nil {
		return err
	}
	for i, m := range models {
		*events[i] = *r.mapper.ErrorEventToEntity(m)
	}
	return nil
}

func (r *ErrorEventRepositoryImpl) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.ErrorEvent, error) {
	var models []*model.ErrorEvent
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.Find(&models).Error; err != nil {
		return nil, err
	}
	entities := make([]*entity.ErrorEvent, len(models))
	for i, m := range models {
		entities[i] = r.mapper.ErrorEventToEntity(m)
	}
	return entities, nil
}

func (r *ErrorEventRepositoryImpl) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	var count int64
	query := r.applySpecifications(r.db.WithContext(ctx).Model(&model.ErrorEvent{}), specs...)
	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}
