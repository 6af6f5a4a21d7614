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

type UsageLedgerRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.UserMapper
}

func NewUsageLedgerRepository(db *gorm.DB) contract.UsageLedgerRepository {
	return &UsageLedgerRepositoryImpl{
		db:     db,
		mapper: mapper.NewUserMapper(),
	}
}

func (r *UsageLedgerRepositoryImpl) applySpecifications(db *gorm.DB, specs ...specification.Specification) *gorm.DB {
	for _, spec := range specs {
		db = spec.Apply(db)
	}
	return db
}

func (r *UsageLedgerRepositoryImpl) Create(ctx context.Context, entry *entity.UsageLedgerEntry) error {
	m := r.mapper.LedgerToModel(entry)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	*entry = *r.mapper.LedgerToEntity(m)
	return nil
}

func (r *UsageLedgerRepositoryImpl) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.UsageLedgerEntry, error) {
	var models []*model.UsageLedgerEntry
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.Find(&models).Error; err != nil {
		return nil, err
	}
	entities := make([]*entity.UsageLedgerEntry, len(models))
	for i, m := range models {
		entities[i] = r.mapper.LedgerToEntity(m)
	}
	return entities, nil
}

func (r *UsageLedgerRepositoryImpl) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	var count int64
	query := r.applySpecifications(r.db.WithContext(ctx).Model(&model.UsageLedgerEntry{}), specs...)
	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}
