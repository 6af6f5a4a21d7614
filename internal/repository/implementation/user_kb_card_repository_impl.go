package implementation

import (
	"context"
	"errors"

	"se-trainer-be/internal/entity"
	"se-trainer-be/internal/mapper"
	"se-trainer-be/internal/model"
	"se-trainer-be/internal/repository/contract"
	"se-trainer-be/internal/repository/specification"

	"github.com/google/uuid"
	"github.com/pgvector/pgvector-go"
	"gorm.io/gorm"
)

type UserKBCardRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.KBMapper
}

func NewUserKBCardRepository(db *gorm.DB) contract.UserKBCardRepository {
	return &UserKBCardRepositoryImpl{
		db:     db,
		mapper: mapper.NewKBMapper(),
	}
}

func (r *UserKBCardRepositoryImpl) applySpecifications(db *gorm.DB, specs ...specification.Specification) *gorm.DB {
	for _, spec := range specs {
		db = spec.Apply(db)
	}
	return db
}

func (r *UserKBCardRepositoryImpl) Create(ctx context.Context, card *entity.UserKBCard) error {
	m := r.mapper.UserCardToModel(card)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	*card = *r.mapper.UserCardToEntity(m)
	return nil
}

func (r *UserKBCardRepositoryImpl) Update(ctx context.Context, card *entity.UserKBCard) error {
	m := r.mapper.UserCardToModel(card)
	if err := r.db.WithContext(ctx).Save(m).Error; err != nil {
		return err
	}
	*card = *r.mapper.UserCardToEntity(m)
	return nil
}

func (r *UserKBCardRepositoryImpl) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&model.UserKBCard{}, id).Error
}

func (r *UserKBCardRepositoryImpl) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.UserKBCard, error) {
	var m model.UserKBCard
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return r.mapper.UserCardToEntity(&m), nil
}

func (r *UserKBCardRepositoryImpl) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.UserKBCard, error) {
	var models []*model.UserKBCard
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.Find(&models).Error; err != nil {
		return nil, err
	}
	entities := make([]*entity.UserKBCard, len(models))
	for i, m := range models {
		entities[i] = r.mapper.UserCardToEntity(m)
	}
	return entities, nil
}

func (r *UserKBCardRepositoryImpl) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	var count int64
	query := r.applySpecifications(r.db.WithContext(ctx).Model(&model.UserKBCard{}), specs...)
	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

func (r *UserKBCardRepositoryImpl) Search(ctx context.Context, userId uuid.UUID, scenario string, queryEmbedding []float32, limit int) ([]*entity.UserKBCard, error) {
	if limit <= 0 {
		limit = 3
	}

	query := r.db.WithContext(ctx).
		Where("user_id = ?", userId).
		Where("scenario = ?", scenario)

	if queryEmbedding != nil {
		query = query.
			Where("embedding IS NOT NULL").
			Order(gorm.Expr("embedding <=> ?", pgvector.NewVector(queryEmbedding)))
	} else {
		query = query.Order("created_at DESC")
	}

	var models []*model.UserKBCard
	if err := query.Limit(limit).Find(&models).Error; err != nil {
		return nil, err
	}

	entities := make([]*entity.UserKBCard, len(models))
	for i, m := range models {
		entities[i] = r.mapper.UserCardToEntity(m)
	}
	return entities, nil
}

func (r *UserKBCardRepositoryImpl) UpdateEmbedding(ctx context.Context, id uuid.UUID, embedding []float32) error {
	return r.db.WithContext(ctx).
		Model(&model.UserKBCard{}).
		Where("id = ?", id).
		UpdateColumn("embedding", pgvector.NewVector(embedding)).Error
}
