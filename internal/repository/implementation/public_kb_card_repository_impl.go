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

type PublicKBCardRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.KBMapper
}

func NewPublicKBCardRepository(db *gorm.DB) contract.PublicKBCardRepository {
	return &PublicKBCardRepositoryImpl{
		db:     db,
		mapper: mapper.NewKBMapper(),
	}
}

func (r *PublicKBCardRepositoryImpl) applySpecifications(db *gorm.DB, specs ...specification.Specification) *gorm.DB {
	for _, spec := range specs {
		db = spec.Apply(db)
	}
	return db
}

func (r *PublicKBCardRepositoryImpl) Create(ctx context.Context, card *entity.PublicKBCard) error {
	m := r.mapper.PublicCardToModel(card)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	*card = *r.mapper.PublicCardToEntity(m)
	return nil
}

func (r *PublicKBCardRepositoryImpl) Update(ctx context.Context, card *entity.PublicKBCard) error {
	m := r.mapper.PublicCardToModel(card)
	if err := r.db.WithContext(ctx).Save(m).Error; err != nil {
		return err
	}
	*card = *r.mapper.PublicCardToEntity(m)
	return nil
}

func (r *PublicKBCardRepositoryImpl) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.PublicKBCard, error) {
	var m model.PublicKBCard
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return r.mapper.PublicCardToEntity(&m), nil
}

func (r *PublicKBCardRepositoryImpl) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.PublicKBCard, error) {
	var models []*model.PublicKBCard
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.Find(&models).Error; err != nil {
		return nil, err
	}
	entities := make([]*entity.PublicKBCard, len(models))
	for i, m := range models {
		entities[i] = r.mapper.PublicCardToEntity(m)
	}
	return entities, nil
}

func (r *PublicKBCardRepositoryImpl) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	var count int64
	query := r.applySpecifications(r.db.WithContext(ctx).Model(&model.PublicKBCard{}), specs...)
	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

func (r *PublicKBCardRepositoryImpl) Search(ctx context.Context, scenario, level string, subskills []string, queryEmbedding []float32, limit int) ([]*entity.PublicKBCard, error) {
	if limit <= 0 {
		limit = 5
	}

	query := r.db.WithContext(ctx).
		Where("scenario = ?", scenario).
		Where("level = ?", level).
		Where("is_active = ?", true)

	if len(subskills) > 0 {
		query = query.Where("subskill IN ?", subskills)
	}

	if queryEmbedding != nil {
		// Cosine distance ranking; cards without an embedding sort last.
		query = query.
			Where("embedding IS NOT NULL").
			Order(gorm.Expr("embedding <=> ?", pgvector.NewVector(queryEmbedding)))
	} else {
		query = query.Order("updated_at DESC")
	}

	var models []*model.PublicKBCard
	if err := query.Limit(limit).Find(&models).Error; err != nil {
		return nil, err
	}

	entities := make([]*entity.PublicKBCard, len(models))
	for i, m := range models {
		entities[i] = r.mapper.PublicCardToEntity(m)
	}
	return entities, nil
}

func (r *PublicKBCardRepositoryImpl) UpdateEmbedding(ctx context.Context, id uuid.UUID, embedding []float32) error {
	return r.db.WithContext(ctx).
		Model(&model.PublicKBCard{}).
		Where("id = ?", id).
		UpdateColumn("embedding", pgvector.NewVector(embedding)).Error
}
