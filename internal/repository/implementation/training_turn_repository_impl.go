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
	"gorm.io/gorm"
)

type TrainingTurnRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.TrainerMapper
}

func NewTrainingTurnRepository(db *gorm.DB) contract.TrainingTurnRepository {
	return &TrainingTurnRepositoryImpl{
		db:     db,
		mapper: mapper.NewTrainerMapper(),
	}
}

func (r *TrainingTurnRepositoryImpl) applySpecifications(db *gorm.DB, specs ...specification.Specification) *gorm.DB {
	for _, spec := range specs {
		db = spec.Apply(db)
	}
	return db
}

func (r *TrainingTurnRepositoryImpl) Create(ctx context.Context, turn *entity.TrainingTurn) error {
	m := r.mapper.TurnToModel(turn)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	*turn = *r.mapper.TurnToEntity(m)
	return nil
}

func (r *TrainingTurnRepositoryImpl) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.TrainingTurn, error) {
	var m model.TrainingTurn
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return r.mapper.TurnToEntity(&m), nil
}

func (r *TrainingTurnRepositoryImpl) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.TrainingTurn, error) {
	var models []*model.TrainingTurn
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.Find(&models).Error; err != nil {
		return nil, err
	}
	return r.mapper.TurnsToEntities(models), nil
}

func (r *TrainingTurnRepositoryImpl) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	var count int64
	query := r.applySpecifications(r.db.WithContext(ctx).Model(&model.TrainingTurn{}), specs...)
	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

func (r *TrainingTurnRepositoryImpl) CountBySession(ctx context.Context, sessionId uuid.UUID) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&model.TrainingTurn{}).
		Where("session_id = ?", sessionId).
		Count(&count).Error
	if err != nil {
		return 0, err
	}
	return count, nil
}
