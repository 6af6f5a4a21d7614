package contract

import (
	"context"
	"time"

	"se-trainer-be/internal/entity"
	"se-trainer-be/internal/repository/specification"

	"github.com/google/uuid"
)

type TrainingSessionRepository interface {
	Create(ctx context.Context, session *entity.TrainingSession) error
	Update(ctx context.Context, session *entity.TrainingSession) error
	Delete(ctx context.Context, id uuid.UUID) error
	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.TrainingSession, error)
	// FindOneForUpdate loads the session row under a row-level lock. Must be
	// called inside a transaction; the lock serializes turn-index assignment
	// for concurrent submissions to the same session.
	FindOneForUpdate(ctx context.Context, id uuid.UUID) (*entity.TrainingSession, error)
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.TrainingSession, error)
	Count(ctx context.Context, specs ...specification.Specification) (int64, error)
	// Touch bumps updated_at without changing anything else.
	Touch(ctx context.Context, id uuid.UUID, at time.Time) error
}
