package contract

import (
	"context"

	"se-trainer-be/internal/entity"
	"se-trainer-be/internal/repository/specification"

	"github.com/google/uuid"
)

type TrainingTurnRepository interface {
	Create(ctx context.Context, turn *entity.TrainingTurn) error
	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.TrainingTurn, error)
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.TrainingTurn, error)
	Count(ctx context.Context, specs ...specification.Specification) (int64, error)
	// CountBySession returns the number of turns already committed for a
	// session. Inside a transaction that holds the session lock this read
	// is race-free with the subsequent insert.
	CountBySession(ctx context.Context, sessionId uuid.UUID) (int64, error)
}
