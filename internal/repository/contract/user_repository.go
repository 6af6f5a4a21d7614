package contract

import (
	"context"

	"se-trainer-be/internal/entity"
	"se-trainer-be/internal/repository/specification"

	"github.com/google/uuid"
)

type UserRepository interface {
	Create(ctx context.Context, user *entity.User) error
	Update(ctx context.Context, user *entity.User) error
	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.User, error)
	// FindOneForUpdate loads the user row under a row-level lock. Must be
	// called inside a transaction; the lock serializes concurrent quota
	// checks for one user.
	FindOneForUpdate(ctx context.Context, id uuid.UUID) (*entity.User, error)
	// IncrementTurnUsage adds n to monthly_turn_used.
	IncrementTurnUsage(ctx context.Context, id uuid.UUID, n int) error
	Count(ctx context.Context, specs ...specification.Specification) (int64, error)
}
