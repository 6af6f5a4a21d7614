package contract

import (
	"context"

	"se-trainer-be/internal/entity"
	"se-trainer-be/internal/repository/specification"

	"github.com/google/uuid"
)

type UserKBCardRepository interface {
	Create(ctx context.Context, card *entity.UserKBCard) error
	Update(ctx context.Context, card *entity.UserKBCard) error
	Delete(ctx context.Context, id uuid.UUID) error
	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.UserKBCard, error)
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.UserKBCard, error)
	Count(ctx context.Context, specs ...specification.Specification) (int64, error)
	// Search returns the user's cards for a scenario, ranked by cosine
	// distance when queryEmbedding is non-nil, otherwise by recency
	// (created_at desc).
	Search(ctx context.Context, userId uuid.UUID, scenario string, queryEmbedding []float32, limit int) ([]*entity.UserKBCard, error)
	UpdateEmbedding(ctx context.Context, id uuid.UUID, embedding []float32) error
}
