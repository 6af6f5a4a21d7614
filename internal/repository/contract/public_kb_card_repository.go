package contract

import (
	"context"

	"se-trainer-be/internal/entity"
	"se-trainer-be/internal/repository/specification"

	"github.com/google/uuid"
)

type PublicKBCardRepository interface {
	Create(ctx context.Context, card *entity.PublicKBCard) error
	Update(ctx context.Context, card *entity.PublicKBCard) error
	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.PublicKBCard, error)
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.PublicKBCard, error)
	Count(ctx context.Context, specs ...specification.Specification) (int64, error)
	// Search returns active cards for scenario+level (optionally narrowed by
	// subskills), ranked by cosine distance when queryEmbedding is non-nil,
	// otherwise by recency (updated_at desc).
	Search(ctx context.Context, scenario, level string, subskills []string, queryEmbedding []float32, limit int) ([]*entity.PublicKBCard, error)
	UpdateEmbedding(ctx context.Context, id uuid.UUID, embedding []float32) error
}
