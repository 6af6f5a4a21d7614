package contract

import (
	"context"

	"se-trainer-be/internal/entity"
	"se-trainer-be/internal/repository/specification"
)

type UsageLedgerRepository interface {
	Create(ctx context.Context, entry *entity.UsageLedgerEntry) error
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.UsageLedgerEntry, error)
	Count(ctx context.Context, specs ...specification.Specification) (int64, error)
}
