package contract

import (
	"context"

	"se-trainer-be/internal/entity"
	"se-trainer-be/internal/repository/specification"
)

type ErrorEventRepository interface {
	Create(ctx context.Context, event *entity.ErrorEvent) error
	CreateBulk(ctx context.Context, events []*entity.ErrorEvent) error
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.ErrorEvent, error)
	Count(ctx context.Context, specs ...specification.Specification) (int64, error)
}
