package contract

import (
	"context"

	"github.com/google/uuid"

	"worksuite-be/internal/entity"
	"worksuite-be/internal/repository/specification"
)

type PlanRepository interface {
	Create(ctx context.Context, plan *entity.Plan) error
	Update(ctx context.Context, plan *entity.Plan) error
	Delete(ctx context.Context, id uuid.UUID) error
	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Plan, error)
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Plan, error)

	// ClearDefault drops the is_default flag from every plan except the given
	// one. Callers run it inside the same transaction that sets the new flag.
	ClearDefault(ctx context.Context, exceptId uuid.UUID) error
	CountSubscribers(ctx context.Context, planId uuid.UUID) (int64, error)
}
