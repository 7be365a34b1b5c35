package contract

import (
	"context"

	"github.com/google/uuid"

	"worksuite-be/internal/entity"
	"worksuite-be/internal/repository/specification"
)

type CurrencyRepository interface {
	Create(ctx context.Context, currency *entity.Currency) error
	Update(ctx context.Context, currency *entity.Currency) error
	Delete(ctx context.Context, id uuid.UUID) error
	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Currency, error)
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Currency, error)
	ClearDefault(ctx context.Context, exceptId uuid.UUID) error
}
