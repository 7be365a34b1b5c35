package contract

import (
	"context"

	"worksuite-be/internal/entity"
	"worksuite-be/internal/repository/specification"
)

type CompanyRepository interface {
	Create(ctx context.Context, company *entity.Company) error
	Update(ctx context.Context, company *entity.Company) error
	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Company, error)
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Company, error)
	Count(ctx context.Context) (int64, error)
}

type SubscriptionRepository interface {
	Create(ctx context.Context, sub *entity.CompanySubscription) error
	Update(ctx context.Context, sub *entity.CompanySubscription) error
	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.CompanySubscription, error)
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.CompanySubscription, error)
	CountActive(ctx context.Context) (int64, error)
}
