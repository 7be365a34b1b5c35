package contract

import (
	"context"

	"worksuite-be/internal/entity"
	"worksuite-be/internal/repository/specification"
)

type OrderRepository interface {
	Create(ctx context.Context, order *entity.PlanOrder) error
	Update(ctx context.Context, order *entity.PlanOrder) error
	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.PlanOrder, error)
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.PlanOrder, error)

	// Dashboard / Admin Stats
	TotalRevenue(ctx context.Context) (float64, error)
	CountByStatus(ctx context.Context, status entity.OrderStatus) (int64, error)
}

type RequestRepository interface {
	Create(ctx context.Context, request *entity.PlanRequest) error
	Update(ctx context.Context, request *entity.PlanRequest) error
	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.PlanRequest, error)
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.PlanRequest, error)
	CountByStatus(ctx context.Context, status entity.OrderStatus) (int64, error)
}
