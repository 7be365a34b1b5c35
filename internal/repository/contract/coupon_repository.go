package contract

import (
	"context"

	"github.com/google/uuid"

	"worksuite-be/internal/entity"
	"worksuite-be/internal/repository/specification"
)

type CouponRepository interface {
	Create(ctx context.Context, coupon *entity.Coupon) error
	Update(ctx context.Context, coupon *entity.Coupon) error
	Delete(ctx context.Context, id uuid.UUID) error
	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Coupon, error)
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Coupon, error)

	// IncrementUsage bumps used_count atomically; the usage row is the audit trail.
	IncrementUsage(ctx context.Context, couponId uuid.UUID) error
	RecordUsage(ctx context.Context, usage *entity.CouponUsage) error
	FindUsages(ctx context.Context, specs ...specification.Specification) ([]*entity.CouponUsage, error)
}
