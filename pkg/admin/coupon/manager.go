package coupon

import (
	"context"
	"fmt"
	"strings"

	"worksuite-be/internal/dto"
	"worksuite-be/internal/entity"
	"worksuite-be/internal/repository/specification"
	"worksuite-be/internal/repository/unitofwork"

	"github.com/google/uuid"
)

// Manager handles coupon admin operations
type Manager struct{}

// NewManager creates a new coupon manager
func NewManager() *Manager {
	return &Manager{}
}

// Create creates a coupon. Codes are stored uppercase and must be unique.
func (m *Manager) Create(ctx context.Context, uow unitofwork.UnitOfWork, req dto.CreateCouponRequest) (*entity.Coupon, error) {
	code := strings.ToUpper(strings.TrimSpace(req.Code))

	existing, err := uow.CouponRepository().FindOne(ctx, specification.ByCode{Code: code})
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, fmt.Errorf("coupon code %s already exists", code)
	}

	coupon := &entity.Coupon{
		Id:        uuid.New(),
		Name:      req.Name,
		Code:      code,
		Type:      entity.CouponType(req.Type),
		Discount:  req.Discount,
		Limit:     req.Limit,
		IsActive:  req.IsActive,
		ExpiresAt: req.ExpiresAt,
	}
	if coupon.Type == entity.CouponTypePercentage && coupon.Discount > 100 {
		return nil, fmt.Errorf("percentage discount cannot exceed 100")
	}

	if err := uow.CouponRepository().Create(ctx, coupon); err != nil {
		return nil, err
	}
	return coupon, nil
}

// Update applies a partial update. The code itself is immutable once issued.
func (m *Manager) Update(ctx context.Context, uow unitofwork.UnitOfWork, id uuid.UUID, req dto.UpdateCouponRequest) (*entity.Coupon, error) {
	coupon, err := uow.CouponRepository().FindOne(ctx, specification.ByID{ID: id})
	if err != nil {
		return nil, err
	}
	if coupon == nil {
		return nil, fmt.Errorf("coupon not found")
	}

	if req.Name != nil {
		coupon.Name = *req.Name
	}
	if req.Type != nil {
		coupon.Type = entity.CouponType(*req.Type)
	}
	if req.Discount != nil {
		coupon.Discount = *req.Discount
	}
	if req.Limit != nil {
		coupon.Limit = *req.Limit
	}
	if req.IsActive != nil {
		coupon.IsActive = *req.IsActive
	}
	if req.ExpiresAt != nil {
		coupon.ExpiresAt = req.ExpiresAt
	}
	if coupon.Type == entity.CouponTypePercentage && coupon.Discount > 100 {
		return nil, fmt.Errorf("percentage discount cannot exceed 100")
	}

	if err := uow.CouponRepository().Update(ctx, coupon); err != nil {
		return nil, err
	}
	return coupon, nil
}

// Delete removes a coupon that was never redeemed; redeemed coupons are
// deactivated instead so the usage ledger keeps its referent.
func (m *Manager) Delete(ctx context.Context, uow unitofwork.UnitOfWork, id uuid.UUID) error {
	coupon, err := uow.CouponRepository().FindOne(ctx, specification.ByID{ID: id})
	if err != nil {
		return err
	}
	if coupon == nil {
		return fmt.Errorf("coupon not found")
	}

	if coupon.UsedCount > 0 {
		coupon.IsActive = false
		return uow.CouponRepository().Update(ctx, coupon)
	}
	return uow.CouponRepository().Delete(ctx, id)
}

// List returns all coupons, newest first.
func (m *Manager) List(ctx context.Context, uow unitofwork.UnitOfWork) ([]*entity.Coupon, error) {
	return uow.CouponRepository().FindAll(ctx, specification.OrderBy{Field: "created_at", Desc: true})
}

// Usages returns the redemption ledger for one coupon.
func (m *Manager) Usages(ctx context.Context, uow unitofwork.UnitOfWork, couponId uuid.UUID) ([]*entity.CouponUsage, error) {
	return uow.CouponRepository().FindUsages(ctx,
		specification.Filter("coupon_id", couponId),
		specification.OrderBy{Field: "created_at", Desc: true},
	)
}
