package mapper

import (
	"worksuite-be/internal/entity"
	"worksuite-be/internal/model"
)

type CouponMapper struct{}

func NewCouponMapper() *CouponMapper {
	return &CouponMapper{}
}

func (m *CouponMapper) ToEntity(c *model.Coupon) *entity.Coupon {
	if c == nil {
		return nil
	}
	return &entity.Coupon{
		Id:        c.Id,
		Name:      c.Name,
		Code:      c.Code,
		Type:      entity.CouponType(c.Type),
		Discount:  c.Discount,
		Limit:     c.Limit,
		UsedCount: c.UsedCount,
		IsActive:  c.IsActive,
		ExpiresAt: c.ExpiresAt,
		CreatedAt: c.CreatedAt,
		UpdatedAt: c.UpdatedAt,
	}
}

func (m *CouponMapper) ToModel(c *entity.Coupon) *model.Coupon {
	if c == nil {
		return nil
	}
	return &model.Coupon{
		Id:        c.Id,
		Name:      c.Name,
		Code:      c.Code,
		Type:      string(c.Type),
		Discount:  c.Discount,
		Limit:     c.Limit,
		UsedCount: c.UsedCount,
		IsActive:  c.IsActive,
		ExpiresAt: c.ExpiresAt,
		CreatedAt: c.CreatedAt,
		UpdatedAt: c.UpdatedAt,
	}
}

func (m *CouponMapper) UsageToEntity(u *model.CouponUsage) *entity.CouponUsage {
	if u == nil {
		return nil
	}
	return &entity.CouponUsage{
		Id:        u.Id,
		CouponId:  u.CouponId,
		CompanyId: u.CompanyId,
		OrderId:   u.OrderId,
		CreatedAt: u.CreatedAt,
	}
}

func (m *CouponMapper) UsageToModel(u *entity.CouponUsage) *model.CouponUsage {
	if u == nil {
		return nil
	}
	return &model.CouponUsage{
		Id:        u.Id,
		CouponId:  u.CouponId,
		CompanyId: u.CompanyId,
		OrderId:   u.OrderId,
		CreatedAt: u.CreatedAt,
	}
}
