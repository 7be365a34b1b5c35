package entity

import (
	"time"

	"github.com/google/uuid"
)

type CouponType string

const (
	CouponTypeFixed      CouponType = "fixed"
	CouponTypePercentage CouponType = "percentage"
)

type Coupon struct {
	Id        uuid.UUID
	Name      string
	Code      string
	Type      CouponType
	Discount  float64 // amount for fixed, percent (0-100) for percentage
	Limit     int     // max redemptions across the platform, -1 = unlimited
	UsedCount int
	IsActive  bool
	ExpiresAt *time.Time
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Usable reports whether the coupon can still be redeemed at the given time.
func (c *Coupon) Usable(now time.Time) bool {
	if !c.IsActive {
		return false
	}
	if c.ExpiresAt != nil && now.After(*c.ExpiresAt) {
		return false
	}
	if c.Limit >= 0 && c.UsedCount >= c.Limit {
		return false
	}
	return true
}

// DiscountOn computes the discount for the given price, clamped so the
// payable amount never goes below zero.
func (c *Coupon) DiscountOn(price float64) float64 {
	var discount float64
	switch c.Type {
	case CouponTypePercentage:
		discount = price * c.Discount / 100
	default:
		discount = c.Discount
	}
	if discount > price {
		discount = price
	}
	if discount < 0 {
		discount = 0
	}
	return discount
}

// CouponUsage records one successful redemption.
type CouponUsage struct {
	Id        uuid.UUID
	CouponId  uuid.UUID
	CompanyId uuid.UUID
	OrderId   uuid.UUID
	CreatedAt time.Time
}
