package dto

import (
	"time"

	"github.com/google/uuid"
)

type ApplyCouponRequest struct {
	Code         string    `json:"code" validate:"required"`
	PlanId       uuid.UUID `json:"plan_id" validate:"required"`
	BillingCycle string    `json:"billing_cycle" validate:"required,oneof=monthly yearly"`
}

// CouponPreviewResponse shows the price breakdown before checkout.
type CouponPreviewResponse struct {
	Code           string  `json:"code"`
	OriginalPrice  float64 `json:"original_price"`
	DiscountAmount float64 `json:"discount_amount"`
	FinalPrice     float64 `json:"final_price"`
}

type CreateCouponRequest struct {
	Name      string     `json:"name" validate:"required"`
	Code      string     `json:"code" validate:"required,min=3"`
	Type      string     `json:"type" validate:"required,oneof=fixed percentage"`
	Discount  float64    `json:"discount" validate:"required,gt=0"`
	Limit     int        `json:"limit" validate:"min=-1"`
	IsActive  bool       `json:"is_active"`
	ExpiresAt *time.Time `json:"expires_at"`
}

type UpdateCouponRequest struct {
	Name      *string    `json:"name"`
	Type      *string    `json:"type" validate:"omitempty,oneof=fixed percentage"`
	Discount  *float64   `json:"discount" validate:"omitempty,gt=0"`
	Limit     *int       `json:"limit" validate:"omitempty,min=-1"`
	IsActive  *bool      `json:"is_active"`
	ExpiresAt *time.Time `json:"expires_at"`
}

type CouponResponse struct {
	Id        uuid.UUID  `json:"id"`
	Name      string     `json:"name"`
	Code      string     `json:"code"`
	Type      string     `json:"type"`
	Discount  float64    `json:"discount"`
	Limit     int        `json:"limit"`
	UsedCount int        `json:"used_count"`
	IsActive  bool       `json:"is_active"`
	ExpiresAt *time.Time `json:"expires_at,omitempty"`
	CreatedAt time.Time  `json:"created_at"`
}

type CouponUsageResponse struct {
	Id          uuid.UUID `json:"id"`
	CompanyId   uuid.UUID `json:"company_id"`
	CompanyName string    `json:"company_name,omitempty"`
	OrderId     uuid.UUID `json:"order_id"`
	CreatedAt   time.Time `json:"created_at"`
}
