package dto

import (
	"time"

	"github.com/google/uuid"
)

// --- Trial ---

type TrialEligibilityResponse struct {
	Eligible bool   `json:"eligible"`
	Reason   string `json:"reason,omitempty"`
}

type StartTrialRequest struct {
	PlanId uuid.UUID `json:"plan_id" validate:"required"`
}

// --- Checkout ---

type CheckoutRequest struct {
	PlanId        uuid.UUID `json:"plan_id" validate:"required"`
	BillingCycle  string    `json:"billing_cycle" validate:"required,oneof=monthly yearly"`
	PaymentMethod string    `json:"payment_method" validate:"required"`
	CouponCode    string    `json:"coupon_code"`
}

type CheckoutResponse struct {
	OrderId      uuid.UUID `json:"order_id"`
	Status       string    `json:"status"`
	FinalPrice   float64   `json:"final_price"`
	RedirectURL  string    `json:"redirect_url,omitempty"`
	ClientToken  string    `json:"client_token,omitempty"`
	Instructions string    `json:"instructions,omitempty"`
}

// --- Plan change request (no payment) ---

type PlanChangeRequest struct {
	PlanId       uuid.UUID `json:"plan_id" validate:"required"`
	BillingCycle string    `json:"billing_cycle" validate:"required,oneof=monthly yearly"`
}

// --- Orders / Requests ---

type OrderListRequest struct {
	Page   int    `query:"page"`
	Limit  int    `query:"limit"`
	Status string `query:"status"`
}

type OrderResponse struct {
	Id             uuid.UUID `json:"id"`
	CompanyId      uuid.UUID `json:"company_id"`
	CompanyName    string    `json:"company_name,omitempty"`
	PlanId         uuid.UUID `json:"plan_id"`
	PlanName       string    `json:"plan_name,omitempty"`
	BillingCycle   string    `json:"billing_cycle"`
	OriginalPrice  float64   `json:"original_price"`
	DiscountAmount float64   `json:"discount_amount"`
	FinalPrice     float64   `json:"final_price"`
	CouponCode     *string   `json:"coupon_code,omitempty"`
	PaymentMethod  string    `json:"payment_method"`
	GatewayRef     *string   `json:"gateway_ref,omitempty"`
	Status         string    `json:"status"`
	Notes          string    `json:"notes,omitempty"`
	CreatedAt      time.Time `json:"created_at"`
}

type RequestResponse struct {
	Id           uuid.UUID `json:"id"`
	CompanyId    uuid.UUID `json:"company_id"`
	CompanyName  string    `json:"company_name,omitempty"`
	PlanId       uuid.UUID `json:"plan_id"`
	PlanName     string    `json:"plan_name,omitempty"`
	BillingCycle string    `json:"billing_cycle"`
	Status       string    `json:"status"`
	Notes        string    `json:"notes,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
}

type DecisionRequest struct {
	Notes string `json:"notes"`
}

// --- Subscription ---

type SubscriptionResponse struct {
	Id           uuid.UUID `json:"id"`
	PlanId       uuid.UUID `json:"plan_id"`
	PlanName     string    `json:"plan_name,omitempty"`
	BillingCycle string    `json:"billing_cycle"`
	Status       string    `json:"status"`
	StartsAt     time.Time `json:"starts_at"`
	ExpiresAt    time.Time `json:"expires_at"`
}
