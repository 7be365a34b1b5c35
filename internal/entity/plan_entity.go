package entity

import (
	"time"

	"github.com/google/uuid"
)

type BillingCycle string

const (
	BillingCycleMonthly BillingCycle = "monthly"
	BillingCycleYearly  BillingCycle = "yearly"
)

// yearlyDiscount is applied when a plan has no explicit yearly price.
const yearlyDiscount = 0.8

type Plan struct {
	Id          uuid.UUID
	Name        string
	Description string
	Price       float64
	YearlyPrice *float64 // nil means derived from Price
	// Tenant Limits
	MaxUsers     int   // -1 = unlimited
	MaxEmployees int   // -1 = unlimited
	StorageLimit int64 // MB
	// Feature Flags
	EnableChatGPT bool
	// Trial Settings
	IsTrial  bool
	TrialDay int
	// Display / Availability
	IsPlanEnable bool
	IsDefault    bool
	SortOrder    int

	CreatedAt time.Time
	UpdatedAt time.Time
}

// YearlyAmount returns the explicit yearly price when set, otherwise
// twelve months of the monthly price with the standard yearly discount.
func (p *Plan) YearlyAmount() float64 {
	if p.YearlyPrice != nil {
		return *p.YearlyPrice
	}
	return p.Price * 12 * yearlyDiscount
}

// PriceFor returns the charge amount for the given billing cycle.
func (p *Plan) PriceFor(cycle BillingCycle) float64 {
	if cycle == BillingCycleYearly {
		return p.YearlyAmount()
	}
	return p.Price
}

// OffersTrial reports whether the plan can be started as a trial at all.
func (p *Plan) OffersTrial() bool {
	return p.IsTrial && p.TrialDay > 0
}
