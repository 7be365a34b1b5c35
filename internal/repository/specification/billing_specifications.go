package specification

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// CompanyOwnedBy scopes rows to one tenant
type CompanyOwnedBy struct {
	CompanyID uuid.UUID
}

func (s CompanyOwnedBy) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("company_id = ?", s.CompanyID)
}

// ByStatus filters by status column
type ByStatus struct {
	Status string
}

func (s ByStatus) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("status = ?", s.Status)
}

// ByCode filters coupons/currencies by their unique code
type ByCode struct {
	Code string
}

func (s ByCode) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("code = ?", s.Code)
}

// ByEmail filters users by email
type ByEmail struct {
	Email string
}

func (s ByEmail) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("email = ?", s.Email)
}

// DefaultOnly selects the row holding the is_default flag
type DefaultOnly struct{}

func (s DefaultOnly) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("is_default = ?", true)
}

// EnabledPlans selects plans visible on the pricing page
type EnabledPlans struct{}

func (s EnabledPlans) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("is_plan_enable = ?", true)
}

// ByGatewayRef resolves an order from the adapter-supplied reference
type ByGatewayRef struct {
	Ref string
}

func (s ByGatewayRef) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("gateway_ref = ?", s.Ref)
}

// ExpiresAfter selects subscriptions still valid at the given instant
type ExpiresAfter struct {
	At time.Time
}

func (s ExpiresAfter) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("expires_at > ?", s.At)
}
