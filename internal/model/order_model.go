package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

type PlanOrder struct {
	Id             uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	CompanyId      uuid.UUID `gorm:"type:uuid;not null;index"`
	PlanId         uuid.UUID `gorm:"type:uuid;not null;index"`
	BillingCycle   string    `gorm:"type:billing_cycle;not null"`
	OriginalPrice  float64   `gorm:"type:decimal(10,2);not null"`
	DiscountAmount float64   `gorm:"type:decimal(10,2);default:0"`
	FinalPrice     float64   `gorm:"type:decimal(10,2);not null"`
	CouponCode     *string   `gorm:"type:varchar(100)"`
	PaymentMethod  string    `gorm:"type:varchar(100);not null"`
	GatewayRef     *string   `gorm:"type:varchar(255);index"`
	// Raw callback payload kept for dispute handling
	GatewayResponse datatypes.JSON `gorm:"type:jsonb"`
	Status          string         `gorm:"type:order_status;not null;default:'pending'"`
	Notes           string         `gorm:"type:text"`
	CreatedAt       time.Time      `gorm:"autoCreateTime"`
	UpdatedAt       time.Time      `gorm:"autoUpdateTime"`
}

func (PlanOrder) TableName() string {
	return "plan_orders"
}

type PlanRequest struct {
	Id           uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	CompanyId    uuid.UUID `gorm:"type:uuid;not null;index"`
	PlanId       uuid.UUID `gorm:"type:uuid;not null;index"`
	BillingCycle string    `gorm:"type:billing_cycle;not null"`
	Status       string    `gorm:"type:order_status;not null;default:'pending'"`
	Notes        string    `gorm:"type:text"`
	CreatedAt    time.Time `gorm:"autoCreateTime"`
	UpdatedAt    time.Time `gorm:"autoUpdateTime"`
}

func (PlanRequest) TableName() string {
	return "plan_requests"
}
