package model

import (
	"time"

	"github.com/google/uuid"
)

type CompanySubscription struct {
	Id           uuid.UUID  `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	CompanyId    uuid.UUID  `gorm:"type:uuid;not null;index"`
	PlanId       uuid.UUID  `gorm:"type:uuid;not null;index"`
	BillingCycle string     `gorm:"type:billing_cycle;not null"`
	Status       string     `gorm:"type:subscription_status;not null"`
	StartsAt     time.Time  `gorm:"not null"`
	ExpiresAt    time.Time  `gorm:"not null;index"`
	PlanOrderId  *uuid.UUID `gorm:"type:uuid;index"`
	CreatedAt    time.Time  `gorm:"autoCreateTime"`
	UpdatedAt    time.Time  `gorm:"autoUpdateTime"`
}

func (CompanySubscription) TableName() string {
	return "company_subscriptions"
}
