package model

import (
	"time"

	"github.com/google/uuid"
)

type Coupon struct {
	Id        uuid.UUID  `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Name      string     `gorm:"type:varchar(255);not null"`
	Code      string     `gorm:"type:varchar(100);uniqueIndex;not null"`
	Type      string     `gorm:"type:coupon_type;not null;default:'fixed'"`
	Discount  float64    `gorm:"type:decimal(10,2);not null"`
	Limit     int        `gorm:"column:usage_limit;default:-1"` // "limit" is a reserved word
	UsedCount int        `gorm:"default:0"`
	IsActive  bool       `gorm:"default:true"`
	ExpiresAt *time.Time `gorm:"index"`
	CreatedAt time.Time  `gorm:"autoCreateTime"`
	UpdatedAt time.Time  `gorm:"autoUpdateTime"`
}

func (Coupon) TableName() string {
	return "coupons"
}

type CouponUsage struct {
	Id        uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	CouponId  uuid.UUID `gorm:"type:uuid;not null;index"`
	CompanyId uuid.UUID `gorm:"type:uuid;not null;index"`
	OrderId   uuid.UUID `gorm:"type:uuid;not null;index"`
	CreatedAt time.Time `gorm:"autoCreateTime"`
}

func (CouponUsage) TableName() string {
	return "coupon_usages"
}
