package model

import (
	"time"

	"github.com/google/uuid"
)

type Company struct {
	Id          uuid.UUID  `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Name        string     `gorm:"type:varchar(255);not null"`
	OwnerUserId uuid.UUID  `gorm:"type:uuid;not null;index"`
	PlanId      *uuid.UUID `gorm:"type:uuid;index"`
	TrialUsed   bool       `gorm:"default:false"`
	Status      string     `gorm:"type:varchar(50);not null;default:'active'"`
	CreatedAt   time.Time  `gorm:"autoCreateTime"`
	UpdatedAt   time.Time  `gorm:"autoUpdateTime"`
}

func (Company) TableName() string {
	return "companies"
}
