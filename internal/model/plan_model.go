package model

import (
	"time"

	"github.com/google/uuid"
)

type Plan struct {
	Id          uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Name        string    `gorm:"type:varchar(255);uniqueIndex;not null"`
	Description string    `gorm:"type:text"`
	Price       float64   `gorm:"type:decimal(10,2);not null"`
	YearlyPrice *float64  `gorm:"type:decimal(10,2)"`
	// Tenant Limits
	MaxUsers     int   `gorm:"default:-1"` // -1 = unlimited
	MaxEmployees int   `gorm:"default:-1"`
	StorageLimit int64 `gorm:"default:1024"` // MB
	// Feature Flags
	EnableChatGPT bool `gorm:"default:false"`
	// Trial Settings
	IsTrial  bool `gorm:"default:false"`
	TrialDay int  `gorm:"default:0"`
	// Display / Availability
	IsPlanEnable bool `gorm:"default:true"`
	IsDefault    bool `gorm:"default:false"`
	SortOrder    int  `gorm:"default:0"`

	CreatedAt time.Time `gorm:"autoCreateTime"`
	UpdatedAt time.Time `gorm:"autoUpdateTime"`
}

func (Plan) TableName() string {
	return "plans"
}
