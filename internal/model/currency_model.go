package model

import (
	"time"

	"github.com/google/uuid"
)

type Currency struct {
	Id            uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Name          string    `gorm:"type:varchar(255);not null"`
	Code          string    `gorm:"type:varchar(10);uniqueIndex;not null"`
	Symbol        string    `gorm:"type:varchar(10);not null"`
	DecimalPlaces int       `gorm:"default:2"`
	Position      string    `gorm:"type:varchar(10);default:'before'"`
	ThousandsSep  string    `gorm:"type:varchar(5);default:','"`
	DecimalSep    string    `gorm:"type:varchar(5);default:'.'"`
	IsDefault     bool      `gorm:"default:false"`
	CreatedAt     time.Time `gorm:"autoCreateTime"`
	UpdatedAt     time.Time `gorm:"autoUpdateTime"`
}

func (Currency) TableName() string {
	return "currencies"
}
