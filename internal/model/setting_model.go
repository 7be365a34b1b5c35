package model

import (
	"time"

	"github.com/google/uuid"
)

type Setting struct {
	Id        uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Group     string    `gorm:"column:setting_group;type:varchar(100);not null;uniqueIndex:idx_settings_group_key"`
	Key       string    `gorm:"column:setting_key;type:varchar(100);not null;uniqueIndex:idx_settings_group_key"`
	Value     string    `gorm:"type:text"`
	CreatedAt time.Time `gorm:"autoCreateTime"`
	UpdatedAt time.Time `gorm:"autoUpdateTime"`
}

func (Setting) TableName() string {
	return "settings"
}
