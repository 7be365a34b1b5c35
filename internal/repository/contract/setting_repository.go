package contract

import (
	"context"

	"worksuite-be/internal/entity"
)

type SettingRepository interface {
	// Upsert writes the value for (group, key), creating the row when absent.
	Upsert(ctx context.Context, setting *entity.Setting) error
	FindGroup(ctx context.Context, group string) ([]*entity.Setting, error)
	FindValue(ctx context.Context, group, key string) (string, error)
	Delete(ctx context.Context, group, key string) error
}
