package implementation

import (
	"context"
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"worksuite-be/internal/entity"
	"worksuite-be/internal/mapper"
	"worksuite-be/internal/model"
	"worksuite-be/internal/repository/contract"
)

type SettingRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.SettingMapper
}

func NewSettingRepository(db *gorm.DB) contract.SettingRepository {
	return &SettingRepositoryImpl{
		db:     db,
		mapper: mapper.NewSettingMapper(),
	}
}

func (r *SettingRepositoryImpl) Upsert(ctx context.Context, setting *entity.Setting) error {
	m := r.mapper.ToModel(setting)
	err := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "setting_group"}, {Name: "setting_key"}},
			DoUpdates: clause.AssignmentColumns([]string{"value", "updated_at"}),
		}).
		Create(m).Error
	if err != nil {
		return err
	}
	*setting = *r.mapper.ToEntity(m)
	return nil
}

func (r *SettingRepositoryImpl) FindGroup(ctx context.Context, group string) ([]*entity.Setting, error) {
	var models []*model.Setting
	err := r.db.WithContext(ctx).
		Where("setting_group = ?", group).
		Find(&models).Error
	if err != nil {
		return nil, err
	}
	entities := make([]*entity.Setting, len(models))
	for i, m := range models {
		entities[i] = r.mapper.ToEntity(m)
	}
	return entities, nil
}

func (r *SettingRepositoryImpl) FindValue(ctx context.Context, group, key string) (string, error) {
	var m model.Setting
	err := r.db.WithContext(ctx).
		Where("setting_group = ? AND setting_key = ?", group, key).
		First(&m).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", nil
		}
		return "", err
	}
	return m.Value, nil
}

func (r *SettingRepositoryImpl) Delete(ctx context.Context, group, key string) error {
	return r.db.WithContext(ctx).
		Where("setting_group = ? AND setting_key = ?", group, key).
		Delete(&model.Setting{}).Error
}
