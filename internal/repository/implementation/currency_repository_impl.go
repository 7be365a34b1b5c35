package implementation

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"worksuite-be/internal/entity"
	"worksuite-be/internal/mapper"
	"worksuite-be/internal/model"
	"worksuite-be/internal/repository/contract"
	"worksuite-be/internal/repository/specification"
)

type CurrencyRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.CurrencyMapper
}

func NewCurrencyRepository(db *gorm.DB) contract.CurrencyRepository {
	return &CurrencyRepositoryImpl{
		db:     db,
		mapper: mapper.NewCurrencyMapper(),
	}
}

func (r *CurrencyRepositoryImpl) applySpecifications(db *gorm.DB, specs ...specification.Specification) *gorm.DB {
	for _, spec := range specs {
		db = spec.Apply(db)
	}
	return db
}

func (r *CurrencyRepositoryImpl) Create(ctx context.Context, currency *entity.Currency) error {
	m := r.mapper.ToModel(currency)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	*currency = *r.mapper.ToEntity(m)
	return nil
}

func (r *CurrencyRepositoryImpl) Update(ctx context.Context, currency *entity.Currency) error {
	m := r.mapper.ToModel(currency)
	if err := r.db.WithContext(ctx).Save(m).Error; err != nil {
		return err
	}
	*currency = *r.mapper.ToEntity(m)
	return nil
}

func (r *CurrencyRepositoryImpl) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&model.Currency{}, id).Error
}

func (r *CurrencyRepositoryImpl) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Currency, error) {
	var m model.Currency
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return r.mapper.ToEntity(&m), nil
}

func (r *CurrencyRepositoryImpl) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Currency, error) {
	var models []*model.Currency
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.Find(&models).Error; err != nil {
		return nil, err
	}
	entities := make([]*entity.Currency, len(models))
	for i, m := range models {
		entities[i] = r.mapper.ToEntity(m)
	}
	return entities, nil
}

func (r *CurrencyRepositoryImpl) ClearDefault(ctx context.Context, exceptId uuid.UUID) error {
	return r.db.WithContext(ctx).
		Model(&model.Currency{}).
		Where("id <> ? AND is_default = ?", exceptId, true).
		Update("is_default", false).Error
}
