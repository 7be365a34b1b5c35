package implementation

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"worksuite-be/internal/entity"
	"worksuite-be/internal/mapper"
	"worksuite-be/internal/model"
	"worksuite-be/internal/repository/contract"
	"worksuite-be/internal/repository/specification"
)

type OrderRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.OrderMapper
}

func NewOrderRepository(db *gorm.DB) contract.OrderRepository {
	return &OrderRepositoryImpl{
		db:     db,
		mapper: mapper.NewOrderMapper(),
	}
}

func (r *OrderRepositoryImpl) applySpecifications(db *gorm.DB, specs ...specification.Specification) *gorm.DB {
	for _, spec := range specs {
		db = spec.Apply(db)
	}
	return db
}

func (r *OrderRepositoryImpl) Create(ctx context.Context, order *entity.PlanOrder) error {
	m := r.mapper.ToModel(order)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	*order = *r.mapper.ToEntity(m)
	return nil
}

func (r *OrderRepositoryImpl) Update(ctx context.Context, order *entity.PlanOrder) error {
	m := r.mapper.ToModel(order)
	if err := r.db.WithContext(ctx).Save(m).Error; err != nil {
		return err
	}
	*order = *r.mapper.ToEntity(m)
	return nil
}

func (r *OrderRepositoryImpl) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.PlanOrder, error) {
	var m model.PlanOrder
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return r.mapper.ToEntity(&m), nil
}

func (r *OrderRepositoryImpl) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.PlanOrder, error) {
	var models []*model.PlanOrder
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.Find(&models).Error; err != nil {
		return nil, err
	}
	entities := make([]*entity.PlanOrder, len(models))
	for i, m := range models {
		entities[i] = r.mapper.ToEntity(m)
	}
	return entities, nil
}

func (r *OrderRepositoryImpl) TotalRevenue(ctx context.Context) (float64, error) {
	var total float64
	err := r.db.WithContext(ctx).
		Model(&model.PlanOrder{}).
		Where("status IN ?", []string{
			string(entity.OrderStatusCompleted),
			string(entity.OrderStatusApproved),
		}).
		Select("COALESCE(SUM(final_price), 0)").
		Scan(&total).Error
	return total, err
}

func (r *OrderRepositoryImpl) CountByStatus(ctx context.Context, status entity.OrderStatus) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&model.PlanOrder{}).
		Where("status = ?", string(status)).
		Count(&count).Error
	return count, err
}

type RequestRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.OrderMapper
}

func NewRequestRepository(db *gorm.DB) contract.RequestRepository {
	return &RequestRepositoryImpl{
		db:     db,
		mapper: mapper.NewOrderMapper(),
	}
}

func (r *RequestRepositoryImpl) applySpecifications(db *gorm.DB, specs ...specification.Specification) *gorm.DB {
	for _, spec := range specs {
		db = spec.Apply(db)
	}
	return db
}

func (r *RequestRepositoryImpl) Create(ctx context.Context, request *entity.PlanRequest) error {
	m := r.mapper.RequestToModel(request)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	*request = *r.mapper.RequestToEntity(m)
	return nil
}

func (r *RequestRepositoryImpl) Update(ctx context.Context, request *entity.PlanRequest) error {
	m := r.mapper.RequestToModel(request)
	if err := r.db.WithContext(ctx).Save(m).Error; err != nil {
		return err
	}
	*request = *r.mapper.RequestToEntity(m)
	return nil
}

func (r *RequestRepositoryImpl) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.PlanRequest, error) {
	var m model.PlanRequest
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return r.mapper.RequestToEntity(&m), nil
}

func (r *RequestRepositoryImpl) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.PlanRequest, error) {
	var models []*model.PlanRequest
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.Find(&models).Error; err != nil {
		return nil, err
	}
	entities := make([]*entity.PlanRequest, len(models))
	for i, m := range models {
		entities[i] = r.mapper.RequestToEntity(m)
	}
	return entities, nil
}

func (r *RequestRepositoryImpl) CountByStatus(ctx context.Context, status entity.OrderStatus) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&model.PlanRequest{}).
		Where("status = ?", string(status)).
		Count(&count).Error
	return count, err
}
