package mapper

import (
	"gorm.io/datatypes"

	"worksuite-be/internal/entity"
	"worksuite-be/internal/model"
)

type OrderMapper struct{}

func NewOrderMapper() *OrderMapper {
	return &OrderMapper{}
}

func (m *OrderMapper) ToEntity(o *model.PlanOrder) *entity.PlanOrder {
	if o == nil {
		return nil
	}
	return &entity.PlanOrder{
		Id:              o.Id,
		CompanyId:       o.CompanyId,
		PlanId:          o.PlanId,
		BillingCycle:    entity.BillingCycle(o.BillingCycle),
		OriginalPrice:   o.OriginalPrice,
		DiscountAmount:  o.DiscountAmount,
		FinalPrice:      o.FinalPrice,
		CouponCode:      o.CouponCode,
		PaymentMethod:   o.PaymentMethod,
		GatewayRef:      o.GatewayRef,
		GatewayResponse: []byte(o.GatewayResponse),
		Status:          entity.OrderStatus(o.Status),
		Notes:           o.Notes,
		CreatedAt:       o.CreatedAt,
		UpdatedAt:       o.UpdatedAt,
	}
}

func (m *OrderMapper) ToModel(o *entity.PlanOrder) *model.PlanOrder {
	if o == nil {
		return nil
	}
	return &model.PlanOrder{
		Id:              o.Id,
		CompanyId:       o.CompanyId,
		PlanId:          o.PlanId,
		BillingCycle:    string(o.BillingCycle),
		OriginalPrice:   o.OriginalPrice,
		DiscountAmount:  o.DiscountAmount,
		FinalPrice:      o.FinalPrice,
		CouponCode:      o.CouponCode,
		PaymentMethod:   o.PaymentMethod,
		GatewayRef:      o.GatewayRef,
		GatewayResponse: datatypes.JSON(o.GatewayResponse),
		Status:          string(o.Status),
		Notes:           o.Notes,
		CreatedAt:       o.CreatedAt,
		UpdatedAt:       o.UpdatedAt,
	}
}

func (m *OrderMapper) RequestToEntity(r *model.PlanRequest) *entity.PlanRequest {
	if r == nil {
		return nil
	}
	return &entity.PlanRequest{
		Id:           r.Id,
		CompanyId:    r.CompanyId,
		PlanId:       r.PlanId,
		BillingCycle: entity.BillingCycle(r.BillingCycle),
		Status:       entity.OrderStatus(r.Status),
		Notes:        r.Notes,
		CreatedAt:    r.CreatedAt,
		UpdatedAt:    r.UpdatedAt,
	}
}

func (m *OrderMapper) RequestToModel(r *entity.PlanRequest) *model.PlanRequest {
	if r == nil {
		return nil
	}
	return &model.PlanRequest{
		Id:           r.Id,
		CompanyId:    r.CompanyId,
		PlanId:       r.PlanId,
		BillingCycle: string(r.BillingCycle),
		Status:       string(r.Status),
		Notes:        r.Notes,
		CreatedAt:    r.CreatedAt,
		UpdatedAt:    r.UpdatedAt,
	}
}
