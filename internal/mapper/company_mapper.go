package mapper

import (
	"worksuite-be/internal/entity"
	"worksuite-be/internal/model"
)

type CompanyMapper struct{}

func NewCompanyMapper() *CompanyMapper {
	return &CompanyMapper{}
}

func (m *CompanyMapper) ToEntity(c *model.Company) *entity.Company {
	if c == nil {
		return nil
	}
	return &entity.Company{
		Id:          c.Id,
		Name:        c.Name,
		OwnerUserId: c.OwnerUserId,
		PlanId:      c.PlanId,
		TrialUsed:   c.TrialUsed,
		Status:      entity.CompanyStatus(c.Status),
		CreatedAt:   c.CreatedAt,
		UpdatedAt:   c.UpdatedAt,
	}
}

func (m *CompanyMapper) ToModel(c *entity.Company) *model.Company {
	if c == nil {
		return nil
	}
	return &model.Company{
		Id:          c.Id,
		Name:        c.Name,
		OwnerUserId: c.OwnerUserId,
		PlanId:      c.PlanId,
		TrialUsed:   c.TrialUsed,
		Status:      string(c.Status),
		CreatedAt:   c.CreatedAt,
		UpdatedAt:   c.UpdatedAt,
	}
}

type SubscriptionMapper struct{}

func NewSubscriptionMapper() *SubscriptionMapper {
	return &SubscriptionMapper{}
}

func (m *SubscriptionMapper) ToEntity(s *model.CompanySubscription) *entity.CompanySubscription {
	if s == nil {
		return nil
	}
	return &entity.CompanySubscription{
		Id:           s.Id,
		CompanyId:    s.CompanyId,
		PlanId:       s.PlanId,
		BillingCycle: entity.BillingCycle(s.BillingCycle),
		Status:       entity.SubscriptionStatus(s.Status),
		StartsAt:     s.StartsAt,
		ExpiresAt:    s.ExpiresAt,
		PlanOrderId:  s.PlanOrderId,
		CreatedAt:    s.CreatedAt,
		UpdatedAt:    s.UpdatedAt,
	}
}

func (m *SubscriptionMapper) ToModel(s *entity.CompanySubscription) *model.CompanySubscription {
	if s == nil {
		return nil
	}
	return &model.CompanySubscription{
		Id:           s.Id,
		CompanyId:    s.CompanyId,
		PlanId:       s.PlanId,
		BillingCycle: string(s.BillingCycle),
		Status:       string(s.Status),
		StartsAt:     s.StartsAt,
		ExpiresAt:    s.ExpiresAt,
		PlanOrderId:  s.PlanOrderId,
		CreatedAt:    s.CreatedAt,
		UpdatedAt:    s.UpdatedAt,
	}
}
