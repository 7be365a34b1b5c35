package mapper

import (
	"worksuite-be/internal/entity"
	"worksuite-be/internal/model"
)

type PlanMapper struct{}

func NewPlanMapper() *PlanMapper {
	return &PlanMapper{}
}

func (m *PlanMapper) ToEntity(p *model.Plan) *entity.Plan {
	if p == nil {
		return nil
	}
	return &entity.Plan{
		Id:            p.Id,
		Name:          p.Name,
		Description:   p.Description,
		Price:         p.Price,
		YearlyPrice:   p.YearlyPrice,
		MaxUsers:      p.MaxUsers,
		MaxEmployees:  p.MaxEmployees,
		StorageLimit:  p.StorageLimit,
		EnableChatGPT: p.EnableChatGPT,
		IsTrial:       p.IsTrial,
		TrialDay:      p.TrialDay,
		IsPlanEnable:  p.IsPlanEnable,
		IsDefault:     p.IsDefault,
		SortOrder:     p.SortOrder,
		CreatedAt:     p.CreatedAt,
		UpdatedAt:     p.UpdatedAt,
	}
}

func (m *PlanMapper) ToModel(p *entity.Plan) *model.Plan {
	if p == nil {
		return nil
	}
	return &model.Plan{
		Id:            p.Id,
		Name:          p.Name,
		Description:   p.Description,
		Price:         p.Price,
		YearlyPrice:   p.YearlyPrice,
		MaxUsers:      p.MaxUsers,
		MaxEmployees:  p.MaxEmployees,
		StorageLimit:  p.StorageLimit,
		EnableChatGPT: p.EnableChatGPT,
		IsTrial:       p.IsTrial,
		TrialDay:      p.TrialDay,
		IsPlanEnable:  p.IsPlanEnable,
		IsDefault:     p.IsDefault,
		SortOrder:     p.SortOrder,
		CreatedAt:     p.CreatedAt,
		UpdatedAt:     p.UpdatedAt,
	}
}
