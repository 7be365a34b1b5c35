package service

import (
	"context"
	"errors"

	"worksuite-be/internal/dto"
	"worksuite-be/internal/entity"
	"worksuite-be/internal/repository/specification"
	"worksuite-be/internal/repository/unitofwork"

	"github.com/google/uuid"
)

type IPlanService interface {
	GetPlans(ctx context.Context) ([]*dto.PlanResponse, error)
	GetPlan(ctx context.Context, id uuid.UUID) (*dto.PlanResponse, error)
	GetCurrencies(ctx context.Context) ([]*dto.CurrencyResponse, error)
}

type planService struct {
	uowFactory unitofwork.RepositoryFactory
}

func NewPlanService(uowFactory unitofwork.RepositoryFactory) IPlanService {
	return &planService{uowFactory: uowFactory}
}

// GetPlans lists the plans shown on the pricing page, cheapest tier first,
// with prices rendered in the platform default currency.
func (s *planService) GetPlans(ctx context.Context) ([]*dto.PlanResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	plans, err := uow.PlanRepository().FindAll(ctx,
		specification.EnabledPlans{},
		specification.OrderBy{Field: "sort_order"},
	)
	if err != nil {
		return nil, err
	}

	currency, err := uow.CurrencyRepository().FindOne(ctx, specification.DefaultOnly{})
	if err != nil {
		return nil, err
	}

	res := make([]*dto.PlanResponse, 0, len(plans))
	for _, p := range plans {
		res = append(res, toPlanResponse(p, currency))
	}
	return res, nil
}

func (s *planService) GetPlan(ctx context.Context, id uuid.UUID) (*dto.PlanResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	plan, err := uow.PlanRepository().FindOne(ctx, specification.ByID{ID: id})
	if err != nil {
		return nil, err
	}
	if plan == nil || !plan.IsPlanEnable {
		return nil, errors.New("plan not found")
	}

	currency, err := uow.CurrencyRepository().FindOne(ctx, specification.DefaultOnly{})
	if err != nil {
		return nil, err
	}
	return toPlanResponse(plan, currency), nil
}

func (s *planService) GetCurrencies(ctx context.Context) ([]*dto.CurrencyResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	currencies, err := uow.CurrencyRepository().FindAll(ctx, specification.OrderBy{Field: "code"})
	if err != nil {
		return nil, err
	}

	res := make([]*dto.CurrencyResponse, 0, len(currencies))
	for _, c := range currencies {
		res = append(res, toCurrencyResponse(c))
	}
	return res, nil
}

func toPlanResponse(p *entity.Plan, currency *entity.Currency) *dto.PlanResponse {
	res := &dto.PlanResponse{
		Id:            p.Id,
		Name:          p.Name,
		Description:   p.Description,
		Price:         p.Price,
		YearlyPrice:   p.YearlyAmount(),
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
	}
	if currency != nil {
		res.MonthlyLabel = currency.Format(p.Price)
		res.YearlyLabel = currency.Format(p.YearlyAmount())
	}
	return res
}

func toCurrencyResponse(c *entity.Currency) *dto.CurrencyResponse {
	return &dto.CurrencyResponse{
		Id:            c.Id,
		Name:          c.Name,
		Code:          c.Code,
		Symbol:        c.Symbol,
		DecimalPlaces: c.DecimalPlaces,
		Position:      string(c.Position),
		ThousandsSep:  c.ThousandsSep,
		DecimalSep:    c.DecimalSep,
		IsDefault:     c.IsDefault,
		CreatedAt:     c.CreatedAt,
	}
}
