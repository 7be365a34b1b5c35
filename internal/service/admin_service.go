package service

import (
	"context"

	"worksuite-be/internal/dto"
	"worksuite-be/internal/entity"
	"worksuite-be/internal/pkg/logger"
	"worksuite-be/internal/repository/specification"
	"worksuite-be/internal/repository/unitofwork"
	adminCoupon "worksuite-be/pkg/admin/coupon"
	adminCurrency "worksuite-be/pkg/admin/currency"
	"worksuite-be/pkg/admin/dashboard"
	adminPlan "worksuite-be/pkg/admin/plan"
	adminSetting "worksuite-be/pkg/admin/setting"

	"github.com/google/uuid"
)

type IAdminService interface {
	// Plan catalog
	CreatePlan(ctx context.Context, req dto.CreatePlanRequest) (*dto.PlanResponse, error)
	UpdatePlan(ctx context.Context, id uuid.UUID, req dto.UpdatePlanRequest) (*dto.PlanResponse, error)
	DeletePlan(ctx context.Context, id uuid.UUID) error
	ListPlans(ctx context.Context) ([]*dto.PlanResponse, error)

	// Coupons
	CreateCoupon(ctx context.Context, req dto.CreateCouponRequest) (*dto.CouponResponse, error)
	UpdateCoupon(ctx context.Context, id uuid.UUID, req dto.UpdateCouponRequest) (*dto.CouponResponse, error)
	DeleteCoupon(ctx context.Context, id uuid.UUID) error
	ListCoupons(ctx context.Context) ([]*dto.CouponResponse, error)
	CouponUsages(ctx context.Context, couponId uuid.UUID) ([]*dto.CouponUsageResponse, error)

	// Currencies
	CreateCurrency(ctx context.Context, req dto.CreateCurrencyRequest) (*dto.CurrencyResponse, error)
	UpdateCurrency(ctx context.Context, id uuid.UUID, req dto.UpdateCurrencyRequest) (*dto.CurrencyResponse, error)
	DeleteCurrency(ctx context.Context, id uuid.UUID) error
	ListCurrencies(ctx context.Context) ([]*dto.CurrencyResponse, error)

	// Settings
	UpdateSettings(ctx context.Context, req dto.UpdateSettingsRequest) error
	GetSettings(ctx context.Context, group string) (*dto.SettingsResponse, error)
	UpdatePaymentMethod(ctx context.Context, req dto.PaymentMethodSettingsRequest) error

	// Orders / Requests / Dashboard
	ListOrders(ctx context.Context, req dto.OrderListRequest) ([]*dto.OrderResponse, error)
	ListRequests(ctx context.Context, req dto.OrderListRequest) ([]*dto.RequestResponse, error)
	Dashboard(ctx context.Context) (*dto.DashboardResponse, error)

	// System logs
	SystemLogs(ctx context.Context, level string, page, limit int) ([]logger.LogEntry, error)
	LogDetail(ctx context.Context, logId string) (*logger.LogEntry, error)
}

type adminService struct {
	uowFactory unitofwork.RepositoryFactory
	plans      *adminPlan.Manager
	coupons    *adminCoupon.Manager
	currencies *adminCurrency.Manager
	settings   *adminSetting.Manager
	dashboard  *dashboard.Aggregator
	logger     logger.ILogger
}

func NewAdminService(
	uowFactory unitofwork.RepositoryFactory,
	settings *adminSetting.Manager,
	log logger.ILogger,
) IAdminService {
	return &adminService{
		uowFactory: uowFactory,
		plans:      adminPlan.NewManager(),
		coupons:    adminCoupon.NewManager(),
		currencies: adminCurrency.NewManager(),
		settings:   settings,
		dashboard:  dashboard.NewAggregator(log),
		logger:     log,
	}
}

// --- Plans ---

func (s *adminService) CreatePlan(ctx context.Context, req dto.CreatePlanRequest) (*dto.PlanResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	plan, err := s.plans.Create(ctx, uow, req)
	if err != nil {
		return nil, err
	}
	s.logger.Info("AdminService", "Plan created", map[string]interface{}{"plan_id": plan.Id, "name": plan.Name})
	return toPlanResponse(plan, nil), nil
}

func (s *adminService) UpdatePlan(ctx context.Context, id uuid.UUID, req dto.UpdatePlanRequest) (*dto.PlanResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	plan, err := s.plans.Update(ctx, uow, id, req)
	if err != nil {
		return nil, err
	}
	return toPlanResponse(plan, nil), nil
}

func (s *adminService) DeletePlan(ctx context.Context, id uuid.UUID) error {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	return s.plans.Delete(ctx, uow, id)
}

func (s *adminService) ListPlans(ctx context.Context) ([]*dto.PlanResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	plans, counts, err := s.plans.List(ctx, uow)
	if err != nil {
		return nil, err
	}
	res := make([]*dto.PlanResponse, 0, len(plans))
	for _, p := range plans {
		item := toPlanResponse(p, nil)
		item.Subscribers = counts[p.Id]
		res = append(res, item)
	}
	return res, nil
}

// --- Coupons ---

func (s *adminService) CreateCoupon(ctx context.Context, req dto.CreateCouponRequest) (*dto.CouponResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	coupon, err := s.coupons.Create(ctx, uow, req)
	if err != nil {
		return nil, err
	}
	return toCouponResponse(coupon), nil
}

func (s *adminService) UpdateCoupon(ctx context.Context, id uuid.UUID, req dto.UpdateCouponRequest) (*dto.CouponResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	coupon, err := s.coupons.Update(ctx, uow, id, req)
	if err != nil {
		return nil, err
	}
	return toCouponResponse(coupon), nil
}

func (s *adminService) DeleteCoupon(ctx context.Context, id uuid.UUID) error {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	return s.coupons.Delete(ctx, uow, id)
}

func (s *adminService) ListCoupons(ctx context.Context) ([]*dto.CouponResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	coupons, err := s.coupons.List(ctx, uow)
	if err != nil {
		return nil, err
	}
	res := make([]*dto.CouponResponse, 0, len(coupons))
	for _, c := range coupons {
		res = append(res, toCouponResponse(c))
	}
	return res, nil
}

func (s *adminService) CouponUsages(ctx context.Context, couponId uuid.UUID) ([]*dto.CouponUsageResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	usages, err := s.coupons.Usages(ctx, uow, couponId)
	if err != nil {
		return nil, err
	}

	res := make([]*dto.CouponUsageResponse, 0, len(usages))
	for _, u := range usages {
		item := &dto.CouponUsageResponse{
			Id:        u.Id,
			CompanyId: u.CompanyId,
			OrderId:   u.OrderId,
			CreatedAt: u.CreatedAt,
		}
		company, err := uow.CompanyRepository().FindOne(ctx, specification.ByID{ID: u.CompanyId})
		if err == nil && company != nil {
			item.CompanyName = company.Name
		}
		res = append(res, item)
	}
	return res, nil
}

// --- Currencies ---

func (s *adminService) CreateCurrency(ctx context.Context, req dto.CreateCurrencyRequest) (*dto.CurrencyResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	currency, err := s.currencies.Create(ctx, uow, req)
	if err != nil {
		return nil, err
	}
	return toCurrencyResponse(currency), nil
}

func (s *adminService) UpdateCurrency(ctx context.Context, id uuid.UUID, req dto.UpdateCurrencyRequest) (*dto.CurrencyResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	currency, err := s.currencies.Update(ctx, uow, id, req)
	if err != nil {
		return nil, err
	}
	return toCurrencyResponse(currency), nil
}

func (s *adminService) DeleteCurrency(ctx context.Context, id uuid.UUID) error {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	return s.currencies.Delete(ctx, uow, id)
}

func (s *adminService) ListCurrencies(ctx context.Context) ([]*dto.CurrencyResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	currencies, err := s.currencies.List(ctx, uow)
	if err != nil {
		return nil, err
	}
	res := make([]*dto.CurrencyResponse, 0, len(currencies))
	for _, c := range currencies {
		res = append(res, toCurrencyResponse(c))
	}
	return res, nil
}

// --- Settings ---

func (s *adminService) UpdateSettings(ctx context.Context, req dto.UpdateSettingsRequest) error {
	return s.settings.UpdateGroup(ctx, req)
}

func (s *adminService) GetSettings(ctx context.Context, group string) (*dto.SettingsResponse, error) {
	values, err := s.settings.GetGroup(ctx, group)
	if err != nil {
		return nil, err
	}
	return &dto.SettingsResponse{Group: group, Settings: values}, nil
}

func (s *adminService) UpdatePaymentMethod(ctx context.Context, req dto.PaymentMethodSettingsRequest) error {
	s.logger.Info("AdminService", "Payment method settings updated", map[string]interface{}{
		"method":  req.Method,
		"enabled": req.Enabled,
	})
	return s.settings.UpdatePaymentMethod(ctx, req)
}

// --- Orders / Requests / Dashboard ---

func (s *adminService) ListOrders(ctx context.Context, req dto.OrderListRequest) ([]*dto.OrderResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	specs := []specification.Specification{
		specification.OrderBy{Field: "created_at", Desc: true},
	}
	if req.Status != "" {
		specs = append(specs, specification.ByStatus{Status: req.Status})
	}
	if req.Limit > 0 {
		page := req.Page
		if page < 1 {
			page = 1
		}
		specs = append(specs, specification.Pagination{Limit: req.Limit, Offset: (page - 1) * req.Limit})
	}

	orders, err := uow.OrderRepository().FindAll(ctx, specs...)
	if err != nil {
		return nil, err
	}

	res := make([]*dto.OrderResponse, 0, len(orders))
	for _, o := range orders {
		item := &dto.OrderResponse{
			Id:             o.Id,
			CompanyId:      o.CompanyId,
			PlanId:         o.PlanId,
			BillingCycle:   string(o.BillingCycle),
			OriginalPrice:  o.OriginalPrice,
			DiscountAmount: o.DiscountAmount,
			FinalPrice:     o.FinalPrice,
			CouponCode:     o.CouponCode,
			PaymentMethod:  o.PaymentMethod,
			GatewayRef:     o.GatewayRef,
			Status:         string(o.Status),
			Notes:          o.Notes,
			CreatedAt:      o.CreatedAt,
		}
		s.attachNames(ctx, uow, o.CompanyId, o.PlanId, &item.CompanyName, &item.PlanName)
		res = append(res, item)
	}
	return res, nil
}

func (s *adminService) ListRequests(ctx context.Context, req dto.OrderListRequest) ([]*dto.RequestResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	specs := []specification.Specification{
		specification.OrderBy{Field: "created_at", Desc: true},
	}
	if req.Status != "" {
		specs = append(specs, specification.ByStatus{Status: req.Status})
	}

	requests, err := uow.RequestRepository().FindAll(ctx, specs...)
	if err != nil {
		return nil, err
	}

	res := make([]*dto.RequestResponse, 0, len(requests))
	for _, r := range requests {
		item := &dto.RequestResponse{
			Id:           r.Id,
			CompanyId:    r.CompanyId,
			PlanId:       r.PlanId,
			BillingCycle: string(r.BillingCycle),
			Status:       string(r.Status),
			Notes:        r.Notes,
			CreatedAt:    r.CreatedAt,
		}
		s.attachNames(ctx, uow, r.CompanyId, r.PlanId, &item.CompanyName, &item.PlanName)
		res = append(res, item)
	}
	return res, nil
}

func (s *adminService) Dashboard(ctx context.Context) (*dto.DashboardResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	return s.dashboard.GetStats(ctx, uow)
}

// --- System logs ---

func (s *adminService) SystemLogs(ctx context.Context, level string, page, limit int) ([]logger.LogEntry, error) {
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = 10
	}
	return s.logger.GetLogs(level, limit, (page-1)*limit)
}

func (s *adminService) LogDetail(ctx context.Context, logId string) (*logger.LogEntry, error) {
	return s.logger.GetLogById(logId)
}

// attachNames best-effort resolves display names for list rows.
func (s *adminService) attachNames(ctx context.Context, uow unitofwork.UnitOfWork, companyId, planId uuid.UUID, companyName, planName *string) {
	company, err := uow.CompanyRepository().FindOne(ctx, specification.ByID{ID: companyId})
	if err == nil && company != nil {
		*companyName = company.Name
	}
	plan, err := uow.PlanRepository().FindOne(ctx, specification.ByID{ID: planId})
	if err == nil && plan != nil {
		*planName = plan.Name
	}
}

func toCouponResponse(c *entity.Coupon) *dto.CouponResponse {
	return &dto.CouponResponse{
		Id:        c.Id,
		Name:      c.Name,
		Code:      c.Code,
		Type:      string(c.Type),
		Discount:  c.Discount,
		Limit:     c.Limit,
		UsedCount: c.UsedCount,
		IsActive:  c.IsActive,
		ExpiresAt: c.ExpiresAt,
		CreatedAt: c.CreatedAt,
	}
}
