package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"worksuite-be/internal/dto"
	"worksuite-be/internal/entity"
	"worksuite-be/internal/pkg/logger"
	"worksuite-be/internal/repository/contract"
	"worksuite-be/internal/repository/specification"
	"worksuite-be/internal/repository/unitofwork"
	"worksuite-be/pkg/events"
	"worksuite-be/pkg/gateway"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// --- In-memory unit of work ---

type fakeStore struct {
	plans         []*entity.Plan
	orders        []*entity.PlanOrder
	requests      []*entity.PlanRequest
	coupons       []*entity.Coupon
	usages        []*entity.CouponUsage
	currencies    []*entity.Currency
	companies     []*entity.Company
	subscriptions []*entity.CompanySubscription
	users         []*entity.User
	settings      []*entity.Setting
}

type fakeUow struct {
	store *fakeStore
	inTx  bool
}

func (u *fakeUow) Begin(ctx context.Context) error { u.inTx = true; return nil }
func (u *fakeUow) Commit() error                   { u.inTx = false; return nil }
func (u *fakeUow) Rollback() error                 { u.inTx = false; return nil }

func (u *fakeUow) PlanRepository() contract.PlanRepository         { return &fakePlanRepo{u.store} }
func (u *fakeUow) OrderRepository() contract.OrderRepository       { return &fakeOrderRepo{u.store} }
func (u *fakeUow) RequestRepository() contract.RequestRepository   { return &fakeRequestRepo{u.store} }
func (u *fakeUow) CouponRepository() contract.CouponRepository     { return &fakeCouponRepo{u.store} }
func (u *fakeUow) CurrencyRepository() contract.CurrencyRepository { return &fakeCurrencyRepo{u.store} }
func (u *fakeUow) CompanyRepository() contract.CompanyRepository   { return &fakeCompanyRepo{u.store} }
func (u *fakeUow) SubscriptionRepository() contract.SubscriptionRepository {
	return &fakeSubscriptionRepo{u.store}
}
func (u *fakeUow) SettingRepository() contract.SettingRepository { return &fakeSettingRepo{u.store} }
func (u *fakeUow) UserRepository() contract.UserRepository       { return &fakeUserRepo{u.store} }

type fakeFactory struct {
	store *fakeStore
}

func (f *fakeFactory) NewUnitOfWork(ctx context.Context) unitofwork.UnitOfWork {
	return &fakeUow{store: f.store}
}

// --- Repos ---

type fakePlanRepo struct{ s *fakeStore }

func (r *fakePlanRepo) Create(ctx context.Context, p *entity.Plan) error {
	r.s.plans = append(r.s.plans, p)
	return nil
}
func (r *fakePlanRepo) Update(ctx context.Context, p *entity.Plan) error { return nil }
func (r *fakePlanRepo) Delete(ctx context.Context, id uuid.UUID) error   { return nil }
func (r *fakePlanRepo) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Plan, error) {
	for _, p := range r.s.plans {
		if matchPlan(p, specs) {
			return p, nil
		}
	}
	return nil, nil
}
func (r *fakePlanRepo) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Plan, error) {
	var res []*entity.Plan
	for _, p := range r.s.plans {
		if matchPlan(p, specs) {
			res = append(res, p)
		}
	}
	return res, nil
}
func (r *fakePlanRepo) ClearDefault(ctx context.Context, exceptId uuid.UUID) error {
	for _, p := range r.s.plans {
		if p.Id != exceptId {
			p.IsDefault = false
		}
	}
	return nil
}
func (r *fakePlanRepo) CountSubscribers(ctx context.Context, planId uuid.UUID) (int64, error) {
	var n int64
	for _, s := range r.s.subscriptions {
		if s.PlanId == planId && s.Status != entity.SubscriptionStatusExpired {
			n++
		}
	}
	return n, nil
}

func matchPlan(p *entity.Plan, specs []specification.Specification) bool {
	for _, spec := range specs {
		switch sp := spec.(type) {
		case specification.ByID:
			if p.Id != sp.ID {
				return false
			}
		case specification.EnabledPlans:
			if !p.IsPlanEnable {
				return false
			}
		case specification.DefaultOnly:
			if !p.IsDefault {
				return false
			}
		}
	}
	return true
}

type fakeOrderRepo struct{ s *fakeStore }

func (r *fakeOrderRepo) Create(ctx context.Context, o *entity.PlanOrder) error {
	r.s.orders = append(r.s.orders, o)
	return nil
}
func (r *fakeOrderRepo) Update(ctx context.Context, o *entity.PlanOrder) error { return nil }
func (r *fakeOrderRepo) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.PlanOrder, error) {
	for _, o := range r.s.orders {
		if matchOrder(o, specs) {
			return o, nil
		}
	}
	return nil, nil
}
func (r *fakeOrderRepo) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.PlanOrder, error) {
	var res []*entity.PlanOrder
	for _, o := range r.s.orders {
		if matchOrder(o, specs) {
			res = append(res, o)
		}
	}
	return res, nil
}
func (r *fakeOrderRepo) TotalRevenue(ctx context.Context) (float64, error) {
	var total float64
	for _, o := range r.s.orders {
		if o.Status == entity.OrderStatusCompleted || o.Status == entity.OrderStatusApproved {
			total += o.FinalPrice
		}
	}
	return total, nil
}
func (r *fakeOrderRepo) CountByStatus(ctx context.Context, status entity.OrderStatus) (int64, error) {
	var n int64
	for _, o := range r.s.orders {
		if o.Status == status {
			n++
		}
	}
	return n, nil
}

func matchOrder(o *entity.PlanOrder, specs []specification.Specification) bool {
	for _, spec := range specs {
		switch sp := spec.(type) {
		case specification.ByID:
			if o.Id != sp.ID {
				return false
			}
		case specification.CompanyOwnedBy:
			if o.CompanyId != sp.CompanyID {
				return false
			}
		case specification.ByStatus:
			if string(o.Status) != sp.Status {
				return false
			}
		case specification.ByGatewayRef:
			if o.GatewayRef == nil || *o.GatewayRef != sp.Ref {
				return false
			}
		}
	}
	return true
}

type fakeRequestRepo struct{ s *fakeStore }

func (r *fakeRequestRepo) Create(ctx context.Context, req *entity.PlanRequest) error {
	r.s.requests = append(r.s.requests, req)
	return nil
}
func (r *fakeRequestRepo) Update(ctx context.Context, req *entity.PlanRequest) error { return nil }
func (r *fakeRequestRepo) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.PlanRequest, error) {
	for _, req := range r.s.requests {
		if matchRequest(req, specs) {
			return req, nil
		}
	}
	return nil, nil
}
func (r *fakeRequestRepo) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.PlanRequest, error) {
	var res []*entity.PlanRequest
	for _, req := range r.s.requests {
		if matchRequest(req, specs) {
			res = append(res, req)
		}
	}
	return res, nil
}
func (r *fakeRequestRepo) CountByStatus(ctx context.Context, status entity.OrderStatus) (int64, error) {
	var n int64
	for _, req := range r.s.requests {
		if req.Status == status {
			n++
		}
	}
	return n, nil
}

func matchRequest(req *entity.PlanRequest, specs []specification.Specification) bool {
	for _, spec := range specs {
		switch sp := spec.(type) {
		case specification.ByID:
			if req.Id != sp.ID {
				return false
			}
		case specification.CompanyOwnedBy:
			if req.CompanyId != sp.CompanyID {
				return false
			}
		case specification.ByStatus:
			if string(req.Status) != sp.Status {
				return false
			}
		}
	}
	return true
}

type fakeCouponRepo struct{ s *fakeStore }

func (r *fakeCouponRepo) Create(ctx context.Context, c *entity.Coupon) error {
	r.s.coupons = append(r.s.coupons, c)
	return nil
}
func (r *fakeCouponRepo) Update(ctx context.Context, c *entity.Coupon) error { return nil }
func (r *fakeCouponRepo) Delete(ctx context.Context, id uuid.UUID) error     { return nil }
func (r *fakeCouponRepo) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Coupon, error) {
	for _, c := range r.s.coupons {
		if matchCoupon(c, specs) {
			return c, nil
		}
	}
	return nil, nil
}
func (r *fakeCouponRepo) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Coupon, error) {
	return r.s.coupons, nil
}
func (r *fakeCouponRepo) IncrementUsage(ctx context.Context, couponId uuid.UUID) error {
	for _, c := range r.s.coupons {
		if c.Id == couponId {
			c.UsedCount++
		}
	}
	return nil
}
func (r *fakeCouponRepo) RecordUsage(ctx context.Context, usage *entity.CouponUsage) error {
	r.s.usages = append(r.s.usages, usage)
	return nil
}
func (r *fakeCouponRepo) FindUsages(ctx context.Context, specs ...specification.Specification) ([]*entity.CouponUsage, error) {
	return r.s.usages, nil
}

func matchCoupon(c *entity.Coupon, specs []specification.Specification) bool {
	for _, spec := range specs {
		switch sp := spec.(type) {
		case specification.ByID:
			if c.Id != sp.ID {
				return false
			}
		case specification.ByCode:
			if c.Code != sp.Code {
				return false
			}
		}
	}
	return true
}

type fakeCurrencyRepo struct{ s *fakeStore }

func (r *fakeCurrencyRepo) Create(ctx context.Context, c *entity.Currency) error {
	r.s.currencies = append(r.s.currencies, c)
	return nil
}
func (r *fakeCurrencyRepo) Update(ctx context.Context, c *entity.Currency) error { return nil }
func (r *fakeCurrencyRepo) Delete(ctx context.Context, id uuid.UUID) error       { return nil }
func (r *fakeCurrencyRepo) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Currency, error) {
	for _, c := range r.s.currencies {
		match := true
		for _, spec := range specs {
			switch sp := spec.(type) {
			case specification.ByID:
				if c.Id != sp.ID {
					match = false
				}
			case specification.ByCode:
				if c.Code != sp.Code {
					match = false
				}
			case specification.DefaultOnly:
				if !c.IsDefault {
					match = false
				}
			}
		}
		if match {
			return c, nil
		}
	}
	return nil, nil
}
func (r *fakeCurrencyRepo) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Currency, error) {
	return r.s.currencies, nil
}
func (r *fakeCurrencyRepo) ClearDefault(ctx context.Context, exceptId uuid.UUID) error {
	for _, c := range r.s.currencies {
		if c.Id != exceptId {
			c.IsDefault = false
		}
	}
	return nil
}

type fakeCompanyRepo struct{ s *fakeStore }

func (r *fakeCompanyRepo) Create(ctx context.Context, c *entity.Company) error {
	r.s.companies = append(r.s.companies, c)
	return nil
}
func (r *fakeCompanyRepo) Update(ctx context.Context, c *entity.Company) error { return nil }
func (r *fakeCompanyRepo) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Company, error) {
	for _, c := range r.s.companies {
		match := true
		for _, spec := range specs {
			if sp, ok := spec.(specification.ByID); ok && c.Id != sp.ID {
				match = false
			}
		}
		if match {
			return c, nil
		}
	}
	return nil, nil
}
func (r *fakeCompanyRepo) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Company, error) {
	return r.s.companies, nil
}
func (r *fakeCompanyRepo) Count(ctx context.Context) (int64, error) {
	return int64(len(r.s.companies)), nil
}

type fakeSubscriptionRepo struct{ s *fakeStore }

func (r *fakeSubscriptionRepo) Create(ctx context.Context, sub *entity.CompanySubscription) error {
	r.s.subscriptions = append(r.s.subscriptions, sub)
	return nil
}
func (r *fakeSubscriptionRepo) Update(ctx context.Context, sub *entity.CompanySubscription) error {
	return nil
}
func (r *fakeSubscriptionRepo) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.CompanySubscription, error) {
	for _, sub := range r.s.subscriptions {
		if matchSubscription(sub, specs) {
			return sub, nil
		}
	}
	return nil, nil
}
func (r *fakeSubscriptionRepo) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.CompanySubscription, error) {
	var res []*entity.CompanySubscription
	for _, sub := range r.s.subscriptions {
		if matchSubscription(sub, specs) {
			res = append(res, sub)
		}
	}
	return res, nil
}
func (r *fakeSubscriptionRepo) CountActive(ctx context.Context) (int64, error) {
	var n int64
	now := time.Now()
	for _, sub := range r.s.subscriptions {
		if sub.ActiveAt(now) {
			n++
		}
	}
	return n, nil
}

func matchSubscription(sub *entity.CompanySubscription, specs []specification.Specification) bool {
	for _, spec := range specs {
		switch sp := spec.(type) {
		case specification.ByID:
			if sub.Id != sp.ID {
				return false
			}
		case specification.CompanyOwnedBy:
			if sub.CompanyId != sp.CompanyID {
				return false
			}
		case specification.ByStatus:
			if string(sub.Status) != sp.Status {
				return false
			}
		case specification.ExpiresAfter:
			if !sub.ExpiresAt.After(sp.At) {
				return false
			}
		}
	}
	return true
}

type fakeSettingRepo struct{ s *fakeStore }

func (r *fakeSettingRepo) Upsert(ctx context.Context, setting *entity.Setting) error {
	for _, existing := range r.s.settings {
		if existing.Group == setting.Group && existing.Key == setting.Key {
			existing.Value = setting.Value
			return nil
		}
	}
	r.s.settings = append(r.s.settings, setting)
	return nil
}
func (r *fakeSettingRepo) FindGroup(ctx context.Context, group string) ([]*entity.Setting, error) {
	var res []*entity.Setting
	for _, s := range r.s.settings {
		if s.Group == group {
			res = append(res, s)
		}
	}
	return res, nil
}
func (r *fakeSettingRepo) FindValue(ctx context.Context, group, key string) (string, error) {
	for _, s := range r.s.settings {
		if s.Group == group && s.Key == key {
			return s.Value, nil
		}
	}
	return "", nil
}
func (r *fakeSettingRepo) Delete(ctx context.Context, group, key string) error { return nil }

type fakeUserRepo struct{ s *fakeStore }

func (r *fakeUserRepo) Create(ctx context.Context, u *entity.User) error {
	r.s.users = append(r.s.users, u)
	return nil
}
func (r *fakeUserRepo) Update(ctx context.Context, u *entity.User) error { return nil }
func (r *fakeUserRepo) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.User, error) {
	for _, u := range r.s.users {
		match := true
		for _, spec := range specs {
			switch sp := spec.(type) {
			case specification.ByID:
				if u.Id != sp.ID {
					match = false
				}
			case specification.ByEmail:
				if u.Email != sp.Email {
					match = false
				}
			}
		}
		if match {
			return u, nil
		}
	}
	return nil, nil
}
func (r *fakeUserRepo) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.User, error) {
	return r.s.users, nil
}

// --- Fake gateway / publisher / logger ---

type fakeGateway struct {
	name     string
	initErr  error
	lastInit *gateway.InitiateRequest
	cbResult *gateway.CallbackResult
	cbErr    error
}

func (g *fakeGateway) Name() string { return g.name }
func (g *fakeGateway) Initiate(ctx context.Context, req *gateway.InitiateRequest) (*gateway.PaymentHandle, error) {
	if g.initErr != nil {
		return nil, g.initErr
	}
	g.lastInit = req
	return &gateway.PaymentHandle{
		RedirectURL: "https://pay.example/" + req.OrderId.String(),
		GatewayRef:  "ref-" + req.OrderId.String(),
	}, nil
}
func (g *fakeGateway) HandleCallback(ctx context.Context, payload []byte) (*gateway.CallbackResult, error) {
	return g.cbResult, g.cbErr
}

type fakeResolver struct {
	gw *fakeGateway
}

func (r *fakeResolver) Resolve(name string) (gateway.Gateway, error) {
	if r.gw != nil && r.gw.name == name {
		return r.gw, nil
	}
	return nil, assert.AnError
}
func (r *fakeResolver) Names() []string {
	if r.gw == nil {
		return nil
	}
	return []string{r.gw.name}
}

type fakePublisher struct {
	published []events.Event
}

func (p *fakePublisher) Publish(ctx context.Context, event events.Event) error {
	p.published = append(p.published, event)
	return nil
}

func (p *fakePublisher) types() []string {
	var res []string
	for _, e := range p.published {
		res = append(res, e.EventType())
	}
	return res
}

type nopLogger struct{}

func (nopLogger) Debug(module, message string, details map[string]interface{}) {}
func (nopLogger) Info(module, message string, details map[string]interface{})  {}
func (nopLogger) Warn(module, message string, details map[string]interface{})  {}
func (nopLogger) Error(module, message string, details map[string]interface{}) {}
func (nopLogger) Sync() error                                                  { return nil }
func (nopLogger) GetLogs(level string, limit, offset int) ([]logger.LogEntry, error) {
	return nil, nil
}
func (nopLogger) GetLogById(id string) (*logger.LogEntry, error) { return nil, nil }

// --- Fixtures ---

func newBillingFixture(t *testing.T) (*fakeStore, *fakeGateway, *fakePublisher, IBillingService) {
	t.Helper()

	store := &fakeStore{}
	gw := &fakeGateway{name: "midtrans"}
	pub := &fakePublisher{}

	svc := NewBillingService(&fakeFactory{store: store}, &fakeResolver{gw: gw}, pub, nil, nopLogger{})
	return store, gw, pub, svc
}

func seedCompanyAndPlan(store *fakeStore) (*entity.Company, *entity.Plan) {
	owner := &entity.User{
		Id:     uuid.New(),
		Email:  "owner@acme.test",
		Role:   entity.UserRoleCompany,
		Status: entity.UserStatusActive,
	}
	company := &entity.Company{
		Id:          uuid.New(),
		Name:        "Acme",
		OwnerUserId: owner.Id,
		Status:      entity.CompanyStatusActive,
	}
	ownerCompany := company.Id
	owner.CompanyId = &ownerCompany

	plan := &entity.Plan{
		Id:           uuid.New(),
		Name:         "Starter",
		Price:        100,
		IsTrial:      true,
		TrialDay:     14,
		IsPlanEnable: true,
	}

	store.users = append(store.users, owner)
	store.companies = append(store.companies, company)
	store.plans = append(store.plans, plan)
	return company, plan
}

// --- Tests ---

func TestStartTrial(t *testing.T) {
	ctx := context.Background()
	store, _, pub, svc := newBillingFixture(t)
	company, plan := seedCompanyAndPlan(store)

	res, err := svc.StartTrial(ctx, company.Id, &dto.StartTrialRequest{PlanId: plan.Id})
	require.NoError(t, err)
	assert.Equal(t, string(entity.SubscriptionStatusTrial), res.Status)
	assert.True(t, company.TrialUsed)
	require.Len(t, store.subscriptions, 1)
	assert.WithinDuration(t, time.Now().AddDate(0, 0, plan.TrialDay), store.subscriptions[0].ExpiresAt, time.Minute)
	assert.Contains(t, pub.types(), "TRIAL_STARTED")

	t.Run("second trial is refused", func(t *testing.T) {
		_, err := svc.StartTrial(ctx, company.Id, &dto.StartTrialRequest{PlanId: plan.Id})
		assert.ErrorIs(t, err, entity.ErrAlreadyUsedTrial)
		assert.Len(t, store.subscriptions, 1)
	})
}

func TestTrialEligibility(t *testing.T) {
	ctx := context.Background()
	store, _, _, svc := newBillingFixture(t)
	company, plan := seedCompanyAndPlan(store)

	res, err := svc.EvaluateTrialEligibility(ctx, company.Id, plan.Id)
	require.NoError(t, err)
	assert.True(t, res.Eligible)

	company.TrialUsed = true
	res, err = svc.EvaluateTrialEligibility(ctx, company.Id, plan.Id)
	require.NoError(t, err)
	assert.False(t, res.Eligible)

	t.Run("blocked by an active subscription", func(t *testing.T) {
		company.TrialUsed = false
		store.subscriptions = append(store.subscriptions, &entity.CompanySubscription{
			Id:        uuid.New(),
			CompanyId: company.Id,
			PlanId:    plan.Id,
			Status:    entity.SubscriptionStatusActive,
			StartsAt:  time.Now().Add(-time.Hour),
			ExpiresAt: time.Now().AddDate(0, 1, 0),
		})

		res, err := svc.EvaluateTrialEligibility(ctx, company.Id, plan.Id)
		require.NoError(t, err)
		assert.False(t, res.Eligible)

		_, err = svc.StartTrial(ctx, company.Id, &dto.StartTrialRequest{PlanId: plan.Id})
		require.ErrorIs(t, err, entity.ErrAlreadyUsedTrial)
	})
}

func TestInitiateCheckout(t *testing.T) {
	ctx := context.Background()
	store, gw, pub, svc := newBillingFixture(t)
	company, plan := seedCompanyAndPlan(store)

	res, err := svc.InitiateCheckout(ctx, company.Id, &dto.CheckoutRequest{
		PlanId:        plan.Id,
		BillingCycle:  "monthly",
		PaymentMethod: "midtrans",
	})
	require.NoError(t, err)
	assert.Equal(t, string(entity.OrderStatusPending), res.Status)
	assert.Equal(t, 100.0, res.FinalPrice)
	assert.NotEmpty(t, res.RedirectURL)

	require.Len(t, store.orders, 1)
	order := store.orders[0]
	require.NotNil(t, order.GatewayRef)
	assert.Equal(t, "ref-"+order.Id.String(), *order.GatewayRef)
	assert.Equal(t, "owner@acme.test", gw.lastInit.CustomerEmail)
	assert.Contains(t, pub.types(), "ORDER_CREATED")
}

func TestInitiateCheckoutYearlyPricing(t *testing.T) {
	ctx := context.Background()
	store, gw, _, svc := newBillingFixture(t)
	company, plan := seedCompanyAndPlan(store)

	_, err := svc.InitiateCheckout(ctx, company.Id, &dto.CheckoutRequest{
		PlanId:        plan.Id,
		BillingCycle:  "yearly",
		PaymentMethod: "midtrans",
	})
	require.NoError(t, err)
	// derived yearly price: 100 * 12 * 0.8
	assert.Equal(t, 960.0, gw.lastInit.Amount)
}

func TestInitiateCheckoutFullyDiscounted(t *testing.T) {
	ctx := context.Background()
	store, _, pub, svc := newBillingFixture(t)
	company, plan := seedCompanyAndPlan(store)

	coupon := &entity.Coupon{
		Id:       uuid.New(),
		Name:     "Launch",
		Code:     "FREE150",
		Type:     entity.CouponTypeFixed,
		Discount: 150, // more than the plan price, clamps to zero
		Limit:    -1,
		IsActive: true,
	}
	store.coupons = append(store.coupons, coupon)

	res, err := svc.InitiateCheckout(ctx, company.Id, &dto.CheckoutRequest{
		PlanId:        plan.Id,
		BillingCycle:  "monthly",
		PaymentMethod: "midtrans",
		CouponCode:    "FREE150",
	})
	require.NoError(t, err)
	assert.Equal(t, string(entity.OrderStatusCompleted), res.Status)
	assert.Equal(t, 0.0, res.FinalPrice)

	require.Len(t, store.orders, 1)
	assert.Equal(t, 100.0, store.orders[0].DiscountAmount)
	assert.Equal(t, 1, coupon.UsedCount)
	require.Len(t, store.usages, 1)
	require.Len(t, store.subscriptions, 1)
	assert.Equal(t, entity.SubscriptionStatusActive, store.subscriptions[0].Status)
	assert.Contains(t, pub.types(), "ORDER_COMPLETED")
}

func TestInitiateCheckoutInvalidCoupon(t *testing.T) {
	ctx := context.Background()
	store, _, _, svc := newBillingFixture(t)
	company, plan := seedCompanyAndPlan(store)

	expired := time.Now().Add(-time.Hour)
	store.coupons = append(store.coupons, &entity.Coupon{
		Id:        uuid.New(),
		Code:      "OLD",
		Type:      entity.CouponTypeFixed,
		Discount:  10,
		Limit:     -1,
		IsActive:  true,
		ExpiresAt: &expired,
	})

	_, err := svc.InitiateCheckout(ctx, company.Id, &dto.CheckoutRequest{
		PlanId:        plan.Id,
		BillingCycle:  "monthly",
		PaymentMethod: "midtrans",
		CouponCode:    "OLD",
	})
	assert.ErrorIs(t, err, entity.ErrCouponInvalid)
	assert.Empty(t, store.orders)
}

func TestInitiateCheckoutGatewayFailure(t *testing.T) {
	ctx := context.Background()
	store, gw, _, svc := newBillingFixture(t)
	company, plan := seedCompanyAndPlan(store)
	gw.initErr = errors.New(`invalid API key "sk_live_51Hxyz"`)

	_, err := svc.InitiateCheckout(ctx, company.Id, &dto.CheckoutRequest{
		PlanId:        plan.Id,
		BillingCycle:  "monthly",
		PaymentMethod: "midtrans",
	})
	assert.ErrorIs(t, err, entity.ErrPaymentInitiationFailed)
	// Provider detail belongs in the log, not in the returned error.
	assert.NotContains(t, err.Error(), "sk_live")
	// The pending order survives for a later retry or admin cleanup.
	require.Len(t, store.orders, 1)
	assert.Equal(t, entity.OrderStatusPending, store.orders[0].Status)
}

func TestApproveOrderLifecycle(t *testing.T) {
	ctx := context.Background()
	store, _, pub, svc := newBillingFixture(t)
	company, plan := seedCompanyAndPlan(store)

	order := &entity.PlanOrder{
		Id:            uuid.New(),
		CompanyId:     company.Id,
		PlanId:        plan.Id,
		BillingCycle:  entity.BillingCycleMonthly,
		OriginalPrice: 100,
		FinalPrice:    100,
		PaymentMethod: "banktransfer",
		Status:        entity.OrderStatusPending,
	}
	store.orders = append(store.orders, order)

	require.NoError(t, svc.ApproveOrder(ctx, order.Id, "wire received"))
	assert.Equal(t, entity.OrderStatusCompleted, order.Status)
	require.Len(t, store.subscriptions, 1)
	assert.Equal(t, entity.SubscriptionStatusActive, store.subscriptions[0].Status)
	require.NotNil(t, company.PlanId)
	assert.Equal(t, plan.Id, *company.PlanId)
	assert.Contains(t, pub.types(), "ORDER_COMPLETED")

	t.Run("second approval is refused", func(t *testing.T) {
		err := svc.ApproveOrder(ctx, order.Id, "again")
		assert.ErrorIs(t, err, entity.ErrInvalidStateTransition)
		assert.Len(t, store.subscriptions, 1)
	})

	t.Run("rejecting a completed order is refused", func(t *testing.T) {
		err := svc.RejectOrder(ctx, order.Id, "too late")
		assert.ErrorIs(t, err, entity.ErrInvalidStateTransition)
	})
}

func TestActivationSupersedesPriorSubscription(t *testing.T) {
	ctx := context.Background()
	store, _, _, svc := newBillingFixture(t)
	company, plan := seedCompanyAndPlan(store)

	// Running trial
	_, err := svc.StartTrial(ctx, company.Id, &dto.StartTrialRequest{PlanId: plan.Id})
	require.NoError(t, err)

	order := &entity.PlanOrder{
		Id:            uuid.New(),
		CompanyId:     company.Id,
		PlanId:        plan.Id,
		BillingCycle:  entity.BillingCycleYearly,
		FinalPrice:    960,
		PaymentMethod: "banktransfer",
		Status:        entity.OrderStatusPending,
	}
	store.orders = append(store.orders, order)

	require.NoError(t, svc.ApproveOrder(ctx, order.Id, ""))

	require.Len(t, store.subscriptions, 2)
	assert.Equal(t, entity.SubscriptionStatusExpired, store.subscriptions[0].Status)
	assert.Equal(t, entity.SubscriptionStatusActive, store.subscriptions[1].Status)
	assert.WithinDuration(t, time.Now().AddDate(1, 0, 0), store.subscriptions[1].ExpiresAt, time.Minute)
}

func TestPlanChangeRequestFlow(t *testing.T) {
	ctx := context.Background()
	store, _, pub, svc := newBillingFixture(t)
	company, plan := seedCompanyAndPlan(store)

	res, err := svc.RequestPlanChange(ctx, company.Id, &dto.PlanChangeRequest{
		PlanId:       plan.Id,
		BillingCycle: "monthly",
	})
	require.NoError(t, err)
	assert.Equal(t, string(entity.OrderStatusPending), res.Status)

	t.Run("only one pending request per company", func(t *testing.T) {
		_, err := svc.RequestPlanChange(ctx, company.Id, &dto.PlanChangeRequest{
			PlanId:       plan.Id,
			BillingCycle: "monthly",
		})
		assert.Error(t, err)
	})

	require.NoError(t, svc.ApproveRequest(ctx, res.Id, "ok"))
	require.Len(t, store.subscriptions, 1)
	assert.Equal(t, entity.SubscriptionStatusActive, store.subscriptions[0].Status)
	assert.Contains(t, pub.types(), "PLAN_REQUEST_DECIDED")

	t.Run("decided request cannot be rejected", func(t *testing.T) {
		err := svc.RejectRequest(ctx, res.Id, "no")
		assert.ErrorIs(t, err, entity.ErrInvalidStateTransition)
	})
}

func TestHandlePaymentCallback(t *testing.T) {
	ctx := context.Background()
	store, gw, _, svc := newBillingFixture(t)
	company, plan := seedCompanyAndPlan(store)

	ref := "txn-123"
	order := &entity.PlanOrder{
		Id:            uuid.New(),
		CompanyId:     company.Id,
		PlanId:        plan.Id,
		BillingCycle:  entity.BillingCycleMonthly,
		FinalPrice:    100,
		PaymentMethod: "midtrans",
		GatewayRef:    &ref,
		Status:        entity.OrderStatusPending,
	}
	store.orders = append(store.orders, order)

	gw.cbResult = &gateway.CallbackResult{
		OrderRef:   order.Id.String(),
		GatewayRef: ref,
		Outcome:    gateway.OutcomeSuccess,
		RawStatus:  "settlement",
	}

	require.NoError(t, svc.HandlePaymentCallback(ctx, "midtrans", []byte(`{}`)))
	assert.Equal(t, entity.OrderStatusCompleted, order.Status)
	require.Len(t, store.subscriptions, 1)

	t.Run("redelivery is a no-op", func(t *testing.T) {
		require.NoError(t, svc.HandlePaymentCallback(ctx, "midtrans", []byte(`{}`)))
		assert.Len(t, store.subscriptions, 1)
	})
}

func TestHandlePaymentCallbackRejections(t *testing.T) {
	ctx := context.Background()
	store, gw, _, svc := newBillingFixture(t)
	company, plan := seedCompanyAndPlan(store)

	ref := "txn-456"
	order := &entity.PlanOrder{
		Id:            uuid.New(),
		CompanyId:     company.Id,
		PlanId:        plan.Id,
		BillingCycle:  entity.BillingCycleMonthly,
		FinalPrice:    100,
		PaymentMethod: "banktransfer",
		GatewayRef:    &ref,
		Status:        entity.OrderStatusPending,
	}
	store.orders = append(store.orders, order)

	t.Run("method mismatch", func(t *testing.T) {
		gw.cbResult = &gateway.CallbackResult{
			OrderRef:   order.Id.String(),
			GatewayRef: ref,
			Outcome:    gateway.OutcomeSuccess,
		}
		err := svc.HandlePaymentCallback(ctx, "midtrans", []byte(`{}`))
		assert.Error(t, err)
		assert.Equal(t, entity.OrderStatusPending, order.Status)
	})

	t.Run("malformed order reference", func(t *testing.T) {
		gw.cbResult = &gateway.CallbackResult{OrderRef: "not-a-uuid", Outcome: gateway.OutcomeSuccess}
		err := svc.HandlePaymentCallback(ctx, "midtrans", []byte(`{}`))
		assert.Error(t, err)
	})

	t.Run("failure outcome rejects the order", func(t *testing.T) {
		order.PaymentMethod = "midtrans"
		gw.cbResult = &gateway.CallbackResult{
			OrderRef:   order.Id.String(),
			GatewayRef: ref,
			Outcome:    gateway.OutcomeFailure,
			RawStatus:  "expire",
		}
		require.NoError(t, svc.HandlePaymentCallback(ctx, "midtrans", []byte(`{}`)))
		assert.Equal(t, entity.OrderStatusRejected, order.Status)
		assert.Contains(t, order.Notes, "expire")
	})
}

func TestCurrentSubscription(t *testing.T) {
	ctx := context.Background()
	store, _, _, svc := newBillingFixture(t)
	company, plan := seedCompanyAndPlan(store)

	res, err := svc.CurrentSubscription(ctx, company.Id)
	require.NoError(t, err)
	assert.Nil(t, res)

	_, err = svc.StartTrial(ctx, company.Id, &dto.StartTrialRequest{PlanId: plan.Id})
	require.NoError(t, err)

	res, err = svc.CurrentSubscription(ctx, company.Id)
	require.NoError(t, err)
	require.NotNil(t, res)
	assert.Equal(t, plan.Name, res.PlanName)
	assert.Equal(t, string(entity.SubscriptionStatusTrial), res.Status)
}

func TestPreviewCoupon(t *testing.T) {
	ctx := context.Background()
	store, _, _, svc := newBillingFixture(t)
	_, plan := seedCompanyAndPlan(store)

	store.coupons = append(store.coupons, &entity.Coupon{
		Id:       uuid.New(),
		Code:     "HALF",
		Type:     entity.CouponTypePercentage,
		Discount: 50,
		Limit:    -1,
		IsActive: true,
	})

	res, err := svc.PreviewCoupon(ctx, &dto.ApplyCouponRequest{
		Code:         "HALF",
		PlanId:       plan.Id,
		BillingCycle: "monthly",
	})
	require.NoError(t, err)
	assert.Equal(t, 50.0, res.DiscountAmount)
	assert.Equal(t, 50.0, res.FinalPrice)
}
