package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"worksuite-be/internal/dto"
	"worksuite-be/internal/entity"
	"worksuite-be/internal/pkg/logger"
	"worksuite-be/internal/repository/specification"
	"worksuite-be/internal/repository/unitofwork"
	"worksuite-be/pkg/events"
	"worksuite-be/pkg/gateway"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

// callbackLockTTL bounds how long a webhook delivery holds the per-order
// lock. Redis expires it even if the handler dies mid-flight.
const callbackLockTTL = 30 * time.Second

// GatewayResolver yields the adapter for an enabled payment method.
// Satisfied by *gateway.Registry.
type GatewayResolver interface {
	Resolve(name string) (gateway.Gateway, error)
	Names() []string
}

// EventPublisher pushes domain events onto the bus.
type EventPublisher interface {
	Publish(ctx context.Context, event events.Event) error
}

type IBillingService interface {
	EvaluateTrialEligibility(ctx context.Context, companyId, planId uuid.UUID) (*dto.TrialEligibilityResponse, error)
	StartTrial(ctx context.Context, companyId uuid.UUID, req *dto.StartTrialRequest) (*dto.SubscriptionResponse, error)
	PreviewCoupon(ctx context.Context, req *dto.ApplyCouponRequest) (*dto.CouponPreviewResponse, error)
	InitiateCheckout(ctx context.Context, companyId uuid.UUID, req *dto.CheckoutRequest) (*dto.CheckoutResponse, error)
	RequestPlanChange(ctx context.Context, companyId uuid.UUID, req *dto.PlanChangeRequest) (*dto.RequestResponse, error)
	HandlePaymentCallback(ctx context.Context, method string, payload []byte) error
	ApproveOrder(ctx context.Context, orderId uuid.UUID, notes string) error
	RejectOrder(ctx context.Context, orderId uuid.UUID, notes string) error
	ApproveRequest(ctx context.Context, requestId uuid.UUID, notes string) error
	RejectRequest(ctx context.Context, requestId uuid.UUID, notes string) error
	CurrentSubscription(ctx context.Context, companyId uuid.UUID) (*dto.SubscriptionResponse, error)
	PaymentMethods(ctx context.Context) []string
}

type billingService struct {
	uowFactory unitofwork.RepositoryFactory
	gateways   GatewayResolver
	publisher  EventPublisher
	redis      *redis.Client
	logger     logger.ILogger
}

func NewBillingService(
	uowFactory unitofwork.RepositoryFactory,
	gateways GatewayResolver,
	publisher EventPublisher,
	redisClient *redis.Client,
	log logger.ILogger,
) IBillingService {
	return &billingService{
		uowFactory: uowFactory,
		gateways:   gateways,
		publisher:  publisher,
		redis:      redisClient,
		logger:     log,
	}
}

func (s *billingService) EvaluateTrialEligibility(ctx context.Context, companyId, planId uuid.UUID) (*dto.TrialEligibilityResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	company, err := uow.CompanyRepository().FindOne(ctx, specification.ByID{ID: companyId})
	if err != nil {
		return nil, err
	}
	if company == nil {
		return nil, errors.New("company not found")
	}

	plan, err := uow.PlanRepository().FindOne(ctx, specification.ByID{ID: planId})
	if err != nil {
		return nil, err
	}
	if plan == nil {
		return nil, errors.New("plan not found")
	}

	if !plan.OffersTrial() {
		return &dto.TrialEligibilityResponse{Eligible: false, Reason: "plan does not offer a trial"}, nil
	}
	if company.TrialUsed {
		return &dto.TrialEligibilityResponse{Eligible: false, Reason: "trial already used"}, nil
	}
	active, err := s.hasActiveSubscription(ctx, uow, companyId)
	if err != nil {
		return nil, err
	}
	if active {
		return &dto.TrialEligibilityResponse{Eligible: false, Reason: "a subscription is already active"}, nil
	}
	return &dto.TrialEligibilityResponse{Eligible: true}, nil
}

func (s *billingService) StartTrial(ctx context.Context, companyId uuid.UUID, req *dto.StartTrialRequest) (*dto.SubscriptionResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	company, err := uow.CompanyRepository().FindOne(ctx, specification.ByID{ID: companyId})
	if err != nil {
		return nil, err
	}
	if company == nil {
		return nil, errors.New("company not found")
	}
	if company.TrialUsed {
		return nil, fmt.Errorf("%w: company %s", entity.ErrAlreadyUsedTrial, companyId)
	}

	plan, err := uow.PlanRepository().FindOne(ctx, specification.ByID{ID: req.PlanId})
	if err != nil {
		return nil, err
	}
	if plan == nil || !plan.IsPlanEnable {
		return nil, errors.New("plan not found")
	}
	if !plan.OffersTrial() {
		return nil, fmt.Errorf("plan %s does not offer a trial", plan.Name)
	}
	active, err := s.hasActiveSubscription(ctx, uow, companyId)
	if err != nil {
		return nil, err
	}
	if active {
		return nil, fmt.Errorf("%w: a subscription is already active", entity.ErrAlreadyUsedTrial)
	}

	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}
	defer uow.Rollback()

	sub, err := s.activateSubscription(ctx, uow, company, plan, entity.BillingCycleMonthly, entity.SubscriptionStatusTrial, nil)
	if err != nil {
		return nil, err
	}

	company.TrialUsed = true
	if err := uow.CompanyRepository().Update(ctx, company); err != nil {
		return nil, err
	}

	if err := uow.Commit(); err != nil {
		return nil, err
	}

	s.emit(ctx, "TRIAL_STARTED", map[string]interface{}{
		"company_id": company.Id,
		"plan_id":    plan.Id,
		"plan_name":  plan.Name,
		"expires_at": sub.ExpiresAt,
	})

	return toSubscriptionResponse(sub, plan), nil
}

func (s *billingService) PreviewCoupon(ctx context.Context, req *dto.ApplyCouponRequest) (*dto.CouponPreviewResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	plan, err := uow.PlanRepository().FindOne(ctx, specification.ByID{ID: req.PlanId})
	if err != nil {
		return nil, err
	}
	if plan == nil {
		return nil, errors.New("plan not found")
	}

	price := plan.PriceFor(entity.BillingCycle(req.BillingCycle))
	coupon, err := s.resolveCoupon(ctx, uow, req.Code)
	if err != nil {
		return nil, err
	}

	discount := coupon.DiscountOn(price)
	return &dto.CouponPreviewResponse{
		Code:           coupon.Code,
		OriginalPrice:  price,
		DiscountAmount: discount,
		FinalPrice:     price - discount,
	}, nil
}

func (s *billingService) InitiateCheckout(ctx context.Context, companyId uuid.UUID, req *dto.CheckoutRequest) (*dto.CheckoutResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	company, err := uow.CompanyRepository().FindOne(ctx, specification.ByID{ID: companyId})
	if err != nil {
		return nil, err
	}
	if company == nil {
		return nil, errors.New("company not found")
	}

	plan, err := uow.PlanRepository().FindOne(ctx, specification.ByID{ID: req.PlanId})
	if err != nil {
		return nil, err
	}
	if plan == nil || !plan.IsPlanEnable {
		return nil, errors.New("plan not found")
	}

	cycle := entity.BillingCycle(req.BillingCycle)
	price := plan.PriceFor(cycle)

	var coupon *entity.Coupon
	var discount float64
	var couponCode *string
	if req.CouponCode != "" {
		coupon, err = s.resolveCoupon(ctx, uow, req.CouponCode)
		if err != nil {
			return nil, err
		}
		discount = coupon.DiscountOn(price)
		couponCode = &coupon.Code
	}
	final := price - discount

	order := &entity.PlanOrder{
		Id:             uuid.New(),
		CompanyId:      company.Id,
		PlanId:         plan.Id,
		BillingCycle:   cycle,
		OriginalPrice:  price,
		DiscountAmount: discount,
		FinalPrice:     final,
		CouponCode:     couponCode,
		PaymentMethod:  req.PaymentMethod,
		Status:         entity.OrderStatusPending,
		CreatedAt:      time.Now(),
		UpdatedAt:      time.Now(),
	}

	// Fully discounted orders skip the gateway and complete on the spot.
	if final <= 0 {
		if err := uow.Begin(ctx); err != nil {
			return nil, err
		}
		defer uow.Rollback()

		if err := uow.OrderRepository().Create(ctx, order); err != nil {
			return nil, err
		}
		if err := order.Transition(entity.OrderStatusCompleted); err != nil {
			return nil, err
		}
		if err := uow.OrderRepository().Update(ctx, order); err != nil {
			return nil, err
		}
		if err := s.settleOrderLocked(ctx, uow, order, company, plan, coupon); err != nil {
			return nil, err
		}
		if err := uow.Commit(); err != nil {
			return nil, err
		}

		s.emit(ctx, "ORDER_COMPLETED", orderEventPayload(order, plan))
		return &dto.CheckoutResponse{
			OrderId:    order.Id,
			Status:     string(order.Status),
			FinalPrice: 0,
		}, nil
	}

	gw, err := s.gateways.Resolve(req.PaymentMethod)
	if err != nil {
		return nil, err
	}

	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}
	if err := uow.OrderRepository().Create(ctx, order); err != nil {
		uow.Rollback()
		return nil, err
	}
	if err := uow.Commit(); err != nil {
		return nil, err
	}

	owner, _ := uow.UserRepository().FindOne(ctx, specification.ByID{ID: company.OwnerUserId})
	initReq := &gateway.InitiateRequest{
		OrderId:      order.Id,
		Amount:       final,
		Currency:     s.defaultCurrencyCode(ctx, uow),
		Description:  fmt.Sprintf("%s plan (%s)", plan.Name, cycle),
		CustomerName: company.Name,
	}
	if owner != nil {
		initReq.CustomerEmail = owner.Email
	}

	handle, err := gw.Initiate(ctx, initReq)
	if err != nil {
		s.logger.Error("BillingService", "Payment initiation failed", map[string]interface{}{
			"order_id": order.Id,
			"method":   req.PaymentMethod,
			"error":    err.Error(),
		})
		// Provider detail stays in the log; the caller gets the bare sentinel.
		return nil, entity.ErrPaymentInitiationFailed
	}

	if handle.GatewayRef != "" {
		order.GatewayRef = &handle.GatewayRef
		order.UpdatedAt = time.Now()
		if err := uow.OrderRepository().Update(ctx, order); err != nil {
			return nil, err
		}
	}

	s.emit(ctx, "ORDER_CREATED", orderEventPayload(order, plan))

	return &dto.CheckoutResponse{
		OrderId:      order.Id,
		Status:       string(order.Status),
		FinalPrice:   final,
		RedirectURL:  handle.RedirectURL,
		ClientToken:  handle.ClientToken,
		Instructions: handle.Instructions,
	}, nil
}

func (s *billingService) RequestPlanChange(ctx context.Context, companyId uuid.UUID, req *dto.PlanChangeRequest) (*dto.RequestResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	plan, err := uow.PlanRepository().FindOne(ctx, specification.ByID{ID: req.PlanId})
	if err != nil {
		return nil, err
	}
	if plan == nil || !plan.IsPlanEnable {
		return nil, errors.New("plan not found")
	}

	pending, err := uow.RequestRepository().FindOne(ctx,
		specification.CompanyOwnedBy{CompanyID: companyId},
		specification.ByStatus{Status: string(entity.OrderStatusPending)},
	)
	if err != nil {
		return nil, err
	}
	if pending != nil {
		return nil, fmt.Errorf("a plan change request is already pending for this company")
	}

	request := &entity.PlanRequest{
		Id:           uuid.New(),
		CompanyId:    companyId,
		PlanId:       plan.Id,
		BillingCycle: entity.BillingCycle(req.BillingCycle),
		Status:       entity.OrderStatusPending,
		CreatedAt:    time.Now(),
		UpdatedAt:    time.Now(),
	}
	if err := uow.RequestRepository().Create(ctx, request); err != nil {
		return nil, err
	}

	s.emit(ctx, "PLAN_REQUEST_SUBMITTED", map[string]interface{}{
		"request_id": request.Id,
		"company_id": companyId,
		"plan_id":    plan.Id,
		"plan_name":  plan.Name,
	})

	return &dto.RequestResponse{
		Id:           request.Id,
		CompanyId:    request.CompanyId,
		PlanId:       request.PlanId,
		PlanName:     plan.Name,
		BillingCycle: string(request.BillingCycle),
		Status:       string(request.Status),
		CreatedAt:    request.CreatedAt,
	}, nil
}

// HandlePaymentCallback verifies and settles one webhook delivery. Deliveries
// are serialized per order through a redis lock; a delivery for an order that
// already completed is acknowledged as a no-op.
func (s *billingService) HandlePaymentCallback(ctx context.Context, method string, payload []byte) error {
	gw, err := s.gateways.Resolve(method)
	if err != nil {
		return err
	}

	result, err := gw.HandleCallback(ctx, payload)
	if err != nil {
		return err
	}

	orderId, err := uuid.Parse(result.OrderRef)
	if err != nil {
		return fmt.Errorf("callback carries malformed order reference %q", result.OrderRef)
	}

	unlock, err := s.lockOrder(ctx, orderId)
	if err != nil {
		return err
	}
	defer unlock()

	uow := s.uowFactory.NewUnitOfWork(ctx)
	order, err := uow.OrderRepository().FindOne(ctx, specification.ByID{ID: orderId})
	if err != nil {
		return err
	}
	if order == nil {
		return fmt.Errorf("order %s not found for %s callback", orderId, method)
	}
	if order.PaymentMethod != method {
		return fmt.Errorf("order %s was not initiated through %s", orderId, method)
	}
	if order.GatewayRef != nil && result.GatewayRef != "" && *order.GatewayRef != result.GatewayRef {
		return fmt.Errorf("gateway reference mismatch for order %s", orderId)
	}

	if order.Status.Terminal() {
		// Gateways redeliver; settling twice is the only real danger.
		s.logger.Info("BillingService", "Duplicate callback ignored", map[string]interface{}{
			"order_id": order.Id,
			"status":   order.Status,
			"outcome":  result.Outcome,
		})
		return nil
	}

	order.GatewayResponse = payload
	if order.GatewayRef == nil && result.GatewayRef != "" {
		order.GatewayRef = &result.GatewayRef
	}

	switch result.Outcome {
	case gateway.OutcomeSuccess:
		return s.completeOrder(ctx, uow, order)
	case gateway.OutcomeFailure:
		if err := order.Transition(entity.OrderStatusRejected); err != nil {
			return err
		}
		order.Notes = fmt.Sprintf("payment failed: %s", result.RawStatus)
		order.UpdatedAt = time.Now()
		if err := uow.OrderRepository().Update(ctx, order); err != nil {
			return err
		}
		s.emit(ctx, "ORDER_REJECTED", orderEventPayload(order, nil))
		return nil
	default:
		order.UpdatedAt = time.Now()
		return uow.OrderRepository().Update(ctx, order)
	}
}

func (s *billingService) ApproveOrder(ctx context.Context, orderId uuid.UUID, notes string) error {
	unlock, err := s.lockOrder(ctx, orderId)
	if err != nil {
		return err
	}
	defer unlock()

	uow := s.uowFactory.NewUnitOfWork(ctx)
	order, err := uow.OrderRepository().FindOne(ctx, specification.ByID{ID: orderId})
	if err != nil {
		return err
	}
	if order == nil {
		return errors.New("order not found")
	}
	order.Notes = notes
	return s.completeOrder(ctx, uow, order)
}

func (s *billingService) RejectOrder(ctx context.Context, orderId uuid.UUID, notes string) error {
	unlock, err := s.lockOrder(ctx, orderId)
	if err != nil {
		return err
	}
	defer unlock()

	uow := s.uowFactory.NewUnitOfWork(ctx)
	order, err := uow.OrderRepository().FindOne(ctx, specification.ByID{ID: orderId})
	if err != nil {
		return err
	}
	if order == nil {
		return errors.New("order not found")
	}
	if err := order.Transition(entity.OrderStatusRejected); err != nil {
		return err
	}
	order.Notes = notes
	order.UpdatedAt = time.Now()
	if err := uow.OrderRepository().Update(ctx, order); err != nil {
		return err
	}
	s.emit(ctx, "ORDER_REJECTED", orderEventPayload(order, nil))
	return nil
}

func (s *billingService) ApproveRequest(ctx context.Context, requestId uuid.UUID, notes string) error {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	request, err := uow.RequestRepository().FindOne(ctx, specification.ByID{ID: requestId})
	if err != nil {
		return err
	}
	if request == nil {
		return errors.New("plan request not found")
	}
	if err := request.Transition(entity.OrderStatusApproved); err != nil {
		return err
	}
	request.Notes = notes
	request.UpdatedAt = time.Now()

	company, err := uow.CompanyRepository().FindOne(ctx, specification.ByID{ID: request.CompanyId})
	if err != nil {
		return err
	}
	if company == nil {
		return errors.New("company not found")
	}
	plan, err := uow.PlanRepository().FindOne(ctx, specification.ByID{ID: request.PlanId})
	if err != nil {
		return err
	}
	if plan == nil {
		return errors.New("plan not found")
	}

	if err := uow.Begin(ctx); err != nil {
		return err
	}
	defer uow.Rollback()

	if err := uow.RequestRepository().Update(ctx, request); err != nil {
		return err
	}
	if _, err := s.activateSubscription(ctx, uow, company, plan, request.BillingCycle, entity.SubscriptionStatusActive, nil); err != nil {
		return err
	}
	if err := uow.Commit(); err != nil {
		return err
	}

	s.emit(ctx, "PLAN_REQUEST_DECIDED", map[string]interface{}{
		"request_id": request.Id,
		"company_id": request.CompanyId,
		"plan_id":    request.PlanId,
		"decision":   string(entity.OrderStatusApproved),
	})
	return nil
}

func (s *billingService) RejectRequest(ctx context.Context, requestId uuid.UUID, notes string) error {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	request, err := uow.RequestRepository().FindOne(ctx, specification.ByID{ID: requestId})
	if err != nil {
		return err
	}
	if request == nil {
		return errors.New("plan request not found")
	}
	if err := request.Transition(entity.OrderStatusRejected); err != nil {
		return err
	}
	request.Notes = notes
	request.UpdatedAt = time.Now()
	if err := uow.RequestRepository().Update(ctx, request); err != nil {
		return err
	}

	s.emit(ctx, "PLAN_REQUEST_DECIDED", map[string]interface{}{
		"request_id": request.Id,
		"company_id": request.CompanyId,
		"plan_id":    request.PlanId,
		"decision":   string(entity.OrderStatusRejected),
	})
	return nil
}

func (s *billingService) CurrentSubscription(ctx context.Context, companyId uuid.UUID) (*dto.SubscriptionResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	subs, err := uow.SubscriptionRepository().FindAll(ctx,
		specification.CompanyOwnedBy{CompanyID: companyId},
		specification.ExpiresAfter{At: time.Now()},
		specification.OrderBy{Field: "starts_at", Desc: true},
	)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	for _, sub := range subs {
		if !sub.ActiveAt(now) {
			continue
		}
		plan, err := uow.PlanRepository().FindOne(ctx, specification.ByID{ID: sub.PlanId})
		if err != nil {
			return nil, err
		}
		return toSubscriptionResponse(sub, plan), nil
	}
	return nil, nil
}

func (s *billingService) PaymentMethods(ctx context.Context) []string {
	return s.gateways.Names()
}

// completeOrder moves a pending order to completed and activates the plan,
// all inside one transaction.
func (s *billingService) completeOrder(ctx context.Context, uow unitofwork.UnitOfWork, order *entity.PlanOrder) error {
	if err := order.Transition(entity.OrderStatusCompleted); err != nil {
		return err
	}
	order.UpdatedAt = time.Now()

	company, err := uow.CompanyRepository().FindOne(ctx, specification.ByID{ID: order.CompanyId})
	if err != nil {
		return err
	}
	if company == nil {
		return errors.New("company not found")
	}
	plan, err := uow.PlanRepository().FindOne(ctx, specification.ByID{ID: order.PlanId})
	if err != nil {
		return err
	}
	if plan == nil {
		return errors.New("plan not found")
	}

	var coupon *entity.Coupon
	if order.CouponCode != nil {
		coupon, err = uow.CouponRepository().FindOne(ctx, specification.ByCode{Code: *order.CouponCode})
		if err != nil {
			return err
		}
	}

	if err := uow.Begin(ctx); err != nil {
		return err
	}
	defer uow.Rollback()

	if err := uow.OrderRepository().Update(ctx, order); err != nil {
		return err
	}
	if err := s.settleOrderLocked(ctx, uow, order, company, plan, coupon); err != nil {
		return err
	}
	if err := uow.Commit(); err != nil {
		return err
	}

	s.emit(ctx, "ORDER_COMPLETED", orderEventPayload(order, plan))
	return nil
}

// settleOrderLocked runs the post-payment side effects inside the caller's
// transaction: coupon ledger, subscription activation, company plan pointer.
func (s *billingService) settleOrderLocked(ctx context.Context, uow unitofwork.UnitOfWork, order *entity.PlanOrder, company *entity.Company, plan *entity.Plan, coupon *entity.Coupon) error {
	if coupon != nil {
		if err := uow.CouponRepository().IncrementUsage(ctx, coupon.Id); err != nil {
			return err
		}
		usage := &entity.CouponUsage{
			Id:        uuid.New(),
			CouponId:  coupon.Id,
			CompanyId: company.Id,
			OrderId:   order.Id,
			CreatedAt: time.Now(),
		}
		if err := uow.CouponRepository().RecordUsage(ctx, usage); err != nil {
			return err
		}
	}

	orderId := order.Id
	_, err := s.activateSubscription(ctx, uow, company, plan, order.BillingCycle, entity.SubscriptionStatusActive, &orderId)
	return err
}

// activateSubscription expires whatever subscription is currently active and
// grants a fresh period. The caller owns the transaction.
func (s *billingService) activateSubscription(ctx context.Context, uow unitofwork.UnitOfWork, company *entity.Company, plan *entity.Plan, cycle entity.BillingCycle, status entity.SubscriptionStatus, orderId *uuid.UUID) (*entity.CompanySubscription, error) {
	now := time.Now()

	current, err := uow.SubscriptionRepository().FindAll(ctx,
		specification.CompanyOwnedBy{CompanyID: company.Id},
		specification.ExpiresAfter{At: now},
	)
	if err != nil {
		return nil, err
	}
	for _, prev := range current {
		if prev.Status == entity.SubscriptionStatusExpired {
			continue
		}
		prev.Status = entity.SubscriptionStatusExpired
		prev.UpdatedAt = now
		if err := uow.SubscriptionRepository().Update(ctx, prev); err != nil {
			return nil, err
		}
	}

	expiresAt := now.AddDate(0, 1, 0)
	switch {
	case status == entity.SubscriptionStatusTrial:
		expiresAt = now.AddDate(0, 0, plan.TrialDay)
	case cycle == entity.BillingCycleYearly:
		expiresAt = now.AddDate(1, 0, 0)
	}

	sub := &entity.CompanySubscription{
		Id:           uuid.New(),
		CompanyId:    company.Id,
		PlanId:       plan.Id,
		BillingCycle: cycle,
		Status:       status,
		StartsAt:     now,
		ExpiresAt:    expiresAt,
		PlanOrderId:  orderId,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := uow.SubscriptionRepository().Create(ctx, sub); err != nil {
		return nil, err
	}

	planId := plan.Id
	company.PlanId = &planId
	company.UpdatedAt = now
	if err := uow.CompanyRepository().Update(ctx, company); err != nil {
		return nil, err
	}

	s.emit(ctx, "SUBSCRIPTION_ACTIVATED", map[string]interface{}{
		"company_id": company.Id,
		"plan_id":    plan.Id,
		"plan_name":  plan.Name,
		"status":     string(status),
		"expires_at": sub.ExpiresAt,
	})
	return sub, nil
}

func (s *billingService) hasActiveSubscription(ctx context.Context, uow unitofwork.UnitOfWork, companyId uuid.UUID) (bool, error) {
	now := time.Now()
	subs, err := uow.SubscriptionRepository().FindAll(ctx,
		specification.CompanyOwnedBy{CompanyID: companyId},
		specification.ExpiresAfter{At: now},
	)
	if err != nil {
		return false, err
	}
	for _, sub := range subs {
		if sub.ActiveAt(now) {
			return true, nil
		}
	}
	return false, nil
}

func (s *billingService) resolveCoupon(ctx context.Context, uow unitofwork.UnitOfWork, code string) (*entity.Coupon, error) {
	coupon, err := uow.CouponRepository().FindOne(ctx, specification.ByCode{Code: code})
	if err != nil {
		return nil, err
	}
	if coupon == nil {
		return nil, fmt.Errorf("%w: code %q not found", entity.ErrCouponInvalid, code)
	}
	if !coupon.Usable(time.Now()) {
		return nil, fmt.Errorf("%w: code %q is expired or exhausted", entity.ErrCouponInvalid, code)
	}
	return coupon, nil
}

func (s *billingService) defaultCurrencyCode(ctx context.Context, uow unitofwork.UnitOfWork) string {
	currency, err := uow.CurrencyRepository().FindOne(ctx, specification.DefaultOnly{})
	if err != nil || currency == nil {
		return "USD"
	}
	return currency.Code
}

// lockOrder serializes settlement work per order. Without redis configured
// the lock degrades to a no-op and the database transition check is the only
// guard, which is still correct for a single instance.
func (s *billingService) lockOrder(ctx context.Context, orderId uuid.UUID) (func(), error) {
	if s.redis == nil {
		return func() {}, nil
	}
	key := fmt.Sprintf("billing:order-lock:%s", orderId)
	ok, err := s.redis.SetNX(ctx, key, "1", callbackLockTTL).Result()
	if err != nil {
		return nil, fmt.Errorf("acquire order lock: %w", err)
	}
	if !ok {
		return nil, fmt.Errorf("order %s is being settled by another delivery", orderId)
	}
	return func() {
		s.redis.Del(context.WithoutCancel(ctx), key)
	}, nil
}

func (s *billingService) emit(ctx context.Context, eventType string, data map[string]interface{}) {
	if s.publisher == nil {
		return
	}
	evt := events.BaseEvent{
		Type:       eventType,
		Data:       data,
		OccurredAt: time.Now(),
	}
	if err := s.publisher.Publish(ctx, evt); err != nil {
		s.logger.Warn("BillingService", "Event publish failed", map[string]interface{}{
			"event": eventType,
			"error": err.Error(),
		})
	}
}

func orderEventPayload(order *entity.PlanOrder, plan *entity.Plan) map[string]interface{} {
	data := map[string]interface{}{
		"order_id":    order.Id,
		"company_id":  order.CompanyId,
		"plan_id":     order.PlanId,
		"cycle":       string(order.BillingCycle),
		"final_price": order.FinalPrice,
		"status":      string(order.Status),
	}
	if plan != nil {
		data["plan_name"] = plan.Name
	}
	return data
}

func toSubscriptionResponse(sub *entity.CompanySubscription, plan *entity.Plan) *dto.SubscriptionResponse {
	res := &dto.SubscriptionResponse{
		Id:           sub.Id,
		PlanId:       sub.PlanId,
		BillingCycle: string(sub.BillingCycle),
		Status:       string(sub.Status),
		StartsAt:     sub.StartsAt,
		ExpiresAt:    sub.ExpiresAt,
	}
	if plan != nil {
		res.PlanName = plan.Name
	}
	return res
}
