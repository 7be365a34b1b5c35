package service

import (
	"context"
	"testing"

	"worksuite-be/internal/dto"
	"worksuite-be/internal/entity"
	adminSetting "worksuite-be/pkg/admin/setting"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newAdminFixture(t *testing.T) (*fakeStore, IAdminService) {
	t.Helper()
	store := &fakeStore{}
	settings := adminSetting.NewManager(&fakeSettingRepo{s: store})
	svc := NewAdminService(&fakeFactory{store: store}, settings, nopLogger{})
	return store, svc
}

func boolPtr(b bool) *bool { return &b }

func TestPlanDefaultFlag(t *testing.T) {
	ctx := context.Background()
	store, svc := newAdminFixture(t)

	free, err := svc.CreatePlan(ctx, dto.CreatePlanRequest{
		Name: "Free", Price: 0, MaxUsers: -1, MaxEmployees: -1,
		IsPlanEnable: true, IsDefault: true,
	})
	require.NoError(t, err)

	// A newer default takes the flag over.
	starter, err := svc.CreatePlan(ctx, dto.CreatePlanRequest{
		Name: "Starter", Price: 29, MaxUsers: 10, MaxEmployees: 50,
		IsPlanEnable: true, IsDefault: true,
	})
	require.NoError(t, err)

	var defaults int
	for _, p := range store.plans {
		if p.IsDefault {
			defaults++
			assert.Equal(t, starter.Id, p.Id)
		}
	}
	assert.Equal(t, 1, defaults)

	t.Run("default plan cannot be disabled", func(t *testing.T) {
		_, err := svc.UpdatePlan(ctx, starter.Id, dto.UpdatePlanRequest{IsPlanEnable: boolPtr(false)})
		assert.ErrorIs(t, err, entity.ErrDefaultPlanConflict)
	})

	t.Run("default flag cannot be unset directly", func(t *testing.T) {
		_, err := svc.UpdatePlan(ctx, starter.Id, dto.UpdatePlanRequest{IsDefault: boolPtr(false)})
		assert.ErrorIs(t, err, entity.ErrDefaultPlanConflict)
	})

	t.Run("default plan cannot be deleted", func(t *testing.T) {
		err := svc.DeletePlan(ctx, starter.Id)
		assert.ErrorIs(t, err, entity.ErrDefaultPlanConflict)
	})

	t.Run("plan with subscribers cannot be deleted", func(t *testing.T) {
		store.subscriptions = append(store.subscriptions, &entity.CompanySubscription{
			Id:        uuid.New(),
			CompanyId: uuid.New(),
			PlanId:    free.Id,
			Status:    entity.SubscriptionStatusActive,
		})
		err := svc.DeletePlan(ctx, free.Id)
		assert.Error(t, err)
	})
}

func TestCouponAdmin(t *testing.T) {
	ctx := context.Background()
	store, svc := newAdminFixture(t)

	created, err := svc.CreateCoupon(ctx, dto.CreateCouponRequest{
		Name: "Launch", Code: "launch10", Type: "percentage", Discount: 10, Limit: -1, IsActive: true,
	})
	require.NoError(t, err)
	assert.Equal(t, "LAUNCH10", created.Code)

	t.Run("duplicate code", func(t *testing.T) {
		_, err := svc.CreateCoupon(ctx, dto.CreateCouponRequest{
			Name: "Other", Code: "LAUNCH10", Type: "fixed", Discount: 5, Limit: -1,
		})
		assert.Error(t, err)
	})

	t.Run("percentage above 100", func(t *testing.T) {
		_, err := svc.CreateCoupon(ctx, dto.CreateCouponRequest{
			Name: "Broken", Code: "TOOMUCH", Type: "percentage", Discount: 120, Limit: -1,
		})
		assert.Error(t, err)
	})

	t.Run("used coupon is deactivated instead of deleted", func(t *testing.T) {
		store.coupons[0].UsedCount = 3
		require.NoError(t, svc.DeleteCoupon(ctx, created.Id))
		require.Len(t, store.coupons, 1)
		assert.False(t, store.coupons[0].IsActive)
	})
}

func TestCurrencyDefaultFlag(t *testing.T) {
	ctx := context.Background()
	store, svc := newAdminFixture(t)

	usd, err := svc.CreateCurrency(ctx, dto.CreateCurrencyRequest{
		Name: "US Dollar", Code: "USD", Symbol: "$", DecimalPlaces: 2,
		Position: "before", ThousandsSep: ",", DecimalSep: ".", IsDefault: true,
	})
	require.NoError(t, err)

	_, err = svc.CreateCurrency(ctx, dto.CreateCurrencyRequest{
		Name: "Euro", Code: "EUR", Symbol: "€", DecimalPlaces: 2,
		Position: "after", ThousandsSep: ".", DecimalSep: ",", IsDefault: true,
	})
	require.NoError(t, err)

	var defaults int
	for _, c := range store.currencies {
		if c.IsDefault {
			defaults++
		}
	}
	assert.Equal(t, 1, defaults)

	t.Run("former default can be deleted once replaced", func(t *testing.T) {
		assert.NoError(t, svc.DeleteCurrency(ctx, usd.Id))
	})
}

func TestSettingsRoundTrip(t *testing.T) {
	ctx := context.Background()
	store, svc := newAdminFixture(t)

	err := svc.UpdatePaymentMethod(ctx, dto.PaymentMethodSettingsRequest{
		Method:  "banktransfer",
		Enabled: true,
		Mode:    "live",
		Credentials: map[string]string{
			"bank_name":      "First National",
			"account_number": "12345678",
		},
	})
	require.NoError(t, err)

	res, err := svc.GetSettings(ctx, "payment.banktransfer")
	require.NoError(t, err)
	assert.Equal(t, "true", res.Settings[adminSetting.KeyEnabled])
	assert.Equal(t, "First National", res.Settings["bank_name"])
	assert.NotEmpty(t, store.settings)
}

func TestListOrdersFiltersByStatus(t *testing.T) {
	ctx := context.Background()
	store, svc := newAdminFixture(t)
	company, plan := seedCompanyAndPlan(store)

	store.orders = append(store.orders,
		&entity.PlanOrder{Id: uuid.New(), CompanyId: company.Id, PlanId: plan.Id, Status: entity.OrderStatusPending},
		&entity.PlanOrder{Id: uuid.New(), CompanyId: company.Id, PlanId: plan.Id, Status: entity.OrderStatusCompleted},
	)

	res, err := svc.ListOrders(ctx, dto.OrderListRequest{Status: "pending"})
	require.NoError(t, err)
	require.Len(t, res, 1)
	assert.Equal(t, "pending", res[0].Status)
	assert.Equal(t, "Acme", res[0].CompanyName)

	all, err := svc.ListOrders(ctx, dto.OrderListRequest{})
	require.NoError(t, err)
	assert.Len(t, all, 2)
}
