package entity

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestPlanYearlyAmount(t *testing.T) {
	t.Run("derived from monthly price when yearly not set", func(t *testing.T) {
		plan := &Plan{Price: 100}
		assert.InDelta(t, 960.0, plan.YearlyAmount(), 0.001) // 100 * 12 * 0.8
	})

	t.Run("explicit yearly price wins", func(t *testing.T) {
		yearly := 1100.0
		plan := &Plan{Price: 100, YearlyPrice: &yearly}
		assert.Equal(t, 1100.0, plan.YearlyAmount())
	})
}

func TestPlanPriceFor(t *testing.T) {
	plan := &Plan{Price: 50}
	assert.Equal(t, 50.0, plan.PriceFor(BillingCycleMonthly))
	assert.InDelta(t, 480.0, plan.PriceFor(BillingCycleYearly), 0.001)
}

func TestCouponDiscountOn(t *testing.T) {
	t.Run("fixed discount clamps at zero", func(t *testing.T) {
		coupon := &Coupon{Type: CouponTypeFixed, Discount: 150}
		assert.Equal(t, 100.0, coupon.DiscountOn(100)) // never below zero
	})

	t.Run("percentage discount", func(t *testing.T) {
		coupon := &Coupon{Type: CouponTypePercentage, Discount: 25}
		assert.InDelta(t, 50.0, coupon.DiscountOn(200), 0.001)
	})
}

func TestCouponUsable(t *testing.T) {
	now := time.Now()
	past := now.Add(-time.Hour)
	future := now.Add(time.Hour)

	t.Run("inactive", func(t *testing.T) {
		c := &Coupon{IsActive: false, Limit: -1}
		assert.False(t, c.Usable(now))
	})

	t.Run("expired", func(t *testing.T) {
		c := &Coupon{IsActive: true, Limit: -1, ExpiresAt: &past}
		assert.False(t, c.Usable(now))
	})

	t.Run("exhausted", func(t *testing.T) {
		c := &Coupon{IsActive: true, Limit: 5, UsedCount: 5}
		assert.False(t, c.Usable(now))
	})

	t.Run("usable", func(t *testing.T) {
		c := &Coupon{IsActive: true, Limit: 5, UsedCount: 4, ExpiresAt: &future}
		assert.True(t, c.Usable(now))
	})
}

func TestCurrencyFormat(t *testing.T) {
	usd := &Currency{Symbol: "$", DecimalPlaces: 2, Position: SymbolPositionBefore, ThousandsSep: ",", DecimalSep: "."}
	assert.Equal(t, "$1,234,567.89", usd.Format(1234567.89))
	assert.Equal(t, "$0.00", usd.Format(0))
	assert.Equal(t, "$-1,000.50", usd.Format(-1000.5))

	eur := &Currency{Symbol: "€", DecimalPlaces: 2, Position: SymbolPositionAfter, ThousandsSep: ".", DecimalSep: ","}
	assert.Equal(t, "9.999,00€", eur.Format(9999))
}
