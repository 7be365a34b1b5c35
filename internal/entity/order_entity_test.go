package entity

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestPlanOrderTransition(t *testing.T) {
	t.Run("pending order can complete", func(t *testing.T) {
		order := &PlanOrder{Id: uuid.New(), Status: OrderStatusPending}
		err := order.Transition(OrderStatusCompleted)
		assert.NoError(t, err)
		assert.Equal(t, OrderStatusCompleted, order.Status)
	})

	t.Run("pending order can be rejected", func(t *testing.T) {
		order := &PlanOrder{Id: uuid.New(), Status: OrderStatusPending}
		err := order.Transition(OrderStatusRejected)
		assert.NoError(t, err)
		assert.Equal(t, OrderStatusRejected, order.Status)
	})

	t.Run("terminal order rejects any further transition", func(t *testing.T) {
		for _, terminal := range []OrderStatus{OrderStatusApproved, OrderStatusCompleted, OrderStatusRejected} {
			order := &PlanOrder{Id: uuid.New(), Status: terminal}
			err := order.Transition(OrderStatusCompleted)
			assert.ErrorIs(t, err, ErrInvalidStateTransition)
			assert.Equal(t, terminal, order.Status, "status must not mutate on failed transition")
		}
	})

	t.Run("order cannot transition back to pending", func(t *testing.T) {
		order := &PlanOrder{Id: uuid.New(), Status: OrderStatusPending}
		err := order.Transition(OrderStatusPending)
		assert.ErrorIs(t, err, ErrInvalidStateTransition)
	})
}

func TestPlanRequestTransition(t *testing.T) {
	t.Run("single shot approval", func(t *testing.T) {
		req := &PlanRequest{Id: uuid.New(), Status: OrderStatusPending}
		assert.NoError(t, req.Transition(OrderStatusApproved))

		err := req.Transition(OrderStatusRejected)
		assert.ErrorIs(t, err, ErrInvalidStateTransition)
		assert.Equal(t, OrderStatusApproved, req.Status)
	})

	t.Run("request cannot complete directly", func(t *testing.T) {
		req := &PlanRequest{Id: uuid.New(), Status: OrderStatusPending}
		err := req.Transition(OrderStatusCompleted)
		assert.ErrorIs(t, err, ErrInvalidStateTransition)
	})
}
