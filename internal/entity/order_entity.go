package entity

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

type OrderStatus string

const (
	OrderStatusPending OrderStatus = "pending"
	// Approved is the terminal state of a PlanRequest decision. Paid orders
	// skip it and settle straight to completed or rejected.
	OrderStatusApproved  OrderStatus = "approved"
	OrderStatusCompleted OrderStatus = "completed"
	OrderStatusRejected  OrderStatus = "rejected"
)

// Terminal reports whether the status absorbs all further transitions.
func (s OrderStatus) Terminal() bool {
	return s == OrderStatusApproved || s == OrderStatusCompleted || s == OrderStatusRejected
}

// PlanOrder is a paid checkout attempt tied to a gateway transaction.
// Once a terminal status is reached the record is immutable.
type PlanOrder struct {
	Id             uuid.UUID
	CompanyId      uuid.UUID
	PlanId         uuid.UUID
	BillingCycle   BillingCycle
	OriginalPrice  float64
	DiscountAmount float64
	FinalPrice     float64
	CouponCode     *string
	PaymentMethod  string
	GatewayRef     *string // reference the adapter reported back (txn id, session id)
	// Raw callback payload kept for dispute handling
	GatewayResponse []byte
	Status          OrderStatus
	Notes           string // rejection reason
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// Transition moves the order from pending into a terminal state. Any attempt
// to leave a terminal state fails with ErrInvalidStateTransition; the caller
// decides whether that is a conflict to surface or a duplicate to ignore.
func (o *PlanOrder) Transition(to OrderStatus) error {
	if o.Status.Terminal() {
		return fmt.Errorf("%w: order %s is already %s", ErrInvalidStateTransition, o.Id, o.Status)
	}
	if !to.Terminal() {
		return fmt.Errorf("%w: order %s cannot move from %s to %s", ErrInvalidStateTransition, o.Id, o.Status, to)
	}
	o.Status = to
	return nil
}

// PlanRequest is a non-payment plan change awaiting a single admin decision.
type PlanRequest struct {
	Id           uuid.UUID
	CompanyId    uuid.UUID
	PlanId       uuid.UUID
	BillingCycle BillingCycle
	Status       OrderStatus // pending -> approved | rejected
	Notes        string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// Transition applies the single-shot admin decision.
func (r *PlanRequest) Transition(to OrderStatus) error {
	if r.Status.Terminal() {
		return fmt.Errorf("%w: request %s is already %s", ErrInvalidStateTransition, r.Id, r.Status)
	}
	if to != OrderStatusApproved && to != OrderStatusRejected {
		return fmt.Errorf("%w: request %s cannot move from %s to %s", ErrInvalidStateTransition, r.Id, r.Status, to)
	}
	r.Status = to
	return nil
}
