package entity

import "errors"

// Billing domain errors. Services wrap these with context via %w so callers
// can match with errors.Is and controllers can map them to HTTP statuses.
var (
	ErrAlreadyUsedTrial        = errors.New("trial already used")
	ErrInvalidStateTransition  = errors.New("invalid state transition")
	ErrPaymentInitiationFailed = errors.New("payment initiation failed")
	ErrCouponInvalid           = errors.New("coupon invalid")
	ErrDefaultPlanConflict     = errors.New("default plan conflict")
	ErrDefaultCurrencyConflict = errors.New("default currency conflict")
)
