package entity

import (
	"time"

	"github.com/google/uuid"
)

type SubscriptionStatus string

const (
	SubscriptionStatusActive  SubscriptionStatus = "active"
	SubscriptionStatusTrial   SubscriptionStatus = "trial"
	SubscriptionStatusExpired SubscriptionStatus = "expired"
)

// CompanySubscription is one granted plan period for a tenant. Activating a
// new subscription expires any prior one; history is append-only.
type CompanySubscription struct {
	Id           uuid.UUID
	CompanyId    uuid.UUID
	PlanId       uuid.UUID
	BillingCycle BillingCycle
	Status       SubscriptionStatus
	StartsAt     time.Time
	ExpiresAt    time.Time
	PlanOrderId  *uuid.UUID // nil for trials and admin grants
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// ActiveAt reports whether the subscription grants access at the given time.
func (s *CompanySubscription) ActiveAt(now time.Time) bool {
	if s.Status == SubscriptionStatusExpired {
		return false
	}
	return !now.Before(s.StartsAt) && now.Before(s.ExpiresAt)
}
