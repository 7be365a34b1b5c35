package entity

import (
	"time"

	"github.com/google/uuid"
)

type CompanyStatus string

const (
	CompanyStatusActive    CompanyStatus = "active"
	CompanyStatusSuspended CompanyStatus = "suspended"
)

// Company is a tenant organization subscribing to the platform.
type Company struct {
	Id          uuid.UUID
	Name        string
	OwnerUserId uuid.UUID
	PlanId      *uuid.UUID // currently assigned plan, nil = platform default
	TrialUsed   bool       // tenant-level, not per-plan
	Status      CompanyStatus
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
