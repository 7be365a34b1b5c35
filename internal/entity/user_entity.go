package entity

import (
	"time"

	"github.com/google/uuid"
)

type UserRole string
type UserStatus string

const (
	UserRoleSuperAdmin UserRole = "superadmin"
	UserRoleCompany    UserRole = "company"

	UserStatusActive  UserStatus = "active"
	UserStatusBlocked UserStatus = "blocked"
)

type User struct {
	Id           uuid.UUID
	Email        string
	PasswordHash *string
	FullName     string
	Role         UserRole
	CompanyId    *uuid.UUID // nil for platform super admins
	Status       UserStatus
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
