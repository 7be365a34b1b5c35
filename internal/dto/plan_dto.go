package dto

import (
	"time"

	"github.com/google/uuid"
)

type CreatePlanRequest struct {
	Name          string   `json:"name" validate:"required,min=2"`
	Description   string   `json:"description"`
	Price         float64  `json:"price" validate:"gte=0"`
	YearlyPrice   *float64 `json:"yearly_price" validate:"omitempty,gte=0"`
	MaxUsers      int      `json:"max_users" validate:"required,min=-1"`
	MaxEmployees  int      `json:"max_employees" validate:"required,min=-1"`
	StorageLimit  int64    `json:"storage_limit" validate:"gte=0"`
	EnableChatGPT bool     `json:"enable_chatgpt"`
	IsTrial       bool     `json:"is_trial"`
	TrialDay      int      `json:"trial_day" validate:"gte=0"`
	IsPlanEnable  bool     `json:"is_plan_enable"`
	IsDefault     bool     `json:"is_default"`
	SortOrder     int      `json:"sort_order"`
}

type UpdatePlanRequest struct {
	Name          *string  `json:"name" validate:"omitempty,min=2"`
	Description   *string  `json:"description"`
	Price         *float64 `json:"price" validate:"omitempty,gte=0"`
	YearlyPrice   *float64 `json:"yearly_price" validate:"omitempty,gte=0"`
	MaxUsers      *int     `json:"max_users" validate:"omitempty,min=-1"`
	MaxEmployees  *int     `json:"max_employees" validate:"omitempty,min=-1"`
	StorageLimit  *int64   `json:"storage_limit" validate:"omitempty,gte=0"`
	EnableChatGPT *bool    `json:"enable_chatgpt"`
	IsTrial       *bool    `json:"is_trial"`
	TrialDay      *int     `json:"trial_day" validate:"omitempty,gte=0"`
	IsPlanEnable  *bool    `json:"is_plan_enable"`
	IsDefault     *bool    `json:"is_default"`
	SortOrder     *int     `json:"sort_order"`
}

type PlanResponse struct {
	Id            uuid.UUID `json:"id"`
	Name          string    `json:"name"`
	Description   string    `json:"description"`
	Price         float64   `json:"price"`
	YearlyPrice   float64   `json:"yearly_price"`
	MonthlyLabel  string    `json:"monthly_label"` // formatted in the default currency
	YearlyLabel   string    `json:"yearly_label"`
	MaxUsers      int       `json:"max_users"`
	MaxEmployees  int       `json:"max_employees"`
	StorageLimit  int64     `json:"storage_limit"`
	EnableChatGPT bool      `json:"enable_chatgpt"`
	IsTrial       bool      `json:"is_trial"`
	TrialDay      int       `json:"trial_day"`
	IsPlanEnable  bool      `json:"is_plan_enable"`
	IsDefault     bool      `json:"is_default"`
	SortOrder     int       `json:"sort_order"`
	Subscribers   int64     `json:"subscribers,omitempty"` // admin listing only
	CreatedAt     time.Time `json:"created_at"`
}
