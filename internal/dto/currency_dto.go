package dto

import (
	"time"

	"github.com/google/uuid"
)

type CreateCurrencyRequest struct {
	Name          string `json:"name" validate:"required"`
	Code          string `json:"code" validate:"required,len=3,uppercase"`
	Symbol        string `json:"symbol" validate:"required"`
	DecimalPlaces int    `json:"decimal_places" validate:"min=0,max=4"`
	Position      string `json:"position" validate:"required,oneof=before after"`
	ThousandsSep  string `json:"thousands_sep"`
	DecimalSep    string `json:"decimal_sep" validate:"required"`
	IsDefault     bool   `json:"is_default"`
}

type UpdateCurrencyRequest struct {
	Name          *string `json:"name"`
	Symbol        *string `json:"symbol"`
	DecimalPlaces *int    `json:"decimal_places" validate:"omitempty,min=0,max=4"`
	Position      *string `json:"position" validate:"omitempty,oneof=before after"`
	ThousandsSep  *string `json:"thousands_sep"`
	DecimalSep    *string `json:"decimal_sep"`
	IsDefault     *bool   `json:"is_default"`
}

type CurrencyResponse struct {
	Id            uuid.UUID `json:"id"`
	Name          string    `json:"name"`
	Code          string    `json:"code"`
	Symbol        string    `json:"symbol"`
	DecimalPlaces int       `json:"decimal_places"`
	Position      string    `json:"position"`
	ThousandsSep  string    `json:"thousands_sep"`
	DecimalSep    string    `json:"decimal_sep"`
	IsDefault     bool      `json:"is_default"`
	CreatedAt     time.Time `json:"created_at"`
}
