package mapper

import (
	"worksuite-be/internal/entity"
	"worksuite-be/internal/model"
)

type CurrencyMapper struct{}

func NewCurrencyMapper() *CurrencyMapper {
	return &CurrencyMapper{}
}

func (m *CurrencyMapper) ToEntity(c *model.Currency) *entity.Currency {
	if c == nil {
		return nil
	}
	return &entity.Currency{
		Id:            c.Id,
		Name:          c.Name,
		Code:          c.Code,
		Symbol:        c.Symbol,
		DecimalPlaces: c.DecimalPlaces,
		Position:      entity.SymbolPosition(c.Position),
		ThousandsSep:  c.ThousandsSep,
		DecimalSep:    c.DecimalSep,
		IsDefault:     c.IsDefault,
		CreatedAt:     c.CreatedAt,
		UpdatedAt:     c.UpdatedAt,
	}
}

func (m *CurrencyMapper) ToModel(c *entity.Currency) *model.Currency {
	if c == nil {
		return nil
	}
	return &model.Currency{
		Id:            c.Id,
		Name:          c.Name,
		Code:          c.Code,
		Symbol:        c.Symbol,
		DecimalPlaces: c.DecimalPlaces,
		Position:      string(c.Position),
		ThousandsSep:  c.ThousandsSep,
		DecimalSep:    c.DecimalSep,
		IsDefault:     c.IsDefault,
		CreatedAt:     c.CreatedAt,
		UpdatedAt:     c.UpdatedAt,
	}
}
