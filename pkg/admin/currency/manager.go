package currency

import (
	"context"
	"fmt"
	"strings"

	"worksuite-be/internal/dto"
	"worksuite-be/internal/entity"
	"worksuite-be/internal/repository/specification"
	"worksuite-be/internal/repository/unitofwork"

	"github.com/google/uuid"
)

// Manager handles currency admin operations
type Manager struct{}

// NewManager creates a new currency manager
func NewManager() *Manager {
	return &Manager{}
}

// Create registers a currency. Setting it default clears the flag from the
// previous default inside the same transaction.
func (m *Manager) Create(ctx context.Context, uow unitofwork.UnitOfWork, req dto.CreateCurrencyRequest) (*entity.Currency, error) {
	code := strings.ToUpper(req.Code)

	existing, err := uow.CurrencyRepository().FindOne(ctx, specification.ByCode{Code: code})
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, fmt.Errorf("currency %s already exists", code)
	}

	currency := &entity.Currency{
		Id:            uuid.New(),
		Name:          req.Name,
		Code:          code,
		Symbol:        req.Symbol,
		DecimalPlaces: req.DecimalPlaces,
		Position:      entity.SymbolPosition(req.Position),
		ThousandsSep:  req.ThousandsSep,
		DecimalSep:    req.DecimalSep,
		IsDefault:     req.IsDefault,
	}

	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}
	defer uow.Rollback()

	if err := uow.CurrencyRepository().Create(ctx, currency); err != nil {
		return nil, err
	}
	if currency.IsDefault {
		if err := uow.CurrencyRepository().ClearDefault(ctx, currency.Id); err != nil {
			return nil, err
		}
	}
	if err := uow.Commit(); err != nil {
		return nil, err
	}
	return currency, nil
}

// Update applies a partial update to a currency.
func (m *Manager) Update(ctx context.Context, uow unitofwork.UnitOfWork, id uuid.UUID, req dto.UpdateCurrencyRequest) (*entity.Currency, error) {
	currency, err := uow.CurrencyRepository().FindOne(ctx, specification.ByID{ID: id})
	if err != nil {
		return nil, err
	}
	if currency == nil {
		return nil, fmt.Errorf("currency not found")
	}

	if req.Name != nil {
		currency.Name = *req.Name
	}
	if req.Symbol != nil {
		currency.Symbol = *req.Symbol
	}
	if req.DecimalPlaces != nil {
		currency.DecimalPlaces = *req.DecimalPlaces
	}
	if req.Position != nil {
		currency.Position = entity.SymbolPosition(*req.Position)
	}
	if req.ThousandsSep != nil {
		currency.ThousandsSep = *req.ThousandsSep
	}
	if req.DecimalSep != nil {
		currency.DecimalSep = *req.DecimalSep
	}
	if req.IsDefault != nil {
		if currency.IsDefault && !*req.IsDefault {
			return nil, fmt.Errorf("%w: mark another currency default instead", entity.ErrDefaultCurrencyConflict)
		}
		currency.IsDefault = *req.IsDefault
	}

	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}
	defer uow.Rollback()

	if err := uow.CurrencyRepository().Update(ctx, currency); err != nil {
		return nil, err
	}
	if currency.IsDefault {
		if err := uow.CurrencyRepository().ClearDefault(ctx, currency.Id); err != nil {
			return nil, err
		}
	}
	if err := uow.Commit(); err != nil {
		return nil, err
	}
	return currency, nil
}

// Delete removes a currency; the default currency is protected.
func (m *Manager) Delete(ctx context.Context, uow unitofwork.UnitOfWork, id uuid.UUID) error {
	currency, err := uow.CurrencyRepository().FindOne(ctx, specification.ByID{ID: id})
	if err != nil {
		return err
	}
	if currency == nil {
		return fmt.Errorf("currency not found")
	}
	if currency.IsDefault {
		return fmt.Errorf("%w: the default currency cannot be deleted", entity.ErrDefaultCurrencyConflict)
	}
	return uow.CurrencyRepository().Delete(ctx, id)
}

// List returns every registered currency.
func (m *Manager) List(ctx context.Context, uow unitofwork.UnitOfWork) ([]*entity.Currency, error) {
	return uow.CurrencyRepository().FindAll(ctx, specification.OrderBy{Field: "code"})
}
