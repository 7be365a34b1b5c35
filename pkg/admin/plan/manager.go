package plan

import (
	"context"
	"fmt"

	"worksuite-be/internal/dto"
	"worksuite-be/internal/entity"
	"worksuite-be/internal/repository/specification"
	"worksuite-be/internal/repository/unitofwork"

	"github.com/google/uuid"
)

// Manager handles plan catalog admin operations
type Manager struct{}

// NewManager creates a new plan manager
func NewManager() *Manager {
	return &Manager{}
}

// Create creates a new plan. Marking it default clears the flag from every
// other plan inside the same transaction.
func (m *Manager) Create(ctx context.Context, uow unitofwork.UnitOfWork, req dto.CreatePlanRequest) (*entity.Plan, error) {
	plan := &entity.Plan{
		Id:            uuid.New(),
		Name:          req.Name,
		Description:   req.Description,
		Price:         req.Price,
		YearlyPrice:   req.YearlyPrice,
		MaxUsers:      req.MaxUsers,
		MaxEmployees:  req.MaxEmployees,
		StorageLimit:  req.StorageLimit,
		EnableChatGPT: req.EnableChatGPT,
		IsTrial:       req.IsTrial,
		TrialDay:      req.TrialDay,
		IsPlanEnable:  req.IsPlanEnable,
		IsDefault:     req.IsDefault,
		SortOrder:     req.SortOrder,
	}

	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}
	defer uow.Rollback()

	if err := uow.PlanRepository().Create(ctx, plan); err != nil {
		return nil, err
	}
	if plan.IsDefault {
		if err := uow.PlanRepository().ClearDefault(ctx, plan.Id); err != nil {
			return nil, err
		}
	}
	if err := uow.Commit(); err != nil {
		return nil, err
	}
	return plan, nil
}

// Update applies a partial update to a plan.
func (m *Manager) Update(ctx context.Context, uow unitofwork.UnitOfWork, id uuid.UUID, req dto.UpdatePlanRequest) (*entity.Plan, error) {
	plan, err := uow.PlanRepository().FindOne(ctx, specification.ByID{ID: id})
	if err != nil {
		return nil, err
	}
	if plan == nil {
		return nil, fmt.Errorf("plan not found")
	}

	if req.Name != nil {
		plan.Name = *req.Name
	}
	if req.Description != nil {
		plan.Description = *req.Description
	}
	if req.Price != nil {
		plan.Price = *req.Price
	}
	if req.YearlyPrice != nil {
		plan.YearlyPrice = req.YearlyPrice
	}
	if req.MaxUsers != nil {
		plan.MaxUsers = *req.MaxUsers
	}
	if req.MaxEmployees != nil {
		plan.MaxEmployees = *req.MaxEmployees
	}
	if req.StorageLimit != nil {
		plan.StorageLimit = *req.StorageLimit
	}
	if req.EnableChatGPT != nil {
		plan.EnableChatGPT = *req.EnableChatGPT
	}
	if req.IsTrial != nil {
		plan.IsTrial = *req.IsTrial
	}
	if req.TrialDay != nil {
		plan.TrialDay = *req.TrialDay
	}
	if req.SortOrder != nil {
		plan.SortOrder = *req.SortOrder
	}

	// The default plan must stay enabled and must stay default until another
	// plan takes over the flag.
	if req.IsPlanEnable != nil {
		if plan.IsDefault && !*req.IsPlanEnable {
			return nil, fmt.Errorf("%w: cannot disable the default plan", entity.ErrDefaultPlanConflict)
		}
		plan.IsPlanEnable = *req.IsPlanEnable
	}
	if req.IsDefault != nil {
		if plan.IsDefault && !*req.IsDefault {
			return nil, fmt.Errorf("%w: mark another plan default instead", entity.ErrDefaultPlanConflict)
		}
		plan.IsDefault = *req.IsDefault
	}

	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}
	defer uow.Rollback()

	if err := uow.PlanRepository().Update(ctx, plan); err != nil {
		return nil, err
	}
	if plan.IsDefault {
		if err := uow.PlanRepository().ClearDefault(ctx, plan.Id); err != nil {
			return nil, err
		}
	}
	if err := uow.Commit(); err != nil {
		return nil, err
	}
	return plan, nil
}

// Delete removes a plan unless it is the default or still has subscribers.
func (m *Manager) Delete(ctx context.Context, uow unitofwork.UnitOfWork, id uuid.UUID) error {
	plan, err := uow.PlanRepository().FindOne(ctx, specification.ByID{ID: id})
	if err != nil {
		return err
	}
	if plan == nil {
		return fmt.Errorf("plan not found")
	}
	if plan.IsDefault {
		return fmt.Errorf("%w: the default plan cannot be deleted", entity.ErrDefaultPlanConflict)
	}

	subscribers, err := uow.PlanRepository().CountSubscribers(ctx, id)
	if err != nil {
		return err
	}
	if subscribers > 0 {
		return fmt.Errorf("%w: plan still has %d active subscribers", entity.ErrDefaultPlanConflict, subscribers)
	}

	return uow.PlanRepository().Delete(ctx, id)
}

// List returns every plan including disabled ones, with subscriber counts.
func (m *Manager) List(ctx context.Context, uow unitofwork.UnitOfWork) ([]*entity.Plan, map[uuid.UUID]int64, error) {
	plans, err := uow.PlanRepository().FindAll(ctx, specification.OrderBy{Field: "sort_order"})
	if err != nil {
		return nil, nil, err
	}

	counts := make(map[uuid.UUID]int64, len(plans))
	for _, p := range plans {
		n, err := uow.PlanRepository().CountSubscribers(ctx, p.Id)
		if err != nil {
			return nil, nil, err
		}
		counts[p.Id] = n
	}
	return plans, counts, nil
}
