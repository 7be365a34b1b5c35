package dashboard

import (
	"context"

	"worksuite-be/internal/dto"
	"worksuite-be/internal/entity"
	"worksuite-be/internal/pkg/logger"
	"worksuite-be/internal/repository/specification"
	"worksuite-be/internal/repository/unitofwork"
)

// Aggregator handles dashboard statistics
type Aggregator struct {
	logger logger.ILogger
}

// NewAggregator creates a new dashboard aggregator
func NewAggregator(log logger.ILogger) *Aggregator {
	return &Aggregator{logger: log}
}

// GetStats retrieves the admin dashboard counters.
func (a *Aggregator) GetStats(ctx context.Context, uow unitofwork.UnitOfWork) (*dto.DashboardResponse, error) {
	totalCompanies, err := uow.CompanyRepository().Count(ctx)
	if err != nil {
		return nil, err
	}

	activeSubs, err := uow.SubscriptionRepository().CountActive(ctx)
	if err != nil {
		return nil, err
	}

	pendingOrders, err := uow.OrderRepository().CountByStatus(ctx, entity.OrderStatusPending)
	if err != nil {
		return nil, err
	}

	pendingRequests, err := uow.RequestRepository().CountByStatus(ctx, entity.OrderStatusPending)
	if err != nil {
		return nil, err
	}

	revenue, err := uow.OrderRepository().TotalRevenue(ctx)
	if err != nil {
		return nil, err
	}

	res := &dto.DashboardResponse{
		TotalCompanies:      totalCompanies,
		ActiveSubscriptions: activeSubs,
		PendingOrders:       pendingOrders,
		PendingRequests:     pendingRequests,
		TotalRevenue:        revenue,
	}

	currency, err := uow.CurrencyRepository().FindOne(ctx, specification.DefaultOnly{})
	if err == nil && currency != nil {
		res.RevenueLabel = currency.Format(revenue)
	}
	return res, nil
}
