package unitofwork

import (
	"context"

	"worksuite-be/internal/repository/contract"
)

type UnitOfWork interface {
	Begin(ctx context.Context) error
	Commit() error
	Rollback() error

	PlanRepository() contract.PlanRepository
	OrderRepository() contract.OrderRepository
	RequestRepository() contract.RequestRepository
	CouponRepository() contract.CouponRepository
	CurrencyRepository() contract.CurrencyRepository
	CompanyRepository() contract.CompanyRepository
	SubscriptionRepository() contract.SubscriptionRepository
	SettingRepository() contract.SettingRepository
	UserRepository() contract.UserRepository
}
