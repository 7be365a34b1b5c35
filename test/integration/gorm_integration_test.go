package integration

import (
	"context"
	"log"
	"os"
	"testing"
	"time"

	"worksuite-be/internal/entity"
	"worksuite-be/internal/repository/specification"
	"worksuite-be/internal/repository/unitofwork"
	"worksuite-be/pkg/database"

	"github.com/google/uuid"
	"github.com/joho/godotenv"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGormConnection(t *testing.T) {
	err := godotenv.Load("../../.env")
	if err != nil {
		log.Println("No .env file found, using system env")
	}

	dsn := os.Getenv("DB_CONNECTION_STRING")
	if dsn == "" {
		t.Skip("Skipping integration test: DB_CONNECTION_STRING not set")
	}

	gormDB, err := database.NewGormDBFromDSN(dsn)
	if err != nil {
		t.Fatalf("Failed to connect to DB: %v", err)
	}

	uowFactory := unitofwork.NewRepositoryFactory(gormDB)
	uow := uowFactory.NewUnitOfWork(context.Background())

	assert.NotNil(t, uow.UserRepository())
	assert.NotNil(t, uow.SubscriptionRepository())

	sqlDB, _ := gormDB.DB()
	err = sqlDB.Ping()
	assert.NoError(t, err)
	t.Log("Successfully connected to DB and initialized UnitOfWork Factory")

	t.Run("Check Company Repository", func(t *testing.T) {
		count, err := uow.CompanyRepository().Count(context.Background())
		assert.NoError(t, err)
		t.Logf("Company count: %d", count)
	})

	t.Run("Check Transactional Subscription Activation", func(t *testing.T) {
		ctx := context.Background()
		uow := uowFactory.NewUnitOfWork(ctx)

		userId := uuid.New()
		user := &entity.User{
			Id:       userId,
			Email:    "test-integration-" + uuid.New().String() + "@example.com",
			FullName: "Integration Test User",
			Role:     entity.UserRoleCompany,
			Status:   entity.UserStatusActive,
		}
		company := &entity.Company{
			Id:          uuid.New(),
			Name:        "Integration Test Co " + uuid.New().String()[:8],
			OwnerUserId: userId,
			Status:      entity.CompanyStatusActive,
		}
		plan := &entity.Plan{
			Id:           uuid.New(),
			Name:         "Integration Plan " + uuid.New().String()[:8],
			Price:        10,
			MaxUsers:     5,
			MaxEmployees: 10,
			IsPlanEnable: true,
		}

		require.NoError(t, uow.Begin(ctx))
		defer uow.Rollback()

		require.NoError(t, uow.UserRepository().Create(ctx, user))
		require.NoError(t, uow.CompanyRepository().Create(ctx, company))
		require.NoError(t, uow.PlanRepository().Create(ctx, plan))

		sub := &entity.CompanySubscription{
			Id:           uuid.New(),
			CompanyId:    company.Id,
			PlanId:       plan.Id,
			BillingCycle: entity.BillingCycleMonthly,
			Status:       entity.SubscriptionStatusActive,
			StartsAt:     time.Now(),
			ExpiresAt:    time.Now().AddDate(0, 1, 0),
		}
		require.NoError(t, uow.SubscriptionRepository().Create(ctx, sub))

		found, err := uow.SubscriptionRepository().FindOne(ctx,
			specification.CompanyOwnedBy{CompanyID: company.Id},
		)
		require.NoError(t, err)
		require.NotNil(t, found)
		assert.Equal(t, sub.Id, found.Id)

		// Rollback in the deferred call keeps the database clean.
	})
}
