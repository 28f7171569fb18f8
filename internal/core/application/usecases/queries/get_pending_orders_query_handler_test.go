package queries_test

import (
	"context"
	"testing"
	"time"

	"storefront/internal/adapters/out/postgres/orderrepo"
	"storefront/internal/core/application/usecases/queries"
	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/core/domain/model/order"

	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	gorm_postgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

type GetPendingOrdersQueryHandlerTestSuite struct {
	suite.Suite
	container *postgres.PostgresContainer
	db        *gorm.DB
	handler   queries.GetPendingOrdersQueryHandler
	orderRepo *orderrepo.GormOrderRepository
}

func (suite *GetPendingOrdersQueryHandlerTestSuite) SetupSuite() {
	ctx := context.Background()

	container, err := postgres.Run(ctx,
		"postgres:15-alpine",
		postgres.WithDatabase("testdb"),
		postgres.WithUsername("testuser"),
		postgres.WithPassword("testpass"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second),
		),
	)
	suite.Require().NoError(err)
	suite.container = container

	dsn, err := container.ConnectionString(ctx, "sslmode=disable")
	suite.Require().NoError(err)

	db, err := gorm.Open(gorm_postgres.Open(dsn), &gorm.Config{})
	suite.Require().NoError(err)
	suite.db = db

	err = db.AutoMigrate(&orderrepo.OrderDTO{})
	suite.Require().NoError(err)

	suite.handler = queries.NewGetPendingOrdersQueryHandler(db)
	suite.orderRepo = orderrepo.NewGormOrderRepository(db, &mockAggregateTracker{})
}

func (suite *GetPendingOrdersQueryHandlerTestSuite) TearDownSuite() {
	if suite.container != nil {
		err := suite.container.Terminate(context.Background())
		suite.Require().NoError(err)
	}
}

func (suite *GetPendingOrdersQueryHandlerTestSuite) SetupTest() {
	err := suite.db.Exec("TRUNCATE TABLE orders").Error
	suite.Require().NoError(err)
}

func (suite *GetPendingOrdersQueryHandlerTestSuite) TestHandle_EmptyDatabase_ReturnsEmptySlice() {
	query, err := queries.NewGetPendingOrdersQuery(time.Now().UTC())
	suite.Require().NoError(err)

	result, err := suite.handler.Handle(context.Background(), query)

	suite.Require().NoError(err)
	suite.NotNil(result)
	suite.Empty(result)
}

func (suite *GetPendingOrdersQueryHandlerTestSuite) TestHandle_ReturnsOnlyExpiredPendingOrders() {
	ctx := context.Background()
	now := time.Now().UTC()

	oldest := suite.seedOrder(order.Pending, now.Add(-3*time.Hour))
	stale := suite.seedOrder(order.Pending, now.Add(-2*time.Hour))
	suite.seedOrder(order.Pending, now)                     // fresh hold
	suite.seedOrder(order.Cancelled, now.Add(-3*time.Hour)) // already released
	suite.seedOrder(order.Confirmed, now.Add(-3*time.Hour)) // hold already converted

	query, err := queries.NewGetPendingOrdersQuery(now.Add(-time.Hour))
	suite.Require().NoError(err)

	result, err := suite.handler.Handle(ctx, query)

	suite.Require().NoError(err)
	suite.Require().Len(result, 2)

	// Oldest expired hold comes first
	suite.True(result[0].ID.IsEqual(oldest.ID()))
	suite.True(result[0].CustomerID.IsEqual(oldest.CustomerID()))
	suite.True(result[1].ID.IsEqual(stale.ID()))
}

func (suite *GetPendingOrdersQueryHandlerTestSuite) seedOrder(status order.Status, createdAt time.Time) *order.Order {
	total, err := kernel.NewMoneyFromString("100.00")
	suite.Require().NoError(err)

	seeded, err := order.RestoreOrder(
		kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(),
		status, order.PaymentNotPaid,
		total, order.Shipping{}, false, nil,
		createdAt,
	)
	suite.Require().NoError(err)
	suite.Require().NoError(suite.orderRepo.Add(context.Background(), seeded))
	return seeded
}

func TestGetPendingOrdersQueryHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(GetPendingOrdersQueryHandlerTestSuite))
}
