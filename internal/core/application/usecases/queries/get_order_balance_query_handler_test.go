package queries_test

import (
	"context"
	"testing"
	"time"

	"storefront/internal/adapters/out/postgres/ledgerrepo"
	"storefront/internal/core/application/usecases/queries"
	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/core/domain/model/ledger"

	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	gorm_postgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// mockAggregateTracker is a no-op tracker for seeding read-side tests.
type mockAggregateTracker struct{}

func (m *mockAggregateTracker) TrackAggregate(_ kernel.UUID, _ any) {}

type GetOrderBalanceQueryHandlerTestSuite struct {
	suite.Suite
	container  *postgres.PostgresContainer
	db         *gorm.DB
	handler    queries.GetOrderBalanceQueryHandler
	ledgerRepo *ledgerrepo.GormLedgerRepository
}

func (suite *GetOrderBalanceQueryHandlerTestSuite) SetupSuite() {
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

	err = db.AutoMigrate(&ledgerrepo.EntryDTO{})
	suite.Require().NoError(err)

	suite.handler = queries.NewGetOrderBalanceQueryHandler(db)
	suite.ledgerRepo = ledgerrepo.NewGormLedgerRepository(db, &mockAggregateTracker{})
}

func (suite *GetOrderBalanceQueryHandlerTestSuite) TearDownSuite() {
	if suite.container != nil {
		err := suite.container.Terminate(context.Background())
		suite.Require().NoError(err)
	}
}

func (suite *GetOrderBalanceQueryHandlerTestSuite) SetupTest() {
	err := suite.db.Exec("TRUNCATE TABLE ledger_entries").Error
	suite.Require().NoError(err)
}

func (suite *GetOrderBalanceQueryHandlerTestSuite) TestHandle_NoEntries_ReturnsZero() {
	orderID := kernel.NewUUID()
	query, err := queries.NewGetOrderBalanceQuery(orderID)
	suite.Require().NoError(err)

	result, err := suite.handler.Handle(context.Background(), query)

	suite.Require().NoError(err)
	suite.True(result.OrderID.IsEqual(orderID))
	suite.True(result.Balance.IsZero())
	suite.True(result.PaidAmount.IsZero())
}

func (suite *GetOrderBalanceQueryHandlerTestSuite) TestHandle_MixedKinds_SeparatesBalanceFromPaidAmount() {
	ctx := context.Background()
	orderID := kernel.NewUUID()

	// Deposit 200, consume 150, refund 20: balance 30, paid 180
	suite.seedEntry(orderID, ledger.KindDeposit, "200.00")
	suite.seedEntry(orderID, ledger.KindConsumption, "-150.00")
	suite.seedEntry(orderID, ledger.KindWithdrawal, "-20.00")

	query, err := queries.NewGetOrderBalanceQuery(orderID)
	suite.Require().NoError(err)

	result, err := suite.handler.Handle(ctx, query)

	suite.Require().NoError(err)
	suite.Equal("30.00", result.Balance.String())
	suite.Equal("180.00", result.PaidAmount.String())
}

func (suite *GetOrderBalanceQueryHandlerTestSuite) TestHandle_IgnoresOtherOrders() {
	ctx := context.Background()
	orderID := kernel.NewUUID()
	otherOrderID := kernel.NewUUID()

	suite.seedEntry(orderID, ledger.KindDeposit, "100.00")
	suite.seedEntry(otherOrderID, ledger.KindDeposit, "999.00")

	query, err := queries.NewGetOrderBalanceQuery(orderID)
	suite.Require().NoError(err)

	result, err := suite.handler.Handle(ctx, query)

	suite.Require().NoError(err)
	suite.Equal("100.00", result.Balance.String())
}

func (suite *GetOrderBalanceQueryHandlerTestSuite) seedEntry(orderID kernel.UUID, kind ledger.Kind, amount string) {
	money, err := kernel.NewMoneyFromString(amount)
	suite.Require().NoError(err)
	actor, err := kernel.NewActor(kernel.NewUUID(), kernel.ActorClassStaff)
	suite.Require().NoError(err)

	entry, err := ledger.NewEntry(
		kernel.NewUUID(), kernel.NewUUID(), orderID,
		kind, money, ledger.MethodCash, actor, "",
	)
	suite.Require().NoError(err)
	suite.Require().NoError(suite.ledgerRepo.Add(context.Background(), entry))
}

func TestGetOrderBalanceQueryHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(GetOrderBalanceQueryHandlerTestSuite))
}
