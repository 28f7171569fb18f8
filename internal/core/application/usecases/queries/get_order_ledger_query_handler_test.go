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

type GetOrderLedgerQueryHandlerTestSuite struct {
	suite.Suite
	container  *postgres.PostgresContainer
	db         *gorm.DB
	handler    queries.GetOrderLedgerQueryHandler
	ledgerRepo *ledgerrepo.GormLedgerRepository
}

func (suite *GetOrderLedgerQueryHandlerTestSuite) SetupSuite() {
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

	suite.handler = queries.NewGetOrderLedgerQueryHandler(db)
	suite.ledgerRepo = ledgerrepo.NewGormLedgerRepository(db, &mockAggregateTracker{})
}

func (suite *GetOrderLedgerQueryHandlerTestSuite) TearDownSuite() {
	if suite.container != nil {
		err := suite.container.Terminate(context.Background())
		suite.Require().NoError(err)
	}
}

func (suite *GetOrderLedgerQueryHandlerTestSuite) SetupTest() {
	err := suite.db.Exec("TRUNCATE TABLE ledger_entries").Error
	suite.Require().NoError(err)
}

func (suite *GetOrderLedgerQueryHandlerTestSuite) TestHandle_EmptyLedger_ReturnsEmptySlice() {
	query, err := queries.NewGetOrderLedgerQuery(kernel.NewUUID())
	suite.Require().NoError(err)

	result, err := suite.handler.Handle(context.Background(), query)

	suite.Require().NoError(err)
	suite.NotNil(result)
	suite.Empty(result)
}

func (suite *GetOrderLedgerQueryHandlerTestSuite) TestHandle_ReturnsEntriesOldestFirst() {
	ctx := context.Background()
	orderID := kernel.NewUUID()

	actor, err := kernel.NewActor(kernel.NewUUID(), kernel.ActorClassStaff)
	suite.Require().NoError(err)

	deposit, err := ledger.NewEntry(
		kernel.NewUUID(), kernel.NewUUID(), orderID,
		ledger.KindDeposit, suite.money("150.00"), ledger.MethodCreditCard, actor, "down payment",
	)
	suite.Require().NoError(err)
	suite.Require().NoError(suite.ledgerRepo.Add(ctx, deposit))

	withdrawal, err := ledger.NewEntry(
		kernel.NewUUID(), kernel.NewUUID(), orderID,
		ledger.KindWithdrawal, suite.money("-50.00"), ledger.MethodCash, actor, "partial refund",
	)
	suite.Require().NoError(err)
	suite.Require().NoError(suite.ledgerRepo.Add(ctx, withdrawal))

	query, err := queries.NewGetOrderLedgerQuery(orderID)
	suite.Require().NoError(err)

	result, err := suite.handler.Handle(ctx, query)

	suite.Require().NoError(err)
	suite.Require().Len(result, 2)

	suite.True(result[0].ID.IsEqual(deposit.ID()))
	suite.Equal(ledger.KindDeposit, result[0].Kind)
	suite.Equal("150.00", result[0].Amount.String())
	suite.Equal(ledger.MethodCreditCard, result[0].Method)
	suite.Equal("down payment", result[0].Note)
	suite.Nil(result[0].RelatedEntryID)

	suite.True(result[1].ID.IsEqual(withdrawal.ID()))
	suite.Equal("-50.00", result[1].Amount.String())
}

func (suite *GetOrderLedgerQueryHandlerTestSuite) TestHandle_TransferHalves_CarryRelatedEntryID() {
	ctx := context.Background()
	sourceOrderID := kernel.NewUUID()
	destinationOrderID := kernel.NewUUID()

	actor, err := kernel.NewActor(kernel.NewUUID(), kernel.ActorClassStaff)
	suite.Require().NoError(err)

	withdrawal, deposit, err := ledger.NewTransferPair(
		kernel.NewUUID(), kernel.NewUUID(), sourceOrderID, destinationOrderID,
		suite.money("75.00"), actor, "credit move",
	)
	suite.Require().NoError(err)
	suite.Require().NoError(suite.ledgerRepo.Add(ctx, withdrawal))
	suite.Require().NoError(suite.ledgerRepo.Add(ctx, deposit))

	query, err := queries.NewGetOrderLedgerQuery(sourceOrderID)
	suite.Require().NoError(err)

	result, err := suite.handler.Handle(ctx, query)

	suite.Require().NoError(err)
	suite.Require().Len(result, 1)
	suite.Equal(ledger.KindVirtualWithdrawal, result[0].Kind)
	suite.Equal(ledger.MethodVirtual, result[0].Method)
	suite.Require().NotNil(result[0].RelatedEntryID)
	suite.True(result[0].RelatedEntryID.IsEqual(deposit.ID()))
}

func (suite *GetOrderLedgerQueryHandlerTestSuite) money(s string) kernel.Money {
	m, err := kernel.NewMoneyFromString(s)
	suite.Require().NoError(err)
	return m
}

func TestGetOrderLedgerQueryHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(GetOrderLedgerQueryHandlerTestSuite))
}
