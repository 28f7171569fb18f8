package orderrepo_test

import (
	"context"
	"testing"
	"time"

	"storefront/internal/adapters/out/postgres/orderrepo"
	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/core/domain/model/order"
	"storefront/internal/pkg/errs"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	postgresdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// MockAggregateTracker is a mock implementation of aggregateTracker interface.
type MockAggregateTracker struct {
	mock.Mock
}

func (m *MockAggregateTracker) TrackAggregate(id kernel.UUID, aggregate interface{}) {
	m.Called(id, aggregate)
}

// OrderRepositoryIntegrationTestSuite provides integration tests for OrderRepository
// using PostgreSQL containers to verify database persistence behavior.
type OrderRepositoryIntegrationTestSuite struct {
	suite.Suite
	container  *postgres.PostgresContainer
	db         *gorm.DB
	repository *orderrepo.GormOrderRepository
	tracker    *MockAggregateTracker
}

func (suite *OrderRepositoryIntegrationTestSuite) SetupSuite() {
	ctx := context.Background()

	// Start PostgreSQL container
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

	// Get connection string and connect to database
	connStr, err := container.ConnectionString(ctx, "sslmode=disable")
	suite.Require().NoError(err)

	db, err := gorm.Open(postgresdriver.Open(connStr), &gorm.Config{})
	suite.Require().NoError(err)
	suite.db = db

	// Auto-migrate the schema
	suite.Require().NoError(db.AutoMigrate(&orderrepo.OrderDTO{}, &orderrepo.StatusHistoryDTO{}))
}

func (suite *OrderRepositoryIntegrationTestSuite) SetupTest() {
	// Clean the database before each test
	suite.Require().NoError(suite.db.Exec("TRUNCATE TABLE orders, order_status_history").Error)

	// Create fresh repository and tracker for each test
	suite.tracker = new(MockAggregateTracker)
	suite.repository = orderrepo.NewGormOrderRepository(suite.db, suite.tracker)
}

func (suite *OrderRepositoryIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

func (suite *OrderRepositoryIntegrationTestSuite) TestAdd_ValidOrder_Success() {
	ctx := context.Background()

	testOrder := suite.createTestOrder()

	suite.tracker.On("TrackAggregate", testOrder.ID(), testOrder).Once()

	err := suite.repository.Add(ctx, testOrder)
	suite.Require().NoError(err)

	suite.assertOrderCount(1)
	suite.tracker.AssertExpectations(suite.T())
}

func (suite *OrderRepositoryIntegrationTestSuite) TestGet_ExistingOrder_ReturnsOrder() {
	ctx := context.Background()

	relatedID := kernel.NewUUID()
	shipping := order.Shipping{
		Address:       "742 Evergreen Terrace",
		ReceiverName:  "H. Simpson",
		ReceiverPhone: "+1-555-0113",
		ReceiverEmail: "h.simpson@example.com",
		Fee:           suite.money("14.50"),
	}
	original, err := order.NewOrder(
		kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(),
		suite.money("514.49"), shipping, true, &relatedID,
	)
	suite.Require().NoError(err)

	suite.tracker.On("TrackAggregate", original.ID(), original).Once()
	suite.Require().NoError(suite.repository.Add(ctx, original))

	retrieved, err := suite.repository.Get(ctx, original.ID())
	suite.Require().NoError(err)

	suite.Equal(original.ID(), retrieved.ID())
	suite.Equal(original.CustomerID(), retrieved.CustomerID())
	suite.Equal(order.Pending, retrieved.Status())
	suite.Equal(order.PaymentNotPaid, retrieved.PaymentStatus())
	suite.True(retrieved.TotalAmount().IsEqual(suite.money("514.49")))
	suite.Equal("742 Evergreen Terrace", retrieved.Shipping().Address)
	suite.True(retrieved.Shipping().Fee.IsEqual(suite.money("14.50")))
	suite.True(retrieved.IsServiceOrder())
	suite.Require().NotNil(retrieved.RelatedOrderID())
	suite.True(retrieved.RelatedOrderID().IsEqual(relatedID))

	suite.tracker.AssertExpectations(suite.T())
}

func (suite *OrderRepositoryIntegrationTestSuite) TestGet_NonExistentOrder_ReturnsNotFoundError() {
	ctx := context.Background()

	retrieved, err := suite.repository.Get(ctx, kernel.NewUUID())

	suite.Require().Error(err)
	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
	suite.Nil(retrieved)
}

func (suite *OrderRepositoryIntegrationTestSuite) TestUpdate_PersistsStatusChanges() {
	ctx := context.Background()

	testOrder := suite.createTestOrder()
	suite.tracker.On("TrackAggregate", testOrder.ID(), testOrder)
	suite.Require().NoError(suite.repository.Add(ctx, testOrder))

	suite.Require().NoError(testOrder.AdvanceTo(order.Confirmed))
	suite.Require().NoError(testOrder.RefreshPaymentStatus(suite.money("100.00")))
	suite.Require().NoError(suite.repository.Update(ctx, testOrder))

	retrieved, err := suite.repository.Get(ctx, testOrder.ID())
	suite.Require().NoError(err)
	suite.Equal(order.Confirmed, retrieved.Status())
	suite.Equal(order.PaymentPartiallyPaid, retrieved.PaymentStatus())

	suite.tracker.AssertExpectations(suite.T())
}

func (suite *OrderRepositoryIntegrationTestSuite) TestUpdate_NonExistentOrder_ReturnsError() {
	ctx := context.Background()

	ghost := suite.createTestOrder()
	err := suite.repository.Update(ctx, ghost)

	suite.Require().Error(err)
}

func (suite *OrderRepositoryIntegrationTestSuite) TestGetAllPendingBefore_ReturnsOnlyExpiredHolds() {
	ctx := context.Background()

	stale := suite.restoreOrderAt(order.Pending, time.Now().UTC().Add(-2*time.Hour))
	fresh := suite.restoreOrderAt(order.Pending, time.Now().UTC())
	cancelled := suite.restoreOrderAt(order.Cancelled, time.Now().UTC().Add(-2*time.Hour))

	suite.tracker.On("TrackAggregate", mock.Anything, mock.Anything)
	for _, o := range []*order.Order{stale, fresh, cancelled} {
		suite.Require().NoError(suite.repository.Add(ctx, o))
	}

	cutoff := time.Now().UTC().Add(-time.Hour)
	expired, err := suite.repository.GetAllPendingBefore(ctx, cutoff)

	suite.Require().NoError(err)
	suite.Require().Len(expired, 1)
	suite.True(expired[0].ID().IsEqual(stale.ID()))
}

func (suite *OrderRepositoryIntegrationTestSuite) TestGetAllUncompleted_ExcludesTerminalStatuses() {
	ctx := context.Background()

	now := time.Now().UTC()
	pending := suite.restoreOrderAt(order.Pending, now)
	shipped := suite.restoreOrderAt(order.Shipped, now)
	delivered := suite.restoreOrderAt(order.Delivered, now)
	cancelled := suite.restoreOrderAt(order.Cancelled, now)
	refunded := suite.restoreOrderAt(order.Refunded, now)

	suite.tracker.On("TrackAggregate", mock.Anything, mock.Anything)
	for _, o := range []*order.Order{pending, shipped, delivered, cancelled, refunded} {
		suite.Require().NoError(suite.repository.Add(ctx, o))
	}

	uncompleted, err := suite.repository.GetAllUncompleted(ctx)

	suite.Require().NoError(err)
	suite.Require().Len(uncompleted, 2)

	ids := map[string]bool{}
	for _, o := range uncompleted {
		ids[o.ID().String()] = true
	}
	suite.True(ids[pending.ID().String()])
	suite.True(ids[shipped.ID().String()])
}

func (suite *OrderRepositoryIntegrationTestSuite) TestAddStatusHistory_AppendsAuditRow() {
	ctx := context.Background()

	testOrder := suite.createTestOrder()
	suite.tracker.On("TrackAggregate", testOrder.ID(), testOrder)
	suite.Require().NoError(suite.repository.Add(ctx, testOrder))

	actor, err := kernel.NewActor(kernel.NewUUID(), kernel.ActorClassStaff)
	suite.Require().NoError(err)
	history, err := order.NewStatusHistory(testOrder.ID(), order.None, order.Pending, actor, "Staff created order")
	suite.Require().NoError(err)

	suite.Require().NoError(suite.repository.AddStatusHistory(ctx, history))

	var count int64
	suite.Require().NoError(
		suite.db.Table("order_status_history").Where("order_id = ?", testOrder.ID().Bytes()).Count(&count).Error,
	)
	suite.Equal(int64(1), count)
}

// createTestOrder creates a valid pickup order for testing purposes.
func (suite *OrderRepositoryIntegrationTestSuite) createTestOrder() *order.Order {
	testOrder, err := order.NewOrder(
		kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(),
		suite.money("349.99"), order.Shipping{}, false, nil,
	)
	suite.Require().NoError(err)
	return testOrder
}

// restoreOrderAt builds an order in the given status with a fixed creation time.
func (suite *OrderRepositoryIntegrationTestSuite) restoreOrderAt(status order.Status, createdAt time.Time) *order.Order {
	restored, err := order.RestoreOrder(
		kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(),
		status, order.PaymentNotPaid,
		suite.money("100.00"), order.Shipping{}, false, nil,
		createdAt,
	)
	suite.Require().NoError(err)
	return restored
}

func (suite *OrderRepositoryIntegrationTestSuite) money(s string) kernel.Money {
	m, err := kernel.NewMoneyFromString(s)
	suite.Require().NoError(err)
	return m
}

func (suite *OrderRepositoryIntegrationTestSuite) assertOrderCount(expected int64) {
	var count int64
	suite.Require().NoError(suite.db.Table("orders").Count(&count).Error)
	suite.Equal(expected, count)
}

func TestOrderRepositoryIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(OrderRepositoryIntegrationTestSuite))
}
