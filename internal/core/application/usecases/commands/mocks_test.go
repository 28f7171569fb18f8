package commands_test

import (
	"context"
	"testing"
	"time"

	"storefront/internal/core/application/usecases/commands"
	"storefront/internal/core/domain/model/item"
	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/core/domain/model/ledger"
	"storefront/internal/core/domain/model/order"
	"storefront/internal/core/domain/services"
	"storefront/internal/core/ports"
	"storefront/internal/pkg/errs"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockItemRepository struct{ mock.Mock }

func (m *MockItemRepository) Add(ctx context.Context, aggregate *item.Item) error {
	args := m.Called(ctx, aggregate)
	return args.Error(0)
}

func (m *MockItemRepository) Update(ctx context.Context, aggregate *item.Item) error {
	args := m.Called(ctx, aggregate)
	return args.Error(0)
}

func (m *MockItemRepository) Get(ctx context.Context, id kernel.UUID) (*item.Item, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*item.Item), args.Error(1)
}

func (m *MockItemRepository) GetBatch(ctx context.Context, ids []kernel.UUID) ([]*item.Item, error) {
	args := m.Called(ctx, ids)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*item.Item), args.Error(1)
}

func (m *MockItemRepository) GetByOrder(ctx context.Context, orderID kernel.UUID) ([]*item.Item, error) {
	args := m.Called(ctx, orderID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*item.Item), args.Error(1)
}

func (m *MockItemRepository) AddHistory(ctx context.Context, history item.StateHistory) error {
	args := m.Called(ctx, history)
	return args.Error(0)
}

type MockOrderRepository struct{ mock.Mock }

func (m *MockOrderRepository) Add(ctx context.Context, aggregate *order.Order) error {
	args := m.Called(ctx, aggregate)
	return args.Error(0)
}

func (m *MockOrderRepository) Update(ctx context.Context, aggregate *order.Order) error {
	args := m.Called(ctx, aggregate)
	return args.Error(0)
}

func (m *MockOrderRepository) Get(ctx context.Context, id kernel.UUID) (*order.Order, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*order.Order), args.Error(1)
}

func (m *MockOrderRepository) GetAllPendingBefore(ctx context.Context, cutoff time.Time) ([]*order.Order, error) {
	args := m.Called(ctx, cutoff)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*order.Order), args.Error(1)
}

func (m *MockOrderRepository) GetAllUncompleted(ctx context.Context) ([]*order.Order, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*order.Order), args.Error(1)
}

func (m *MockOrderRepository) AddStatusHistory(ctx context.Context, history order.StatusHistory) error {
	args := m.Called(ctx, history)
	return args.Error(0)
}

type MockLedgerRepository struct{ mock.Mock }

func (m *MockLedgerRepository) Add(ctx context.Context, entry *ledger.Entry) error {
	args := m.Called(ctx, entry)
	return args.Error(0)
}

func (m *MockLedgerRepository) GetByOrder(ctx context.Context, orderID kernel.UUID) ([]*ledger.Entry, error) {
	args := m.Called(ctx, orderID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*ledger.Entry), args.Error(1)
}

// MockUoW satisfies every unit of work interface the handlers use.
type MockUoW struct{ mock.Mock }

func (m *MockUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) ItemRepository() ports.ItemRepository {
	args := m.Called()
	return args.Get(0).(ports.ItemRepository)
}

func (m *MockUoW) OrderRepository() ports.OrderRepository {
	args := m.Called()
	return args.Get(0).(ports.OrderRepository)
}

func (m *MockUoW) LedgerRepository() ports.LedgerRepository {
	args := m.Called()
	return args.Get(0).(ports.LedgerRepository)
}

type MockUoWFactory struct{ mock.Mock }

func (m *MockUoWFactory) Create() commands.UoW {
	args := m.Called()
	return args.Get(0).(commands.UoW)
}

type MockItemUoWFactory struct{ mock.Mock }

func (m *MockItemUoWFactory) Create() commands.ItemUoW {
	args := m.Called()
	return args.Get(0).(commands.ItemUoW)
}

type MockOrderUoWFactory struct{ mock.Mock }

func (m *MockOrderUoWFactory) Create() commands.OrderUoW {
	args := m.Called()
	return args.Get(0).(commands.OrderUoW)
}

type MockLedgerUoWFactory struct{ mock.Mock }

func (m *MockLedgerUoWFactory) Create() commands.LedgerUoW {
	args := m.Called()
	return args.Get(0).(commands.LedgerUoW)
}

type MockCartCleaner struct{ mock.Mock }

func (m *MockCartCleaner) RemoveUnits(ctx context.Context, customerID kernel.UUID, unitIDs []kernel.UUID) error {
	args := m.Called(ctx, customerID, unitIDs)
	return args.Error(0)
}

type MockReservationNotifier struct{ mock.Mock }

func (m *MockReservationNotifier) NotifyReserved(ctx context.Context, orderID, customerID kernel.UUID) error {
	args := m.Called(ctx, orderID, customerID)
	return args.Error(0)
}

// Shared fixtures.

func assertableNotFound() error {
	return errs.NewObjectNotFoundError("order", kernel.NewUUID())
}

func mustMoney(t *testing.T, s string) kernel.Money {
	t.Helper()
	m, err := kernel.NewMoneyFromString(s)
	require.NoError(t, err)
	return m
}

func staffActor(t *testing.T) kernel.Actor {
	t.Helper()
	actor, err := kernel.NewActor(kernel.NewUUID(), kernel.ActorClassStaff)
	require.NoError(t, err)
	return actor
}

func customerActor(t *testing.T) kernel.Actor {
	t.Helper()
	actor, err := kernel.NewActor(kernel.NewUUID(), kernel.ActorClassCustomer)
	require.NoError(t, err)
	return actor
}

func testGraph(t *testing.T) *services.TransitionGraph {
	t.Helper()
	mustEdge := func(from, to item.State) item.Transition {
		tr, err := item.NewTransition(from, to, "")
		require.NoError(t, err)
		return tr
	}

	graph, err := services.NewTransitionGraph([]item.Transition{
		mustEdge(item.StateAvailable, item.StateHeld),
		mustEdge(item.StateHeld, item.StateAvailable),
		mustEdge(item.StateHeld, item.StateSold),
		mustEdge(item.StateAvailable, item.StateTesting),
		mustEdge(item.StateTesting, item.StateAvailable),
	})
	require.NoError(t, err)
	return graph
}

func availableUnit(t *testing.T, locationID kernel.UUID) *item.Item {
	t.Helper()
	unit, err := item.NewItem(
		kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(), locationID,
		"CN-1000", mustMoney(t, "100.00"), mustMoney(t, "199.99"),
		item.WarrantyNone, 0,
	)
	require.NoError(t, err)
	return unit
}

func pendingOrder(t *testing.T, total string) *order.Order {
	t.Helper()
	o, err := order.NewOrder(
		kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(),
		mustMoney(t, total), order.Shipping{}, false, nil,
	)
	require.NoError(t, err)
	return o
}
