package commands_test

import (
	"testing"

	"storefront/internal/core/application/usecases/commands"
	"storefront/internal/core/domain/model/ledger"
	"storefront/internal/core/domain/model/order"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSyncPaymentStatusesCommandHandler_Handle(t *testing.T) {
	ctx := t.Context()
	paid := pendingOrder(t, "100.00")
	untouched := pendingOrder(t, "50.00")

	orderRepo := new(MockOrderRepository)
	ledgerRepo := new(MockLedgerRepository)
	uow := new(MockUoW)
	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("OrderRepository").Return(orderRepo)
	uow.On("LedgerRepository").Return(ledgerRepo)
	orderRepo.On("GetAllUncompleted", ctx).Return([]*order.Order{paid, untouched}, nil).Once()
	ledgerRepo.On("GetByOrder", ctx, paid.ID()).
		Return([]*ledger.Entry{depositEntry(t, paid, "100.00")}, nil).Once()
	ledgerRepo.On("GetByOrder", ctx, untouched.ID()).Return([]*ledger.Entry(nil), nil).Once()
	// Only the order whose derived status changed is written back.
	orderRepo.On("Update", ctx, paid).Return(nil).Once()
	uow.On("Commit", ctx).Return(nil).Once()
	uow.On("Rollback", ctx).Return(nil).Once()

	factory := new(MockLedgerUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewSyncPaymentStatusesCommandHandler(factory)
	cmd := commands.NewSyncPaymentStatusesCommand()
	require.NoError(t, h.Handle(ctx, cmd))

	assert.Equal(t, order.PaymentPaid, paid.PaymentStatus())
	assert.Equal(t, order.PaymentNotPaid, untouched.PaymentStatus())
	orderRepo.AssertExpectations(t)
	ledgerRepo.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestSyncPaymentStatusesCommandHandler_Handle_ValidationError(t *testing.T) {
	h := commands.NewSyncPaymentStatusesCommandHandler(new(MockLedgerUoWFactory))
	cmd := commands.SyncPaymentStatusesCommand{}
	require.Error(t, h.Handle(t.Context(), cmd))
}
