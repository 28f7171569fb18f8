package commands_test

import (
	"testing"

	"storefront/internal/core/application/usecases/commands"
	"storefront/internal/core/domain/model/order"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestAdvanceOrderStatusCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	aggregate := pendingOrder(t, "349.99")
	cmd, err := commands.NewAdvanceOrderStatusCommand(aggregate.ID(), order.Confirmed, staffActor(t), "reviewed")
	require.NoError(t, err)

	orderRepo := new(MockOrderRepository)
	uow := new(MockUoW)
	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("OrderRepository").Return(orderRepo)
	orderRepo.On("Get", ctx, aggregate.ID()).Return(aggregate, nil).Once()
	orderRepo.On("Update", ctx, aggregate).Return(nil).Once()
	orderRepo.On("AddStatusHistory", ctx, mock.MatchedBy(func(h order.StatusHistory) bool {
		return h.From() == order.Pending && h.To() == order.Confirmed
	})).Return(nil).Once()
	uow.On("Commit", ctx).Return(nil).Once()
	uow.On("Rollback", ctx).Return(nil).Once()

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewAdvanceOrderStatusCommandHandler(factory)
	require.NoError(t, h.Handle(ctx, cmd))

	assert.Equal(t, order.Confirmed, aggregate.Status())
	orderRepo.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestAdvanceOrderStatusCommandHandler_Handle_IllegalEdge(t *testing.T) {
	ctx := t.Context()
	aggregate := pendingOrder(t, "349.99")
	cmd, err := commands.NewAdvanceOrderStatusCommand(aggregate.ID(), order.Delivered, staffActor(t), "")
	require.NoError(t, err)

	orderRepo := new(MockOrderRepository)
	uow := new(MockUoW)
	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("OrderRepository").Return(orderRepo)
	orderRepo.On("Get", ctx, aggregate.ID()).Return(aggregate, nil).Once()
	uow.On("Rollback", ctx).Return(nil).Once()

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewAdvanceOrderStatusCommandHandler(factory)
	err = h.Handle(ctx, cmd)

	require.Error(t, err)
	assert.Equal(t, order.Pending, aggregate.Status())
	uow.AssertExpectations(t)
}

func TestAdvanceOrderStatusCommandHandler_Handle_ValidationError(t *testing.T) {
	h := commands.NewAdvanceOrderStatusCommandHandler(new(MockOrderUoWFactory))
	require.Error(t, h.Handle(t.Context(), commands.AdvanceOrderStatusCommand{}))
}
