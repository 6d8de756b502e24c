package commands_test

import (
	"errors"
	"testing"

	"burgershop/internal/core/application/usecases/commands"
	"burgershop/internal/core/domain/model/order"
	"burgershop/internal/pkg/errs"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestAdvanceOrderStatusCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	aggregate := newPreparingOrder(t)
	cmd, err := commands.NewAdvanceOrderStatusCommand(aggregate.ID())
	require.NoError(t, err)

	repo := new(MockOrderRepository)
	uow := new(MockOrderUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(repo).Once(),
		repo.On("Get", mock.Anything, aggregate.ID()).Return(aggregate, nil).Once(),
		repo.On("Update", mock.Anything, aggregate).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	notifier := new(MockOrderNotifier)
	notifier.On("NotifyStatusChanged", mock.Anything, aggregate).Return(nil).Once()

	h := commands.NewAdvanceOrderStatusCommandHandler(factory, notifier, testLogger())
	require.NoError(t, h.Handle(ctx, cmd))

	require.Equal(t, order.OnTheWay, aggregate.Status())
	repo.AssertExpectations(t)
	uow.AssertExpectations(t)
	notifier.AssertExpectations(t)
}

func TestAdvanceOrderStatusCommandHandler_Handle_NotificationFailureIsSwallowed(t *testing.T) {
	ctx := t.Context()
	aggregate := newPreparingOrder(t)
	cmd, err := commands.NewAdvanceOrderStatusCommand(aggregate.ID())
	require.NoError(t, err)

	repo := new(MockOrderRepository)
	uow := new(MockOrderUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(repo).Once(),
		repo.On("Get", mock.Anything, aggregate.ID()).Return(aggregate, nil).Once(),
		repo.On("Update", mock.Anything, aggregate).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	notifier := new(MockOrderNotifier)
	notifier.On("NotifyStatusChanged", mock.Anything, aggregate).
		Return(errors.New("broker unavailable")).Once()

	h := commands.NewAdvanceOrderStatusCommandHandler(factory, notifier, testLogger())
	require.NoError(t, h.Handle(ctx, cmd))
}

func TestAdvanceOrderStatusCommandHandler_Handle_OrderNotFound(t *testing.T) {
	ctx := t.Context()
	aggregate := newPreparingOrder(t)
	cmd, err := commands.NewAdvanceOrderStatusCommand(aggregate.ID())
	require.NoError(t, err)

	repo := new(MockOrderRepository)
	uow := new(MockOrderUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(repo).Once(),
		repo.On("Get", mock.Anything, aggregate.ID()).
			Return(nil, errs.NewObjectNotFoundError("orderId", aggregate.ID())).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	notifier := new(MockOrderNotifier)

	h := commands.NewAdvanceOrderStatusCommandHandler(factory, notifier, testLogger())
	err = h.Handle(ctx, cmd)

	require.ErrorIs(t, err, errs.ErrObjectNotFound)
	notifier.AssertNotCalled(t, "NotifyStatusChanged")
}
