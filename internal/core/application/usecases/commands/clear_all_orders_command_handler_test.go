package commands_test

import (
	"errors"
	"testing"

	"burgershop/internal/core/application/usecases/commands"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestClearAllOrdersCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	cmd := commands.NewClearAllOrdersCommand()

	repo := new(MockOrderRepository)
	uow := new(MockOrderUoW)
	store := new(MockOrderStore)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(repo).Once(),
		repo.On("DeleteAll", mock.Anything).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		store.On("Clear", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewClearAllOrdersCommandHandler(factory, store, testLogger())
	require.NoError(t, h.Handle(ctx, cmd))
	repo.AssertExpectations(t)
	store.AssertExpectations(t)
}

func TestClearAllOrdersCommandHandler_Handle_DeleteError(t *testing.T) {
	ctx := t.Context()
	cmd := commands.NewClearAllOrdersCommand()

	repo := new(MockOrderRepository)
	uow := new(MockOrderUoW)
	store := new(MockOrderStore)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(repo).Once(),
		repo.On("DeleteAll", mock.Anything).Return(errors.New("db error")).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewClearAllOrdersCommandHandler(factory, store, testLogger())
	require.Error(t, h.Handle(ctx, cmd))
	uow.AssertNotCalled(t, "Commit", mock.Anything)
	store.AssertNotCalled(t, "Clear", mock.Anything)
}

func TestClearAllOrdersCommandHandler_Handle_CacheClearFailureIsSwallowed(t *testing.T) {
	ctx := t.Context()
	cmd := commands.NewClearAllOrdersCommand()

	repo := new(MockOrderRepository)
	uow := new(MockOrderUoW)
	store := new(MockOrderStore)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(repo).Once(),
		repo.On("DeleteAll", mock.Anything).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		store.On("Clear", ctx).Return(errors.New("disk full")).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewClearAllOrdersCommandHandler(factory, store, testLogger())
	require.NoError(t, h.Handle(ctx, cmd), "the database delete already committed")
	store.AssertExpectations(t)
}
