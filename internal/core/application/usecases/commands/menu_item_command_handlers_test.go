package commands_test

import (
	"testing"

	"burgershop/internal/core/application/usecases/commands"
	"burgershop/internal/core/domain/model/kernel"
	"burgershop/internal/core/domain/model/menu"
	"burgershop/internal/pkg/errs"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func wingsFields() commands.MenuItemFields {
	return commands.MenuItemFields{
		Name:        "Chicken Wings",
		Description: "Six pieces",
		Price:       150,
		Category:    "mains",
		Flavors:     []string{"Buffalo", "Garlic Parmesan"},
	}
}

func TestCreateMenuItemCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	cmd := commands.NewCreateMenuItemCommand(wingsFields())

	repo := new(MockMenuItemRepository)
	uow := new(MockMenuUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("MenuItemRepository").Return(repo).Once(),
		repo.On("Add", mock.Anything, mock.AnythingOfType("*menu.MenuItem")).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockMenuUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewCreateMenuItemCommandHandler(factory)
	item, err := h.Handle(ctx, cmd)

	require.NoError(t, err)
	require.NotEmpty(t, item.ID())
	require.Equal(t, "Chicken Wings", item.Name())
	repo.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestCreateMenuItemCommandHandler_Handle_InvalidFields(t *testing.T) {
	ctx := t.Context()
	fields := wingsFields()
	fields.Price = -1
	cmd := commands.NewCreateMenuItemCommand(fields)

	factory := new(MockMenuUoWFactory)
	h := commands.NewCreateMenuItemCommandHandler(factory)
	_, err := h.Handle(ctx, cmd)

	require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	factory.AssertNotCalled(t, "Create")
}

func TestUpdateMenuItemCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	existing, err := menu.NewMenuItem("7", "Wings", "Six pieces", 150, "mains", "", nil, false)
	require.NoError(t, err)

	fields := wingsFields()
	fields.Price = kernel.Money(180)
	cmd, err := commands.NewUpdateMenuItemCommand("7", fields)
	require.NoError(t, err)

	repo := new(MockMenuItemRepository)
	uow := new(MockMenuUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("MenuItemRepository").Return(repo).Once(),
		repo.On("Get", mock.Anything, "7").Return(existing, nil).Once(),
		repo.On("Update", mock.Anything, existing).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockMenuUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewUpdateMenuItemCommandHandler(factory)
	require.NoError(t, h.Handle(ctx, cmd))

	require.Equal(t, kernel.Money(180), existing.Price())
	require.Equal(t, "7", existing.ID())
	repo.AssertExpectations(t)
}

func TestDeleteMenuItemCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	cmd, err := commands.NewDeleteMenuItemCommand("7")
	require.NoError(t, err)

	repo := new(MockMenuItemRepository)
	uow := new(MockMenuUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("MenuItemRepository").Return(repo).Once(),
		repo.On("Delete", mock.Anything, "7").Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockMenuUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewDeleteMenuItemCommandHandler(factory)
	require.NoError(t, h.Handle(ctx, cmd))
	repo.AssertExpectations(t)
}

func TestNewMenuItemCommands_RequireID(t *testing.T) {
	_, err := commands.NewUpdateMenuItemCommand("", wingsFields())
	require.ErrorIs(t, err, commands.ErrMenuItemIDIsRequired)

	_, err = commands.NewDeleteMenuItemCommand("")
	require.ErrorIs(t, err, commands.ErrMenuItemIDIsRequired)
}
