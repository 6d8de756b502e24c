package commands

import (
	"context"
	"log/slog"

	"burgershop/internal/core/ports"
)

// ClearAllOrdersCommandHandler deletes every persisted order in one
// transaction, then drops the local fallback cache so cleared orders cannot
// resurface from it.
type ClearAllOrdersCommandHandler struct {
	uowFactory OrderUoWFactory
	store      ports.OrderStore
	logger     *slog.Logger
}

// NewClearAllOrdersCommandHandler creates a handler for the admin bulk delete.
func NewClearAllOrdersCommandHandler(
	uowFactory OrderUoWFactory,
	store ports.OrderStore,
	logger *slog.Logger,
) ClearAllOrdersCommandHandler {
	return ClearAllOrdersCommandHandler{uowFactory: uowFactory, store: store, logger: logger}
}

// Handle deletes all orders.
func (h *ClearAllOrdersCommandHandler) Handle(ctx context.Context, cmd ClearAllOrdersCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err := uow.OrderRepository().DeleteAll(ctx); err != nil {
		return err
	}

	if err := uow.Commit(ctx); err != nil {
		return err
	}

	if err := h.store.Clear(ctx); err != nil {
		h.logger.Warn("failed to clear local order cache", "error", err)
	}

	h.logger.Info("order collection cleared")
	return nil
}
