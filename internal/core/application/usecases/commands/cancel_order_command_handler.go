package commands

import (
	"context"
	"log/slog"

	"burgershop/internal/core/ports"
)

// CancelOrderCommandHandler cancels an order inside a transaction. The
// cancellation guard lives on the aggregate: orders already on the way or in
// a terminal state reject the request and nothing is persisted.
type CancelOrderCommandHandler struct {
	uowFactory OrderUoWFactory
	notifier   ports.OrderNotifier
	logger     *slog.Logger
}

// NewCancelOrderCommandHandler creates a handler for cancellation requests.
func NewCancelOrderCommandHandler(
	uowFactory OrderUoWFactory,
	notifier ports.OrderNotifier,
	logger *slog.Logger,
) CancelOrderCommandHandler {
	return CancelOrderCommandHandler{
		uowFactory: uowFactory,
		notifier:   notifier,
		logger:     logger,
	}
}

// Handle cancels the order and persists the transition atomically.
func (h *CancelOrderCommandHandler) Handle(ctx context.Context, cmd CancelOrderCommand) error {
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

	orderRepo := uow.OrderRepository()
	aggregate, err := orderRepo.Get(ctx, cmd.OrderID())
	if err != nil {
		return err
	}

	if err := aggregate.Cancel(cmd.CancelledBy()); err != nil {
		return err
	}

	if err := orderRepo.Update(ctx, aggregate); err != nil {
		return err
	}

	if err := uow.Commit(ctx); err != nil {
		return err
	}

	if err := h.notifier.NotifyStatusChanged(ctx, aggregate); err != nil {
		h.logger.Warn("status notification dispatch failed",
			"orderId", aggregate.ID().String(), "status", aggregate.Status().String(), "error", err)
	}
	return nil
}
