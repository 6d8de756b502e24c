package commands

import (
	"context"
	"log/slog"

	"burgershop/internal/core/ports"
)

// AdvanceOrderStatusCommandHandler advances an order to its next workflow
// status inside a transaction and dispatches a status notification once the
// change is committed.
type AdvanceOrderStatusCommandHandler struct {
	uowFactory OrderUoWFactory
	notifier   ports.OrderNotifier
	logger     *slog.Logger
}

// NewAdvanceOrderStatusCommandHandler creates a handler for advance operations.
func NewAdvanceOrderStatusCommandHandler(
	uowFactory OrderUoWFactory,
	notifier ports.OrderNotifier,
	logger *slog.Logger,
) AdvanceOrderStatusCommandHandler {
	return AdvanceOrderStatusCommandHandler{
		uowFactory: uowFactory,
		notifier:   notifier,
		logger:     logger,
	}
}

// Handle advances the order and persists the transition atomically.
// Notification dispatch is best-effort: a failed dispatch is logged, never
// rolled back into the transition.
func (h *AdvanceOrderStatusCommandHandler) Handle(ctx context.Context, cmd AdvanceOrderStatusCommand) error {
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

	next := aggregate.Advance()

	if err := orderRepo.Update(ctx, aggregate); err != nil {
		return err
	}

	if err := uow.Commit(ctx); err != nil {
		return err
	}

	if err := h.notifier.NotifyStatusChanged(ctx, aggregate); err != nil {
		h.logger.Warn("status notification dispatch failed",
			"orderId", aggregate.ID().String(), "status", next.String(), "error", err)
	}
	return nil
}
