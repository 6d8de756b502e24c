package commands

import (
	"context"
	"log/slog"

	"burgershop/internal/core/ports"
)

// SetOrderStatusCommandHandler applies a manual status selection inside a
// transaction and dispatches a status notification after commit.
type SetOrderStatusCommandHandler struct {
	uowFactory OrderUoWFactory
	notifier   ports.OrderNotifier
	logger     *slog.Logger
}

// NewSetOrderStatusCommandHandler creates a handler for manual status changes.
func NewSetOrderStatusCommandHandler(
	uowFactory OrderUoWFactory,
	notifier ports.OrderNotifier,
	logger *slog.Logger,
) SetOrderStatusCommandHandler {
	return SetOrderStatusCommandHandler{
		uowFactory: uowFactory,
		notifier:   notifier,
		logger:     logger,
	}
}

// Handle sets the order's status and persists the transition atomically.
func (h *SetOrderStatusCommandHandler) Handle(ctx context.Context, cmd SetOrderStatusCommand) error {
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

	if err := aggregate.SetStatus(cmd.Status()); err != nil {
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
			"orderId", aggregate.ID().String(), "status", cmd.Status().String(), "error", err)
	}
	return nil
}
