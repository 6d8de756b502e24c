package commands

import (
	"context"
	"log/slog"

	"burgershop/internal/core/domain/model/order"
	"burgershop/internal/core/ports"
)

// BulkSetOrderStatusCommandHandler applies the same status to a batch of
// orders atomically: either every order transitions or none does.
// Notifications go out per order after the commit.
type BulkSetOrderStatusCommandHandler struct {
	uowFactory OrderUoWFactory
	notifier   ports.OrderNotifier
	logger     *slog.Logger
}

// NewBulkSetOrderStatusCommandHandler creates a handler for bulk status changes.
func NewBulkSetOrderStatusCommandHandler(
	uowFactory OrderUoWFactory,
	notifier ports.OrderNotifier,
	logger *slog.Logger,
) BulkSetOrderStatusCommandHandler {
	return BulkSetOrderStatusCommandHandler{
		uowFactory: uowFactory,
		notifier:   notifier,
		logger:     logger,
	}
}

// Handle transitions every listed order to the command's status.
func (h *BulkSetOrderStatusCommandHandler) Handle(ctx context.Context, cmd BulkSetOrderStatusCommand) error {
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
	changed := make([]*order.Order, 0, len(cmd.OrderIDs()))
	for _, id := range cmd.OrderIDs() {
		aggregate, err := orderRepo.Get(ctx, id)
		if err != nil {
			return err
		}
		if err := aggregate.SetStatus(cmd.Status()); err != nil {
			return err
		}
		if err := orderRepo.Update(ctx, aggregate); err != nil {
			return err
		}
		changed = append(changed, aggregate)
	}

	if err := uow.Commit(ctx); err != nil {
		return err
	}

	for _, aggregate := range changed {
		if err := h.notifier.NotifyStatusChanged(ctx, aggregate); err != nil {
			h.logger.Warn("status notification dispatch failed",
				"orderId", aggregate.ID().String(), "status", cmd.Status().String(), "error", err)
		}
	}
	return nil
}
