package commands

import (
	"context"
	"log/slog"
	"strings"

	"burgershop/internal/core/domain/model/cart"
	"burgershop/internal/core/domain/model/order"
	"burgershop/internal/core/domain/services"
	"burgershop/internal/core/ports"
)

// PlaceOrderCommandHandler runs the checkout flow: it verifies a GCash proof
// image through the text extractor when needed, builds the order through the
// checkout service, and persists it through the order store's remote-first,
// local-fallback write path. A remote outage therefore never loses an order.
type PlaceOrderCommandHandler struct {
	checkout  services.CheckoutService
	store     ports.OrderStore
	extractor ports.ImageTextExtractor
	logger    *slog.Logger
}

// NewPlaceOrderCommandHandler creates a handler for checkout operations.
func NewPlaceOrderCommandHandler(
	checkout services.CheckoutService,
	store ports.OrderStore,
	extractor ports.ImageTextExtractor,
	logger *slog.Logger,
) PlaceOrderCommandHandler {
	return PlaceOrderCommandHandler{
		checkout:  checkout,
		store:     store,
		extractor: extractor,
		logger:    logger,
	}
}

// Handle processes the checkout command and returns the placed order.
//
// For GCash payments with an uploaded proof image, the handler runs text
// extraction before validation so the checkout service can match the
// reference number against the extracted text. Extraction failures leave the
// proof unverified; the checkout service then rejects the payment.
func (h *PlaceOrderCommandHandler) Handle(ctx context.Context, cmd PlaceOrderCommand) (*order.Order, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	payment := cmd.Payment()
	if strings.EqualFold(payment.Method, string(order.PaymentGCash)) && payment.GCashProofDataURL != "" {
		text, err := h.extractor.Extract(ctx, payment.GCashProofDataURL)
		if err != nil {
			h.logger.Warn("payment proof text extraction failed", "error", err)
		} else {
			payment.OCRText = text
			payment.OCRCompleted = true
		}
	}

	placed, err := h.checkout.Build(cart.Restore(cmd.Lines()), cmd.Form(), payment)
	if err != nil {
		return nil, err
	}

	if err := h.store.Save(ctx, placed); err != nil {
		return nil, err
	}

	h.logger.Info("order placed",
		"orderId", placed.ID().String(),
		"total", float64(placed.Total()),
		"paymentMethod", string(placed.PaymentMethod()),
	)
	return placed, nil
}
