// Package services provides domain services that orchestrate business operations
// across multiple domain entities in the ordering system. It implements workflows
// that don't naturally belong to a single aggregate root.
//
// The package includes:
//   - ShippingFeeResolver: tiered delivery-fee lookup from address fields
//   - BatangasServiceArea: best-effort delivery-area membership check
//   - CheckoutService: cart + form + payment validation composing a new Order
//   - DashboardAggregator: sales metrics, time series, and top-item rankings
//
// Domain services coordinate between aggregates, implementing business logic that
// spans multiple bounded contexts following Domain-Driven Design principles.
package services
