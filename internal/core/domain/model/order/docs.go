// Package order provides domain entities and business logic for restaurant
// order management. It implements the Order aggregate root with lifecycle
// management and state transitions.
//
// The package includes:
//   - Order: The aggregate root that manages order identity, pricing, and lifecycle
//   - Status: A state machine that enforces valid order status transitions
//   - Item: A priced line item captured from the cart at checkout
//   - PaymentDetails: Method-specific payment data safe to persist
//
// Key business rules:
//   - An order's total always equals subtotal plus shipping fee at creation
//   - Status follows preparing -> on the way -> delivered; advancing from any
//     other state resets to preparing
//   - Cancellation is allowed only while preparing
//   - Every transition stamps statusTimestamps for the new status; stamps of
//     prior statuses are never removed
//   - Full card numbers and CVCs are never retained, only last4 and expiry
package order
