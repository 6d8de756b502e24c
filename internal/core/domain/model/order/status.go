package order

import (
	"fmt"
	"strings"

	"burgershop/internal/pkg/errs"
)

// Status represents the lifecycle state of an order.
// It implements a state machine with defined transitions to ensure
// orders follow the kitchen workflow.
//
// State transitions:
//
//	preparing ──> on the way ──> delivered
//	    │
//	    └──> cancelled
//
// Advancing a delivered, completed, or cancelled order resets it to preparing.
// This mirrors the staff "advance" button cycling back around and is kept as
// an explicit fallback, not treated as a bug.
//
// "completed" is a legacy alias of delivered: it is accepted when restoring
// persisted orders and counted as delivered everywhere, but new transitions
// never produce it.
type Status string

const (
	// Preparing is the initial status of every newly placed order.
	Preparing Status = "preparing"

	// OnTheWay indicates the order has left the kitchen.
	OnTheWay Status = "on the way"

	// Delivered indicates the order reached the customer. Terminal.
	Delivered Status = "delivered"

	// Completed is a legacy alias of Delivered found in older rows. Terminal.
	Completed Status = "completed"

	// Cancelled indicates the order was cancelled while preparing. Terminal.
	Cancelled Status = "cancelled"
)

// getActiveStatuses returns the statuses staff may select manually.
// Terminal statuses are reached through Cancel or Advance, never SetStatus.
func getActiveStatuses() map[Status]bool {
	return map[Status]bool{
		Preparing: true,
		OnTheWay:  true,
		Delivered: true,
	}
}

// getKnownStatuses returns every status accepted from persistence.
func getKnownStatuses() map[Status]bool {
	return map[Status]bool{
		Preparing: true,
		OnTheWay:  true,
		Delivered: true,
		Completed: true,
		Cancelled: true,
	}
}

// StatusFromString parses a status from its persisted or user-supplied form.
// Input is trimmed and lower-cased; the spelling variants "ontheway" and
// "on-the-way" found in older rows normalize to OnTheWay.
func StatusFromString(s string) (Status, error) {
	normalized := Status(strings.ToLower(strings.TrimSpace(s)))
	if normalized == "ontheway" || normalized == "on-the-way" {
		normalized = OnTheWay
	}
	if !getKnownStatuses()[normalized] {
		return "", errs.NewValueIsInvalidErrorWithCause("status",
			fmt.Errorf("%q is not a known order status", s))
	}
	return normalized, nil
}

// String returns the canonical lowercase name of the status.
func (s Status) String() string {
	return string(s)
}

// Validate checks that the status is one of the known values.
func (s Status) Validate() error {
	if !getKnownStatuses()[s] {
		return errs.NewValueIsInvalidErrorWithCause("status",
			fmt.Errorf("%q is not a known order status", string(s)))
	}
	return nil
}

// ValidateActive checks that the status may be set manually by staff.
// Only the three active statuses qualify; cancelled and completed are
// reached through their dedicated operations.
func (s Status) ValidateActive() error {
	if !getActiveStatuses()[s] {
		return errs.NewValueIsInvalidErrorWithCause("status",
			fmt.Errorf("%q cannot be set manually", string(s)))
	}
	return nil
}

// IsTerminal reports whether no further status mutation is permitted.
func (s Status) IsTerminal() bool {
	return s == Delivered || s == Completed || s == Cancelled
}

// IsSale reports whether the order counts toward sales totals.
func (s Status) IsSale() bool {
	return s == Delivered || s == Completed
}

// Advance returns the next status in the kitchen workflow:
// preparing -> on the way -> delivered. Any other current status,
// including the terminal ones, resets to preparing.
func (s Status) Advance() Status {
	switch s {
	case Preparing:
		return OnTheWay
	case OnTheWay:
		return Delivered
	default:
		return Preparing
	}
}

// ValidateCancel checks whether an order in this status may be cancelled.
// Only preparing orders are cancellable: once the order is on the way the
// kitchen has committed it, and terminal orders are immutable.
//
// Returns an InvalidTransitionError otherwise.
func (s Status) ValidateCancel() error {
	if s == Delivered || s == Completed || s == Cancelled || s == OnTheWay {
		return errs.NewInvalidTransitionError(string(s), string(Cancelled))
	}
	return nil
}
