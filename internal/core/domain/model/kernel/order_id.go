package kernel

import (
	"fmt"
	"regexp"
	"strings"

	"burgershop/internal/pkg/errs"

	"github.com/google/uuid"
)

// OrderIDPrefix is the fixed, human-recognizable prefix of every order identifier.
const OrderIDPrefix = "ORD-"

// ErrOrderIDIsNotConstructed indicates that an OrderID was not produced through
// NewOrderID or OrderIDFromString.
var ErrOrderIDIsNotConstructed = errs.NewValueIsRequiredError(
	"OrderID must be created via NewOrderID or OrderIDFromString")

var orderIDPattern = regexp.MustCompile(`^ORD-[0-9A-Z]{8,}$`)

// OrderID is a value object identifying an order. Identifiers are externally
// visible and human-typable: a fixed "ORD-" prefix followed by at least eight
// uppercase alphanumeric characters.
//
// NewOrderID draws the suffix from a random UUID, which keeps collisions
// negligible without sacrificing typability.
//
// Example:
//
//	id := kernel.NewOrderID()
//	fmt.Println(id.String()) // e.g. "ORD-9F86D081"
type OrderID struct {
	value string
}

// NewOrderID generates a new order identifier with a random 8-character suffix.
func NewOrderID() OrderID {
	raw := strings.ToUpper(strings.ReplaceAll(uuid.NewString(), "-", ""))
	return OrderID{value: OrderIDPrefix + raw[:8]}
}

// OrderIDFromString parses an order identifier from its string form.
// The input is upper-cased before validation so identifiers typed by
// customers remain usable.
func OrderIDFromString(s string) (OrderID, error) {
	normalized := strings.ToUpper(strings.TrimSpace(s))
	if !orderIDPattern.MatchString(normalized) {
		return OrderID{}, errs.NewValueIsInvalidErrorWithCause("orderId",
			fmt.Errorf("%q is not a valid order identifier", s))
	}
	return OrderID{value: normalized}, nil
}

// String returns the canonical string form, e.g. "ORD-9F86D081".
func (id OrderID) String() string {
	return id.value
}

// IsEqual compares two order identifiers for equality.
func (id OrderID) IsEqual(other OrderID) bool {
	return id.value == other.value
}

// Validate checks that the identifier was properly constructed.
func (id OrderID) Validate() error {
	if id.value == "" {
		return ErrOrderIDIsNotConstructed
	}
	return nil
}
