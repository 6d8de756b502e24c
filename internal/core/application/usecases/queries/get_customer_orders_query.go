package queries

import (
	"errors"
	"strings"

	"burgershop/internal/pkg/guard"
)

var (
	ErrGetCustomerOrdersQueryIsNotConstructed = errors.New(
		"GetCustomerOrdersQuery must be created via NewGetCustomerOrdersQuery constructor",
	)
	ErrCustomerEmailIsRequired = errors.New("customer email is required")
)

// GetCustomerOrdersQuery retrieves a customer's own orders, newest first.
type GetCustomerOrdersQuery struct {
	email string

	guard guard.ConstructorGuard
}

// NewGetCustomerOrdersQuery creates a query for the given customer email.
// The email is matched case-insensitively.
func NewGetCustomerOrdersQuery(email string) (GetCustomerOrdersQuery, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	if email == "" {
		return GetCustomerOrdersQuery{}, ErrCustomerEmailIsRequired
	}

	return GetCustomerOrdersQuery{email: email, guard: guard.NewConstructorGuard()}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetCustomerOrdersQuery) Validate() error {
	return q.guard.Validate(ErrGetCustomerOrdersQueryIsNotConstructed)
}

// Email returns the normalized customer email.
func (q GetCustomerOrdersQuery) Email() string {
	return q.email
}
