package queries

import (
	"errors"
	"strings"

	"burgershop/internal/core/domain/model/user"
	"burgershop/internal/pkg/guard"
)

var (
	ErrAuthenticateUserQueryIsNotConstructed = errors.New(
		"AuthenticateUserQuery must be created via NewAuthenticateUserQuery constructor",
	)
	ErrCredentialsAreRequired = errors.New("email and password are required")
)

// AuthenticateUserQuery verifies a login attempt.
type AuthenticateUserQuery struct {
	email    string
	password string

	guard guard.ConstructorGuard
}

// NewAuthenticateUserQuery creates a login query from the submitted form.
func NewAuthenticateUserQuery(email, password string) (AuthenticateUserQuery, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	if email == "" || password == "" {
		return AuthenticateUserQuery{}, ErrCredentialsAreRequired
	}

	return AuthenticateUserQuery{
		email:    email,
		password: password,
		guard:    guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q AuthenticateUserQuery) Validate() error {
	return q.guard.Validate(ErrAuthenticateUserQueryIsNotConstructed)
}

// Email returns the normalized login email.
func (q AuthenticateUserQuery) Email() string {
	return q.email
}

// Password returns the plaintext credential. It never leaves the handler.
func (q AuthenticateUserQuery) Password() string {
	return q.password
}

// AuthenticatedUserResponse is the account view returned on a successful
// login. The credential hash is never included.
type AuthenticatedUserResponse struct {
	ID           string            `json:"id"`
	Name         string            `json:"name"`
	Email        string            `json:"email"`
	Role         string            `json:"role"`
	Capabilities user.Capabilities `json:"capabilities"`
}
