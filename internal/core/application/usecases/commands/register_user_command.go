package commands

import (
	"errors"
	"strings"

	"burgershop/internal/pkg/guard"
)

var (
	ErrRegisterUserCommandIsNotConstructed = errors.New(
		"RegisterUserCommand must be created via NewRegisterUserCommand constructor",
	)
	ErrNameIsRequired     = errors.New("name is required")
	ErrEmailIsInvalid     = errors.New("a valid email is required")
	ErrPasswordIsTooShort = errors.New("password must be at least 6 characters")
)

// minPasswordLength is the weakest credential the registration form accepts.
const minPasswordLength = 6

// RegisterUserCommand registers a new account. Self-service registration
// always yields a customer; staff and admin accounts are provisioned by an
// admin changing the role afterwards.
type RegisterUserCommand struct {
	name     string
	email    string
	password string

	guard guard.ConstructorGuard
}

// NewRegisterUserCommand creates a registration command from the submitted form.
func NewRegisterUserCommand(name, email, password string) (RegisterUserCommand, error) {
	name = strings.TrimSpace(name)
	email = strings.ToLower(strings.TrimSpace(email))

	if name == "" {
		return RegisterUserCommand{}, ErrNameIsRequired
	}
	if email == "" || !strings.Contains(email, "@") {
		return RegisterUserCommand{}, ErrEmailIsInvalid
	}
	if len(password) < minPasswordLength {
		return RegisterUserCommand{}, ErrPasswordIsTooShort
	}

	return RegisterUserCommand{
		name:     name,
		email:    email,
		password: password,
		guard:    guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c RegisterUserCommand) Validate() error {
	return c.guard.Validate(ErrRegisterUserCommandIsNotConstructed)
}

// Name returns the display name.
func (c RegisterUserCommand) Name() string {
	return c.name
}

// Email returns the normalized email address.
func (c RegisterUserCommand) Email() string {
	return c.email
}

// Password returns the plaintext credential. It never leaves the handler.
func (c RegisterUserCommand) Password() string {
	return c.password
}
