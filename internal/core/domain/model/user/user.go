// Package user provides the User aggregate, the role enumeration, and the
// capability view the HTTP layer authorizes against.
package user

import (
	"errors"
	"fmt"
	"strings"

	"burgershop/internal/pkg/errs"
)

// ErrUserIsNotConstructed is returned when a User was not created through
// NewUser or RestoreUser.
var ErrUserIsNotConstructed = errors.New("User must be created via NewUser or RestoreUser")

// Role determines a user's capability set. Roles change only through admin
// action, never as a side effect of anything a customer does.
type Role string

const (
	// RoleCustomer may place, track, and cancel their own orders.
	RoleCustomer Role = "customer"

	// RoleStaff may additionally manage order statuses.
	RoleStaff Role = "staff"

	// RoleAdmin may additionally manage the menu, users, and dashboard.
	RoleAdmin Role = "admin"
)

// RoleFromString parses a role from its persisted form.
func RoleFromString(s string) (Role, error) {
	r := Role(strings.ToLower(strings.TrimSpace(s)))
	switch r {
	case RoleCustomer, RoleStaff, RoleAdmin:
		return r, nil
	default:
		return "", errs.NewValueIsInvalidErrorWithCause("role",
			fmt.Errorf("%q is not a known role", s))
	}
}

// String returns the lowercase role name.
func (r Role) String() string {
	return string(r)
}

// Capabilities is the role-scoped view the rendering and HTTP layers work
// from instead of sniffing the role string everywhere.
type Capabilities struct {
	PlaceOrders   bool
	ManageOrders  bool
	ManageMenu    bool
	ManageUsers   bool
	ViewDashboard bool
}

// Capabilities computes the capability set granted by the role.
func (r Role) Capabilities() Capabilities {
	switch r {
	case RoleAdmin:
		return Capabilities{
			PlaceOrders:   true,
			ManageOrders:  true,
			ManageMenu:    true,
			ManageUsers:   true,
			ViewDashboard: true,
		}
	case RoleStaff:
		return Capabilities{
			ManageOrders:  true,
			ViewDashboard: true,
		}
	default:
		return Capabilities{PlaceOrders: true}
	}
}

// User is an account holder. The email doubles as the login identifier and is
// unique case-insensitively; it is stored lowercased. The password is an
// opaque bcrypt hash produced outside the domain.
type User struct {
	id           string
	name         string
	email        string
	passwordHash string
	role         Role

	isConstructed bool
}

// NewUser creates a user with a normalized email and a pre-hashed credential.
func NewUser(id, name, email, passwordHash string, role Role) (*User, error) {
	if id == "" {
		return nil, errs.NewValueIsRequiredError("id")
	}
	email = strings.ToLower(strings.TrimSpace(email))
	if email == "" || !strings.Contains(email, "@") {
		return nil, errs.NewValueIsInvalidError("email")
	}
	if passwordHash == "" {
		return nil, errs.NewValueIsRequiredError("password")
	}
	if _, err := RoleFromString(string(role)); err != nil {
		return nil, err
	}

	return &User{
		id:            id,
		name:          name,
		email:         email,
		passwordHash:  passwordHash,
		role:          role,
		isConstructed: true,
	}, nil
}

// RestoreUser reconstructs a user from persistence.
func RestoreUser(id, name, email, passwordHash string, role Role) (*User, error) {
	if id == "" {
		return nil, errs.NewValueIsRequiredError("id")
	}
	if err := role.validate(); err != nil {
		return nil, err
	}

	return &User{
		id:            id,
		name:          name,
		email:         strings.ToLower(strings.TrimSpace(email)),
		passwordHash:  passwordHash,
		role:          role,
		isConstructed: true,
	}, nil
}

func (r Role) validate() error {
	_, err := RoleFromString(string(r))
	return err
}

// Validate ensures the User was created via a constructor.
func (u *User) Validate() error {
	if u == nil || !u.isConstructed {
		return ErrUserIsNotConstructed
	}
	return nil
}

// ID returns the user's identifier.
func (u *User) ID() string { return u.id }

// Name returns the display name.
func (u *User) Name() string { return u.name }

// Email returns the normalized (lowercase) email address.
func (u *User) Email() string { return u.email }

// PasswordHash returns the opaque credential hash. Never serialized to clients.
func (u *User) PasswordHash() string { return u.passwordHash }

// Role returns the user's role.
func (u *User) Role() Role { return u.role }

// Capabilities returns the capability view for the user's role.
func (u *User) Capabilities() Capabilities { return u.role.Capabilities() }

// ChangeRole sets a new role. Only admin flows call this.
func (u *User) ChangeRole(r Role) error {
	if err := r.validate(); err != nil {
		return err
	}
	u.role = r
	return nil
}

// Rename updates the display name.
func (u *User) Rename(name string) {
	u.name = name
}
