package ports

import (
	"context"

	"burgershop/internal/core/domain/model/user"
)

// UserRepository defines the persistence contract for user accounts.
type UserRepository interface {
	// Add persists a new user. Fails if the email is already registered;
	// emails are unique case-insensitively.
	Add(ctx context.Context, u *user.User) error

	// Update persists changes to an existing user.
	Update(ctx context.Context, u *user.User) error

	// Get retrieves a user by identifier.
	Get(ctx context.Context, id string) (*user.User, error)

	// GetByEmail retrieves a user by email, matched case-insensitively.
	GetByEmail(ctx context.Context, email string) (*user.User, error)
}
