package queries

import (
	"context"
	"errors"

	"burgershop/internal/core/ports"
	"burgershop/internal/pkg/errs"

	"golang.org/x/crypto/bcrypt"
)

// ErrInvalidCredentials is returned for a wrong email or password. The two
// cases are indistinguishable on purpose.
var ErrInvalidCredentials = errors.New("invalid email or password")

// AuthenticateUserQueryHandler verifies a login against the stored bcrypt
// hash and returns the role-scoped account view.
type AuthenticateUserQueryHandler struct {
	users ports.UserRepository
}

// NewAuthenticateUserQueryHandler creates a handler for login verification.
func NewAuthenticateUserQueryHandler(users ports.UserRepository) AuthenticateUserQueryHandler {
	return AuthenticateUserQueryHandler{users: users}
}

// Handle verifies the credentials.
func (h AuthenticateUserQueryHandler) Handle(
	ctx context.Context,
	query AuthenticateUserQuery,
) (AuthenticatedUserResponse, error) {
	if err := query.Validate(); err != nil {
		return AuthenticatedUserResponse{}, err
	}

	account, err := h.users.GetByEmail(ctx, query.Email())
	if err != nil {
		if errors.Is(err, errs.ErrObjectNotFound) {
			return AuthenticatedUserResponse{}, ErrInvalidCredentials
		}
		return AuthenticatedUserResponse{}, err
	}

	if bcrypt.CompareHashAndPassword([]byte(account.PasswordHash()), []byte(query.Password())) != nil {
		return AuthenticatedUserResponse{}, ErrInvalidCredentials
	}

	return AuthenticatedUserResponse{
		ID:           account.ID(),
		Name:         account.Name(),
		Email:        account.Email(),
		Role:         account.Role().String(),
		Capabilities: account.Capabilities(),
	}, nil
}
