package commands

import (
	"context"
	"errors"
	"log/slog"

	"burgershop/internal/core/domain/model/user"
	"burgershop/internal/pkg/errs"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

// ErrEmailAlreadyRegistered is returned when the email is taken. Emails are
// unique case-insensitively.
var ErrEmailAlreadyRegistered = errors.New("email is already registered")

// RegisterUserCommandHandler creates a new customer account with a bcrypt
// password hash. The plaintext credential exists only for the duration of
// the handler call.
type RegisterUserCommandHandler struct {
	uowFactory UserUoWFactory
	logger     *slog.Logger
}

// NewRegisterUserCommandHandler creates a handler for account registration.
func NewRegisterUserCommandHandler(uowFactory UserUoWFactory, logger *slog.Logger) RegisterUserCommandHandler {
	return RegisterUserCommandHandler{uowFactory: uowFactory, logger: logger}
}

// Handle registers the account and returns the created user.
func (h *RegisterUserCommandHandler) Handle(ctx context.Context, cmd RegisterUserCommand) (*user.User, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(cmd.Password()), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	userRepo := uow.UserRepository()
	if _, err := userRepo.GetByEmail(ctx, cmd.Email()); err == nil {
		return nil, ErrEmailAlreadyRegistered
	} else if !errors.Is(err, errs.ErrObjectNotFound) {
		return nil, err
	}

	account, err := user.NewUser(uuid.NewString(), cmd.Name(), cmd.Email(), string(hash), user.RoleCustomer)
	if err != nil {
		return nil, err
	}

	if err := userRepo.Add(ctx, account); err != nil {
		return nil, err
	}

	if err := uow.Commit(ctx); err != nil {
		return nil, err
	}

	h.logger.Info("user registered", "userId", account.ID())
	return account, nil
}
