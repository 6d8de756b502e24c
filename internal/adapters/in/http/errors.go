package http

import (
	"errors"
	"net/http"

	"burgershop/internal/core/application/usecases/commands"
	"burgershop/internal/core/application/usecases/queries"
	"burgershop/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// errorResponse is the JSON error envelope shared by every endpoint.
type errorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// statusCodeFor maps domain and application errors onto HTTP status codes.
// Anything unrecognized is a 500.
func statusCodeFor(err error) int {
	switch {
	case errors.Is(err, errs.ErrObjectNotFound):
		return http.StatusNotFound

	case errors.Is(err, queries.ErrInvalidCredentials):
		return http.StatusUnauthorized

	case errors.Is(err, errs.ErrInvalidTransition),
		errors.Is(err, commands.ErrEmailAlreadyRegistered):
		return http.StatusConflict

	case errors.Is(err, errs.ErrOutOfServiceArea),
		errors.Is(err, errs.ErrPaymentProofMismatch):
		return http.StatusUnprocessableEntity

	case errors.Is(err, errs.ErrPersistenceUnavailable):
		return http.StatusServiceUnavailable

	case errors.Is(err, errs.ErrValueIsRequired),
		errors.Is(err, errs.ErrValueIsInvalid),
		errors.Is(err, errs.ErrValueIsOutOfRange),
		errors.Is(err, commands.ErrCartIsEmpty),
		errors.Is(err, commands.ErrOrderIDsAreRequired),
		errors.Is(err, commands.ErrCancelledByIsRequired),
		errors.Is(err, commands.ErrMenuItemIDIsRequired),
		errors.Is(err, commands.ErrNameIsRequired),
		errors.Is(err, commands.ErrEmailIsInvalid),
		errors.Is(err, commands.ErrPasswordIsTooShort),
		errors.Is(err, queries.ErrCustomerEmailIsRequired),
		errors.Is(err, queries.ErrRangeDaysIsInvalid),
		errors.Is(err, queries.ErrCredentialsAreRequired):
		return http.StatusBadRequest

	default:
		return http.StatusInternalServerError
	}
}

// jsonError writes the mapped error envelope. Internal errors are not echoed
// back to the client.
func jsonError(ctx echo.Context, err error) error {
	code := statusCodeFor(err)
	message := err.Error()
	if code == http.StatusInternalServerError {
		message = "internal server error"
	}
	return ctx.JSON(code, errorResponse{Code: code, Message: message})
}
