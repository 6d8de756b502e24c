package http

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"burgershop/internal/core/application/usecases/commands"
	"burgershop/internal/core/application/usecases/queries"
	"burgershop/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
)

func TestStatusCodeFor(t *testing.T) {
	tests := []struct {
		err  error
		want int
	}{
		{errs.NewObjectNotFoundError("orderId", "ORD-MISSING1"), http.StatusNotFound},
		{queries.ErrInvalidCredentials, http.StatusUnauthorized},
		{errs.NewInvalidTransitionError("delivered", "preparing"), http.StatusConflict},
		{commands.ErrEmailAlreadyRegistered, http.StatusConflict},
		{errs.NewOutOfServiceAreaError("Manila", "1000"), http.StatusUnprocessableEntity},
		{errs.NewPaymentProofMismatchError("reference not found in proof"), http.StatusUnprocessableEntity},
		{errs.NewPersistenceUnavailableError("find order", errors.New("dial refused")), http.StatusServiceUnavailable},
		{errs.NewValueIsRequiredError("name"), http.StatusBadRequest},
		{errs.NewValueIsInvalidError("status"), http.StatusBadRequest},
		{errs.NewValueIsOutOfRangeError("quantity", 0, 1, 99), http.StatusBadRequest},
		{commands.ErrCartIsEmpty, http.StatusBadRequest},
		{commands.ErrOrderIDsAreRequired, http.StatusBadRequest},
		{commands.ErrCancelledByIsRequired, http.StatusBadRequest},
		{commands.ErrMenuItemIDIsRequired, http.StatusBadRequest},
		{commands.ErrPasswordIsTooShort, http.StatusBadRequest},
		{queries.ErrCredentialsAreRequired, http.StatusBadRequest},
		{queries.ErrRangeDaysIsInvalid, http.StatusBadRequest},
		{errors.New("database exploded"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(fmt.Sprintf("%d_%s", tt.want, tt.err), func(t *testing.T) {
			assert.Equal(t, tt.want, statusCodeFor(tt.err))
		})
	}
}

func TestStatusCodeFor_WrappedErrorsStillMap(t *testing.T) {
	wrapped := fmt.Errorf("handling checkout: %w", errs.NewOutOfServiceAreaError("Manila", "1000"))
	assert.Equal(t, http.StatusUnprocessableEntity, statusCodeFor(wrapped))
}
