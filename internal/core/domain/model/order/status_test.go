package order_test

import (
	"testing"

	"burgershop/internal/core/domain/model/order"
	"burgershop/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatusFromString(t *testing.T) {
	tests := []struct {
		input string
		want  order.Status
	}{
		{"preparing", order.Preparing},
		{"On The Way", order.OnTheWay},
		{"ontheway", order.OnTheWay},
		{"on-the-way", order.OnTheWay},
		{" delivered ", order.Delivered},
		{"completed", order.Completed},
		{"CANCELLED", order.Cancelled},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := order.StatusFromString(tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}

	t.Run("rejects_unknown_status", func(t *testing.T) {
		_, err := order.StatusFromString("placed-ish")
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})
}

func TestStatus_Advance(t *testing.T) {
	t.Run("preparing_advances_to_on_the_way", func(t *testing.T) {
		assert.Equal(t, order.OnTheWay, order.Preparing.Advance())
	})

	t.Run("on_the_way_advances_to_delivered", func(t *testing.T) {
		assert.Equal(t, order.Delivered, order.OnTheWay.Advance())
	})

	// The staff advance button cycles back around from any other state.
	// This is intentional behavior, not a bug to fix.
	t.Run("delivered_resets_to_preparing", func(t *testing.T) {
		assert.Equal(t, order.Preparing, order.Delivered.Advance())
	})

	t.Run("completed_resets_to_preparing", func(t *testing.T) {
		assert.Equal(t, order.Preparing, order.Completed.Advance())
	})

	t.Run("cancelled_resets_to_preparing", func(t *testing.T) {
		assert.Equal(t, order.Preparing, order.Cancelled.Advance())
	})
}

// Regression test pinning the stricter cancellation guard: the original UI
// advance button treated "on the way" as one step from done while the
// cancellation code rejected it, and the rejection is the rule we keep.
func TestStatus_ValidateCancel(t *testing.T) {
	t.Run("preparing_is_cancellable", func(t *testing.T) {
		require.NoError(t, order.Preparing.ValidateCancel())
	})

	for _, s := range []order.Status{order.OnTheWay, order.Delivered, order.Completed, order.Cancelled} {
		t.Run(s.String()+"_is_not_cancellable", func(t *testing.T) {
			require.ErrorIs(t, s.ValidateCancel(), errs.ErrInvalidTransition)
		})
	}
}

func TestStatus_ValidateActive(t *testing.T) {
	for _, s := range []order.Status{order.Preparing, order.OnTheWay, order.Delivered} {
		require.NoError(t, s.ValidateActive(), s)
	}
	for _, s := range []order.Status{order.Completed, order.Cancelled, order.Status("placed")} {
		require.Error(t, s.ValidateActive(), s)
	}
}

func TestStatus_IsTerminal(t *testing.T) {
	assert.False(t, order.Preparing.IsTerminal())
	assert.False(t, order.OnTheWay.IsTerminal())
	assert.True(t, order.Delivered.IsTerminal())
	assert.True(t, order.Completed.IsTerminal())
	assert.True(t, order.Cancelled.IsTerminal())
}

func TestStatus_IsSale(t *testing.T) {
	assert.True(t, order.Delivered.IsSale())
	assert.True(t, order.Completed.IsSale())
	assert.False(t, order.Preparing.IsSale())
	assert.False(t, order.OnTheWay.IsSale())
	assert.False(t, order.Cancelled.IsSale())
}
