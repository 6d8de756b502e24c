package menu_test

import (
	"testing"

	"burgershop/internal/core/domain/model/menu"
	"burgershop/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewMenuItem(t *testing.T) {
	t.Run("creates_valid_item", func(t *testing.T) {
		item, err := menu.NewMenuItem("7", "Chicken Wings", "Six pieces", 150, "mains", "wings.jpg",
			[]string{"Buffalo", "Garlic Parmesan"}, true)

		require.NoError(t, err)
		require.NoError(t, item.Validate())
		assert.Equal(t, "7", item.ID())
		assert.True(t, item.Featured())
		assert.True(t, item.HasFlavor("Buffalo"))
		assert.False(t, item.HasFlavor("Plain"))
	})

	t.Run("rejects_missing_fields", func(t *testing.T) {
		_, err := menu.NewMenuItem("", "Wings", "", 150, "mains", "", nil, false)
		require.ErrorIs(t, err, errs.ErrValueIsRequired)

		_, err = menu.NewMenuItem("7", "", "", 150, "mains", "", nil, false)
		require.ErrorIs(t, err, errs.ErrValueIsRequired)

		_, err = menu.NewMenuItem("7", "Wings", "", 150, "", "", nil, false)
		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("rejects_negative_price", func(t *testing.T) {
		_, err := menu.NewMenuItem("7", "Wings", "", -1, "mains", "", nil, false)
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})
}

func TestMenuItem_Update(t *testing.T) {
	item, err := menu.NewMenuItem("7", "Wings", "Six pieces", 150, "mains", "", nil, false)
	require.NoError(t, err)

	t.Run("edits_mutable_fields", func(t *testing.T) {
		require.NoError(t, item.Update("Wings Deluxe", "Eight pieces", 180, "mains", "new.jpg",
			[]string{"Buffalo"}, true))

		assert.Equal(t, "Wings Deluxe", item.Name())
		assert.Equal(t, "7", item.ID(), "identity must not change")
		assert.True(t, item.Featured())
	})

	t.Run("rejects_invalid_edit", func(t *testing.T) {
		require.Error(t, item.Update("", "", 180, "mains", "", nil, false))
		assert.Equal(t, "Wings Deluxe", item.Name(), "failed update must not mutate")
	})
}

func TestMenuItem_Validate(t *testing.T) {
	var zero menu.MenuItem
	require.ErrorIs(t, zero.Validate(), menu.ErrMenuItemIsNotConstructed)
}
