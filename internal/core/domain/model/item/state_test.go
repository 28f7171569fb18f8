package item_test

import (
	"testing"

	"storefront/internal/core/domain/model/item"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewTransition(t *testing.T) {
	t.Run("creates valid edge", func(t *testing.T) {
		tr, err := item.NewTransition(item.StateAvailable, item.StateHeld, "customer reservation")

		require.NoError(t, err)
		require.NoError(t, tr.Validate())
		assert.Equal(t, item.StateAvailable, tr.From())
		assert.Equal(t, item.StateHeld, tr.To())
		assert.Equal(t, "customer reservation", tr.Description())
		assert.Equal(t, "Available -> Held", tr.String())
	})

	t.Run("rejects self transition", func(t *testing.T) {
		_, err := item.NewTransition(item.StateHeld, item.StateHeld, "")
		require.Error(t, err)
	})

	t.Run("rejects empty state names", func(t *testing.T) {
		_, err := item.NewTransition("", item.StateHeld, "")
		require.Error(t, err)

		_, err = item.NewTransition(item.StateAvailable, "", "")
		require.Error(t, err)
	})
}

func TestTransition_ZeroValueFailsValidation(t *testing.T) {
	var tr item.Transition
	require.Error(t, tr.Validate())
}

func TestState_Validate(t *testing.T) {
	require.NoError(t, item.StateAvailable.Validate())
	require.NoError(t, item.State("RepairQueue").Validate())
	require.Error(t, item.State("").Validate())
}
