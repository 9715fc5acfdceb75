package commands_test

import (
	"testing"

	"shiplabel/internal/core/application/usecases/commands"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewGenerateLabelCommand(t *testing.T) {
	t.Run("valid", func(t *testing.T) {
		cmd, err := commands.NewGenerateLabelCommand("1042", "04", commands.LabelOptions{Payer: "O"})
		require.NoError(t, err)

		assert.Equal(t, "1042", cmd.OrderID())
		assert.Equal(t, "04", cmd.Service())
		assert.Equal(t, "O", cmd.Options().Payer)
		assert.NoError(t, cmd.Validate())
	})

	t.Run("service and options are optional", func(t *testing.T) {
		cmd, err := commands.NewGenerateLabelCommand("1042", "", commands.LabelOptions{})
		require.NoError(t, err)
		assert.Empty(t, cmd.Service())
	})

	t.Run("order id is required", func(t *testing.T) {
		_, err := commands.NewGenerateLabelCommand("", "04", commands.LabelOptions{})
		assert.ErrorIs(t, err, commands.ErrOrderIDIsRequired)
	})

	t.Run("negative parcels rejected", func(t *testing.T) {
		_, err := commands.NewGenerateLabelCommand("1042", "", commands.LabelOptions{Parcels: -1})
		assert.ErrorIs(t, err, commands.ErrParcelsAreInvalid)
	})

	t.Run("zero value fails validation", func(t *testing.T) {
		var cmd commands.GenerateLabelCommand
		assert.ErrorIs(t, cmd.Validate(), commands.ErrGenerateLabelCommandIsNotConstructed)
	})
}
