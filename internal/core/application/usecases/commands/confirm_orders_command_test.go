package commands_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"settlement/internal/core/application/usecases/commands"
	"settlement/internal/core/domain/model/kernel"
)

func TestNewConfirmOrdersCommand(t *testing.T) {
	t.Run("valid command", func(t *testing.T) {
		ids := []kernel.UUID{kernel.NewUUID(), kernel.NewUUID()}

		cmd, err := commands.NewConfirmOrdersCommand(ids)

		require.NoError(t, err)
		assert.NoError(t, cmd.Validate())
		assert.Equal(t, ids, cmd.OrderIDs())
	})

	t.Run("empty id list is rejected", func(t *testing.T) {
		_, err := commands.NewConfirmOrdersCommand(nil)

		assert.ErrorIs(t, err, commands.ErrOrderIDsAreRequired)
	})

	t.Run("zero-value id is rejected", func(t *testing.T) {
		_, err := commands.NewConfirmOrdersCommand([]kernel.UUID{{}})

		assert.Error(t, err)
	})

	t.Run("zero value fails validation", func(t *testing.T) {
		var cmd commands.ConfirmOrdersCommand

		assert.ErrorIs(t, cmd.Validate(), commands.ErrConfirmOrdersCommandIsNotConstructed)
	})
}
