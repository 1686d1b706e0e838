package commands_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"settlement/internal/core/application/usecases/commands"
	"settlement/internal/core/domain/model/kernel"
	"settlement/internal/core/domain/model/order"
)

func validRecipient() order.Recipient {
	return order.Recipient{Name: "Kim Jiwoo", Phone: "010-1234-5678", Address: "12 Teheran-ro, Seoul"}
}

func TestNewCreateOrderCommand(t *testing.T) {
	orgID := kernel.NewUUID()

	t.Run("valid command", func(t *testing.T) {
		cmd, err := commands.NewCreateOrderCommand(
			kernel.NewUUID(), order.ChannelPlatform, "smartstore", "black / XL",
			validRecipient(), 2, 25000, 1000, &orgID)

		require.NoError(t, err)
		assert.NoError(t, cmd.Validate())
		assert.Equal(t, order.ChannelPlatform, cmd.Channel())
		assert.Equal(t, kernel.Money(25000), cmd.SettlementAmount())
	})

	t.Run("market name is required", func(t *testing.T) {
		_, err := commands.NewCreateOrderCommand(
			kernel.NewUUID(), order.ChannelPlatform, "", "black / XL",
			validRecipient(), 2, 25000, 0, &orgID)

		assert.ErrorIs(t, err, commands.ErrMarketNameIsRequired)
	})

	t.Run("recipient name is required", func(t *testing.T) {
		_, err := commands.NewCreateOrderCommand(
			kernel.NewUUID(), order.ChannelPlatform, "smartstore", "black / XL",
			order.Recipient{Phone: "010-1234-5678"}, 2, 25000, 0, &orgID)

		assert.ErrorIs(t, err, commands.ErrRecipientNameIsRequired)
	})

	t.Run("quantity must be positive", func(t *testing.T) {
		_, err := commands.NewCreateOrderCommand(
			kernel.NewUUID(), order.ChannelPlatform, "smartstore", "black / XL",
			validRecipient(), 0, 25000, 0, &orgID)

		assert.ErrorIs(t, err, commands.ErrQuantityIsInvalid)
	})

	t.Run("negative settlement amount is rejected", func(t *testing.T) {
		_, err := commands.NewCreateOrderCommand(
			kernel.NewUUID(), order.ChannelPlatform, "smartstore", "black / XL",
			validRecipient(), 2, -1, 0, &orgID)

		assert.Error(t, err)
	})

	t.Run("zero value fails validation", func(t *testing.T) {
		var cmd commands.CreateOrderCommand

		assert.ErrorIs(t, cmd.Validate(), commands.ErrCreateOrderCommandIsNotConstructed)
	})
}
