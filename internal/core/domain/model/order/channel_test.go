package order_test

import (
	"testing"
	"time"

	"settlement/internal/core/domain/model/order"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestChannel(t *testing.T) {
	t.Run("prefixes", func(t *testing.T) {
		assert.Equal(t, "MK", order.ChannelMarketplace.Prefix())
		assert.Equal(t, "PL", order.ChannelPlatform.Prefix())
		assert.Equal(t, "CS", order.ChannelCustomerService.Prefix())
		assert.Equal(t, "", order.ChannelUnknown.Prefix())
	})

	t.Run("initial statuses", func(t *testing.T) {
		assert.Equal(t, order.Received, order.ChannelMarketplace.InitialStatus())
		assert.Equal(t, order.Uploaded, order.ChannelPlatform.InitialStatus())
		assert.Equal(t, order.Received, order.ChannelCustomerService.InitialStatus())
	})

	t.Run("validate", func(t *testing.T) {
		require.NoError(t, order.ChannelPlatform.Validate())
		require.Error(t, order.ChannelUnknown.Validate())
		require.Error(t, order.Channel(42).Validate())
	})
}

func TestGenerateNumber(t *testing.T) {
	at := time.Date(2026, 8, 28, 15, 30, 0, 0, time.UTC)

	t.Run("should encode channel prefix, timestamp and sequence", func(t *testing.T) {
		number, err := order.GenerateNumber(order.ChannelPlatform, at, 42)

		require.NoError(t, err)
		assert.Equal(t, order.Number("PL-20260828153000-0042"), number)
	})

	t.Run("should wrap sequence at four digits", func(t *testing.T) {
		number, err := order.GenerateNumber(order.ChannelCustomerService, at, 10001)

		require.NoError(t, err)
		assert.Equal(t, order.Number("CS-20260828153000-0001"), number)
	})

	t.Run("should reject invalid channel", func(t *testing.T) {
		_, err := order.GenerateNumber(order.ChannelUnknown, at, 1)
		require.Error(t, err)
	})

	t.Run("should reject negative sequence", func(t *testing.T) {
		_, err := order.GenerateNumber(order.ChannelPlatform, at, -1)
		require.Error(t, err)
	})
}

func TestNumber_Validate(t *testing.T) {
	require.NoError(t, order.Number("MK-20260828153000-0001").Validate())
	require.Error(t, order.Number("").Validate())
}
