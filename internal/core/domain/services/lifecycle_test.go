package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"settlement/internal/core/domain/model/kernel"
	"settlement/internal/core/domain/model/order"
)

func testOrder(t *testing.T, settlementAmount kernel.Money, cashUsed kernel.Money) *order.Order {
	t.Helper()

	orgID := kernel.NewUUID()
	number, err := order.GenerateNumber(order.ChannelPlatform, time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC), 1)
	require.NoError(t, err)

	o, err := order.NewOrder(
		kernel.NewUUID(),
		number,
		order.ChannelPlatform,
		"smartstore",
		"black / XL",
		order.Recipient{Name: "Kim Jiwoo", Phone: "010-1234-5678", Address: "12 Teheran-ro, Seoul"},
		1,
		settlementAmount,
		cashUsed,
		&orgID,
	)
	require.NoError(t, err)
	return o
}

func toPreparing(t *testing.T, o *order.Order, now time.Time) *order.Order {
	t.Helper()
	require.NoError(t, o.Confirm(now))
	require.NoError(t, o.ConfirmPayment(now))
	require.NoError(t, o.SendToVendor("Hanjin Fulfillment"))
	return o
}

func toShipped(t *testing.T, o *order.Order, now time.Time) *order.Order {
	t.Helper()
	toPreparing(t, o, now)
	require.NoError(t, o.StageTracking("CJ Logistics", "6882134970"))
	require.NoError(t, o.RegisterTracking(now))
	return o
}

func Test_Lifecycle_Execute_AllOrNothingRejectsWholeSet(t *testing.T) {
	now := time.Date(2024, 3, 2, 9, 30, 0, 0, time.UTC)
	complete1 := toPreparing(t, testOrder(t, 1000, 0), now)
	complete2 := toPreparing(t, testOrder(t, 2000, 0), now)
	incomplete := toPreparing(t, testOrder(t, 500, 0), now)

	staged := map[kernel.UUID]Tracking{
		complete1.ID():  {CourierCompany: "CJ Logistics", TrackingNumber: "1111"},
		complete2.ID():  {CourierCompany: "CJ Logistics", TrackingNumber: "2222"},
		incomplete.ID(): {CourierCompany: "CJ Logistics"},
	}

	result := NewLifecycle().Execute(
		RegisterTrackingOperation(now, staged),
		[]*order.Order{complete1, complete2, incomplete},
	)

	assert.False(t, result.Applied)
	assert.Empty(t, result.UpdatedOrders)
	assert.Empty(t, result.UpdatedOrderIDs)
	assert.Equal(t, 1, result.RejectedCount)
	require.Len(t, result.RejectedOrders, 1)
	assert.Equal(t, incomplete.ID(), result.RejectedOrders[0].ID)
	assert.Equal(t, incomplete.Number(), result.RejectedOrders[0].Number)
	assert.Contains(t, result.RejectedOrders[0].Reason, "trackingNumber")
}

func Test_Lifecycle_Execute_BestEffortAppliesValidSubset(t *testing.T) {
	now := time.Date(2024, 3, 2, 9, 30, 0, 0, time.UTC)
	uploaded := testOrder(t, 1000, 0)
	shipped := toShipped(t, testOrder(t, 2000, 0), now)

	result := NewLifecycle().Execute(
		ConfirmOrdersOperation(now),
		[]*order.Order{uploaded, shipped},
	)

	assert.True(t, result.Applied)
	require.Len(t, result.UpdatedOrders, 1)
	assert.Equal(t, []kernel.UUID{uploaded.ID()}, result.UpdatedOrderIDs)
	assert.Equal(t, 1, result.RejectedCount)
	require.Len(t, result.RejectedOrders, 1)
	assert.Equal(t, shipped.ID(), result.RejectedOrders[0].ID)

	assert.Equal(t, order.OrderConfirmed, uploaded.Status())
	assert.Equal(t, order.Shipped, shipped.Status())
}

func Test_Lifecycle_Execute_SendToVendorOnShippedIsRejected(t *testing.T) {
	now := time.Date(2024, 3, 2, 9, 30, 0, 0, time.UTC)
	shipped := toShipped(t, testOrder(t, 1000, 0), now)

	result := NewLifecycle().Execute(
		SendToVendorOperation(""),
		[]*order.Order{shipped},
	)

	assert.False(t, result.Applied)
	assert.Empty(t, result.UpdatedOrderIDs)
	require.Len(t, result.RejectedOrders, 1)
	assert.Equal(t, shipped.ID(), result.RejectedOrders[0].ID)
	assert.NotEmpty(t, result.RejectedOrders[0].Reason)
	assert.Equal(t, order.Shipped, shipped.Status())
}

func Test_Lifecycle_Execute_CapsReportedRejectionsForAllOrNothing(t *testing.T) {
	now := time.Date(2024, 3, 2, 9, 30, 0, 0, time.UTC)
	var orders []*order.Order
	for range 8 {
		orders = append(orders, toShipped(t, testOrder(t, 1000, 0), now))
	}

	result := NewLifecycle().Execute(SendToVendorOperation(""), orders)

	assert.False(t, result.Applied)
	assert.Equal(t, 8, result.RejectedCount)
	assert.Len(t, result.RejectedOrders, maxReportedRejections)
}

func Test_Lifecycle_Execute_CancelRoundTripLeavesOrderUntouched(t *testing.T) {
	now := time.Date(2024, 3, 2, 9, 30, 0, 0, time.UTC)
	o := toPreparing(t, testOrder(t, 1000, 0), now)
	vendorBefore := o.VendorName()
	amountBefore := o.SettlementAmount()

	lifecycle := NewLifecycle()

	requested := lifecycle.Execute(RequestCancelOperation(now.Add(time.Hour)), []*order.Order{o})
	require.Len(t, requested.UpdatedOrders, 1)
	assert.Equal(t, order.CancelRequested, o.Status())

	rejected := lifecycle.Execute(RejectCancelOperation(), []*order.Order{o})
	require.Len(t, rejected.UpdatedOrders, 1)

	assert.Equal(t, order.Preparing, o.Status())
	assert.Equal(t, vendorBefore, o.VendorName())
	assert.Equal(t, amountBefore, o.SettlementAmount())
	assert.Nil(t, o.CanceledAt())
}

func Test_Lifecycle_Execute_CompleteRefundPerVariant(t *testing.T) {
	now := time.Date(2024, 3, 2, 9, 30, 0, 0, time.UTC)
	lifecycle := NewLifecycle()

	canceled := func() *order.Order {
		o := toPreparing(t, testOrder(t, 1000, 0), now)
		require.NoError(t, o.RequestCancel(now))
		require.NoError(t, o.ApproveCancel(now))
		return o
	}

	t.Run("platform variant promotes to a terminal refund status", func(t *testing.T) {
		o := canceled()
		result := lifecycle.Execute(CompleteRefundOperation(now, order.VariantPlatform), []*order.Order{o})

		assert.True(t, result.Applied)
		assert.Equal(t, order.RefundCompleted, o.Status())
		assert.NotNil(t, o.RefundProcessedAt())
	})

	t.Run("marketplace variant keeps the canceled status", func(t *testing.T) {
		o := canceled()
		result := lifecycle.Execute(CompleteRefundOperation(now, order.VariantMarketplace), []*order.Order{o})

		assert.True(t, result.Applied)
		assert.Equal(t, order.CancelCompleted, o.Status())
		assert.NotNil(t, o.RefundProcessedAt())
	})

	t.Run("second refund fails the whole set", func(t *testing.T) {
		o := canceled()
		require.NoError(t, o.CompleteRefund(now, order.VariantMarketplace))

		result := lifecycle.Execute(CompleteRefundOperation(now, order.VariantMarketplace), []*order.Order{o})

		assert.False(t, result.Applied)
		assert.Equal(t, 1, result.RejectedCount)
	})
}
