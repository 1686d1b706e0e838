package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"settlement/internal/core/domain/model/kernel"
	"settlement/internal/core/domain/model/order"
)

func restoreStatsOrder(
	t *testing.T,
	vendorName string,
	organizationID *kernel.UUID,
	optionName string,
	quantity int,
	settlementAmount kernel.Money,
	status order.Status,
	timestamps order.Timestamps,
) *order.Order {
	t.Helper()

	o, err := order.RestoreOrder(
		kernel.NewUUID(),
		order.Number("PL-20240301100000-0001"),
		order.ChannelPlatform,
		"smartstore",
		vendorName,
		organizationID,
		optionName,
		order.Recipient{Name: "Kim Jiwoo", Phone: "010-1234-5678", Address: "12 Teheran-ro, Seoul"},
		"",
		quantity,
		settlementAmount,
		0,
		nil,
		"",
		"",
		status,
		timestamps,
	)
	require.NoError(t, err)
	return o
}

func statsFixture(t *testing.T) []*order.Order {
	t.Helper()

	now := time.Date(2024, 3, 2, 9, 30, 0, 0, time.UTC)
	orgA := kernel.NewUUID()
	orgB := kernel.NewUUID()

	return []*order.Order{
		restoreStatsOrder(t, "Hanjin Fulfillment", &orgA, "black / XL", 2, 1000,
			order.Uploaded, order.Timestamps{}),
		restoreStatsOrder(t, "Hanjin Fulfillment", &orgA, "white / M", 1, 2000,
			order.Shipped, order.Timestamps{ShippedAt: &now}),
		restoreStatsOrder(t, "Lotte Global", &orgB, "black / XL", 3, 500,
			order.CancelRequested, order.Timestamps{CancelRequestedAt: &now}),
		restoreStatsOrder(t, "", &orgB, "white / M", 1, 700,
			order.CancelCompleted, order.Timestamps{CanceledAt: &now}),
		restoreStatsOrder(t, "Lotte Global", nil, "black / XL", 2, 300,
			order.RefundCompleted, order.Timestamps{CanceledAt: &now, RefundProcessedAt: &now}),
	}
}

func sumRows(rows []DimensionStat) DimensionStat {
	sum := newDimensionStat("total")
	for _, row := range rows {
		for status, tally := range row.ByStatus {
			t := sum.ByStatus[status]
			t.Count += tally.Count
			t.Quantity += tally.Quantity
			sum.ByStatus[status] = t
		}
		sum.TotalAmount = sum.TotalAmount.Add(row.TotalAmount)
		sum.RefundPendingAmount = sum.RefundPendingAmount.Add(row.RefundPendingAmount)
		sum.RefundCompletedAmount = sum.RefundCompletedAmount.Add(row.RefundCompletedAmount)
	}
	return sum
}

func Test_Aggregator_Aggregate_TotalRowEqualsSumOfEveryDimension(t *testing.T) {
	orders := statsFixture(t)

	report := NewAggregator(order.VariantPlatform).Aggregate(orders)

	for name, rows := range map[string][]DimensionStat{
		"vendor":       report.PerVendor,
		"organization": report.PerOrganization,
		"option":       report.PerOption,
	} {
		t.Run(name, func(t *testing.T) {
			sum := sumRows(rows)
			assert.Equal(t, report.Total.ByStatus, sum.ByStatus)
			assert.Equal(t, report.Total.TotalAmount, sum.TotalAmount)
			assert.Equal(t, report.Total.RefundPendingAmount, sum.RefundPendingAmount)
			assert.Equal(t, report.Total.RefundCompletedAmount, sum.RefundCompletedAmount)
		})
	}
}

func Test_Aggregator_Aggregate_IsDeterministic(t *testing.T) {
	orders := statsFixture(t)
	aggregator := NewAggregator(order.VariantPlatform)

	first := aggregator.Aggregate(orders)
	second := aggregator.Aggregate(orders)

	assert.Equal(t, first, second)
}

func Test_Aggregator_Aggregate_RefundRollUps(t *testing.T) {
	orders := statsFixture(t)

	report := NewAggregator(order.VariantPlatform).Aggregate(orders)

	// CancelRequested (500) and CancelCompleted without a processed refund
	// (700) are pending; RefundCompleted (300) is done.
	assert.Equal(t, kernel.Money(1200), report.Total.RefundPendingAmount)
	assert.Equal(t, kernel.Money(300), report.Total.RefundCompletedAmount)
	assert.Equal(t, kernel.Money(4500), report.Total.TotalAmount)
}

func Test_Aggregator_Aggregate_EmptyDimensionValuesGroupAsUnassigned(t *testing.T) {
	orders := statsFixture(t)

	report := NewAggregator(order.VariantPlatform).Aggregate(orders)

	vendorKeys := make([]string, 0, len(report.PerVendor))
	for _, row := range report.PerVendor {
		vendorKeys = append(vendorKeys, row.Key)
	}
	assert.Contains(t, vendorKeys, unassignedKey)
	assert.Contains(t, vendorKeys, "Hanjin Fulfillment")
	assert.Contains(t, vendorKeys, "Lotte Global")

	orgKeys := make([]string, 0, len(report.PerOrganization))
	for _, row := range report.PerOrganization {
		orgKeys = append(orgKeys, row.Key)
	}
	assert.Contains(t, orgKeys, unassignedKey)
}

func Test_Aggregator_Aggregate_RowsAreSortedByKey(t *testing.T) {
	orders := statsFixture(t)

	report := NewAggregator(order.VariantPlatform).Aggregate(orders)

	for _, rows := range [][]DimensionStat{report.PerVendor, report.PerOrganization, report.PerOption} {
		for i := 1; i < len(rows); i++ {
			assert.Less(t, rows[i-1].Key, rows[i].Key)
		}
	}
}

func Test_Aggregator_Aggregate_VariantChangesDisplayBuckets(t *testing.T) {
	now := time.Date(2024, 3, 2, 9, 30, 0, 0, time.UTC)
	orgA := kernel.NewUUID()
	refunded := restoreStatsOrder(t, "Hanjin Fulfillment", &orgA, "black / XL", 1, 1000,
		order.CancelCompleted, order.Timestamps{CanceledAt: &now, RefundProcessedAt: &now})

	platform := NewAggregator(order.VariantPlatform).Aggregate([]*order.Order{refunded})
	marketplace := NewAggregator(order.VariantMarketplace).Aggregate([]*order.Order{refunded})

	// The stored status is CancelCompleted either way; only the marketplace
	// variant displays the processed refund as its own bucket.
	assert.Contains(t, platform.Total.ByStatus, order.CancelCompleted.String())
	assert.NotContains(t, platform.Total.ByStatus, order.RefundCompleted.String())
	assert.Contains(t, marketplace.Total.ByStatus, order.RefundCompleted.String())
}
