package services

import (
	"sort"

	"settlement/internal/core/domain/model/kernel"
	"settlement/internal/core/domain/model/order"
)

// unassignedKey groups orders whose dimension value is empty so no order ever
// drops out of a per-dimension breakdown.
const unassignedKey = "unassigned"

// StatusTally counts orders and units for one display status.
type StatusTally struct {
	Count    int
	Quantity int
}

// DimensionStat is the statistics row for one dimension value. The total row
// uses the same shape, which keeps the total/per-value identity checkable:
// every column of the total row equals the sum of that column over the
// per-value rows.
type DimensionStat struct {
	Key                   string
	ByStatus              map[string]StatusTally
	TotalAmount           kernel.Money
	RefundPendingAmount   kernel.Money
	RefundCompletedAmount kernel.Money
}

// StatsReport is the full statistics breakdown over one order set.
type StatsReport struct {
	Total           DimensionStat
	PerVendor       []DimensionStat
	PerOrganization []DimensionStat
	PerOption       []DimensionStat
}

// Aggregator computes per-dimension order statistics. Amounts come from the
// settlement amount so the report reflects the ledger, not the payment
// snapshot.
type Aggregator struct {
	variant order.Variant
}

// NewAggregator creates an Aggregator reporting statuses under the given
// variant's representation.
func NewAggregator(variant order.Variant) Aggregator {
	return Aggregator{variant: variant}
}

// Aggregate builds the statistics report for the order set. The per-dimension
// slices are sorted by key, so equal order sets always produce equal reports
// regardless of input order.
func (a Aggregator) Aggregate(orders []*order.Order) StatsReport {
	total := newDimensionStat("total")
	vendors := map[string]*DimensionStat{}
	organizations := map[string]*DimensionStat{}
	options := map[string]*DimensionStat{}

	for _, o := range orders {
		a.accumulate(&total, o)
		a.accumulate(dimensionRow(vendors, o.VendorName()), o)
		a.accumulate(dimensionRow(organizations, organizationKey(o.OrganizationID())), o)
		a.accumulate(dimensionRow(options, o.OptionName()), o)
	}

	return StatsReport{
		Total:           total,
		PerVendor:       sortedRows(vendors),
		PerOrganization: sortedRows(organizations),
		PerOption:       sortedRows(options),
	}
}

func (a Aggregator) accumulate(stat *DimensionStat, o *order.Order) {
	tally := stat.ByStatus[o.DisplayStatus(a.variant)]
	tally.Count++
	tally.Quantity += o.Quantity()
	stat.ByStatus[o.DisplayStatus(a.variant)] = tally

	stat.TotalAmount = stat.TotalAmount.Add(o.SettlementAmount())
	if o.IsRefundPending() {
		stat.RefundPendingAmount = stat.RefundPendingAmount.Add(o.SettlementAmount())
	}
	if o.IsRefundCompleted() {
		stat.RefundCompletedAmount = stat.RefundCompletedAmount.Add(o.SettlementAmount())
	}
}

func newDimensionStat(key string) DimensionStat {
	return DimensionStat{Key: key, ByStatus: map[string]StatusTally{}}
}

func dimensionRow(rows map[string]*DimensionStat, key string) *DimensionStat {
	if key == "" {
		key = unassignedKey
	}
	row, ok := rows[key]
	if !ok {
		stat := newDimensionStat(key)
		row = &stat
		rows[key] = row
	}
	return row
}

func organizationKey(id *kernel.UUID) string {
	if id == nil {
		return ""
	}
	return id.String()
}

func sortedRows(rows map[string]*DimensionStat) []DimensionStat {
	result := make([]DimensionStat, 0, len(rows))
	for _, row := range rows {
		result = append(result, *row)
	}
	sort.Slice(result, func(i, j int) bool { return result[i].Key < result[j].Key })
	return result
}
