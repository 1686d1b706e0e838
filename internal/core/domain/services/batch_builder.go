package services

import (
	"fmt"
	"sort"

	"settlement/internal/core/domain/model/batch"
	"settlement/internal/core/domain/model/order"
)

// Warning is a non-fatal data-integrity finding raised while building batches.
type Warning struct {
	Key     batch.Key
	Message string
}

// BatchBuilder recomputes confirmation batches from their member orders.
// Batches are derived, never authoritative: every call regroups from scratch,
// with persisted snapshots pinning the totals of batches whose amounts were
// already agreed.
type BatchBuilder struct{}

// NewBatchBuilder creates a BatchBuilder.
func NewBatchBuilder() BatchBuilder {
	return BatchBuilder{}
}

// Build groups the orders into confirmation batches by organization and
// confirmation minute. Orders without a confirmation timestamp or an owning
// organization have no batch and are skipped.
//
// Per-order amounts use the confirmation-time payment snapshot when present,
// so a later edit to an order's settlement amount never moves a confirmed
// batch total. When a persisted snapshot exists for a key its stored totals
// replace the recomputed ones entirely.
//
// A negative deposit clamps to zero and surfaces as a warning instead of
// failing the whole pass. Output is sorted by key, oldest batch first.
func (BatchBuilder) Build(orders []*order.Order, snapshots map[batch.Key]batch.Snapshot) ([]batch.ConfirmationBatch, []Warning) {
	batches := map[batch.Key]*batch.ConfirmationBatch{}
	var warnings []Warning

	for _, o := range orders {
		if o.ConfirmedAt() == nil || o.OrganizationID() == nil {
			continue
		}

		key := batch.NewKey(*o.OrganizationID(), *o.ConfirmedAt())
		b, ok := batches[key]
		if !ok {
			b = &batch.ConfirmationBatch{Key: key}
			batches[key] = b
		}

		if o.Status().IsPrePayment() {
			b.OrderCount++
		}
		b.TotalAmount = b.TotalAmount.Add(o.PaymentAmount())
		b.CashUsed = b.CashUsed.Add(o.CashUsed())
	}

	result := make([]batch.ConfirmationBatch, 0, len(batches))
	for key, b := range batches {
		if snapshot, ok := snapshots[key]; ok {
			b.TotalAmount = snapshot.TotalAmount
			b.CashUsed = snapshot.CashUsed
			b.FinalDepositAmount = snapshot.FinalDepositAmount
			b.DepositorName = snapshot.DepositorName
			b.ExecutorID = snapshot.ExecutorID
		} else {
			deposit, overdrawn := b.TotalAmount.SubFloor(b.CashUsed)
			if overdrawn {
				warnings = append(warnings, Warning{
					Key:     key,
					Message: fmt.Sprintf("cash used %s exceeds total amount %s, deposit clamped to 0", b.CashUsed, b.TotalAmount),
				})
			}
			b.FinalDepositAmount = deposit
		}

		b.PaymentConfirmed = b.OrderCount == 0
		result = append(result, *b)
	}

	sort.Slice(result, func(i, j int) bool {
		if !result[i].Key.ConfirmedAt.Equal(result[j].Key.ConfirmedAt) {
			return result[i].Key.ConfirmedAt.Before(result[j].Key.ConfirmedAt)
		}
		return result[i].Key.OrganizationID.String() < result[j].Key.OrganizationID.String()
	})
	return result, warnings
}
