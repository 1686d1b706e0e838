// Package batch contains the confirmation-batch read model: the derived
// grouping of orders a seller confirmed together, whose combined settlement
// amount (minus wallet credit) becomes one deposit obligation.
//
// Batches are recomputed from their member orders on every pass and are never
// authoritative; persisted snapshots only pin the agreed totals of historical
// batches (see services.BatchBuilder).
package batch

import (
	"fmt"
	"time"

	"settlement/internal/core/domain/model/kernel"
)

// Key identifies one confirmation batch: the owning organization and the
// confirmation timestamp truncated to the whole minute. The minute bucket is a
// heuristic for "confirmed together": confirmation is a bulk, near-simultaneous
// action, so members of one confirmation land in the same bucket.
type Key struct {
	OrganizationID kernel.UUID
	ConfirmedAt    time.Time
}

// NewKey builds a batch key, truncating the confirmation time to the minute.
// The time is normalized to UTC so keys stay usable as map keys regardless of
// the location the timestamp arrived in.
func NewKey(organizationID kernel.UUID, confirmedAt time.Time) Key {
	return Key{
		OrganizationID: organizationID,
		ConfirmedAt:    confirmedAt.UTC().Truncate(time.Minute),
	}
}

// String renders the key for logs and cache lookups.
func (k Key) String() string {
	return fmt.Sprintf("%s@%s", k.OrganizationID, k.ConfirmedAt.UTC().Format("200601021504"))
}

// ConfirmationBatch aggregates one batch of confirmed orders into a deposit
// obligation. OrderCount counts only the members still awaiting payment
// confirmation: the batch is "open" while that count is positive and "closed"
// (PaymentConfirmed) once every member has moved past the pre-payment stage.
type ConfirmationBatch struct {
	Key                Key
	OrderCount         int
	TotalAmount        kernel.Money
	CashUsed           kernel.Money
	FinalDepositAmount kernel.Money
	PaymentConfirmed   bool
	DepositorName      string
	ExecutorID         *kernel.UUID
}

// Snapshot holds persisted batch totals for a key. When a snapshot exists its
// totals take precedence over a recomputation from the current order fields,
// so historical or already-edited orders never silently change a previously
// agreed total.
type Snapshot struct {
	Key                Key
	TotalAmount        kernel.Money
	CashUsed           kernel.Money
	FinalDepositAmount kernel.Money
	DepositorName      string
	ExecutorID         *kernel.UUID
}
