// Package order contains the Order aggregate and its lifecycle state machine.
//
// The aggregate tracks one line item of one customer purchase through intake,
// seller confirmation, payment confirmation, vendor fulfillment, shipment and
// the cancellation/refund branch. Status transitions are enforced by the
// Status value object; the aggregate stamps and clears the per-transition
// timestamps and maintains the status/timestamp consistency invariant.
//
// Money-bearing fields follow the settlement rules: the settlement amount is
// snapshotted into finalPaymentAmount at seller confirmation, so later edits
// never change a confirmed settlement batch.
package order
