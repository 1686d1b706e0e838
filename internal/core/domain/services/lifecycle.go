package services

import (
	"time"

	"settlement/internal/core/domain/model/kernel"
	"settlement/internal/core/domain/model/order"
)

// Atomicity is the failure policy of a bulk lifecycle operation.
type Atomicity int

const (
	// AllOrNothing aborts the whole operation when any target order fails its
	// preconditions: zero orders are updated and the failure names the
	// offenders.
	AllOrNothing Atomicity = iota + 1

	// BestEffort applies the operation to the valid subset and reports the
	// rest as rejected; wrong-state orders are excluded, not an error.
	BestEffort
)

// maxReportedRejections caps the offenders enumerated by a failed
// all-or-nothing operation. RejectedCount always carries the full number.
const maxReportedRejections = 5

// RejectedOrder names one order excluded from a bulk operation and why, so the
// caller can report exactly what to fix.
type RejectedOrder struct {
	ID     kernel.UUID
	Number order.Number
	Reason string
}

// OperationResult is the outcome of one bulk lifecycle operation.
//
// For a failed all-or-nothing operation UpdatedOrders is empty, Applied is
// false and RejectedOrders enumerates up to maxReportedRejections offenders.
// For a best-effort operation UpdatedOrders holds the valid subset and
// RejectedOrders the rest.
type OperationResult struct {
	// Applied reports whether the update set should be persisted.
	Applied bool
	// UpdatedOrders are the mutated aggregates to persist.
	UpdatedOrders []*order.Order
	// UpdatedOrderIDs identifies the update set.
	UpdatedOrderIDs []kernel.UUID
	// RejectedOrders enumerates excluded orders with per-order reasons.
	RejectedOrders []RejectedOrder
	// RejectedCount is the total number of rejected orders, which may exceed
	// len(RejectedOrders) for a failed all-or-nothing operation.
	RejectedCount int
}

// BatchOperation is one bulk lifecycle operation: a named per-order transition
// together with its explicit atomicity policy. Modelling the policy as data
// keeps a single execution path for both the fail-closed and the
// apply-valid-subset operations.
type BatchOperation struct {
	Name      string
	Atomicity Atomicity
	Apply     func(*order.Order) error
}

// Lifecycle applies bulk status transitions over an in-memory order snapshot.
// It is stateless; the snapshot is mutated in place, so after a failed
// all-or-nothing operation the caller must discard the snapshot instead of
// persisting it.
type Lifecycle struct{}

// NewLifecycle creates a Lifecycle engine.
func NewLifecycle() Lifecycle {
	return Lifecycle{}
}

// Execute runs the operation over the snapshot and reports the update set and
// the rejections according to the operation's atomicity policy.
func (Lifecycle) Execute(op BatchOperation, orders []*order.Order) OperationResult {
	result := OperationResult{}

	for _, o := range orders {
		if err := op.Apply(o); err != nil {
			result.RejectedCount++
			if op.Atomicity == BestEffort || len(result.RejectedOrders) < maxReportedRejections {
				result.RejectedOrders = append(result.RejectedOrders, RejectedOrder{
					ID:     o.ID(),
					Number: o.Number(),
					Reason: err.Error(),
				})
			}
			continue
		}

		result.UpdatedOrders = append(result.UpdatedOrders, o)
		result.UpdatedOrderIDs = append(result.UpdatedOrderIDs, o.ID())
	}

	if op.Atomicity == AllOrNothing && result.RejectedCount > 0 {
		result.UpdatedOrders = nil
		result.UpdatedOrderIDs = nil
		return result
	}

	result.Applied = true
	return result
}

// Tracking carries staged fulfillment values keyed to one order.
type Tracking struct {
	CourierCompany string
	TrackingNumber string
}

// ConfirmOrdersOperation confirms uploaded platform orders, stamping them into
// their confirmation batch. Best-effort: orders not awaiting confirmation are
// excluded.
func ConfirmOrdersOperation(now time.Time) BatchOperation {
	return BatchOperation{
		Name:      "confirm_orders",
		Atomicity: BestEffort,
		Apply: func(o *order.Order) error {
			return o.Confirm(now)
		},
	}
}

// ConfirmPaymentOperation verifies the settlement deposit for pre-payment
// orders. Best-effort: orders already past the pre-payment stage are excluded
// and the caller learns how many were actually affected.
func ConfirmPaymentOperation(now time.Time) BatchOperation {
	return BatchOperation{
		Name:      "confirm_payment",
		Atomicity: BestEffort,
		Apply: func(o *order.Order) error {
			return o.ConfirmPayment(now)
		},
	}
}

// SendToVendorOperation hands paid orders to their fulfillment vendor.
// All-or-nothing: if any order lacks a vendor and no fallback is supplied, the
// operation fails closed naming the offenders.
func SendToVendorOperation(fallbackVendor string) BatchOperation {
	return BatchOperation{
		Name:      "send_to_vendor",
		Atomicity: AllOrNothing,
		Apply: func(o *order.Order) error {
			return o.SendToVendor(fallbackVendor)
		},
	}
}

// RegisterTrackingOperation ships prepared orders. Staged courier/tracking
// values, when supplied, are written to the matching orders before validation.
// All-or-nothing: one order with a missing fulfillment field rejects the whole
// set, naming the field.
func RegisterTrackingOperation(now time.Time, staged map[kernel.UUID]Tracking) BatchOperation {
	return BatchOperation{
		Name:      "register_tracking",
		Atomicity: AllOrNothing,
		Apply: func(o *order.Order) error {
			if t, ok := staged[o.ID()]; ok {
				if err := o.StageTracking(t.CourierCompany, t.TrackingNumber); err != nil {
					return err
				}
			}
			return o.RegisterTracking(now)
		},
	}
}

// UpdateTrackingOperation re-stamps tracking on shipped orders under the same
// all-or-nothing field requirements as registration.
func UpdateTrackingOperation(now time.Time, staged map[kernel.UUID]Tracking) BatchOperation {
	return BatchOperation{
		Name:      "update_tracking",
		Atomicity: AllOrNothing,
		Apply: func(o *order.Order) error {
			if t, ok := staged[o.ID()]; ok {
				if err := o.StageTracking(t.CourierCompany, t.TrackingNumber); err != nil {
					return err
				}
			}
			return o.UpdateTracking(now)
		},
	}
}

// RecallTrackingOperation reverses shipments, clearing tracking and the
// shipment timestamp. Best-effort.
func RecallTrackingOperation() BatchOperation {
	return BatchOperation{
		Name:      "recall_tracking",
		Atomicity: BestEffort,
		Apply: func(o *order.Order) error {
			return o.RecallTracking()
		},
	}
}

// RequestCancelOperation records customer cancellation requests. Best-effort.
func RequestCancelOperation(now time.Time) BatchOperation {
	return BatchOperation{
		Name:      "request_cancel",
		Atomicity: BestEffort,
		Apply: func(o *order.Order) error {
			return o.RequestCancel(now)
		},
	}
}

// ApproveCancelOperation approves pending cancellation requests. Best-effort.
func ApproveCancelOperation(now time.Time) BatchOperation {
	return BatchOperation{
		Name:      "approve_cancel",
		Atomicity: BestEffort,
		Apply: func(o *order.Order) error {
			return o.ApproveCancel(now)
		},
	}
}

// RejectCancelOperation rejects pending cancellation requests, returning the
// orders to Preparing without clearing anything. Best-effort.
func RejectCancelOperation() BatchOperation {
	return BatchOperation{
		Name:      "reject_cancel",
		Atomicity: BestEffort,
		Apply: func(o *order.Order) error {
			return o.RejectCancel()
		},
	}
}

// CompleteRefundOperation finishes the refund for cancelled orders under the
// given variant's representation.
func CompleteRefundOperation(now time.Time, variant order.Variant) BatchOperation {
	return BatchOperation{
		Name:      "complete_refund",
		Atomicity: AllOrNothing,
		Apply: func(o *order.Order) error {
			return o.CompleteRefund(now, variant)
		},
	}
}
