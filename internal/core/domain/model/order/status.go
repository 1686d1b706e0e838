package order

import (
	"fmt"

	"settlement/internal/pkg/errs"
)

// Status represents the lifecycle state of an order.
// It implements a state machine with defined transitions to ensure orders
// follow the fulfillment and settlement workflow.
//
// State transitions:
//
//	Uploaded ──> OrderConfirmed ──┐
//	                              ├──> PaymentConfirmed ──> Preparing ──> Shipped
//	Received ─────────────────────┘                            ▲  │          │
//	                                                           │  │          │
//	                              ┌────────────────────────────┘  ▼          ▼
//	                     (reject) │                       CancelRequested <──┘
//	                              └───────────────────────────────│
//	                                                              ▼ (approve)
//	                                       CancelCompleted ──> RefundCompleted
//
// The Uploaded/OrderConfirmed stages exist only for platform-channel orders;
// marketplace orders enter at Received and move straight to PaymentConfirmed.
// RefundCompleted is reached only under the platform variant; the marketplace
// variant records the refund as a timestamp on a CancelCompleted order
// (see Variant).
type Status int

const (
	// Unknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	Unknown Status = iota

	// Received is the initial status of marketplace and customer-service orders.
	Received

	// Uploaded is the initial status of platform orders awaiting seller confirmation.
	Uploaded

	// OrderConfirmed indicates a platform order was confirmed by the seller.
	// Confirmation stamps the order into a settlement batch and snapshots its
	// payment amount; the order now awaits payment confirmation.
	OrderConfirmed

	// PaymentConfirmed indicates the settlement deposit for the order was verified.
	PaymentConfirmed

	// Preparing indicates the order was handed to its fulfillment vendor.
	Preparing

	// Shipped indicates courier and tracking information was registered.
	// Terminal when no cancellation follows.
	Shipped

	// CancelRequested indicates a customer cancellation is awaiting a decision.
	CancelRequested

	// CancelCompleted indicates the cancellation was approved.
	// Under the marketplace variant this also carries the refund sub-state
	// through the order's refundProcessedAt timestamp.
	CancelCompleted

	// RefundCompleted indicates the refund was processed (platform variant only).
	// This is a final state with no further transitions.
	RefundCompleted
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:          "Unknown",
		Received:         "Received",
		Uploaded:         "Uploaded",
		OrderConfirmed:   "OrderConfirmed",
		PaymentConfirmed: "PaymentConfirmed",
		Preparing:        "Preparing",
		Shipped:          "Shipped",
		CancelRequested:  "CancelRequested",
		CancelCompleted:  "CancelCompleted",
		RefundCompleted:  "RefundCompleted",
	}
}

func getValidStatusStrings() map[Status]string {
	//nolint:exhaustive // Unknown is intentionally excluded as it's invalid
	return map[Status]string{
		Received:         "Received",
		Uploaded:         "Uploaded",
		OrderConfirmed:   "OrderConfirmed",
		PaymentConfirmed: "PaymentConfirmed",
		Preparing:        "Preparing",
		Shipped:          "Shipped",
		CancelRequested:  "CancelRequested",
		CancelCompleted:  "CancelCompleted",
		RefundCompleted:  "RefundCompleted",
	}
}

// Validate checks if the Status value is valid.
// Unknown (0) and out-of-range values are invalid.
func (s Status) Validate() error {
	if _, ok := getValidStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status is invalid",
			fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// String returns the canonical name of the status.
// Implements fmt.Stringer and is safe to call on any Status value.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "Unknown"
}

// ParseStatus maps a canonical status name back onto its Status value.
func ParseStatus(name string) (Status, error) {
	for status, str := range getValidStatusStrings() {
		if str == name {
			return status, nil
		}
	}
	return Unknown, errs.NewValueIsInvalidErrorWithCause("status is invalid",
		fmt.Errorf("%q is not a valid status", name))
}

// IsPrePayment reports whether the settlement deposit for an order in this
// status has not yet been confirmed. A confirmation batch stays open while any
// member is in a pre-payment status.
func (s Status) IsPrePayment() bool {
	return s == Received || s == Uploaded || s == OrderConfirmed
}

func invalidTransition(s Status, action string) error {
	return errs.NewValueIsInvalidErrorWithCause("status is invalid",
		fmt.Errorf("%s is not a valid status to %s", s.String(), action))
}

// ConfirmOrder transitions the status to OrderConfirmed.
//
// Valid transitions:
//   - Uploaded -> OrderConfirmed
func (s Status) ConfirmOrder() (Status, error) {
	if s != Uploaded {
		return 0, invalidTransition(s, "confirm")
	}
	return OrderConfirmed, nil
}

// ConfirmPayment transitions the status to PaymentConfirmed.
//
// Valid transitions:
//   - Received -> PaymentConfirmed (marketplace and customer-service orders)
//   - OrderConfirmed -> PaymentConfirmed (platform orders)
func (s Status) ConfirmPayment() (Status, error) {
	if s != Received && s != OrderConfirmed {
		return 0, invalidTransition(s, "confirm payment for")
	}
	return PaymentConfirmed, nil
}

// SendToVendor transitions the status to Preparing.
//
// Valid transitions:
//   - PaymentConfirmed -> Preparing
func (s Status) SendToVendor() (Status, error) {
	if s != PaymentConfirmed {
		return 0, invalidTransition(s, "send to vendor")
	}
	return Preparing, nil
}

// RegisterTracking transitions the status to Shipped.
//
// Valid transitions:
//   - Preparing -> Shipped (initial registration)
func (s Status) RegisterTracking() (Status, error) {
	if s != Preparing {
		return 0, invalidTransition(s, "register tracking for")
	}
	return Shipped, nil
}

// UpdateTracking re-stamps tracking on an already shipped order.
//
// Valid transitions:
//   - Shipped -> Shipped
func (s Status) UpdateTracking() (Status, error) {
	if s != Shipped {
		return 0, invalidTransition(s, "update tracking for")
	}
	return Shipped, nil
}

// RecallTracking transitions the status back to Preparing.
// This is the single legal reversal in the lifecycle: the shipment timestamp
// and fulfillment fields are cleared by the order aggregate.
//
// Valid transitions:
//   - Shipped -> Preparing
func (s Status) RecallTracking() (Status, error) {
	if s != Shipped {
		return 0, invalidTransition(s, "recall tracking for")
	}
	return Preparing, nil
}

// RequestCancel transitions the status to CancelRequested.
//
// Valid transitions:
//   - Preparing -> CancelRequested
//   - Shipped -> CancelRequested
func (s Status) RequestCancel() (Status, error) {
	if s != Preparing && s != Shipped {
		return 0, invalidTransition(s, "request cancel for")
	}
	return CancelRequested, nil
}

// ApproveCancel transitions the status to CancelCompleted.
//
// Valid transitions:
//   - CancelRequested -> CancelCompleted
func (s Status) ApproveCancel() (Status, error) {
	if s != CancelRequested {
		return 0, invalidTransition(s, "approve cancel for")
	}
	return CancelCompleted, nil
}

// RejectCancel transitions the status back to Preparing.
// Nothing is cleared on the reject path; the cancel request timestamp stays
// as an audit trace.
//
// Valid transitions:
//   - CancelRequested -> Preparing
func (s Status) RejectCancel() (Status, error) {
	if s != CancelRequested {
		return 0, invalidTransition(s, "reject cancel for")
	}
	return Preparing, nil
}

// CompleteRefund finishes the refund for a completed cancellation.
//
// Valid transitions:
//   - CancelCompleted -> RefundCompleted (VariantPlatform)
//   - CancelCompleted -> CancelCompleted (VariantMarketplace; the refund is
//     recorded as the order's refundProcessedAt timestamp instead)
func (s Status) CompleteRefund(variant Variant) (Status, error) {
	if err := variant.Validate(); err != nil {
		return 0, err
	}
	if s != CancelCompleted {
		return 0, invalidTransition(s, "complete refund for")
	}
	if variant == VariantMarketplace {
		return CancelCompleted, nil
	}
	return RefundCompleted, nil
}
