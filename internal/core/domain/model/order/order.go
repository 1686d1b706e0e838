package order

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"settlement/internal/core/domain/model/kernel"
	"settlement/internal/pkg/errs"
)

var (
	// ErrOrderIsNotConstructed is returned when an Order instance was not created
	// through one of the factory functions.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder, NewResendOrder or RestoreOrder")

	// ErrVendorNameIsRequired is returned by SendToVendor when the order has no
	// vendor and no fallback vendor was supplied.
	ErrVendorNameIsRequired = errs.NewValueIsRequiredError("vendorName")

	// ErrRefundAlreadyProcessed is returned by CompleteRefund when the refund
	// timestamp is already set.
	ErrRefundAlreadyProcessed = errs.NewValueIsInvalidError("refund is already processed")
)

// Recipient holds the delivery contact of an order. Copied onto customer-service
// resend orders unless overridden.
type Recipient struct {
	Name    string
	Phone   string
	Address string
}

// Order represents one line item of one customer purchase, tracked from intake
// through fulfillment and settlement. It is the aggregate root of the lifecycle
// state machine.
//
// Order follows these invariants:
//   - Identity (id, number, channel) is immutable after construction
//   - Quantity must be positive, monetary amounts non-negative
//   - Status transitions follow the rules defined on Status
//   - Every transition stamps its timestamp; only RecallTracking clears one
//   - finalPaymentAmount is snapshotted once, at seller confirmation, so later
//     settlement edits never change an already confirmed batch
//
// The struct uses private fields; construct via NewOrder, NewResendOrder or
// RestoreOrder (persistence).
type Order struct {
	id             kernel.UUID
	number         Number
	channel        Channel
	marketName     string
	vendorName     string
	organizationID *kernel.UUID
	optionName     string
	recipient      Recipient
	memo           string

	quantity           int
	settlementAmount   kernel.Money
	cashUsed           kernel.Money
	finalPaymentAmount *kernel.Money

	courierCompany string
	trackingNumber string

	status             Status
	confirmedAt        *time.Time
	paymentConfirmedAt *time.Time
	shippedAt          *time.Time
	cancelRequestedAt  *time.Time
	canceledAt         *time.Time
	refundProcessedAt  *time.Time

	isConstructed bool
}

// NewOrder creates an order entering the lifecycle through the given channel.
// The initial status is determined by the channel (Received for marketplace and
// customer-service intake, Uploaded for platform intake).
func NewOrder(
	id kernel.UUID,
	number Number,
	channel Channel,
	marketName string,
	optionName string,
	recipient Recipient,
	quantity int,
	settlementAmount kernel.Money,
	cashUsed kernel.Money,
	organizationID *kernel.UUID,
) (*Order, error) {
	o := &Order{
		marketName:    marketName,
		optionName:    optionName,
		recipient:     recipient,
		isConstructed: true,
	}

	if err := errors.Join(
		o.setID(id),
		o.setNumber(number),
		o.setChannel(channel),
		o.setQuantity(quantity),
		o.setSettlementAmount(settlementAmount),
		o.setCashUsed(cashUsed),
		o.setOrganizationID(organizationID),
	); err != nil {
		return nil, err
	}

	o.status = channel.InitialStatus()
	return o, nil
}

// ResendSpec carries the operator-chosen parameters of a customer-service
// resend order.
type ResendSpec struct {
	// Recipient overrides the original recipient when non-nil.
	Recipient *Recipient
	// Quantity of the resent items; must be positive.
	Quantity int
	// AdditionalAmount optionally charged for the resend. Becomes the new
	// order's settlement amount (zero for a free resend).
	AdditionalAmount kernel.Money
}

// NewResendOrder creates the shadow order emitted by a customer-service resend
// resolution. The new order has its own identity, enters at Received through
// the customer-service channel, copies classification and recipient from the
// original, and carries a memo referencing the original order number as its
// lineage link. It is never merged back into the original.
func NewResendOrder(id kernel.UUID, number Number, original *Order, spec ResendSpec) (*Order, error) {
	if err := original.Validate(); err != nil {
		return nil, err
	}

	recipient := original.Recipient()
	if spec.Recipient != nil {
		recipient = *spec.Recipient
	}

	o, err := NewOrder(
		id,
		number,
		ChannelCustomerService,
		original.MarketName(),
		original.OptionName(),
		recipient,
		spec.Quantity,
		spec.AdditionalAmount,
		0,
		original.OrganizationID(),
	)
	if err != nil {
		return nil, err
	}

	o.vendorName = original.VendorName()
	o.memo = fmt.Sprintf("resend of %s", original.Number())
	return o, nil
}

// RestoreOrder reconstructs an order from persistence with all lifecycle fields.
// It validates identity and amounts the same way NewOrder does, and checks that
// the status and the timestamp set are mutually consistent.
func RestoreOrder(
	id kernel.UUID,
	number Number,
	channel Channel,
	marketName string,
	vendorName string,
	organizationID *kernel.UUID,
	optionName string,
	recipient Recipient,
	memo string,
	quantity int,
	settlementAmount kernel.Money,
	cashUsed kernel.Money,
	finalPaymentAmount *kernel.Money,
	courierCompany string,
	trackingNumber string,
	status Status,
	timestamps Timestamps,
) (*Order, error) {
	o := &Order{
		marketName:         marketName,
		vendorName:         vendorName,
		optionName:         optionName,
		recipient:          recipient,
		memo:               memo,
		finalPaymentAmount: finalPaymentAmount,
		courierCompany:     courierCompany,
		trackingNumber:     trackingNumber,
		confirmedAt:        timestamps.ConfirmedAt,
		paymentConfirmedAt: timestamps.PaymentConfirmedAt,
		shippedAt:          timestamps.ShippedAt,
		cancelRequestedAt:  timestamps.CancelRequestedAt,
		canceledAt:         timestamps.CanceledAt,
		refundProcessedAt:  timestamps.RefundProcessedAt,
		isConstructed:      true,
	}

	if err := errors.Join(
		o.setID(id),
		o.setNumber(number),
		o.setChannel(channel),
		o.setQuantity(quantity),
		o.setSettlementAmount(settlementAmount),
		o.setCashUsed(cashUsed),
		o.setOrganizationID(organizationID),
		status.Validate(),
	); err != nil {
		return nil, err
	}

	o.status = status
	if err := o.checkTimestampConsistency(); err != nil {
		return nil, err
	}

	return o, nil
}

// Timestamps groups the lifecycle timestamps for RestoreOrder.
// Each field is set at most once under normal flow; ShippedAt may be cleared
// again by a tracking recall.
type Timestamps struct {
	ConfirmedAt        *time.Time
	PaymentConfirmedAt *time.Time
	ShippedAt          *time.Time
	CancelRequestedAt  *time.Time
	CanceledAt         *time.Time
	RefundProcessedAt  *time.Time
}

// Validate ensures the Order instance was properly constructed through a
// factory function.
func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}
	return nil
}

// IsEqual compares two orders by their unique identifiers.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id.IsEqual(other.id)
}

// ID returns the order's stable persistence identifier.
func (o *Order) ID() kernel.UUID { return o.id }

// Number returns the business-visible order number.
func (o *Order) Number() Number { return o.number }

// Channel returns the intake channel the order arrived through.
func (o *Order) Channel() Channel { return o.channel }

// MarketName returns the marketplace or storefront the order originated from.
func (o *Order) MarketName() string { return o.marketName }

// VendorName returns the fulfillment partner, empty while unassigned.
func (o *Order) VendorName() string { return o.vendorName }

// OrganizationID returns the owning seller organization, nil while unassigned.
func (o *Order) OrganizationID() *kernel.UUID { return o.organizationID }

// OptionName returns the product variant of the line item.
func (o *Order) OptionName() string { return o.optionName }

// Recipient returns the delivery contact.
func (o *Order) Recipient() Recipient { return o.recipient }

// Memo returns the free-text lineage note (e.g. the original order number of a
// customer-service resend). It is a lookup hint, not a foreign key.
func (o *Order) Memo() string { return o.memo }

// Quantity returns the item count of the line item.
func (o *Order) Quantity() int { return o.quantity }

// SettlementAmount returns the amount owed to the seller before wallet-credit
// deduction.
func (o *Order) SettlementAmount() kernel.Money { return o.settlementAmount }

// CashUsed returns the organization wallet credit applied to the order.
func (o *Order) CashUsed() kernel.Money { return o.cashUsed }

// FinalPaymentAmount returns the settlement snapshot taken at seller
// confirmation, nil while the order is unconfirmed.
func (o *Order) FinalPaymentAmount() *kernel.Money { return o.finalPaymentAmount }

// PaymentAmount returns the amount settlement arithmetic should use for the
// order: the confirmation snapshot when present, otherwise the live settlement
// amount. Later settlement edits therefore never change a confirmed batch.
func (o *Order) PaymentAmount() kernel.Money {
	if o.finalPaymentAmount != nil {
		return *o.finalPaymentAmount
	}
	return o.settlementAmount
}

// DepositAmount returns the deposit owed for the order after wallet credit,
// floored at zero. The second value reports whether flooring occurred.
func (o *Order) DepositAmount() (kernel.Money, bool) {
	return o.PaymentAmount().SubFloor(o.cashUsed)
}

// CourierCompany returns the staged or registered courier company.
func (o *Order) CourierCompany() string { return o.courierCompany }

// TrackingNumber returns the staged or registered tracking number.
func (o *Order) TrackingNumber() string { return o.trackingNumber }

// Status returns the current lifecycle status.
func (o *Order) Status() Status { return o.status }

// ConfirmedAt returns when the seller confirmed the order, nil if never.
func (o *Order) ConfirmedAt() *time.Time { return o.confirmedAt }

// PaymentConfirmedAt returns when the settlement deposit was verified.
func (o *Order) PaymentConfirmedAt() *time.Time { return o.paymentConfirmedAt }

// ShippedAt returns when tracking was registered, nil if unshipped or recalled.
func (o *Order) ShippedAt() *time.Time { return o.shippedAt }

// CancelRequestedAt returns when cancellation was requested.
// The timestamp survives a rejected request as an audit trace.
func (o *Order) CancelRequestedAt() *time.Time { return o.cancelRequestedAt }

// CanceledAt returns when cancellation was approved.
func (o *Order) CanceledAt() *time.Time { return o.canceledAt }

// RefundProcessedAt returns when the refund was processed. Under the
// marketplace variant this timestamp alone distinguishes a refunded order from
// a merely cancelled one.
func (o *Order) RefundProcessedAt() *time.Time { return o.refundProcessedAt }

// IsRefundPending reports whether the order's settlement amount is awaiting
// refund: cancellation requested, or approved without a processed refund.
func (o *Order) IsRefundPending() bool {
	return o.status == CancelRequested ||
		(o.status == CancelCompleted && o.refundProcessedAt == nil)
}

// IsRefundCompleted reports whether the refund for the order was processed,
// under either variant's representation.
func (o *Order) IsRefundCompleted() bool {
	return o.status == RefundCompleted ||
		(o.status == CancelCompleted && o.refundProcessedAt != nil)
}

// DisplayStatus returns the status label for the given variant. The
// marketplace variant shows a refunded CancelCompleted order as
// RefundCompleted even though its stored status never changes.
func (o *Order) DisplayStatus(variant Variant) string {
	if variant == VariantMarketplace && o.IsRefundCompleted() {
		return RefundCompleted.String()
	}
	return o.status.String()
}

// Confirm applies the seller confirmation to a platform order.
// Stamps confirmedAt, which keys the order into its confirmation batch, and
// snapshots the settlement amount as the final payment amount.
func (o *Order) Confirm(now time.Time) error {
	newStatus, err := o.status.ConfirmOrder()
	if err != nil {
		return err
	}

	snapshot := o.settlementAmount
	o.status = newStatus
	o.confirmedAt = &now
	o.finalPaymentAmount = &snapshot
	return nil
}

// ConfirmPayment marks the settlement deposit for the order as verified.
func (o *Order) ConfirmPayment(now time.Time) error {
	newStatus, err := o.status.ConfirmPayment()
	if err != nil {
		return err
	}

	o.status = newStatus
	o.paymentConfirmedAt = &now
	return nil
}

// SendToVendor hands the order to its fulfillment vendor.
// The order must carry a vendor name; when it does not, fallbackVendor is
// written to it, and when both are empty the operation fails with
// ErrVendorNameIsRequired.
func (o *Order) SendToVendor(fallbackVendor string) error {
	newStatus, err := o.status.SendToVendor()
	if err != nil {
		return err
	}

	if o.vendorName == "" {
		if fallbackVendor == "" {
			return ErrVendorNameIsRequired
		}
		o.vendorName = fallbackVendor
	}

	o.status = newStatus
	return nil
}

// StageTracking stores courier and tracking values on the order without
// changing its status. Registration validates the staged values later.
func (o *Order) StageTracking(courierCompany string, trackingNumber string) error {
	if o.status != Preparing && o.status != Shipped {
		return invalidTransition(o.status, "stage tracking for")
	}

	o.courierCompany = courierCompany
	o.trackingNumber = trackingNumber
	return nil
}

// MissingTrackingFields returns the names of the fulfillment fields that are
// still empty. Registration requires the result to be empty.
func (o *Order) MissingTrackingFields() []string {
	var missing []string
	if o.courierCompany == "" {
		missing = append(missing, "courierCompany")
	}
	if o.trackingNumber == "" {
		missing = append(missing, "trackingNumber")
	}
	return missing
}

// RegisterTracking marks the order shipped. Both fulfillment fields must be
// staged and non-empty; the error names the missing field(s).
func (o *Order) RegisterTracking(now time.Time) error {
	newStatus, err := o.status.RegisterTracking()
	if err != nil {
		return err
	}

	if missing := o.MissingTrackingFields(); len(missing) > 0 {
		return errs.NewValueIsRequiredError(strings.Join(missing, ", "))
	}

	o.status = newStatus
	o.shippedAt = &now
	return nil
}

// UpdateTracking re-stamps tracking on an already shipped order, under the
// same field requirements as registration.
func (o *Order) UpdateTracking(now time.Time) error {
	newStatus, err := o.status.UpdateTracking()
	if err != nil {
		return err
	}

	if missing := o.MissingTrackingFields(); len(missing) > 0 {
		return errs.NewValueIsRequiredError(strings.Join(missing, ", "))
	}

	o.status = newStatus
	o.shippedAt = &now
	return nil
}

// RecallTracking reverses a shipment: clears the fulfillment fields and the
// shipment timestamp and returns the order to Preparing. This is the one legal
// reversal of a lifecycle timestamp.
func (o *Order) RecallTracking() error {
	newStatus, err := o.status.RecallTracking()
	if err != nil {
		return err
	}

	o.status = newStatus
	o.courierCompany = ""
	o.trackingNumber = ""
	o.shippedAt = nil
	return nil
}

// RequestCancel records a customer cancellation request.
func (o *Order) RequestCancel(now time.Time) error {
	newStatus, err := o.status.RequestCancel()
	if err != nil {
		return err
	}

	o.status = newStatus
	o.cancelRequestedAt = &now
	return nil
}

// ApproveCancel approves a pending cancellation request.
func (o *Order) ApproveCancel(now time.Time) error {
	newStatus, err := o.status.ApproveCancel()
	if err != nil {
		return err
	}

	o.status = newStatus
	o.canceledAt = &now
	return nil
}

// RejectCancel rejects a pending cancellation request and returns the order to
// Preparing. Nothing is cleared: cancelRequestedAt stays as an audit trace and
// canceledAt remains null.
func (o *Order) RejectCancel() error {
	newStatus, err := o.status.RejectCancel()
	if err != nil {
		return err
	}

	o.status = newStatus
	return nil
}

// CompleteRefund records the processed refund for an approved cancellation.
// Under VariantPlatform the order moves to the RefundCompleted status; under
// VariantMarketplace it stays in CancelCompleted with the timestamp set.
func (o *Order) CompleteRefund(now time.Time, variant Variant) error {
	if o.refundProcessedAt != nil {
		return ErrRefundAlreadyProcessed
	}

	newStatus, err := o.status.CompleteRefund(variant)
	if err != nil {
		return err
	}

	o.status = newStatus
	o.refundProcessedAt = &now
	return nil
}

func (o *Order) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.id = id
	return nil
}

func (o *Order) setNumber(number Number) error {
	if err := number.Validate(); err != nil {
		return err
	}
	o.number = number
	return nil
}

func (o *Order) setChannel(channel Channel) error {
	if err := channel.Validate(); err != nil {
		return err
	}
	o.channel = channel
	return nil
}

func (o *Order) setQuantity(quantity int) error {
	if quantity <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("quantity is invalid",
			fmt.Errorf("%d is not greater than 0", quantity))
	}
	o.quantity = quantity
	return nil
}

func (o *Order) setSettlementAmount(amount kernel.Money) error {
	if err := amount.Validate(); err != nil {
		return err
	}
	o.settlementAmount = amount
	return nil
}

func (o *Order) setCashUsed(amount kernel.Money) error {
	if err := amount.Validate(); err != nil {
		return err
	}
	o.cashUsed = amount
	return nil
}

func (o *Order) setOrganizationID(id *kernel.UUID) error {
	if id == nil {
		return nil
	}
	if err := id.Validate(); err != nil {
		return err
	}
	o.organizationID = id
	return nil
}

// checkTimestampConsistency enforces the status/timestamp invariant on restored
// orders: a status implies its own timestamp is non-null. Earlier-stage
// timestamps are not required, because orders may legally enter the system in
// an already-advanced status (marketplace imports, customer-service resends).
func (o *Order) checkTimestampConsistency() error {
	required := map[string]*time.Time{}

	switch o.status {
	case OrderConfirmed:
		required["confirmedAt"] = o.confirmedAt
	case PaymentConfirmed:
		required["paymentConfirmedAt"] = o.paymentConfirmedAt
	case Shipped:
		required["shippedAt"] = o.shippedAt
	case CancelRequested:
		required["cancelRequestedAt"] = o.cancelRequestedAt
	case CancelCompleted:
		required["canceledAt"] = o.canceledAt
	case RefundCompleted:
		required["canceledAt"] = o.canceledAt
		required["refundProcessedAt"] = o.refundProcessedAt
	case Unknown, Received, Uploaded, Preparing:
	}

	for name, ts := range required {
		if ts == nil {
			return errs.NewValueIsInvalidErrorWithCause("order timestamps are inconsistent",
				fmt.Errorf("status %s requires %s to be set", o.status, name))
		}
	}

	return nil
}
