package cs

import (
	"errors"
	"time"

	"settlement/internal/core/domain/model/kernel"
	"settlement/internal/core/domain/model/order"
	"settlement/internal/pkg/errs"
)

var (
	// ErrRecordIsNotConstructed is returned when a Record instance was not
	// created through one of the factory functions.
	ErrRecordIsNotConstructed = errors.New("Record must be created via its factory functions or RestoreRecord")

	// ErrDescriptionIsRequired is returned when an other_action case carries no
	// free-text description.
	ErrDescriptionIsRequired = errs.NewValueIsRequiredError("description")
)

// CaseStatus is the open/closed flag of a customer-service case.
type CaseStatus int

const (
	// CaseOpen is the status of a newly created case.
	CaseOpen CaseStatus = iota + 1
	// CaseClosed marks a handled case.
	CaseClosed
)

// String returns the canonical name of the case status.
func (s CaseStatus) String() string {
	if s == CaseClosed {
		return "closed"
	}
	return "open"
}

// Record is one customer-service case tied to an original order.
// A record is created once per case and never mutated after the originating
// action completes, except for its own open/closed status.
//
// The resolution-specific payload is carried inline: bank details and the
// computed refund amount for a partial refund, or the id of the emitted
// shadow order for a resend.
type Record struct {
	id          kernel.UUID
	orderNumber order.Number
	category    string
	content     string
	resolution  ResolutionType
	createdAt   time.Time
	status      CaseStatus

	refundAccount *RefundAccount
	refundPercent int
	refundAmount  kernel.Money

	resendOrderID *kernel.UUID

	isConstructed bool
}

func newRecord(
	id kernel.UUID,
	orderNumber order.Number,
	category string,
	content string,
	resolution ResolutionType,
	createdAt time.Time,
) (*Record, error) {
	if err := errors.Join(
		id.Validate(),
		orderNumber.Validate(),
		resolution.Validate(),
	); err != nil {
		return nil, err
	}

	return &Record{
		id:            id,
		orderNumber:   orderNumber,
		category:      category,
		content:       content,
		resolution:    resolution,
		createdAt:     createdAt,
		status:        CaseOpen,
		isConstructed: true,
	}, nil
}

// NewAnnotationRecord creates a case for the annotation-only resolutions
// (exchange, return, full_refund). These carry no payload and leave the
// original order untouched.
func NewAnnotationRecord(
	id kernel.UUID,
	orderNumber order.Number,
	category string,
	content string,
	resolution ResolutionType,
	createdAt time.Time,
) (*Record, error) {
	if resolution != Exchange && resolution != Return && resolution != FullRefund {
		return nil, errs.NewValueIsInvalidError("resolution type is not annotation-only")
	}
	return newRecord(id, orderNumber, category, content, resolution, createdAt)
}

// NewPartialRefundRecord creates a partial_refund case carrying the customer's
// bank details and the refund amount computed by the resolver.
func NewPartialRefundRecord(
	id kernel.UUID,
	orderNumber order.Number,
	category string,
	content string,
	account RefundAccount,
	refundPercent int,
	refundAmount kernel.Money,
	createdAt time.Time,
) (*Record, error) {
	if err := account.Validate(); err != nil {
		return nil, err
	}

	r, err := newRecord(id, orderNumber, category, content, PartialRefund, createdAt)
	if err != nil {
		return nil, err
	}

	r.refundAccount = &account
	r.refundPercent = refundPercent
	r.refundAmount = refundAmount
	return r, nil
}

// NewResendRecord creates a partial_resend or full_resend case referencing the
// shadow order it emitted.
func NewResendRecord(
	id kernel.UUID,
	orderNumber order.Number,
	category string,
	content string,
	resolution ResolutionType,
	resendOrderID kernel.UUID,
	createdAt time.Time,
) (*Record, error) {
	if !resolution.CreatesResendOrder() {
		return nil, errs.NewValueIsInvalidError("resolution type does not create a resend order")
	}
	if err := resendOrderID.Validate(); err != nil {
		return nil, err
	}

	r, err := newRecord(id, orderNumber, category, content, resolution, createdAt)
	if err != nil {
		return nil, err
	}

	r.resendOrderID = &resendOrderID
	return r, nil
}

// NewOtherActionRecord creates an other_action case; the free-text description
// is mandatory.
func NewOtherActionRecord(
	id kernel.UUID,
	orderNumber order.Number,
	category string,
	description string,
	createdAt time.Time,
) (*Record, error) {
	if description == "" {
		return nil, ErrDescriptionIsRequired
	}
	return newRecord(id, orderNumber, category, description, OtherAction, createdAt)
}

// RestoreRecord reconstructs a case from persistence.
func RestoreRecord(
	id kernel.UUID,
	orderNumber order.Number,
	category string,
	content string,
	resolution ResolutionType,
	status CaseStatus,
	refundAccount *RefundAccount,
	refundPercent int,
	refundAmount kernel.Money,
	resendOrderID *kernel.UUID,
	createdAt time.Time,
) (*Record, error) {
	r, err := newRecord(id, orderNumber, category, content, resolution, createdAt)
	if err != nil {
		return nil, err
	}

	r.status = status
	r.refundAccount = refundAccount
	r.refundPercent = refundPercent
	r.refundAmount = refundAmount
	r.resendOrderID = resendOrderID
	return r, nil
}

// Validate ensures the Record instance was properly constructed.
func (r *Record) Validate() error {
	if r == nil || !r.isConstructed {
		return ErrRecordIsNotConstructed
	}
	return nil
}

// ID returns the case identifier.
func (r *Record) ID() kernel.UUID { return r.id }

// OrderNumber returns the business-visible number of the original order.
func (r *Record) OrderNumber() order.Number { return r.orderNumber }

// Category returns the operator-chosen complaint category.
func (r *Record) Category() string { return r.category }

// Content returns the free-text case content.
func (r *Record) Content() string { return r.content }

// Resolution returns the chosen resolution type.
func (r *Record) Resolution() ResolutionType { return r.resolution }

// Status returns the open/closed flag of the case.
func (r *Record) Status() CaseStatus { return r.status }

// RefundAccount returns the bank details of a partial_refund case, nil otherwise.
func (r *Record) RefundAccount() *RefundAccount { return r.refundAccount }

// RefundPercent returns the refund percentage of a partial_refund case.
func (r *Record) RefundPercent() int { return r.refundPercent }

// RefundAmount returns the computed refund amount of a partial_refund case.
func (r *Record) RefundAmount() kernel.Money { return r.refundAmount }

// ResendOrderID returns the id of the shadow order emitted by a resend case,
// nil otherwise.
func (r *Record) ResendOrderID() *kernel.UUID { return r.resendOrderID }

// CreatedAt returns when the case was submitted.
func (r *Record) CreatedAt() time.Time { return r.createdAt }

// Close marks the case handled.
func (r *Record) Close() {
	r.status = CaseClosed
}
