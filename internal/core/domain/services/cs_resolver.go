package services

import (
	"time"

	"settlement/internal/core/domain/model/cs"
	"settlement/internal/core/domain/model/kernel"
	"settlement/internal/core/domain/model/order"
	"settlement/internal/pkg/errs"
)

var (
	// ErrOrderIsNotShipped is returned when a CS resolution targets an order
	// that never shipped; complaints are post-shipment by definition.
	ErrOrderIsNotShipped = errs.NewValueIsInvalidError("CS resolution requires a shipped order")

	// ErrResendSpecIsRequired is returned when a resend resolution arrives
	// without item details.
	ErrResendSpecIsRequired = errs.NewValueIsRequiredError("resend spec")

	// ErrRefundAccountIsRequired is returned when a partial refund arrives
	// without bank details.
	ErrRefundAccountIsRequired = errs.NewValueIsRequiredError("refund account")
)

// ResolutionRequest carries one CS submission against a single shipped order.
type ResolutionRequest struct {
	Category string
	Content  string
	Type     cs.ResolutionType

	// RefundAccount and RefundPercent apply to partial_refund only.
	RefundAccount *cs.RefundAccount
	RefundPercent int

	// Resend describes the shadow order for partial_resend/full_resend.
	// ResendNumber is pre-generated by the caller, which owns number sequencing.
	Resend       *order.ResendSpec
	ResendNumber order.Number
}

// ResolutionOutcome is the effect of one accepted CS resolution: the case
// record, plus the emitted shadow order for the resend resolutions (nil for
// all others).
type ResolutionOutcome struct {
	Record      *cs.Record
	ResendOrder *order.Order
}

// CSResolver turns CS submissions into case records and their side effects.
// The original order is read, never mutated: a refund is stored on the case
// record and a resend emits an independent new order, so the original's
// lifecycle stays untouched.
type CSResolver struct{}

// NewCSResolver creates a CSResolver.
func NewCSResolver() CSResolver {
	return CSResolver{}
}

// Resolve validates the request against the original order and produces the
// case record and its effect.
//
// The partial-refund amount is floor(paymentAmount × percent / 100), computed
// from the confirmation-time payment snapshot when one exists.
func (CSResolver) Resolve(original *order.Order, req ResolutionRequest, now time.Time) (ResolutionOutcome, error) {
	if err := original.Validate(); err != nil {
		return ResolutionOutcome{}, err
	}
	if original.Status() != order.Shipped {
		return ResolutionOutcome{}, ErrOrderIsNotShipped
	}

	recordID := kernel.NewUUID()

	switch {
	case req.Type.RequiresBankAccount():
		if req.RefundAccount == nil {
			return ResolutionOutcome{}, ErrRefundAccountIsRequired
		}
		amount, err := original.PaymentAmount().Percent(req.RefundPercent)
		if err != nil {
			return ResolutionOutcome{}, err
		}
		record, err := cs.NewPartialRefundRecord(recordID, original.Number(), req.Category, req.Content,
			*req.RefundAccount, req.RefundPercent, amount, now)
		if err != nil {
			return ResolutionOutcome{}, err
		}
		return ResolutionOutcome{Record: record}, nil

	case req.Type.CreatesResendOrder():
		if req.Resend == nil {
			return ResolutionOutcome{}, ErrResendSpecIsRequired
		}
		resend, err := order.NewResendOrder(kernel.NewUUID(), req.ResendNumber, original, *req.Resend)
		if err != nil {
			return ResolutionOutcome{}, err
		}
		record, err := cs.NewResendRecord(recordID, original.Number(), req.Category, req.Content,
			req.Type, resend.ID(), now)
		if err != nil {
			return ResolutionOutcome{}, err
		}
		return ResolutionOutcome{Record: record, ResendOrder: resend}, nil

	case req.Type.RequiresDescription():
		record, err := cs.NewOtherActionRecord(recordID, original.Number(), req.Category, req.Content, now)
		if err != nil {
			return ResolutionOutcome{}, err
		}
		return ResolutionOutcome{Record: record}, nil

	default:
		record, err := cs.NewAnnotationRecord(recordID, original.Number(), req.Category, req.Content, req.Type, now)
		if err != nil {
			return ResolutionOutcome{}, err
		}
		return ResolutionOutcome{Record: record}, nil
	}
}
