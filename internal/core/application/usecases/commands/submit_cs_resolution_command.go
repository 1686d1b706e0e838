package commands

import (
	"errors"

	"settlement/internal/core/domain/model/cs"
	"settlement/internal/core/domain/model/kernel"
	"settlement/internal/core/domain/model/order"
	"settlement/internal/pkg/guard"
)

var (
	ErrSubmitCSResolutionCommandIsNotConstructed = errors.New(
		"SubmitCSResolutionCommand must be created via NewSubmitCSResolutionCommand constructor",
	)
	ErrRefundPercentIsInvalid = errors.New("refund percent must be between 0 and 100")
)

// SubmitCSResolutionCommand represents one customer-service submission against
// exactly one shipped order. The single-target precondition is enforced by the
// command shape: there is no way to construct a multi-order submission.
type SubmitCSResolutionCommand struct { //nolint:recvcheck //using for validation
	orderID        kernel.UUID
	category       string
	content        string
	resolutionType cs.ResolutionType
	refundAccount  *cs.RefundAccount
	refundPercent  int
	resend         *order.ResendSpec

	guard guard.ConstructorGuard
}

// NewSubmitCSResolutionCommand creates a customer-service submission.
// Payload completeness for the chosen resolution type is validated by the
// domain resolver; the command checks only shape-level constraints.
func NewSubmitCSResolutionCommand(
	orderID kernel.UUID,
	category string,
	content string,
	resolutionType cs.ResolutionType,
	refundAccount *cs.RefundAccount,
	refundPercent int,
	resend *order.ResendSpec,
) (SubmitCSResolutionCommand, error) {
	if err := errors.Join(orderID.Validate(), resolutionType.Validate()); err != nil {
		return SubmitCSResolutionCommand{}, err
	}
	if refundPercent < 0 || refundPercent > 100 {
		return SubmitCSResolutionCommand{}, ErrRefundPercentIsInvalid
	}

	return SubmitCSResolutionCommand{
		orderID:        orderID,
		category:       category,
		content:        content,
		resolutionType: resolutionType,
		refundAccount:  refundAccount,
		refundPercent:  refundPercent,
		resend:         resend,
		guard:          guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c SubmitCSResolutionCommand) Validate() error {
	return c.guard.Validate(ErrSubmitCSResolutionCommandIsNotConstructed)
}

// OrderID returns the single target order.
func (c SubmitCSResolutionCommand) OrderID() kernel.UUID { return c.orderID }

// Category returns the complaint category.
func (c SubmitCSResolutionCommand) Category() string { return c.category }

// Content returns the free-text case content.
func (c SubmitCSResolutionCommand) Content() string { return c.content }

// ResolutionType returns the chosen remedy.
func (c SubmitCSResolutionCommand) ResolutionType() cs.ResolutionType { return c.resolutionType }

// RefundAccount returns the bank details for a partial refund, if any.
func (c SubmitCSResolutionCommand) RefundAccount() *cs.RefundAccount { return c.refundAccount }

// RefundPercent returns the refund percentage for a partial refund.
func (c SubmitCSResolutionCommand) RefundPercent() int { return c.refundPercent }

// Resend returns the shadow-order parameters for a resend, if any.
func (c SubmitCSResolutionCommand) Resend() *order.ResendSpec { return c.resend }
