package cs

import (
	"fmt"

	"settlement/internal/pkg/errs"
)

// ResolutionType is the remedy chosen for a post-shipment complaint.
// The type decides the payload a case record must carry and whether the
// resolution emits a shadow resend order.
type ResolutionType int

const (
	// ResolutionUnknown represents an invalid or undefined resolution.
	ResolutionUnknown ResolutionType = iota

	// Exchange annotates the case only; the operator handles the physical
	// exchange outside the system.
	Exchange

	// Return annotates the case only.
	Return

	// FullRefund annotates the case only; the operator completes the refund
	// through the order lifecycle.
	FullRefund

	// PartialRefund stores bank-account details and a computed refund amount
	// on the case without touching the original order's status.
	PartialRefund

	// PartialResend creates a shadow order for part of the original items.
	PartialResend

	// FullResend creates a shadow order for all of the original items.
	FullResend

	// OtherAction requires a free-text description and has no automated effect.
	OtherAction
)

func getResolutionStrings() map[ResolutionType]string {
	return map[ResolutionType]string{
		Exchange:      "exchange",
		Return:        "return",
		FullRefund:    "full_refund",
		PartialRefund: "partial_refund",
		PartialResend: "partial_resend",
		FullResend:    "full_resend",
		OtherAction:   "other_action",
	}
}

// Validate checks if the ResolutionType value is valid.
func (r ResolutionType) Validate() error {
	if _, ok := getResolutionStrings()[r]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("resolution type is invalid",
			fmt.Errorf("%d is not a valid resolution type", r))
	}
	return nil
}

// String returns the canonical snake_case name of the resolution type.
func (r ResolutionType) String() string {
	if s, ok := getResolutionStrings()[r]; ok {
		return s
	}
	return "unknown"
}

// RequiresBankAccount reports whether the resolution needs refund bank details.
func (r ResolutionType) RequiresBankAccount() bool {
	return r == PartialRefund
}

// CreatesResendOrder reports whether the resolution emits a shadow order.
func (r ResolutionType) CreatesResendOrder() bool {
	return r == PartialResend || r == FullResend
}

// RequiresDescription reports whether the resolution needs free-text content.
func (r ResolutionType) RequiresDescription() bool {
	return r == OtherAction
}

// RefundAccount carries the customer's bank details for a partial refund.
type RefundAccount struct {
	BankName      string
	AccountHolder string
	AccountNumber string
}

// Validate checks that all bank-account fields are present.
func (a RefundAccount) Validate() error {
	if a.BankName == "" {
		return errs.NewValueIsRequiredError("bankName")
	}
	if a.AccountHolder == "" {
		return errs.NewValueIsRequiredError("accountHolder")
	}
	if a.AccountNumber == "" {
		return errs.NewValueIsRequiredError("accountNumber")
	}
	return nil
}
