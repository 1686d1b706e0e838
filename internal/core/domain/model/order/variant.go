package order

import (
	"fmt"
	"strings"

	"settlement/internal/pkg/errs"
)

// Variant selects how a finished refund is represented.
//
// The two intake systems historically disagreed on the shape of "cancelled and
// refunded": the marketplace side keeps the order in CancelCompleted and marks
// the refund with a timestamp, while the platform side promotes the refund to
// its own terminal status. The status machine is shared; the variant only
// decides the CompleteRefund target status and the display label.
type Variant int

const (
	// VariantUnknown represents an invalid or undefined variant.
	VariantUnknown Variant = iota

	// VariantMarketplace keeps refunded orders in CancelCompleted and records
	// the refund through the refundProcessedAt timestamp.
	VariantMarketplace

	// VariantPlatform promotes a finished refund to the RefundCompleted status.
	VariantPlatform
)

// Validate checks if the Variant value is valid.
func (v Variant) Validate() error {
	if v != VariantMarketplace && v != VariantPlatform {
		return errs.NewValueIsInvalidErrorWithCause("variant is invalid",
			fmt.Errorf("%d is not a valid variant", v))
	}
	return nil
}

// ParseVariant maps the wire name of a variant to its value, ignoring case.
func ParseVariant(name string) (Variant, error) {
	switch strings.ToLower(name) {
	case "marketplace":
		return VariantMarketplace, nil
	case "platform":
		return VariantPlatform, nil
	default:
		return VariantUnknown, errs.NewValueIsInvalidErrorWithCause("variant is invalid",
			fmt.Errorf("%q is not a valid variant", name))
	}
}

// String returns the canonical name of the variant.
func (v Variant) String() string {
	switch v {
	case VariantMarketplace:
		return "Marketplace"
	case VariantPlatform:
		return "Platform"
	default:
		return "Unknown"
	}
}
