package commands

import (
	"errors"

	"settlement/internal/core/domain/model/kernel"
	"settlement/internal/pkg/guard"
)

var ErrSendToVendorCommandIsNotConstructed = errors.New(
	"SendToVendorCommand must be created via NewSendToVendorCommand constructor",
)

// SendToVendorCommand represents handing a set of paid orders to their
// fulfillment vendor. VendorNameIfMissing fills orders without an assigned
// vendor; when empty, such orders fail the whole operation.
type SendToVendorCommand struct { //nolint:recvcheck //using for validation
	orderIDs            []kernel.UUID
	vendorNameIfMissing string

	guard guard.ConstructorGuard
}

// NewSendToVendorCommand creates a command to send the given orders to their
// vendor.
func NewSendToVendorCommand(orderIDs []kernel.UUID, vendorNameIfMissing string) (SendToVendorCommand, error) {
	if err := validateOrderIDs(orderIDs); err != nil {
		return SendToVendorCommand{}, err
	}

	return SendToVendorCommand{
		orderIDs:            orderIDs,
		vendorNameIfMissing: vendorNameIfMissing,
		guard:               guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c SendToVendorCommand) Validate() error {
	return c.guard.Validate(ErrSendToVendorCommandIsNotConstructed)
}

// OrderIDs returns the target order identifiers.
func (c SendToVendorCommand) OrderIDs() []kernel.UUID { return c.orderIDs }

// VendorNameIfMissing returns the fallback vendor for orders without one.
func (c SendToVendorCommand) VendorNameIfMissing() string { return c.vendorNameIfMissing }
