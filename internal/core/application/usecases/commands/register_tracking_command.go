package commands

import (
	"errors"

	"settlement/internal/core/domain/model/kernel"
	"settlement/internal/core/domain/services"
	"settlement/internal/pkg/guard"
)

var ErrRegisterTrackingCommandIsNotConstructed = errors.New(
	"RegisterTrackingCommand must be created via NewRegisterTrackingCommand constructor",
)

// RegisterTrackingCommand represents shipping a set of prepared orders.
// Tracking carries staged courier/tracking values keyed by order id; orders
// absent from the map must already carry both fulfillment fields.
type RegisterTrackingCommand struct { //nolint:recvcheck //using for validation
	orderIDs []kernel.UUID
	tracking map[kernel.UUID]services.Tracking

	guard guard.ConstructorGuard
}

// NewRegisterTrackingCommand creates a command to register tracking for the
// given orders.
func NewRegisterTrackingCommand(
	orderIDs []kernel.UUID,
	tracking map[kernel.UUID]services.Tracking,
) (RegisterTrackingCommand, error) {
	if err := validateOrderIDs(orderIDs); err != nil {
		return RegisterTrackingCommand{}, err
	}

	return RegisterTrackingCommand{
		orderIDs: orderIDs,
		tracking: tracking,
		guard:    guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c RegisterTrackingCommand) Validate() error {
	return c.guard.Validate(ErrRegisterTrackingCommandIsNotConstructed)
}

// OrderIDs returns the target order identifiers.
func (c RegisterTrackingCommand) OrderIDs() []kernel.UUID { return c.orderIDs }

// Tracking returns the staged fulfillment values per order.
func (c RegisterTrackingCommand) Tracking() map[kernel.UUID]services.Tracking { return c.tracking }
