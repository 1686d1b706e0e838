package commands

import (
	"errors"

	"settlement/internal/core/domain/model/kernel"
	"settlement/internal/pkg/guard"
)

var (
	ErrConfirmPaymentCommandIsNotConstructed = errors.New(
		"ConfirmPaymentCommand must be created via NewConfirmPaymentCommand constructor",
	)
	ErrDepositorNameIsRequired = errors.New("depositor name is required")
)

// ConfirmPaymentCommand represents an operator verifying that the settlement
// deposit for a set of pre-payment orders arrived. The depositor name and the
// confirming operator are pinned onto the affected batch snapshots.
type ConfirmPaymentCommand struct { //nolint:recvcheck //using for validation
	orderIDs      []kernel.UUID
	depositorName string
	executorID    kernel.UUID

	guard guard.ConstructorGuard
}

// NewConfirmPaymentCommand creates a command to confirm the deposit for the
// given orders.
func NewConfirmPaymentCommand(
	orderIDs []kernel.UUID,
	depositorName string,
	executorID kernel.UUID,
) (ConfirmPaymentCommand, error) {
	if err := validateOrderIDs(orderIDs); err != nil {
		return ConfirmPaymentCommand{}, err
	}
	if depositorName == "" {
		return ConfirmPaymentCommand{}, ErrDepositorNameIsRequired
	}
	if err := executorID.Validate(); err != nil {
		return ConfirmPaymentCommand{}, err
	}

	return ConfirmPaymentCommand{
		orderIDs:      orderIDs,
		depositorName: depositorName,
		executorID:    executorID,
		guard:         guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c ConfirmPaymentCommand) Validate() error {
	return c.guard.Validate(ErrConfirmPaymentCommandIsNotConstructed)
}

// OrderIDs returns the target order identifiers.
func (c ConfirmPaymentCommand) OrderIDs() []kernel.UUID { return c.orderIDs }

// DepositorName returns the name on the incoming deposit.
func (c ConfirmPaymentCommand) DepositorName() string { return c.depositorName }

// ExecutorID returns the operator confirming the payment.
func (c ConfirmPaymentCommand) ExecutorID() kernel.UUID { return c.executorID }
