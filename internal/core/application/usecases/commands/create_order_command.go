package commands

import (
	"errors"

	"settlement/internal/core/domain/model/kernel"
	"settlement/internal/core/domain/model/order"
	"settlement/internal/pkg/guard"
)

var (
	ErrCreateOrderCommandIsNotConstructed = errors.New(
		"CreateOrderCommand must be created via NewCreateOrderCommand constructor",
	)
	ErrMarketNameIsRequired    = errors.New("market name is required")
	ErrRecipientNameIsRequired = errors.New("recipient name is required")
	ErrQuantityIsInvalid       = errors.New("quantity must be greater than 0")
)

// CreateOrderCommand represents a request to register a new order entering the
// lifecycle through one of the intake channels. The business-visible order
// number is generated by the handler from the channel's sequence; the caller
// supplies only the aggregate identity.
//
// Example:
//
//	orderID := kernel.NewUUID()
//	cmd, err := NewCreateOrderCommand(orderID, order.ChannelPlatform, "smartstore",
//	    "black / XL", recipient, 2, 25000, 0, &orgID)
//	if err != nil {
//	    return fmt.Errorf("invalid order data: %w", err)
//	}
//
//	handler := NewCreateOrderCommandHandler(uowFactory)
//	number, err := handler.Handle(ctx, cmd)
type CreateOrderCommand struct { //nolint:recvcheck //using for validation
	orderID          kernel.UUID
	channel          order.Channel
	marketName       string
	optionName       string
	recipient        order.Recipient
	quantity         int
	settlementAmount kernel.Money
	cashUsed         kernel.Money
	organizationID   *kernel.UUID

	guard guard.ConstructorGuard
}

// NewCreateOrderCommand creates a command to register a new order.
// Validates identity, channel, recipient, quantity and amounts.
func NewCreateOrderCommand(
	orderID kernel.UUID,
	channel order.Channel,
	marketName string,
	optionName string,
	recipient order.Recipient,
	quantity int,
	settlementAmount kernel.Money,
	cashUsed kernel.Money,
	organizationID *kernel.UUID,
) (CreateOrderCommand, error) {
	cmd := CreateOrderCommand{
		optionName:     optionName,
		organizationID: organizationID,
		guard:          guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setChannel(channel),
		cmd.setMarketName(marketName),
		cmd.setRecipient(recipient),
		cmd.setQuantity(quantity),
		cmd.setAmounts(settlementAmount, cashUsed),
	); err != nil {
		return CreateOrderCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateOrderCommand) Validate() error {
	return c.guard.Validate(ErrCreateOrderCommandIsNotConstructed)
}

// OrderID returns the identity of the order to create.
func (c CreateOrderCommand) OrderID() kernel.UUID { return c.orderID }

// Channel returns the intake channel.
func (c CreateOrderCommand) Channel() order.Channel { return c.channel }

// MarketName returns the originating marketplace name.
func (c CreateOrderCommand) MarketName() string { return c.marketName }

// OptionName returns the product option description.
func (c CreateOrderCommand) OptionName() string { return c.optionName }

// Recipient returns the delivery recipient.
func (c CreateOrderCommand) Recipient() order.Recipient { return c.recipient }

// Quantity returns the ordered item count.
func (c CreateOrderCommand) Quantity() int { return c.quantity }

// SettlementAmount returns the amount owed before cash deduction.
func (c CreateOrderCommand) SettlementAmount() kernel.Money { return c.settlementAmount }

// CashUsed returns the wallet credit applied.
func (c CreateOrderCommand) CashUsed() kernel.Money { return c.cashUsed }

// OrganizationID returns the owning seller organization, if any.
func (c CreateOrderCommand) OrganizationID() *kernel.UUID { return c.organizationID }

func (c *CreateOrderCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *CreateOrderCommand) setChannel(channel order.Channel) error {
	if err := channel.Validate(); err != nil {
		return err
	}

	c.channel = channel
	return nil
}

func (c *CreateOrderCommand) setMarketName(marketName string) error {
	if marketName == "" {
		return ErrMarketNameIsRequired
	}

	c.marketName = marketName
	return nil
}

func (c *CreateOrderCommand) setRecipient(recipient order.Recipient) error {
	if recipient.Name == "" {
		return ErrRecipientNameIsRequired
	}

	c.recipient = recipient
	return nil
}

func (c *CreateOrderCommand) setQuantity(quantity int) error {
	if quantity <= 0 {
		return ErrQuantityIsInvalid
	}

	c.quantity = quantity
	return nil
}

func (c *CreateOrderCommand) setAmounts(settlementAmount kernel.Money, cashUsed kernel.Money) error {
	if err := errors.Join(settlementAmount.Validate(), cashUsed.Validate()); err != nil {
		return err
	}

	c.settlementAmount = settlementAmount
	c.cashUsed = cashUsed
	return nil
}
