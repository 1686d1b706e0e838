// Package orderrepo provides data transfer objects and mapping functions for order persistence.
// This package implements the repository pattern for the order domain aggregate, handling
// the conversion between domain entities and database representations.
package orderrepo

import (
	"time"

	"settlement/internal/core/domain/model/kernel"
	"settlement/internal/core/domain/model/order"

	"github.com/google/uuid"
)

// OrderDTO represents the database structure for persisting order aggregates.
// One row carries the full lifecycle state; indexed for the organization-scoped
// reads that feed statistics and batch recomputation.
type OrderDTO struct {
	ID             uuid.UUID    `gorm:"type:uuid;primaryKey"`
	Number         string       `gorm:"uniqueIndex"`
	Channel        int          `gorm:"index"`
	MarketName     string       `gorm:"column:market_name"`
	VendorName     string       `gorm:"column:vendor_name;index"`
	OrganizationID *uuid.UUID   `gorm:"type:uuid;index"`
	OptionName     string       `gorm:"column:option_name"`
	Recipient      RecipientDTO `gorm:"embedded;embeddedPrefix:recipient_"`
	Memo           string

	Quantity           int
	SettlementAmount   int64  `gorm:"column:settlement_amount"`
	CashUsed           int64  `gorm:"column:cash_used"`
	FinalPaymentAmount *int64 `gorm:"column:final_payment_amount"`

	CourierCompany string `gorm:"column:courier_company"`
	TrackingNumber string `gorm:"column:tracking_number"`

	Status             int        `gorm:"index"`
	ConfirmedAt        *time.Time `gorm:"index"`
	PaymentConfirmedAt *time.Time
	ShippedAt          *time.Time
	CancelRequestedAt  *time.Time
	CanceledAt         *time.Time
	RefundProcessedAt  *time.Time
}

// TableName specifies the database table name for order entities.
// Overrides GORM's default naming convention to use "orders".
func (OrderDTO) TableName() string {
	return "orders"
}

// NumberSequenceDTO backs the per-channel order-number counter.
type NumberSequenceDTO struct {
	Channel int `gorm:"primaryKey"`
	Value   int64
}

// TableName specifies the database table name for number sequences.
func (NumberSequenceDTO) TableName() string {
	return "order_number_sequences"
}

// RecipientDTO represents the embedded delivery recipient within the order table.
type RecipientDTO struct {
	Name    string
	Phone   string
	Address string
}

// fromDomain converts an order domain aggregate to its database representation.
func fromDomain(aggregate *order.Order) OrderDTO {
	var organizationID *uuid.UUID
	if id := aggregate.OrganizationID(); id != nil {
		raw := id.Bytes()
		organizationID = &raw
	}

	var finalPaymentAmount *int64
	if amount := aggregate.FinalPaymentAmount(); amount != nil {
		raw := amount.Int64()
		finalPaymentAmount = &raw
	}

	return OrderDTO{
		ID:             aggregate.ID().Bytes(),
		Number:         aggregate.Number().String(),
		Channel:        int(aggregate.Channel()),
		MarketName:     aggregate.MarketName(),
		VendorName:     aggregate.VendorName(),
		OrganizationID: organizationID,
		OptionName:     aggregate.OptionName(),
		Recipient: RecipientDTO{
			Name:    aggregate.Recipient().Name,
			Phone:   aggregate.Recipient().Phone,
			Address: aggregate.Recipient().Address,
		},
		Memo:               aggregate.Memo(),
		Quantity:           aggregate.Quantity(),
		SettlementAmount:   aggregate.SettlementAmount().Int64(),
		CashUsed:           aggregate.CashUsed().Int64(),
		FinalPaymentAmount: finalPaymentAmount,
		CourierCompany:     aggregate.CourierCompany(),
		TrackingNumber:     aggregate.TrackingNumber(),
		Status:             int(aggregate.Status()),
		ConfirmedAt:        aggregate.ConfirmedAt(),
		PaymentConfirmedAt: aggregate.PaymentConfirmedAt(),
		ShippedAt:          aggregate.ShippedAt(),
		CancelRequestedAt:  aggregate.CancelRequestedAt(),
		CanceledAt:         aggregate.CanceledAt(),
		RefundProcessedAt:  aggregate.RefundProcessedAt(),
	}
}

// toDomain converts a database DTO to an order domain aggregate.
// Reconstructs the complete aggregate via RestoreOrder, which re-checks the
// status/timestamp consistency invariant.
func toDomain(dto OrderDTO) (*order.Order, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	var organizationID *kernel.UUID
	if dto.OrganizationID != nil {
		orgID, orgErr := kernel.UUIDFromBytes((*dto.OrganizationID)[:])
		if orgErr != nil {
			return nil, orgErr
		}

		organizationID = &orgID
	}

	var finalPaymentAmount *kernel.Money
	if dto.FinalPaymentAmount != nil {
		amount := kernel.Money(*dto.FinalPaymentAmount)
		finalPaymentAmount = &amount
	}

	return order.RestoreOrder(
		id,
		order.Number(dto.Number),
		order.Channel(dto.Channel),
		dto.MarketName,
		dto.VendorName,
		organizationID,
		dto.OptionName,
		order.Recipient{
			Name:    dto.Recipient.Name,
			Phone:   dto.Recipient.Phone,
			Address: dto.Recipient.Address,
		},
		dto.Memo,
		dto.Quantity,
		kernel.Money(dto.SettlementAmount),
		kernel.Money(dto.CashUsed),
		finalPaymentAmount,
		dto.CourierCompany,
		dto.TrackingNumber,
		order.Status(dto.Status),
		order.Timestamps{
			ConfirmedAt:        dto.ConfirmedAt,
			PaymentConfirmedAt: dto.PaymentConfirmedAt,
			ShippedAt:          dto.ShippedAt,
			CancelRequestedAt:  dto.CancelRequestedAt,
			CanceledAt:         dto.CanceledAt,
			RefundProcessedAt:  dto.RefundProcessedAt,
		},
	)
}
