// Package csrepo persists customer-service case records.
package csrepo

import (
	"time"

	"settlement/internal/core/domain/model/cs"
	"settlement/internal/core/domain/model/kernel"
	"settlement/internal/core/domain/model/order"

	"github.com/google/uuid"
)

// RecordDTO represents the database structure for persisting CS case records.
// The resolution-specific payload lives inline on the row, mirroring the
// aggregate: bank details for partial refunds, the shadow-order id for resends.
type RecordDTO struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey"`
	OrderNumber string    `gorm:"column:order_number;index"`
	Category    string
	Content     string
	Resolution  int
	Status      int

	RefundBankName      string `gorm:"column:refund_bank_name"`
	RefundAccountHolder string `gorm:"column:refund_account_holder"`
	RefundAccountNumber string `gorm:"column:refund_account_number"`
	RefundPercent       int
	RefundAmount        int64 `gorm:"column:refund_amount"`

	ResendOrderID *uuid.UUID `gorm:"type:uuid"`

	CreatedAt time.Time
}

// TableName specifies the database table name for CS case records.
func (RecordDTO) TableName() string {
	return "cs_records"
}

// fromDomain converts a CS record aggregate to its database representation.
func fromDomain(record *cs.Record) RecordDTO {
	dto := RecordDTO{
		ID:            record.ID().Bytes(),
		OrderNumber:   record.OrderNumber().String(),
		Category:      record.Category(),
		Content:       record.Content(),
		Resolution:    int(record.Resolution()),
		Status:        int(record.Status()),
		RefundPercent: record.RefundPercent(),
		RefundAmount:  record.RefundAmount().Int64(),
		CreatedAt:     record.CreatedAt(),
	}

	if account := record.RefundAccount(); account != nil {
		dto.RefundBankName = account.BankName
		dto.RefundAccountHolder = account.AccountHolder
		dto.RefundAccountNumber = account.AccountNumber
	}

	if resendID := record.ResendOrderID(); resendID != nil {
		raw := resendID.Bytes()
		dto.ResendOrderID = &raw
	}

	return dto
}

// toDomain converts a database DTO to a CS record aggregate.
func toDomain(dto RecordDTO) (*cs.Record, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	var refundAccount *cs.RefundAccount
	if dto.RefundBankName != "" || dto.RefundAccountHolder != "" || dto.RefundAccountNumber != "" {
		refundAccount = &cs.RefundAccount{
			BankName:      dto.RefundBankName,
			AccountHolder: dto.RefundAccountHolder,
			AccountNumber: dto.RefundAccountNumber,
		}
	}

	var resendOrderID *kernel.UUID
	if dto.ResendOrderID != nil {
		resendID, resendErr := kernel.UUIDFromBytes((*dto.ResendOrderID)[:])
		if resendErr != nil {
			return nil, resendErr
		}

		resendOrderID = &resendID
	}

	return cs.RestoreRecord(
		id,
		order.Number(dto.OrderNumber),
		dto.Category,
		dto.Content,
		cs.ResolutionType(dto.Resolution),
		cs.CaseStatus(dto.Status),
		refundAccount,
		dto.RefundPercent,
		kernel.Money(dto.RefundAmount),
		resendOrderID,
		dto.CreatedAt,
	)
}
