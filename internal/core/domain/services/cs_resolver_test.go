package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"settlement/internal/core/domain/model/cs"
	"settlement/internal/core/domain/model/kernel"
	"settlement/internal/core/domain/model/order"
)

func shippedOriginal(t *testing.T) *order.Order {
	t.Helper()
	now := time.Date(2024, 3, 2, 9, 30, 0, 0, time.UTC)
	return toShipped(t, testOrder(t, 10000, 0), now)
}

func Test_CSResolver_Resolve_RejectsUnshippedOrder(t *testing.T) {
	now := time.Date(2024, 3, 5, 14, 0, 0, 0, time.UTC)
	preparing := toPreparing(t, testOrder(t, 10000, 0), now)

	_, err := NewCSResolver().Resolve(preparing, ResolutionRequest{
		Category: "damaged item",
		Type:     cs.Return,
	}, now)

	assert.ErrorIs(t, err, ErrOrderIsNotShipped)
	assert.Equal(t, order.Preparing, preparing.Status())
}

func Test_CSResolver_Resolve_AnnotationOnlyResolution(t *testing.T) {
	now := time.Date(2024, 3, 5, 14, 0, 0, 0, time.UTC)
	original := shippedOriginal(t)

	outcome, err := NewCSResolver().Resolve(original, ResolutionRequest{
		Category: "damaged item",
		Content:  "customer requests exchange for a new unit",
		Type:     cs.Exchange,
	}, now)
	require.NoError(t, err)

	require.NotNil(t, outcome.Record)
	assert.Nil(t, outcome.ResendOrder)
	assert.Equal(t, cs.Exchange, outcome.Record.Resolution())
	assert.Equal(t, original.Number(), outcome.Record.OrderNumber())
	assert.Equal(t, cs.CaseOpen, outcome.Record.Status())
	assert.Equal(t, order.Shipped, original.Status())
}

func Test_CSResolver_Resolve_PartialRefundComputesFlooredAmount(t *testing.T) {
	now := time.Date(2024, 3, 5, 14, 0, 0, 0, time.UTC)
	original := toShipped(t, testOrder(t, 10001, 0), now)

	account := cs.RefundAccount{
		BankName:      "Kookmin Bank",
		AccountHolder: "Kim Jiwoo",
		AccountNumber: "123456-01-234567",
	}

	outcome, err := NewCSResolver().Resolve(original, ResolutionRequest{
		Category:      "partial damage",
		Content:       "one of two items arrived broken",
		Type:          cs.PartialRefund,
		RefundAccount: &account,
		RefundPercent: 30,
	}, now)
	require.NoError(t, err)

	// floor(10001 * 30 / 100) = 3000
	assert.Equal(t, kernel.Money(3000), outcome.Record.RefundAmount())
	assert.Equal(t, 30, outcome.Record.RefundPercent())
	require.NotNil(t, outcome.Record.RefundAccount())
	assert.Equal(t, account, *outcome.Record.RefundAccount())
	assert.Nil(t, outcome.ResendOrder)
	assert.Equal(t, order.Shipped, original.Status())
}

func Test_CSResolver_Resolve_PartialRefundRequiresBankAccount(t *testing.T) {
	now := time.Date(2024, 3, 5, 14, 0, 0, 0, time.UTC)
	original := shippedOriginal(t)

	_, err := NewCSResolver().Resolve(original, ResolutionRequest{
		Category:      "partial damage",
		Type:          cs.PartialRefund,
		RefundPercent: 30,
	}, now)

	assert.ErrorIs(t, err, ErrRefundAccountIsRequired)
}

func Test_CSResolver_Resolve_FullResendCreatesShadowOrder(t *testing.T) {
	now := time.Date(2024, 3, 5, 14, 0, 0, 0, time.UTC)
	original := shippedOriginal(t)

	resendNumber, err := order.GenerateNumber(order.ChannelCustomerService, now, 7)
	require.NoError(t, err)

	outcome, err := NewCSResolver().Resolve(original, ResolutionRequest{
		Category:     "lost in transit",
		Content:      "carrier confirmed parcel lost",
		Type:         cs.FullResend,
		Resend:       &order.ResendSpec{Quantity: 1},
		ResendNumber: resendNumber,
	}, now)
	require.NoError(t, err)

	require.NotNil(t, outcome.ResendOrder)
	resend := outcome.ResendOrder

	assert.Equal(t, order.Received, resend.Status())
	assert.Contains(t, resend.Memo(), original.Number().String())
	assert.False(t, resend.ID().IsEqual(original.ID()))
	assert.Equal(t, original.Recipient(), resend.Recipient())
	assert.Equal(t, kernel.Money(0), resend.SettlementAmount())
	assert.Equal(t, order.Shipped, original.Status())

	require.NotNil(t, outcome.Record.ResendOrderID())
	assert.True(t, outcome.Record.ResendOrderID().IsEqual(resend.ID()))
	assert.Equal(t, cs.FullResend, outcome.Record.Resolution())
}

func Test_CSResolver_Resolve_PartialResendOverridesRecipientAndCharges(t *testing.T) {
	now := time.Date(2024, 3, 5, 14, 0, 0, 0, time.UTC)
	original := shippedOriginal(t)

	resendNumber, err := order.GenerateNumber(order.ChannelCustomerService, now, 8)
	require.NoError(t, err)

	replacement := order.Recipient{Name: "Lee Minho", Phone: "010-9876-5432", Address: "3 Haeundae-ro, Busan"}
	outcome, err := NewCSResolver().Resolve(original, ResolutionRequest{
		Category: "missing part",
		Content:  "resend the missing part only, customer pays shipping",
		Type:     cs.PartialResend,
		Resend: &order.ResendSpec{
			Recipient:        &replacement,
			Quantity:         1,
			AdditionalAmount: 3000,
		},
		ResendNumber: resendNumber,
	}, now)
	require.NoError(t, err)

	resend := outcome.ResendOrder
	require.NotNil(t, resend)
	assert.Equal(t, replacement, resend.Recipient())
	assert.Equal(t, kernel.Money(3000), resend.SettlementAmount())
}

func Test_CSResolver_Resolve_ResendRequiresSpec(t *testing.T) {
	now := time.Date(2024, 3, 5, 14, 0, 0, 0, time.UTC)
	original := shippedOriginal(t)

	_, err := NewCSResolver().Resolve(original, ResolutionRequest{
		Category: "lost in transit",
		Type:     cs.FullResend,
	}, now)

	assert.ErrorIs(t, err, ErrResendSpecIsRequired)
}

func Test_CSResolver_Resolve_OtherActionRequiresDescription(t *testing.T) {
	now := time.Date(2024, 3, 5, 14, 0, 0, 0, time.UTC)
	original := shippedOriginal(t)

	_, err := NewCSResolver().Resolve(original, ResolutionRequest{
		Category: "misc",
		Type:     cs.OtherAction,
	}, now)
	assert.ErrorIs(t, err, cs.ErrDescriptionIsRequired)

	outcome, err := NewCSResolver().Resolve(original, ResolutionRequest{
		Category: "misc",
		Content:  "called the customer and agreed on store credit",
		Type:     cs.OtherAction,
	}, now)
	require.NoError(t, err)
	assert.Equal(t, cs.OtherAction, outcome.Record.Resolution())
}
