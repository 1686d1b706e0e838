package order

import (
	"fmt"
	"time"

	"settlement/internal/pkg/errs"
)

// Channel identifies the intake path an order arrived through.
// The channel decides the order-number prefix and the initial lifecycle status.
type Channel int

const (
	// ChannelUnknown represents an invalid or undefined channel.
	ChannelUnknown Channel = iota

	// ChannelMarketplace is an order imported from an external marketplace.
	// Marketplace orders enter the lifecycle at Received.
	ChannelMarketplace

	// ChannelPlatform is an order placed through the platform's own storefront.
	// Platform orders enter at Uploaded and require seller confirmation.
	ChannelPlatform

	// ChannelCustomerService is a shadow order created by a customer-service
	// resend resolution. CS orders enter at Received.
	ChannelCustomerService
)

func getChannelPrefixes() map[Channel]string {
	return map[Channel]string{
		ChannelMarketplace:     "MK",
		ChannelPlatform:        "PL",
		ChannelCustomerService: "CS",
	}
}

// Validate checks if the Channel value is valid.
func (c Channel) Validate() error {
	if _, ok := getChannelPrefixes()[c]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("channel is invalid",
			fmt.Errorf("%d is not a valid channel", c))
	}
	return nil
}

// Prefix returns the order-number prefix for the channel.
func (c Channel) Prefix() string {
	if p, ok := getChannelPrefixes()[c]; ok {
		return p
	}
	return ""
}

// InitialStatus returns the status an order starts in when created through
// this channel.
func (c Channel) InitialStatus() Status {
	if c == ChannelPlatform {
		return Uploaded
	}
	return Received
}

// String returns the canonical name of the channel.
func (c Channel) String() string {
	switch c {
	case ChannelMarketplace:
		return "Marketplace"
	case ChannelPlatform:
		return "Platform"
	case ChannelCustomerService:
		return "CustomerService"
	default:
		return "Unknown"
	}
}

// ErrOrderNumberIsRequired is returned when an empty order number is used.
var ErrOrderNumberIsRequired = errs.NewValueIsRequiredError("order number")

// Number is the business-visible identifier of an order, generated per intake
// channel: channel prefix + intake timestamp + a per-second sequence.
// It is distinct from the stable persistence id and is the handle operators
// and free-text lineage references (memo) use.
type Number string

// GenerateNumber builds an order number for the given channel, timestamp and
// sequence, e.g. "PL-20260828153000-0042".
func GenerateNumber(channel Channel, at time.Time, seq int) (Number, error) {
	if err := channel.Validate(); err != nil {
		return "", err
	}
	if seq < 0 {
		return "", errs.NewValueIsInvalidErrorWithCause("order number sequence is invalid",
			fmt.Errorf("%d is negative", seq))
	}
	return Number(fmt.Sprintf("%s-%s-%04d", channel.Prefix(), at.Format("20060102150405"), seq%10000)), nil
}

// Validate checks that the order number is non-empty.
func (n Number) Validate() error {
	if n == "" {
		return ErrOrderNumberIsRequired
	}
	return nil
}

// String returns the order number as a plain string.
func (n Number) String() string {
	return string(n)
}
