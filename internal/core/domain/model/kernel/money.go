package kernel

import (
	"fmt"

	"settlement/internal/pkg/errs"
)

// Money represents a monetary amount in minor currency units (e.g. won).
// Amounts are always non-negative; subtraction that would go below zero is
// clamped and reported instead of producing a negative value, because
// settlement arithmetic must never emit negative deposits.
//
// Money is a value object: all operations return new values and never mutate
// the receiver.
//
// Example:
//
//	total := kernel.Money(3500)
//	deposit, overdrawn := total.SubFloor(kernel.Money(500))
//	// deposit == 3000, overdrawn == false
type Money int64

// Validate checks that the amount is non-negative.
// Negative amounts can only be produced by bypassing the Money operations
// (e.g. loading corrupted data from persistence) and are rejected.
func (m Money) Validate() error {
	if m < 0 {
		return errs.NewValueIsInvalidErrorWithCause("money amount is invalid",
			fmt.Errorf("%d is negative", int64(m)))
	}
	return nil
}

// Add returns the sum of two amounts.
func (m Money) Add(other Money) Money {
	return m + other
}

// SubFloor subtracts other from m, clamping the result at zero.
// The second return value reports whether clamping occurred, i.e. whether
// other exceeded m. Callers that care about data integrity (batch deposit
// computation) surface the flag as a warning.
func (m Money) SubFloor(other Money) (Money, bool) {
	if other > m {
		return 0, true
	}
	return m - other, false
}

// Percent returns floor(m × percent / 100).
// Used for partial refund computation, where fractional units are always
// rounded down in the customer's disfavor.
// Returns an error if percent is outside [0..100].
func (m Money) Percent(percent int) (Money, error) {
	if percent < 0 || percent > 100 {
		return 0, errs.NewValueIsOutOfRangeError("percent", percent, 0, 100)
	}
	return Money(int64(m) * int64(percent) / 100), nil
}

// IsZero reports whether the amount is exactly zero.
func (m Money) IsZero() bool {
	return m == 0
}

// Int64 returns the raw amount in minor currency units.
func (m Money) Int64() int64 {
	return int64(m)
}

// String returns the amount as a plain decimal number.
func (m Money) String() string {
	return fmt.Sprintf("%d", int64(m))
}
