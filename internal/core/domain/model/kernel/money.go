package kernel

import (
	"fmt"

	"grameego/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

// Money is a value object for exact monetary amounts in the platform currency
// (GBP). It is backed by an arbitrary-precision decimal so cart totals and
// fees never accumulate binary floating point error; amounts are only reduced
// to two decimal places explicitly via Round2 or at display time via String.
//
// Money is immutable: arithmetic methods return new values. The zero value is
// a valid 0.00 amount. Negative amounts are representable (for intermediate
// arithmetic) but fail Validate, since no delivery field may go negative.
type Money struct {
	amount decimal.Decimal
}

// ZeroMoney returns the 0.00 amount.
func ZeroMoney() Money {
	return Money{amount: decimal.Zero}
}

// NewMoneyFromString parses an amount such as "12.34".
// Returns an error for unparseable input.
func NewMoneyFromString(s string) (Money, error) {
	d, err := decimal.NewFromString(s)
	if err != nil {
		return Money{}, errs.NewValueIsInvalidErrorWithCause("money amount", err)
	}
	return Money{amount: d}, nil
}

// NewMoneyFromFloat converts a float amount, rounding to the nearest cent
// (half-up). Intended for boundary input only; domain arithmetic stays in
// decimals.
func NewMoneyFromFloat(f float64) Money {
	return Money{amount: decimal.NewFromFloat(f).Round(2)}
}

// MoneyFromDecimal wraps a raw decimal amount, typically read back from
// persistence.
func MoneyFromDecimal(d decimal.Decimal) Money {
	return Money{amount: d}
}

// Add returns the sum of two amounts.
func (m Money) Add(other Money) Money {
	return Money{amount: m.amount.Add(other.amount)}
}

// MulInt returns the amount multiplied by an integer quantity.
func (m Money) MulInt(n int) Money {
	return Money{amount: m.amount.Mul(decimal.NewFromInt(int64(n)))}
}

// Round2 rounds to the nearest cent using half-up rounding.
func (m Money) Round2() Money {
	return Money{amount: m.amount.Round(2)}
}

// Max returns the larger of the two amounts.
func (m Money) Max(other Money) Money {
	if m.amount.LessThan(other.amount) {
		return other
	}
	return m
}

// IsEqual reports whether two amounts are numerically equal.
func (m Money) IsEqual(other Money) bool {
	return m.amount.Equal(other.amount)
}

// IsNegative reports whether the amount is below zero.
func (m Money) IsNegative() bool {
	return m.amount.IsNegative()
}

// Decimal returns the underlying decimal amount.
func (m Money) Decimal() decimal.Decimal {
	return m.amount
}

// String renders the amount with exactly two decimal places, e.g. "4.00".
func (m Money) String() string {
	return m.amount.StringFixed(2)
}

// Validate returns an error when the amount is negative.
func (m Money) Validate() error {
	if m.amount.IsNegative() {
		return errs.NewValueIsInvalidErrorWithCause("money amount",
			fmt.Errorf("%s is negative", m.String()))
	}
	return nil
}
