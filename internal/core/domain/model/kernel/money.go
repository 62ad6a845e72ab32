package kernel

import (
	"bytes"
	"fmt"

	"marketplace/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

// MinorUnitsPerMajor is the number of cents in one currency unit.
const MinorUnitsPerMajor = 100

const moneyScale = 2

// Money is a non-negative amount held in integer minor units, so settlement
// splits never accumulate floating point drift.
//
// JSON uses a plain number with two decimals ("price": 100.00); strings such as
// "100.5" are accepted on input.
type Money struct {
	cents int64
}

// Zero is the empty amount.
var Zero = Money{}

// NewMoneyFromCents builds an amount from minor units.
func NewMoneyFromCents(cents int64) (Money, error) {
	if cents < 0 {
		return Money{}, errs.NewValueIsOutOfRangeError("money", cents, 0, "unbounded")
	}
	return Money{cents: cents}, nil
}

// MustMoneyFromCents panics on negative input. Intended for tests and fixtures.
func MustMoneyFromCents(cents int64) Money {
	m, err := NewMoneyFromCents(cents)
	if err != nil {
		panic(err)
	}
	return m
}

// ParseMoney parses a decimal string such as "100", "85.5" or "0.15".
// More than two fractional digits are rejected instead of silently rounded.
func ParseMoney(s string) (Money, error) {
	d, err := decimal.NewFromString(s)
	if err != nil {
		return Money{}, errs.NewValueIsInvalidErrorWithCause("money", err)
	}
	return moneyFromDecimal(d)
}

// MoneyFromFloat converts a JSON number. The shortest decimal representation
// of f is used, so 100.1 becomes 100.10 and not 100.0999...
func MoneyFromFloat(f float64) (Money, error) {
	return moneyFromDecimal(decimal.NewFromFloat(f))
}

func moneyFromDecimal(d decimal.Decimal) (Money, error) {
	if !d.Round(moneyScale).Equal(d) {
		return Money{}, errs.NewValueIsInvalidErrorWithCause(
			"money", fmt.Errorf("%s has more than %d decimal places", d.String(), moneyScale),
		)
	}
	if d.IsNegative() {
		return Money{}, errs.NewValueIsOutOfRangeError("money", d.String(), 0, "unbounded")
	}
	cents := d.Shift(moneyScale)
	if !cents.IsInteger() || cents.GreaterThan(decimal.NewFromInt(maxCents)) {
		return Money{}, errs.NewValueIsOutOfRangeError("money", d.String(), 0, decimal.New(maxCents, -moneyScale).String())
	}
	return Money{cents: cents.IntPart()}, nil
}

const maxCents = int64(1) << 53

// Cents returns the amount in minor units.
func (m Money) Cents() int64 {
	return m.cents
}

// Decimal returns the amount in major units.
func (m Money) Decimal() decimal.Decimal {
	return decimal.New(m.cents, -moneyScale)
}

// Float64 returns the amount in major units for transports that carry
// plain numbers.
func (m Money) Float64() float64 {
	return m.Decimal().InexactFloat64()
}

// IsZero reports whether the amount is zero.
func (m Money) IsZero() bool {
	return m.cents == 0
}

// Add returns m + other.
func (m Money) Add(other Money) Money {
	return Money{cents: m.cents + other.cents}
}

// Sub returns m - other and fails if the result would be negative.
func (m Money) Sub(other Money) (Money, error) {
	return NewMoneyFromCents(m.cents - other.cents)
}

// Percent returns percent/100 of m rounded half up to the nearest cent.
func (m Money) Percent(percent int64) Money {
	share := decimal.NewFromInt(m.cents).
		Mul(decimal.NewFromInt(percent)).
		Div(decimal.NewFromInt(100)).
		Round(0)
	return Money{cents: share.IntPart()}
}

// String renders the amount with two decimals, e.g. "85.00".
func (m Money) String() string {
	return m.Decimal().StringFixed(moneyScale)
}

// MarshalJSON writes the amount as a JSON number with two decimals.
func (m Money) MarshalJSON() ([]byte, error) {
	return []byte(m.String()), nil
}

// UnmarshalJSON accepts a JSON number or a quoted decimal string.
func (m *Money) UnmarshalJSON(data []byte) error {
	raw := bytes.Trim(data, `"`)
	if len(raw) == 0 || bytes.Equal(raw, []byte("null")) {
		return errs.NewValueIsRequiredError("money")
	}
	parsed, err := ParseMoney(string(raw))
	if err != nil {
		return err
	}
	*m = parsed
	return nil
}
