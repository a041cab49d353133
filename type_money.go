package expenses

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/Rhymond/go-money"
	"github.com/shopspring/decimal"
)

// fraction is the number of decimal digits an amount can hold.
const fraction = 2

// plain formats amounts with thousands separators and no currency symbol, e.g. "-1,234.50".
var plain = money.NewFormatter(fraction, ".", ",", "", "1")

// Money represents a monetary value in the ledger currency.
//
// The zero value is 0.00.
type Money struct {
	value decimal.Decimal
}

func newDecimal[T float32 | float64 | int | int32 | int64 | decimal.Decimal](value T) decimal.Decimal {
	switch v := any(value).(type) {
	case decimal.Decimal:
		return v
	case float32:
		return decimal.NewFromFloat32(v)
	case float64:
		return decimal.NewFromFloat(v)
	case int:
		return decimal.NewFromInt(int64(v))
	case int32:
		return decimal.NewFromInt32(v)
	case int64:
		return decimal.NewFromInt(v)
	default:
		panic("unsupported type")
	}
}

// M returns Money for value.
func M[T float32 | float64 | int | int32 | int64 | decimal.Decimal](value T) Money {
	return Money{value: newDecimal(value)}
}

// maxDigits bounds the integer part so that cents fit in an int64.
const maxDigits = 15

// amountPattern matches plain decimals, with optional thousands groups.
var amountPattern = regexp.MustCompile(`^[+-]?(\d{1,3}(,\d{3})+|\d+)(\.\d{1,12})?$`)

// ParseAmount parses a user or file amount like "1,500.00" or "-20.5".
//
// Thousands separators must group digits by three. Exponents are not
// accepted. Amounts with more than two significant fractional digits are
// rejected.
func ParseAmount(s string) (Money, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return Money{}, fmt.Errorf("%w: empty amount", ErrInvalidAmount)
	}
	if !amountPattern.MatchString(s) {
		return Money{}, fmt.Errorf("%w: %q is not a number", ErrInvalidAmount, s)
	}
	clean := strings.ReplaceAll(s, ",", "")
	integer, _, _ := strings.Cut(strings.TrimLeft(clean, "+-"), ".")
	if len(strings.TrimLeft(integer, "0")) > maxDigits {
		return Money{}, fmt.Errorf("%w: %q is too large", ErrInvalidAmount, s)
	}
	d, err := decimal.NewFromString(clean)
	if err != nil {
		return Money{}, fmt.Errorf("%w: %q is not a number", ErrInvalidAmount, s)
	}
	if !d.Equal(d.Truncate(fraction)) {
		return Money{}, fmt.Errorf("%w: %q has more than %d decimal places", ErrInvalidAmount, s, fraction)
	}
	return Money{value: d}, nil
}

// MustParseAmount is like ParseAmount but panics on error.
func MustParseAmount(s string) Money {
	m, err := ParseAmount(s)
	if err != nil {
		panic(err.Error())
	}
	return m
}

// cents returns the value in minor units.
func (m Money) cents() int64 { return m.value.Round(fraction).Shift(fraction).IntPart() }

// String returns the value with thousands separators and two decimals, e.g. "-1,234.50".
func (m Money) String() string { return plain.Format(m.cents()) }

// Display returns the value formatted for a currency, e.g. "₱1,500.00".
//
// Unknown currency codes fall back to String.
func (m Money) Display(currency string) string {
	cur := money.GetCurrency(currency)
	if cur == nil {
		return m.String()
	}
	return money.New(m.cents(), cur.Code).Display()
}

// SignedString returns the value with an explicit sign, "+500.00" or "-20.00".
func (m Money) SignedString() string {
	if m.value.IsPositive() {
		return "+" + m.String()
	}
	return m.String()
}

func (m Money) Decimal() decimal.Decimal        { return m.value }
func (m Money) Equal(n Money) bool              { return m.value.Equal(n.value) }
func (m Money) IsZero() bool                    { return m.value.IsZero() }
func (m Money) IsPositive() bool                { return m.value.IsPositive() }
func (m Money) IsNegative() bool                { return m.value.IsNegative() }
func (m Money) Sign() int                       { return m.value.Sign() }
func (m Money) LessThan(n Money) bool           { return m.value.LessThan(n.value) }
func (m Money) GreaterThanOrEqual(n Money) bool { return m.value.GreaterThanOrEqual(n.value) }
func (m Money) Neg() Money                      { return Money{value: m.value.Neg()} }
func (m Money) Abs() Money                      { return Money{value: m.value.Abs()} }
func (m Money) Add(n Money) Money               { return Money{value: m.value.Add(n.value)} }
func (m Money) Sub(n Money) Money               { return Money{value: m.value.Sub(n.value)} }

// Normalize returns the amount signed for the category: positive for
// Income, negative for Expense.
func (m Money) Normalize(c Category) Money {
	if c == Expense {
		return m.Abs().Neg()
	}
	return m.Abs()
}

// MarshalJSON writes money as a plain JSON number with two decimals.
func (m Money) MarshalJSON() ([]byte, error) {
	return []byte(m.value.StringFixed(fraction)), nil
}
