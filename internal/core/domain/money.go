package domain

import (
	"github.com/shopspring/decimal"
)

// MoneyScale is the number of fractional digits money is rounded to.
const MoneyScale int32 = 2

// Round rounds d to two fractional digits using round-half-to-even.
// Rounding an already rounded value returns it unchanged.
func Round(d decimal.Decimal) decimal.Decimal {
	return d.RoundBank(MoneyScale)
}

// Money is an immutable amount with an optional currency.
// All comparisons use the rounded amount; arithmetic uses the raw amount.
type Money struct {
	raw      decimal.Decimal
	currency *Currency
}

// NewMoney creates Money from a raw decimal amount. currency may be nil.
func NewMoney(amount decimal.Decimal, currency *Currency) Money {
	if currency != nil {
		c := *currency
		currency = &c
	}
	return Money{raw: amount, currency: currency}
}

// MoneyIn creates Money tagged with the given currency.
func MoneyIn(amount decimal.Decimal, currency Currency) Money {
	return Money{raw: amount, currency: &currency}
}

// MoneyFromInt creates currency-less Money from an integer.
func MoneyFromInt(v int64) Money {
	return Money{raw: decimal.NewFromInt(v)}
}

// Raw returns the unrounded amount. Prefer Amount for anything user-visible.
func (m Money) Raw() decimal.Decimal {
	return m.raw
}

// Amount returns the amount rounded to two decimals.
func (m Money) Amount() decimal.Decimal {
	return Round(m.raw)
}

// Currency returns the money's currency, if any.
func (m Money) Currency() (Currency, bool) {
	if m.currency == nil {
		return Currency{}, false
	}
	return *m.currency, true
}

// In returns the same amount tagged with currency.
func (m Money) In(currency Currency) Money {
	return MoneyIn(m.raw, currency)
}

// IsZero reports whether the rounded amount is exactly zero.
func (m Money) IsZero() bool {
	return m.Amount().IsZero()
}

// IsPositive reports whether the rounded amount is zero or more.
func (m Money) IsPositive() bool {
	return m.IsZero() || m.IsGreaterThanZero()
}

// IsNegative reports whether the rounded amount is below zero.
func (m Money) IsNegative() bool {
	return m.Amount().IsNegative()
}

// IsGreaterThanZero reports whether the rounded amount is above zero.
func (m Money) IsGreaterThanZero() bool {
	return m.Amount().IsPositive()
}

// Add sums two amounts. Currencies are not checked and the result carries none.
func (m Money) Add(other Money) Money {
	return Money{raw: m.raw.Add(other.raw)}
}

// Sub subtracts other from m. Currencies are not checked and the result carries none.
func (m Money) Sub(other Money) Money {
	return Money{raw: m.raw.Sub(other.raw)}
}

// Mul multiplies two amounts. Currencies are not checked and the result carries none.
func (m Money) Mul(other Money) Money {
	return Money{raw: m.raw.Mul(other.raw)}
}

// Div divides m by other. ok is false when other rounds to zero.
func (m Money) Div(other Money) (result Money, ok bool) {
	if other.IsZero() {
		return Money{}, false
	}
	return Money{raw: m.raw.Div(other.raw)}, true
}

// Equal compares rounded amounts; currencies are ignored.
func (m Money) Equal(other Money) bool {
	return m.Amount().Equal(other.Amount())
}

// Cmp compares rounded amounts and returns -1, 0 or +1.
func (m Money) Cmp(other Money) int {
	return m.Amount().Cmp(other.Amount())
}

// LessThan reports whether m's rounded amount is below other's.
func (m Money) LessThan(other Money) bool {
	return m.Cmp(other) < 0
}

// GreaterThan reports whether m's rounded amount is above other's.
func (m Money) GreaterThan(other Money) bool {
	return m.Cmp(other) > 0
}

// String returns the rounded amount with two decimals.
func (m Money) String() string {
	return m.Amount().StringFixed(MoneyScale)
}

// MarshalJSON encodes the rounded amount as a JSON number.
func (m Money) MarshalJSON() ([]byte, error) {
	return []byte(m.Amount().StringFixed(MoneyScale)), nil
}

// UnmarshalJSON decodes a JSON number into currency-less Money.
func (m *Money) UnmarshalJSON(data []byte) error {
	var d decimal.Decimal
	if err := d.UnmarshalJSON(data); err != nil {
		return err
	}
	m.raw = d
	m.currency = nil
	return nil
}

// commonCurrency returns the single currency code shared by every element.
// ok is false for an empty slice or when more than one distinct code (including "none") appears.
func commonCurrency(ms []Money) (cur *Currency, ok bool) {
	seen := make(map[string]struct{}, 1)
	for _, m := range ms {
		code := ""
		if m.currency != nil {
			code = m.currency.Code
			if cur == nil {
				cur = m.currency
			}
		}
		seen[code] = struct{}{}
	}
	return cur, len(seen) == 1
}

// Sum adds all amounts. It fails unless every element shares exactly one currency, or all have none.
func Sum(ms ...Money) (Money, bool) {
	cur, ok := commonCurrency(ms)
	if !ok {
		return Money{}, false
	}
	total := decimal.Zero
	for _, m := range ms {
		total = total.Add(m.raw)
	}
	return NewMoney(total, cur), true
}

// Average returns the mean amount, or zero for an empty slice.
// Like Sum, all elements must share one currency (or none).
func Average(ms ...Money) (Money, bool) {
	if len(ms) == 0 {
		return MoneyFromInt(0), true
	}
	sum, ok := Sum(ms...)
	if !ok {
		return Money{}, false
	}
	avg, ok := sum.Div(MoneyFromInt(int64(len(ms))))
	if !ok {
		return Money{}, false
	}
	return NewMoney(avg.raw, sum.currency), true
}
