package domain

import (
	"fmt"
	"strings"
	"unicode"

	"github.com/SscSPs/currency_bar/internal/apperrors"
	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
)

// DefaultMaxInputAmount bounds keypad input when no explicit maximum is configured.
var DefaultMaxInputAmount = decimal.RequireFromString("999999999.99")

// InputState is the state of an AmountInput.
type InputState int

const (
	InputIdle InputState = iota
	InputEditing
	InputAccepted
	InputRejected
)

func (s InputState) String() string {
	switch s {
	case InputIdle:
		return "idle"
	case InputEditing:
		return "editing"
	case InputAccepted:
		return "accepted"
	case InputRejected:
		return "rejected"
	default:
		return "unknown"
	}
}

// AmountInput turns keypad-style text into a bounded amount.
// Only digits are significant; the decimal point is implied by the currency's
// fraction digits. Input above the maximum is dropped and the last accepted text restored.
// An AmountInput is not safe for concurrent use.
type AmountInput struct {
	text           string
	lastAccepted   string
	amount         decimal.Decimal
	acceptedAmount decimal.Decimal
	currency       Currency
	locale         language.Tag
	fractionDigits int
	max            decimal.Decimal
	state          InputState
}

// NewAmountInput returns an idle input showing amount. A non-positive max selects DefaultMaxInputAmount.
func NewAmountInput(amount decimal.Decimal, cur Currency, locale language.Tag, maxAmount decimal.Decimal) *AmountInput {
	if !maxAmount.IsPositive() {
		maxAmount = DefaultMaxInputAmount
	}
	in := &AmountInput{
		currency:       cur,
		locale:         locale,
		fractionDigits: cur.FractionDigits(),
		max:            maxAmount,
		amount:         amount,
	}
	in.text = in.format(amount)
	in.lastAccepted = in.text
	in.acceptedAmount = amount
	in.state = InputIdle
	return in
}

// ValueChanged feeds the current raw text of the field and returns the resulting state.
func (in *AmountInput) ValueChanged(raw string) InputState {
	in.state = InputEditing

	v := in.fromDigits(raw)
	if v.GreaterThan(in.max) {
		in.text = in.lastAccepted
		in.amount = in.acceptedAmount
		in.state = InputRejected
		return in.state
	}

	in.text = in.format(v)
	in.lastAccepted = in.text
	in.amount = v
	in.acceptedAmount = v
	in.state = InputAccepted
	return in.state
}

// SetCurrency re-formats the current amount for another currency and locale.
func (in *AmountInput) SetCurrency(cur Currency, locale language.Tag) {
	in.currency = cur
	in.locale = locale
	in.fractionDigits = cur.FractionDigits()
	in.amount = in.amount.RoundBank(int32(in.fractionDigits))
	in.text = in.format(in.amount)
	in.lastAccepted = in.text
	in.acceptedAmount = in.amount
	in.state = InputIdle
}

func (in *AmountInput) Text() string             { return in.text }
func (in *AmountInput) Amount() decimal.Decimal  { return in.amount }
func (in *AmountInput) State() InputState        { return in.state }
func (in *AmountInput) Max() decimal.Decimal     { return in.max }
func (in *AmountInput) Currency() Currency       { return in.currency }
func (in *AmountInput) LastAcceptedText() string { return in.lastAccepted }

// Money returns the parsed amount tagged with the input's currency.
func (in *AmountInput) Money() Money {
	return MoneyIn(in.amount, in.currency)
}

func (in *AmountInput) fromDigits(s string) decimal.Decimal {
	digits := digitsOnly(s)
	if digits == "" {
		return decimal.Zero
	}
	v, err := decimal.NewFromString(digits)
	if err != nil {
		return decimal.Zero
	}
	return v.Shift(int32(-in.fractionDigits))
}

func (in *AmountInput) format(v decimal.Decimal) string {
	s, err := Format(MoneyIn(v, in.currency), in.locale)
	if err != nil {
		return FormatPlain(MoneyIn(v, in.currency), in.locale)
	}
	return s
}

// digitsOnly keeps the decimal digits of s as ASCII, whatever script they are written in.
func digitsOnly(s string) string {
	var b strings.Builder
	for _, r := range s {
		if v, ok := digitValue(r); ok {
			b.WriteByte(byte('0' + v))
		}
	}
	return b.String()
}

// digitValue returns the value of a Unicode decimal digit (category Nd).
// Nd digits are encoded in contiguous runs of ten starting at zero.
func digitValue(r rune) (int, bool) {
	if r >= '0' && r <= '9' {
		return int(r - '0'), true
	}
	if !unicode.IsDigit(r) {
		return 0, false
	}
	start := r
	for unicode.IsDigit(start - 1) {
		start--
	}
	return int(r-start) % 10, true
}

// ParseKeypadAmount runs raw through a fresh AmountInput and returns the accepted amount.
// Input above maxAmount fails with an error wrapping apperrors.ErrValidation.
func ParseKeypadAmount(raw string, cur Currency, locale language.Tag, maxAmount decimal.Decimal) (decimal.Decimal, error) {
	in := NewAmountInput(decimal.Zero, cur, locale, maxAmount)
	if in.ValueChanged(raw) == InputRejected {
		return decimal.Zero, fmt.Errorf("%w: amount exceeds maximum of %s", apperrors.ErrValidation, in.Max().StringFixed(MoneyScale))
	}
	return in.Amount(), nil
}
