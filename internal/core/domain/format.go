package domain

import (
	"fmt"
	"unicode/utf8"

	"github.com/SscSPs/currency_bar/internal/apperrors"
	"golang.org/x/text/currency"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

// Format renders m for display in the given locale.
// With a currency it produces the localized symbol followed by grouped digits, rounded
// half-to-even at the currency's fraction digits; without one, a plain grouped number with two decimals.
// An error is returned only when m carries a currency code unknown to the ISO table.
func Format(m Money, locale language.Tag) (string, error) {
	if locale == language.Und {
		locale = language.English
	}
	p := message.NewPrinter(locale)

	cur, ok := m.Currency()
	if !ok {
		return formatNumber(p, m.Amount().InexactFloat64(), int(MoneyScale)), nil
	}

	if _, err := currency.ParseISO(cur.Code); err != nil {
		return "", fmt.Errorf("%w: cannot format unknown currency '%s'", apperrors.ErrValidation, cur.Code)
	}

	digits := cur.FractionDigits()
	amount := m.Raw().RoundBank(int32(digits))
	sym := cur.Symbol(locale)

	sign := ""
	if amount.IsNegative() {
		sign = "-"
		amount = amount.Neg()
	}
	body := formatNumber(p, amount.InexactFloat64(), digits)
	if utf8.RuneCountInString(sym) > 1 {
		return fmt.Sprintf("%s%s %s", sign, sym, body), nil
	}
	return sign + sym + body, nil
}

// FormatPlain renders the rounded amount with grouping and two decimals, ignoring any currency.
func FormatPlain(m Money, locale language.Tag) string {
	if locale == language.Und {
		locale = language.English
	}
	return formatNumber(message.NewPrinter(locale), m.Amount().InexactFloat64(), int(MoneyScale))
}

func formatNumber(p *message.Printer, v float64, digits int) string {
	return p.Sprint(number.Decimal(v, number.Scale(digits)))
}
