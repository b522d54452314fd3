package domain

import (
	"fmt"
	"strings"

	"github.com/SscSPs/currency_bar/internal/apperrors"
	"golang.org/x/text/currency"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// defaultFractionDigits is used when a currency code is unknown to the ISO table.
const defaultFractionDigits = 2

// Currency represents an ISO 4217 currency.
// Identity is the code alone; Locale is display metadata.
type Currency struct {
	Code   string       `json:"code"` // e.g., "USD"
	Locale language.Tag `json:"-"`    // formatting hint, never compared
}

// NewCurrency validates code against the ISO 4217 table and returns a Currency.
func NewCurrency(code string) (Currency, error) {
	code = strings.ToUpper(strings.TrimSpace(code))
	if code == "" {
		return Currency{}, fmt.Errorf("%w: currency code is required", apperrors.ErrValidation)
	}
	if _, err := currency.ParseISO(code); err != nil {
		return Currency{}, fmt.Errorf("%w: unknown currency code '%s'", apperrors.ErrValidation, code)
	}
	return Currency{Code: code, Locale: language.Und}, nil
}

// MustCurrency is NewCurrency for codes known to be valid at compile time.
func MustCurrency(code string) Currency {
	c, err := NewCurrency(code)
	if err != nil {
		panic(err)
	}
	return c
}

// WithLocale returns a copy of c carrying the given display locale.
func (c Currency) WithLocale(locale language.Tag) Currency {
	c.Locale = locale
	return c
}

// Equal reports whether both currencies share the same code.
func (c Currency) Equal(other Currency) bool {
	return c.Code == other.Code
}

func (c Currency) String() string {
	return c.Code
}

// FractionDigits returns the number of minor-unit digits for the currency (2 for USD, 0 for JPY).
func (c Currency) FractionDigits() int {
	unit, err := currency.ParseISO(c.Code)
	if err != nil {
		return defaultFractionDigits
	}
	scale, _ := currency.Standard.Rounding(unit)
	return scale
}

// Symbol returns the localized currency symbol, or the code when none is known.
func (c Currency) Symbol(locale language.Tag) string {
	unit, err := currency.ParseISO(c.Code)
	if err != nil {
		return c.Code
	}
	sym := message.NewPrinter(locale).Sprint(currency.Symbol(unit))
	if strings.TrimSpace(sym) == "" {
		return c.Code
	}
	return sym
}
