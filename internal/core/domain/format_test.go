package domain_test

import (
	"errors"
	"testing"

	"github.com/SscSPs/currency_bar/internal/apperrors"
	"github.com/SscSPs/currency_bar/internal/core/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/language"
)

func TestFormat(t *testing.T) {
	tests := []struct {
		name  string
		money domain.Money
		want  string
	}{
		{name: "usd grouped", money: domain.MoneyIn(dec("1234.5"), domain.MustCurrency("USD")), want: "$1,234.50"},
		{name: "usd rounded half even", money: domain.MoneyIn(dec("0.125"), domain.MustCurrency("USD")), want: "$0.12"},
		{name: "eur", money: domain.MoneyIn(dec("99.99"), domain.MustCurrency("EUR")), want: "€99.99"},
		{name: "jpy has no minor units", money: domain.MoneyIn(dec("1234"), domain.MustCurrency("JPY")), want: "¥1,234"},
		{name: "multi letter symbol is spaced", money: domain.MoneyIn(dec("10"), domain.MustCurrency("CHF")), want: "CHF 10.00"},
		{name: "three minor digits", money: domain.MoneyIn(dec("12.345"), domain.MustCurrency("KWD")), want: "KWD 12.345"},
		{name: "negative", money: domain.MoneyIn(dec("-5"), domain.MustCurrency("USD")), want: "-$5.00"},
		{name: "no currency", money: domain.NewMoney(dec("1234.5"), nil), want: "1,234.50"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := domain.Format(tt.money, language.English)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestFormat_UndefinedLocaleFallsBackToEnglish(t *testing.T) {
	got, err := domain.Format(domain.MoneyFromInt(1000), language.Und)
	require.NoError(t, err)
	assert.Equal(t, "1,000.00", got)
}

func TestFormat_UnknownCurrency(t *testing.T) {
	_, err := domain.Format(domain.MoneyIn(dec("1"), domain.Currency{Code: "QQQ"}), language.English)
	require.Error(t, err)
	assert.True(t, errors.Is(err, apperrors.ErrValidation))
}

func TestFormatPlain(t *testing.T) {
	got := domain.FormatPlain(domain.MoneyIn(dec("98765.432"), domain.MustCurrency("USD")), language.English)
	assert.Equal(t, "98,765.43", got)
}
