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

func TestNewCurrency(t *testing.T) {
	c, err := domain.NewCurrency(" usd ")
	require.NoError(t, err)
	assert.Equal(t, "USD", c.Code)

	_, err = domain.NewCurrency("")
	assert.True(t, errors.Is(err, apperrors.ErrValidation))

	_, err = domain.NewCurrency("QQQ")
	assert.True(t, errors.Is(err, apperrors.ErrValidation))
}

func TestCurrency_EqualIgnoresLocale(t *testing.T) {
	a := domain.MustCurrency("EUR").WithLocale(language.MustParse("en-IE"))
	b := domain.MustCurrency("EUR").WithLocale(language.MustParse("en-DE"))
	assert.True(t, a.Equal(b))
	assert.False(t, a.Equal(domain.MustCurrency("USD")))
}

func TestCurrency_FractionDigits(t *testing.T) {
	assert.Equal(t, 2, domain.MustCurrency("USD").FractionDigits())
	assert.Equal(t, 0, domain.MustCurrency("JPY").FractionDigits())
	assert.Equal(t, 2, domain.Currency{Code: "QQQ"}.FractionDigits())
}

func TestCurrency_Symbol(t *testing.T) {
	assert.Equal(t, "$", domain.MustCurrency("USD").Symbol(language.English))
	assert.Equal(t, "£", domain.MustCurrency("GBP").Symbol(language.English))
	assert.Equal(t, "QQQ", domain.Currency{Code: "QQQ"}.Symbol(language.English))
}
