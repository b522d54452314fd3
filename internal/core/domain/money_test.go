package domain_test

import (
	"encoding/json"
	"testing"

	"github.com/SscSPs/currency_bar/internal/core/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func TestRound(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{name: "half rounds to even down", in: "2.345", want: "2.34"},
		{name: "half rounds to even up", in: "2.355", want: "2.36"},
		{name: "below half", in: "1.004", want: "1"},
		{name: "above half", in: "1.006", want: "1.01"},
		{name: "negative half", in: "-2.345", want: "-2.34"},
		{name: "already rounded", in: "100.10", want: "100.1"},
		{name: "integer", in: "7", want: "7"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := domain.Round(dec(tt.in))
			assert.True(t, dec(tt.want).Equal(got), "got %s", got)
		})
	}
}

func TestRound_Idempotent(t *testing.T) {
	inputs := []string{"0", "0.005", "0.015", "1.2345", "-9.995", "123456789.125", "3.14159"}
	for _, in := range inputs {
		once := domain.Round(dec(in))
		twice := domain.Round(once)
		assert.True(t, once.Equal(twice), "rounding %s twice changed the value", in)
	}
}

func TestMoney_EqualityUsesRoundedAmount(t *testing.T) {
	a := domain.NewMoney(dec("10.001"), nil)
	b := domain.NewMoney(dec("10.004"), nil)

	assert.False(t, a.Raw().Equal(b.Raw()))
	assert.True(t, a.Equal(b))
	assert.Equal(t, 0, a.Cmp(b))
	assert.False(t, a.LessThan(b))

	c := domain.NewMoney(dec("10.006"), nil)
	assert.True(t, a.LessThan(c))
	assert.True(t, c.GreaterThan(b))
}

func TestMoney_SignPredicates(t *testing.T) {
	tiny := domain.NewMoney(dec("0.004"), nil)
	assert.True(t, tiny.IsZero())
	assert.True(t, tiny.IsPositive())
	assert.False(t, tiny.IsGreaterThanZero())
	assert.False(t, tiny.IsNegative())

	neg := domain.NewMoney(dec("-0.01"), nil)
	assert.True(t, neg.IsNegative())
	assert.False(t, neg.IsPositive())

	pos := domain.NewMoney(dec("0.01"), nil)
	assert.True(t, pos.IsGreaterThanZero())
}

func TestMoney_ArithmeticStripsCurrency(t *testing.T) {
	usd := domain.MustCurrency("USD")
	eur := domain.MustCurrency("EUR")
	a := domain.MoneyIn(dec("10.005"), usd)
	b := domain.MoneyIn(dec("2.5"), eur)

	sum := a.Add(b)
	assert.True(t, dec("12.505").Equal(sum.Raw()))
	_, ok := sum.Currency()
	assert.False(t, ok)

	diff := a.Sub(b)
	assert.True(t, dec("7.505").Equal(diff.Raw()))

	prod := a.Mul(b)
	assert.True(t, dec("25.0125").Equal(prod.Raw()))
	_, ok = prod.Currency()
	assert.False(t, ok)
}

func TestMoney_Div(t *testing.T) {
	ten := domain.MoneyFromInt(10)

	q, ok := ten.Div(domain.MoneyFromInt(4))
	require.True(t, ok)
	assert.True(t, dec("2.5").Equal(q.Raw()))

	_, ok = ten.Div(domain.MoneyFromInt(0))
	assert.False(t, ok, "division by zero must yield no result")

	_, ok = ten.Div(domain.NewMoney(dec("0.004"), nil))
	assert.False(t, ok, "divisor that rounds to zero must yield no result")
}

func TestSum(t *testing.T) {
	usd := domain.MustCurrency("USD")
	eur := domain.MustCurrency("EUR")

	t.Run("shared currency", func(t *testing.T) {
		got, ok := domain.Sum(domain.MoneyIn(dec("1.10"), usd), domain.MoneyIn(dec("2.20"), usd))
		require.True(t, ok)
		assert.True(t, dec("3.30").Equal(got.Raw()))
		cur, hasCur := got.Currency()
		require.True(t, hasCur)
		assert.Equal(t, "USD", cur.Code)
	})

	t.Run("no currency", func(t *testing.T) {
		got, ok := domain.Sum(domain.MoneyFromInt(1), domain.MoneyFromInt(2))
		require.True(t, ok)
		assert.True(t, got.Equal(domain.MoneyFromInt(3)))
		_, hasCur := got.Currency()
		assert.False(t, hasCur)
	})

	t.Run("mixed currencies", func(t *testing.T) {
		_, ok := domain.Sum(domain.MoneyIn(dec("1"), usd), domain.MoneyIn(dec("1"), eur))
		assert.False(t, ok)
	})

	t.Run("currency and none", func(t *testing.T) {
		_, ok := domain.Sum(domain.MoneyIn(dec("1"), usd), domain.MoneyFromInt(1))
		assert.False(t, ok)
	})

	t.Run("empty", func(t *testing.T) {
		_, ok := domain.Sum()
		assert.False(t, ok)
	})
}

func TestAverage(t *testing.T) {
	usd := domain.MustCurrency("USD")

	got, ok := domain.Average()
	require.True(t, ok)
	assert.True(t, got.IsZero())

	single := domain.MoneyIn(dec("42.42"), usd)
	got, ok = domain.Average(single)
	require.True(t, ok)
	assert.True(t, got.Equal(single))
	cur, _ := got.Currency()
	assert.Equal(t, "USD", cur.Code)

	got, ok = domain.Average(domain.MoneyIn(dec("1"), usd), domain.MoneyIn(dec("2"), usd))
	require.True(t, ok)
	assert.True(t, dec("1.5").Equal(got.Raw()))

	_, ok = domain.Average(domain.MoneyIn(dec("1"), usd), domain.MoneyIn(dec("1"), domain.MustCurrency("JPY")))
	assert.False(t, ok)
}

func TestMoney_JSON(t *testing.T) {
	payload := struct {
		Amount domain.Money `json:"amount"`
	}{Amount: domain.NewMoney(dec("10.005"), nil)}

	b, err := json.Marshal(payload)
	require.NoError(t, err)
	assert.JSONEq(t, `{"amount": 10.00}`, string(b))

	var decoded struct {
		Amount domain.Money `json:"amount"`
	}
	require.NoError(t, json.Unmarshal([]byte(`{"amount": 12.345}`), &decoded))
	assert.True(t, dec("12.345").Equal(decoded.Amount.Raw()))
	assert.Equal(t, "12.34", decoded.Amount.String())
}
