package mapping

import (
	"testing"
	"time"

	"github.com/SscSPs/currency_bar/internal/core/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAssetMapping_KeepsRawAmountsAndNullableTime(t *testing.T) {
	now := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	a, err := domain.NewAsset("a1", domain.MustCurrency("USD"), domain.MustCurrency("JPY"), decimal.NewFromInt(10), true, now)
	require.NoError(t, err)

	m := ToModelAsset(*a)
	assert.Nil(t, m.LastConvertedAt)
	assert.Equal(t, "flat", m.Trend)

	back := ToDomainAsset(m)
	assert.False(t, back.HasConversion())

	a.ApplyConversion(decimal.RequireFromString("1499.995"), now.Add(time.Hour))
	a.ApplyConversion(decimal.RequireFromString("1500.125"), now.Add(2*time.Hour))

	m = ToModelAsset(*a)
	require.NotNil(t, m.LastConvertedAt)
	assert.True(t, m.TargetAmount.Equal(decimal.RequireFromString("1500.125")))
	assert.True(t, m.PreviousTargetAmount.Equal(decimal.RequireFromString("1499.995")))
	assert.Equal(t, "up", m.Trend)

	back = ToDomainAsset(m)
	assert.Equal(t, domain.TrendUp, back.Trend)
	assert.True(t, back.TargetAmount.Raw().Equal(decimal.RequireFromString("1500.125")))
	cur, ok := back.TargetAmount.Currency()
	require.True(t, ok)
	assert.Equal(t, "JPY", cur.Code)
	assert.True(t, back.LastConvertedAt.Equal(now.Add(2*time.Hour)))
	assert.True(t, back.CreatedAt.Equal(now))
}
