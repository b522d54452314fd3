package domain

import (
	"fmt"
	"strings"
	"time"

	"github.com/SscSPs/currency_bar/internal/apperrors"
	"github.com/shopspring/decimal"
)

// Trend is the direction of the latest conversion compared to the one it replaced.
type Trend string

const (
	TrendUp   Trend = "up"
	TrendDown Trend = "down"
	TrendFlat Trend = "flat"
)

// ParseTrend converts a stored value back into a Trend. Unknown values map to flat.
func ParseTrend(s string) Trend {
	switch Trend(strings.ToLower(s)) {
	case TrendUp:
		return TrendUp
	case TrendDown:
		return TrendDown
	default:
		return TrendFlat
	}
}

// Indicator returns the glyph shown next to the amount in the menu bar.
func (t Trend) Indicator() string {
	switch t {
	case TrendUp:
		return "▲"
	case TrendDown:
		return "▼"
	default:
		return "●"
	}
}

// Color returns the display colour name for the trend.
func (t Trend) Color() string {
	switch t {
	case TrendUp:
		return "green"
	case TrendDown:
		return "red"
	default:
		return "yellow"
	}
}

// DetermineTrend compares raw decimals, not rounded money.
func DetermineTrend(current, next decimal.Decimal) Trend {
	switch next.Cmp(current) {
	case -1:
		return TrendDown
	case 1:
		return TrendUp
	default:
		return TrendFlat
	}
}

// Asset is a tracked conversion pair: an origin amount continuously converted into a target currency.
type Asset struct {
	ID                   string          `json:"id"`                   // Primary Key (UUID)
	OriginCurrencyCode   string          `json:"originCurrencyCode"`   // ISO 4217
	TargetCurrencyCode   string          `json:"targetCurrencyCode"`   // ISO 4217, differs from origin
	OriginAmount         decimal.Decimal `json:"originAmount"`         // Always > 0
	TargetAmount         Money           `json:"targetAmount"`         // Zero until the first conversion
	PreviousTargetAmount Money           `json:"previousTargetAmount"` // Value replaced by the latest conversion
	Trend                Trend           `json:"trend"`
	ShowInMenubar        bool            `json:"showInMenubar"`
	LastConvertedAt      time.Time       `json:"lastConvertedAt"` // Zero until the first conversion
	Timestamps
}

// NewAsset validates the conversion pair and returns an unconverted asset.
// Errors wrap apperrors.ErrValidation.
func NewAsset(id string, origin, target Currency, originAmount decimal.Decimal, showInMenubar bool, now time.Time) (*Asset, error) {
	if origin.Equal(target) {
		return nil, fmt.Errorf("%w: origin and target currency must differ (both %s)", apperrors.ErrValidation, origin.Code)
	}
	if !originAmount.IsPositive() {
		return nil, fmt.Errorf("%w: origin amount must be greater than zero", apperrors.ErrValidation)
	}
	return &Asset{
		ID:                   id,
		OriginCurrencyCode:   origin.Code,
		TargetCurrencyCode:   target.Code,
		OriginAmount:         originAmount,
		TargetAmount:         MoneyIn(decimal.Zero, target),
		PreviousTargetAmount: MoneyIn(decimal.Zero, target),
		Trend:                TrendFlat,
		ShowInMenubar:        showInMenubar,
		Timestamps: Timestamps{
			CreatedAt:  now,
			LastUpdate: now,
		},
	}, nil
}

// HasConversion reports whether the asset received at least one successful conversion.
func (a *Asset) HasConversion() bool {
	return !a.LastConvertedAt.IsZero()
}

// OriginMoney returns the origin amount tagged with the origin currency.
func (a *Asset) OriginMoney() Money {
	return MoneyIn(a.OriginAmount, Currency{Code: a.OriginCurrencyCode})
}

// ApplyConversion records a freshly converted target amount.
// The first conversion establishes the baseline: target and previous both take the
// new value and the trend is flat. Later conversions shift the current target into
// previous and derive the trend from the raw values.
func (a *Asset) ApplyConversion(converted decimal.Decimal, at time.Time) Trend {
	target := Currency{Code: a.TargetCurrencyCode}
	next := MoneyIn(converted, target)

	if !a.HasConversion() {
		a.TargetAmount = next
		a.PreviousTargetAmount = next
		a.Trend = TrendFlat
	} else {
		a.Trend = DetermineTrend(a.TargetAmount.Raw(), converted)
		a.PreviousTargetAmount = a.TargetAmount.In(target)
		a.TargetAmount = next
	}
	a.LastConvertedAt = at
	a.LastUpdate = at
	return a.Trend
}

// AssetFilter narrows asset listings. Results are ordered by LastUpdate, then ID.
// LastUpdate only moves forward, so a cursor never skips an asset, but an asset
// converted while a client pages can be listed a second time.
type AssetFilter struct {
	MenubarOnly     bool
	Limit           int       // 0 means no limit
	AfterLastUpdate time.Time // cursor: list entries strictly after (AfterLastUpdate, AfterID)
	AfterID         string
}

// HasCursor reports whether the filter continues a previous page.
func (f AssetFilter) HasCursor() bool {
	return f.AfterID != ""
}

// After reports whether a sorts strictly after the cursor position.
func (f AssetFilter) After(a Asset) bool {
	if !f.HasCursor() {
		return true
	}
	if a.LastUpdate.Equal(f.AfterLastUpdate) {
		return a.ID > f.AfterID
	}
	return a.LastUpdate.After(f.AfterLastUpdate)
}

// RefreshReport summarises one refresh tick.
type RefreshReport struct {
	Skipped   bool `json:"skipped"` // network unreachable
	Attempted int  `json:"attempted"`
	Updated   int  `json:"updated"`
	Failed    int  `json:"failed"`
}
