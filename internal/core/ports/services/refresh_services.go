package services

import (
	"context"
	"time"

	"github.com/SscSPs/currency_bar/internal/core/domain"
	"github.com/shopspring/decimal"
)

// RateConverter converts an amount between two currencies using the live exchange rate.
type RateConverter interface {
	Convert(ctx context.Context, from, to string, amount decimal.Decimal) (decimal.Decimal, error)
}

// ReachabilityChecker reports whether the exchange-rate service can currently be reached.
type ReachabilityChecker interface {
	IsReachable(ctx context.Context) bool
}

// IntervalSetter changes how often assets are refreshed.
type IntervalSetter interface {
	SetInterval(d time.Duration) error
}

// RefreshSvc drives periodic and on-demand conversion of tracked assets.
type RefreshSvc interface {
	IntervalSetter

	// RefreshAll runs one refresh tick synchronously.
	RefreshAll(ctx context.Context) (domain.RefreshReport, error)

	// RefreshAssetAsync requests a conversion for one asset in the background,
	// superseding any request already in flight for it.
	RefreshAssetAsync(assetID string)

	// CancelAsset drops any in-flight conversion for the asset.
	CancelAsset(assetID string)

	// Connected reports the outcome of the most recent reachability probe.
	Connected() bool

	// Interval returns the current refresh interval.
	Interval() time.Duration
}
