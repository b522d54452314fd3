package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Asset is the row stored in the assets table.
type Asset struct {
	AssetID              string          `json:"assetID"` // Primary Key (UUID)
	OriginCurrencyCode   string          `json:"originCurrencyCode"`
	TargetCurrencyCode   string          `json:"targetCurrencyCode"`
	OriginAmount         decimal.Decimal `json:"originAmount"`
	TargetAmount         decimal.Decimal `json:"targetAmount"`         // Raw, unrounded
	PreviousTargetAmount decimal.Decimal `json:"previousTargetAmount"` // Raw, unrounded
	Trend                string          `json:"trend"`
	ShowInMenubar        bool            `json:"showInMenubar"`
	LastConvertedAt      *time.Time      `json:"lastConvertedAt"` // NULL until the first conversion
	Timestamps
}

// Timestamps holds the bookkeeping columns shared by tables.
type Timestamps struct {
	CreatedAt  time.Time `json:"createdAt"`
	LastUpdate time.Time `json:"lastUpdate"`
}
