package dto

import (
	"time"

	"github.com/SscSPs/currency_bar/internal/core/domain"
	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
)

// CreateAssetRequest defines the data needed to track a new conversion pair.
// Each side is given either as a country key (alpha-2, alpha-3 or numeric) or a currency code.
// The origin amount is given either as a decimal or as keypad digits in minor units.
type CreateAssetRequest struct {
	OriginCountry     string           `json:"originCountry" binding:"omitempty,countrykey"`
	OriginCurrency    string           `json:"originCurrency" binding:"required_without=OriginCountry,omitempty,len=3"`
	TargetCountry     string           `json:"targetCountry" binding:"omitempty,countrykey"`
	TargetCurrency    string           `json:"targetCurrency" binding:"required_without=TargetCountry,omitempty,len=3"`
	OriginAmount      *decimal.Decimal `json:"originAmount"`      // Optional when OriginAmountInput is set
	OriginAmountInput string           `json:"originAmountInput"` // Keypad digits, e.g. "12345" is 123.45
	ShowInMenubar     bool             `json:"showInMenubar"`
}

// AssetResponse defines the data returned for an asset.
type AssetResponse struct {
	ID                    string          `json:"id"`
	OriginCurrencyCode    string          `json:"originCurrencyCode"`
	TargetCurrencyCode    string          `json:"targetCurrencyCode"`
	OriginAmount          decimal.Decimal `json:"originAmount"`
	TargetAmount          decimal.Decimal `json:"targetAmount"`
	PreviousTargetAmount  decimal.Decimal `json:"previousTargetAmount"`
	FormattedOriginAmount string          `json:"formattedOriginAmount"`
	FormattedTargetAmount string          `json:"formattedTargetAmount"`
	Trend                 domain.Trend    `json:"trend"`
	TrendIndicator        string          `json:"trendIndicator"`
	TrendColor            string          `json:"trendColor"`
	ShowInMenubar         bool            `json:"showInMenubar"`
	Converted             bool            `json:"converted"`
	LastConvertedAt       *time.Time      `json:"lastConvertedAt,omitempty"`
	LastUpdate            time.Time       `json:"lastUpdate"`
	CreatedAt             time.Time       `json:"createdAt"`
}

// ListAssetsParams defines query parameters for listing assets.
type ListAssetsParams struct {
	Limit       int    `form:"limit,default=20" binding:"min=1,max=100"`
	NextToken   string `form:"nextToken"`
	MenubarOnly bool   `form:"menubarOnly"`
}

// ListAssetsResponse wraps a page of assets.
type ListAssetsResponse struct {
	Assets    []AssetResponse `json:"assets"`
	NextToken string          `json:"nextToken,omitempty"`
}

// ToAssetResponse converts a domain.Asset to AssetResponse DTO, formatting amounts for locale.
func ToAssetResponse(a *domain.Asset, locale language.Tag) AssetResponse {
	res := AssetResponse{
		ID:                    a.ID,
		OriginCurrencyCode:    a.OriginCurrencyCode,
		TargetCurrencyCode:    a.TargetCurrencyCode,
		OriginAmount:          a.OriginAmount,
		TargetAmount:          a.TargetAmount.Amount(),
		PreviousTargetAmount:  a.PreviousTargetAmount.Amount(),
		FormattedOriginAmount: FormatMoney(a.OriginMoney(), locale),
		FormattedTargetAmount: FormatMoney(a.TargetAmount.In(domain.Currency{Code: a.TargetCurrencyCode}), locale),
		Trend:                 a.Trend,
		TrendIndicator:        a.Trend.Indicator(),
		TrendColor:            a.Trend.Color(),
		ShowInMenubar:         a.ShowInMenubar,
		Converted:             a.HasConversion(),
		LastUpdate:            a.LastUpdate,
		CreatedAt:             a.CreatedAt,
	}
	if a.HasConversion() {
		t := a.LastConvertedAt
		res.LastConvertedAt = &t
	}
	return res
}

// ToListAssetResponse converts a slice of domain.Asset to a slice of AssetResponse DTOs
func ToListAssetResponse(assets []domain.Asset, locale language.Tag) []AssetResponse {
	res := make([]AssetResponse, len(assets))
	for i := range assets {
		res[i] = ToAssetResponse(&assets[i], locale)
	}
	return res
}

// FormatMoney renders m for display, falling back to the plain amount when formatting fails.
func FormatMoney(m domain.Money, locale language.Tag) string {
	s, err := domain.Format(m, locale)
	if err != nil {
		return m.String()
	}
	return s
}
