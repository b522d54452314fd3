package mapping

import (
	"github.com/SscSPs/currency_bar/internal/core/domain"
	"github.com/SscSPs/currency_bar/internal/models"
)

// ToModelAsset converts a domain Asset to a model Asset
func ToModelAsset(d domain.Asset) models.Asset {
	m := models.Asset{
		AssetID:              d.ID,
		OriginCurrencyCode:   d.OriginCurrencyCode,
		TargetCurrencyCode:   d.TargetCurrencyCode,
		OriginAmount:         d.OriginAmount,
		TargetAmount:         d.TargetAmount.Raw(),
		PreviousTargetAmount: d.PreviousTargetAmount.Raw(),
		Trend:                string(d.Trend),
		ShowInMenubar:        d.ShowInMenubar,
		Timestamps:           ToModelTimestamps(d.Timestamps),
	}
	if !d.LastConvertedAt.IsZero() {
		t := d.LastConvertedAt
		m.LastConvertedAt = &t
	}
	return m
}

// ToDomainAsset converts a model Asset to a domain Asset
func ToDomainAsset(m models.Asset) domain.Asset {
	target := domain.Currency{Code: m.TargetCurrencyCode}
	d := domain.Asset{
		ID:                   m.AssetID,
		OriginCurrencyCode:   m.OriginCurrencyCode,
		TargetCurrencyCode:   m.TargetCurrencyCode,
		OriginAmount:         m.OriginAmount,
		TargetAmount:         domain.MoneyIn(m.TargetAmount, target),
		PreviousTargetAmount: domain.MoneyIn(m.PreviousTargetAmount, target),
		Trend:                domain.ParseTrend(m.Trend),
		ShowInMenubar:        m.ShowInMenubar,
		Timestamps:           ToDomainTimestamps(m.Timestamps),
	}
	if m.LastConvertedAt != nil {
		d.LastConvertedAt = *m.LastConvertedAt
	}
	return d
}

// ToDomainAssetSlice converts a slice of model Assets to a slice of domain Assets
func ToDomainAssetSlice(ms []models.Asset) []domain.Asset {
	ds := make([]domain.Asset, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainAsset(m)
	}
	return ds
}

// ToModelTimestamps converts domain Timestamps to model Timestamps
func ToModelTimestamps(d domain.Timestamps) models.Timestamps {
	return models.Timestamps{
		CreatedAt:  d.CreatedAt,
		LastUpdate: d.LastUpdate,
	}
}

// ToDomainTimestamps converts model Timestamps to domain Timestamps
func ToDomainTimestamps(m models.Timestamps) domain.Timestamps {
	return domain.Timestamps{
		CreatedAt:  m.CreatedAt,
		LastUpdate: m.LastUpdate,
	}
}
