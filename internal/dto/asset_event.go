package dto

import (
	"time"

	"github.com/SscSPs/currency_bar/internal/core/domain"
	"golang.org/x/text/language"
)

// AssetEventResponse is the payload of one server-sent asset event.
type AssetEventResponse struct {
	Type    domain.AssetEventType `json:"type"`
	AssetID string                `json:"assetID"`
	Asset   *AssetResponse        `json:"asset,omitempty"`
	At      time.Time             `json:"at"`
}

// ToAssetEventResponse converts a domain.AssetEvent, formatting the asset for locale.
func ToAssetEventResponse(e domain.AssetEvent, locale language.Tag) AssetEventResponse {
	res := AssetEventResponse{Type: e.Type, AssetID: e.AssetID, At: e.At}
	if e.Asset != nil {
		a := ToAssetResponse(e.Asset, locale)
		res.Asset = &a
	}
	return res
}
