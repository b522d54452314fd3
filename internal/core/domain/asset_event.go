package domain

import "time"

// AssetEventType names what happened to an asset.
type AssetEventType string

const (
	AssetCreated AssetEventType = "asset.created"
	AssetUpdated AssetEventType = "asset.updated"
	AssetDeleted AssetEventType = "asset.deleted"
)

// AssetEvent is published whenever the store's view of an asset changes.
// Asset is nil for deletions.
type AssetEvent struct {
	Type    AssetEventType `json:"type"`
	AssetID string         `json:"assetID"`
	Asset   *Asset         `json:"asset,omitempty"`
	At      time.Time      `json:"at"`
}
