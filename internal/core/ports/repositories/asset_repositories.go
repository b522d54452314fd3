package repositories

import (
	"context"

	"github.com/SscSPs/currency_bar/internal/core/domain"
)

// AssetReader defines read operations for asset data
type AssetReader interface {
	// FindAssetByID retrieves a single asset. Returns apperrors.ErrNotFound when absent.
	FindAssetByID(ctx context.Context, assetID string) (*domain.Asset, error)

	// ListAssets returns assets ordered by last update, then ID.
	ListAssets(ctx context.Context, filter domain.AssetFilter) ([]domain.Asset, error)
}

// AssetWriter defines write operations for asset data
type AssetWriter interface {
	// SaveAsset persists a new asset.
	SaveAsset(ctx context.Context, asset domain.Asset) error

	// UpdateAsset reads the current record, applies mutate and writes the result atomically.
	// If mutate returns an error nothing is written and the error is returned.
	// Returns apperrors.ErrNotFound when the asset no longer exists.
	UpdateAsset(ctx context.Context, assetID string, mutate func(*domain.Asset) error) (*domain.Asset, error)

	// DeleteAsset removes an asset. Returns apperrors.ErrNotFound when absent.
	DeleteAsset(ctx context.Context, assetID string) error
}

// AssetRepositoryFacade combines all asset-related repository interfaces
type AssetRepositoryFacade interface {
	AssetReader
	AssetWriter
}
