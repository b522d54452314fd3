package services

import (
	"context"

	"github.com/SscSPs/currency_bar/internal/core/domain"
	"github.com/SscSPs/currency_bar/internal/dto"
)

// AssetReaderSvc defines read operations for asset data
type AssetReaderSvc interface {
	// GetAssetByID retrieves a specific asset by its unique identifier.
	GetAssetByID(ctx context.Context, assetID string) (*domain.Asset, error)

	// ListAssets retrieves assets ordered by last update.
	ListAssets(ctx context.Context, filter domain.AssetFilter) ([]domain.Asset, error)

	// ListMenubarAssets retrieves the assets flagged for the compact menu bar view.
	ListMenubarAssets(ctx context.Context) ([]domain.Asset, error)
}

// AssetWriterSvc defines write operations for asset data
type AssetWriterSvc interface {
	// CreateAsset validates and persists a new asset, then requests its first conversion.
	CreateAsset(ctx context.Context, req dto.CreateAssetRequest) (*domain.Asset, error)

	// DeleteAsset removes an asset and cancels any conversion still in flight for it.
	DeleteAsset(ctx context.Context, assetID string) error
}

// AssetSvcFacade combines all asset-related service interfaces
type AssetSvcFacade interface {
	AssetReaderSvc
	AssetWriterSvc
}
