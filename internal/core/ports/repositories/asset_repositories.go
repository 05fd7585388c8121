package repositories

import (
	"context"
	"time"

	"github.com/SscSPs/fixed_asset_ledger/internal/core/domain"
)

// AssetReader defines read operations for asset data
type AssetReader interface {
	// FindAssetByID retrieves a specific asset by its unique identifier.
	FindAssetByID(ctx context.Context, assetID string) (*domain.Asset, error)

	// FindAssetByCode retrieves an asset by its patrimony code.
	FindAssetByCode(ctx context.Context, code string) (*domain.Asset, error)

	// ListAssets retrieves assets matching the filter, ordered by code.
	ListAssets(ctx context.Context, filter domain.AssetFilter) ([]domain.Asset, error)
}

// AssetWriter defines write operations for asset data
type AssetWriter interface {
	// SaveAsset persists a new asset. Returns apperrors.ErrDuplicate when the code is taken.
	SaveAsset(ctx context.Context, asset domain.Asset) error

	// UpdateAsset updates an existing asset's descriptive fields, market value and status.
	UpdateAsset(ctx context.Context, asset domain.Asset) error

	// UpdateAssetStatus changes only the lifecycle status.
	UpdateAssetStatus(ctx context.Context, assetID string, status domain.AssetStatus, userID string, now time.Time) error

	// DeleteAsset removes an asset.
	DeleteAsset(ctx context.Context, assetID string) error
}

// AssetRepositoryFacade combines all asset-related repository interfaces
type AssetRepositoryFacade interface {
	AssetReader
	AssetWriter
}
