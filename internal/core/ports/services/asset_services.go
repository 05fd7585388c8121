package services

import (
	"context"

	"github.com/SscSPs/fixed_asset_ledger/internal/core/domain"
	"github.com/SscSPs/fixed_asset_ledger/internal/dto"
)

// AssetReaderSvc defines read operations on the asset register
type AssetReaderSvc interface {
	GetAssetByID(ctx context.Context, assetID string) (*domain.Asset, error)
	ListAssets(ctx context.Context, params dto.ListAssetsParams) ([]domain.Asset, error)
}

// AssetWriterSvc defines write operations on the asset register
type AssetWriterSvc interface {
	CreateAsset(ctx context.Context, req dto.CreateAssetRequest, userID string) (*domain.Asset, error)
	UpdateAsset(ctx context.Context, assetID string, req dto.UpdateAssetRequest, userID string) (*domain.Asset, error)

	// ReassessAsset records a new market value; the acquisition value is untouched.
	ReassessAsset(ctx context.Context, assetID string, req dto.ReassessAssetRequest, userID string) (*domain.Asset, error)

	// DeleteAsset removes an asset that has no calculations, maintenance or disposal.
	DeleteAsset(ctx context.Context, assetID string, userID string) error
}

// AssetSvcFacade combines all asset service interfaces
type AssetSvcFacade interface {
	AssetReaderSvc
	AssetWriterSvc
}

// CategorySvcFacade manages depreciation categories
type CategorySvcFacade interface {
	CreateCategory(ctx context.Context, req dto.CreateCategoryRequest, userID string) (*domain.Category, error)

	// ResolveCategory looks a category up by id.
	ResolveCategory(ctx context.Context, categoryID string) (*domain.Category, error)

	ListCategories(ctx context.Context, includeInactive bool) ([]domain.Category, error)
	UpdateCategory(ctx context.Context, categoryID string, req dto.UpdateCategoryRequest, userID string) (*domain.Category, error)
	DeactivateCategory(ctx context.Context, categoryID string, userID string) error
}

// MaintenanceSvcFacade tracks maintenance interventions
type MaintenanceSvcFacade interface {
	StartMaintenance(ctx context.Context, assetID string, req dto.StartMaintenanceRequest, userID string) (*domain.MaintenanceRecord, error)
	CompleteMaintenance(ctx context.Context, assetID, maintenanceID string, req dto.CompleteMaintenanceRequest, userID string) (*domain.MaintenanceRecord, error)
	ListMaintenance(ctx context.Context, assetID string) ([]domain.MaintenanceRecord, error)
}
