package repositories

import (
	"context"

	"github.com/SscSPs/fixed_asset_ledger/internal/core/domain"
)

// MaintenanceReader defines read operations for maintenance records
type MaintenanceReader interface {
	FindMaintenanceByID(ctx context.Context, maintenanceID string) (*domain.MaintenanceRecord, error)
	ListMaintenanceByAsset(ctx context.Context, assetID string) ([]domain.MaintenanceRecord, error)
}

// MaintenanceWriter defines write operations for maintenance records
type MaintenanceWriter interface {
	// StartMaintenance saves the record and moves the asset to UNDER_MAINTENANCE atomically.
	StartMaintenance(ctx context.Context, record domain.MaintenanceRecord) error

	// CompleteMaintenance stores the completion and restores record.PreviousStatus on the asset atomically.
	CompleteMaintenance(ctx context.Context, record domain.MaintenanceRecord) error
}

// MaintenanceRepositoryFacade combines all maintenance repository interfaces
type MaintenanceRepositoryFacade interface {
	MaintenanceReader
	MaintenanceWriter
}
