package repositories

import (
	"context"

	"github.com/SscSPs/fixed_asset_ledger/internal/core/domain"
)

// TaxCreditReader defines read operations for saved tax credit calculations
type TaxCreditReader interface {
	FindTaxCreditCalculationByID(ctx context.Context, calculationID string) (*domain.TaxCreditCalculation, error)

	// ListTaxCreditCalculationsByAsset returns the asset's calculations, oldest first.
	ListTaxCreditCalculationsByAsset(ctx context.Context, assetID string) ([]domain.TaxCreditCalculation, error)

	// ListTaxCreditCalculations returns every saved calculation.
	ListTaxCreditCalculations(ctx context.Context) ([]domain.TaxCreditCalculation, error)
}

// TaxCreditWriter defines write operations for saved tax credit calculations
type TaxCreditWriter interface {
	SaveTaxCreditCalculation(ctx context.Context, calc domain.TaxCreditCalculation) error

	// UpdateTaxCreditCalculation replaces the stored calculation with the same id.
	UpdateTaxCreditCalculation(ctx context.Context, calc domain.TaxCreditCalculation) error

	DeleteTaxCreditCalculation(ctx context.Context, calculationID string) error
}

// TaxCreditRepositoryFacade combines all tax credit repository interfaces
type TaxCreditRepositoryFacade interface {
	TaxCreditReader
	TaxCreditWriter
}

// DepreciationReader defines read operations for saved depreciation calculations
type DepreciationReader interface {
	FindDepreciationCalculationByID(ctx context.Context, calculationID string) (*domain.DepreciationCalculation, error)

	// ListDepreciationCalculationsByAsset returns the asset's calculations, oldest first,
	// superseded ones included.
	ListDepreciationCalculationsByAsset(ctx context.Context, assetID string) ([]domain.DepreciationCalculation, error)

	ListDepreciationCalculations(ctx context.Context) ([]domain.DepreciationCalculation, error)
}

// DepreciationWriter defines write operations for saved depreciation calculations
type DepreciationWriter interface {
	// SaveDepreciationCalculation stores calc as the asset's current calculation and
	// marks every earlier calculation of the same asset superseded, atomically.
	SaveDepreciationCalculation(ctx context.Context, calc domain.DepreciationCalculation) error

	// DeleteDepreciationCalculation removes a calculation. When the current one is
	// removed, the most recent remaining calculation of the asset becomes current.
	DeleteDepreciationCalculation(ctx context.Context, calculationID string) error
}

// DepreciationRepositoryFacade combines all depreciation repository interfaces
type DepreciationRepositoryFacade interface {
	DepreciationReader
	DepreciationWriter
}
