package services

import (
	"context"

	"github.com/SscSPs/fixed_asset_ledger/internal/core/domain"
	"github.com/SscSPs/fixed_asset_ledger/internal/dto"
)

// TaxCreditSvcFacade computes and stores tax credit schedules
type TaxCreditSvcFacade interface {
	// PreviewTaxCredits computes schedules without persisting anything.
	PreviewTaxCredits(ctx context.Context, req dto.TaxCreditRequest) (*domain.TaxCreditCalculation, error)

	CreateTaxCreditCalculation(ctx context.Context, assetID string, req dto.TaxCreditRequest, userID string) (*domain.TaxCreditCalculation, error)
	GetTaxCreditCalculation(ctx context.Context, calculationID string) (*domain.TaxCreditCalculation, error)
	ListTaxCreditCalculations(ctx context.Context, assetID string) ([]domain.TaxCreditCalculation, error)

	// UpdateTaxCreditCalculation recomputes and replaces a saved calculation.
	UpdateTaxCreditCalculation(ctx context.Context, calculationID string, req dto.TaxCreditRequest, userID string) (*domain.TaxCreditCalculation, error)

	DeleteTaxCreditCalculation(ctx context.Context, calculationID string, userID string) error
}

// DepreciationSvcFacade computes and stores depreciation schedules
type DepreciationSvcFacade interface {
	PreviewDepreciation(ctx context.Context, req dto.DepreciationRequest) (*domain.DepreciationCalculation, error)

	// CreateDepreciationCalculation saves a new schedule that supersedes the asset's earlier ones.
	CreateDepreciationCalculation(ctx context.Context, assetID string, req dto.DepreciationRequest, userID string) (*domain.DepreciationCalculation, error)

	GetDepreciationCalculation(ctx context.Context, calculationID string) (*domain.DepreciationCalculation, error)
	ListDepreciationCalculations(ctx context.Context, assetID string) ([]domain.DepreciationCalculation, error)
	DeleteDepreciationCalculation(ctx context.Context, calculationID string, userID string) error
}

// DisposalSvcFacade settles sales and write-offs
type DisposalSvcFacade interface {
	// PreviewDisposal computes the settlement without recording the disposal.
	PreviewDisposal(ctx context.Context, assetID string, req dto.DisposalRequest) (*domain.Settlement, error)

	RegisterDisposal(ctx context.Context, assetID string, req dto.DisposalRequest, userID string) (*domain.DisposalRecord, error)
	GetDisposal(ctx context.Context, disposalID string) (*domain.DisposalRecord, error)
	ListDisposals(ctx context.Context, assetID string) ([]domain.DisposalRecord, error)

	// DeleteDisposal removes the record and reverts the asset to its previous status.
	DeleteDisposal(ctx context.Context, disposalID string, userID string) error
}

// ReportingService defines operations for aggregate reports
type ReportingService interface {
	// Dashboard summarizes the register; year filters the monthly aggregates (0 = all).
	Dashboard(ctx context.Context, year int) (*domain.DashboardSummary, error)
}
