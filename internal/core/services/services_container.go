package services

import (
	portsrepo "github.com/SscSPs/fixed_asset_ledger/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/fixed_asset_ledger/internal/core/ports/services"
	"github.com/SscSPs/fixed_asset_ledger/internal/platform/config"
	"github.com/SscSPs/fixed_asset_ledger/internal/utils/accounting"
)

// NewServiceContainer creates a new service container with properly initialized dependencies
func NewServiceContainer(cfg *config.Config, repos portsrepo.RepositoryProvider, opts ...Option) (*portssvc.ServiceContainer, error) {
	strategy, err := accounting.AccrualStrategyByName(cfg.DepreciationAccrualStrategy)
	if err != nil {
		return nil, err
	}

	return &portssvc.ServiceContainer{
		Asset:        NewAssetService(repos, opts...),
		Category:     NewCategoryService(repos.CategoryRepo, opts...),
		Maintenance:  NewMaintenanceService(repos.AssetRepo, repos.MaintenanceRepo, opts...),
		TaxCredit:    NewTaxCreditService(repos.AssetRepo, repos.TaxCreditRepo, opts...),
		Depreciation: NewDepreciationService(repos, opts...),
		Disposal:     NewDisposalService(repos, strategy, opts...),
		Reporting:    NewReportingService(repos, opts...),
	}, nil
}

// Helper to check interface implementations at compile time
var (
	_ portssvc.AssetSvcFacade        = (*assetService)(nil)
	_ portssvc.CategorySvcFacade     = (*categoryService)(nil)
	_ portssvc.MaintenanceSvcFacade  = (*maintenanceService)(nil)
	_ portssvc.TaxCreditSvcFacade    = (*taxCreditService)(nil)
	_ portssvc.DepreciationSvcFacade = (*depreciationService)(nil)
	_ portssvc.DisposalSvcFacade     = (*disposalService)(nil)
	_ portssvc.ReportingService      = (*reportingService)(nil)
)
