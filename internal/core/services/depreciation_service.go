package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/SscSPs/fixed_asset_ledger/internal/apperrors"
	"github.com/SscSPs/fixed_asset_ledger/internal/core/domain"
	portsrepo "github.com/SscSPs/fixed_asset_ledger/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/fixed_asset_ledger/internal/core/ports/services"
	"github.com/SscSPs/fixed_asset_ledger/internal/dto"
	"github.com/SscSPs/fixed_asset_ledger/internal/observability/metrics"
	"github.com/SscSPs/fixed_asset_ledger/internal/utils/accounting"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type depreciationService struct {
	BaseService
	assetRepo        portsrepo.AssetReader
	categoryRepo     portsrepo.CategoryReader
	taxCreditRepo    portsrepo.TaxCreditReader
	depreciationRepo portsrepo.DepreciationRepositoryFacade
}

// NewDepreciationService creates the depreciation service.
func NewDepreciationService(repos portsrepo.RepositoryProvider, opts ...Option) portssvc.DepreciationSvcFacade {
	svc := &depreciationService{
		assetRepo:        repos.AssetRepo,
		categoryRepo:     repos.CategoryRepo,
		taxCreditRepo:    repos.TaxCreditRepo,
		depreciationRepo: repos.DepreciationRepo,
	}
	svc.apply(opts)
	return svc
}

var _ portssvc.DepreciationSvcFacade = (*depreciationService)(nil)

func (s *depreciationService) PreviewDepreciation(ctx context.Context, req dto.DepreciationRequest) (*domain.DepreciationCalculation, error) {
	if req.AssetValue == nil {
		return nil, apperrors.NewValidationError("assetValue", "is required")
	}
	if req.StartDate == "" {
		return nil, apperrors.NewValidationError("startDate", "is required")
	}
	return s.compute(ctx, nil, req)
}

func (s *depreciationService) CreateDepreciationCalculation(ctx context.Context, assetID string, req dto.DepreciationRequest, userID string) (*domain.DepreciationCalculation, error) {
	asset, err := s.loadWritableAsset(ctx, s.assetRepo, assetID)
	if err != nil {
		return nil, err
	}
	calc, err := s.compute(ctx, asset, req)
	if err != nil {
		return nil, err
	}
	calc.CalculationID = uuid.NewString()
	calc.AuditFields = newAudit(userID, s.Now())

	if err := s.depreciationRepo.SaveDepreciationCalculation(ctx, *calc); err != nil {
		s.logRepoError(ctx, err, "Failed to save depreciation calculation", slog.String("asset_id", assetID))
		return nil, fmt.Errorf("failed to save depreciation calculation: %w", err)
	}
	s.LogInfo(ctx, "Depreciation calculation saved",
		slog.String("asset_id", assetID),
		slog.String("calculation_id", calc.CalculationID),
		slog.String("total_depreciation", calc.TotalDepreciation.String()))
	return calc, nil
}

func (s *depreciationService) GetDepreciationCalculation(ctx context.Context, calculationID string) (*domain.DepreciationCalculation, error) {
	calc, err := s.depreciationRepo.FindDepreciationCalculationByID(ctx, calculationID)
	if err != nil {
		s.logRepoError(ctx, err, "Failed to find depreciation calculation", slog.String("calculation_id", calculationID))
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, fmt.Errorf("depreciation calculation not found: %w", err)
		}
		return nil, fmt.Errorf("failed to load depreciation calculation: %w", err)
	}
	return calc, nil
}

func (s *depreciationService) ListDepreciationCalculations(ctx context.Context, assetID string) ([]domain.DepreciationCalculation, error) {
	if _, err := s.loadAsset(ctx, s.assetRepo, assetID); err != nil {
		return nil, err
	}
	calcs, err := s.depreciationRepo.ListDepreciationCalculationsByAsset(ctx, assetID)
	if err != nil {
		s.LogError(ctx, err, "Failed to list depreciation calculations", slog.String("asset_id", assetID))
		return nil, fmt.Errorf("failed to list depreciation calculations: %w", err)
	}
	if calcs == nil {
		return []domain.DepreciationCalculation{}, nil
	}
	return calcs, nil
}

func (s *depreciationService) DeleteDepreciationCalculation(ctx context.Context, calculationID string, userID string) error {
	calc, err := s.GetDepreciationCalculation(ctx, calculationID)
	if err != nil {
		return err
	}
	if _, err := s.loadWritableAsset(ctx, s.assetRepo, calc.AssetID); err != nil {
		return err
	}
	if err := s.depreciationRepo.DeleteDepreciationCalculation(ctx, calculationID); err != nil {
		s.logRepoError(ctx, err, "Failed to delete depreciation calculation", slog.String("calculation_id", calculationID))
		return fmt.Errorf("failed to delete depreciation calculation: %w", err)
	}
	s.LogInfo(ctx, "Depreciation calculation deleted", slog.String("calculation_id", calculationID), slog.String("user_id", userID))
	return nil
}

// compute resolves the category defaults, overrides and credit total, then runs
// the calculator. asset is nil for previews.
func (s *depreciationService) compute(ctx context.Context, asset *domain.Asset, req dto.DepreciationRequest) (calc *domain.DepreciationCalculation, err error) {
	start := time.Now()
	periods := 0
	defer func() { s.observe(metrics.KindDepreciation, periods, err, start) }()

	in := accounting.DepreciationInput{
		Granularity: domain.Granularity(req.Granularity),
		Method:      domain.DepreciationMethod(req.Method),
		CreditTotal: decimal.Zero,
	}
	calc = &domain.DepreciationCalculation{}

	categoryID := req.CategoryID
	var fallbackStart time.Time
	if asset != nil {
		in.AssetValue = asset.TotalValue
		fallbackStart = asset.AcquisitionDate
		calc.AssetID = asset.AssetID
		if categoryID == "" {
			categoryID = asset.CategoryID
		}
	} else {
		in.AssetValue = *req.AssetValue
	}
	if in.StartDate, err = dto.ParseOptionalDate("startDate", req.StartDate, fallbackStart); err != nil {
		return nil, err
	}

	if categoryID != "" {
		category, err := s.categoryRepo.FindCategoryByID(ctx, categoryID)
		if err != nil {
			if errors.Is(err, apperrors.ErrNotFound) {
				return nil, accounting.ErrCategoryRequired
			}
			s.LogError(ctx, err, "Failed to resolve category", slog.String("category_id", categoryID))
			return nil, fmt.Errorf("failed to resolve category: %w", err)
		}
		in.AnnualRate = category.AnnualRate
		in.UsefulLifeMonths = category.UsefulLifeMonths
		calc.CategoryID = category.CategoryID
	}
	if req.AnnualRate != nil {
		in.AnnualRate = *req.AnnualRate
		calc.RateOverridden = true
	}
	if req.UsefulLifeMonths != nil {
		in.UsefulLifeMonths = *req.UsefulLifeMonths
	}
	if req.ResidualValue != nil {
		in.ResidualValue = *req.ResidualValue
	}

	switch {
	case req.TaxCreditCalculationID != "":
		credit, err := s.taxCreditRepo.FindTaxCreditCalculationByID(ctx, req.TaxCreditCalculationID)
		if err != nil {
			if errors.Is(err, apperrors.ErrNotFound) {
				return nil, apperrors.NewValidationError("taxCreditCalculationID", "unknown tax credit calculation")
			}
			return nil, fmt.Errorf("failed to load tax credit calculation: %w", err)
		}
		if asset != nil && credit.AssetID != asset.AssetID {
			return nil, apperrors.NewValidationError("taxCreditCalculationID", "belongs to another asset")
		}
		in.CreditTotal = credit.TotalCredit
		calc.TaxCreditCalculationID = credit.CalculationID
	case req.CreditTotal != nil:
		in.CreditTotal = *req.CreditTotal
	}

	result, err := accounting.CalculateDepreciation(in)
	if err != nil {
		s.LogDebug(ctx, "Depreciation input rejected", slog.String("error", err.Error()))
		return nil, err
	}
	periods = len(result.Periods)

	calc.Method = result.Method
	calc.AnnualRate = in.AnnualRate
	calc.ResidualValue = in.ResidualValue
	calc.UsefulLifeMonths = in.UsefulLifeMonths
	calc.AssetValue = in.AssetValue
	calc.CreditTotal = in.CreditTotal
	calc.DepreciableBase = result.DepreciableBase
	calc.Granularity = in.Granularity
	calc.StartDate = in.StartDate
	calc.Periods = result.Periods
	calc.TotalDepreciation = result.TotalDepreciation
	calc.BookValue = result.BookValue
	return calc, nil
}
