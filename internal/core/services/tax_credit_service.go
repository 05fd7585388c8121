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
)

type taxCreditService struct {
	BaseService
	assetRepo     portsrepo.AssetReader
	taxCreditRepo portsrepo.TaxCreditRepositoryFacade
}

// NewTaxCreditService creates the tax credit service.
func NewTaxCreditService(assetRepo portsrepo.AssetReader, taxCreditRepo portsrepo.TaxCreditRepositoryFacade, opts ...Option) portssvc.TaxCreditSvcFacade {
	svc := &taxCreditService{assetRepo: assetRepo, taxCreditRepo: taxCreditRepo}
	svc.apply(opts)
	return svc
}

var _ portssvc.TaxCreditSvcFacade = (*taxCreditService)(nil)

func (s *taxCreditService) PreviewTaxCredits(ctx context.Context, req dto.TaxCreditRequest) (*domain.TaxCreditCalculation, error) {
	if req.BaseValue == nil {
		return nil, apperrors.NewValidationError("baseValue", "is required")
	}
	if req.StartDate == "" {
		return nil, apperrors.NewValidationError("startDate", "is required")
	}
	calc, err := s.compute(ctx, nil, req)
	if err != nil {
		return nil, err
	}
	return calc, nil
}

func (s *taxCreditService) CreateTaxCreditCalculation(ctx context.Context, assetID string, req dto.TaxCreditRequest, userID string) (*domain.TaxCreditCalculation, error) {
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

	if err := s.taxCreditRepo.SaveTaxCreditCalculation(ctx, *calc); err != nil {
		s.logRepoError(ctx, err, "Failed to save tax credit calculation", slog.String("asset_id", assetID))
		return nil, fmt.Errorf("failed to save tax credit calculation: %w", err)
	}
	s.LogInfo(ctx, "Tax credit calculation saved",
		slog.String("asset_id", assetID),
		slog.String("calculation_id", calc.CalculationID),
		slog.String("total_credit", calc.TotalCredit.String()))
	return calc, nil
}

func (s *taxCreditService) GetTaxCreditCalculation(ctx context.Context, calculationID string) (*domain.TaxCreditCalculation, error) {
	calc, err := s.taxCreditRepo.FindTaxCreditCalculationByID(ctx, calculationID)
	if err != nil {
		s.logRepoError(ctx, err, "Failed to find tax credit calculation", slog.String("calculation_id", calculationID))
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, fmt.Errorf("tax credit calculation not found: %w", err)
		}
		return nil, fmt.Errorf("failed to load tax credit calculation: %w", err)
	}
	return calc, nil
}

func (s *taxCreditService) ListTaxCreditCalculations(ctx context.Context, assetID string) ([]domain.TaxCreditCalculation, error) {
	if _, err := s.loadAsset(ctx, s.assetRepo, assetID); err != nil {
		return nil, err
	}
	calcs, err := s.taxCreditRepo.ListTaxCreditCalculationsByAsset(ctx, assetID)
	if err != nil {
		s.LogError(ctx, err, "Failed to list tax credit calculations", slog.String("asset_id", assetID))
		return nil, fmt.Errorf("failed to list tax credit calculations: %w", err)
	}
	if calcs == nil {
		return []domain.TaxCreditCalculation{}, nil
	}
	return calcs, nil
}

func (s *taxCreditService) UpdateTaxCreditCalculation(ctx context.Context, calculationID string, req dto.TaxCreditRequest, userID string) (*domain.TaxCreditCalculation, error) {
	existing, err := s.GetTaxCreditCalculation(ctx, calculationID)
	if err != nil {
		return nil, err
	}
	asset, err := s.loadWritableAsset(ctx, s.assetRepo, existing.AssetID)
	if err != nil {
		return nil, err
	}
	calc, err := s.compute(ctx, asset, req)
	if err != nil {
		return nil, err
	}
	calc.CalculationID = existing.CalculationID
	calc.AuditFields = existing.AuditFields
	calc.LastUpdatedAt = s.Now()
	calc.LastUpdatedBy = userID

	if err := s.taxCreditRepo.UpdateTaxCreditCalculation(ctx, *calc); err != nil {
		s.logRepoError(ctx, err, "Failed to update tax credit calculation", slog.String("calculation_id", calculationID))
		return nil, fmt.Errorf("failed to update tax credit calculation: %w", err)
	}
	s.LogInfo(ctx, "Tax credit calculation replaced", slog.String("calculation_id", calculationID))
	return calc, nil
}

func (s *taxCreditService) DeleteTaxCreditCalculation(ctx context.Context, calculationID string, userID string) error {
	calc, err := s.GetTaxCreditCalculation(ctx, calculationID)
	if err != nil {
		return err
	}
	if _, err := s.loadWritableAsset(ctx, s.assetRepo, calc.AssetID); err != nil {
		return err
	}
	if err := s.taxCreditRepo.DeleteTaxCreditCalculation(ctx, calculationID); err != nil {
		s.logRepoError(ctx, err, "Failed to delete tax credit calculation", slog.String("calculation_id", calculationID))
		return fmt.Errorf("failed to delete tax credit calculation: %w", err)
	}
	s.LogInfo(ctx, "Tax credit calculation deleted", slog.String("calculation_id", calculationID), slog.String("user_id", userID))
	return nil
}

// compute runs the calculator. With an asset, base value and start date
// default to the asset's acquisition value and date.
func (s *taxCreditService) compute(ctx context.Context, asset *domain.Asset, req dto.TaxCreditRequest) (calc *domain.TaxCreditCalculation, err error) {
	start := time.Now()
	periods := 0
	defer func() { s.observe(metrics.KindTaxCredit, periods, err, start) }()

	in := accounting.TaxCreditInput{
		Granularity: domain.Granularity(req.Granularity),
		Taxes:       req.TaxParams(),
	}
	var fallbackStart time.Time
	if asset != nil {
		in.BaseValue = asset.TotalValue
		fallbackStart = asset.AcquisitionDate
	}
	if req.BaseValue != nil {
		in.BaseValue = *req.BaseValue
	}
	if in.StartDate, err = dto.ParseOptionalDate("startDate", req.StartDate, fallbackStart); err != nil {
		return nil, err
	}

	result, err := accounting.CalculateTaxCredits(in)
	if err != nil {
		s.LogDebug(ctx, "Tax credit input rejected", slog.String("error", err.Error()))
		return nil, err
	}
	for _, sch := range result.Schedules {
		periods += len(sch.Periods)
	}

	calc = &domain.TaxCreditCalculation{
		BaseValue:   in.BaseValue,
		Granularity: in.Granularity,
		StartDate:   in.StartDate,
		Params:      in.Taxes,
		Schedules:   result.Schedules,
		TotalCredit: result.TotalCredit,
	}
	if asset != nil {
		calc.AssetID = asset.AssetID
	}
	return calc, nil
}
