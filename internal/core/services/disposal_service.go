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

type disposalService struct {
	BaseService
	assetRepo        portsrepo.AssetReader
	taxCreditRepo    portsrepo.TaxCreditReader
	depreciationRepo portsrepo.DepreciationReader
	disposalRepo     portsrepo.DisposalRepositoryFacade
	strategy         accounting.AccrualStrategy
}

// NewDisposalService creates the disposal service. A nil strategy selects
// prorated accrual.
func NewDisposalService(repos portsrepo.RepositoryProvider, strategy accounting.AccrualStrategy, opts ...Option) portssvc.DisposalSvcFacade {
	if strategy == nil {
		strategy = accounting.ProratedAccrual{}
	}
	svc := &disposalService{
		assetRepo:        repos.AssetRepo,
		taxCreditRepo:    repos.TaxCreditRepo,
		depreciationRepo: repos.DepreciationRepo,
		disposalRepo:     repos.DisposalRepo,
		strategy:         strategy,
	}
	svc.apply(opts)
	return svc
}

var _ portssvc.DisposalSvcFacade = (*disposalService)(nil)

func (s *disposalService) PreviewDisposal(ctx context.Context, assetID string, req dto.DisposalRequest) (*domain.Settlement, error) {
	asset, err := s.loadAsset(ctx, s.assetRepo, assetID)
	if err != nil {
		return nil, err
	}
	_, settlement, err := s.settle(ctx, asset, req)
	if err != nil {
		return nil, err
	}
	return settlement, nil
}

func (s *disposalService) RegisterDisposal(ctx context.Context, assetID string, req dto.DisposalRequest, userID string) (*domain.DisposalRecord, error) {
	asset, err := s.loadWritableAsset(ctx, s.assetRepo, assetID)
	if err != nil {
		return nil, err
	}
	// Open maintenance must be completed first so its restore cannot reopen a disposed asset.
	if asset.Status == domain.AssetUnderMaintenance {
		return nil, fmt.Errorf("asset %s is under maintenance: %w", assetID, apperrors.ErrConflict)
	}
	if _, err := s.disposalRepo.FindDisposalByAsset(ctx, assetID); err == nil {
		return nil, fmt.Errorf("asset %s already has a disposal: %w", assetID, apperrors.ErrConflict)
	} else if !errors.Is(err, apperrors.ErrNotFound) {
		s.LogError(ctx, err, "Failed to check existing disposal", slog.String("asset_id", assetID))
		return nil, fmt.Errorf("failed to check existing disposal: %w", err)
	}

	saleDate, settlement, err := s.settle(ctx, asset, req)
	if err != nil {
		return nil, err
	}

	now := s.Now()
	record := domain.DisposalRecord{
		DisposalID:     uuid.NewString(),
		AssetID:        assetID,
		Kind:           domain.DisposalKind(req.Kind),
		InvoiceNumber:  req.InvoiceNumber,
		SaleValue:      settlement.SaleValue,
		SaleDate:       saleDate,
		RegisteredAt:   now,
		PreviousStatus: asset.Status,
		Settlement:     *settlement,
		AuditFields:    newAudit(userID, now),
	}
	if err := s.disposalRepo.SaveDisposal(ctx, record); err != nil {
		s.logRepoError(ctx, err, "Failed to save disposal", slog.String("asset_id", assetID))
		if errors.Is(err, apperrors.ErrDuplicate) {
			return nil, fmt.Errorf("asset %s already has a disposal: %w", assetID, apperrors.ErrConflict)
		}
		return nil, fmt.Errorf("failed to save disposal: %w", err)
	}

	s.LogInfo(ctx, "Disposal registered",
		slog.String("asset_id", assetID),
		slog.String("disposal_id", record.DisposalID),
		slog.String("kind", string(record.Kind)),
		slog.String("gain_or_loss", settlement.GainOrLoss.String()),
		slog.String("strategy", string(settlement.Strategy)))
	return &record, nil
}

func (s *disposalService) GetDisposal(ctx context.Context, disposalID string) (*domain.DisposalRecord, error) {
	record, err := s.disposalRepo.FindDisposalByID(ctx, disposalID)
	if err != nil {
		s.logRepoError(ctx, err, "Failed to find disposal", slog.String("disposal_id", disposalID))
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, fmt.Errorf("disposal not found: %w", err)
		}
		return nil, fmt.Errorf("failed to load disposal: %w", err)
	}
	return record, nil
}

func (s *disposalService) ListDisposals(ctx context.Context, assetID string) ([]domain.DisposalRecord, error) {
	if _, err := s.loadAsset(ctx, s.assetRepo, assetID); err != nil {
		return nil, err
	}
	record, err := s.disposalRepo.FindDisposalByAsset(ctx, assetID)
	if errors.Is(err, apperrors.ErrNotFound) {
		return []domain.DisposalRecord{}, nil
	}
	if err != nil {
		s.LogError(ctx, err, "Failed to find disposal by asset", slog.String("asset_id", assetID))
		return nil, fmt.Errorf("failed to list disposals: %w", err)
	}
	return []domain.DisposalRecord{*record}, nil
}

func (s *disposalService) DeleteDisposal(ctx context.Context, disposalID string, userID string) error {
	record, err := s.GetDisposal(ctx, disposalID)
	if err != nil {
		return err
	}
	if err := s.disposalRepo.DeleteDisposal(ctx, disposalID, userID, s.Now()); err != nil {
		s.logRepoError(ctx, err, "Failed to delete disposal", slog.String("disposal_id", disposalID))
		return fmt.Errorf("failed to delete disposal: %w", err)
	}
	s.LogInfo(ctx, "Disposal deleted",
		slog.String("disposal_id", disposalID),
		slog.String("asset_id", record.AssetID),
		slog.String("restored_status", string(record.PreviousStatus)))
	return nil
}

// settle loads the asset's saved calculations and reconciles them at the sale date.
func (s *disposalService) settle(ctx context.Context, asset *domain.Asset, req dto.DisposalRequest) (saleDate time.Time, settlement *domain.Settlement, err error) {
	start := time.Now()
	defer func() { s.observe(metrics.KindSettlement, 0, err, start) }()

	if saleDate, err = dto.ParseDate("saleDate", req.SaleDate); err != nil {
		return time.Time{}, nil, err
	}
	if saleDate.Before(asset.AcquisitionDate) {
		return time.Time{}, nil, apperrors.NewValidationError("saleDate", "must not precede the acquisition date")
	}
	saleValue := req.SaleValue
	if saleValue == nil && domain.DisposalKind(req.Kind) == domain.DisposalWriteOff {
		zero := decimal.Zero
		saleValue = &zero
	}

	credits, err := s.taxCreditRepo.ListTaxCreditCalculationsByAsset(ctx, asset.AssetID)
	if err != nil {
		s.LogError(ctx, err, "Failed to list tax credit calculations", slog.String("asset_id", asset.AssetID))
		return time.Time{}, nil, fmt.Errorf("failed to list tax credit calculations: %w", err)
	}
	deps, err := s.depreciationRepo.ListDepreciationCalculationsByAsset(ctx, asset.AssetID)
	if err != nil {
		s.LogError(ctx, err, "Failed to list depreciation calculations", slog.String("asset_id", asset.AssetID))
		return time.Time{}, nil, fmt.Errorf("failed to list depreciation calculations: %w", err)
	}

	settlement, err = accounting.CalculateSettlement(accounting.SettlementInput{
		Asset:                    *asset,
		SaleDate:                 saleDate,
		SaleValue:                saleValue,
		CreditCalculations:       credits,
		DepreciationCalculations: deps,
		Strategy:                 s.strategy,
	})
	if err != nil {
		return time.Time{}, nil, err
	}
	for _, w := range settlement.Warnings {
		s.LogWarn(ctx, "Settlement warning",
			slog.String("asset_id", asset.AssetID),
			slog.String("code", string(w.Code)),
			slog.String("message", w.Message))
		if s.Observer != nil {
			s.Observer.ObserveSettlementWarning(string(w.Code))
		}
	}
	return saleDate, settlement, nil
}
