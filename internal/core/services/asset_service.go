package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/SscSPs/fixed_asset_ledger/internal/apperrors"
	"github.com/SscSPs/fixed_asset_ledger/internal/core/domain"
	portsrepo "github.com/SscSPs/fixed_asset_ledger/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/fixed_asset_ledger/internal/core/ports/services"
	"github.com/SscSPs/fixed_asset_ledger/internal/dto"
	"github.com/google/uuid"
)

type assetService struct {
	BaseService
	assetRepo        portsrepo.AssetRepositoryFacade
	categoryRepo     portsrepo.CategoryReader
	taxCreditRepo    portsrepo.TaxCreditReader
	depreciationRepo portsrepo.DepreciationReader
	maintenanceRepo  portsrepo.MaintenanceReader
	disposalRepo     portsrepo.DisposalReader
}

// NewAssetService creates the asset register service.
func NewAssetService(repos portsrepo.RepositoryProvider, opts ...Option) portssvc.AssetSvcFacade {
	svc := &assetService{
		assetRepo:        repos.AssetRepo,
		categoryRepo:     repos.CategoryRepo,
		taxCreditRepo:    repos.TaxCreditRepo,
		depreciationRepo: repos.DepreciationRepo,
		maintenanceRepo:  repos.MaintenanceRepo,
		disposalRepo:     repos.DisposalRepo,
	}
	svc.apply(opts)
	return svc
}

var _ portssvc.AssetSvcFacade = (*assetService)(nil)

func (s *assetService) CreateAsset(ctx context.Context, req dto.CreateAssetRequest, userID string) (*domain.Asset, error) {
	acquired, err := dto.ParseDate("acquisitionDate", req.AcquisitionDate)
	if err != nil {
		return nil, err
	}
	if req.TotalValue == nil || !req.TotalValue.IsPositive() {
		return nil, apperrors.NewValidationError("totalValue", "must be greater than 0")
	}
	taxes := req.Taxes.ToDomain()
	if err := validateTaxes(taxes); err != nil {
		return nil, err
	}
	if err := s.checkCategory(ctx, req.CategoryID); err != nil {
		return nil, err
	}

	code := strings.TrimSpace(req.Code)
	if _, err := s.assetRepo.FindAssetByCode(ctx, code); err == nil {
		return nil, fmt.Errorf("asset code %q: %w", code, apperrors.ErrDuplicate)
	} else if !errors.Is(err, apperrors.ErrNotFound) {
		s.LogError(ctx, err, "Failed to check asset code", slog.String("code", code))
		return nil, fmt.Errorf("failed to check asset code: %w", err)
	}

	asset := domain.Asset{
		AssetID:         uuid.NewString(),
		Code:            code,
		Name:            strings.TrimSpace(req.Name),
		Description:     req.Description,
		AcquisitionDate: acquired,
		InvoiceNumber:   req.InvoiceNumber,
		TotalValue:      *req.TotalValue,
		Taxes:           taxes,
		CategoryID:      req.CategoryID,
		Sector:          req.Sector,
		Location:        req.Location,
		Status:          domain.AssetActive,
		AuditFields:     newAudit(userID, s.Now()),
	}
	if err := s.assetRepo.SaveAsset(ctx, asset); err != nil {
		s.logRepoError(ctx, err, "Failed to save asset", slog.String("code", code))
		return nil, fmt.Errorf("failed to create asset: %w", err)
	}

	s.LogInfo(ctx, "Asset registered", slog.String("asset_id", asset.AssetID), slog.String("code", code))
	return &asset, nil
}

func (s *assetService) GetAssetByID(ctx context.Context, assetID string) (*domain.Asset, error) {
	return s.loadAsset(ctx, s.assetRepo, assetID)
}

func (s *assetService) ListAssets(ctx context.Context, params dto.ListAssetsParams) ([]domain.Asset, error) {
	assets, err := s.assetRepo.ListAssets(ctx, params.ToFilter())
	if err != nil {
		s.LogError(ctx, err, "Failed to list assets", slog.Int("limit", params.Limit), slog.Int("offset", params.Offset))
		return nil, fmt.Errorf("failed to list assets: %w", err)
	}
	if assets == nil {
		return []domain.Asset{}, nil
	}
	s.LogDebug(ctx, "Assets listed", slog.Int("count", len(assets)))
	return assets, nil
}

func (s *assetService) UpdateAsset(ctx context.Context, assetID string, req dto.UpdateAssetRequest, userID string) (*domain.Asset, error) {
	asset, err := s.loadWritableAsset(ctx, s.assetRepo, assetID)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		name := strings.TrimSpace(*req.Name)
		if name == "" {
			return nil, apperrors.NewValidationError("name", "must not be empty")
		}
		asset.Name = name
	}
	if req.Description != nil {
		asset.Description = *req.Description
	}
	if req.InvoiceNumber != nil {
		asset.InvoiceNumber = *req.InvoiceNumber
	}
	if req.Taxes != nil {
		taxes := req.Taxes.ToDomain()
		if err := validateTaxes(taxes); err != nil {
			return nil, err
		}
		asset.Taxes = taxes
	}
	if req.CategoryID != nil && *req.CategoryID != asset.CategoryID {
		if err := s.checkCategory(ctx, *req.CategoryID); err != nil {
			return nil, err
		}
		asset.CategoryID = *req.CategoryID
	}
	if req.Sector != nil {
		asset.Sector = *req.Sector
	}
	if req.Location != nil {
		asset.Location = *req.Location
	}
	asset.LastUpdatedAt = s.Now()
	asset.LastUpdatedBy = userID

	if err := s.assetRepo.UpdateAsset(ctx, *asset); err != nil {
		s.logRepoError(ctx, err, "Failed to update asset", slog.String("asset_id", assetID))
		return nil, fmt.Errorf("failed to update asset: %w", err)
	}
	s.LogInfo(ctx, "Asset updated", slog.String("asset_id", assetID))
	return asset, nil
}

func (s *assetService) ReassessAsset(ctx context.Context, assetID string, req dto.ReassessAssetRequest, userID string) (*domain.Asset, error) {
	if req.MarketValue == nil || req.MarketValue.IsNegative() {
		return nil, apperrors.NewValidationError("marketValue", "must not be negative")
	}
	asset, err := s.loadWritableAsset(ctx, s.assetRepo, assetID)
	if err != nil {
		return nil, err
	}
	now := s.Now()
	reassessedAt, err := dto.ParseOptionalDate("reassessedAt", req.ReassessedAt, now)
	if err != nil {
		return nil, err
	}
	if reassessedAt.Before(asset.AcquisitionDate) {
		return nil, apperrors.NewValidationError("reassessedAt", "must not precede the acquisition date")
	}

	value := *req.MarketValue
	asset.MarketValue = &value
	asset.LastReassessedAt = &reassessedAt
	asset.LastUpdatedAt = now
	asset.LastUpdatedBy = userID

	if err := s.assetRepo.UpdateAsset(ctx, *asset); err != nil {
		s.logRepoError(ctx, err, "Failed to store reassessment", slog.String("asset_id", assetID))
		return nil, fmt.Errorf("failed to reassess asset: %w", err)
	}
	s.LogInfo(ctx, "Asset reassessed",
		slog.String("asset_id", assetID),
		slog.String("market_value", value.String()))
	return asset, nil
}

func (s *assetService) DeleteAsset(ctx context.Context, assetID string, userID string) error {
	if _, err := s.loadAsset(ctx, s.assetRepo, assetID); err != nil {
		return err
	}
	if err := s.ensureNoDependents(ctx, assetID); err != nil {
		return err
	}
	if err := s.assetRepo.DeleteAsset(ctx, assetID); err != nil {
		s.logRepoError(ctx, err, "Failed to delete asset", slog.String("asset_id", assetID))
		return fmt.Errorf("failed to delete asset: %w", err)
	}
	s.LogInfo(ctx, "Asset deleted", slog.String("asset_id", assetID), slog.String("user_id", userID))
	return nil
}

// ensureNoDependents rejects deletion of assets that calculations, maintenance
// or a disposal still refer to.
func (s *assetService) ensureNoDependents(ctx context.Context, assetID string) error {
	credits, err := s.taxCreditRepo.ListTaxCreditCalculationsByAsset(ctx, assetID)
	if err != nil {
		return fmt.Errorf("failed to check tax credit calculations: %w", err)
	}
	deps, err := s.depreciationRepo.ListDepreciationCalculationsByAsset(ctx, assetID)
	if err != nil {
		return fmt.Errorf("failed to check depreciation calculations: %w", err)
	}
	records, err := s.maintenanceRepo.ListMaintenanceByAsset(ctx, assetID)
	if err != nil {
		return fmt.Errorf("failed to check maintenance records: %w", err)
	}
	_, err = s.disposalRepo.FindDisposalByAsset(ctx, assetID)
	hasDisposal := err == nil
	if err != nil && !errors.Is(err, apperrors.ErrNotFound) {
		return fmt.Errorf("failed to check disposal: %w", err)
	}

	if len(credits) > 0 || len(deps) > 0 || len(records) > 0 || hasDisposal {
		s.LogWarn(ctx, "Refused to delete asset with dependents",
			slog.String("asset_id", assetID),
			slog.Int("tax_credit_calculations", len(credits)),
			slog.Int("depreciation_calculations", len(deps)),
			slog.Int("maintenance_records", len(records)),
			slog.Bool("disposed", hasDisposal))
		return fmt.Errorf("asset %s has calculations, maintenance or a disposal: %w", assetID, apperrors.ErrConflict)
	}
	return nil
}

func (s *assetService) checkCategory(ctx context.Context, categoryID string) error {
	category, err := s.categoryRepo.FindCategoryByID(ctx, categoryID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return apperrors.NewValidationError("categoryID", "unknown category")
		}
		s.LogError(ctx, err, "Failed to resolve category", slog.String("category_id", categoryID))
		return fmt.Errorf("failed to resolve category: %w", err)
	}
	if !category.IsActive {
		return apperrors.NewValidationError("categoryID", "category is inactive")
	}
	return nil
}

func validateTaxes(t domain.TaxComponents) error {
	if t.IPI.IsNegative() || t.PIS.IsNegative() || t.COFINS.IsNegative() || t.ICMS.IsNegative() {
		return apperrors.NewValidationError("taxes", "amounts must not be negative")
	}
	return nil
}
