package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/SscSPs/fixed_asset_ledger/internal/apperrors"
	"github.com/SscSPs/fixed_asset_ledger/internal/core/domain"
	portsrepo "github.com/SscSPs/fixed_asset_ledger/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/fixed_asset_ledger/internal/core/ports/services"
	"github.com/SscSPs/fixed_asset_ledger/internal/dto"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type maintenanceService struct {
	BaseService
	assetRepo       portsrepo.AssetReader
	maintenanceRepo portsrepo.MaintenanceRepositoryFacade
}

// NewMaintenanceService creates the maintenance service.
func NewMaintenanceService(assetRepo portsrepo.AssetReader, maintenanceRepo portsrepo.MaintenanceRepositoryFacade, opts ...Option) portssvc.MaintenanceSvcFacade {
	svc := &maintenanceService{assetRepo: assetRepo, maintenanceRepo: maintenanceRepo}
	svc.apply(opts)
	return svc
}

var _ portssvc.MaintenanceSvcFacade = (*maintenanceService)(nil)

func (s *maintenanceService) StartMaintenance(ctx context.Context, assetID string, req dto.StartMaintenanceRequest, userID string) (*domain.MaintenanceRecord, error) {
	asset, err := s.loadWritableAsset(ctx, s.assetRepo, assetID)
	if err != nil {
		return nil, err
	}
	if asset.Status == domain.AssetUnderMaintenance {
		return nil, fmt.Errorf("asset %s is already under maintenance: %w", assetID, apperrors.ErrConflict)
	}
	cost := decimal.Zero
	if req.Cost != nil {
		if req.Cost.IsNegative() {
			return nil, apperrors.NewValidationError("cost", "must not be negative")
		}
		cost = *req.Cost
	}
	now := s.Now()
	startedAt, err := dto.ParseOptionalDate("startedAt", req.StartedAt, now)
	if err != nil {
		return nil, err
	}

	record := domain.MaintenanceRecord{
		MaintenanceID:  uuid.NewString(),
		AssetID:        assetID,
		Description:    req.Description,
		Cost:           cost,
		StartedAt:      startedAt,
		PreviousStatus: asset.Status,
		AuditFields:    newAudit(userID, now),
	}
	if err := s.maintenanceRepo.StartMaintenance(ctx, record); err != nil {
		s.logRepoError(ctx, err, "Failed to start maintenance", slog.String("asset_id", assetID))
		return nil, fmt.Errorf("failed to start maintenance: %w", err)
	}
	s.LogInfo(ctx, "Maintenance started", slog.String("asset_id", assetID), slog.String("maintenance_id", record.MaintenanceID))
	return &record, nil
}

func (s *maintenanceService) CompleteMaintenance(ctx context.Context, assetID, maintenanceID string, req dto.CompleteMaintenanceRequest, userID string) (*domain.MaintenanceRecord, error) {
	record, err := s.maintenanceRepo.FindMaintenanceByID(ctx, maintenanceID)
	if err != nil {
		s.logRepoError(ctx, err, "Failed to find maintenance record", slog.String("maintenance_id", maintenanceID))
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, fmt.Errorf("maintenance record not found: %w", err)
		}
		return nil, fmt.Errorf("failed to load maintenance record: %w", err)
	}
	if record.AssetID != assetID {
		return nil, fmt.Errorf("maintenance record not found: %w", apperrors.ErrNotFound)
	}
	if !record.IsOpen() {
		return nil, fmt.Errorf("maintenance %s is already completed: %w", maintenanceID, apperrors.ErrConflict)
	}
	if _, err := s.loadWritableAsset(ctx, s.assetRepo, assetID); err != nil {
		return nil, err
	}

	now := s.Now()
	completedAt, err := dto.ParseOptionalDate("completedAt", req.CompletedAt, now)
	if err != nil {
		return nil, err
	}
	if completedAt.Before(record.StartedAt) {
		return nil, apperrors.NewValidationError("completedAt", "must not precede the start date")
	}
	if req.Cost != nil {
		if req.Cost.IsNegative() {
			return nil, apperrors.NewValidationError("cost", "must not be negative")
		}
		record.Cost = *req.Cost
	}
	record.CompletedAt = &completedAt
	record.LastUpdatedAt = now
	record.LastUpdatedBy = userID

	if err := s.maintenanceRepo.CompleteMaintenance(ctx, *record); err != nil {
		s.logRepoError(ctx, err, "Failed to complete maintenance", slog.String("maintenance_id", maintenanceID))
		return nil, fmt.Errorf("failed to complete maintenance: %w", err)
	}
	s.LogInfo(ctx, "Maintenance completed",
		slog.String("asset_id", assetID),
		slog.String("maintenance_id", maintenanceID),
		slog.String("restored_status", string(record.PreviousStatus)))
	return record, nil
}

func (s *maintenanceService) ListMaintenance(ctx context.Context, assetID string) ([]domain.MaintenanceRecord, error) {
	if _, err := s.loadAsset(ctx, s.assetRepo, assetID); err != nil {
		return nil, err
	}
	records, err := s.maintenanceRepo.ListMaintenanceByAsset(ctx, assetID)
	if err != nil {
		s.LogError(ctx, err, "Failed to list maintenance", slog.String("asset_id", assetID))
		return nil, fmt.Errorf("failed to list maintenance: %w", err)
	}
	if records == nil {
		return []domain.MaintenanceRecord{}, nil
	}
	return records, nil
}
