package memory

import (
	"context"
	"fmt"
	"sort"

	"github.com/SscSPs/fixed_asset_ledger/internal/apperrors"
	"github.com/SscSPs/fixed_asset_ledger/internal/core/domain"
)

func (s *Store) FindMaintenanceByID(_ context.Context, maintenanceID string) (*domain.MaintenanceRecord, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	e, ok := s.maintenance[maintenanceID]
	if !ok {
		return nil, apperrors.ErrNotFound
	}
	m := cloneMaintenance(e.value)
	return &m, nil
}

// ListMaintenanceByAsset returns the asset's records, most recent start first.
func (s *Store) ListMaintenanceByAsset(_ context.Context, assetID string) ([]domain.MaintenanceRecord, error) {
	s.mu.RLock()
	records := sortedValues(s.maintenance, func(m domain.MaintenanceRecord) bool {
		return m.AssetID == assetID
	}, cloneMaintenance)
	s.mu.RUnlock()

	sort.SliceStable(records, func(i, j int) bool { return records[i].StartedAt.After(records[j].StartedAt) })
	return records, nil
}

func (s *Store) StartMaintenance(_ context.Context, record domain.MaintenanceRecord) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.maintenance[record.MaintenanceID]; ok {
		return fmt.Errorf("%w: maintenance %s already exists", apperrors.ErrDuplicate, record.MaintenanceID)
	}
	if err := s.setAssetStatus(record.AssetID, domain.AssetUnderMaintenance, record.CreatedBy, record.CreatedAt); err != nil {
		return err
	}
	s.maintenance[record.MaintenanceID] = entry[domain.MaintenanceRecord]{seq: s.next(), value: cloneMaintenance(record)}
	return nil
}

func (s *Store) CompleteMaintenance(_ context.Context, record domain.MaintenanceRecord) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	e, ok := s.maintenance[record.MaintenanceID]
	if !ok {
		return apperrors.ErrNotFound
	}
	if a, ok := s.assets[record.AssetID]; ok && a.value.Status == domain.AssetWrittenOff {
		return fmt.Errorf("asset %s is written off: %w", record.AssetID, apperrors.ErrConflict)
	}
	previous := record.PreviousStatus
	if !previous.IsValid() || previous == domain.AssetUnderMaintenance {
		previous = domain.AssetActive
	}
	if err := s.setAssetStatus(record.AssetID, previous, record.LastUpdatedBy, record.LastUpdatedAt); err != nil {
		return err
	}
	e.value = cloneMaintenance(record)
	s.maintenance[record.MaintenanceID] = e
	return nil
}
