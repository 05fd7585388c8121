package memory

import (
	"context"
	"fmt"
	"time"

	"github.com/SscSPs/fixed_asset_ledger/internal/apperrors"
	"github.com/SscSPs/fixed_asset_ledger/internal/core/domain"
)

func (s *Store) FindDisposalByID(_ context.Context, disposalID string) (*domain.DisposalRecord, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	e, ok := s.disposals[disposalID]
	if !ok {
		return nil, apperrors.ErrNotFound
	}
	d := cloneDisposal(e.value)
	return &d, nil
}

func (s *Store) FindDisposalByAsset(_ context.Context, assetID string) (*domain.DisposalRecord, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, e := range s.disposals {
		if e.value.AssetID == assetID {
			d := cloneDisposal(e.value)
			return &d, nil
		}
	}
	return nil, apperrors.ErrNotFound
}

func (s *Store) ListDisposals(_ context.Context) ([]domain.DisposalRecord, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return sortedValues(s.disposals, nil, cloneDisposal), nil
}

func (s *Store) SaveDisposal(_ context.Context, disposal domain.DisposalRecord) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, e := range s.disposals {
		if e.value.AssetID == disposal.AssetID {
			return fmt.Errorf("%w: asset %s already has a disposal", apperrors.ErrDuplicate, disposal.AssetID)
		}
	}
	if a, ok := s.assets[disposal.AssetID]; ok && a.value.Status == domain.AssetUnderMaintenance {
		return fmt.Errorf("asset %s is under maintenance: %w", disposal.AssetID, apperrors.ErrConflict)
	}
	if err := s.setAssetStatus(disposal.AssetID, domain.AssetWrittenOff, disposal.CreatedBy, disposal.CreatedAt); err != nil {
		return err
	}
	s.disposals[disposal.DisposalID] = entry[domain.DisposalRecord]{seq: s.next(), value: cloneDisposal(disposal)}
	return nil
}

func (s *Store) DeleteDisposal(_ context.Context, disposalID string, userID string, now time.Time) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	e, ok := s.disposals[disposalID]
	if !ok {
		return apperrors.ErrNotFound
	}
	previous := e.value.PreviousStatus
	if !previous.IsValid() || previous == domain.AssetWrittenOff {
		previous = domain.AssetActive
	}
	if err := s.setAssetStatus(e.value.AssetID, previous, userID, now); err != nil {
		return err
	}
	delete(s.disposals, disposalID)
	return nil
}
