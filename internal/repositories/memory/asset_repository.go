package memory

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/SscSPs/fixed_asset_ledger/internal/apperrors"
	"github.com/SscSPs/fixed_asset_ledger/internal/core/domain"
)

func (s *Store) FindAssetByID(_ context.Context, assetID string) (*domain.Asset, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	e, ok := s.assets[assetID]
	if !ok {
		return nil, apperrors.ErrNotFound
	}
	a := cloneAsset(e.value)
	return &a, nil
}

func (s *Store) FindAssetByCode(_ context.Context, code string) (*domain.Asset, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, e := range s.assets {
		if strings.EqualFold(e.value.Code, code) {
			a := cloneAsset(e.value)
			return &a, nil
		}
	}
	return nil, apperrors.ErrNotFound
}

// ListAssets returns matching assets ordered by code.
func (s *Store) ListAssets(_ context.Context, filter domain.AssetFilter) ([]domain.Asset, error) {
	s.mu.RLock()
	assets := sortedValues(s.assets, func(a domain.Asset) bool {
		if filter.Status != "" && a.Status != filter.Status {
			return false
		}
		return filter.CategoryID == "" || a.CategoryID == filter.CategoryID
	}, cloneAsset)
	s.mu.RUnlock()

	sort.SliceStable(assets, func(i, j int) bool { return assets[i].Code < assets[j].Code })

	if filter.Offset > 0 {
		if filter.Offset >= len(assets) {
			return []domain.Asset{}, nil
		}
		assets = assets[filter.Offset:]
	}
	if filter.Limit > 0 && filter.Limit < len(assets) {
		assets = assets[:filter.Limit]
	}
	return assets, nil
}

func (s *Store) SaveAsset(_ context.Context, asset domain.Asset) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.assets[asset.AssetID]; ok {
		return fmt.Errorf("%w: asset with ID %s already exists", apperrors.ErrDuplicate, asset.AssetID)
	}
	if s.codeTaken(asset.Code, asset.AssetID) {
		return fmt.Errorf("%w: asset with code %s already exists", apperrors.ErrDuplicate, asset.Code)
	}
	s.assets[asset.AssetID] = entry[domain.Asset]{seq: s.next(), value: cloneAsset(asset)}
	return nil
}

func (s *Store) UpdateAsset(_ context.Context, asset domain.Asset) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	e, ok := s.assets[asset.AssetID]
	if !ok {
		return apperrors.ErrNotFound
	}
	if s.codeTaken(asset.Code, asset.AssetID) {
		return fmt.Errorf("%w: asset with code %s already exists", apperrors.ErrDuplicate, asset.Code)
	}
	e.value = cloneAsset(asset)
	s.assets[asset.AssetID] = e
	return nil
}

func (s *Store) UpdateAssetStatus(_ context.Context, assetID string, status domain.AssetStatus, userID string, now time.Time) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.setAssetStatus(assetID, status, userID, now)
}

func (s *Store) DeleteAsset(_ context.Context, assetID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.assets[assetID]; !ok {
		return apperrors.ErrNotFound
	}
	delete(s.assets, assetID)
	return nil
}

// setAssetStatus must be called with the write lock held.
func (s *Store) setAssetStatus(assetID string, status domain.AssetStatus, userID string, now time.Time) error {
	e, ok := s.assets[assetID]
	if !ok {
		return fmt.Errorf("asset %s: %w", assetID, apperrors.ErrNotFound)
	}
	e.value.Status = status
	e.value.LastUpdatedAt = now
	e.value.LastUpdatedBy = userID
	s.assets[assetID] = e
	return nil
}

func (s *Store) codeTaken(code, exceptID string) bool {
	for id, e := range s.assets {
		if id != exceptID && strings.EqualFold(e.value.Code, code) {
			return true
		}
	}
	return false
}
