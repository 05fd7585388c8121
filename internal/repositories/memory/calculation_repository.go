package memory

import (
	"context"
	"fmt"

	"github.com/SscSPs/fixed_asset_ledger/internal/apperrors"
	"github.com/SscSPs/fixed_asset_ledger/internal/core/domain"
)

func (s *Store) FindTaxCreditCalculationByID(_ context.Context, calculationID string) (*domain.TaxCreditCalculation, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	e, ok := s.credits[calculationID]
	if !ok {
		return nil, apperrors.ErrNotFound
	}
	c := cloneTaxCredit(e.value)
	return &c, nil
}

func (s *Store) ListTaxCreditCalculationsByAsset(_ context.Context, assetID string) ([]domain.TaxCreditCalculation, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return sortedValues(s.credits, func(c domain.TaxCreditCalculation) bool {
		return c.AssetID == assetID
	}, cloneTaxCredit), nil
}

func (s *Store) ListTaxCreditCalculations(_ context.Context) ([]domain.TaxCreditCalculation, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return sortedValues(s.credits, nil, cloneTaxCredit), nil
}

func (s *Store) SaveTaxCreditCalculation(_ context.Context, calc domain.TaxCreditCalculation) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.credits[calc.CalculationID]; ok {
		return fmt.Errorf("%w: calculation %s already exists", apperrors.ErrDuplicate, calc.CalculationID)
	}
	s.credits[calc.CalculationID] = entry[domain.TaxCreditCalculation]{seq: s.next(), value: cloneTaxCredit(calc)}
	return nil
}

func (s *Store) UpdateTaxCreditCalculation(_ context.Context, calc domain.TaxCreditCalculation) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	e, ok := s.credits[calc.CalculationID]
	if !ok {
		return apperrors.ErrNotFound
	}
	e.value = cloneTaxCredit(calc)
	s.credits[calc.CalculationID] = e
	return nil
}

func (s *Store) DeleteTaxCreditCalculation(_ context.Context, calculationID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.credits[calculationID]; !ok {
		return apperrors.ErrNotFound
	}
	delete(s.credits, calculationID)
	return nil
}

func (s *Store) FindDepreciationCalculationByID(_ context.Context, calculationID string) (*domain.DepreciationCalculation, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	e, ok := s.depreciation[calculationID]
	if !ok {
		return nil, apperrors.ErrNotFound
	}
	c := cloneDepreciation(e.value)
	return &c, nil
}

func (s *Store) ListDepreciationCalculationsByAsset(_ context.Context, assetID string) ([]domain.DepreciationCalculation, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return sortedValues(s.depreciation, func(c domain.DepreciationCalculation) bool {
		return c.AssetID == assetID
	}, cloneDepreciation), nil
}

func (s *Store) ListDepreciationCalculations(_ context.Context) ([]domain.DepreciationCalculation, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return sortedValues(s.depreciation, nil, cloneDepreciation), nil
}

func (s *Store) SaveDepreciationCalculation(_ context.Context, calc domain.DepreciationCalculation) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.depreciation[calc.CalculationID]; ok {
		return fmt.Errorf("%w: calculation %s already exists", apperrors.ErrDuplicate, calc.CalculationID)
	}
	for id, e := range s.depreciation {
		if e.value.AssetID == calc.AssetID && !e.value.Superseded {
			e.value.Superseded = true
			s.depreciation[id] = e
		}
	}
	calc.Superseded = false
	s.depreciation[calc.CalculationID] = entry[domain.DepreciationCalculation]{seq: s.next(), value: cloneDepreciation(calc)}
	return nil
}

func (s *Store) DeleteDepreciationCalculation(_ context.Context, calculationID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	removed, ok := s.depreciation[calculationID]
	if !ok {
		return apperrors.ErrNotFound
	}
	delete(s.depreciation, calculationID)
	if removed.value.Superseded {
		return nil
	}

	var latestID string
	var latestSeq int64 = -1
	for id, e := range s.depreciation {
		if e.value.AssetID == removed.value.AssetID && e.seq > latestSeq {
			latestID, latestSeq = id, e.seq
		}
	}
	if latestID != "" {
		e := s.depreciation[latestID]
		e.value.Superseded = false
		s.depreciation[latestID] = e
	}
	return nil
}
