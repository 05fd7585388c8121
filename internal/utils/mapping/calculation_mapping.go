package mapping

import (
	"encoding/json"
	"fmt"

	"github.com/SscSPs/fixed_asset_ledger/internal/core/domain"
	"github.com/SscSPs/fixed_asset_ledger/internal/models"
)

// ToModelTaxCredit encodes params and schedules as JSONB documents.
func ToModelTaxCredit(d domain.TaxCreditCalculation) (models.TaxCreditCalculation, error) {
	params, err := json.Marshal(d.Params)
	if err != nil {
		return models.TaxCreditCalculation{}, fmt.Errorf("failed to encode tax credit params: %w", err)
	}
	schedules, err := json.Marshal(d.Schedules)
	if err != nil {
		return models.TaxCreditCalculation{}, fmt.Errorf("failed to encode tax credit schedules: %w", err)
	}
	return models.TaxCreditCalculation{
		CalculationID: d.CalculationID,
		AssetID:       d.AssetID,
		BaseValue:     d.BaseValue,
		Granularity:   string(d.Granularity),
		StartDate:     d.StartDate,
		Params:        params,
		Schedules:     schedules,
		TotalCredit:   d.TotalCredit,
		AuditFields:   ToModelAuditFields(d.AuditFields),
	}, nil
}

func ToDomainTaxCredit(m models.TaxCreditCalculation) (domain.TaxCreditCalculation, error) {
	d := domain.TaxCreditCalculation{
		CalculationID: m.CalculationID,
		AssetID:       m.AssetID,
		BaseValue:     m.BaseValue,
		Granularity:   domain.Granularity(m.Granularity),
		StartDate:     m.StartDate.UTC(),
		TotalCredit:   m.TotalCredit,
		AuditFields:   ToDomainAuditFields(m.AuditFields),
	}
	if err := json.Unmarshal(m.Params, &d.Params); err != nil {
		return d, fmt.Errorf("failed to decode params of calculation %s: %w", m.CalculationID, err)
	}
	if err := json.Unmarshal(m.Schedules, &d.Schedules); err != nil {
		return d, fmt.Errorf("failed to decode schedules of calculation %s: %w", m.CalculationID, err)
	}
	return d, nil
}

// ToModelDepreciation encodes the period schedule as a JSONB document.
func ToModelDepreciation(d domain.DepreciationCalculation) (models.DepreciationCalculation, error) {
	periods, err := json.Marshal(d.Periods)
	if err != nil {
		return models.DepreciationCalculation{}, fmt.Errorf("failed to encode depreciation periods: %w", err)
	}
	return models.DepreciationCalculation{
		CalculationID:          d.CalculationID,
		AssetID:                d.AssetID,
		CategoryID:             d.CategoryID,
		Method:                 string(d.Method),
		AnnualRate:             d.AnnualRate,
		RateOverridden:         d.RateOverridden,
		ResidualValue:          d.ResidualValue,
		UsefulLifeMonths:       d.UsefulLifeMonths,
		AssetValue:             d.AssetValue,
		CreditTotal:            d.CreditTotal,
		TaxCreditCalculationID: d.TaxCreditCalculationID,
		DepreciableBase:        d.DepreciableBase,
		Granularity:            string(d.Granularity),
		StartDate:              d.StartDate,
		Periods:                periods,
		TotalDepreciation:      d.TotalDepreciation,
		BookValue:              d.BookValue,
		Superseded:             d.Superseded,
		AuditFields:            ToModelAuditFields(d.AuditFields),
	}, nil
}

func ToDomainDepreciation(m models.DepreciationCalculation) (domain.DepreciationCalculation, error) {
	d := domain.DepreciationCalculation{
		CalculationID:          m.CalculationID,
		AssetID:                m.AssetID,
		CategoryID:             m.CategoryID,
		Method:                 domain.DepreciationMethod(m.Method),
		AnnualRate:             m.AnnualRate,
		RateOverridden:         m.RateOverridden,
		ResidualValue:          m.ResidualValue,
		UsefulLifeMonths:       m.UsefulLifeMonths,
		AssetValue:             m.AssetValue,
		CreditTotal:            m.CreditTotal,
		TaxCreditCalculationID: m.TaxCreditCalculationID,
		DepreciableBase:        m.DepreciableBase,
		Granularity:            domain.Granularity(m.Granularity),
		StartDate:              m.StartDate.UTC(),
		TotalDepreciation:      m.TotalDepreciation,
		BookValue:              m.BookValue,
		Superseded:             m.Superseded,
		AuditFields:            ToDomainAuditFields(m.AuditFields),
	}
	if err := json.Unmarshal(m.Periods, &d.Periods); err != nil {
		return d, fmt.Errorf("failed to decode periods of calculation %s: %w", m.CalculationID, err)
	}
	return d, nil
}

func ToModelDisposal(d domain.DisposalRecord) (models.DisposalRecord, error) {
	settlement, err := json.Marshal(d.Settlement)
	if err != nil {
		return models.DisposalRecord{}, fmt.Errorf("failed to encode settlement: %w", err)
	}
	return models.DisposalRecord{
		DisposalID:     d.DisposalID,
		AssetID:        d.AssetID,
		Kind:           string(d.Kind),
		InvoiceNumber:  d.InvoiceNumber,
		SaleValue:      d.SaleValue,
		SaleDate:       d.SaleDate,
		RegisteredAt:   d.RegisteredAt,
		PreviousStatus: string(d.PreviousStatus),
		Settlement:     settlement,
		AuditFields:    ToModelAuditFields(d.AuditFields),
	}, nil
}

// ToDomainDisposal decodes the settlement snapshot stored with the disposal.
func ToDomainDisposal(m models.DisposalRecord) (domain.DisposalRecord, error) {
	d := domain.DisposalRecord{
		DisposalID:     m.DisposalID,
		AssetID:        m.AssetID,
		Kind:           domain.DisposalKind(m.Kind),
		InvoiceNumber:  m.InvoiceNumber,
		SaleValue:      m.SaleValue,
		SaleDate:       m.SaleDate.UTC(),
		RegisteredAt:   m.RegisteredAt.UTC(),
		PreviousStatus: domain.AssetStatus(m.PreviousStatus),
		AuditFields:    ToDomainAuditFields(m.AuditFields),
	}
	if err := json.Unmarshal(m.Settlement, &d.Settlement); err != nil {
		return d, fmt.Errorf("failed to decode settlement of disposal %s: %w", m.DisposalID, err)
	}
	return d, nil
}
