package mapping

import (
	"database/sql"

	"github.com/SscSPs/fixed_asset_ledger/internal/core/domain"
	"github.com/SscSPs/fixed_asset_ledger/internal/models"
	"github.com/shopspring/decimal"
)

// ToModelAsset converts a domain Asset to a model Asset
func ToModelAsset(d domain.Asset) models.Asset {
	m := models.Asset{
		AssetID:         d.AssetID,
		Code:            d.Code,
		Name:            d.Name,
		Description:     d.Description,
		AcquisitionDate: d.AcquisitionDate,
		InvoiceNumber:   d.InvoiceNumber,
		TotalValue:      d.TotalValue,
		TaxIPI:          d.Taxes.IPI,
		TaxPIS:          d.Taxes.PIS,
		TaxCOFINS:       d.Taxes.COFINS,
		TaxICMS:         d.Taxes.ICMS,
		CategoryID:      d.CategoryID,
		Sector:          d.Sector,
		Location:        d.Location,
		Status:          string(d.Status),
		AuditFields:     ToModelAuditFields(d.AuditFields),
	}
	if d.MarketValue != nil {
		m.MarketValue = decimal.NullDecimal{Decimal: *d.MarketValue, Valid: true}
	}
	if d.LastReassessedAt != nil {
		m.LastReassessedAt = sql.NullTime{Time: *d.LastReassessedAt, Valid: true}
	}
	return m
}

// ToDomainAsset converts a model Asset to a domain Asset
func ToDomainAsset(m models.Asset) domain.Asset {
	d := domain.Asset{
		AssetID:         m.AssetID,
		Code:            m.Code,
		Name:            m.Name,
		Description:     m.Description,
		AcquisitionDate: m.AcquisitionDate.UTC(),
		InvoiceNumber:   m.InvoiceNumber,
		TotalValue:      m.TotalValue,
		Taxes: domain.TaxComponents{
			IPI:    m.TaxIPI,
			PIS:    m.TaxPIS,
			COFINS: m.TaxCOFINS,
			ICMS:   m.TaxICMS,
		},
		CategoryID:  m.CategoryID,
		Sector:      m.Sector,
		Location:    m.Location,
		Status:      domain.AssetStatus(m.Status),
		AuditFields: ToDomainAuditFields(m.AuditFields),
	}
	if m.MarketValue.Valid {
		v := m.MarketValue.Decimal
		d.MarketValue = &v
	}
	if m.LastReassessedAt.Valid {
		t := m.LastReassessedAt.Time.UTC()
		d.LastReassessedAt = &t
	}
	return d
}

// ToDomainCategory converts a model Category to a domain Category
func ToDomainCategory(m models.Category) domain.Category {
	return domain.Category{
		CategoryID:       m.CategoryID,
		Name:             m.Name,
		AnnualRate:       m.AnnualRate,
		UsefulLifeMonths: m.UsefulLifeMonths,
		IsActive:         m.IsActive,
		AuditFields:      ToDomainAuditFields(m.AuditFields),
	}
}

func ToDomainMaintenance(m models.MaintenanceRecord) domain.MaintenanceRecord {
	d := domain.MaintenanceRecord{
		MaintenanceID:  m.MaintenanceID,
		AssetID:        m.AssetID,
		Description:    m.Description,
		Cost:           m.Cost,
		StartedAt:      m.StartedAt.UTC(),
		PreviousStatus: domain.AssetStatus(m.PreviousStatus),
		AuditFields:    ToDomainAuditFields(m.AuditFields),
	}
	if m.CompletedAt.Valid {
		t := m.CompletedAt.Time.UTC()
		d.CompletedAt = &t
	}
	return d
}
