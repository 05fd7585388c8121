package models

import (
	"database/sql"
	"time"

	"github.com/shopspring/decimal"
)

// Asset is the row shape of the assets table.
// MarketValue and LastReassessedAt are NULL until the first reassessment.
type Asset struct {
	AssetID          string              `db:"asset_id"`
	Code             string              `db:"code"`
	Name             string              `db:"name"`
	Description      string              `db:"description"`
	AcquisitionDate  time.Time           `db:"acquisition_date"`
	InvoiceNumber    string              `db:"invoice_number"`
	TotalValue       decimal.Decimal     `db:"total_value"`
	TaxIPI           decimal.Decimal     `db:"tax_ipi"`
	TaxPIS           decimal.Decimal     `db:"tax_pis"`
	TaxCOFINS        decimal.Decimal     `db:"tax_cofins"`
	TaxICMS          decimal.Decimal     `db:"tax_icms"`
	MarketValue      decimal.NullDecimal `db:"market_value"`
	LastReassessedAt sql.NullTime        `db:"last_reassessed_at"`
	CategoryID       string              `db:"category_id"`
	Sector           string              `db:"sector"`
	Location         string              `db:"location"`
	Status           string              `db:"status"`
	AuditFields
}

// Category is the row shape of the asset_categories table.
type Category struct {
	CategoryID       string          `db:"category_id"`
	Name             string          `db:"name"`
	AnnualRate       decimal.Decimal `db:"annual_rate"`
	UsefulLifeMonths int             `db:"useful_life_months"`
	IsActive         bool            `db:"is_active"`
	AuditFields
}

// MaintenanceRecord is the row shape of the maintenance_records table.
type MaintenanceRecord struct {
	MaintenanceID  string          `db:"maintenance_id"`
	AssetID        string          `db:"asset_id"`
	Description    string          `db:"description"`
	Cost           decimal.Decimal `db:"cost"`
	StartedAt      time.Time       `db:"started_at"`
	CompletedAt    sql.NullTime    `db:"completed_at"`
	PreviousStatus string          `db:"previous_status"`
	AuditFields
}
