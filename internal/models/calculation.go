package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// TaxCreditCalculation is the row shape of tax_credit_calculations.
// Params and Schedules hold JSONB documents.
type TaxCreditCalculation struct {
	CalculationID string          `db:"calculation_id"`
	AssetID       string          `db:"asset_id"`
	BaseValue     decimal.Decimal `db:"base_value"`
	Granularity   string          `db:"granularity"`
	StartDate     time.Time       `db:"start_date"`
	Params        []byte          `db:"params"`
	Schedules     []byte          `db:"schedules"`
	TotalCredit   decimal.Decimal `db:"total_credit"`
	AuditFields
}

// DepreciationCalculation is the row shape of depreciation_calculations.
// Periods holds a JSONB array.
type DepreciationCalculation struct {
	CalculationID          string          `db:"calculation_id"`
	AssetID                string          `db:"asset_id"`
	CategoryID             string          `db:"category_id"`
	Method                 string          `db:"method"`
	AnnualRate             decimal.Decimal `db:"annual_rate"`
	RateOverridden         bool            `db:"rate_overridden"`
	ResidualValue          decimal.Decimal `db:"residual_value"`
	UsefulLifeMonths       int             `db:"useful_life_months"`
	AssetValue             decimal.Decimal `db:"asset_value"`
	CreditTotal            decimal.Decimal `db:"credit_total"`
	TaxCreditCalculationID string          `db:"tax_credit_calculation_id"`
	DepreciableBase        decimal.Decimal `db:"depreciable_base"`
	Granularity            string          `db:"granularity"`
	StartDate              time.Time       `db:"start_date"`
	Periods                []byte          `db:"periods"`
	TotalDepreciation      decimal.Decimal `db:"total_depreciation"`
	BookValue              decimal.Decimal `db:"book_value"`
	Superseded             bool            `db:"superseded"`
	AuditFields
}

// DisposalRecord is the row shape of disposals. Settlement is a JSONB snapshot.
type DisposalRecord struct {
	DisposalID     string          `db:"disposal_id"`
	AssetID        string          `db:"asset_id"`
	Kind           string          `db:"kind"`
	InvoiceNumber  string          `db:"invoice_number"`
	SaleValue      decimal.Decimal `db:"sale_value"`
	SaleDate       time.Time       `db:"sale_date"`
	RegisteredAt   time.Time       `db:"registered_at"`
	PreviousStatus string          `db:"previous_status"`
	Settlement     []byte          `db:"settlement"`
	AuditFields
}
