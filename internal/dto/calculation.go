package dto

import (
	"github.com/SscSPs/fixed_asset_ledger/internal/core/domain"
	"github.com/shopspring/decimal"
)

// TaxParamsRequest holds the rate and installment count chosen for one tax.
type TaxParamsRequest struct {
	Rate         decimal.Decimal `json:"rate"`
	Installments int             `json:"installments"`
}

// TaxCreditRequest describes a tax credit computation. For an asset-bound
// calculation BaseValue and StartDate default to the asset's value and
// acquisition date; a preview needs both.
type TaxCreditRequest struct {
	BaseValue   *decimal.Decimal            `json:"baseValue"`
	Granularity string                      `json:"granularity" binding:"required,oneof=ANNUAL MONTHLY"`
	StartDate   string                      `json:"startDate" binding:"omitempty,datetime=2006-01-02"`
	Taxes       map[string]TaxParamsRequest `json:"taxes" binding:"required,min=1"`
}

// TaxParams converts the request map into calculator parameters.
func (r TaxCreditRequest) TaxParams() map[domain.TaxType]domain.TaxCreditParams {
	params := make(map[domain.TaxType]domain.TaxCreditParams, len(r.Taxes))
	for k, v := range r.Taxes {
		params[domain.TaxType(k)] = domain.TaxCreditParams{Rate: v.Rate, Installments: v.Installments}
	}
	return params
}

// DepreciationRequest describes a depreciation computation. AnnualRate and
// UsefulLifeMonths override the category defaults when set. The credit total is
// taken from TaxCreditCalculationID when given, else from CreditTotal.
// AssetValue is only used by previews.
type DepreciationRequest struct {
	CategoryID             string           `json:"categoryID"`
	AnnualRate             *decimal.Decimal `json:"annualRate"`
	UsefulLifeMonths       *int             `json:"usefulLifeMonths" binding:"omitempty,min=1,max=1200"`
	ResidualValue          *decimal.Decimal `json:"residualValue"`
	TaxCreditCalculationID string           `json:"taxCreditCalculationID"`
	CreditTotal            *decimal.Decimal `json:"creditTotal"`
	AssetValue             *decimal.Decimal `json:"assetValue"`
	Granularity            string           `json:"granularity" binding:"required,oneof=ANNUAL MONTHLY"`
	Method                 string           `json:"method" binding:"omitempty,oneof=STRAIGHT_LINE"`
	StartDate              string           `json:"startDate" binding:"omitempty,datetime=2006-01-02"`
}

// DisposalRequest registers the sale or write-off of an asset.
// SaleValue defaults to zero for write-offs.
type DisposalRequest struct {
	Kind          string           `json:"kind" binding:"required,oneof=SALE WRITE_OFF"`
	InvoiceNumber string           `json:"invoiceNumber" binding:"max=64"`
	SaleValue     *decimal.Decimal `json:"saleValue"`
	SaleDate      string           `json:"saleDate" binding:"required,datetime=2006-01-02"`
}

// StartMaintenanceRequest opens a maintenance record on an asset.
type StartMaintenanceRequest struct {
	Description string           `json:"description" binding:"required"`
	Cost        *decimal.Decimal `json:"cost"`
	StartedAt   string           `json:"startedAt" binding:"omitempty,datetime=2006-01-02"`
}

// CompleteMaintenanceRequest closes an open maintenance record.
type CompleteMaintenanceRequest struct {
	Cost        *decimal.Decimal `json:"cost"`
	CompletedAt string           `json:"completedAt" binding:"omitempty,datetime=2006-01-02"`
}

// ListTaxCreditCalculationsResponse wraps an asset's tax credit calculations.
type ListTaxCreditCalculationsResponse struct {
	Calculations []domain.TaxCreditCalculation `json:"calculations"`
}

// ListDepreciationCalculationsResponse wraps an asset's depreciation calculations.
type ListDepreciationCalculationsResponse struct {
	Calculations []domain.DepreciationCalculation `json:"calculations"`
}

// ListDisposalsResponse wraps disposal records.
type ListDisposalsResponse struct {
	Disposals []domain.DisposalRecord `json:"disposals"`
}

// ListMaintenanceResponse wraps maintenance records.
type ListMaintenanceResponse struct {
	Records []domain.MaintenanceRecord `json:"records"`
}
