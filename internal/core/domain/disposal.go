package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// DisposalKind distinguishes a sale from a plain write-off.
type DisposalKind string

const (
	DisposalSale     DisposalKind = "SALE"
	DisposalWriteOff DisposalKind = "WRITE_OFF"
)

// AccrualStrategyName identifies how accumulated depreciation is reconstructed at sale date.
type AccrualStrategyName string

const (
	// AccrualProrated counts only the schedule periods elapsed up to the sale date.
	AccrualProrated AccrualStrategyName = "prorated"
	// AccrualFullTotal counts the whole saved depreciation total once it started before the sale.
	AccrualFullTotal AccrualStrategyName = "full_total"
)

// WarningCode classifies non-fatal settlement findings.
type WarningCode string

const (
	WarningInconsistentState WarningCode = "INCONSISTENT_STATE"
)

// SettlementWarning is a non-fatal issue found while reconstructing accumulated values.
type SettlementWarning struct {
	Code    WarningCode `json:"code"`
	Message string      `json:"message"`
}

// CreditsByTax holds accumulated credits per tax type.
type CreditsByTax struct {
	IPI    decimal.Decimal `json:"ipi"`
	ICMS   decimal.Decimal `json:"icms"`
	PIS    decimal.Decimal `json:"pis"`
	COFINS decimal.Decimal `json:"cofins"`
}

// Add returns a copy with amount added to the given tax.
func (c CreditsByTax) Add(t TaxType, amount decimal.Decimal) CreditsByTax {
	switch t {
	case IPI:
		c.IPI = c.IPI.Add(amount)
	case ICMS:
		c.ICMS = c.ICMS.Add(amount)
	case PIS:
		c.PIS = c.PIS.Add(amount)
	case COFINS:
		c.COFINS = c.COFINS.Add(amount)
	}
	return c
}

// Total sums all tax types.
func (c CreditsByTax) Total() decimal.Decimal {
	return c.IPI.Add(c.ICMS).Add(c.PIS).Add(c.COFINS)
}

// Settlement is the point-in-time reconciliation of an asset at disposal.
// It is stored verbatim inside the DisposalRecord and never recomputed.
type Settlement struct {
	OriginalValue     decimal.Decimal     `json:"originalValue"`
	CreditsByTax      CreditsByTax        `json:"creditsByTax"`
	TotalCredits      decimal.Decimal     `json:"totalCredits"`
	TotalDepreciation decimal.Decimal     `json:"totalDepreciation"`
	ResidualBookValue decimal.Decimal     `json:"residualBookValue"`
	SaleValue         decimal.Decimal     `json:"saleValue"`
	GainOrLoss        decimal.Decimal     `json:"gainOrLoss"`
	PercentVariance   decimal.Decimal     `json:"percentVariance"`
	Strategy          AccrualStrategyName `json:"strategy"`
	Warnings          []SettlementWarning `json:"warnings,omitempty"`
}

// DisposalRecord records the sale or write-off of an asset.
type DisposalRecord struct {
	DisposalID     string          `json:"disposalID"`
	AssetID        string          `json:"assetID"`
	Kind           DisposalKind    `json:"kind"`
	InvoiceNumber  string          `json:"invoiceNumber"`
	SaleValue      decimal.Decimal `json:"saleValue"`
	SaleDate       time.Time       `json:"saleDate"`
	RegisteredAt   time.Time       `json:"registeredAt"`
	PreviousStatus AssetStatus     `json:"previousStatus"`
	Settlement     Settlement      `json:"settlement"`
	AuditFields
}
