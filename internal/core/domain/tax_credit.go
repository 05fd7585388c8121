package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// TaxType identifies a recoverable acquisition tax.
type TaxType string

const (
	IPI    TaxType = "IPI"
	ICMS   TaxType = "ICMS"
	PIS    TaxType = "PIS"
	COFINS TaxType = "COFINS"
)

// TaxTypes lists every tax type in schedule output order.
var TaxTypes = []TaxType{IPI, ICMS, PIS, COFINS}

// IsValid reports whether t is a known tax type.
func (t TaxType) IsValid() bool {
	switch t {
	case IPI, ICMS, PIS, COFINS:
		return true
	}
	return false
}

// TaxCreditParams are the user-chosen parameters for one tax.
type TaxCreditParams struct {
	Rate         decimal.Decimal `json:"rate"` // percent of the base value
	Installments int             `json:"installments"`
}

// CreditPeriod is one amortization period of a tax credit.
// Recognized is negative: it is the credit taken in the period.
type CreditPeriod struct {
	Index          int             `json:"index"`
	Label          string          `json:"label,omitempty"`
	PeriodDate     time.Time       `json:"periodDate"`
	OpeningBalance decimal.Decimal `json:"openingBalance"`
	Recognized     decimal.Decimal `json:"recognized"`
	Percentage     decimal.Decimal `json:"percentage"`
	ClosingBalance decimal.Decimal `json:"closingBalance"`
}

// TaxCreditSchedule is the amortization schedule for a single tax.
type TaxCreditSchedule struct {
	TaxType      TaxType         `json:"taxType"`
	Rate         decimal.Decimal `json:"rate"`
	Installments int             `json:"installments"`
	TotalValue   decimal.Decimal `json:"totalValue"`
	Periods      []CreditPeriod  `json:"periods"`
}

// TaxCreditCalculation is a saved snapshot of a tax credit computation for an asset.
type TaxCreditCalculation struct {
	CalculationID string                      `json:"calculationID"`
	AssetID       string                      `json:"assetID"`
	BaseValue     decimal.Decimal             `json:"baseValue"`
	Granularity   Granularity                 `json:"granularity"`
	StartDate     time.Time                   `json:"startDate"`
	Params        map[TaxType]TaxCreditParams `json:"params"`
	Schedules     []TaxCreditSchedule         `json:"schedules"`
	TotalCredit   decimal.Decimal             `json:"totalCredit"`
	AuditFields
}

// ScheduleFor returns the schedule of the given tax, if any.
func (c TaxCreditCalculation) ScheduleFor(t TaxType) (TaxCreditSchedule, bool) {
	for _, s := range c.Schedules {
		if s.TaxType == t {
			return s, true
		}
	}
	return TaxCreditSchedule{}, false
}
