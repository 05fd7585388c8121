package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// DepreciationMethod names how depreciation is spread over the useful life.
type DepreciationMethod string

const (
	StraightLine DepreciationMethod = "STRAIGHT_LINE"
)

// DepreciationPeriod is one period of a depreciation schedule. Index is 1-based.
type DepreciationPeriod struct {
	Index        int             `json:"index"`
	Label        string          `json:"label,omitempty"`
	PeriodDate   time.Time       `json:"periodDate"`
	OpeningValue decimal.Decimal `json:"openingValue"`
	Depreciation decimal.Decimal `json:"depreciation"`
	Percentage   decimal.Decimal `json:"percentage"`
	ClosingValue decimal.Decimal `json:"closingValue"`
}

// DepreciationCalculation is a saved snapshot of a depreciation schedule for an asset.
type DepreciationCalculation struct {
	CalculationID          string               `json:"calculationID"`
	AssetID                string               `json:"assetID"`
	CategoryID             string               `json:"categoryID"`
	Method                 DepreciationMethod   `json:"method"`
	AnnualRate             decimal.Decimal      `json:"annualRate"`
	RateOverridden         bool                 `json:"rateOverridden"`
	ResidualValue          decimal.Decimal      `json:"residualValue"`
	UsefulLifeMonths       int                  `json:"usefulLifeMonths"`
	AssetValue             decimal.Decimal      `json:"assetValue"`
	CreditTotal            decimal.Decimal      `json:"creditTotal"`
	TaxCreditCalculationID string               `json:"taxCreditCalculationID,omitempty"`
	DepreciableBase        decimal.Decimal      `json:"depreciableBase"`
	Granularity            Granularity          `json:"granularity"`
	StartDate              time.Time            `json:"startDate"`
	Periods                []DepreciationPeriod `json:"periods"`
	TotalDepreciation      decimal.Decimal      `json:"totalDepreciation"`
	BookValue              decimal.Decimal      `json:"bookValue"`
	Superseded             bool                 `json:"superseded"`
	AuditFields
}
