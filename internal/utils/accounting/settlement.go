package accounting

import (
	"fmt"
	"time"

	"github.com/SscSPs/fixed_asset_ledger/internal/apperrors"
	"github.com/SscSPs/fixed_asset_ledger/internal/core/domain"
	"github.com/shopspring/decimal"
)

// SettlementInput holds an asset, its saved calculations and the sale terms.
type SettlementInput struct {
	Asset                    domain.Asset
	SaleDate                 time.Time
	SaleValue                *decimal.Decimal
	CreditCalculations       []domain.TaxCreditCalculation
	DepreciationCalculations []domain.DepreciationCalculation
	Strategy                 AccrualStrategy // nil selects ProratedAccrual
}

// CalculateSettlement reconstructs the asset's accumulated credits and
// depreciation as of the sale date and compares the residual book value with
// the sale price.
//
// Only calculations that started on or before the sale date count, and only
// for the periods elapsed by then. Superseded depreciation calculations are
// ignored. When nothing applies the accumulated value is zero and a warning is
// attached to the settlement.
func CalculateSettlement(in SettlementInput) (*domain.Settlement, error) {
	if in.SaleDate.IsZero() {
		return nil, apperrors.NewValidationError("saleDate", "is required")
	}
	if in.SaleValue == nil {
		return nil, apperrors.NewValidationError("saleValue", "is required")
	}
	if in.SaleValue.IsNegative() {
		return nil, apperrors.NewValidationError("saleValue", "must not be negative")
	}
	strategy := in.Strategy
	if strategy == nil {
		strategy = ProratedAccrual{}
	}

	settlement := &domain.Settlement{
		OriginalValue: in.Asset.TotalValue,
		SaleValue:     *in.SaleValue,
		Strategy:      strategy.Name(),
	}

	credits, creditCalcs := accumulateCredits(in.Asset.AssetID, in.CreditCalculations, in.SaleDate)
	if creditCalcs == 0 {
		settlement.Warnings = append(settlement.Warnings, inconsistentState("no tax credit calculation dated on or before the sale date; accumulated credits set to zero"))
	}
	settlement.CreditsByTax = credits
	settlement.TotalCredits = credits.Total()

	depreciation, depCalcs := accumulateDepreciation(in.Asset.AssetID, in.DepreciationCalculations, in.SaleDate, strategy)
	if depCalcs == 0 {
		settlement.Warnings = append(settlement.Warnings, inconsistentState("no depreciation calculation dated on or before the sale date; accumulated depreciation set to zero"))
	}
	settlement.TotalDepreciation = depreciation

	settlement.ResidualBookValue = settlement.OriginalValue.Sub(settlement.TotalCredits).Sub(settlement.TotalDepreciation)
	settlement.GainOrLoss = settlement.SaleValue.Sub(settlement.ResidualBookValue)
	settlement.PercentVariance = decimal.Zero
	if !settlement.ResidualBookValue.IsZero() {
		settlement.PercentVariance = settlement.GainOrLoss.Div(settlement.ResidualBookValue).Mul(hundred).Round(moneyPlaces)
	}
	return settlement, nil
}

func accumulateCredits(assetID string, calcs []domain.TaxCreditCalculation, saleDate time.Time) (domain.CreditsByTax, int) {
	credits := domain.CreditsByTax{}
	applied := 0
	for _, calc := range calcs {
		if !belongsTo(calc.AssetID, assetID) || !startedOnOrBefore(calc.StartDate, saleDate) {
			continue
		}
		applied++
		elapsed := ElapsedPeriods(calc.StartDate, saleDate, calc.Granularity)
		for _, schedule := range calc.Schedules {
			last := elapsed
			if last > len(schedule.Periods)-1 {
				last = len(schedule.Periods) - 1
			}
			for i := 0; i <= last; i++ {
				credits = credits.Add(schedule.TaxType, schedule.Periods[i].Recognized.Abs())
			}
		}
	}
	return credits, applied
}

func accumulateDepreciation(assetID string, calcs []domain.DepreciationCalculation, saleDate time.Time, strategy AccrualStrategy) (decimal.Decimal, int) {
	total := decimal.Zero
	applied := 0
	for _, calc := range calcs {
		if calc.Superseded || !belongsTo(calc.AssetID, assetID) || !startedOnOrBefore(calc.StartDate, saleDate) {
			continue
		}
		applied++
		total = total.Add(strategy.Accumulated(calc, saleDate))
	}
	return total, applied
}

// belongsTo accepts calculations without an asset reference (ad-hoc CLI input).
func belongsTo(calcAssetID, assetID string) bool {
	return calcAssetID == "" || assetID == "" || calcAssetID == assetID
}

func inconsistentState(msg string) domain.SettlementWarning {
	return domain.SettlementWarning{
		Code:    domain.WarningInconsistentState,
		Message: fmt.Sprintf("%s: %s", apperrors.ErrInconsistentState.Error(), msg),
	}
}
