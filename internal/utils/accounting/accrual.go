package accounting

import (
	"fmt"
	"time"

	"github.com/SscSPs/fixed_asset_ledger/internal/apperrors"
	"github.com/SscSPs/fixed_asset_ledger/internal/core/domain"
	"github.com/shopspring/decimal"
)

// AccrualStrategy decides how much of a saved depreciation calculation had
// accrued by a given sale date. The caller has already checked that the
// calculation started on or before that date.
type AccrualStrategy interface {
	Name() domain.AccrualStrategyName
	Accumulated(calc domain.DepreciationCalculation, saleDate time.Time) decimal.Decimal
}

// ProratedAccrual sums the schedule periods elapsed up to the sale date, using
// the same elapsed-period rule as tax credits: the period containing the sale
// date is included.
type ProratedAccrual struct{}

func (ProratedAccrual) Name() domain.AccrualStrategyName { return domain.AccrualProrated }

func (ProratedAccrual) Accumulated(calc domain.DepreciationCalculation, saleDate time.Time) decimal.Decimal {
	elapsed := ElapsedPeriods(calc.StartDate, saleDate, calc.Granularity)
	total := decimal.Zero
	for _, p := range calc.Periods {
		if p.Index > elapsed+1 {
			break
		}
		total = total.Add(p.Depreciation)
	}
	return total
}

// FullTotalAccrual treats the whole saved depreciation total as accumulated.
// This reproduces the legacy settlement behaviour and overstates depreciation
// when an asset is sold mid-schedule.
type FullTotalAccrual struct{}

func (FullTotalAccrual) Name() domain.AccrualStrategyName { return domain.AccrualFullTotal }

func (FullTotalAccrual) Accumulated(calc domain.DepreciationCalculation, _ time.Time) decimal.Decimal {
	return calc.TotalDepreciation
}

// AccrualStrategyByName resolves a configured strategy name. An empty name
// selects ProratedAccrual.
func AccrualStrategyByName(name string) (AccrualStrategy, error) {
	switch domain.AccrualStrategyName(name) {
	case "", domain.AccrualProrated:
		return ProratedAccrual{}, nil
	case domain.AccrualFullTotal:
		return FullTotalAccrual{}, nil
	}
	return nil, apperrors.NewValidationError("accrualStrategy", fmt.Sprintf("unknown strategy %q", name))
}
