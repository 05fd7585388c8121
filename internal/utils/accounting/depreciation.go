package accounting

import (
	"fmt"
	"time"

	"github.com/SscSPs/fixed_asset_ledger/internal/apperrors"
	"github.com/SscSPs/fixed_asset_ledger/internal/core/domain"
	"github.com/shopspring/decimal"
)

// MaxUsefulLifeMonths bounds the length of a depreciation schedule.
const MaxUsefulLifeMonths = 1200

var (
	// ErrCategoryRequired is returned when no category rate (or override) is available.
	ErrCategoryRequired = apperrors.NewValidationError("category", "category required")
	// ErrInvalidBase is returned when asset value minus credits minus residual value is not positive.
	ErrInvalidBase = apperrors.NewValidationError("depreciableBase", "invalid base")
)

var twelve = decimal.NewFromInt(12)

// DepreciationInput holds the parameters of a depreciation schedule.
type DepreciationInput struct {
	AssetValue       decimal.Decimal
	CreditTotal      decimal.Decimal
	ResidualValue    decimal.Decimal
	AnnualRate       decimal.Decimal // category default or explicit override, in percent
	UsefulLifeMonths int
	Granularity      domain.Granularity
	Method           domain.DepreciationMethod
	StartDate        time.Time
}

// DepreciationResult is the output of CalculateDepreciation.
type DepreciationResult struct {
	Method            domain.DepreciationMethod   `json:"method"`
	DepreciableBase   decimal.Decimal             `json:"depreciableBase"`
	Periods           []domain.DepreciationPeriod `json:"periods"`
	TotalDepreciation decimal.Decimal             `json:"totalDepreciation"`
	BookValue         decimal.Decimal             `json:"bookValue"`
}

// CalculateDepreciation builds a straight-line depreciation schedule.
//
// Annual schedules spread the base evenly over ceil(months/12) years. Monthly
// schedules depreciate base × rate / 12 each month for the useful life. In both
// modes a period never takes more than the remaining value and the schedule
// stops as soon as the remaining value reaches zero.
func CalculateDepreciation(in DepreciationInput) (*DepreciationResult, error) {
	if in.Method == "" {
		in.Method = domain.StraightLine
	}
	if err := validateDepreciationInput(in); err != nil {
		return nil, err
	}

	base := in.AssetValue.Sub(in.CreditTotal).Sub(in.ResidualValue)
	if !base.IsPositive() {
		return nil, ErrInvalidBase
	}

	var periods []domain.DepreciationPeriod
	if in.Granularity == domain.Annual {
		periods = annualPeriods(base, in.UsefulLifeMonths, in.StartDate)
	} else {
		periods = monthlyPeriods(base, in.AnnualRate, in.UsefulLifeMonths, in.StartDate)
	}

	total := decimal.Zero
	for _, p := range periods {
		total = total.Add(p.Depreciation)
	}
	return &DepreciationResult{
		Method:            in.Method,
		DepreciableBase:   base,
		Periods:           periods,
		TotalDepreciation: total,
		BookValue:         base.Sub(total),
	}, nil
}

func annualPeriods(base decimal.Decimal, usefulLifeMonths int, start time.Time) []domain.DepreciationPeriod {
	years := (usefulLifeMonths + 11) / 12
	perYear := roundMoney(base.Div(decimal.NewFromInt(int64(years))))

	periods := make([]domain.DepreciationPeriod, 0, years)
	remaining := base
	for k := 1; k <= years && remaining.IsPositive(); k++ {
		dep := decimal.Min(perYear, remaining)
		if k == years {
			dep = remaining
		}
		periods = append(periods, newDepreciationPeriod(k, "", addMonths(start, 12*(k-1)), base, remaining, dep))
		remaining = remaining.Sub(dep)
	}
	return periods
}

func monthlyPeriods(base, annualRate decimal.Decimal, usefulLifeMonths int, start time.Time) []domain.DepreciationPeriod {
	exact := base.Mul(annualRate).Div(hundred).Div(twelve)
	perMonth := roundMoney(exact)
	// Only absorb the leftover in the last month when the rate is meant to
	// exhaust the base within the useful life; otherwise it is real book value.
	absorbLast := roundMoney(exact.Mul(decimal.NewFromInt(int64(usefulLifeMonths)))).GreaterThanOrEqual(base)

	periods := make([]domain.DepreciationPeriod, 0, usefulLifeMonths)
	remaining := base
	for k := 1; k <= usefulLifeMonths && remaining.IsPositive(); k++ {
		dep := decimal.Min(perMonth, remaining)
		if k == usefulLifeMonths && absorbLast {
			dep = remaining
		}
		date := addMonths(start, k-1)
		periods = append(periods, newDepreciationPeriod(k, PeriodLabel(date), date, base, remaining, dep))
		remaining = remaining.Sub(dep)
	}
	return periods
}

func newDepreciationPeriod(index int, label string, date time.Time, base, opening, dep decimal.Decimal) domain.DepreciationPeriod {
	closing := opening.Sub(dep)
	if closing.IsNegative() {
		closing = decimal.Zero
	}
	return domain.DepreciationPeriod{
		Index:        index,
		Label:        label,
		PeriodDate:   date,
		OpeningValue: opening,
		Depreciation: dep,
		Percentage:   dep.Div(base).Mul(hundred).Round(percentPlaces),
		ClosingValue: closing,
	}
}

func validateDepreciationInput(in DepreciationInput) error {
	if in.Method != domain.StraightLine {
		return apperrors.NewValidationError("method", fmt.Sprintf("unsupported depreciation method %q", in.Method))
	}
	if !in.Granularity.IsValid() {
		return apperrors.NewValidationError("granularity", fmt.Sprintf("unknown granularity %q", in.Granularity))
	}
	if in.StartDate.IsZero() {
		return apperrors.NewValidationError("startDate", "is required")
	}
	if in.AssetValue.IsNegative() {
		return apperrors.NewValidationError("assetValue", "must not be negative")
	}
	if in.CreditTotal.IsNegative() {
		return apperrors.NewValidationError("creditTotal", "must not be negative")
	}
	if in.ResidualValue.IsNegative() {
		return apperrors.NewValidationError("residualValue", "must not be negative")
	}
	if !in.AnnualRate.IsPositive() {
		return ErrCategoryRequired
	}
	if in.AnnualRate.GreaterThan(hundred) {
		return apperrors.NewValidationError("annualRate", "must not exceed 100")
	}
	if in.UsefulLifeMonths < 1 || in.UsefulLifeMonths > MaxUsefulLifeMonths {
		return apperrors.NewValidationError("usefulLifeMonths", fmt.Sprintf("must be between 1 and %d", MaxUsefulLifeMonths))
	}
	return nil
}
