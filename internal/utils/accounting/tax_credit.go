package accounting

import (
	"fmt"
	"time"

	"github.com/SscSPs/fixed_asset_ledger/internal/apperrors"
	"github.com/SscSPs/fixed_asset_ledger/internal/core/domain"
	"github.com/shopspring/decimal"
)

// MaxInstallments bounds the number of periods a tax credit can be spread over.
const MaxInstallments = 120

// ErrInvalidInstallments is returned when an installment count is outside 1..MaxInstallments.
var ErrInvalidInstallments = apperrors.NewValidationError("installments", fmt.Sprintf("must be between 1 and %d", MaxInstallments))

// TaxCreditInput holds everything needed to build tax credit schedules.
type TaxCreditInput struct {
	BaseValue   decimal.Decimal
	Granularity domain.Granularity
	StartDate   time.Time
	Taxes       map[domain.TaxType]domain.TaxCreditParams
}

// TaxCreditResult is the output of CalculateTaxCredits.
type TaxCreditResult struct {
	Schedules   []domain.TaxCreditSchedule `json:"schedules"`
	TotalCredit decimal.Decimal            `json:"totalCredit"`
}

// CalculateTaxCredits builds one equal-installment schedule per tax with a
// positive value (base × rate / 100). Taxes with a zero rate are left out.
// The final period recognizes whatever balance remains, so the schedule always
// sums to the nominal tax value.
func CalculateTaxCredits(in TaxCreditInput) (*TaxCreditResult, error) {
	if err := validateTaxCreditInput(in); err != nil {
		return nil, err
	}

	result := &TaxCreditResult{TotalCredit: decimal.Zero}
	for _, taxType := range domain.TaxTypes {
		params, ok := in.Taxes[taxType]
		if !ok || params.Rate.IsZero() {
			continue
		}
		value := roundMoney(in.BaseValue.Mul(params.Rate).Div(hundred))
		if !value.IsPositive() {
			continue
		}
		result.Schedules = append(result.Schedules, domain.TaxCreditSchedule{
			TaxType:      taxType,
			Rate:         params.Rate,
			Installments: params.Installments,
			TotalValue:   value,
			Periods:      creditPeriods(value, params.Installments, in.StartDate, in.Granularity),
		})
		result.TotalCredit = result.TotalCredit.Add(value)
	}
	return result, nil
}

func creditPeriods(value decimal.Decimal, installments int, start time.Time, g domain.Granularity) []domain.CreditPeriod {
	n := decimal.NewFromInt(int64(installments))
	perPeriod := roundMoney(value.Div(n))
	percentage := hundred.Div(n).Round(percentPlaces)

	periods := make([]domain.CreditPeriod, 0, installments)
	remaining := value
	for i := 0; i < installments; i++ {
		opening := remaining
		credit := decimal.Min(perPeriod, remaining)
		if i == installments-1 {
			credit = remaining
		}
		remaining = remaining.Sub(credit)

		date := periodDate(start, i, g)
		label := ""
		if g == domain.Monthly {
			label = PeriodLabel(date)
		}
		periods = append(periods, domain.CreditPeriod{
			Index:          i,
			Label:          label,
			PeriodDate:     date,
			OpeningBalance: opening,
			Recognized:     credit.Neg(),
			Percentage:     percentage,
			ClosingBalance: remaining,
		})
	}
	return periods
}

func validateTaxCreditInput(in TaxCreditInput) error {
	if in.BaseValue.IsNegative() {
		return apperrors.NewValidationError("baseValue", "must not be negative")
	}
	if !in.Granularity.IsValid() {
		return apperrors.NewValidationError("granularity", fmt.Sprintf("unknown granularity %q", in.Granularity))
	}
	if in.StartDate.IsZero() {
		return apperrors.NewValidationError("startDate", "is required")
	}
	for taxType, params := range in.Taxes {
		if !taxType.IsValid() {
			return apperrors.NewValidationError("taxType", fmt.Sprintf("unknown tax type %q", taxType))
		}
		if params.Rate.IsNegative() || params.Rate.GreaterThan(hundred) {
			return apperrors.NewValidationError(string(taxType)+".rate", "must be between 0 and 100")
		}
		if params.Rate.IsZero() {
			continue
		}
		if params.Installments < 1 || params.Installments > MaxInstallments {
			return fmt.Errorf("%s: %w", taxType, ErrInvalidInstallments)
		}
	}
	return nil
}
