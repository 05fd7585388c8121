package accounting

import (
	"sort"

	"github.com/SscSPs/fixed_asset_ledger/internal/core/domain"
	"github.com/shopspring/decimal"
)

// SummaryInput is a consistent snapshot of the asset register.
type SummaryInput struct {
	Assets                   []domain.Asset
	CreditCalculations       []domain.TaxCreditCalculation
	DepreciationCalculations []domain.DepreciationCalculation
	Disposals                []domain.DisposalRecord
	Year                     int // restricts the monthly aggregates; 0 keeps every month
}

// Summarize computes dashboard totals and per-month aggregates of recognized
// credits and depreciation. Superseded depreciation calculations are skipped.
func Summarize(in SummaryInput) domain.DashboardSummary {
	summary := domain.DashboardSummary{
		AssetCount:            len(in.Assets),
		AssetsByStatus:        map[domain.AssetStatus]int{},
		TotalAcquisitionValue: decimal.Zero,
		TotalCurrentValue:     decimal.Zero,
		TotalCredits:          decimal.Zero,
		TotalDepreciation:     decimal.Zero,
		DisposalCount:         len(in.Disposals),
		TotalGainOrLoss:       decimal.Zero,
		Monthly:               []domain.MonthlyAggregate{},
	}

	for _, a := range in.Assets {
		summary.AssetsByStatus[a.Status]++
		summary.TotalAcquisitionValue = summary.TotalAcquisitionValue.Add(a.TotalValue)
		summary.TotalCurrentValue = summary.TotalCurrentValue.Add(a.CurrentValue())
	}

	months := map[string]*domain.MonthlyAggregate{}
	bucket := func(key string) *domain.MonthlyAggregate {
		agg, ok := months[key]
		if !ok {
			agg = &domain.MonthlyAggregate{Month: key, Credits: decimal.Zero, Depreciation: decimal.Zero}
			months[key] = agg
		}
		return agg
	}

	for _, calc := range in.CreditCalculations {
		summary.TotalCredits = summary.TotalCredits.Add(calc.TotalCredit)
		for _, schedule := range calc.Schedules {
			for _, p := range schedule.Periods {
				if in.Year != 0 && p.PeriodDate.Year() != in.Year {
					continue
				}
				agg := bucket(MonthKey(p.PeriodDate))
				agg.Credits = agg.Credits.Add(p.Recognized.Abs())
			}
		}
	}

	for _, calc := range in.DepreciationCalculations {
		if calc.Superseded {
			continue
		}
		summary.TotalDepreciation = summary.TotalDepreciation.Add(calc.TotalDepreciation)
		for _, p := range calc.Periods {
			if in.Year != 0 && p.PeriodDate.Year() != in.Year {
				continue
			}
			agg := bucket(MonthKey(p.PeriodDate))
			agg.Depreciation = agg.Depreciation.Add(p.Depreciation)
		}
	}

	for _, d := range in.Disposals {
		summary.TotalGainOrLoss = summary.TotalGainOrLoss.Add(d.Settlement.GainOrLoss)
	}

	for _, agg := range months {
		summary.Monthly = append(summary.Monthly, *agg)
	}
	sort.Slice(summary.Monthly, func(i, j int) bool {
		return summary.Monthly[i].Month < summary.Monthly[j].Month
	})
	return summary
}
