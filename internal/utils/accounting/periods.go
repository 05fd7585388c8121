package accounting

import (
	"time"

	"github.com/SscSPs/fixed_asset_ledger/internal/core/domain"
	"github.com/shopspring/decimal"
)

const (
	moneyPlaces   = 2
	percentPlaces = 4
)

var hundred = decimal.NewFromInt(100)

func roundMoney(d decimal.Decimal) decimal.Decimal {
	return d.Round(moneyPlaces)
}

// dateOnly drops the clock part so that comparisons are made on calendar days.
func dateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// addMonths returns the first day of the month n months after t's month.
func addMonths(t time.Time, n int) time.Time {
	return time.Date(t.Year(), t.Month()+time.Month(n), 1, 0, 0, 0, 0, time.UTC)
}

// PeriodLabel formats a period date as MM/YYYY.
func PeriodLabel(t time.Time) string {
	return t.Format("01/2006")
}

// MonthKey formats a period date as YYYY-MM, used for aggregation.
func MonthKey(t time.Time) string {
	return t.Format("2006-01")
}

// periodDate returns the start of the i-th (0-based) period after start.
func periodDate(start time.Time, i int, g domain.Granularity) time.Time {
	if g == domain.Annual {
		return addMonths(start, 12*i)
	}
	return addMonths(start, i)
}

// ElapsedMonths returns the number of whole months between from and to.
// A month only counts once to has reached from's day of month, or the last
// day of its own month when that month is shorter. It returns 0 when to is on
// or before from.
func ElapsedMonths(from, to time.Time) int {
	from, to = dateOnly(from), dateOnly(to)
	if !to.After(from) {
		return 0
	}
	months := (to.Year()-from.Year())*12 + int(to.Month()) - int(from.Month())
	if to.Day() < from.Day() && !isMonthEnd(to) {
		months--
	}
	if months < 0 {
		return 0
	}
	return months
}

func isMonthEnd(t time.Time) bool {
	return t.AddDate(0, 0, 1).Day() == 1
}

// ElapsedPeriods converts elapsed whole months into schedule periods of granularity g.
func ElapsedPeriods(from, to time.Time, g domain.Granularity) int {
	months := ElapsedMonths(from, to)
	if g == domain.Annual {
		return months / 12
	}
	return months
}

// startedOnOrBefore reports whether start falls on or before the given day.
func startedOnOrBefore(start, day time.Time) bool {
	return !dateOnly(start).After(dateOnly(day))
}
