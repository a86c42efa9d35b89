package analytics

import (
	"time"

	"github.com/kakeibo/kakeibo/pkg/expense"
)

// Period is a named granularity used both for filtering and for
// current-vs-previous comparison.
type Period string

const (
	PeriodDaily   Period = "daily"
	PeriodWeekly  Period = "weekly"
	PeriodMonthly Period = "monthly"
)

// PeriodComparison holds current-vs-previous period totals.
type PeriodComparison struct {
	CurrentAmount  float64
	PreviousAmount float64
	Difference     float64
	// PercentageChange is 0 whenever the previous period's total is 0,
	// regardless of current spending. A difference of exactly 0 is neither
	// an increase nor a decrease.
	PercentageChange float64
	IsIncrease       bool
}

// FilterByMonth keeps expenses whose YYYY-MM key equals month. Independent of "now".
func FilterByMonth(expenses []expense.Expense, month string) []expense.Expense {
	result := make([]expense.Expense, 0, len(expenses))
	for _, e := range expenses {
		if e.Date.Format(monthKeyLayout) == month {
			result = append(result, e)
		}
	}
	return result
}

// FilterDateRange keeps expenses within the inclusive [start, end] interval,
// preserving original order.
func FilterDateRange(expenses []expense.Expense, start, end time.Time) []expense.Expense {
	result := make([]expense.Expense, 0, len(expenses))
	for _, e := range expenses {
		if within(e.Date, start, end) {
			result = append(result, e)
		}
	}
	return result
}

// FilterByPeriod keeps expenses belonging to the current period of the given
// granularity: today, the Monday-start week containing now, or the calendar
// month containing now. For the monthly granularity a non-empty selectedMonth
// overrides "now" with an explicit YYYY-MM key. Unknown periods pass the
// input through unchanged.
func FilterByPeriod(expenses []expense.Expense, period Period, selectedMonth string, now time.Time) []expense.Expense {
	switch period {
	case PeriodDaily:
		start, end := dayRange(now)
		return FilterDateRange(expenses, start, end)
	case PeriodWeekly:
		start, end := weekRange(now)
		return FilterDateRange(expenses, start, end)
	case PeriodMonthly:
		if selectedMonth != "" {
			return FilterByMonth(expenses, selectedMonth)
		}
		start, end := monthRange(now)
		return FilterDateRange(expenses, start, end)
	}
	return expenses
}

// ComparePeriods sums the current and the immediately preceding period of the
// same granularity in one pass: today vs yesterday, this Monday-start week vs
// the previous one, or this calendar month vs the previous one (January's
// previous month is December of the prior year).
func ComparePeriods(expenses []expense.Expense, period Period, now time.Time) PeriodComparison {
	var currentStart, currentEnd, previousStart, previousEnd time.Time

	switch period {
	case PeriodDaily:
		currentStart, currentEnd = dayRange(now)
		previousStart, previousEnd = dayRange(currentStart.AddDate(0, 0, -1))
	case PeriodWeekly:
		currentStart, currentEnd = weekRange(now)
		previousStart, previousEnd = weekRange(currentStart.AddDate(0, 0, -7))
	case PeriodMonthly:
		currentStart, currentEnd = monthRange(now)
		previousStart, previousEnd = monthRange(currentStart.AddDate(0, 0, -1))
	default:
		return PeriodComparison{}
	}

	var currentAmount, previousAmount float64
	for _, e := range expenses {
		if within(e.Date, currentStart, currentEnd) {
			currentAmount += e.Amount
		} else if within(e.Date, previousStart, previousEnd) {
			previousAmount += e.Amount
		}
	}

	difference := currentAmount - previousAmount
	percentageChange := 0.0
	if previousAmount > 0 {
		percentageChange = difference / previousAmount * 100
	}

	return PeriodComparison{
		CurrentAmount:    currentAmount,
		PreviousAmount:   previousAmount,
		Difference:       difference,
		PercentageChange: percentageChange,
		IsIncrease:       difference > 0,
	}
}
