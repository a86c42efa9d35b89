package analytics

import (
	"fmt"
	"strconv"
	"time"

	"github.com/kakeibo/kakeibo/pkg/expense"
)

// FilterWeek keeps expenses falling in the Monday-start week offset weeks
// away from now (0 = this week, -1 = last week).
func FilterWeek(expenses []expense.Expense, offset int, now time.Time) []expense.Expense {
	start, end := weekRange(now.AddDate(0, 0, 7*offset))
	return FilterDateRange(expenses, start, end)
}

// WeekTotal sums the expenses of the week offset weeks away from now.
func WeekTotal(expenses []expense.Expense, offset int, now time.Time) float64 {
	return Total(FilterWeek(expenses, offset, now))
}

// FilterMonth keeps expenses falling in the calendar month offset months away
// from now (0 = this month, -1 = last month).
func FilterMonth(expenses []expense.Expense, offset int, now time.Time) []expense.Expense {
	start, end := monthRange(monthAnchor(now, offset))
	return FilterDateRange(expenses, start, end)
}

// monthAnchor returns the first day of the month offset months away from now.
// Anchoring on the 1st avoids end-of-month normalization (e.g. Mar 31 − 1
// month must be February, not March 3).
func monthAnchor(now time.Time, offset int) time.Time {
	return time.Date(now.Year(), now.Month()+time.Month(offset), 1, 0, 0, 0, 0, time.UTC)
}

// MonthTotal sums the expenses of the month offset months away from now.
func MonthTotal(expenses []expense.Expense, offset int, now time.Time) float64 {
	return Total(FilterMonth(expenses, offset, now))
}

// FormatWeekPeriod renders the M/D - M/D range of the week offset weeks away from now.
func FormatWeekPeriod(offset int, now time.Time) string {
	start, end := weekRange(now.AddDate(0, 0, 7*offset))
	return weekLabel(start, end)
}

// FormatMonthPeriod renders the label of the month offset months away from now.
func FormatMonthPeriod(offset int, now time.Time, locale Locale) string {
	return monthLabel(monthAnchor(now, offset), locale)
}

// FormatCurrency renders a whole-yen amount with comma grouping, e.g. ¥12,345.
func FormatCurrency(amount float64) string {
	digits := strconv.FormatInt(int64(amount), 10)
	negative := false
	if len(digits) > 0 && digits[0] == '-' {
		negative = true
		digits = digits[1:]
	}

	grouped := make([]byte, 0, len(digits)+len(digits)/3)
	for i, d := range []byte(digits) {
		if i > 0 && (len(digits)-i)%3 == 0 {
			grouped = append(grouped, ',')
		}
		grouped = append(grouped, d)
	}

	if negative {
		return "-¥" + string(grouped)
	}
	return "¥" + string(grouped)
}

// FormatPercentage renders a percentage with one decimal place.
func FormatPercentage(percentage float64) string {
	return fmt.Sprintf("%.1f%%", percentage)
}
