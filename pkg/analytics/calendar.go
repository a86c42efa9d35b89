package analytics

import (
	"fmt"
	"math"
	"time"

	"github.com/kakeibo/kakeibo/pkg/expense"
)

// Locale selects display-label formatting. It never influences bucketing math.
type Locale string

const (
	LocaleJa Locale = "ja"
	LocaleEn Locale = "en"
)

// DailyBucket is one calendar day of the trailing 7-day window.
type DailyBucket struct {
	Date   string // YYYY-MM-DD
	Label  string
	Amount float64
}

// WeeklyBucket is one Monday-to-Sunday week of the trailing 8-week window.
type WeeklyBucket struct {
	Week   string // YYYY-Www
	Label  string
	Start  time.Time
	End    time.Time
	Amount float64
}

// MonthlyBucket is one calendar month of the trailing 12-month window.
type MonthlyBucket struct {
	Month  string // YYYY-MM
	Label  string
	Amount float64
}

const monthKeyLayout = "2006-01"

var jaWeekdays = [...]string{"日", "月", "火", "水", "木", "金", "土"}

// dateOnly truncates a timestamp to its calendar date, normalized to UTC so
// that interval comparisons against midnight-normalized expense dates hold
// regardless of the caller's location.
func dateOnly(t time.Time) time.Time {
	year, month, day := t.Date()
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

// dayRange returns the inclusive interval covering one calendar day.
func dayRange(date time.Time) (time.Time, time.Time) {
	start := dateOnly(date)
	return start, start.AddDate(0, 0, 1).Add(-1 * time.Nanosecond)
}

// weekRange returns the inclusive Monday-to-Sunday interval containing date.
func weekRange(date time.Time) (time.Time, time.Time) {
	date = dateOnly(date)
	diff := int(time.Monday - date.Weekday())
	if date.Weekday() == time.Sunday {
		diff = -6
	}
	start := date.AddDate(0, 0, diff)
	return start, start.AddDate(0, 0, 7).Add(-1 * time.Nanosecond)
}

// monthRange returns the inclusive interval covering the calendar month containing date.
func monthRange(date time.Time) (time.Time, time.Time) {
	start := time.Date(date.Year(), date.Month(), 1, 0, 0, 0, 0, time.UTC)
	return start, start.AddDate(0, 1, 0).Add(-1 * time.Nanosecond)
}

func within(date, start, end time.Time) bool {
	return !date.Before(start) && !date.After(end)
}

// weekKey derives the YYYY-Www key from a week's Monday: the week number is
// ceil((monday − Jan 1) / 7 days) in the Monday's year.
func weekKey(monday time.Time) string {
	jan1 := time.Date(monday.Year(), time.January, 1, 0, 0, 0, 0, monday.Location())
	week := int(math.Ceil(monday.Sub(jan1).Hours() / (7 * 24)))
	return fmt.Sprintf("%d-W%02d", monday.Year(), week)
}

func dayLabel(date time.Time, locale Locale) string {
	if locale == LocaleEn {
		return fmt.Sprintf("%d/%d %s", int(date.Month()), date.Day(), date.Format("Mon"))
	}
	return fmt.Sprintf("%d/%d(%s)", int(date.Month()), date.Day(), jaWeekdays[date.Weekday()])
}

// weekLabel renders the M/D - M/D range; both locales use the same format.
func weekLabel(start, end time.Time) string {
	return fmt.Sprintf("%d/%d - %d/%d", int(start.Month()), start.Day(), int(end.Month()), end.Day())
}

func monthLabel(month time.Time, locale Locale) string {
	if locale == LocaleEn {
		return month.Format("2006/01")
	}
	return fmt.Sprintf("%d年%d月", month.Year(), int(month.Month()))
}

// AggregateByDay sums expenses into the 7 calendar days ending at now,
// oldest first. Expenses outside the window are dropped from this view.
func AggregateByDay(expenses []expense.Expense, now time.Time, locale Locale) []DailyBucket {
	now = dateOnly(now)

	buckets := make([]DailyBucket, 0, 7)
	index := make(map[string]int, 7)
	for i := 6; i >= 0; i-- {
		day := now.AddDate(0, 0, -i)
		key := day.Format(expense.DateLayout)
		index[key] = len(buckets)
		buckets = append(buckets, DailyBucket{Date: key, Label: dayLabel(day, locale)})
	}

	for _, e := range expenses {
		if i, ok := index[e.Date.Format(expense.DateLayout)]; ok {
			buckets[i].Amount += e.Amount
		}
	}

	return buckets
}

// AggregateByWeek sums expenses into 8 contiguous Monday-anchored weeks, the
// most recent being the week containing now, oldest first. Earlier weeks step
// back 7 days from that anchor rather than from calendar week numbers, so the
// windows never overlap.
func AggregateByWeek(expenses []expense.Expense, now time.Time, locale Locale) []WeeklyBucket {
	now = dateOnly(now)

	buckets := make([]WeeklyBucket, 0, 8)
	for i := 7; i >= 0; i-- {
		start, end := weekRange(now.AddDate(0, 0, -7*i))
		buckets = append(buckets, WeeklyBucket{
			Week:  weekKey(start),
			Label: weekLabel(start, end),
			Start: start,
			End:   end,
		})
	}

	for _, e := range expenses {
		for i := range buckets {
			if within(e.Date, buckets[i].Start, buckets[i].End) {
				buckets[i].Amount += e.Amount
				break
			}
		}
	}

	return buckets
}

// AggregateByMonth sums expenses into the 12 calendar months ending with the
// month containing now, oldest first.
func AggregateByMonth(expenses []expense.Expense, now time.Time, locale Locale) []MonthlyBucket {
	buckets := make([]MonthlyBucket, 0, 12)
	index := make(map[string]int, 12)
	for i := 11; i >= 0; i-- {
		month := time.Date(now.Year(), now.Month()-time.Month(i), 1, 0, 0, 0, 0, time.UTC)
		key := month.Format(monthKeyLayout)
		index[key] = len(buckets)
		buckets = append(buckets, MonthlyBucket{Month: key, Label: monthLabel(month, locale)})
	}

	for _, e := range expenses {
		if i, ok := index[e.Date.Format(monthKeyLayout)]; ok {
			buckets[i].Amount += e.Amount
		}
	}

	return buckets
}
