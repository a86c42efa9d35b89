package analytics

import (
	"context"

	"github.com/kakeibo/kakeibo/internal/utils"
	"github.com/kakeibo/kakeibo/pkg/category"
	"github.com/kakeibo/kakeibo/pkg/expense"
	log "github.com/sirupsen/logrus"
)

// Summary is the headline view of one period: total and mean spending, change
// against the previous period, and the per-category breakdown.
type Summary struct {
	Period               Period
	Total                float64
	Average              float64
	ComparisonPercentage float64
	TopCategory          *category.Category
	Breakdown            []CategoryAnalytics
}

// ExpenseReader is the slice of the expense service the analytics layer needs.
type ExpenseReader interface {
	ListAll(ctx context.Context) ([]expense.Expense, error)
}

type Service interface {
	GetSummary(ctx context.Context, period Period, selectedMonth string) (Summary, error)
	GetCategories(ctx context.Context, period Period, selectedMonth string, dense bool) ([]CategoryAnalytics, error)
	GetDaily(ctx context.Context, locale Locale) ([]DailyBucket, error)
	GetWeekly(ctx context.Context, locale Locale) ([]WeeklyBucket, error)
	GetMonthly(ctx context.Context, locale Locale) ([]MonthlyBucket, error)
	GetComparison(ctx context.Context, period Period) (PeriodComparison, error)
}

type ServiceImpl struct {
	expenses ExpenseReader
	clock    utils.Clock
}

func NewAnalyticsService(expenses ExpenseReader, clock utils.Clock) *ServiceImpl {
	return &ServiceImpl{
		expenses: expenses,
		clock:    clock,
	}
}

func (s *ServiceImpl) GetSummary(ctx context.Context, period Period, selectedMonth string) (Summary, error) {
	all, err := s.expenses.ListAll(ctx)
	if err != nil {
		return Summary{}, err
	}
	now := s.clock.Now()

	filtered := FilterByPeriod(all, period, selectedMonth, now)
	log.Debugf("summary over %d of %d expenses (period=%s, month=%q)", len(filtered), len(all), period, selectedMonth)

	total := Total(filtered)
	average := 0.0
	if len(filtered) > 0 {
		average = total / float64(len(filtered))
	}
	breakdown := AggregateByCategory(filtered)

	var topCategory *category.Category
	if len(breakdown) > 0 {
		topCategory = &breakdown[0].Category
	}

	return Summary{
		Period:               period,
		Total:                total,
		Average:              average,
		ComparisonPercentage: ComparePeriods(all, period, now).PercentageChange,
		TopCategory:          topCategory,
		Breakdown:            breakdown,
	}, nil
}

func (s *ServiceImpl) GetCategories(ctx context.Context, period Period, selectedMonth string, dense bool) ([]CategoryAnalytics, error) {
	all, err := s.expenses.ListAll(ctx)
	if err != nil {
		return nil, err
	}
	filtered := FilterByPeriod(all, period, selectedMonth, s.clock.Now())
	if dense {
		return AllCategoryAnalytics(filtered), nil
	}
	return AggregateByCategory(filtered), nil
}

func (s *ServiceImpl) GetDaily(ctx context.Context, locale Locale) ([]DailyBucket, error) {
	all, err := s.expenses.ListAll(ctx)
	if err != nil {
		return nil, err
	}
	return AggregateByDay(all, s.clock.Now(), locale), nil
}

func (s *ServiceImpl) GetWeekly(ctx context.Context, locale Locale) ([]WeeklyBucket, error) {
	all, err := s.expenses.ListAll(ctx)
	if err != nil {
		return nil, err
	}
	return AggregateByWeek(all, s.clock.Now(), locale), nil
}

func (s *ServiceImpl) GetMonthly(ctx context.Context, locale Locale) ([]MonthlyBucket, error) {
	all, err := s.expenses.ListAll(ctx)
	if err != nil {
		return nil, err
	}
	return AggregateByMonth(all, s.clock.Now(), locale), nil
}

func (s *ServiceImpl) GetComparison(ctx context.Context, period Period) (PeriodComparison, error) {
	all, err := s.expenses.ListAll(ctx)
	if err != nil {
		return PeriodComparison{}, err
	}
	return ComparePeriods(all, period, s.clock.Now()), nil
}
