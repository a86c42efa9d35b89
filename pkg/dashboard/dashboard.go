package dashboard

import (
	"context"

	"github.com/kakeibo/kakeibo/internal/utils"
	"github.com/kakeibo/kakeibo/pkg/analytics"
)

// Summary is the dashboard headline: spending in the running week and month.
type Summary struct {
	ThisWeekTotal  float64
	ThisMonthTotal float64
	WeekPeriod     string
	MonthPeriod    string
}

type Service interface {
	GetSummary(ctx context.Context, locale analytics.Locale) (Summary, error)
}

type ServiceImpl struct {
	expenses analytics.ExpenseReader
	clock    utils.Clock
}

func NewDashboardService(expenses analytics.ExpenseReader, clock utils.Clock) *ServiceImpl {
	return &ServiceImpl{
		expenses: expenses,
		clock:    clock,
	}
}

func (s *ServiceImpl) GetSummary(ctx context.Context, locale analytics.Locale) (Summary, error) {
	all, err := s.expenses.ListAll(ctx)
	if err != nil {
		return Summary{}, err
	}
	now := s.clock.Now()

	return Summary{
		ThisWeekTotal:  analytics.WeekTotal(all, 0, now),
		ThisMonthTotal: analytics.MonthTotal(all, 0, now),
		WeekPeriod:     analytics.FormatWeekPeriod(0, now),
		MonthPeriod:    analytics.FormatMonthPeriod(0, now, locale),
	}, nil
}
