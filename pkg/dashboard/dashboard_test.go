package dashboard

import (
	"context"
	"testing"
	"time"

	"github.com/kakeibo/kakeibo/internal/utils"
	"github.com/kakeibo/kakeibo/pkg/analytics"
	"github.com/kakeibo/kakeibo/pkg/category"
	"github.com/kakeibo/kakeibo/pkg/expense"
	"github.com/stretchr/testify/assert"
)

type expenseReaderStub struct {
	expenses []expense.Expense
}

func (s *expenseReaderStub) ListAll(_ context.Context) ([]expense.Expense, error) {
	return s.expenses, nil
}

func testExpense(t *testing.T, amount float64, date string) expense.Expense {
	t.Helper()
	parsed, err := expense.ParseDate(date)
	assert.NoError(t, err)
	food, _ := category.ByName("食費")
	return expense.Expense{Amount: amount, Date: parsed, Category: &food}
}

func TestServiceImpl_GetSummary(t *testing.T) {
	// given: now is Wednesday 2024-06-12
	stub := &expenseReaderStub{expenses: []expense.Expense{
		testExpense(t, 900, "2024-06-10"),  // this week and this month
		testExpense(t, 1500, "2024-06-01"), // this month only
		testExpense(t, 400, "2024-05-31"),  // last month
	}}
	service := &ServiceImpl{
		expenses: stub,
		clock:    &utils.MockClock{FixedNow: time.Date(2024, 6, 12, 10, 0, 0, 0, time.UTC)},
	}

	// when
	summary, err := service.GetSummary(context.Background(), analytics.LocaleJa)

	// then
	assert.NoError(t, err)
	assert.Equal(t, 900.0, summary.ThisWeekTotal)
	assert.Equal(t, 2400.0, summary.ThisMonthTotal)
	assert.Equal(t, "6/10 - 6/16", summary.WeekPeriod)
	assert.Equal(t, "2024年6月", summary.MonthPeriod)
}

func TestNewDashboardService_usesInjectedClock(t *testing.T) {
	// given
	stub := &expenseReaderStub{expenses: []expense.Expense{
		testExpense(t, 300, "2023-11-20"),
	}}
	service := NewDashboardService(stub, &utils.MockClock{FixedNow: time.Date(2023, 11, 22, 8, 0, 0, 0, time.UTC)})

	// when
	summary, err := service.GetSummary(context.Background(), analytics.LocaleJa)

	// then: totals follow the injected "now", not the wall clock
	assert.NoError(t, err)
	assert.Equal(t, 300.0, summary.ThisWeekTotal)
	assert.Equal(t, "2023年11月", summary.MonthPeriod)
}

func TestServiceImpl_GetSummary_enLocale(t *testing.T) {
	// given
	service := &ServiceImpl{
		expenses: &expenseReaderStub{},
		clock:    &utils.MockClock{FixedNow: time.Date(2024, 6, 12, 10, 0, 0, 0, time.UTC)},
	}

	// when
	summary, err := service.GetSummary(context.Background(), analytics.LocaleEn)

	// then
	assert.NoError(t, err)
	assert.Equal(t, "2024/06", summary.MonthPeriod)
	assert.Equal(t, 0.0, summary.ThisWeekTotal)
}
