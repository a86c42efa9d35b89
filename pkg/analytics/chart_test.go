package analytics

import (
	"testing"
	"time"

	"github.com/kakeibo/kakeibo/pkg/expense"
	"github.com/stretchr/testify/assert"
)

func TestToPieChartData_skipsZeroAmounts(t *testing.T) {
	// given
	expenses := []expense.Expense{
		testExpense(t, 1000, "2024-06-01", "食費"),
	}
	dense := AllCategoryAnalytics(expenses)

	// when
	result := ToPieChartData(dense)

	// then: only spent categories render as slices
	assert.Len(t, result, 1)
	assert.Equal(t, "食費", result[0].Name)
	assert.Equal(t, 1000.0, result[0].Value)
	assert.Equal(t, "#f97316", result[0].Fill)
}

func TestToBarChartData_keepsZeroAmounts(t *testing.T) {
	// given
	expenses := []expense.Expense{
		testExpense(t, 1000, "2024-06-01", "食費"),
	}
	dense := AllCategoryAnalytics(expenses)

	// when
	result := ToBarChartData(dense)

	// then: all categories keep a bar even at zero
	assert.Len(t, result, 9)
	assert.Equal(t, "食費", result[0].Category)
	assert.Equal(t, 1000.0, result[0].Amount)
	assert.Equal(t, 0.0, result[1].Amount)
}

func TestToLineChartData(t *testing.T) {
	// given
	now := time.Date(2024, 6, 15, 0, 0, 0, 0, time.UTC)
	buckets := AggregateByMonth([]expense.Expense{
		testExpense(t, 800, "2024-06-01", "食費"),
	}, now, LocaleEn)

	// when
	result := ToLineChartData(buckets)

	// then
	assert.Len(t, result, 12)
	assert.Equal(t, "2023/07", result[0].Month)
	assert.Equal(t, "2024/06", result[11].Month)
	assert.Equal(t, 800.0, result[11].Amount)
}

func TestToDayBarChartData(t *testing.T) {
	// given
	now := time.Date(2024, 6, 12, 0, 0, 0, 0, time.UTC)
	buckets := AggregateByDay([]expense.Expense{
		testExpense(t, 500, "2024-06-12", "食費"),
	}, now, LocaleJa)

	// when
	result := ToDayBarChartData(buckets)

	// then: bars carry the display label, not the raw date key
	assert.Len(t, result, 7)
	assert.Equal(t, "6/12(水)", result[6].Date)
	assert.Equal(t, 500.0, result[6].Amount)
}

func TestToWeekBarChartData(t *testing.T) {
	// given
	now := time.Date(2024, 6, 12, 0, 0, 0, 0, time.UTC)
	buckets := AggregateByWeek([]expense.Expense{
		testExpense(t, 700, "2024-06-11", "食費"),
	}, now, LocaleJa)

	// when
	result := ToWeekBarChartData(buckets)

	// then
	assert.Len(t, result, 8)
	assert.Equal(t, "6/10 - 6/16", result[7].Week)
	assert.Equal(t, 700.0, result[7].Amount)
}
