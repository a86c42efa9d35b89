package analytics

import (
	"sort"

	"github.com/kakeibo/kakeibo/pkg/category"
	"github.com/kakeibo/kakeibo/pkg/expense"
)

// CategoryAnalytics is one category's share of spending.
type CategoryAnalytics struct {
	Category   category.Category
	Amount     float64
	Count      int
	Percentage float64
}

// Total sums all expense amounts, categorized or not.
func Total(expenses []expense.Expense) float64 {
	sum := 0.0
	for _, e := range expenses {
		sum += e.Amount
	}
	return sum
}

// AggregateByCategory groups expenses by category and computes each group's
// share of the grand total, sorted by descending amount (stable on ties).
//
// Expenses without a resolvable category get no bucket, but their amounts
// still count towards the percentage denominator, so percentages describe the
// share of ALL spending, not just the categorized part.
func AggregateByCategory(expenses []expense.Expense) []CategoryAnalytics {
	totalAmount := Total(expenses)

	index := make(map[string]int)
	result := make([]CategoryAnalytics, 0)
	for _, e := range expenses {
		if e.Category == nil {
			continue
		}
		i, ok := index[e.Category.Name]
		if !ok {
			i = len(result)
			index[e.Category.Name] = i
			result = append(result, CategoryAnalytics{Category: *e.Category})
		}
		result[i].Amount += e.Amount
		result[i].Count++
	}

	for i := range result {
		if totalAmount > 0 {
			result[i].Percentage = result[i].Amount / totalAmount * 100
		}
	}

	sort.SliceStable(result, func(i, j int) bool {
		return result[i].Amount > result[j].Amount
	})
	return result
}

// AllCategoryAnalytics is the dense variant of AggregateByCategory: every
// registry category appears, zero-amount ones included, in registry order.
// Callers needing a stable chart legend use this.
func AllCategoryAnalytics(expenses []expense.Expense) []CategoryAnalytics {
	aggregated := AggregateByCategory(expenses)
	byName := make(map[string]CategoryAnalytics, len(aggregated))
	for _, a := range aggregated {
		byName[a.Category.Name] = a
	}

	all := category.All()
	result := make([]CategoryAnalytics, 0, len(all))
	for _, c := range all {
		if a, ok := byName[c.Name]; ok {
			result = append(result, a)
		} else {
			result = append(result, CategoryAnalytics{Category: c})
		}
	}
	return result
}
