package expense

import (
	"context"
	"sort"
	"time"

	"github.com/google/uuid"
)

// StubExpenseRepo is an in-memory Repository for tests.
type StubExpenseRepo struct {
	expenses map[int][]Expense // userId -> expenses
}

func NewStubExpenseRepo() *StubExpenseRepo {
	return &StubExpenseRepo{expenses: make(map[int][]Expense)}
}

func (s *StubExpenseRepo) Store(ctx context.Context, userId int, expense Expense) (Expense, error) {
	expense.CreatedAt = time.Now()
	expense.UpdatedAt = expense.CreatedAt
	s.expenses[userId] = append(s.expenses[userId], expense)
	return expense, nil
}

func (s *StubExpenseRepo) FindAllByUser(ctx context.Context, userId int) ([]Expense, error) {
	expenses := make([]Expense, len(s.expenses[userId]))
	copy(expenses, s.expenses[userId])
	sort.SliceStable(expenses, func(i, j int) bool {
		return expenses[i].Date.After(expenses[j].Date)
	})
	return expenses, nil
}

func (s *StubExpenseRepo) FindPage(ctx context.Context, userId int, offset int, limit int, month string) ([]Expense, int, error) {
	all, _ := s.FindAllByUser(ctx, userId)
	if month != "" {
		filtered := make([]Expense, 0, len(all))
		for _, e := range all {
			if e.Date.Format("2006-01") == month {
				filtered = append(filtered, e)
			}
		}
		all = filtered
	}
	total := len(all)
	if offset >= total {
		return []Expense{}, total, nil
	}
	end := offset + limit
	if end > total {
		end = total
	}
	return all[offset:end], total, nil
}

func (s *StubExpenseRepo) FindById(ctx context.Context, userId int, id uuid.UUID) (Expense, error) {
	for _, e := range s.expenses[userId] {
		if e.ID == id {
			return e, nil
		}
	}
	return Expense{}, ErrExpenseNotFound
}

func (s *StubExpenseRepo) Update(ctx context.Context, userId int, expense Expense) (bool, error) {
	for i, e := range s.expenses[userId] {
		if e.ID == expense.ID {
			expense.UpdatedAt = time.Now()
			s.expenses[userId][i] = expense
			return true, nil
		}
	}
	return false, nil
}

func (s *StubExpenseRepo) Delete(ctx context.Context, userId int, id uuid.UUID) (bool, error) {
	for i, e := range s.expenses[userId] {
		if e.ID == id {
			s.expenses[userId] = append(s.expenses[userId][:i], s.expenses[userId][i+1:]...)
			return true, nil
		}
	}
	return false, nil
}

func (s *StubExpenseRepo) Reset() {
	s.expenses = make(map[int][]Expense)
}
