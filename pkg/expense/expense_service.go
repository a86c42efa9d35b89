package expense

import (
	"context"
	"errors"
	"fmt"
	"unicode/utf8"

	"github.com/google/uuid"
	"github.com/kakeibo/kakeibo/pkg/category"
	"github.com/kakeibo/kakeibo/pkg/user"
	log "github.com/sirupsen/logrus"
)

var (
	ErrInvalidAmount   = errors.New("amount must be greater than 0 and at most 10,000,000")
	ErrInvalidDate     = errors.New("date must be in YYYY-MM-DD format")
	ErrUnknownCategory = errors.New("unknown category")
	ErrNoteTooLong     = errors.New("note must be at most 500 characters")
)

// CreateInput is the validated payload for a new expense.
type CreateInput struct {
	Amount   float64
	Category string
	Date     string
	Note     string
}

// UpdateInput carries partial updates; nil fields are left unchanged.
type UpdateInput struct {
	Amount   *float64
	Category *string
	Date     *string
	Note     *string
}

type Service interface {
	Create(ctx context.Context, input CreateInput) (Expense, error)
	List(ctx context.Context, page int, limit int, month string) ([]Expense, int, error)
	ListAll(ctx context.Context) ([]Expense, error)
	Update(ctx context.Context, id uuid.UUID, input UpdateInput) (Expense, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type ServiceImpl struct {
	repo Repository
}

func NewExpenseService(repo Repository) *ServiceImpl {
	return &ServiceImpl{repo: repo}
}

func (s *ServiceImpl) Create(ctx context.Context, input CreateInput) (Expense, error) {
	userId, err := user.CurrentId(ctx)
	if err != nil {
		return Expense{}, fmt.Errorf("failed to get current user: %w", err)
	}

	if input.Amount <= 0 || input.Amount > MaxAmount {
		return Expense{}, ErrInvalidAmount
	}
	cat, ok := category.ByName(input.Category)
	if !ok {
		return Expense{}, fmt.Errorf("%w: %s", ErrUnknownCategory, input.Category)
	}
	date, err := ParseDate(input.Date)
	if err != nil {
		return Expense{}, ErrInvalidDate
	}
	if utf8.RuneCountInString(input.Note) > MaxNoteLength {
		return Expense{}, ErrNoteTooLong
	}

	expense := Expense{
		ID:       uuid.New(),
		Amount:   input.Amount,
		Date:     date,
		Category: &cat,
		Note:     input.Note,
	}
	return s.repo.Store(ctx, userId, expense)
}

func (s *ServiceImpl) List(ctx context.Context, page int, limit int, month string) ([]Expense, int, error) {
	userId, err := user.CurrentId(ctx)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to get current user: %w", err)
	}
	if page < 1 {
		page = 1
	}
	if limit < 1 || limit > 100 {
		limit = 20
	}
	return s.repo.FindPage(ctx, userId, (page-1)*limit, limit, month)
}

func (s *ServiceImpl) ListAll(ctx context.Context) ([]Expense, error) {
	userId, err := user.CurrentId(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get current user: %w", err)
	}
	return s.repo.FindAllByUser(ctx, userId)
}

func (s *ServiceImpl) Update(ctx context.Context, id uuid.UUID, input UpdateInput) (Expense, error) {
	userId, err := user.CurrentId(ctx)
	if err != nil {
		return Expense{}, fmt.Errorf("failed to get current user: %w", err)
	}

	expense, err := s.repo.FindById(ctx, userId, id)
	if err != nil {
		return Expense{}, err
	}

	if input.Amount != nil {
		if *input.Amount <= 0 || *input.Amount > MaxAmount {
			return Expense{}, ErrInvalidAmount
		}
		expense.Amount = *input.Amount
	}
	if input.Category != nil {
		cat, ok := category.ByName(*input.Category)
		if !ok {
			return Expense{}, fmt.Errorf("%w: %s", ErrUnknownCategory, *input.Category)
		}
		expense.Category = &cat
	}
	if input.Date != nil {
		date, err := ParseDate(*input.Date)
		if err != nil {
			return Expense{}, ErrInvalidDate
		}
		expense.Date = date
	}
	if input.Note != nil {
		if utf8.RuneCountInString(*input.Note) > MaxNoteLength {
			return Expense{}, ErrNoteTooLong
		}
		expense.Note = *input.Note
	}

	updated, err := s.repo.Update(ctx, userId, expense)
	if err != nil {
		return Expense{}, err
	}
	if !updated {
		log.Warnf("expense not updated, probably because it does not exist (%s) or the user (%d) is not the owner", id, userId)
		return Expense{}, ErrExpenseNotFound
	}
	return expense, nil
}

func (s *ServiceImpl) Delete(ctx context.Context, id uuid.UUID) error {
	userId, err := user.CurrentId(ctx)
	if err != nil {
		return fmt.Errorf("failed to get current user: %w", err)
	}

	deleted, err := s.repo.Delete(ctx, userId, id)
	if err != nil {
		return err
	}
	if !deleted {
		log.Warnf("expense not deleted, probably because it does not exist (%s) or the user (%d) is not the owner", id, userId)
		return ErrExpenseNotFound
	}
	return nil
}
