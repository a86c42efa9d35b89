package expense

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/kakeibo/kakeibo/pkg/category"
	log "github.com/sirupsen/logrus"
)

var ErrExpenseNotFound = errors.New("expense not found")

type Repository interface {
	Store(ctx context.Context, userId int, expense Expense) (Expense, error)
	FindAllByUser(ctx context.Context, userId int) ([]Expense, error)
	FindPage(ctx context.Context, userId int, offset int, limit int, month string) ([]Expense, int, error)
	FindById(ctx context.Context, userId int, id uuid.UUID) (Expense, error)
	Update(ctx context.Context, userId int, expense Expense) (bool, error)
	Delete(ctx context.Context, userId int, id uuid.UUID) (bool, error)
}

type RepositoryImpl struct {
	db *pgxpool.Pool
}

func NewExpenseRepo(db *pgxpool.Pool) *RepositoryImpl {
	return &RepositoryImpl{db: db}
}

func (r RepositoryImpl) Store(ctx context.Context, userId int, expense Expense) (Expense, error) {
	query := `INSERT INTO expense (
					id,
					user_id,
					amount,
					date,
					category,
					note
				) VALUES ($1, $2, $3, $4, $5, $6)
				RETURNING created_at, updated_at`

	var categoryParam interface{}
	if expense.Category != nil {
		categoryParam = expense.Category.Name
	}

	err := r.db.QueryRow(ctx, query,
		expense.ID,
		userId,
		expense.Amount,
		expense.Date.Format(DateLayout),
		categoryParam,
		expense.Note,
	).Scan(&expense.CreatedAt, &expense.UpdatedAt)
	if err != nil {
		err := fmt.Errorf("could not execute query: %w", err)
		log.Error(err)
		return Expense{}, err
	}

	return expense, nil
}

func (r RepositoryImpl) FindAllByUser(ctx context.Context, userId int) ([]Expense, error) {
	query := `SELECT id, amount, to_char(date, 'YYYY-MM-DD') AS date, category, note, created_at, updated_at
				FROM expense WHERE user_id = $1
				ORDER BY date DESC, created_at DESC`
	rows, err := r.db.Query(ctx, query, userId)
	if err != nil {
		err := fmt.Errorf("could not query expenses: %w", err)
		log.Error(err)
		return nil, err
	}
	defer rows.Close()

	return scanExpenses(rows)
}

func (r RepositoryImpl) FindPage(ctx context.Context, userId int, offset int, limit int, month string) ([]Expense, int, error) {
	monthWhereQuery := ""
	args := []interface{}{userId}
	if month != "" {
		monthWhereQuery = "AND to_char(date, 'YYYY-MM') = $2"
		args = append(args, month)
	}

	countQuery := fmt.Sprintf("SELECT COUNT(*) FROM expense WHERE user_id = $1 %s", monthWhereQuery)
	var total int
	if err := r.db.QueryRow(ctx, countQuery, args...).Scan(&total); err != nil {
		err := fmt.Errorf("could not count expenses: %w", err)
		log.Error(err)
		return nil, 0, err
	}

	query := fmt.Sprintf(`SELECT id, amount, to_char(date, 'YYYY-MM-DD') AS date, category, note, created_at, updated_at
				FROM expense WHERE user_id = $1 %s
				ORDER BY date DESC, created_at DESC
				OFFSET %d LIMIT %d`, monthWhereQuery, offset, limit)
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		err := fmt.Errorf("could not query expenses: %w", err)
		log.Error(err)
		return nil, 0, err
	}
	defer rows.Close()

	expenses, err := scanExpenses(rows)
	if err != nil {
		return nil, 0, err
	}
	return expenses, total, nil
}

func (r RepositoryImpl) FindById(ctx context.Context, userId int, id uuid.UUID) (Expense, error) {
	query := `SELECT id, amount, to_char(date, 'YYYY-MM-DD') AS date, category, note, created_at, updated_at
				FROM expense WHERE user_id = $1 AND id = $2`
	rows, err := r.db.Query(ctx, query, userId, id)
	if err != nil {
		err := fmt.Errorf("could not query expense: %w", err)
		log.Error(err)
		return Expense{}, err
	}
	defer rows.Close()

	expenses, err := scanExpenses(rows)
	if err != nil {
		return Expense{}, err
	}
	if len(expenses) == 0 {
		return Expense{}, ErrExpenseNotFound
	}
	return expenses[0], nil
}

func (r RepositoryImpl) Update(ctx context.Context, userId int, expense Expense) (bool, error) {
	query := `UPDATE expense SET
				  amount = $1,
				  date = $2,
				  category = $3,
				  note = $4,
				  updated_at = now()
			  WHERE id = $5 AND user_id = $6`

	var categoryParam interface{}
	if expense.Category != nil {
		categoryParam = expense.Category.Name
	}

	result, err := r.db.Exec(ctx, query,
		expense.Amount,
		expense.Date.Format(DateLayout),
		categoryParam,
		expense.Note,
		expense.ID,
		userId,
	)
	if err != nil {
		err := fmt.Errorf("could not execute query: %w", err)
		log.Error(err)
		return false, err
	}
	return result.RowsAffected() == 1, nil
}

func (r RepositoryImpl) Delete(ctx context.Context, userId int, id uuid.UUID) (bool, error) {
	query := "DELETE FROM expense WHERE id = $1 AND user_id = $2"
	result, err := r.db.Exec(ctx, query, id, userId)
	if err != nil {
		err := fmt.Errorf("could not execute query: %w", err)
		log.Error(err)
		return false, err
	}
	return result.RowsAffected() == 1, nil
}

func scanExpenses(rows pgx.Rows) ([]Expense, error) {
	var expenses []Expense
	for rows.Next() {
		var expense Expense
		var dateString string
		var categoryName sql.NullString
		if err := rows.Scan(
			&expense.ID,
			&expense.Amount,
			&dateString,
			&categoryName,
			&expense.Note,
			&expense.CreatedAt,
			&expense.UpdatedAt,
		); err != nil {
			err := fmt.Errorf("could not scan expense: %w", err)
			log.Error(err)
			return nil, err
		}
		date, err := ParseDate(dateString)
		if err != nil {
			err := fmt.Errorf("could not parse expense date: %w", err)
			log.Error(err)
			return nil, err
		}
		expense.Date = date
		if categoryName.Valid {
			if c, ok := category.ByName(categoryName.String); ok {
				expense.Category = &c
			} else {
				// unresolved categories stay nil and are skipped by per-category views
				log.Warnf("expense %s references unknown category %q", expense.ID, categoryName.String)
			}
		}
		expenses = append(expenses, expense)
	}

	if err := rows.Err(); err != nil {
		err := fmt.Errorf("error iterating over rows: %w", err)
		log.Error(err)
		return nil, err
	}

	return expenses, nil
}
