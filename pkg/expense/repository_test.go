package expense

import (
	"context"
	"os"
	"testing"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/kakeibo/kakeibo/internal/test_utils"
	"github.com/kakeibo/kakeibo/pkg/category"
	"github.com/kakeibo/kakeibo/pkg/user"
	"github.com/stretchr/testify/assert"
)

var db *pgxpool.Pool

func TestMain(m *testing.M) {
	container, open := test_utils.TestWithDB()
	db = open()
	code := m.Run()
	db.Close()
	_ = container.Terminate(context.Background())
	os.Exit(code)
}

func setupTestRepository(t *testing.T) (context.Context, Repository, int) {
	t.Helper()
	ctx := context.Background()
	repository := NewExpenseRepo(db)

	u, err := user.NewUserRepo(db).Store(ctx, user.User{
		Uid:         uuid.NewString(),
		DisplayName: "Test User",
		Settings:    user.Settings{Locale: "ja"},
	})
	if err != nil {
		t.Fatalf("failed to create test user: %v", err)
	}
	return ctx, repository, u.Id
}

func mustCategory(t *testing.T, name string) *category.Category {
	t.Helper()
	c, ok := category.ByName(name)
	if !ok {
		t.Fatalf("unknown category %q", name)
	}
	return &c
}

func newStoredExpense(t *testing.T, ctx context.Context, repo Repository, userId int, amount float64, date string, categoryName string) Expense {
	t.Helper()
	parsed, err := ParseDate(date)
	assert.NoError(t, err)

	e := Expense{
		ID:     uuid.New(),
		Amount: amount,
		Date:   parsed,
		Note:   "test note",
	}
	if categoryName != "" {
		e.Category = mustCategory(t, categoryName)
	}
	stored, err := repo.Store(ctx, userId, e)
	assert.NoError(t, err)
	return stored
}

func TestRepositoryImpl_StoreAndFindById(t *testing.T) {
	// given
	ctx, repo, userId := setupTestRepository(t)

	// when
	stored := newStoredExpense(t, ctx, repo, userId, 1200, "2024-06-12", "食費")

	// then
	assert.False(t, stored.CreatedAt.IsZero())
	assert.False(t, stored.UpdatedAt.IsZero())

	found, err := repo.FindById(ctx, userId, stored.ID)
	assert.NoError(t, err)
	assert.Equal(t, stored.ID, found.ID)
	assert.Equal(t, 1200.0, found.Amount)
	assert.Equal(t, "2024-06-12", found.Date.Format(DateLayout))
	assert.Equal(t, "食費", found.Category.Name)
	assert.Equal(t, "test note", found.Note)
}

func TestRepositoryImpl_Store_withoutCategory(t *testing.T) {
	// given
	ctx, repo, userId := setupTestRepository(t)

	// when
	stored := newStoredExpense(t, ctx, repo, userId, 500, "2024-06-12", "")

	// then
	found, err := repo.FindById(ctx, userId, stored.ID)
	assert.NoError(t, err)
	assert.Nil(t, found.Category)
}

func TestRepositoryImpl_FindAllByUser(t *testing.T) {
	// given
	ctx, repo, userId := setupTestRepository(t)
	newStoredExpense(t, ctx, repo, userId, 100, "2024-06-01", "食費")
	newStoredExpense(t, ctx, repo, userId, 200, "2024-06-10", "交通費")

	// expenses of another user must stay invisible
	_, otherRepo, otherUserId := setupTestRepository(t)
	newStoredExpense(t, ctx, otherRepo, otherUserId, 999, "2024-06-05", "食費")

	// when
	found, err := repo.FindAllByUser(ctx, userId)

	// then: newest date first
	assert.NoError(t, err)
	assert.Len(t, found, 2)
	assert.Equal(t, 200.0, found[0].Amount)
	assert.Equal(t, 100.0, found[1].Amount)
}

func TestRepositoryImpl_FindPage(t *testing.T) {
	// given
	ctx, repo, userId := setupTestRepository(t)
	newStoredExpense(t, ctx, repo, userId, 100, "2024-06-01", "食費")
	newStoredExpense(t, ctx, repo, userId, 200, "2024-06-02", "食費")
	newStoredExpense(t, ctx, repo, userId, 300, "2024-06-03", "食費")
	newStoredExpense(t, ctx, repo, userId, 400, "2024-05-20", "食費")

	// when
	page, total, err := repo.FindPage(ctx, userId, 0, 2, "2024-06")

	// then
	assert.NoError(t, err)
	assert.Equal(t, 3, total)
	assert.Len(t, page, 2)
	assert.Equal(t, 300.0, page[0].Amount)
	assert.Equal(t, 200.0, page[1].Amount)

	// second page holds the remainder
	page, total, err = repo.FindPage(ctx, userId, 2, 2, "2024-06")
	assert.NoError(t, err)
	assert.Equal(t, 3, total)
	assert.Len(t, page, 1)
	assert.Equal(t, 100.0, page[0].Amount)
}

func TestRepositoryImpl_Update(t *testing.T) {
	// given
	ctx, repo, userId := setupTestRepository(t)
	stored := newStoredExpense(t, ctx, repo, userId, 1000, "2024-06-12", "食費")

	// when
	stored.Amount = 2500
	stored.Category = mustCategory(t, "娯楽")
	updated, err := repo.Update(ctx, userId, stored)

	// then
	assert.NoError(t, err)
	assert.True(t, updated)

	found, err := repo.FindById(ctx, userId, stored.ID)
	assert.NoError(t, err)
	assert.Equal(t, 2500.0, found.Amount)
	assert.Equal(t, "娯楽", found.Category.Name)
}

func TestRepositoryImpl_Update_otherUsersExpense(t *testing.T) {
	// given
	ctx, repo, userId := setupTestRepository(t)
	stored := newStoredExpense(t, ctx, repo, userId, 1000, "2024-06-12", "食費")
	_, _, otherUserId := setupTestRepository(t)

	// when
	updated, err := repo.Update(ctx, otherUserId, stored)

	// then
	assert.NoError(t, err)
	assert.False(t, updated)
}

func TestRepositoryImpl_Delete(t *testing.T) {
	// given
	ctx, repo, userId := setupTestRepository(t)
	stored := newStoredExpense(t, ctx, repo, userId, 1000, "2024-06-12", "食費")

	// when
	deleted, err := repo.Delete(ctx, userId, stored.ID)

	// then
	assert.NoError(t, err)
	assert.True(t, deleted)

	_, err = repo.FindById(ctx, userId, stored.ID)
	assert.ErrorIs(t, err, ErrExpenseNotFound)
}

func TestRepositoryImpl_Delete_missingExpense(t *testing.T) {
	// given
	ctx, repo, userId := setupTestRepository(t)

	// when
	deleted, err := repo.Delete(ctx, userId, uuid.New())

	// then
	assert.NoError(t, err)
	assert.False(t, deleted)
}
