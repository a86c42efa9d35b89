package user

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	log "github.com/sirupsen/logrus"
)

var ErrUserNotFound = errors.New("user not found")

type Repository interface {
	FindByUid(ctx context.Context, uid string) (User, error)
	Store(ctx context.Context, user User) (User, error)
	Update(ctx context.Context, user User) (bool, error)
}

type RepositoryImpl struct {
	db *pgxpool.Pool
}

func NewUserRepo(db *pgxpool.Pool) *RepositoryImpl {
	return &RepositoryImpl{db: db}
}

func (r RepositoryImpl) FindByUid(ctx context.Context, uid string) (User, error) {
	query := `SELECT id, uid, display_name, locale FROM app_user WHERE uid = $1`
	var u User
	err := r.db.QueryRow(ctx, query, uid).Scan(&u.Id, &u.Uid, &u.DisplayName, &u.Settings.Locale)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return User{}, ErrUserNotFound
		}
		err := fmt.Errorf("could not query user: %w", err)
		log.Error(err)
		return User{}, err
	}
	return u, nil
}

func (r RepositoryImpl) Store(ctx context.Context, user User) (User, error) {
	query := `INSERT INTO app_user (uid, display_name, locale) VALUES ($1, $2, $3) RETURNING id`
	err := r.db.QueryRow(ctx, query, user.Uid, user.DisplayName, user.Settings.Locale).Scan(&user.Id)
	if err != nil {
		err := fmt.Errorf("could not execute query: %w", err)
		log.Error(err)
		return User{}, err
	}
	return user, nil
}

func (r RepositoryImpl) Update(ctx context.Context, user User) (bool, error) {
	query := `UPDATE app_user SET display_name = $1, locale = $2 WHERE id = $3`
	result, err := r.db.Exec(ctx, query, user.DisplayName, user.Settings.Locale, user.Id)
	if err != nil {
		err := fmt.Errorf("could not execute query: %w", err)
		log.Error(err)
		return false, err
	}
	return result.RowsAffected() == 1, nil
}
