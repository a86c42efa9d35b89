package user

import (
	"context"
	"errors"
	"fmt"

	log "github.com/sirupsen/logrus"
)

var ErrUnsupportedLocale = errors.New("unsupported locale")

type Service interface {
	GetByUid(ctx context.Context, uid string) (User, error)
	// Provision returns the user with the given uid, creating it on first
	// sight. New users default to the Japanese locale.
	Provision(ctx context.Context, uid string) (User, error)
	UpdateCurrent(ctx context.Context, displayName string, locale string) (User, error)
}

type ServiceImpl struct {
	repo Repository
}

func NewUserService(repo Repository) *ServiceImpl {
	return &ServiceImpl{repo: repo}
}

func (s *ServiceImpl) GetByUid(ctx context.Context, uid string) (User, error) {
	return s.repo.FindByUid(ctx, uid)
}

func (s *ServiceImpl) Provision(ctx context.Context, uid string) (User, error) {
	u, err := s.repo.FindByUid(ctx, uid)
	if err == nil {
		return u, nil
	}
	if !errors.Is(err, ErrUserNotFound) {
		return User{}, err
	}
	log.Infof("provisioning new user: %s", uid)
	return s.repo.Store(ctx, User{
		Uid:      uid,
		Settings: Settings{Locale: "ja"},
	})
}

func (s *ServiceImpl) UpdateCurrent(ctx context.Context, displayName string, locale string) (User, error) {
	u, err := Current(ctx)
	if err != nil {
		return User{}, fmt.Errorf("failed to get current user: %w", err)
	}
	if locale != "ja" && locale != "en" {
		return User{}, fmt.Errorf("%w: %s", ErrUnsupportedLocale, locale)
	}
	u.DisplayName = displayName
	u.Settings.Locale = locale

	updated, err := s.repo.Update(ctx, u)
	if err != nil {
		return User{}, err
	}
	if !updated {
		log.Warnf("user not updated, probably because it does not exist (%d)", u.Id)
		return User{}, ErrUserNotFound
	}
	return u, nil
}
