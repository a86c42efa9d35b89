package user

import (
	"context"
)

// StubUserRepo is an in-memory Repository for tests.
type StubUserRepo struct {
	users  map[string]User
	nextId int
}

func NewStubUserRepo() *StubUserRepo {
	return &StubUserRepo{users: make(map[string]User), nextId: 1}
}

func (s *StubUserRepo) FindByUid(ctx context.Context, uid string) (User, error) {
	u, ok := s.users[uid]
	if !ok {
		return User{}, ErrUserNotFound
	}
	return u, nil
}

func (s *StubUserRepo) Store(ctx context.Context, user User) (User, error) {
	user.Id = s.nextId
	s.nextId++
	s.users[user.Uid] = user
	return user, nil
}

func (s *StubUserRepo) Update(ctx context.Context, user User) (bool, error) {
	for uid, existing := range s.users {
		if existing.Id == user.Id {
			user.Uid = uid
			s.users[uid] = user
			return true, nil
		}
	}
	return false, nil
}

func (s *StubUserRepo) Reset() {
	s.users = make(map[string]User)
	s.nextId = 1
}
