package test_utils

import (
	"context"

	"github.com/kakeibo/kakeibo/pkg/user"
)

// TestUser is the fixed user injected into request contexts in tests.
var TestUser = user.User{
	Id:          123,
	Uid:         "test_user",
	DisplayName: "Test User",
	Settings: user.Settings{
		Locale: "ja",
	},
}

// ContextWithTestUser returns ctx with TestUser attached.
func ContextWithTestUser(ctx context.Context) context.Context {
	return user.WithUser(ctx, TestUser)
}
