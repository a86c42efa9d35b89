package user

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
)

var userRepoStub = NewStubUserRepo()

func setup(t *testing.T) (Service, func()) {
	service := NewUserService(userRepoStub)
	return service, func() {
		t.Log("Teardown after test")
		userRepoStub.Reset()
	}
}

func TestServiceImpl_Provision_createsUnknownUser(t *testing.T) {
	service, teardown := setup(t)
	defer teardown()

	// when
	u, err := service.Provision(context.Background(), "new-uid")

	// then
	assert.NoError(t, err)
	assert.NotZero(t, u.Id)
	assert.Equal(t, "new-uid", u.Uid)
	assert.Equal(t, "ja", u.Settings.Locale)
}

func TestServiceImpl_Provision_returnsExistingUser(t *testing.T) {
	service, teardown := setup(t)
	defer teardown()

	// given
	first, err := service.Provision(context.Background(), "known-uid")
	assert.NoError(t, err)

	// when
	second, err := service.Provision(context.Background(), "known-uid")

	// then
	assert.NoError(t, err)
	assert.Equal(t, first.Id, second.Id)
}

func TestServiceImpl_UpdateCurrent(t *testing.T) {
	service, teardown := setup(t)
	defer teardown()

	// given
	u, err := service.Provision(context.Background(), "some-uid")
	assert.NoError(t, err)
	ctx := WithUser(context.Background(), u)

	// when
	updated, err := service.UpdateCurrent(ctx, "Taro", "en")

	// then
	assert.NoError(t, err)
	assert.Equal(t, "Taro", updated.DisplayName)
	assert.Equal(t, "en", updated.Settings.Locale)
}

func TestServiceImpl_UpdateCurrent_rejectsUnknownLocale(t *testing.T) {
	service, teardown := setup(t)
	defer teardown()

	// given
	u, err := service.Provision(context.Background(), "some-uid")
	assert.NoError(t, err)
	ctx := WithUser(context.Background(), u)

	// when
	_, err = service.UpdateCurrent(ctx, "Taro", "fr")

	// then
	assert.ErrorIs(t, err, ErrUnsupportedLocale)
}

func TestServiceImpl_UpdateCurrent_requiresUser(t *testing.T) {
	service, teardown := setup(t)
	defer teardown()

	// when
	_, err := service.UpdateCurrent(context.Background(), "Taro", "ja")

	// then
	assert.ErrorIs(t, err, ErrNoUser)
}
