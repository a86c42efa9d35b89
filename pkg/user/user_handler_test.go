package user

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

// failingUserRepo simulates an unavailable database.
type failingUserRepo struct{}

func (f failingUserRepo) FindByUid(ctx context.Context, uid string) (User, error) {
	return User{}, errors.New("connection refused")
}

func (f failingUserRepo) Store(ctx context.Context, user User) (User, error) {
	return User{}, errors.New("connection refused")
}

func (f failingUserRepo) Update(ctx context.Context, user User) (bool, error) {
	return false, errors.New("connection refused")
}

func setupUserHandlerTest(t *testing.T) (*Handler, context.Context, func()) {
	service := NewUserService(userRepoStub)
	handler := NewHandler(service)

	u, err := service.Provision(context.Background(), "handler-test-uid")
	assert.NoError(t, err)
	ctx := WithUser(context.Background(), u)

	return handler, ctx, func() {
		userRepoStub.Reset()
	}
}

func TestHandler_CurrentUser(t *testing.T) {
	handler, ctx, teardown := setupUserHandlerTest(t)
	defer teardown()

	// when
	req := httptest.NewRequest(http.MethodGet, "/api/user/current", nil)
	w := httptest.NewRecorder()
	handler.CurrentUser(w, req.WithContext(ctx))

	// then
	assert.Equal(t, http.StatusOK, w.Code)

	var dto UserDTO
	err := json.NewDecoder(w.Body).Decode(&dto)
	assert.NoError(t, err)
	assert.Equal(t, "handler-test-uid", dto.Uid)
	assert.Equal(t, "ja", dto.Locale)
}

func TestHandler_CurrentUser_noUser(t *testing.T) {
	handler, _, teardown := setupUserHandlerTest(t)
	defer teardown()

	// when: context carries no user
	req := httptest.NewRequest(http.MethodGet, "/api/user/current", nil)
	w := httptest.NewRecorder()
	handler.CurrentUser(w, req)

	// then
	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestHandler_UpdateUser(t *testing.T) {
	handler, ctx, teardown := setupUserHandlerTest(t)
	defer teardown()

	// when
	req := httptest.NewRequest(http.MethodPut, "/api/user/current", bytes.NewBufferString(`{"displayName": "Taro", "locale": "en"}`))
	w := httptest.NewRecorder()
	handler.UpdateUser(w, req.WithContext(ctx))

	// then
	assert.Equal(t, http.StatusOK, w.Code)

	var dto UserDTO
	err := json.NewDecoder(w.Body).Decode(&dto)
	assert.NoError(t, err)
	assert.Equal(t, "Taro", dto.DisplayName)
	assert.Equal(t, "en", dto.Locale)
}

func TestHandler_UpdateUser_unsupportedLocale(t *testing.T) {
	handler, ctx, teardown := setupUserHandlerTest(t)
	defer teardown()

	// when
	req := httptest.NewRequest(http.MethodPut, "/api/user/current", bytes.NewBufferString(`{"displayName": "Taro", "locale": "fr"}`))
	w := httptest.NewRecorder()
	handler.UpdateUser(w, req.WithContext(ctx))

	// then
	assert.Equal(t, http.StatusBadRequest, w.Code)

	var errResponse struct {
		Error   string `json:"error"`
		Details string `json:"details"`
	}
	err := json.NewDecoder(w.Body).Decode(&errResponse)
	assert.NoError(t, err)
	assert.Equal(t, "Validation error", errResponse.Error)
	assert.Contains(t, errResponse.Details, "unsupported locale")
}

func TestHandler_UpdateUser_noUser(t *testing.T) {
	handler, _, teardown := setupUserHandlerTest(t)
	defer teardown()

	// when: context carries no user
	req := httptest.NewRequest(http.MethodPut, "/api/user/current", bytes.NewBufferString(`{"displayName": "Taro", "locale": "ja"}`))
	w := httptest.NewRecorder()
	handler.UpdateUser(w, req)

	// then
	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestHandler_UpdateUser_repositoryFailure(t *testing.T) {
	// given: a repository that errors on every call
	handler := NewHandler(NewUserService(failingUserRepo{}))
	ctx := WithUser(context.Background(), User{Id: 1, Uid: "some-uid", Settings: Settings{Locale: "ja"}})

	// when
	req := httptest.NewRequest(http.MethodPut, "/api/user/current", bytes.NewBufferString(`{"displayName": "Taro", "locale": "ja"}`))
	w := httptest.NewRecorder()
	handler.UpdateUser(w, req.WithContext(ctx))

	// then: infrastructure failures are not client errors
	assert.Equal(t, http.StatusInternalServerError, w.Code)
}
