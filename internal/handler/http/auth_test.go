package http

import (
	"encoding/json"
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/ovoronin/go-issue-tracker/internal/service"
	"github.com/ovoronin/go-issue-tracker/internal/store"
	"github.com/ovoronin/go-issue-tracker/models"
)

func TestHandler_Register(t *testing.T) {
	th := newTestHandler(t)

	creds := models.Credentials{Email: "ivan@example.com", Password: "secret"}
	user := models.User{UserID: "u1", Email: creds.Email, DisplayName: creds.Email}

	th.auth.EXPECT().RegisterUser(gomock.Any(), creds).Return(user, nil)
	th.auth.EXPECT().CreateToken(gomock.Any(), user).Return(models.Token{SignedString: "signed"}, nil)

	rec := th.do(t, http.MethodPost, "/api/auth/register",
		`{"email":"ivan@example.com","password":"secret"}`, false)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "Bearer signed", rec.Header().Get("Authorization"))

	var got models.User
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	assert.Equal(t, "u1", got.UserID)
}

func TestHandler_Register_DuplicateEmail(t *testing.T) {
	th := newTestHandler(t)

	th.auth.EXPECT().
		RegisterUser(gomock.Any(), gomock.Any()).
		Return(models.User{}, store.ErrEmailAlreadyExists)

	rec := th.do(t, http.MethodPost, "/api/auth/register",
		`{"email":"ivan@example.com","password":"secret"}`, false)

	require.Equal(t, http.StatusConflict, rec.Code)
}

func TestHandler_Register_InvalidJSON(t *testing.T) {
	th := newTestHandler(t)

	rec := th.do(t, http.MethodPost, "/api/auth/register", "{not json", false)
	require.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHandler_Login(t *testing.T) {
	th := newTestHandler(t)

	creds := models.Credentials{Email: "ivan@example.com", Password: "secret"}
	user := models.User{UserID: "u1", Email: creds.Email}

	th.auth.EXPECT().Login(gomock.Any(), creds).Return(user, nil)
	th.auth.EXPECT().CreateToken(gomock.Any(), user).Return(models.Token{SignedString: "signed"}, nil)

	rec := th.do(t, http.MethodPost, "/api/auth/login",
		`{"email":"ivan@example.com","password":"secret"}`, false)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "Bearer signed", rec.Header().Get("Authorization"))
}

func TestHandler_Login_WrongPassword(t *testing.T) {
	th := newTestHandler(t)

	th.auth.EXPECT().
		Login(gomock.Any(), gomock.Any()).
		Return(models.User{}, service.ErrWrongPassword)

	rec := th.do(t, http.MethodPost, "/api/auth/login",
		`{"email":"ivan@example.com","password":"guess"}`, false)

	require.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestHandler_Login_TokenCreationFails(t *testing.T) {
	th := newTestHandler(t)

	th.auth.EXPECT().Login(gomock.Any(), gomock.Any()).Return(models.User{UserID: "u1"}, nil)
	th.auth.EXPECT().
		CreateToken(gomock.Any(), gomock.Any()).
		Return(models.Token{}, errors.New("boom"))

	rec := th.do(t, http.MethodPost, "/api/auth/login",
		`{"email":"ivan@example.com","password":"secret"}`, false)

	require.Equal(t, http.StatusInternalServerError, rec.Code)
}

func TestHandler_Me(t *testing.T) {
	th := newTestHandler(t)
	th.expectAuthorized("u1")

	th.auth.EXPECT().
		GetUser(gomock.Any(), "u1").
		Return(models.User{UserID: "u1", Email: "ivan@example.com"}, nil)

	rec := th.do(t, http.MethodGet, "/api/auth/me", "", true)

	require.Equal(t, http.StatusOK, rec.Code)

	var got models.User
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	assert.Equal(t, "ivan@example.com", got.Email)
}

func TestHandler_Me_UnknownUser(t *testing.T) {
	th := newTestHandler(t)
	th.expectAuthorized("ghost")

	th.auth.EXPECT().
		GetUser(gomock.Any(), "ghost").
		Return(models.User{}, store.ErrUserNotFound)

	rec := th.do(t, http.MethodGet, "/api/auth/me", "", true)
	require.Equal(t, http.StatusNotFound, rec.Code)
}
